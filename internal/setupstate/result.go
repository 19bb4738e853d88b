// Package setupstate holds the outcome and resumability models for the
// AWS-side provisioning steps: setup results, the verification report,
// and the persisted setup state.
package setupstate

// SetupStatus is the aggregate outcome of a provisioning step.
type SetupStatus string

// Setup status values.
const (
	SetupSuccess SetupStatus = "success"
	SetupFailed  SetupStatus = "failed"
	SetupPartial SetupStatus = "partial"
)

// SetupError describes a failure during an AWS-side provisioning step.
type SetupError struct {
	// Component names the subsystem that failed (e.g. "credential_provider").
	Component string `json:"component"`
	// Kind classifies the failure (e.g. "permission", "network").
	Kind string `json:"kind"`
	// Message is the primary error description.
	Message string `json:"message"`
	// Suggestion is an optional remediation hint.
	Suggestion string `json:"suggestion,omitempty"`
	// Recoverable marks errors the setup can continue past.
	Recoverable bool `json:"recoverable"`
}

// SetupResult is the outcome of one provisioning operation.
type SetupResult struct {
	Success     bool         `json:"success"`
	Status      SetupStatus  `json:"status"`
	GatewayURL  string       `json:"gateway_url,omitempty"`
	ProviderARN string       `json:"provider_arn,omitempty"`
	Errors      []SetupError `json:"errors,omitempty"`
	Warnings    []string     `json:"warnings,omitempty"`
}

// NewSetupResult returns a result in the success state.
func NewSetupResult() *SetupResult {
	return &SetupResult{Success: true, Status: SetupSuccess}
}

// AddError records a setup error. Any error clears the success flag.
// The first error decides the aggregate status: non-recoverable forces
// failed, recoverable forces partial. Later errors do not change an
// already-degraded status.
func (r *SetupResult) AddError(component, kind, message, suggestion string, recoverable bool) {
	r.Errors = append(r.Errors, SetupError{
		Component:   component,
		Kind:        kind,
		Message:     message,
		Suggestion:  suggestion,
		Recoverable: recoverable,
	})
	r.Success = false
	if r.Status == SetupSuccess {
		if recoverable {
			r.Status = SetupPartial
		} else {
			r.Status = SetupFailed
		}
	}
}

// AddWarning records a non-fatal warning.
func (r *SetupResult) AddWarning(message string) {
	r.Warnings = append(r.Warnings, message)
}

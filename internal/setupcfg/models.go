// Package setupcfg manages the gateway setup configuration: loading and
// saving config.yaml, parsing the .env file, validating required fields
// and formats, and deriving typed configuration views.
package setupcfg

// ValidationStatus is the aggregate outcome of a validation pass.
type ValidationStatus string

// Validation status values.
const (
	StatusValid   ValidationStatus = "valid"
	StatusInvalid ValidationStatus = "invalid"
	StatusWarning ValidationStatus = "warning"
)

// ValidationError describes a single failed configuration check.
type ValidationError struct {
	// Field is the configuration key the error applies to.
	Field string
	// Message is the primary error description. Always non-empty.
	Message string
	// Suggestion is an optional remediation hint.
	Suggestion string
	// Code is an optional machine-readable error code.
	Code string
}

// ValidationResult accumulates the outcome of one validation pass.
// Checks are not fail-fast: a single pass can report multiple
// independent errors.
type ValidationResult struct {
	IsValid  bool
	Status   ValidationStatus
	Errors   []ValidationError
	Warnings []string
}

// NewValidationResult returns a result in the valid state with no errors.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{IsValid: true, Status: StatusValid}
}

// AddError records a validation error. Any error forces the result
// invalid; the status never regresses back to valid or warning.
func (r *ValidationResult) AddError(field, message, suggestion string) {
	r.Errors = append(r.Errors, ValidationError{
		Field:      field,
		Message:    message,
		Suggestion: suggestion,
	})
	r.IsValid = false
	r.Status = StatusInvalid
}

// AddWarning records a non-fatal warning. The status escalates from
// valid to warning but never downgrades an invalid result.
func (r *ValidationResult) AddWarning(message string) {
	r.Warnings = append(r.Warnings, message)
	if r.Status == StatusValid {
		r.Status = StatusWarning
	}
}

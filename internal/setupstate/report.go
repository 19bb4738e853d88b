package setupstate

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// VerificationReport summarizes the post-setup state of the gateway and
// its supporting services. It is assembled once at the end of a run and
// purely additive.
type VerificationReport struct {
	ConfiguredComponents []string        `json:"configured_components"`
	GatewayStatus        string          `json:"gateway_status"`
	ConnectivityTests    map[string]bool `json:"connectivity_tests"`
	Timestamp            time.Time       `json:"timestamp"`
	SetupDuration        time.Duration   `json:"setup_duration,omitempty"`
	Recommendations      []string        `json:"recommendations,omitempty"`
}

// NewVerificationReport returns an empty report stamped with the
// current time and an unknown gateway status.
func NewVerificationReport() *VerificationReport {
	return &VerificationReport{
		GatewayStatus:     "unknown",
		ConnectivityTests: make(map[string]bool),
		Timestamp:         time.Now(),
	}
}

// AddComponent records a component as configured.
func (r *VerificationReport) AddComponent(name string) {
	r.ConfiguredComponents = append(r.ConfiguredComponents, name)
}

// RecordConnectivity records the reachability of a service and adds a
// recommendation when the service is unreachable.
func (r *VerificationReport) RecordConnectivity(service string, reachable bool) {
	r.ConnectivityTests[service] = reachable
	if !reachable {
		r.Recommendations = append(r.Recommendations,
			fmt.Sprintf("Service %q is unreachable; check credentials, region, and network access", service))
	}
}

// Summary renders the report as a multi-line human-readable string.
func (r *VerificationReport) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Verification report (%s)\n", r.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&b, "  Gateway status: %s\n", r.GatewayStatus)
	if len(r.ConfiguredComponents) > 0 {
		fmt.Fprintf(&b, "  Configured components: %s\n", strings.Join(r.ConfiguredComponents, ", "))
	}
	// Sort for deterministic output.
	services := make([]string, 0, len(r.ConnectivityTests))
	for service := range r.ConnectivityTests {
		services = append(services, service)
	}
	sort.Strings(services)
	for _, service := range services {
		mark := "unreachable"
		if r.ConnectivityTests[service] {
			mark = "reachable"
		}
		fmt.Fprintf(&b, "  %s: %s\n", service, mark)
	}
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&b, "  recommendation: %s\n", rec)
	}
	return b.String()
}

package checks

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// RequiredPorts are the listener ports the agent services bind.
var RequiredPorts = []int{8011, 8012, 8013, 8014}

// Ports checks the required ports for conflicts by inspecting the
// system network status. When the status command cannot run at all the
// check passes with a warning rather than failing.
func Ports(ctx context.Context, ports []int, p *Printer) bool {
	p.Info("Checking Port Availability")

	ok, output := runCommand(ctx, "netstat", "-tlnp")
	if !ok {
		p.Warning("Could not check port availability")
		return true
	}

	used := usedPorts(output, ports)
	if len(used) > 0 {
		p.Warning("Ports already in use: %v", used)
		p.Detail("Stop existing services or use different ports")
		return false
	}

	p.Success("Required ports available")
	return true
}

// usedPorts scans network-status output for lines binding any of the
// given ports.
func usedPorts(output string, ports []int) []int {
	var used []int
	for _, line := range strings.Split(output, "\n") {
		for _, port := range ports {
			if strings.Contains(line, fmt.Sprintf(":%d ", port)) && !slices.Contains(used, port) {
				used = append(used, port)
			}
		}
	}
	return used
}

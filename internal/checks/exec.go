package checks

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// commandTimeout bounds every external command probe. A timed-out
// command is a failed check, not retried.
const commandTimeout = 30 * time.Second

// runCommand executes an external command with captured output and the
// probe timeout. It returns whether the command exited zero and the
// trimmed combined output (or the error text when the command could not
// run at all).
func runCommand(ctx context.Context, name string, args ...string) (bool, string) {
	cctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	out, err := exec.CommandContext(cctx, name, args...).CombinedOutput()
	output := strings.TrimSpace(string(out))
	if err != nil {
		if output == "" {
			output = err.Error()
		}
		return false, output
	}
	return true, output
}

package checks

import (
	"context"
	"runtime"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// minGoVersion is the minimum Go runtime this tool is supported on.
const minGoVersion = "1.21"

// requiredTools are the external commands the setup relies on, probed
// with a version flag.
var requiredTools = []struct {
	name    string
	install string
}{
	{"aws", "Install: https://docs.aws.amazon.com/cli/latest/userguide/getting-started-install.html"},
	{"uv", "Install: curl -LsSf https://astral.sh/uv/install.sh | sh"},
}

// Prerequisites verifies the runtime version and that the required
// external tools are installed and runnable.
func Prerequisites(ctx context.Context, p *Printer) bool {
	p.Info("Checking Prerequisites")

	allGood := true

	if ok, detail := runtimeVersionOK(runtime.Version()); ok {
		p.Success("Go runtime %s - OK", detail)
	} else {
		p.Error("Go runtime %s - Need %s+", detail, minGoVersion)
		allGood = false
	}

	for _, tool := range requiredTools {
		ok, output := runCommand(ctx, tool.name, "--version")
		if ok {
			p.Success("%s - OK (%s)", tool.name, firstToken(output))
		} else {
			p.Error("%s - Not installed", tool.name)
			p.Detail("%s", tool.install)
			allGood = false
		}
	}

	return allGood
}

// runtimeVersionOK compares a runtime.Version() string (e.g. "go1.22.4")
// against the minimum supported version. Development toolchain strings
// that do not parse are accepted.
func runtimeVersionOK(raw string) (bool, string) {
	detail := strings.TrimPrefix(raw, "go")
	current, err := goversion.NewVersion(detail)
	if err != nil {
		return true, raw
	}
	minimum := goversion.Must(goversion.NewVersion(minGoVersion))
	return current.GreaterThanOrEqual(minimum), detail
}

// firstToken returns the first whitespace-separated token of s, used to
// shorten multi-line version banners.
func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}
	return fields[0]
}

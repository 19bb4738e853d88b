// Package checks runs the fixed sequence of independent setup checks:
// prerequisites, AWS credentials, configuration files, TLS certificates,
// and port availability. Each check prints styled status lines and
// returns pass/fail; failures never abort the sequence.
package checks

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Status line styles.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

// Printer writes colored status lines for check progress.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Success prints a passed-status line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.out, successStyle.Render("✅ "+fmt.Sprintf(format, args...)))
}

// Error prints a failed-status line.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.out, errorStyle.Render("❌ "+fmt.Sprintf(format, args...)))
}

// Warning prints a warning-status line.
func (p *Printer) Warning(format string, args ...any) {
	fmt.Fprintln(p.out, warningStyle.Render("⚠️  "+fmt.Sprintf(format, args...)))
}

// Info prints an informational status line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.out, infoStyle.Render("ℹ️  "+fmt.Sprintf(format, args...)))
}

// Line prints a plain unstyled line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintln(p.out, fmt.Sprintf(format, args...))
}

// Detail prints an indented plain line under a status line.
func (p *Printer) Detail(format string, args ...any) {
	fmt.Fprintln(p.out, "  "+fmt.Sprintf(format, args...))
}

// Blank prints an empty line between check sections.
func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}

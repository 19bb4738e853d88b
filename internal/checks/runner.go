package checks

import (
	"context"
	"strings"
)

// Check is one named entry in the validation sequence.
type Check struct {
	Name string
	Run  func(ctx context.Context) bool
}

// Result pairs a check name with its outcome.
type Result struct {
	Name   string
	Passed bool
}

// Summary is the aggregate outcome of a full validation run.
type Summary struct {
	Results []Result
}

// Passed counts the checks that succeeded.
func (s *Summary) Passed() int {
	n := 0
	for _, r := range s.Results {
		if r.Passed {
			n++
		}
	}
	return n
}

// AllPassed reports whether every check succeeded.
func (s *Summary) AllPassed() bool {
	return s.Passed() == len(s.Results)
}

// RunAll executes the checks in order. Every check runs regardless of
// earlier failures; the summary carries the per-check outcomes.
func RunAll(ctx context.Context, sequence []Check, p *Printer) *Summary {
	summary := &Summary{}
	for _, check := range sequence {
		passed := check.Run(ctx)
		summary.Results = append(summary.Results, Result{Name: check.Name, Passed: passed})
		p.Blank()
	}
	return summary
}

// PrintSummary renders the pass/fail tally after a full run.
func PrintSummary(s *Summary, p *Printer) {
	p.Line("📋 Validation Summary")
	p.Line("%s", strings.Repeat("=", 50))
	for _, r := range s.Results {
		if r.Passed {
			p.Success("%s: PASS", r.Name)
		} else {
			p.Error("%s: FAIL", r.Name)
		}
	}
	p.Blank()
	p.Line("Overall: %d/%d checks passed", s.Passed(), len(s.Results))
}

package framework

import (
	"fmt"
	"io"
	"strings"
)

// Results accumulates the outcome of every test in a run. Aborted is non-nil
// if the run was cut short by a fatal error (such as the target becoming
// unreachable partway through), in which case any tests that never ran are
// simply absent from Tests.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Aborted  error
}

type TestResult struct {
	TestID TestID
	Errors []error
}

// OK returns true if no tests failed. It says nothing about whether the run
// was aborted; callers that care must check Aborted as well.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// PrintResults writes a plain-text summary of a completed run.
func PrintResults(w io.Writer, results Results) {
	fmt.Fprintf(w, "Test run complete: %d tests, %d failures\n", len(results.Tests), len(results.Failures))
	if len(results.Failures) > 0 {
		fmt.Fprintln(w, "Failed tests:")
		for _, f := range results.Failures {
			fmt.Fprintf(w, "  %s\n", f.TestID)
		}
	}
	if results.Aborted != nil {
		fmt.Fprintf(w, "Run aborted early: %s\n", results.Aborted)
	}
}

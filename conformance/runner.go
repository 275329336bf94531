package conformance

import (
	"bytes"
	"fmt"
	"strings"

	"fern"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// Runner executes conformance tests. Every test gets a fresh
// interpreter, so suites do not leak state into each other.
type Runner struct{}

// NewRunner creates a new test runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes a single test case
func (r *Runner) Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: reason,
		}
	}

	var out, errOut bytes.Buffer
	ok := fern.NewRunner(&out, &errOut).Run(test.Test.Source)

	passed, err := checkExpectation(test.Test.Expect, ok, out.String(), errOut.String())
	return TestResult{
		Test:   test,
		Passed: passed,
		Error:  err,
	}
}

// RunAll executes all loaded tests
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, 0, len(tests))
	for _, test := range tests {
		results = append(results, r.Run(test))
	}
	return results
}

// checkExpectation compares a run's outcome against the expectation
func checkExpectation(expect Expectation, ok bool, output, diagnostics string) (bool, error) {
	if expect.Error != "" {
		if ok {
			return false, fmt.Errorf("expected a %s error, but the program ran to completion (output %q)",
				expect.Error, output)
		}
		if !strings.Contains(diagnostics, expect.Error+":") {
			return false, fmt.Errorf("expected a %s error, got diagnostics %q", expect.Error, diagnostics)
		}
		if expect.Contains != "" && !strings.Contains(diagnostics, expect.Contains) {
			return false, fmt.Errorf("expected diagnostics containing %q, got %q", expect.Contains, diagnostics)
		}
		return true, nil
	}

	if !ok {
		return false, fmt.Errorf("program failed: %s", strings.TrimSpace(diagnostics))
	}

	got := splitLines(output)
	if len(got) != len(expect.Output) {
		return false, fmt.Errorf("expected %d output lines %v, got %d: %v",
			len(expect.Output), expect.Output, len(got), got)
	}
	for i, want := range expect.Output {
		if got[i] != want {
			return false, fmt.Errorf("output line %d: expected %q, got %q", i+1, want, got[i])
		}
	}
	return true, nil
}

// splitLines splits captured output into lines, dropping the trailing
// newline that every print emits
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Stats summarizes a batch of results
type Stats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats tallies results
func ComputeStats(results []TestResult) Stats {
	stats := Stats{Total: len(results)}
	for _, result := range results {
		switch {
		case result.Skipped:
			stats.Skipped++
		case result.Passed:
			stats.Passed++
		default:
			stats.Failed++
		}
	}
	return stats
}

// FormatStats renders stats for the test log
func FormatStats(stats Stats) string {
	return fmt.Sprintf("Total: %d  Passed: %d  Failed: %d  Skipped: %d",
		stats.Total, stats.Passed, stats.Failed, stats.Skipped)
}

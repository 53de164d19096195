package domain

import "time"

// ExecutionResult is what the executor observed while driving the page for one case
type ExecutionResult struct {
	ActualOutput string        // Trimmed text of the output panel
	WaitDuration time.Duration // Settle time waited after typing
	Recovered    []error       // Step errors handled locally (clear/read failures)
}

// WaitDurationMs returns the settle time in milliseconds
func (r ExecutionResult) WaitDurationMs() int64 {
	return r.WaitDuration.Milliseconds()
}

// Verdict is the outcome assigned to a case
type Verdict string

const (
	VerdictPass       Verdict = "pass"
	VerdictFail       Verdict = "fail"
	VerdictDocumented Verdict = "documented"
)

// CaseResult is the reported result of one case after all attempts
type CaseResult struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	Verdict         Verdict  `json:"verdict"`
	Input           string   `json:"input"`
	Expected        string   `json:"expected"`
	Actual          string   `json:"actual"`
	WaitMs          int64    `json:"wait_ms"`
	Attempts        int      `json:"attempts"`
	DurationSeconds float64  `json:"duration_seconds"`
	Message         string   `json:"message,omitempty"`
	Screenshots     []string `json:"screenshots,omitempty"`
	ExpectedFailure bool     `json:"expected_failure,omitempty"` // Negative functional mismatch documenting a known defect
	Resolved        bool     `json:"resolved,omitempty"`         // Toggled from the failures viewer
}

// Failed reports whether the case ended with a failing verdict
func (r CaseResult) Failed() bool {
	return r.Verdict == VerdictFail
}

// RunResultsMeta contains metadata about a run
type RunResultsMeta struct {
	RunID            string  `json:"run_id"`
	Spreadsheet      string  `json:"spreadsheet"`
	BaseURL          string  `json:"base_url"`
	TotalCases       int     `json:"total_cases"`
	PassedCases      int     `json:"passed_cases"`
	FailedCases      int     `json:"failed_cases"`
	DocumentedCases  int     `json:"documented_cases"`
	ExpectedFailures int     `json:"expected_failures"`
	Duration         string  `json:"duration"`
	DurationSeconds  float64 `json:"duration_seconds"`
	Timestamp        string  `json:"timestamp"`
}

// RunResultsOutput is the complete output structure written after a run
type RunResultsOutput struct {
	Meta    RunResultsMeta `json:"meta"`
	Details []CaseResult   `json:"details"`
}

// Failures returns the failed cases of the run
func (o *RunResultsOutput) Failures() []CaseResult {
	var failures []CaseResult
	for _, d := range o.Details {
		if d.Failed() {
			failures = append(failures, d)
		}
	}
	return failures
}

package execution

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"sheetrun/internal/domain"
	"sheetrun/internal/page"
)

// Runner executes a single test case against the page
type Runner struct {
	log           logrus.FieldLogger
	sleep         Sleeper
	clearSettle   time.Duration
	outputTimeout time.Duration
}

// NewRunner creates a new Runner
func NewRunner(log logrus.FieldLogger, sleep Sleeper, clearSettle, outputTimeout time.Duration) *Runner {
	if sleep == nil {
		sleep = Sleep
	}
	return &Runner{
		log:           log.WithField("component", "executor"),
		sleep:         sleep,
		clearSettle:   clearSettle,
		outputTimeout: outputTimeout,
	}
}

// Execute clears the input, types the case input, waits for the page to
// settle and reads the output. Clear and read failures are recovered and
// recorded in the result; anything else aborts the case with a *CaseError.
func (r *Runner) Execute(ctx context.Context, p page.Page, tc domain.TestCase) (domain.ExecutionResult, error) {
	log := r.log.WithField("case", tc.ID)
	var result domain.ExecutionResult

	if err := r.clear(ctx, p); err != nil {
		if ctx.Err() != nil {
			return result, &CaseError{CaseID: tc.ID, Step: "clear", Err: err}
		}
		log.WithError(err).Info("Note: could not clear input field")
		result.Recovered = append(result.Recovered, fmt.Errorf("%w: %v", ErrClearFailed, err))
	} else {
		log.Debug("Cleared input field")
	}

	if tc.Input != "" {
		if err := p.FillInput(ctx, tc.Input); err != nil {
			return result, &CaseError{CaseID: tc.ID, Step: "fill", Err: err}
		}
		log.WithField("input", preview(tc.Input)).Debug("Entered input")
	} else {
		log.Debug("Empty input (testing edge case)")
	}

	result.WaitDuration = WaitDuration(InputLength(tc.Input))
	if err := r.sleep(ctx, result.WaitDuration); err != nil {
		return result, &CaseError{CaseID: tc.ID, Step: "wait", Err: err}
	}
	log.WithField("wait_ms", result.WaitDurationMs()).Debug("Waited for translation")

	output, err := p.OutputText(ctx, r.outputTimeout)
	switch {
	case err != nil && ctx.Err() != nil:
		return result, &CaseError{CaseID: tc.ID, Step: "read", Err: err}
	case err != nil:
		log.WithError(err).Error("Could not read output")
		result.ActualOutput = OutputReadSentinel
		result.Recovered = append(result.Recovered, fmt.Errorf("%w: %v", ErrOutputReadFailed, err))
	default:
		result.ActualOutput = strings.TrimSpace(output)
		log.WithField("output", preview(result.ActualOutput)).Debug("Got output")
	}

	return result, nil
}

// clear empties the input and lets the page react
func (r *Runner) clear(ctx context.Context, p page.Page) error {
	if err := p.ClearInput(ctx); err != nil {
		return err
	}
	return r.sleep(ctx, r.clearSettle)
}

// preview shortens long text for log lines
func preview(s string) string {
	const limit = 50
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

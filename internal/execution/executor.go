package execution

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"sheetrun/internal/domain"
	"sheetrun/internal/page"
)

// Executor drives the page through one test case
type Executor interface {
	Execute(ctx context.Context, p page.Page, tc domain.TestCase) (domain.ExecutionResult, error)
}

// OutputReadSentinel replaces the output when the panel cannot be read
const OutputReadSentinel = "ERROR: Could not read output field"

var (
	// ErrClearFailed is recorded when the input could not be cleared; the case continues
	ErrClearFailed = errors.New("could not clear input field")
	// ErrOutputReadFailed is recorded when the output could not be read; the case continues with OutputReadSentinel
	ErrOutputReadFailed = errors.New("could not read output field")
)

// CaseError aborts a single case. Subsequent cases still run.
type CaseError struct {
	CaseID string
	Step   string
	Err    error
}

func (e *CaseError) Error() string {
	return fmt.Sprintf("case %s: %s: %v", e.CaseID, e.Step, e.Err)
}

func (e *CaseError) Unwrap() error {
	return e.Err
}

// WaitDuration is the settle time after typing, stepped by input length in characters
func WaitDuration(inputLen int) time.Duration {
	switch {
	case inputLen == 0:
		return 1000 * time.Millisecond
	case inputLen <= 100:
		return 4000 * time.Millisecond
	case inputLen <= 300:
		return 5000 * time.Millisecond
	default:
		return 7000 * time.Millisecond
	}
}

// InputLength counts characters the way WaitDuration expects them
func InputLength(input string) int {
	return utf8.RuneCountInString(input)
}

// Sleeper pauses for d or until ctx is done
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the real Sleeper
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

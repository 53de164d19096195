package execution

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"sheetrun/internal/classify"
	"sheetrun/internal/config"
	"sheetrun/internal/domain"
	"sheetrun/internal/page"
	"sheetrun/internal/ui"
	"sheetrun/internal/verdict"
)

// errorScreenshotTimeout bounds the best-effort screenshot after a case error
const errorScreenshotTimeout = 10 * time.Second

// Suite runs test cases one at a time, in order, against a single page
type Suite struct {
	config   *config.Config
	page     page.Page
	executor Executor
	judge    *verdict.Engine
	sleep    Sleeper
	log      logrus.FieldLogger
	progress *ui.ProgressBar
	report   func(domain.CaseResult)
}

// NewSuite creates a new Suite
func NewSuite(cfg *config.Config, p page.Page, executor Executor, judge *verdict.Engine, sleep Sleeper, log logrus.FieldLogger) *Suite {
	if sleep == nil {
		sleep = Sleep
	}
	return &Suite{
		config:   cfg,
		page:     p,
		executor: executor,
		judge:    judge,
		sleep:    sleep,
		log:      log.WithField("component", "suite"),
	}
}

// SetProgress sets the progress bar updated after every case
func (s *Suite) SetProgress(progress *ui.ProgressBar) {
	s.progress = progress
}

// SetReport sets a function called with every case result as soon as the case finishes
func (s *Suite) SetReport(report func(domain.CaseResult)) {
	s.report = report
}

// Run executes cases sequentially. A failing case never stops the run; only
// cancellation of ctx does, in which case the results so far are returned
// together with ctx's error.
func (s *Suite) Run(ctx context.Context, cases []domain.TestCase) ([]domain.CaseResult, time.Duration, error) {
	startTime := time.Now()
	results := make([]domain.CaseResult, 0, len(cases))
	var passed, failed, documented int

	for _, tc := range cases {
		if err := ctx.Err(); err != nil {
			return results, time.Since(startTime), err
		}

		result := s.runCase(ctx, tc)
		results = append(results, result)
		if s.report != nil {
			s.report(result)
		}

		switch result.Verdict {
		case domain.VerdictPass:
			passed++
		case domain.VerdictFail:
			failed++
		default:
			documented++
		}
		if s.progress != nil {
			s.progress.Update(passed, failed, documented)
		}
	}

	if s.progress != nil {
		s.progress.Finish()
	}
	return results, time.Since(startTime), ctx.Err()
}

// runCase runs tc, retrying from setup while attempts fail unexpectedly
func (s *Suite) runCase(ctx context.Context, tc domain.TestCase) domain.CaseResult {
	category := classify.Classify(tc)
	log := s.log.WithFields(logrus.Fields{"case": tc.ID, "category": category.String()})
	log.WithField("name", tc.Name).Debug("Starting case")

	result := domain.CaseResult{
		ID:       tc.ID,
		Title:    tc.Title(),
		Category: category.String(),
		Input:    tc.Input,
		Expected: tc.ExpectedOutput,
	}
	start := time.Now()

	maxAttempts := s.config.Retries + 1
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result.Attempts = attempt
		exec, outcome, err := s.attempt(ctx, tc, category)

		result.Actual = exec.ActualOutput
		result.WaitMs = exec.WaitDurationMs()
		result.Screenshots = append(result.Screenshots, outcome.Screenshots...)

		if err != nil {
			log.WithError(err).WithField("attempt", attempt).Error("Test error")
			result.Verdict = domain.VerdictFail
			result.ExpectedFailure = false
			result.Message = err.Error()
			result.Screenshots = append(result.Screenshots, s.captureError(ctx, tc.ID)...)
		} else {
			result.Verdict = outcome.Verdict
			result.ExpectedFailure = outcome.ExpectedFailure
			result.Message = outcome.Note
			if outcome.Failure != nil {
				result.Message = outcome.Failure.Error()
				log.WithField("attempt", attempt).Debug("Assertion failed")
				result.Screenshots = append(result.Screenshots, s.captureError(ctx, tc.ID)...)
			}
		}

		if result.Verdict != domain.VerdictFail || result.ExpectedFailure || ctx.Err() != nil {
			break
		}
		if attempt < maxAttempts {
			log.WithField("attempt", attempt).Info("Retrying case")
		}
	}

	result.DurationSeconds = time.Since(start).Seconds()
	log.WithFields(logrus.Fields{
		"verdict":  result.Verdict,
		"attempts": result.Attempts,
	}).Debug("Case finished")

	return result
}

// attempt runs setup, execution and judging once, bounded by the case timeout
func (s *Suite) attempt(ctx context.Context, tc domain.TestCase, category domain.Category) (domain.ExecutionResult, verdict.Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.CaseTimeout)
	defer cancel()

	if err := s.setup(ctx); err != nil {
		return domain.ExecutionResult{}, verdict.Outcome{}, &CaseError{CaseID: tc.ID, Step: "setup", Err: err}
	}

	exec, err := s.executor.Execute(ctx, s.page, tc)
	if err != nil {
		return exec, verdict.Outcome{}, err
	}

	outcome := s.judge.Judge(ctx, s.page, category, tc, exec)
	return exec, outcome, nil
}

// setup brings the page to a fresh state before every attempt
func (s *Suite) setup(ctx context.Context) error {
	if err := s.page.Navigate(ctx, s.config.BaseURL); err != nil {
		return err
	}
	if err := s.page.WaitUntilLoaded(ctx); err != nil {
		return err
	}
	if err := s.page.WaitForFields(ctx, s.config.FieldTimeout); err != nil {
		return err
	}
	// let the page's scripts finish initialising
	return s.sleep(ctx, s.config.SetupSettle)
}

// captureError takes the error screenshot with its own deadline, the attempt's may be spent
func (s *Suite) captureError(ctx context.Context, id string) []string {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), errorScreenshotTimeout)
	defer cancel()
	return s.judge.CaptureError(ctx, s.page, id)
}

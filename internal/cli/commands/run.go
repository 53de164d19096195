package commands

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sheetrun/internal/config"
	"sheetrun/internal/discovery"
	"sheetrun/internal/domain"
	"sheetrun/internal/execution"
	"sheetrun/internal/sheet"
	"sheetrun/internal/storage"
	"sheetrun/internal/ui"
	"sheetrun/internal/verdict"
)

// ErrCasesFailed is returned when a run finished with failing cases
var ErrCasesFailed = errors.New("test cases failed")

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	log       *logrus.Logger
	loader    *sheet.Loader
	filter    *discovery.Filter
	openPage  PageOpener
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
	sleep     execution.Sleeper
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	log *logrus.Logger,
	loader *sheet.Loader,
	filter *discovery.Filter,
	openPage PageOpener,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		log:       log,
		loader:    loader,
		filter:    filter,
		openPage:  openPage,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
		sleep:     execution.Sleep,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	flags := rc.config.Flags

	// Spreadsheet problems abort before any browser is started
	cases, err := rc.loader.Load(rc.config.SpreadsheetPath)
	if err != nil {
		return fmt.Errorf("load test cases: %w", err)
	}

	cases, err = selectCases(rc.filter, cases, flags)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		color.Yellow("No test cases to execute")
		return nil
	}

	ctx := cmd.Context()
	p, closePage, err := rc.openPage(ctx, rc.config, rc.log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closePage(); err != nil {
			rc.log.WithError(err).Debug("Closing page")
		}
	}()

	runner := execution.NewRunner(rc.log, rc.sleep, rc.config.ClearSettle, rc.config.OutputTimeout)
	judge := verdict.NewEngine(rc.config.GetScreenshotsDir(), rc.log)
	suite := execution.NewSuite(rc.config, p, runner, judge, rc.sleep, rc.log)

	rc.formatter.PrintRunHeader(len(cases))
	if flags.Verbose {
		suite.SetReport(rc.formatter.PrintCaseReport)
	} else {
		suite.SetProgress(ui.NewProgressBar(len(cases)))
	}

	results, duration, runErr := suite.Run(ctx, cases)

	output, err := rc.storage.Save(results, duration)
	if err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}

	rc.formatter.PrintSummary(output)

	if runErr != nil {
		return fmt.Errorf("run interrupted: %w", runErr)
	}

	if flags.OpenFailures && output.Meta.FailedCases > 0 {
		if err := rc.viewer.View(output); err != nil {
			return err
		}
	}

	return runStatus(output, flags.StrictNegative)
}

// runStatus maps a finished run to the command's exit error
func runStatus(output *domain.RunResultsOutput, strictNegative bool) error {
	failed := output.Meta.FailedCases
	if !strictNegative {
		failed -= output.Meta.ExpectedFailures
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrCasesFailed, failed, output.Meta.TotalCases)
	}
	return nil
}

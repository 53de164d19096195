package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sheetrun/internal/config"
	"sheetrun/internal/discovery"
	"sheetrun/internal/sheet"
	"sheetrun/internal/storage"
	"sheetrun/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	loader    *sheet.Loader
	filter    *discovery.Filter
	formatter *ui.Formatter
	storage   storage.Storage
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	loader *sheet.Loader,
	filter *discovery.Filter,
	formatter *ui.Formatter,
	st storage.Storage,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		loader:    loader,
		filter:    filter,
		formatter: formatter,
		storage:   st,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cases, err := lc.loader.Load(lc.config.SpreadsheetPath)
	if err != nil {
		return fmt.Errorf("load test cases: %w", err)
	}

	cases, err = selectCases(lc.filter, cases, lc.config.Flags)
	if err != nil {
		return err
	}

	if len(cases) == 0 {
		color.Yellow("No test cases found")
		return nil
	}

	// Marking is best-effort, there may be no previous run
	last, _ := lc.storage.Load()
	lc.formatter.PrintCaseList(cases, lc.config.Flags.ByCategory, storage.FailedIDs(last))
	return nil
}

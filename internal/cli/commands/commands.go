package commands

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sheetrun/internal/cli"
	"sheetrun/internal/config"
	"sheetrun/internal/discovery"
	"sheetrun/internal/domain"
	"sheetrun/internal/page"
	"sheetrun/internal/sheet"
	"sheetrun/internal/storage"
	"sheetrun/internal/ui"
)

// PageOpener starts the page cases run against and returns a function releasing it
type PageOpener func(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (page.Page, func() error, error)

// OpenBrowser is the PageOpener backed by Chrome
func OpenBrowser(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (page.Page, func() error, error) {
	b, err := page.NewBrowser(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return b, b.Close, nil
}

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, log *logrus.Logger, openPage PageOpener) *Commands {
	loader := sheet.NewLoader(log)
	filter := discovery.NewFilter()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	errorViewer := ui.NewErrorViewer(jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, log, loader, filter, openPage, jsonStorage, formatter, errorViewer),
		List:     NewListCommand(cfg, loader, filter, formatter, jsonStorage),
		Failures: NewFailuresCommand(jsonStorage, errorViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config, log *logrus.Logger) {
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Path to the YAML config file (default "+config.DefaultConfigFile+")")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging and per-case reports")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ConfigFile)
		if err != nil {
			return err
		}
		// commands hold cfg, so update it in place
		*cfg = *loaded
		cfg.ApplyFlags(flags.ToConfigFlags())
		cli.SetVerbose(log, flags.Verbose)
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the spreadsheet test cases against the page",
		Long:  "Load test cases from the spreadsheet and execute them one at a time in a browser",
		RunE:  c.Run.Execute,
	}
	addSelectionFlags(runCmd, flags)
	runCmd.Flags().StringVarP(&flags.BaseURL, "base-url", "u", "", "URL of the page under test")
	runCmd.Flags().StringVarP(&flags.ResultsDir, "results-dir", "o", "", "Directory for results.json and screenshots")
	runCmd.Flags().BoolVar(&flags.Headed, "headed", false, "Show the browser window")
	runCmd.Flags().IntVarP(&flags.Retries, "retries", "r", -1, "Retries per failing case (default 0, 2 when CI is set)")
	runCmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Timeout per case attempt (default 60s)")
	runCmd.Flags().BoolVar(&flags.StrictNegative, "strict-negative", false, "Count expected negative functional failures towards the exit status")
	runCmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failures viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List test cases",
		Long:  "Load and list the spreadsheet test cases without executing them",
		RunE:  c.List.Execute,
	}
	addSelectionFlags(listCmd, flags)
	listCmd.Flags().BoolVarP(&flags.ByCategory, "by-category", "g", false, "Group cases by category")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Aliases: []string{"faills"},
		Short:   "View failed cases interactively",
		Long:    "Display failed cases from the last run in an interactive viewer",
		RunE:    c.Failures.Execute,
	}
	failuresCmd.Flags().StringVarP(&flags.ResultsDir, "results-dir", "o", "", "Directory holding results.json")
	rootCmd.AddCommand(failuresCmd)
}

func addSelectionFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVarP(&flags.SpreadsheetPath, "file", "s", "", "Path to the test case spreadsheet")
	cmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter cases by TC ID pattern (supports wildcards, e.g. 'Pos_Fun_*' or '*UI*')")
	cmd.Flags().StringVar(&flags.Prefix, "prefix", "", "Filter cases by TC ID prefix (e.g. 'Pos_Fun')")
	cmd.Flags().StringVar(&flags.CaseID, "id", "", "Select a single case by TC ID")
	cmd.Flags().StringSliceVarP(&flags.Categories, "category", "c", nil, "Only cases of these categories (positive-functional, positive-ui, negative-functional, negative-ui, other)")
}

// selectCases applies the id, pattern, prefix and category flags
func selectCases(filter *discovery.Filter, cases []domain.TestCase, flags config.Flags) ([]domain.TestCase, error) {
	if flags.CaseID != "" {
		tc, ok := filter.FindByID(cases, flags.CaseID)
		if !ok {
			return nil, fmt.Errorf("test case %q not found", flags.CaseID)
		}
		cases = []domain.TestCase{tc}
	}

	var categories []domain.Category
	for _, name := range flags.Categories {
		c, ok := domain.ParseCategory(name)
		if !ok {
			return nil, fmt.Errorf("unknown category %q", name)
		}
		categories = append(categories, c)
	}

	cases = filter.ByPattern(cases, flags.Filter)
	if flags.Prefix != "" {
		cases = filter.ByPrefix(cases, flags.Prefix)
	}
	return filter.ByCategory(cases, categories...), nil
}

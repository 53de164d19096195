package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"sheetrun/internal/config"
	"sheetrun/internal/discovery"
	"sheetrun/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	colors *ColorHelper
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter(cfg *config.Config) *Formatter {
	return NewFormatterTo(cfg, os.Stdout)
}

// NewFormatterTo creates a new Formatter writing to w
func NewFormatterTo(cfg *config.Config, w io.Writer) *Formatter {
	return &Formatter{
		config: cfg,
		colors: NewColorHelper(),
		out:    w,
	}
}

// PrintRunHeader prints the banner shown before the first case runs
func (f *Formatter) PrintRunHeader(total int) {
	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, f.colors.Info("╔═══════════════════════════════════════════════════════════════╗"))
	fmt.Fprintln(f.out, f.colors.Info("║                 Data-driven UI test execution                 ║"))
	fmt.Fprintln(f.out, f.colors.Info("╚═══════════════════════════════════════════════════════════════╝"))
	fmt.Fprintf(f.out, "Cases: %d | Page: %s | Retries: %d\n\n", total, f.config.BaseURL, f.config.Retries)
}

// PrintCaseReport prints the detailed report of one case
func (f *Formatter) PrintCaseReport(r domain.CaseResult) {
	rule := strings.Repeat("=", 70)
	fmt.Fprintln(f.out, rule)
	fmt.Fprintf(f.out, "TEST: %s\n", r.ID)
	fmt.Fprintf(f.out, "NAME: %s\n", strings.TrimPrefix(r.Title, r.ID+": "))
	fmt.Fprintln(f.out, rule)
	fmt.Fprintf(f.out, "Category: %s | Waited: %dms | Attempts: %d\n", r.Category, r.WaitMs, r.Attempts)
	fmt.Fprintln(f.out, "\nCOMPARISON:")
	fmt.Fprintf(f.out, "Expected: %s\n", r.Expected)
	fmt.Fprintf(f.out, "Actual:   %s\n", r.Actual)
	fmt.Fprintf(f.out, "\n%s\n", f.colors.FormatVerdict(r))
	if r.Message != "" {
		fmt.Fprintln(f.out, f.colors.Muted(r.Message))
	}
	for _, s := range r.Screenshots {
		fmt.Fprintf(f.out, "Screenshot saved: %s\n", s)
	}
	fmt.Fprintln(f.out, rule)
	fmt.Fprintln(f.out)
}

// PrintSummary displays the statistics of a run followed by the failed cases
func (f *Formatter) PrintSummary(output *domain.RunResultsOutput) {
	meta := output.Meta

	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, f.colors.Info("╔═══════════════════════════════════════════════════════════════╗"))
	fmt.Fprintln(f.out, f.colors.Info("║                     Test Execution Statistics                 ║"))
	fmt.Fprintln(f.out, f.colors.Info("╚═══════════════════════════════════════════════════════════════╝"))

	f.renderTable([]string{"Metric", "Value"}, [][]string{
		{"Total Cases", strconv.Itoa(meta.TotalCases)},
		{"Passed", f.colors.FormatCount(meta.PassedCases, meta.TotalCases, true)},
		{"Failed", f.colors.FormatCount(meta.FailedCases, meta.TotalCases, false)},
		{"Expected Failures", strconv.Itoa(meta.ExpectedFailures)},
		{"Documented", strconv.Itoa(meta.DocumentedCases)},
		{"Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds)},
		{"Spreadsheet", meta.Spreadsheet},
		{"Run ID", meta.RunID},
		{"Timestamp", meta.Timestamp},
	})

	rows := make([][]string, 0, len(output.Details))
	for _, d := range output.Details {
		rows = append(rows, []string{
			d.ID,
			d.Category,
			f.colors.FormatVerdict(d),
			fmt.Sprintf("%dms", d.WaitMs),
			strconv.Itoa(d.Attempts),
		})
	}
	fmt.Fprintln(f.out)
	f.renderTable([]string{"Case", "Category", "Verdict", "Wait", "Attempts"}, rows)

	fmt.Fprintln(f.out)
	unexpected := meta.FailedCases - meta.ExpectedFailures
	switch {
	case meta.FailedCases == 0:
		fmt.Fprintln(f.out, f.colors.Success("✓ All asserted cases passed!"))
	case unexpected == 0:
		fmt.Fprintln(f.out, f.colors.Warning(fmt.Sprintf("✗ %d case(s) failed, all documenting known system failures", meta.FailedCases)))
	default:
		fmt.Fprintln(f.out, f.colors.Failure(fmt.Sprintf("✗ %d case(s) failed (%d expected)", meta.FailedCases, meta.ExpectedFailures)))
	}
	f.printFailures(output.Failures())
}

func (f *Formatter) printFailures(failures []domain.CaseResult) {
	for i, failure := range failures {
		connector := "├── "
		if i == len(failures)-1 {
			connector = "└── "
		}
		line := connector + failure.Title
		if failure.ExpectedFailure {
			fmt.Fprintln(f.out, f.colors.Warning(line+" (expected)"))
		} else {
			fmt.Fprintln(f.out, f.colors.Failure(line))
		}
	}
}

// PrintCaseList prints cases grouped by category.
// failedIDs is optional; cases in it are marked with [F] (from the last run).
func (f *Formatter) PrintCaseList(cases []domain.TestCase, byCategory bool, failedIDs map[string]struct{}) {
	marker := func(id string) string {
		if _, ok := failedIDs[id]; ok {
			return " " + f.colors.Failure("[F]")
		}
		return ""
	}

	fmt.Fprintln(f.out, f.colors.Success(fmt.Sprintf("Found %d test case(s):", len(cases))))
	fmt.Fprintln(f.out)

	if !byCategory {
		for i, tc := range cases {
			connector := "├── "
			if i == len(cases)-1 {
				connector = "└── "
			}
			fmt.Fprintf(f.out, "%s%s%s\n", connector, f.colors.Info(tc.Title()), marker(tc.ID))
		}
		return
	}

	groups := discovery.NewFilter().GroupByCategory(cases)

	var present []domain.Category
	for _, c := range domain.Categories {
		if len(groups[c]) > 0 {
			present = append(present, c)
		}
	}

	for i, c := range present {
		isLastGroup := i == len(present)-1
		groupConnector, childPrefix := "├── ", "│   "
		if isLastGroup {
			groupConnector, childPrefix = "└── ", "    "
		}
		fmt.Fprintf(f.out, "%s%s (%d)\n", groupConnector, f.colors.Info(c.Label()), len(groups[c]))

		for j, tc := range groups[c] {
			connector := "├── "
			if j == len(groups[c])-1 {
				connector = "└── "
			}
			fmt.Fprintf(f.out, "%s%s%s%s\n", childPrefix, connector, f.colors.Warning(tc.Title()), marker(tc.ID))
		}
	}
}

func (f *Formatter) renderTable(headers []string, rows [][]string) {
	table := tablewriter.NewWriter(f.out)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()
}

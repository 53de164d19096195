package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"sheetrun/internal/domain"
	"sheetrun/internal/storage"
)

// ErrorViewer displays failed cases of the last run in an interactive TUI
type ErrorViewer struct {
	storage storage.Storage
}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer(st storage.Storage) *ErrorViewer {
	return &ErrorViewer{storage: st}
}

// FailedIndexes returns the positions of failed cases in results.Details
func FailedIndexes(results *domain.RunResultsOutput) []int {
	var indexes []int
	for i, d := range results.Details {
		if d.Failed() {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// View displays failed cases in an interactive TUI
func (ev *ErrorViewer) View(results *domain.RunResultsOutput) error {
	failed := FailedIndexes(results)
	if len(failed) == 0 {
		color.Green("✓ No failed cases found!")
		return nil
	}

	detail := func(i int) *domain.CaseResult {
		return &results.Details[failed[i]]
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(i int) string {
		d := detail(i)
		tag := ""
		if d.ExpectedFailure {
			tag = " [gray](expected)"
		}
		if d.Resolved {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s%s[white]", i+1, d.ID, tag)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s%s[white]", i+1, d.ID, tag)
	}

	for i := range failed {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		unresolved := 0
		for i := range failed {
			if !detail(i).Resolved {
				unresolved++
			}
		}
		headerView.SetText(fmt.Sprintf(" Failed cases (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, → details, ← back, Ctrl+C exit ", len(failed), unresolved))
	}

	updateDetails := func() {
		i := list.GetCurrentItem()
		if i >= 0 && i < len(failed) {
			d := detail(i)
			statsView.SetText(FormatFailureStats(d, results.Meta))
			detailsView.SetText(FormatFailureDetails(d))
		}
	}

	updateHeader()

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				i := list.GetCurrentItem()
				if i >= 0 && i < len(failed) {
					d := detail(i)
					d.Resolved = !d.Resolved
					list.SetItemText(i, getListItemText(i), "")
					updateHeader()
					updateDetails()
					if msg := persistResolved(ev.storage, results); msg != "" {
						statsView.SetText(FormatFailureStats(d, results.Meta) + msg)
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// FormatFailureDetails formats a failed case using tview color tags
func FormatFailureDetails(d *domain.CaseResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ Case: %s[white]\n\n", tview.Escape(d.Title))
	fmt.Fprintf(&b, "[cyan]Category:[white] %s\n", d.Category)
	fmt.Fprintf(&b, "[cyan]Attempts:[white] %d   [cyan]Waited:[white] %dms\n\n", d.Attempts, d.WaitMs)

	if d.ExpectedFailure {
		fmt.Fprintf(&b, "[yellow]Documents a known system failure (expected)[white]\n\n")
	}

	fmt.Fprintf(&b, "[yellow]Input:[white]\n%s\n\n", tview.Escape(orNone(d.Input)))
	fmt.Fprintf(&b, "[yellow]Expected:[white]\n%s\n\n", tview.Escape(orNone(d.Expected)))
	fmt.Fprintf(&b, "[yellow]Actual:[white]\n%s\n\n", tview.Escape(orNone(d.Actual)))

	if d.Message != "" {
		fmt.Fprintf(&b, "[yellow]Message:[white]\n%s\n\n", tview.Escape(d.Message))
	}

	if len(d.Screenshots) > 0 {
		fmt.Fprintf(&b, "[yellow]Screenshots:[white]\n")
		for _, s := range d.Screenshots {
			fmt.Fprintf(&b, "  %s\n", tview.Escape(s))
		}
	}

	return b.String()
}

// FormatFailureStats formats the header line shown above the details
func FormatFailureStats(d *domain.CaseResult, meta domain.RunResultsMeta) string {
	return fmt.Sprintf("[cyan]run:[white] [yellow]%s[white]  [cyan]case:[white] [yellow]%s[white]\n", meta.RunID, tview.Escape(d.ID))
}

// persistResolved saves the resolved flags and returns a stats line when that fails
func persistResolved(st storage.Storage, results *domain.RunResultsOutput) string {
	if err := st.SaveOutput(results); err != nil {
		return fmt.Sprintf("[red]Resolved flag not saved: %s[white]\n", tview.Escape(err.Error()))
	}
	return ""
}

func orNone(s string) string {
	if s == "" {
		return "(empty)"
	}
	return s
}

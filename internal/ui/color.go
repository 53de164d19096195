package ui

import (
	"fmt"

	"github.com/fatih/color"

	"sheetrun/internal/domain"
)

// ColorHelper provides utilities for coloring run output
type ColorHelper struct {
	enabled bool
}

// NewColorHelper creates a new color helper
// Colors are enabled only when outputting to a terminal
func NewColorHelper() *ColorHelper {
	return &ColorHelper{
		enabled: !color.NoColor,
	}
}

// Success returns green colored text
func (c *ColorHelper) Success(text string) string {
	if !c.enabled {
		return text
	}
	return color.GreenString(text)
}

// Failure returns red colored text
func (c *ColorHelper) Failure(text string) string {
	if !c.enabled {
		return text
	}
	return color.RedString(text)
}

// Warning returns yellow colored text
func (c *ColorHelper) Warning(text string) string {
	if !c.enabled {
		return text
	}
	return color.YellowString(text)
}

// Info returns cyan colored text
func (c *ColorHelper) Info(text string) string {
	if !c.enabled {
		return text
	}
	return color.CyanString(text)
}

// Muted returns gray colored text
func (c *ColorHelper) Muted(text string) string {
	if !c.enabled {
		return text
	}
	return color.New(color.FgHiBlack).Sprint(text)
}

// FormatVerdict returns appropriately colored verdict text
func (c *ColorHelper) FormatVerdict(result domain.CaseResult) string {
	switch {
	case result.Verdict == domain.VerdictPass:
		return c.Success("✓ PASS")
	case result.Verdict == domain.VerdictFail && result.ExpectedFailure:
		return c.Warning("✗ FAIL (expected)")
	case result.Verdict == domain.VerdictFail:
		return c.Failure("✗ FAIL")
	default:
		return c.Info("ℹ DOCUMENTED")
	}
}

// FormatCount returns colored "n/total" text
func (c *ColorHelper) FormatCount(n, total int, good bool) string {
	text := fmt.Sprintf("%d/%d", n, total)
	if n == 0 {
		return c.Muted(text)
	}
	if good {
		return c.Success(text)
	}
	return c.Failure(text)
}

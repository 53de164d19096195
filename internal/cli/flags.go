package cli

import (
	"time"

	"sheetrun/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	ConfigFile      string
	SpreadsheetPath string
	BaseURL         string
	ResultsDir      string
	Filter          string
	Prefix          string
	CaseID          string
	Categories      []string
	Headed          bool
	Retries         int
	Timeout         time.Duration
	StrictNegative  bool
	OpenFailures    bool
	ByCategory      bool
	Verbose         bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		SpreadsheetPath: f.SpreadsheetPath,
		BaseURL:         f.BaseURL,
		ResultsDir:      f.ResultsDir,
		Filter:          f.Filter,
		Prefix:          f.Prefix,
		CaseID:          f.CaseID,
		Categories:      f.Categories,
		Headed:          f.Headed,
		Retries:         f.Retries,
		Timeout:         f.Timeout,
		StrictNegative:  f.StrictNegative,
		OpenFailures:    f.OpenFailures,
		ByCategory:      f.ByCategory,
		Verbose:         f.Verbose,
	}
}

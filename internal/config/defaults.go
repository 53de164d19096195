package config

import "time"

const (
	// DefaultSpreadsheetPath is the default test case workbook
	DefaultSpreadsheetPath = "test-data/test-cases.xlsx"
	// DefaultConfigFile is the optional YAML overlay read from the working directory
	DefaultConfigFile = "sheetrun.yaml"
	// DefaultBaseURL is the page under test
	DefaultBaseURL = "https://www.swifttranslator.com/"
	// DefaultResultsDir is where results.json and screenshots are written
	DefaultResultsDir = "test-results"
	// DefaultResultsFile is the results file name inside the results directory
	DefaultResultsFile = "results.json"
	// DefaultScreenshotsDir is the screenshot sub-directory of the results directory
	DefaultScreenshotsDir = "screenshots"
	// DefaultInputName is the accessible name of the input textbox
	DefaultInputName = "Input Your Singlish Text Here."
	// DefaultOutputSelector is the style-class selector of the output panel
	DefaultOutputSelector = ".w-full.h-80.p-3.rounded-lg.ring-1.ring-slate-300.whitespace-pre-wrap"
	// DefaultCaseTimeout bounds one attempt of one case
	DefaultCaseTimeout = 60 * time.Second
	// DefaultRetries is the retry budget outside CI
	DefaultRetries = 0
	// DefaultCIRetries is the retry budget when CI is set
	DefaultCIRetries = 2
	// DefaultFieldTimeout bounds waiting for the input/output fields during setup
	DefaultFieldTimeout = 10 * time.Second
	// DefaultOutputTimeout bounds waiting for the output panel before reading it
	DefaultOutputTimeout = 5 * time.Second
	// DefaultSetupSettle is waited after the page is ready
	DefaultSetupSettle = time.Second
	// DefaultClearSettle is waited after the input was cleared
	DefaultClearSettle = 300 * time.Millisecond
	// DefaultWindowWidth and DefaultWindowHeight size the browser window
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
)

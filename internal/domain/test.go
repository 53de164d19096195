package domain

import "fmt"

// Spreadsheet column names recognised by the loader
const (
	ColumnID             = "TC ID"
	ColumnName           = "Test case name"
	ColumnInput          = "Input"
	ColumnExpectedOutput = "Expected output"
	ColumnStatus         = "Status"
)

// TestCase represents a single row loaded from the test case spreadsheet
type TestCase struct {
	ID             string // TC ID, prefix encodes the category (Pos_Fun, Neg_UI, ...)
	Name           string // Test case name
	Input          string // Text typed into the page, may be empty
	ExpectedOutput string // Text expected in the output panel, may be empty
	Status         string // Free text, lower-cased; informational only
}

// Title returns the name the case is reported under
func (tc TestCase) Title() string {
	return fmt.Sprintf("%s: %s", tc.ID, tc.Name)
}

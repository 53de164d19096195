// Package sheet loads test cases from the first sheet of a workbook.
package sheet

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"sheetrun/internal/domain"
)

// HeaderToken is the cell that marks the header row
const HeaderToken = domain.ColumnID

// ErrSpreadsheetNotFound is returned when the workbook is missing or unreadable
var ErrSpreadsheetNotFound = errors.New("spreadsheet not found")

// HeaderNotFoundError is returned when no row of the sheet contains HeaderToken
type HeaderNotFoundError struct {
	Sheet string
	Rows  int
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("could not find header row containing %q in sheet %q (%d rows scanned)", HeaderToken, e.Sheet, e.Rows)
}

// Loader reads test cases from spreadsheet files
type Loader struct {
	log logrus.FieldLogger
}

// NewLoader creates a new Loader
func NewLoader(log logrus.FieldLogger) *Loader {
	return &Loader{log: log.WithField("component", "sheet")}
}

// Load reads the first sheet of the workbook at path
func (l *Loader) Load(path string) ([]domain.TestCase, error) {
	l.log.WithField("path", path).Info("Reading test cases")

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSpreadsheetNotFound, path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSpreadsheetNotFound, path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &HeaderNotFoundError{}
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	cases, err := Parse(rows)
	if err != nil {
		var headerErr *HeaderNotFoundError
		if errors.As(err, &headerErr) {
			headerErr.Sheet = sheets[0]
		}
		return nil, err
	}

	l.log.WithField("count", len(cases)).Info("Successfully read test cases")
	l.logDistribution(cases)

	return cases, nil
}

func (l *Loader) logDistribution(cases []domain.TestCase) {
	dist := Distribution(cases)
	fields := logrus.Fields{}
	for _, prefix := range DistributionPrefixes {
		fields[prefix] = dist[prefix]
	}
	l.log.WithFields(fields).Info("Test case distribution")
}

// Parse turns a raw cell grid into test cases.
// The first row holding a cell equal to HeaderToken names the columns; rows
// above it are ignored, blank rows and rows without an ID are skipped.
func Parse(rows [][]string) ([]domain.TestCase, error) {
	headerIndex := -1
	for i, row := range rows {
		if containsCell(row, HeaderToken) {
			headerIndex = i
			break
		}
	}
	if headerIndex == -1 {
		return nil, &HeaderNotFoundError{Rows: len(rows)}
	}

	columns := make(map[string]int)
	for i, header := range rows[headerIndex] {
		name := strings.TrimSpace(header)
		if name == "" {
			continue
		}
		// later duplicates overwrite earlier ones
		columns[name] = i
	}

	cell := func(row []string, column string) string {
		i, ok := columns[column]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var cases []domain.TestCase
	for _, row := range rows[headerIndex+1:] {
		if isBlank(row) {
			continue
		}

		tc := domain.TestCase{
			ID:             cell(row, domain.ColumnID),
			Name:           cell(row, domain.ColumnName),
			Input:          cell(row, domain.ColumnInput),
			ExpectedOutput: cell(row, domain.ColumnExpectedOutput),
			Status:         strings.ToLower(cell(row, domain.ColumnStatus)),
		}
		if tc.ID == "" {
			continue
		}
		cases = append(cases, tc)
	}

	return cases, nil
}

func containsCell(row []string, value string) bool {
	for _, c := range row {
		if c == value {
			return true
		}
	}
	return false
}

func isBlank(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}

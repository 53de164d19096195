package sheet

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"sheetrun/internal/domain"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var header = []string{"TC ID", "Test case name", "Input", "Expected output", "Status"}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected []domain.TestCase
	}{
		{
			name: "header on first row",
			rows: [][]string{
				header,
				{"Pos_Fun_01", "Simple sentence", "mama gedara yanawa", "මම ගෙදර යනවා", "Pass"},
			},
			expected: []domain.TestCase{
				{ID: "Pos_Fun_01", Name: "Simple sentence", Input: "mama gedara yanawa", ExpectedOutput: "මම ගෙදර යනවා", Status: "pass"},
			},
		},
		{
			name: "header found below title rows",
			rows: [][]string{
				{"Assignment 1"},
				{},
				{"", "Student", "IT0000"},
				header,
				{"Neg_UI_01", "Long text", "abc", "", ""},
			},
			expected: []domain.TestCase{
				{ID: "Neg_UI_01", Name: "Long text", Input: "abc"},
			},
		},
		{
			name: "cells are trimmed and missing cells are empty",
			rows: [][]string{
				{" TC ID", "TC ID", " Test case name ", "Input"},
				{"ignored", "  Pos_UI_05  ", "  Empty input "},
			},
			expected: []domain.TestCase{
				{ID: "Pos_UI_05", Name: "Empty input"},
			},
		},
		{
			name: "blank rows and rows without an id are skipped",
			rows: [][]string{
				header,
				{"", "", "", ""},
				{},
				{"   ", "no id", "input", "output"},
				{"Neg_Fun_02", "Garbled", "xyz123", "(unchanged or garbled)"},
			},
			expected: []domain.TestCase{
				{ID: "Neg_Fun_02", Name: "Garbled", Input: "xyz123", ExpectedOutput: "(unchanged or garbled)"},
			},
		},
		{
			name: "numeric cells are kept as text",
			rows: [][]string{
				header,
				{"Pos_Fun_10", "Numbers", "2024", "2024"},
			},
			expected: []domain.TestCase{
				{ID: "Pos_Fun_10", Name: "Numbers", Input: "2024", ExpectedOutput: "2024"},
			},
		},
		{
			name:     "header only",
			rows:     [][]string{header},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cases, err := Parse(tt.rows)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cases)
		})
	}
}

func TestParse_NeverReturnsEmptyIDs(t *testing.T) {
	rows := [][]string{header}
	for _, id := range []string{"", " ", "Pos_Fun_01", "\t", "Neg_UI_02", ""} {
		rows = append(rows, []string{id, "name", "in", "out"})
	}

	cases, err := Parse(rows)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	for _, tc := range cases {
		assert.NotEmpty(t, tc.ID)
	}
}

func TestParse_HeaderNotFound(t *testing.T) {
	rows := [][]string{
		{"TC  ID", "Input"},
		{"tc id"},
		{" TC ID "},
	}

	_, err := Parse(rows)
	var headerErr *HeaderNotFoundError
	require.True(t, errors.As(err, &headerErr))
	assert.Equal(t, 3, headerErr.Rows)
}

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}

	path := filepath.Join(t.TempDir(), "cases.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"ITPM Assignment"},
		{},
		{"TC ID", "Test case name", "Input", "Expected output", "Status"},
		{"Pos_Fun_01", "Simple sentence", "mama gedara yanawa", "මම ගෙදර යනවා", "Pass"},
		{},
		{"Neg_Fun_02", "Garbled", "xyz123", "(unchanged or garbled)", "Fail"},
		{"Pos_UI_05", "Empty input", "", "", ""},
		{"", "orphan", "text"},
		{"Other_01", "Number input", 42, 42},
	})

	cases, err := NewLoader(testLogger()).Load(path)
	require.NoError(t, err)
	require.Len(t, cases, 4)

	assert.Equal(t, "Pos_Fun_01", cases[0].ID)
	assert.Equal(t, "මම ගෙදර යනවා", cases[0].ExpectedOutput)
	assert.Equal(t, "Neg_Fun_02", cases[1].ID)
	assert.Equal(t, "fail", cases[1].Status)
	assert.Equal(t, "", cases[2].Input)
	assert.Equal(t, "42", cases[3].Input)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := NewLoader(testLogger()).Load(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.ErrorIs(t, err, ErrSpreadsheetNotFound)
}

func TestLoader_Load_NotAWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, writeFile(path, "not a zip"))

	_, err := NewLoader(testLogger()).Load(path)
	assert.ErrorIs(t, err, ErrSpreadsheetNotFound)
}

func TestLoader_Load_HeaderNotFound(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"ID", "Name"},
		{"Pos_Fun_01", "x"},
	})

	_, err := NewLoader(testLogger()).Load(path)
	var headerErr *HeaderNotFoundError
	require.True(t, errors.As(err, &headerErr))
	assert.Equal(t, "Sheet1", headerErr.Sheet)
}

func TestDistribution(t *testing.T) {
	cases := []domain.TestCase{
		{ID: "Pos_Fun_01"}, {ID: "Pos_Fun_02"}, {ID: "Neg_Fun_01"},
		{ID: "Pos_UI_01"}, {ID: "Neg_UI_01"}, {ID: "Neg_UI_02"}, {ID: "Misc_01"},
	}

	dist := Distribution(cases)
	assert.Equal(t, map[string]int{"Pos_Fun": 2, "Neg_Fun": 1, "Pos_UI": 1, "Neg_UI": 2}, dist)
}

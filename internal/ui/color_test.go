package ui

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"sheetrun/internal/domain"
)

func TestColorHelper_FormatVerdict(t *testing.T) {
	// Disable colors for consistent testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	helper := NewColorHelper()

	tests := []struct {
		name     string
		result   domain.CaseResult
		expected string
	}{
		{"pass", domain.CaseResult{Verdict: domain.VerdictPass}, "✓ PASS"},
		{"fail", domain.CaseResult{Verdict: domain.VerdictFail}, "✗ FAIL"},
		{"expected fail", domain.CaseResult{Verdict: domain.VerdictFail, ExpectedFailure: true}, "✗ FAIL (expected)"},
		{"documented", domain.CaseResult{Verdict: domain.VerdictDocumented}, "ℹ DOCUMENTED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, helper.FormatVerdict(tt.result))
		})
	}
}

func TestColorHelper_FormatCount(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	helper := NewColorHelper()
	assert.Equal(t, "3/5", helper.FormatCount(3, 5, true))
	assert.Equal(t, "0/5", helper.FormatCount(0, 5, false))
}

package discovery

import (
	"path/filepath"
	"strings"

	"sheetrun/internal/classify"
	"sheetrun/internal/domain"
)

// Filter selects test cases by ID pattern or category
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// ByPattern filters cases by ID pattern using wildcard matching
// Supports patterns like "Pos_Fun_*" or "*UI*"
func (f *Filter) ByPattern(cases []domain.TestCase, pattern string) []domain.TestCase {
	if pattern == "" {
		return cases
	}

	var filtered []domain.TestCase

	for _, tc := range cases {
		// Try to match using filepath.Match (supports * and ? wildcards)
		matched, err := filepath.Match(pattern, tc.ID)
		if err == nil && matched {
			filtered = append(filtered, tc)
			continue
		}

		// If pattern contains wildcards but filepath.Match didn't match,
		// require every non-empty part to appear in the ID
		if strings.Contains(pattern, "*") {
			if matchParts(tc.ID, strings.Split(pattern, "*")) {
				filtered = append(filtered, tc)
			}
			continue
		}

		// If no wildcards, do a simple contains check
		if !strings.Contains(pattern, "?") && strings.Contains(tc.ID, pattern) {
			filtered = append(filtered, tc)
		}
	}

	return filtered
}

func matchParts(id string, parts []string) bool {
	hasNonEmptyPart := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		hasNonEmptyPart = true
		if !strings.Contains(id, part) {
			return false
		}
	}
	return hasNonEmptyPart
}

// ByCategory keeps cases whose classified category is one of categories.
// No categories keeps everything.
func (f *Filter) ByCategory(cases []domain.TestCase, categories ...domain.Category) []domain.TestCase {
	if len(categories) == 0 {
		return cases
	}

	want := make(map[domain.Category]bool, len(categories))
	for _, c := range categories {
		want[c] = true
	}

	var filtered []domain.TestCase
	for _, tc := range cases {
		if want[classify.Classify(tc)] {
			filtered = append(filtered, tc)
		}
	}
	return filtered
}

// ByPrefix keeps cases whose ID starts with prefix, e.g. "Pos_Fun"
func (f *Filter) ByPrefix(cases []domain.TestCase, prefix string) []domain.TestCase {
	var filtered []domain.TestCase
	for _, tc := range cases {
		if strings.HasPrefix(tc.ID, prefix) {
			filtered = append(filtered, tc)
		}
	}
	return filtered
}

// FindByID returns the case with the given ID
func (f *Filter) FindByID(cases []domain.TestCase, id string) (domain.TestCase, bool) {
	for _, tc := range cases {
		if tc.ID == id {
			return tc, true
		}
	}
	return domain.TestCase{}, false
}

// GroupByCategory buckets cases by category, preserving spreadsheet order within each bucket
func (f *Filter) GroupByCategory(cases []domain.TestCase) map[domain.Category][]domain.TestCase {
	groups := make(map[domain.Category][]domain.TestCase)
	for _, tc := range cases {
		c := classify.Classify(tc)
		groups[c] = append(groups[c], tc)
	}
	return groups
}

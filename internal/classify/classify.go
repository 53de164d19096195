// Package classify derives a test case category from its ID.
//
// IDs carry overlapping markers (an ID can be both positive and UI, or
// contain both "Fun" and "UI"), so classification walks a single ordered
// rule list and the first match wins.
package classify

import (
	"strings"

	"sheetrun/internal/domain"
)

type rule struct {
	category domain.Category
	match    func(id string) bool
}

var rules = []rule{
	{domain.CategoryPositiveFunctional, func(id string) bool { return isPositive(id) && isFunctional(id) }},
	{domain.CategoryPositiveUI, func(id string) bool { return isPositive(id) && isUI(id) }},
	{domain.CategoryNegativeFunctional, func(id string) bool { return isNegative(id) && isFunctional(id) }},
	{domain.CategoryNegativeUI, func(id string) bool { return isNegative(id) && isUI(id) }},
}

// Classify returns the category of a test case
func Classify(tc domain.TestCase) domain.Category {
	return ClassifyID(tc.ID)
}

// ClassifyID returns the category encoded in a test case ID
func ClassifyID(id string) domain.Category {
	for _, r := range rules {
		if r.match(id) {
			return r.category
		}
	}
	return domain.CategoryOther
}

func isPositive(id string) bool   { return strings.HasPrefix(id, "Pos") }
func isNegative(id string) bool   { return strings.HasPrefix(id, "Neg") }
func isFunctional(id string) bool { return strings.Contains(id, "Fun") }
func isUI(id string) bool         { return strings.Contains(id, "UI") }

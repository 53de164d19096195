package domain

// Category is the kind of test case, derived from its ID
type Category int

const (
	CategoryOther Category = iota
	CategoryPositiveFunctional
	CategoryPositiveUI
	CategoryNegativeFunctional
	CategoryNegativeUI
)

// Categories lists every category in classification order
var Categories = []Category{
	CategoryPositiveFunctional,
	CategoryPositiveUI,
	CategoryNegativeFunctional,
	CategoryNegativeUI,
	CategoryOther,
}

func (c Category) String() string {
	switch c {
	case CategoryPositiveFunctional:
		return "positive-functional"
	case CategoryPositiveUI:
		return "positive-ui"
	case CategoryNegativeFunctional:
		return "negative-functional"
	case CategoryNegativeUI:
		return "negative-ui"
	default:
		return "other"
	}
}

// Label returns a human readable name for the category
func (c Category) Label() string {
	switch c {
	case CategoryPositiveFunctional:
		return "Positive Functional"
	case CategoryPositiveUI:
		return "Positive UI"
	case CategoryNegativeFunctional:
		return "Negative Functional"
	case CategoryNegativeUI:
		return "Negative UI"
	default:
		return "Other"
	}
}

// ParseCategory converts the String form back into a Category
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if c.String() == s {
			return c, true
		}
	}
	return CategoryOther, false
}

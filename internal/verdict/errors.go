package verdict

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// AssertionError is returned in an Outcome when an assertion fails
type AssertionError struct {
	Kind     string // Assertion type, e.g. "text_equals"
	Expected string
	Actual   string
	Hint     string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "assertion failed: %s\n", e.Kind)
	fmt.Fprintf(&buf, "  Expected: %q (%d chars)\n", e.Expected, utf8.RuneCountInString(e.Expected))
	fmt.Fprintf(&buf, "  Actual:   %q (%d chars)", e.Actual, utf8.RuneCountInString(e.Actual))
	if e.Hint != "" {
		fmt.Fprintf(&buf, "\n  %s", e.Hint)
	}

	return buf.String()
}

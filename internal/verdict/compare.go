package verdict

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Normalize trims s and collapses every whitespace run to a single space
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TextEquals compares two outputs after whitespace normalization
func TextEquals(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// mismatchHint describes why two unequal outputs differ, for the failure log
func mismatchHint(actual, expected string) string {
	a, e := Normalize(actual), Normalize(expected)
	switch {
	case a == "":
		return "output panel was empty"
	case norm.NFC.String(a) == norm.NFC.String(e):
		return "outputs differ only in Unicode normalization"
	case utf8.RuneCountInString(a) != utf8.RuneCountInString(e):
		return "outputs differ in length"
	default:
		return "outputs differ in content"
	}
}

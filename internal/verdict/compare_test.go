package verdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextEquals(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected bool
	}{
		{"identical", "මම ගෙදර යනවා", "මම ගෙදර යනවා", true},
		{"collapsed internal whitespace", "a  b", "a b", true},
		{"tabs and newlines", "a\t\nb", "a b", true},
		{"surrounding whitespace", "  a b \n", "a b", true},
		{"both empty", "", "   ", true},
		{"different text", "a", "b", false},
		{"missing space", "ab", "a b", false},
		{"case sensitive", "A", "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TextEquals(tt.a, tt.b))
			assert.Equal(t, tt.expected, TextEquals(tt.b, tt.a), "symmetric")
		})
	}
}

func TestTextEquals_Reflexive(t *testing.T) {
	for _, s := range []string{"", " ", "x", "a  b\tc", "ශ්‍රී ලංකාව"} {
		assert.True(t, TextEquals(s, s), s)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a b c", Normalize("  a   b\n\nc "))
}

func TestMismatchHint(t *testing.T) {
	assert.Equal(t, "output panel was empty", mismatchHint("", "x"))
	// precomposed é vs e + combining acute
	assert.Equal(t, "outputs differ only in Unicode normalization", mismatchHint("caf\u00e9", "cafe\u0301"))
	assert.Equal(t, "outputs differ in length", mismatchHint("abc", "ab"))
	assert.Equal(t, "outputs differ in content", mismatchHint("abc", "abd"))
}

func TestAssertionError_Error(t *testing.T) {
	err := &AssertionError{Kind: "text_equals", Expected: "ab", Actual: "a", Hint: "outputs differ in length"}

	msg := err.Error()
	assert.Contains(t, msg, "assertion failed: text_equals")
	assert.Contains(t, msg, `Expected: "ab" (2 chars)`)
	assert.Contains(t, msg, `Actual:   "a" (1 chars)`)
	assert.Contains(t, msg, "outputs differ in length")
}

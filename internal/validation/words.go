// Package validation checks the structural and referential integrity of game content.
package validation

import (
	"strings"
	"unicode"
)

// DefaultMaxWords is the longest text a ticket, attachment or rule may show
const DefaultMaxWords = 8

// CountWords counts whitespace-separated tokens. The ASCII information
// separators U+001C to U+001F also split words.
func CountWords(text string) int {
	return len(strings.FieldsFunc(text, isWordBreak))
}

func isWordBreak(r rune) bool {
	return unicode.IsSpace(r) || r >= 0x1c && r <= 0x1f
}

// WithinWordLimit reports whether text has at most maxWords words
func WithinWordLimit(text string, maxWords int) bool {
	return CountWords(text) <= maxWords
}

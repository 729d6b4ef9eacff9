package textutil

import (
	"strings"
	"unicode"
)

// DefaultAllowed is the set of extra characters kept by SafeFilename besides letters and numbers.
const DefaultAllowed = "."

// SafeFilename returns a lower case, filesystem safe stem for text.
// Spaces become underscores, every other rune that is neither a letter, a number
// nor part of allowed is dropped.
func SafeFilename(text, allowed string) string {
	text = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(text)), " ", "_")

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || strings.ContainsRune(allowed, r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Stem is SafeFilename with DefaultAllowed.
func Stem(text string) string {
	return SafeFilename(text, DefaultAllowed)
}

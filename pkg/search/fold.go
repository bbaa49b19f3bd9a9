package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lower-cases the text and strips combining diacritical marks, so that
// "Ñuñoa" matches "nunoa". Both haystack and needle go through the same
// normalization before substring comparison.
func Fold(text string) string {
	folded, _, err := transform.String(foldChain, text)
	if err != nil {
		folded = text
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// ContainsFolded reports whether needle occurs in haystack after folding.
// An empty needle matches everything.
func ContainsFolded(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}

package dupes

import (
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// DefaultSimilarityThreshold is the minimum similarity ratio for two payee
// names to count as a fuzzy match.
const DefaultSimilarityThreshold = 0.8

// FuzzyMatchPayee reports whether two payee names are similar enough to be
// treated as the same merchant. Comparison is case-insensitive over trimmed
// strings; an empty payee on either side never matches.
func FuzzyMatchPayee(payee1, payee2 string, threshold float64) bool {
	if payee1 == "" || payee2 == "" {
		return false
	}

	p1 := strings.ToLower(strings.TrimSpace(payee1))
	p2 := strings.ToLower(strings.TrimSpace(payee2))

	if p1 == p2 {
		return true
	}

	// DefaultOptions charges 2 for a substitution, so the ratio comes out as
	// (lenSum - distance) / lenSum, the usual matching-characters measure.
	ratio := levenshtein.RatioForStrings([]rune(p1), []rune(p2), levenshtein.DefaultOptions)
	return ratio >= threshold
}

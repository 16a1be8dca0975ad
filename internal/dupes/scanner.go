package dupes

import (
	"sort"

	"github.com/joshsymonds/dupewatch/internal/model"
)

// ProgressFunc is called by FindDuplicates after each lead transaction has
// been compared against all later ones, with the number of lead positions
// done and the total. It exists so callers can drive a progress bar; it has
// no effect on results.
type ProgressFunc func(done, total int)

// FindDuplicates compares every transaction against all later ones and
// returns the pairs that score above zero, sorted by confidence (highest
// first) and then by the earlier transaction's date (newest first). The
// input slice is not modified. Relative order of matches with equal
// confidence and equal date is unspecified.
//
// The scan is O(n²) over the input, which is fine for the size of a typical
// personal-finance export. progress may be nil.
func FindDuplicates(transactions []model.Transaction, daysWindow int, progress ProgressFunc) []model.DuplicateMatch {
	var matches []model.DuplicateMatch

	for i, t1 := range transactions {
		for _, t2 := range transactions[i+1:] {
			confidence, reason := Score(t1, t2, daysWindow)
			if confidence > 0 {
				matches = append(matches, model.DuplicateMatch{
					Transaction1: t1,
					Transaction2: t2,
					Confidence:   confidence,
					Reason:       reason,
				})
			}
		}
		if progress != nil {
			progress(i+1, len(transactions))
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Confidence != matches[j].Confidence {
			return matches[i].Confidence > matches[j].Confidence
		}
		return matches[i].Transaction1.Date.After(matches[j].Transaction1.Date)
	})

	return matches
}

// FilterByConfidence returns the matches scoring at or above minConfidence,
// preserving order. Rendering layers apply this after the scan so the scan
// itself stays filter-agnostic.
func FilterByConfidence(matches []model.DuplicateMatch, minConfidence int) []model.DuplicateMatch {
	var kept []model.DuplicateMatch
	for _, m := range matches {
		if m.Confidence >= minConfidence {
			kept = append(kept, m)
		}
	}
	return kept
}

// Package dupes implements duplicate-transaction detection: a confidence
// scorer for transaction pairs and a pairwise scanner over a full export.
package dupes

import (
	"fmt"
	"strings"
	"time"

	"github.com/joshsymonds/dupewatch/internal/model"
)

// Score rates how likely t1 and t2 are duplicates of one another, given a
// date-proximity window in days. It returns a confidence of 0-5 and a
// human-readable reason; 0 means the pair is not a candidate and carries an
// empty reason.
//
// Scoring:
//   - 5: same date, same amount, exact payee
//   - 4: same date, same amount, fuzzy payee
//   - 3: same date, same amount, no payee match
//   - 3: within window, same amount, exact payee
//   - 2: within window, same amount, fuzzy payee
//   - 1: within window, same amount, no payee match
//
// The two confidence-3 rows are intentional: a same-date amount collision
// ranks as high as an exact payee repeat a day or two apart.
//
// Callers must pass a non-negative daysWindow and should pass t1 as the
// transaction that appeared earlier in the source so the reasons read
// naturally.
func Score(t1, t2 model.Transaction, daysWindow int) (int, string) {
	// Amount must match exactly for any duplicate.
	if !t1.Amount.Equal(t2.Amount) {
		return 0, ""
	}

	dateDiff := daysApart(t1.Date, t2.Date)
	if dateDiff > daysWindow {
		return 0, ""
	}
	sameDate := dateDiff == 0

	exactPayee := false
	if t1.Payee != "" && t2.Payee != "" {
		exactPayee = strings.EqualFold(t1.Payee, t2.Payee)
	}
	fuzzyPayee := false
	if !exactPayee {
		fuzzyPayee = FuzzyMatchPayee(t1.Payee, t2.Payee, DefaultSimilarityThreshold)
	}

	switch {
	case sameDate && exactPayee:
		return 5, "Same date, amount, and exact payee match"
	case sameDate && fuzzyPayee:
		return 4, "Same date, amount, and fuzzy payee match"
	case sameDate:
		return 3, "Same date and amount (no payee match)"
	case exactPayee:
		return 3, fmt.Sprintf("Within %d days, amount, and exact payee match", daysWindow)
	case fuzzyPayee:
		return 2, fmt.Sprintf("Within %d days, amount, and fuzzy payee match", daysWindow)
	default:
		return 1, fmt.Sprintf("Within %d days, same amount (no payee match)", daysWindow)
	}
}

// daysApart returns the absolute difference between two dates in whole days.
// Both dates are expected at midnight, so the division is exact.
func daysApart(a, b time.Time) int {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int(d / (24 * time.Hour))
}

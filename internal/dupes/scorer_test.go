package dupes

import (
	"testing"
	"time"

	"github.com/joshsymonds/dupewatch/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testTxn(t *testing.T, date string, payee string, amount string, row int) model.Transaction {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("bad test amount %q: %v", amount, err)
	}
	return model.Transaction{
		Account:   "Checking",
		Date:      d.UTC(),
		Payee:     payee,
		Amount:    amt,
		RowNumber: row,
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name           string
		t1             model.Transaction
		t2             model.Transaction
		daysWindow     int
		wantConfidence int
		wantReason     string
	}{
		{
			name:           "same date and exact payee",
			t1:             testTxn(t, "2025-11-20", "Starbucks", "-5.50", 2),
			t2:             testTxn(t, "2025-11-20", "Starbucks", "-5.50", 3),
			daysWindow:     2,
			wantConfidence: 5,
			wantReason:     "Same date, amount, and exact payee match",
		},
		{
			name:           "exact payee is case insensitive",
			t1:             testTxn(t, "2025-11-20", "starbucks", "-5.50", 2),
			t2:             testTxn(t, "2025-11-20", "STARBUCKS", "-5.50", 3),
			daysWindow:     2,
			wantConfidence: 5,
			wantReason:     "Same date, amount, and exact payee match",
		},
		{
			name:           "same date and fuzzy payee",
			t1:             testTxn(t, "2025-11-20", "Starbucks", "-5.50", 2),
			t2:             testTxn(t, "2025-11-20", "Starbuck", "-5.50", 3),
			daysWindow:     2,
			wantConfidence: 4,
			wantReason:     "Same date, amount, and fuzzy payee match",
		},
		{
			name:           "same date without payee match",
			t1:             testTxn(t, "2025-11-20", "Starbucks", "-5.50", 2),
			t2:             testTxn(t, "2025-11-20", "Walmart", "-5.50", 3),
			daysWindow:     2,
			wantConfidence: 3,
			wantReason:     "Same date and amount (no payee match)",
		},
		{
			name:           "within window with exact payee",
			t1:             testTxn(t, "2025-11-20", "Amazon", "-20.00", 2),
			t2:             testTxn(t, "2025-11-22", "Amazon", "-20.00", 3),
			daysWindow:     2,
			wantConfidence: 3,
			wantReason:     "Within 2 days, amount, and exact payee match",
		},
		{
			name:           "within window with fuzzy payee",
			t1:             testTxn(t, "2025-11-20", "Starbucks", "-5.50", 2),
			t2:             testTxn(t, "2025-11-21", "Starbuck", "-5.50", 3),
			daysWindow:     2,
			wantConfidence: 2,
			wantReason:     "Within 2 days, amount, and fuzzy payee match",
		},
		{
			name:           "within window without payee match",
			t1:             testTxn(t, "2025-11-20", "Starbucks", "-5.50", 2),
			t2:             testTxn(t, "2025-11-21", "Walmart", "-5.50", 3),
			daysWindow:     2,
			wantConfidence: 1,
			wantReason:     "Within 2 days, same amount (no payee match)",
		},
		{
			name:           "different amounts never match",
			t1:             testTxn(t, "2025-11-20", "Starbucks", "-5.50", 2),
			t2:             testTxn(t, "2025-11-20", "Starbucks", "-10.00", 3),
			daysWindow:     2,
			wantConfidence: 0,
			wantReason:     "",
		},
		{
			name:           "outside window never matches",
			t1:             testTxn(t, "2025-11-20", "Starbucks", "-5.50", 2),
			t2:             testTxn(t, "2025-11-25", "Starbucks", "-5.50", 3),
			daysWindow:     2,
			wantConfidence: 0,
			wantReason:     "",
		},
		{
			name:           "wider window covers the same pair",
			t1:             testTxn(t, "2025-11-20", "Store", "-10.00", 2),
			t2:             testTxn(t, "2025-11-25", "Store", "-10.00", 3),
			daysWindow:     5,
			wantConfidence: 3,
			wantReason:     "Within 5 days, amount, and exact payee match",
		},
		{
			name:           "zero window requires same date",
			t1:             testTxn(t, "2025-11-20", "Store", "-10.00", 2),
			t2:             testTxn(t, "2025-11-21", "Store", "-10.00", 3),
			daysWindow:     0,
			wantConfidence: 0,
			wantReason:     "",
		},
		{
			name:           "empty payees fall through to amount and date only",
			t1:             testTxn(t, "2025-11-20", "", "-5.50", 2),
			t2:             testTxn(t, "2025-11-20", "", "-5.50", 3),
			daysWindow:     2,
			wantConfidence: 3,
			wantReason:     "Same date and amount (no payee match)",
		},
		{
			name:           "same cent value in different textual forms",
			t1:             testTxn(t, "2025-11-20", "Store", "-5.50", 2),
			t2:             testTxn(t, "2025-11-20", "Store", "-5.5", 3),
			daysWindow:     2,
			wantConfidence: 5,
			wantReason:     "Same date, amount, and exact payee match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confidence, reason := Score(tt.t1, tt.t2, tt.daysWindow)
			assert.Equal(t, tt.wantConfidence, confidence)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestScoreMonotonicity(t *testing.T) {
	// Moving the second transaction closer in time must never lower the
	// confidence, for matching and non-matching payees alike.
	for _, payee2 := range []string{"Starbucks", "Starbuck", "Walmart"} {
		t1 := testTxn(t, "2025-11-20", "Starbucks", "-5.50", 2)
		far, _ := Score(t1, testTxn(t, "2025-11-22", payee2, "-5.50", 3), 2)
		near, _ := Score(t1, testTxn(t, "2025-11-20", payee2, "-5.50", 3), 2)
		assert.GreaterOrEqual(t, near, far, "payee %q", payee2)
	}
}

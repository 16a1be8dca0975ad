package report

import (
	"bytes"
	"testing"

	"github.com/joshsymonds/dupewatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTextNoDuplicates(t *testing.T) {
	var buf bytes.Buffer
	err := RenderText(&buf, Result{
		File:          "register.csv",
		DaysWindow:    2,
		MinConfidence: 5,
		Loaded:        3,
		TotalRead:     3,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Reading transactions from: register.csv")
	assert.Contains(t, out, "Date proximity window: 2 days")
	assert.Contains(t, out, "Minimum confidence level: 5/5")
	assert.Contains(t, out, "Loaded 3 transactions")
	assert.Contains(t, out, "No potential duplicates found.")
	assert.NotContains(t, out, "Filtering transactions from")
}

func TestRenderTextWithMatches(t *testing.T) {
	match := model.DuplicateMatch{
		Transaction1: reportTxn(t, "2025-11-20", "Starbucks", "-5.50", 2),
		Transaction2: reportTxn(t, "2025-11-20", "Starbucks", "-5.50", 7),
		Confidence:   5,
		Reason:       "Same date, amount, and exact payee match",
	}

	var buf bytes.Buffer
	err := RenderText(&buf, Result{
		File:          "register.csv",
		DaysWindow:    2,
		MinConfidence: 5,
		StartDate:     "2025-11-01",
		Loaded:        8,
		TotalRead:     10,
		Matches:       []model.DuplicateMatch{match},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Filtering transactions from: 2025-11-01")
	assert.Contains(t, out, "Loaded 8 transactions (filtered from 10 by start date)")
	assert.Contains(t, out, "Found 1 potential duplicate pair(s):")
	assert.Contains(t, out, "Duplicate #1 (Confidence: 5/5)")
	assert.Contains(t, out, "Reason: Same date, amount, and exact payee match")
	assert.Contains(t, out, "Row 2: 2025-11-20")
	assert.Contains(t, out, "Row 7: 2025-11-20")
	assert.Contains(t, out, "-$5.50")
}

// Package model defines the core domain types shared across the application.
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single ledger entry from a personal-finance export.
// Amounts are signed: outflows negative, inflows positive. Dates carry no
// time component; readers truncate to midnight UTC.
type Transaction struct {
	Date      time.Time
	Account   string
	Payee     string
	Memo      string
	Amount    decimal.Decimal
	RowNumber int
}

// String formats the transaction for display in text reports.
func (t Transaction) String() string {
	sign := "+"
	if t.Amount.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("Row %d: %s | %-30s | %s$%s",
		t.RowNumber,
		t.Date.Format("2006-01-02"),
		t.Payee,
		sign,
		t.Amount.Abs().StringFixed(2))
}

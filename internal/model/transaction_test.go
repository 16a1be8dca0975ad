package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionString(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{
			name:   "outflow shows minus sign",
			amount: "-5.50",
			want:   "Row 2: 2025-11-20 | Starbucks                      | -$5.50",
		},
		{
			name:   "inflow shows plus sign",
			amount: "100.00",
			want:   "Row 2: 2025-11-20 | Starbucks                      | +$100.00",
		},
		{
			name:   "short textual form still shows cents",
			amount: "-5.5",
			want:   "Row 2: 2025-11-20 | Starbucks                      | -$5.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := Transaction{
				Date:      time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
				Payee:     "Starbucks",
				Amount:    decimal.RequireFromString(tt.amount),
				RowNumber: 2,
			}
			assert.Equal(t, tt.want, txn.String())
		})
	}
}

package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/joshsymonds/dupewatch/internal/model"
	"github.com/shopspring/decimal"
)

// CSV column headers recognized in YNAB register exports.
const (
	colAccount = "Account"
	colDate    = "Date"
	colPayee   = "Payee"
	colMemo    = "Memo"
	colOutflow = "Outflow"
	colInflow  = "Inflow"
)

// ReadCSV reads transactions from a YNAB register export. Rows are numbered
// from 2 (the header is row 1) so reported positions line up with what the
// user sees in a spreadsheet. Rows with a blank date are skipped silently;
// rows with an unparseable date are skipped with a warning. One bad row
// never aborts the rest of the file.
func ReadCSV(r io.Reader) ([]model.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var transactions []model.Transaction
	rowNumber := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNumber++
		if err != nil {
			slog.Warn("Skipping unreadable CSV row",
				"row", rowNumber,
				"error", err)
			continue
		}

		dateStr := strings.TrimSpace(fieldAt(record, columns, colDate))
		if dateStr == "" {
			continue
		}

		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			slog.Warn("Invalid date format, skipping row",
				"row", rowNumber,
				"date", dateStr)
			continue
		}

		transactions = append(transactions, model.Transaction{
			Account:   strings.TrimSpace(fieldAt(record, columns, colAccount)),
			Date:      date.UTC(),
			Payee:     strings.TrimSpace(fieldAt(record, columns, colPayee)),
			Amount:    parseAmount(fieldAt(record, columns, colOutflow), fieldAt(record, columns, colInflow)),
			Memo:      strings.TrimSpace(fieldAt(record, columns, colMemo)),
			RowNumber: rowNumber,
		})
	}

	return transactions, nil
}

// fieldAt looks up a named column in a record, tolerating short rows and
// missing headers.
func fieldAt(record []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

// parseAmount combines the Outflow/Inflow columns into a single signed
// amount: outflows negative, inflows positive.
func parseAmount(outflow, inflow string) decimal.Decimal {
	return parseMoney(inflow).Sub(parseMoney(outflow))
}

// parseMoney parses a currency cell, stripping dollar signs and thousands
// separators. Blank or unparseable cells count as zero, matching how banks
// leave the unused side of an outflow/inflow pair empty.
func parseMoney(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.NewReplacer("$", "", ",", "").Replace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

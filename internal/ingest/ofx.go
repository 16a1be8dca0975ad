package ingest

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/joshsymonds/dupewatch/internal/model"
	"github.com/shopspring/decimal"
)

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagRegex  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocessOFX fixes common formatting issues banks ship in OFX files:
// leading whitespace before the header, mixed-case SEVERITY values, and
// SGML-style tags missing their closing bracket.
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	content = openTagRegex.ReplaceAllString(content, "$1>")
	return content
}

// ReadOFX reads transactions from an OFX/QFX bank or credit-card export.
// Transactions are numbered in statement order starting at 1, and posted
// dates are truncated to the calendar day since duplicate detection only
// compares dates.
func ReadOFX(r io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var transactions []model.Transaction
	position := 0

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		account := string(stmt.BankAcctFrom.AcctID)
		for _, ofxTx := range stmt.BankTranList.Transactions {
			position++
			transactions = append(transactions, convertOFXTransaction(ofxTx, account, position))
		}
	}

	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		account := string(stmt.CCAcctFrom.AcctID)
		for _, ofxTx := range stmt.BankTranList.Transactions {
			position++
			transactions = append(transactions, convertOFXTransaction(ofxTx, account, position))
		}
	}

	slog.Debug("Parsed OFX file", "transactions", len(transactions))
	return transactions, nil
}

// convertOFXTransaction maps a single OFX statement transaction onto the
// domain model. OFX amounts are already signed the way we want: debits
// negative, credits positive.
func convertOFXTransaction(ofxTx ofxgo.Transaction, account string, position int) model.Transaction {
	payee := strings.TrimSpace(string(ofxTx.Name))
	if ofxTx.Payee != nil && ofxTx.Payee.Name != "" {
		payee = strings.TrimSpace(string(ofxTx.Payee.Name))
	}

	posted := ofxTx.DtPosted.Time
	date := time.Date(posted.Year(), posted.Month(), posted.Day(), 0, 0, 0, 0, time.UTC)

	return model.Transaction{
		Account:   account,
		Date:      date,
		Payee:     payee,
		Amount:    decimal.NewFromBigRat(&ofxTx.TrnAmt.Rat, 2),
		Memo:      strings.TrimSpace(string(ofxTx.Memo)),
		RowNumber: position,
	}
}

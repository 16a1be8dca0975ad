package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/joshsymonds/dupewatch/internal/model"
)

// jsonOutput is the top-level JSON document.
type jsonOutput struct {
	Pairs           []jsonPair `json:"pairs"`
	DuplicatesFound int        `json:"duplicates_found"`
}

type jsonPair struct {
	Reason       string          `json:"reason"`
	Transaction1 jsonTransaction `json:"transaction1"`
	Transaction2 jsonTransaction `json:"transaction2"`
	Confidence   int             `json:"confidence"`
}

type jsonTransaction struct {
	Date    string      `json:"date"`
	Payee   string      `json:"payee"`
	Account string      `json:"account"`
	Memo    string      `json:"memo"`
	Amount  json.Number `json:"amount"`
	Row     int         `json:"row"`
}

// RenderJSON writes the duplicate report as an indented JSON document with
// a duplicates_found count and one entry per pair. Amounts are emitted as
// two-decimal numbers and dates as ISO-8601 days.
func RenderJSON(w io.Writer, result Result) error {
	output := jsonOutput{
		DuplicatesFound: len(result.Matches),
		Pairs:           make([]jsonPair, 0, len(result.Matches)),
	}

	for _, match := range result.Matches {
		output.Pairs = append(output.Pairs, jsonPair{
			Confidence:   match.Confidence,
			Reason:       match.Reason,
			Transaction1: toJSONTransaction(match.Transaction1),
			Transaction2: toJSONTransaction(match.Transaction2),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

func toJSONTransaction(t model.Transaction) jsonTransaction {
	return jsonTransaction{
		Row:     t.RowNumber,
		Date:    t.Date.Format("2006-01-02"),
		Payee:   t.Payee,
		Amount:  json.Number(t.Amount.StringFixed(2)),
		Account: t.Account,
		Memo:    t.Memo,
	}
}

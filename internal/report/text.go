package report

import (
	"fmt"
	"io"
	"strings"
)

const ruleWidth = 80

// RenderText writes a human-readable duplicate report, including the run
// parameters and one block per candidate pair.
func RenderText(w io.Writer, result Result) error {
	var b strings.Builder

	b.WriteString(InfoStyle.Render(fmt.Sprintf("Reading transactions from: %s", result.File)) + "\n")
	b.WriteString(InfoStyle.Render(fmt.Sprintf("Date proximity window: %d days", result.DaysWindow)) + "\n")
	b.WriteString(InfoStyle.Render(fmt.Sprintf("Minimum confidence level: %d/5", result.MinConfidence)) + "\n")
	if result.StartDate != "" {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("Filtering transactions from: %s", result.StartDate)) + "\n")
	}
	b.WriteString("\n")

	if result.StartDate != "" {
		b.WriteString(fmt.Sprintf("Loaded %d transactions (filtered from %d by start date)\n\n",
			result.Loaded, result.TotalRead))
	} else {
		b.WriteString(fmt.Sprintf("Loaded %d transactions\n\n", result.Loaded))
	}

	if len(result.Matches) == 0 {
		b.WriteString(SuccessStyle.Render("No potential duplicates found.") + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString(fmt.Sprintf("Found %d potential duplicate pair(s):\n\n", len(result.Matches)))
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")

	for i, match := range result.Matches {
		b.WriteString("\n")
		b.WriteString(TitleStyle.Render(fmt.Sprintf("Duplicate #%d (Confidence: %d/5)", i+1, match.Confidence)) + "\n")
		b.WriteString(fmt.Sprintf("Reason: %s\n", match.Reason))
		b.WriteString(SubtleStyle.Render("  "+match.Transaction1.String()) + "\n")
		b.WriteString(SubtleStyle.Render("  "+match.Transaction2.String()) + "\n")
		b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

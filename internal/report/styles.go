// Package report renders duplicate-detection results as styled terminal
// text or as JSON.
package report

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// WarningColor highlights high-confidence duplicates.
	WarningColor = lipgloss.Color("#FFE66D")
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")
	// SuccessColor indicates clean results.
	SuccessColor = lipgloss.Color("#4ECDC4")

	// TitleStyle is used for the per-match heading.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(WarningColor)

	// InfoStyle formats the run parameters at the top of a report.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SuccessStyle formats the no-duplicates message.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// SubtleStyle formats separators and transaction detail lines.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

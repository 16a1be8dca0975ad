package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joshsymonds/dupewatch/internal/common"
	"github.com/joshsymonds/dupewatch/internal/dupes"
	"github.com/joshsymonds/dupewatch/internal/ingest"
	"github.com/joshsymonds/dupewatch/internal/model"
	"github.com/joshsymonds/dupewatch/internal/report"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func detectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect possible duplicate transactions in an export",
		Long: `Scan a personal-finance export for transaction pairs that look like
duplicates of one another.

Each candidate pair is scored 1-5: amounts must match exactly, dates must
fall within the proximity window, and payee names are compared exactly and
fuzzily to rank the pair.

Examples:
  # Scan a YNAB register export with the defaults (2-day window, confidence 5)
  dupewatch detect --file ~/Downloads/register.csv

  # Cast a wider net
  dupewatch detect --file register.csv --days 5 --confidence 3

  # Scan a bank OFX export, machine-readable output
  dupewatch detect --file chase_jan.qfx --output json`,
		RunE: runDetect,
	}

	cmd.Flags().StringP("file", "f", "", "Path to CSV or OFX/QFX export file (required)")
	cmd.Flags().IntP("days", "d", 2, "Days window for date proximity matching")
	cmd.Flags().IntP("confidence", "c", 5, "Minimum confidence level to report (1=lowest, 5=highest)")
	cmd.Flags().String("start-date", "", "Only consider transactions from this date onwards (format: 2006-01-02)")
	cmd.Flags().StringP("output", "o", "text", "Output format (text, json)")
	_ = cmd.MarkFlagRequired("file")

	// Bind to viper
	_ = viper.BindPFlag("detect.file", cmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("detect.days", cmd.Flags().Lookup("days"))
	_ = viper.BindPFlag("detect.confidence", cmd.Flags().Lookup("confidence"))
	_ = viper.BindPFlag("detect.start_date", cmd.Flags().Lookup("start-date"))
	_ = viper.BindPFlag("detect.output", cmd.Flags().Lookup("output"))

	return cmd
}

type detectOptions struct {
	file          string
	startDate     string
	output        string
	daysWindow    int
	minConfidence int
}

func runDetect(cmd *cobra.Command, _ []string) error {
	opts := detectOptions{
		file:          viper.GetString("detect.file"),
		daysWindow:    viper.GetInt("detect.days"),
		minConfidence: viper.GetInt("detect.confidence"),
		startDate:     viper.GetString("detect.start_date"),
		output:        viper.GetString("detect.output"),
	}
	return detect(opts, cmd.OutOrStdout())
}

func detect(opts detectOptions, out io.Writer) error {
	if opts.daysWindow < 0 {
		return common.NewUserError(
			fmt.Sprintf("Days window must be non-negative, got %d", opts.daysWindow),
			common.ErrInvalidWindow)
	}
	if opts.minConfidence < 1 || opts.minConfidence > 5 {
		return common.NewUserError(
			fmt.Sprintf("Confidence level must be between 1 and 5, got %d", opts.minConfidence),
			common.ErrInvalidConfidence)
	}
	if opts.output != "text" && opts.output != "json" {
		return common.NewUserError(
			fmt.Sprintf("Unknown output format %q (use text or json)", opts.output),
			nil)
	}

	var startDate time.Time
	if opts.startDate != "" {
		var err error
		startDate, err = time.Parse("2006-01-02", opts.startDate)
		if err != nil {
			return common.NewUserError(
				fmt.Sprintf("Invalid date format %q. Use 2006-01-02", opts.startDate),
				common.ErrInvalidDate)
		}
		startDate = startDate.UTC()
	}

	transactions, err := ingest.ReadFile(opts.file)
	if err != nil {
		return err
	}

	totalRead := len(transactions)
	if opts.startDate != "" {
		var kept []model.Transaction
		for _, t := range transactions {
			if !t.Date.Before(startDate) {
				kept = append(kept, t)
			}
		}
		transactions = kept
	}

	matches := dupes.FindDuplicates(transactions, opts.daysWindow, scanProgress(opts, len(transactions)))
	matches = dupes.FilterByConfidence(matches, opts.minConfidence)

	result := report.Result{
		File:          opts.file,
		DaysWindow:    opts.daysWindow,
		MinConfidence: opts.minConfidence,
		StartDate:     opts.startDate,
		Loaded:        len(transactions),
		TotalRead:     totalRead,
		Matches:       matches,
	}

	if opts.output == "json" {
		return report.RenderJSON(out, result)
	}
	return report.RenderText(out, result)
}

// scanProgress builds a progress callback for the pairwise scan. The bar
// goes to stderr so it never mixes with report output, and only appears in
// text mode for inputs large enough for the scan to take a moment.
func scanProgress(opts detectOptions, total int) dupes.ProgressFunc {
	if opts.output != "text" || total < 500 {
		return nil
	}

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Scanning for duplicates..."),
		progressbar.OptionClearOnFinish(),
	)
	return func(done, _ int) {
		_ = bar.Set(done)
	}
}

package report

import (
	"github.com/joshsymonds/dupewatch/internal/model"
)

// Result carries a detection run's output and the parameters that produced
// it. Matches are already filtered to the minimum confidence and sorted.
type Result struct {
	File          string
	StartDate     string
	Matches       []model.DuplicateMatch
	DaysWindow    int
	MinConfidence int
	Loaded        int
	TotalRead     int
}

package model

// DuplicateMatch pairs two transactions that look like the same entry.
// Transaction1 is the one that appeared first in the source; Confidence is
// a 1-5 heuristic score and Reason explains which rule produced it.
type DuplicateMatch struct {
	Transaction1 Transaction
	Transaction2 Transaction
	Confidence   int
	Reason       string
}

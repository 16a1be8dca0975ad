// Package ingest reads transactions out of personal-finance exports. It
// supports YNAB register CSVs and OFX/QFX bank exports, chosen by file
// extension.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshsymonds/dupewatch/internal/common"
	"github.com/joshsymonds/dupewatch/internal/model"
)

// ReadFile reads all valid transactions from an export file. Malformed rows
// are skipped individually; only missing or unreadable files fail the whole
// call.
func ReadFile(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.NewUserError(fmt.Sprintf("File not found: %s", path), common.ErrFileNotFound)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ofx", ".qfx":
		return ReadOFX(f)
	default:
		return ReadCSV(f)
	}
}

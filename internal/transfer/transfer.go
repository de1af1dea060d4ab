// Package transfer implements JSON import/export of the alias collection.
// Import merges: shortcuts whose name already exists are skipped, never
// overwritten.
package transfer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/gogo-shortcuts/cli/pkg/alias"
)

// ImportResult reports what an import did.
type ImportResult struct {
	Imported int
	Skipped  int
	Table    alias.Table
}

// Import parses a JSON array of {alias, url} records and merges it into the
// current table. Records missing either field are dropped; records whose
// name already exists are skipped. Returns an error when the payload is not
// an array or contains no usable records.
func Import(current alias.Table, data []byte) (ImportResult, error) {
	var incoming []alias.Alias
	if err := json.Unmarshal(data, &incoming); err != nil {
		return ImportResult{}, fmt.Errorf("invalid file format: %w", err)
	}

	valid := lo.Filter(incoming, func(a alias.Alias, _ int) bool {
		return a.Name != "" && a.Target != ""
	})
	if len(valid) == 0 {
		return ImportResult{}, fmt.Errorf("no valid shortcuts found in file")
	}

	existing := lo.SliceToMap(current, func(a alias.Alias) (string, struct{}) {
		return a.Name, struct{}{}
	})

	merged := current.Clone()
	imported := 0
	for _, a := range valid {
		normalized := alias.New(a.Name, a.Target)
		if _, ok := existing[normalized.Name]; ok {
			continue
		}
		existing[normalized.Name] = struct{}{}
		merged = append(merged, normalized)
		imported++
	}

	return ImportResult{
		Imported: imported,
		Skipped:  len(valid) - imported,
		Table:    merged,
	}, nil
}

// Export renders the table as pretty-printed JSON.
func Export(table alias.Table) ([]byte, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("no shortcuts to export")
	}
	return json.MarshalIndent(table, "", "  ")
}

// ExportFilename returns the date-stamped default export name.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("gogo-shortcuts-%s.json", now.Format("2006-01-02"))
}

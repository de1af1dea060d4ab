package alias

import "strings"

// SearchLimit caps how many suggestions a table search may return.
const SearchLimit = 10

// Alias maps a short name to a target URL. Both fields are stored
// normalized: trimmed and lowercased. Lowercasing the target is lossy for
// case-sensitive URL paths, but it is long-standing persisted behavior and
// existing stores depend on it.
type Alias struct {
	Name   string `json:"alias"`
	Target string `json:"url"`
}

// Table is an ordered snapshot of aliases. Insertion order is preserved and
// user-visible in list views. The table never self-enforces uniqueness;
// that happens at reconciliation time.
type Table []Alias

// Normalize trims and lowercases a name or target for storage and comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// New returns an alias with both fields normalized.
func New(name, target string) Alias {
	return Alias{Name: Normalize(name), Target: Normalize(target)}
}

// FindByName returns the first alias whose name equals the normalized query,
// in table order. Duplicates should not exist, but if a tampered store
// contains them, first wins.
func (t Table) FindByName(name string) (Alias, bool) {
	want := Normalize(name)
	for _, a := range t {
		if a.Name == want {
			return a, true
		}
	}
	return Alias{}, false
}

// IndexOfDuplicate scans for an entry named like the query, skipping
// excludeIndex when it is >= 0. Returns -1 if no duplicate exists.
func (t Table) IndexOfDuplicate(name string, excludeIndex int) int {
	want := Normalize(name)
	for i, a := range t {
		if i == excludeIndex {
			continue
		}
		if a.Name == want {
			return i
		}
	}
	return -1
}

// Search returns up to limit aliases whose name contains the query,
// case-insensitively, preserving table order. Callers are expected to
// reject an empty query before calling.
func (t Table) Search(query string, limit int) []Alias {
	q := Normalize(query)
	matches := make([]Alias, 0, limit)
	for _, a := range t {
		if strings.Contains(a.Name, q) {
			matches = append(matches, a)
			if len(matches) >= limit {
				break
			}
		}
	}
	return matches
}

// Clone returns an independent copy of the table. Each operation owns its
// own snapshot from read to write; nothing shares a table across calls.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	copy(out, t)
	return out
}

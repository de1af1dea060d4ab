package resolve

import (
	"strings"

	"github.com/gogo-shortcuts/cli/pkg/alias"
)

// Suggestions is a ranked autocomplete result for one input event. The first
// match is distinguished as the inline default; the rest fill the dropdown.
type Suggestions struct {
	// Default is the top match, or the zero Alias when there is none.
	Default alias.Alias
	// Rest holds the remaining matches in table order.
	Rest []alias.Alias
	// OfferCreation is set when nothing matched; Query echoes the raw input
	// verbatim so the creation offer shows what the user typed.
	OfferCreation bool
	Query         string
}

// Suggest filters the table for autocomplete. The query must be non-empty
// after trimming; callers special-case empty input before getting here.
// At most alias.SearchLimit entries are considered.
func Suggest(table alias.Table, query string) Suggestions {
	trimmed := strings.TrimSpace(query)
	matches := table.Search(trimmed, alias.SearchLimit)
	if len(matches) == 0 {
		return Suggestions{OfferCreation: true, Query: query}
	}
	return Suggestions{Default: matches[0], Rest: matches[1:], Query: query}
}

// Package resolve turns free-text address-bar input into a navigation
// decision: match the input against the alias table, then pick a tab
// placement for the result.
package resolve

import (
	"strings"

	"github.com/gogo-shortcuts/cli/pkg/alias"
)

// MatchKind classifies the outcome of resolving input against the table.
type MatchKind int

const (
	// MatchNone means the trimmed input was empty; no action is taken.
	MatchNone MatchKind = iota
	// MatchFound means an alias matched exactly (case-insensitive).
	MatchFound
	// MatchNotFound means no alias matched; the query becomes a creation intent.
	MatchNotFound
)

// MatchResult is the outcome of a resolution. Not-found is a normal branch,
// never an error.
type MatchResult struct {
	Kind  MatchKind
	Alias alias.Alias // valid when Kind == MatchFound

	// Query is the trimmed input with its original casing, preserved so a
	// creation form can pre-fill what the user actually typed.
	Query string
}

// Target returns the URL to navigate to for a found match, verbatim from the
// table with no further transformation.
func (m MatchResult) Target() string {
	return m.Alias.Target
}

// Resolve matches raw input text against the table. Empty input (after
// trimming) is a hard no-op: no navigation, no side effect.
func Resolve(table alias.Table, text string) MatchResult {
	query := strings.TrimSpace(text)
	if query == "" {
		return MatchResult{Kind: MatchNone}
	}

	if a, ok := table.FindByName(query); ok {
		return MatchResult{Kind: MatchFound, Alias: a, Query: query}
	}
	return MatchResult{Kind: MatchNotFound, Query: query}
}

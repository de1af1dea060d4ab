// Package store is the persistence boundary. The engines borrow a snapshot
// per operation and write a whole snapshot back; the store is the sole
// serialization point and provides atomic whole-collection writes.
package store

import (
	"errors"

	"github.com/gogo-shortcuts/cli/pkg/alias"
	"github.com/gogo-shortcuts/cli/pkg/resolve"
)

// ErrStore wraps read/write failures from the persistence layer. The core
// never retries; callers surface a generic failure and let the user retry.
var ErrStore = errors.New("store operation failed")

// Options is the separately-keyed settings record. Reading or writing it
// never disturbs the alias collection.
type Options struct {
	TabBehavior        resolve.TabBehavior `json:"tabBehavior"`
	ConfirmDelete      bool                `json:"confirmDelete"`
	EnableAutocomplete bool                `json:"enableAutocomplete"`
	ThemePreference    string              `json:"themePreference"`
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		TabBehavior:        resolve.TabBehaviorNew,
		ConfirmDelete:      true,
		EnableAutocomplete: true,
		ThemePreference:    "auto",
	}
}

// Store persists the alias collection and options. A missing backing file
// reads as an empty table or default options, never an error.
type Store interface {
	ReadAliases() (alias.Table, error)
	WriteAliases(alias.Table) error
	ReadOptions() (Options, error)
	WriteOptions(Options) error
}

// Package reconcile merges a submitted (name, url) pair into an alias table
// snapshot, handling name collisions and edit bookkeeping. Expected outcomes,
// duplicates included, are result values; errors are reserved for rejected
// input and stale edit references.
package reconcile

import (
	"errors"

	"github.com/gogo-shortcuts/cli/pkg/alias"
)

// ErrStaleEdit means the edit reference no longer points at the record it
// was captured against: the snapshot changed shape between read and submit.
// The reconciler refuses to mutate rather than corrupt an unrelated record.
var ErrStaleEdit = errors.New("alias being edited no longer exists at its recorded position")

// Submission is one create/edit form submit.
type Submission struct {
	Name string
	URL  string

	// EditIndex points at the record being edited, -1 for a plain create.
	// It is positional; EditName pins the identity it was captured against.
	EditIndex int
	EditName  string

	// ReplaceConfirmed is true only once the user has explicitly
	// acknowledged a collision and asked to overwrite the existing record.
	ReplaceConfirmed bool
}

// OutcomeKind classifies a reconciliation result.
type OutcomeKind int

const (
	// Created appended a new alias.
	Created OutcomeKind = iota
	// Updated rewrote the alias being edited. The record moves to the end
	// of the table; that reordering is long-standing observable behavior.
	Updated
	// Replaced overwrote a colliding record after explicit confirmation.
	Replaced
	// Duplicate rejected the submission: the name collides and no
	// confirmation was given. Nothing was mutated.
	Duplicate
)

// Outcome reports what a reconciliation did. Mutated is false exactly when
// the snapshot must not be written back.
type Outcome struct {
	Kind    OutcomeKind
	Name    string // the normalized submitted name
	Mutated bool

	// ExistingURL and DuplicateIndex describe the colliding record on a
	// Duplicate outcome, for rendering the warning and replace affordance.
	ExistingURL    string
	DuplicateIndex int
}

// Reconcile applies a submission to a snapshot and returns the new table
// plus the outcome. The input table is never modified; on success the caller
// persists the returned table as one atomic write.
func Reconcile(table alias.Table, sub Submission) (alias.Table, Outcome, error) {
	if err := alias.Validate(sub.Name, sub.URL); err != nil {
		return table, Outcome{}, err
	}

	next := alias.New(sub.Name, sub.URL)
	editing := sub.EditIndex >= 0

	if editing {
		if err := checkEditRef(table, sub); err != nil {
			return table, Outcome{}, err
		}
	}

	excludeIndex := -1
	if editing {
		excludeIndex = sub.EditIndex
	}
	dupIndex := table.IndexOfDuplicate(next.Name, excludeIndex)

	switch {
	case dupIndex == -1 && !editing:
		out := append(table.Clone(), next)
		return out, Outcome{Kind: Created, Name: next.Name, Mutated: true}, nil

	case dupIndex == -1:
		out := table.Clone()
		out = append(out[:sub.EditIndex], out[sub.EditIndex+1:]...)
		out = append(out, next)
		return out, Outcome{Kind: Updated, Name: next.Name, Mutated: true}, nil

	case !sub.ReplaceConfirmed:
		return table, Outcome{
			Kind:           Duplicate,
			Name:           next.Name,
			ExistingURL:    table[dupIndex].Target,
			DuplicateIndex: dupIndex,
		}, nil

	default:
		out := table.Clone()
		out[dupIndex] = next
		if editing && sub.EditIndex != dupIndex {
			// Editing A into a name that collides with B: drop the stale A
			// record so exactly one entry carries the submitted name.
			out = append(out[:sub.EditIndex], out[sub.EditIndex+1:]...)
		}
		return out, Outcome{Kind: Replaced, Name: next.Name, Mutated: true}, nil
	}
}

// checkEditRef re-validates a positional edit reference against the alias
// identity captured when the edit began.
func checkEditRef(table alias.Table, sub Submission) error {
	if sub.EditIndex >= len(table) {
		return ErrStaleEdit
	}
	if sub.EditName != "" && table[sub.EditIndex].Name != alias.Normalize(sub.EditName) {
		return ErrStaleEdit
	}
	return nil
}

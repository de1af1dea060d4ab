package reconcile

import "github.com/gogo-shortcuts/cli/pkg/alias"

// State tracks where the create/edit form is in its lifecycle.
type State int

const (
	// Idle: no edit in progress, no pending collision.
	Idle State = iota
	// Editing: a record was loaded into the form.
	Editing
	// DuplicatePending: the entered name collides with an existing record
	// and the submit affordance has flipped to "Replace".
	DuplicatePending
)

// Session is the explicit form-state passed through each reconciliation,
// replacing any ambient editing globals. Use NewSession; the zero value
// carries an edit index of 0 rather than none.
type Session struct {
	state       State
	editIndex   int
	editName    string
	existingURL string
}

// NewSession returns an Idle session.
func NewSession() *Session {
	return &Session{editIndex: -1}
}

// State returns the current form state.
func (s *Session) State() State { return s.state }

// ExistingURL returns the colliding record's URL while DuplicatePending.
func (s *Session) ExistingURL() string { return s.existingURL }

// BeginEdit loads an existing record into the form. The alias identity is
// captured alongside the index so a stale reference is detectable later.
func (s *Session) BeginEdit(index int, a alias.Alias) {
	s.state = Editing
	s.editIndex = index
	s.editName = a.Name
	s.existingURL = ""
}

// Cancel clears any edit or pending collision, returning to Idle. Called on
// explicit cancel and on navigating away from the form.
func (s *Session) Cancel() {
	*s = Session{editIndex: -1}
}

// NameChanged transitions the session as the name field changes: into
// DuplicatePending when the name collides with a record other than the one
// being edited, and back out when the collision clears.
func (s *Session) NameChanged(table alias.Table, name string) {
	dup := table.IndexOfDuplicate(name, s.editIndex)
	if dup >= 0 {
		s.state = DuplicatePending
		s.existingURL = table[dup].Target
		return
	}
	s.existingURL = ""
	if s.editIndex >= 0 {
		s.state = Editing
	} else {
		s.state = Idle
	}
}

// Submission builds the submission for the current form contents. Replace is
// confirmed exactly when the form is DuplicatePending: the submit affordance
// already read "Replace" when the user pressed it.
func (s *Session) Submission(name, url string) Submission {
	return Submission{
		Name:             name,
		URL:              url,
		EditIndex:        s.editIndex,
		EditName:         s.editName,
		ReplaceConfirmed: s.state == DuplicatePending,
	}
}

// Completed folds a reconciliation outcome back into the session. Any
// successful save clears edit state; a duplicate rejection arms the replace
// affordance.
func (s *Session) Completed(out Outcome) {
	if out.Mutated {
		*s = Session{editIndex: -1}
		return
	}
	if out.Kind == Duplicate {
		s.state = DuplicatePending
		s.existingURL = out.ExistingURL
	}
}

package msghost

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogo-shortcuts/cli/internal/store"
	"github.com/gogo-shortcuts/cli/pkg/alias"
	"github.com/gogo-shortcuts/cli/pkg/reconcile"
	"github.com/gogo-shortcuts/cli/pkg/resolve"
)

// Host dispatches extension requests to the engines. Run handles requests
// one at a time on a single loop, so two quick submits can no longer race
// each other's read-modify-write cycles.
type Host struct {
	store store.Store
}

// New returns a host backed by the given store.
func New(s store.Store) *Host {
	return &Host{store: s}
}

// Run reads requests until the pipe closes, answering each before reading
// the next.
func (h *Host) Run(r io.Reader, w io.Writer) error {
	for {
		req, err := ReadRequest(r)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := WriteResponse(w, h.Handle(req)); err != nil {
			return err
		}
	}
}

// Handle answers a single request.
func (h *Host) Handle(req Request) Response {
	switch req.Type {
	case "input-changed":
		return h.inputChanged(req)
	case "input-entered":
		return h.inputEntered(req)
	case "save":
		return h.save(req)
	case "check-duplicate":
		return h.checkDuplicate(req)
	case "suggest-name":
		return Response{Type: "suggest-name", Name: alias.SuggestName(req.URL)}
	default:
		return Response{Type: "error", Error: fmt.Sprintf("unknown request type %q", req.Type)}
	}
}

func (h *Host) inputChanged(req Request) Response {
	opts, err := h.store.ReadOptions()
	if err != nil {
		return storeFailure("suggestions", err)
	}

	resp := Response{Type: "suggestions"}
	if !opts.EnableAutocomplete {
		resp.Default = &Suggestion{Description: "Type a shortcut name"}
		return resp
	}

	table, err := h.store.ReadAliases()
	if err != nil {
		return storeFailure("suggestions", err)
	}

	query := req.Text
	if alias.Normalize(query) == "" {
		resp.Default = &Suggestion{Description: "Type a shortcut name"}
		return resp
	}
	if len(table) == 0 {
		resp.Default = &Suggestion{Description: "No shortcuts created yet"}
		return resp
	}

	s := resolve.Suggest(table, query)
	if s.OfferCreation {
		resp.Default = &Suggestion{Description: fmt.Sprintf("Create new shortcut: %s", s.Query)}
		resp.Suggestions = []Suggestion{}
		return resp
	}

	resp.Default = &Suggestion{
		Content:     s.Default.Name,
		Description: fmt.Sprintf("%s → %s", s.Default.Name, s.Default.Target),
	}
	for _, a := range s.Rest {
		resp.Suggestions = append(resp.Suggestions, Suggestion{
			Content:     a.Name,
			Description: fmt.Sprintf("%s → %s", a.Name, a.Target),
		})
	}
	return resp
}

func (h *Host) inputEntered(req Request) Response {
	table, err := h.store.ReadAliases()
	if err != nil {
		return storeFailure("navigate", err)
	}
	opts, err := h.store.ReadOptions()
	if err != nil {
		return storeFailure("navigate", err)
	}

	match := resolve.Resolve(table, req.Text)
	if match.Kind == resolve.MatchNone {
		return Response{Type: "navigate", NoOp: true}
	}

	cmd := resolve.Place(match, resolve.TabContext{
		CurrentURL: req.CurrentURL,
		Behavior:   opts.TabBehavior,
	})

	resp := Response{Type: "navigate", URL: cmd.URL, Query: match.Query}
	if cmd.Kind == resolve.ReplaceCurrentTab {
		resp.Action = "replace"
	} else {
		resp.Action = "open"
	}
	resp.Create = match.Kind == resolve.MatchNotFound
	return resp
}

func (h *Host) save(req Request) Response {
	table, err := h.store.ReadAliases()
	if err != nil {
		return storeFailure("save", err)
	}

	sub := reconcile.Submission{
		Name:             req.Alias,
		URL:              req.URL,
		EditIndex:        -1,
		EditName:         req.EditName,
		ReplaceConfirmed: req.ReplaceConfirmed,
	}
	if req.EditIndex != nil {
		sub.EditIndex = *req.EditIndex
	}

	next, out, err := reconcile.Reconcile(table, sub)
	if err != nil {
		return Response{Type: "save", Status: "error", Error: err.Error()}
	}

	if out.Mutated {
		if err := h.store.WriteAliases(next); err != nil {
			return storeFailure("save", err)
		}
	}

	switch out.Kind {
	case reconcile.Created:
		return Response{Type: "save", Status: "created", Message: fmt.Sprintf("Shortcut %q saved!", out.Name)}
	case reconcile.Updated:
		return Response{Type: "save", Status: "updated", Message: fmt.Sprintf("Shortcut %q updated!", out.Name)}
	case reconcile.Replaced:
		return Response{Type: "save", Status: "replaced", Message: fmt.Sprintf("Shortcut %q replaced!", out.Name)}
	default:
		return Response{
			Type:           "save",
			Status:         "duplicate",
			Message:        fmt.Sprintf("Shortcut %q already exists", out.Name),
			ExistingURL:    out.ExistingURL,
			DuplicateIndex: out.DuplicateIndex,
		}
	}
}

func (h *Host) checkDuplicate(req Request) Response {
	table, err := h.store.ReadAliases()
	if err != nil {
		return storeFailure("check-duplicate", err)
	}

	exclude := -1
	if req.ExcludeIndex != nil {
		exclude = *req.ExcludeIndex
	}
	idx := table.IndexOfDuplicate(req.Alias, exclude)
	resp := Response{Type: "check-duplicate", DuplicateIndex: idx}
	if idx >= 0 {
		resp.IsDuplicate = true
		resp.ExistingURL = table[idx].Target
	}
	return resp
}

func storeFailure(typ string, err error) Response {
	return Response{Type: typ, Error: fmt.Sprintf("storage unavailable: %v", err)}
}

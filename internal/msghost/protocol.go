// Package msghost speaks the browser native-messaging protocol: each message
// is a 32-bit little-endian length followed by that many bytes of JSON. The
// extension side forwards omnibox and form events here and executes the
// returned commands with the tab APIs it owns.
package msghost

// Request is one message from the extension.
type Request struct {
	Type string `json:"type"`

	// Text carries omnibox input for input-changed and input-entered.
	Text string `json:"text,omitempty"`
	// CurrentURL is the active tab's URL at input-entered time, empty when
	// the tab has none.
	CurrentURL string `json:"currentUrl,omitempty"`

	// Save fields.
	Alias            string `json:"alias,omitempty"`
	URL              string `json:"url,omitempty"`
	EditIndex        *int   `json:"editIndex,omitempty"`
	EditName         string `json:"editName,omitempty"`
	ReplaceConfirmed bool   `json:"replaceConfirmed,omitempty"`

	// ExcludeIndex for check-duplicate.
	ExcludeIndex *int `json:"excludeIndex,omitempty"`
}

// Suggestion is one autocomplete row.
type Suggestion struct {
	Content     string `json:"content"`
	Description string `json:"description"`
}

// Response is the reply to one request. Fields are populated per Type.
type Response struct {
	Type  string `json:"type"`
	Error string `json:"error,omitempty"`

	// suggestions
	Default     *Suggestion  `json:"default,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`

	// navigate
	Action string `json:"action,omitempty"` // "open" or "replace"
	URL    string `json:"url,omitempty"`
	Create bool   `json:"create,omitempty"`
	Query  string `json:"query,omitempty"`
	NoOp   bool   `json:"noop,omitempty"`

	// save / check-duplicate
	Status         string `json:"status,omitempty"` // created, updated, replaced, duplicate
	Message        string `json:"message,omitempty"`
	IsDuplicate    bool   `json:"isDuplicate,omitempty"`
	ExistingURL    string `json:"existingUrl,omitempty"`
	DuplicateIndex int    `json:"duplicateIndex,omitempty"`

	// suggest-name
	Name string `json:"name,omitempty"`
}

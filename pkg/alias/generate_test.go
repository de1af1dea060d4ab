package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestName(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"github mapping", "https://github.com", "git"},
		{"youtube mapping", "https://youtube.com", "yt"},
		{"stackoverflow mapping", "https://stackoverflow.com", "so"},
		{"facebook mapping", "https://facebook.com", "fb"},
		{"reddit mapping", "https://reddit.com", "reddit"},
		{"no protocol", "github.com", "git"},
		{"www stripped", "https://www.github.com", "git"},
		{"www no protocol", "www.google.com", "google"},
		{"unknown short domain", "https://example.com", "example"},
		{"unknown org domain", "https://test.org", "test"},
		{"not a url", "not a url", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestName(tt.url))
		})
	}
}

func TestSuggestNameAbbreviatesLongDomains(t *testing.T) {
	got := SuggestName("https://verylongdomainname.com")
	assert.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 6)
}

package resolve

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogo-shortcuts/cli/pkg/alias"
)

func TestSuggestSplitsDefaultAndRest(t *testing.T) {
	table := alias.Table{
		{Name: "git", Target: "https://github.com"},
		{Name: "gitlab", Target: "https://gitlab.com"},
		{Name: "gist", Target: "https://gist.github.com"},
	}

	s := Suggest(table, "gi")
	require.False(t, s.OfferCreation)
	assert.Equal(t, "git", s.Default.Name)
	require.Len(t, s.Rest, 2)
	assert.Equal(t, "gitlab", s.Rest[0].Name)
	assert.Equal(t, "gist", s.Rest[1].Name)
}

func TestSuggestSingleMatchHasEmptyRest(t *testing.T) {
	table := alias.Table{{Name: "yt", Target: "https://youtube.com"}}
	s := Suggest(table, "y")
	require.False(t, s.OfferCreation)
	assert.Equal(t, "yt", s.Default.Name)
	assert.Empty(t, s.Rest)
}

func TestSuggestOffersCreationOnNoMatch(t *testing.T) {
	table := alias.Table{{Name: "git", Target: "https://github.com"}}
	s := Suggest(table, "MyDocs")
	assert.True(t, s.OfferCreation)
	// The raw query is echoed back verbatim for the creation offer.
	assert.Equal(t, "MyDocs", s.Query)
	assert.Empty(t, s.Rest)
}

func TestSuggestCapped(t *testing.T) {
	var table alias.Table
	for i := 0; i < 30; i++ {
		table = append(table, alias.Alias{Name: fmt.Sprintf("doc-%d", i), Target: "https://docs.example"})
	}
	s := Suggest(table, "doc")
	assert.Len(t, s.Rest, alias.SearchLimit-1)
}

package alias

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByName(t *testing.T) {
	table := Table{
		{Name: "git", Target: "https://github.com"},
		{Name: "yt", Target: "https://youtube.com"},
	}

	tests := []struct {
		name  string
		query string
		want  string
		found bool
	}{
		{"exact", "git", "https://github.com", true},
		{"uppercase", "GIT", "https://github.com", true},
		{"surrounding whitespace", "  git  ", "https://github.com", true},
		{"missing", "gh", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := table.FindByName(tt.query)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, a.Target)
		})
	}
}

func TestFindByNameFirstWins(t *testing.T) {
	// Duplicates only appear through external tampering; first in table
	// order still wins.
	table := Table{
		{Name: "git", Target: "https://first.example"},
		{Name: "git", Target: "https://second.example"},
	}
	a, ok := table.FindByName("git")
	require.True(t, ok)
	assert.Equal(t, "https://first.example", a.Target)
}

func TestIndexOfDuplicate(t *testing.T) {
	table := Table{
		{Name: "a", Target: "https://a.com"},
		{Name: "b", Target: "https://b.com"},
	}

	assert.Equal(t, 0, table.IndexOfDuplicate("a", -1))
	assert.Equal(t, 0, table.IndexOfDuplicate("  A ", -1))
	assert.Equal(t, -1, table.IndexOfDuplicate("a", 0), "excluded index is skipped")
	assert.Equal(t, 1, table.IndexOfDuplicate("b", 0))
	assert.Equal(t, -1, table.IndexOfDuplicate("c", -1))
}

func TestSearch(t *testing.T) {
	table := Table{
		{Name: "git", Target: "https://github.com"},
		{Name: "gitlab", Target: "https://gitlab.com"},
		{Name: "yt", Target: "https://youtube.com"},
	}

	t.Run("substring match preserves table order", func(t *testing.T) {
		got := table.Search("it", SearchLimit)
		require.Len(t, got, 2)
		assert.Equal(t, "git", got[0].Name)
		assert.Equal(t, "gitlab", got[1].Name)
	})

	t.Run("case-insensitive", func(t *testing.T) {
		got := table.Search("GIT", SearchLimit)
		assert.Len(t, got, 2)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, table.Search("zzz", SearchLimit))
	})

	t.Run("never exceeds limit and every hit contains the query", func(t *testing.T) {
		var big Table
		for i := 0; i < 25; i++ {
			big = append(big, Alias{Name: fmt.Sprintf("link-%d", i), Target: "https://example.com"})
		}
		got := big.Search("link", SearchLimit)
		assert.Len(t, got, SearchLimit)
		for _, a := range got {
			assert.True(t, strings.Contains(a.Name, "link"))
		}
	})
}

func TestNew(t *testing.T) {
	a := New("  My-Shortcut ", " HTTPS://GitHub.com/Path ")
	assert.Equal(t, "my-shortcut", a.Name)
	// Target lowercasing is lossy for case-sensitive paths but is the
	// persisted behavior stores already depend on.
	assert.Equal(t, "https://github.com/path", a.Target)
}

func TestClone(t *testing.T) {
	table := Table{{Name: "a", Target: "https://a.com"}}
	clone := table.Clone()
	clone[0].Target = "https://changed.example"
	assert.Equal(t, "https://a.com", table[0].Target)
}

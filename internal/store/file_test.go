package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogo-shortcuts/cli/pkg/alias"
	"github.com/gogo-shortcuts/cli/pkg/resolve"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestFileStoreAliasesRoundTrip(t *testing.T) {
	s := newTestStore(t)

	table := alias.Table{
		{Name: "git", Target: "https://github.com"},
		{Name: "yt", Target: "https://youtube.com"},
	}
	require.NoError(t, s.WriteAliases(table))

	got, err := s.ReadAliases()
	require.NoError(t, err)
	assert.Equal(t, table, got)
}

func TestFileStoreMissingFilesAreEmpty(t *testing.T) {
	s := newTestStore(t)

	table, err := s.ReadAliases()
	require.NoError(t, err)
	assert.NotNil(t, table)
	assert.Empty(t, table)

	opts, err := s.ReadOptions()
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestFileStoreOptionsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	opts := DefaultOptions()
	opts.TabBehavior = resolve.TabBehaviorReplace
	opts.ConfirmDelete = false
	require.NoError(t, s.WriteOptions(opts))

	got, err := s.ReadOptions()
	require.NoError(t, err)
	assert.Equal(t, opts, got)
}

func TestFileStoreKeysAreIndependent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.WriteAliases(alias.Table{{Name: "git", Target: "https://github.com"}}))

	opts := DefaultOptions()
	opts.ThemePreference = "dark"
	require.NoError(t, s.WriteOptions(opts))

	// Writing options must not disturb the alias collection.
	table, err := s.ReadAliases()
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, "git", table[0].Name)
}

func TestFileStoreWriteReplacesWholeSnapshot(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.WriteAliases(alias.Table{
		{Name: "a", Target: "https://a.com"},
		{Name: "b", Target: "https://b.com"},
	}))
	require.NoError(t, s.WriteAliases(alias.Table{{Name: "c", Target: "https://c.com"}}))

	got, err := s.ReadAliases()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].Name)
}

func TestFileStoreCorruptFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "aliases.json"), []byte("{nope"), 0o644))

	_, err := s.ReadAliases()
	assert.ErrorIs(t, err, ErrStore)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, resolve.TabBehaviorNew, opts.TabBehavior)
	assert.True(t, opts.ConfirmDelete)
	assert.True(t, opts.EnableAutocomplete)
	assert.Equal(t, "auto", opts.ThemePreference)
}

package transfer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogo-shortcuts/cli/pkg/alias"
)

func TestImportMergesAndSkipsExisting(t *testing.T) {
	current := alias.Table{{Name: "git", Target: "https://github.com"}}
	data := []byte(`[
		{"alias": "git", "url": "https://example.com"},
		{"alias": "yt", "url": "https://youtube.com"}
	]`)

	result, err := Import(current, data)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Table, 2)
	// Existing records are never overwritten by an import.
	assert.Equal(t, "https://github.com", result.Table[0].Target)
	assert.Equal(t, "yt", result.Table[1].Name)
}

func TestImportNormalizesIncoming(t *testing.T) {
	result, err := Import(alias.Table{}, []byte(`[{"alias": " GIT ", "url": " HTTPS://GitHub.com "}]`))
	require.NoError(t, err)
	require.Len(t, result.Table, 1)
	assert.Equal(t, "git", result.Table[0].Name)
	assert.Equal(t, "https://github.com", result.Table[0].Target)
}

func TestImportDropsMalformedRecords(t *testing.T) {
	data := []byte(`[
		{"alias": "", "url": "https://a.com"},
		{"alias": "b", "url": ""},
		{"alias": "ok", "url": "https://ok.com"}
	]`)
	result, err := Import(alias.Table{}, data)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Table, 1)
	assert.Equal(t, "ok", result.Table[0].Name)
}

func TestImportRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{nope"},
		{"not an array", `{"alias": "a", "url": "https://a.com"}`},
		{"empty array", "[]"},
		{"nothing usable", `[{"alias": "", "url": ""}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import(alias.Table{}, []byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestImportDeduplicatesWithinPayload(t *testing.T) {
	data := []byte(`[
		{"alias": "a", "url": "https://first.example"},
		{"alias": "a", "url": "https://second.example"}
	]`)
	result, err := Import(alias.Table{}, data)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Table, 1)
	assert.Equal(t, "https://first.example", result.Table[0].Target)
}

func TestExport(t *testing.T) {
	data, err := Export(alias.Table{{Name: "git", Target: "https://github.com"}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"alias": "git"`)
	assert.Contains(t, string(data), `"url": "https://github.com"`)
}

func TestExportEmptyTable(t *testing.T) {
	_, err := Export(alias.Table{})
	assert.Error(t, err)
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "gogo-shortcuts-2026-09-01.json", ExportFilename(now))
}

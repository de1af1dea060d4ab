package update

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestUpgradeCommandForMethod(t *testing.T) {
	tests := []struct {
		method   InstallMethod
		expected string
	}{
		{InstallMethodBrew, "brew upgrade gogo-shortcuts/tap/gogo"},
		{InstallMethodNPM, "npm i -g @gogo-shortcuts/cli@latest"},
		{InstallMethodPNPM, "pnpm add -g @gogo-shortcuts/cli@latest"},
		{InstallMethodBun, "bun add -g @gogo-shortcuts/cli@latest"},
		{InstallMethodUnknown, "brew upgrade gogo-shortcuts/tap/gogo"},
	}
	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			assert.Equal(t, tt.expected, suggestUpgradeCommandForMethod(tt.method))
		})
	}
}

func TestPathMatchesNPM(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/home/user/.npm-global/bin/gogo", true},
		{"/home/user/.npm/bin/gogo", true},
		{"/usr/local/lib/node_modules/.bin/gogo", true},
		{"/home/user/.local/share/npm/bin/gogo", true},
		{"/opt/homebrew/bin/gogo", false},
		{"/home/user/.bun/bin/gogo", false},
		{"/home/user/.local/share/pnpm/gogo", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, pathMatchesNPM(tt.path))
		})
	}
}

func TestPathMatchesPNPM(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/home/user/.local/share/pnpm/gogo", true},
		{"/home/user/.pnpm/global/gogo", true},
		{"/home/user/.npm-global/bin/gogo", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, pathMatchesPNPM(tt.path))
		})
	}
}

func TestPathMatchesBun(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/home/user/.bun/bin/gogo", true},
		{"/home/user/.npm-global/bin/gogo", false},
		{"/opt/homebrew/bin/gogo", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, pathMatchesBun(tt.path))
		})
	}
}

func TestIsNewerVersion(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		latest   string
		expected bool
		wantErr  bool
	}{
		{"newer patch", "v1.2.0", "v1.2.1", true, false},
		{"same version", "v1.2.0", "v1.2.0", false, false},
		{"older latest", "v1.3.0", "v1.2.9", false, false},
		{"no v prefix", "1.0.0", "2.0.0", true, false},
		{"dev build", "dev", "v1.0.0", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsNewerVersion(tt.current, tt.latest)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

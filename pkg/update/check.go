// Package update checks GitHub for a newer CLI release and figures out how
// this copy was installed so the upgrade command can be suggested or run.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// InstallMethod identifies how the CLI was installed.
type InstallMethod string

const (
	InstallMethodBrew    InstallMethod = "brew"
	InstallMethodNPM     InstallMethod = "npm"
	InstallMethodPNPM    InstallMethod = "pnpm"
	InstallMethodBun     InstallMethod = "bun"
	InstallMethodUnknown InstallMethod = "unknown"
)

const releasesURL = "https://api.github.com/repos/gogo-shortcuts/cli/releases/latest"

type releaseResponse struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// FetchLatest returns the latest release tag and its release page URL.
func FetchLatest(ctx context.Context) (string, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releasesURL, nil)
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", "", fmt.Errorf("release lookup failed: %s", resp.Status)
	}

	var release releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", "", fmt.Errorf("invalid release response: %w", err)
	}
	if release.TagName == "" {
		return "", "", fmt.Errorf("release response missing tag")
	}
	return release.TagName, release.HTMLURL, nil
}

// IsNewerVersion reports whether latest is strictly newer than current.
// Returns an error for tags that do not parse as semver (dev builds).
func IsNewerVersion(current, latest string) (bool, error) {
	cur, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	lat, err := semver.NewVersion(strings.TrimPrefix(latest, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing latest version %q: %w", latest, err)
	}
	return lat.GreaterThan(cur), nil
}

// DetectInstallMethod inspects the running binary's path to guess the
// installation method. Also returns the binary path for the manual
// instructions fallback.
func DetectInstallMethod() (InstallMethod, string) {
	path, err := os.Executable()
	if err != nil {
		return InstallMethodUnknown, ""
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	switch {
	case pathMatchesBrew(path):
		return InstallMethodBrew, path
	case pathMatchesPNPM(path):
		return InstallMethodPNPM, path
	case pathMatchesBun(path):
		return InstallMethodBun, path
	case pathMatchesNPM(path):
		return InstallMethodNPM, path
	}
	return InstallMethodUnknown, path
}

// SuggestUpgradeCommand returns the shell command that upgrades an install
// of the given method. Unknown methods fall back to the brew instructions.
func SuggestUpgradeCommand(method InstallMethod) string {
	return suggestUpgradeCommandForMethod(method)
}

func suggestUpgradeCommandForMethod(method InstallMethod) string {
	switch method {
	case InstallMethodNPM:
		return "npm i -g @gogo-shortcuts/cli@latest"
	case InstallMethodPNPM:
		return "pnpm add -g @gogo-shortcuts/cli@latest"
	case InstallMethodBun:
		return "bun add -g @gogo-shortcuts/cli@latest"
	default:
		return "brew upgrade gogo-shortcuts/tap/gogo"
	}
}

func pathMatchesBrew(path string) bool {
	return strings.Contains(path, "/homebrew/") ||
		strings.Contains(path, "/Cellar/") ||
		strings.HasPrefix(path, "/usr/local/Cellar")
}

func pathMatchesNPM(path string) bool {
	return strings.Contains(path, "/.npm-global/") ||
		strings.Contains(path, "/.npm/") ||
		strings.Contains(path, "/node_modules/") ||
		strings.Contains(path, "/npm/bin/")
}

func pathMatchesPNPM(path string) bool {
	return strings.Contains(path, "pnpm/")
}

func pathMatchesBun(path string) bool {
	return strings.Contains(path, "/.bun/")
}

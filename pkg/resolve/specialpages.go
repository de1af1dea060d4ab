package resolve

import "strings"

// IsSpecialPage reports whether a tab URL is a throwaway or browser-internal
// page: blank tabs, new-tab pages, and privileged schemes. Replacing such a
// page never loses anything the user cares about.
func IsSpecialPage(url string) bool {
	switch url {
	case "", "about:blank", "about:newtab", "chrome://newtab/":
		return true
	}
	return strings.HasPrefix(url, "chrome://") ||
		strings.HasPrefix(url, "about:") ||
		strings.HasPrefix(url, "moz-extension:")
}

// IsManagerPage reports whether a tab URL is one of the shortcut manager's
// own pages (settings, popup, or any extension-scheme page).
func IsManagerPage(url string) bool {
	return strings.Contains(url, "src/settings.html") ||
		strings.Contains(url, "src/popup.html") ||
		strings.HasPrefix(url, "chrome-extension://") ||
		strings.HasPrefix(url, "moz-extension://")
}

package alias

import (
	"net/url"
	"strings"
)

// commonMappings holds well-known shorthand for popular sites.
var commonMappings = map[string]string{
	"github":        "git",
	"youtube":       "yt",
	"stackoverflow": "so",
	"facebook":      "fb",
	"instagram":     "ig",
	"twitter":       "tw",
	"linkedin":      "li",
	"wikipedia":     "wiki",
	"amazon":        "amz",
	"reddit":        "reddit",
	"gmail":         "gmail",
	"mail.google":   "gmail",
}

// SuggestName proposes a short alias name for a URL: the well-known
// shorthand when one exists, otherwise the leading domain label, abbreviated
// by stripping vowels when it runs long. Returns "" when no sensible name
// can be derived.
func SuggestName(rawURL string) string {
	u, err := url.Parse(EnsureScheme(rawURL))
	if err != nil || u.Hostname() == "" {
		return ""
	}

	domain := strings.TrimPrefix(u.Hostname(), "www.")
	parts := strings.Split(domain, ".")
	if len(parts) < 2 {
		return ""
	}
	main := strings.ToLower(parts[0])

	if short, ok := commonMappings[main]; ok {
		return short
	}

	if len(main) > 8 {
		consonants := strings.Map(func(r rune) rune {
			switch r {
			case 'a', 'e', 'i', 'o', 'u':
				return -1
			}
			return r
		}, main)
		if len(consonants) >= 2 && len(consonants) <= 5 {
			return consonants
		}
		return main[:6]
	}

	return main
}

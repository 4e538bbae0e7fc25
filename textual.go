package urlclean

import (
	"net/url"
	"strings"
)

// filterRawQuery removes tokens whose name matches the removal set from
// a raw query string. Tokens are the "&"-separated substrings of the
// query and are kept verbatim, so surviving values never change byte
// form. A token's name is the part before the first "=", or the whole
// token for bare flags. When decodeNames is true, percent-encoded names
// are decoded before comparison (structural path); otherwise the raw
// name is compared as-is (textual fallback).
func filterRawQuery(rawQuery string, removing map[string]bool, decodeNames bool) (string, bool) {
	tokens := strings.Split(rawQuery, "&")
	kept := make([]string, 0, len(tokens))
	changed := false

	for _, token := range tokens {
		name := token
		if i := strings.Index(token, "="); i >= 0 {
			name = token[:i]
		}
		if decodeNames {
			if decoded, err := url.QueryUnescape(name); err == nil {
				name = decoded
			}
		}
		if removing[strings.ToLower(name)] {
			changed = true
			continue
		}
		kept = append(kept, token)
	}

	if !changed {
		return rawQuery, false
	}
	return strings.Join(kept, "&"), true
}

// cleanTextual is the fallback path for strings that do not parse as
// URLs. It splits at the first "?" and filters the raw tokens, leaving
// everything else untouched. Every operation is plain substring work,
// so this path cannot fail.
func cleanTextual(rawURL string, removing map[string]bool) string {
	base, query, found := strings.Cut(rawURL, "?")
	if !found || query == "" {
		return rawURL
	}

	filtered, changed := filterRawQuery(query, removing, false)
	if !changed {
		return rawURL
	}
	if filtered == "" {
		return base
	}
	return base + "?" + filtered
}

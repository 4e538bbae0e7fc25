package urlclean

import (
	"net/url"
	"strings"
)

// Clean returns a copy of u with every query parameter whose name is in
// removing stripped. Names are compared case-insensitively; surviving
// parameters keep their original relative order and raw byte form. The
// input URL is never modified. A URL without a query component is
// returned as-is.
func Clean(u *url.URL, removing map[string]bool) *url.URL {
	if u == nil || u.RawQuery == "" || len(removing) == 0 {
		return u
	}

	filtered, changed := filterRawQuery(u.RawQuery, removing, true)
	if !changed {
		return u
	}

	cleaned := *u
	cleaned.RawQuery = filtered
	if filtered == "" {
		cleaned.ForceQuery = false
	}
	return &cleaned
}

// CleanString returns rawURL with every query parameter whose name is in
// removing stripped. When rawURL parses as a URL the structural path is
// used; otherwise the textual fallback splits the string at the first
// "?" and filters the raw "&"-separated tokens. In the fallback path
// parameter names are compared without percent-decoding, so a tracking
// parameter whose name is itself percent-encoded is not recognized.
// CleanString never fails: input it cannot process is returned unchanged.
func CleanString(rawURL string, removing map[string]bool) string {
	if rawURL == "" || len(removing) == 0 {
		return rawURL
	}
	if !strings.Contains(rawURL, "?") {
		return rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err == nil {
		cleaned := Clean(parsed, removing)
		if cleaned == parsed {
			// Nothing removed; hand back the input byte-for-byte rather
			// than a reserialized round trip.
			return rawURL
		}
		return cleaned.String()
	}

	return cleanTextual(rawURL, removing)
}

// CleanAll strips every parameter in the tracking database from u.
func CleanAll(u *url.URL) *url.URL {
	return Clean(u, allDatabase())
}

// CleanAllString strips every parameter in the tracking database from rawURL.
func CleanAllString(rawURL string) string {
	return CleanString(rawURL, allDatabase())
}

// CleanCategories strips only the given categories' parameters from u.
func CleanCategories(u *url.URL, categories ...Category) *url.URL {
	return Clean(u, Parameters(categories...))
}

// CleanCategoriesString strips only the given categories' parameters from rawURL.
func CleanCategoriesString(rawURL string, categories ...Category) string {
	return CleanString(rawURL, Parameters(categories...))
}

// CleanWith strips the full tracking database plus the given extra
// parameter names from u.
func CleanWith(u *url.URL, extra ...string) *url.URL {
	return Clean(u, unionWithDatabase(extra))
}

// CleanWithString strips the full tracking database plus the given extra
// parameter names from rawURL.
func CleanWithString(rawURL string, extra ...string) string {
	return CleanString(rawURL, unionWithDatabase(extra))
}

// CleanOnly strips only the given parameter names from u, bypassing the
// tracking database entirely.
func CleanOnly(u *url.URL, names ...string) *url.URL {
	return Clean(u, toSet(names))
}

// CleanOnlyString strips only the given parameter names from rawURL,
// bypassing the tracking database entirely.
func CleanOnlyString(rawURL string, names ...string) string {
	return CleanString(rawURL, toSet(names))
}

func unionWithDatabase(extra []string) map[string]bool {
	if len(extra) == 0 {
		return allDatabase()
	}
	union := AllParameters()
	for _, name := range extra {
		union[strings.ToLower(name)] = true
	}
	return union
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[strings.ToLower(name)] = true
	}
	return set
}

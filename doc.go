// Package urlclean strips known tracking query parameters from URLs
// while preserving functional parameters and overall URL validity.
//
// The package carries a curated, versioned database of tracking
// parameter names grouped into five categories (analytics, social,
// email, ecommerce, other). A cleaning call selects a removal set —
// the whole database, a category subset, or caller-supplied names —
// and produces a new URL with matching query parameters removed:
//
//	cleaned := urlclean.CleanAllString(
//		"https://shop.example.com/p?id=1&utm_source=google&fbclid=abc")
//	// "https://shop.example.com/p?id=1"
//
// Parameter names are matched case-insensitively; values and all other
// URL content pass through unchanged. Surviving parameters keep their
// original relative order, and a query whose parameters are all removed
// is dropped entirely (no trailing "?").
//
// Cleaning is best-effort by design and never fails: strings that do
// not parse as URLs are processed by a textual fallback that splits the
// query on "&" without percent-decoding, and input the package cannot
// process is returned unchanged. Every operation is a pure function
// over immutable input, safe for unlimited concurrent use.
package urlclean

package urlclean

import (
	"net/url"
	"testing"
)

func TestCleanString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		removing map[string]bool
		expected string
	}{
		{
			name:     "single tracking parameter removed",
			input:    "https://x.com?utm_source=a&id=1",
			removing: map[string]bool{"utm_source": true},
			expected: "https://x.com?id=1",
		},
		{
			name:     "name matching is case-insensitive",
			input:    "https://x.com?UTM_SOURCE=a&id=1",
			removing: map[string]bool{"utm_source": true},
			expected: "https://x.com?id=1",
		},
		{
			name:     "mixed case name removed",
			input:    "https://x.com?Utm_Source=a&id=1",
			removing: map[string]bool{"utm_source": true},
			expected: "https://x.com?id=1",
		},
		{
			name:     "empty result collapses query string",
			input:    "https://x.com?utm_source=a",
			removing: map[string]bool{"utm_source": true},
			expected: "https://x.com",
		},
		{
			name:     "no query is a no-op",
			input:    "https://x.com/path",
			removing: map[string]bool{"utm_source": true},
			expected: "https://x.com/path",
		},
		{
			name:     "survivor order preserved",
			input:    "https://x.com?a=1&utm_source=x&b=2&gclid=y&c=3",
			removing: map[string]bool{"utm_source": true, "gclid": true},
			expected: "https://x.com?a=1&b=2&c=3",
		},
		{
			name:     "bare flag removed by name",
			input:    "https://x.com?utm_source&id=1",
			removing: map[string]bool{"utm_source": true},
			expected: "https://x.com?id=1",
		},
		{
			name:     "bare functional flag survives",
			input:    "https://x.com?flag&utm_source=1",
			removing: map[string]bool{"utm_source": true},
			expected: "https://x.com?flag",
		},
		{
			name:     "values never drive removal",
			input:    "https://x.com?q=utm_source&utm_source=x",
			removing: map[string]bool{"utm_source": true},
			expected: "https://x.com?q=utm_source",
		},
		{
			name:     "surviving values keep their byte form",
			input:    "https://x.com?redirect=https%3A%2F%2Fa.com%2F&utm_source=x",
			removing: map[string]bool{"utm_source": true},
			expected: "https://x.com?redirect=https%3A%2F%2Fa.com%2F",
		},
		{
			name:     "fragment passes through",
			input:    "https://x.com/page?utm_source=a&id=1#section",
			removing: map[string]bool{"utm_source": true},
			expected: "https://x.com/page?id=1#section",
		},
		{
			name:     "percent-encoded name recognized on the structural path",
			input:    "https://x.com?utm%5Fsource=a&id=1",
			removing: map[string]bool{"utm_source": true},
			expected: "https://x.com?id=1",
		},
		{
			name:     "empty input",
			input:    "",
			removing: map[string]bool{"utm_source": true},
			expected: "",
		},
		{
			name:     "empty removal set is a no-op",
			input:    "https://x.com?utm_source=a",
			removing: map[string]bool{},
			expected: "https://x.com?utm_source=a",
		},
		{
			name:     "relative path without scheme",
			input:    "not-a-valid-url?utm_source=test&id=123",
			removing: map[string]bool{"utm_source": true},
			expected: "not-a-valid-url?id=123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanString(tt.input, tt.removing)
			if result != tt.expected {
				t.Errorf("CleanString(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCleanStringIdempotent(t *testing.T) {
	inputs := []string{
		"https://x.com?utm_source=a&id=1",
		"https://x.com?utm_source=a",
		"https://x.com/path",
		"https://x.com/sale%off?utm_source=x&id=1",
		"",
	}
	removing := map[string]bool{"utm_source": true}

	for _, input := range inputs {
		once := CleanString(input, removing)
		twice := CleanString(once, removing)
		if once != twice {
			t.Errorf("Cleaning %q is not idempotent: %q then %q", input, once, twice)
		}
	}
}

func TestCleanDoesNotMutateInput(t *testing.T) {
	original, err := url.Parse("https://x.com/page?utm_source=a&id=1#frag")
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}
	snapshot := *original

	cleaned := Clean(original, map[string]bool{"utm_source": true})

	if *original != snapshot {
		t.Errorf("Input URL was mutated: %v", original)
	}
	if cleaned == original {
		t.Error("Expected a new URL value when cleaning changes the query")
	}
	if cleaned.String() != "https://x.com/page?id=1#frag" {
		t.Errorf("Unexpected cleaned URL: %s", cleaned)
	}
}

func TestCleanNoQueryReturnsInput(t *testing.T) {
	u, err := url.Parse("https://x.com/path")
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}

	if cleaned := Clean(u, AllParameters()); cleaned != u {
		t.Errorf("Expected the input to be returned unchanged, got %v", cleaned)
	}
	if cleaned := Clean(nil, AllParameters()); cleaned != nil {
		t.Errorf("Expected nil in, nil out, got %v", cleaned)
	}
}

func TestCleanAllString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "mixed real-world product URL",
			input:    "https://shop.example.com/product/widget-pro?id=12345&color=blue&utm_source=google&gclid=abc123&fbclid=def456",
			expected: "https://shop.example.com/product/widget-pro?id=12345&color=blue",
		},
		{
			name:     "email campaign link",
			input:    "https://news.example.com/story?mc_cid=x&mc_eid=y&page=2",
			expected: "https://news.example.com/story?page=2",
		},
		{
			name:     "already clean",
			input:    "https://example.com/search?q=golang&page=1",
			expected: "https://example.com/search?q=golang&page=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := CleanAllString(tt.input); result != tt.expected {
				t.Errorf("CleanAllString(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCleanCategoriesString(t *testing.T) {
	// Removing only the social category must leave analytics parameters intact.
	input := "https://x.com?utm_source=g&fbclid=1&id=2"
	expected := "https://x.com?utm_source=g&id=2"

	if result := CleanCategoriesString(input, CategorySocial); result != expected {
		t.Errorf("CleanCategoriesString(%q, social) = %q, want %q", input, result, expected)
	}

	// All categories behaves like the full database.
	full := CleanCategoriesString(input, AllCategories...)
	if full != CleanAllString(input) {
		t.Errorf("All categories (%q) diverged from CleanAllString (%q)", full, CleanAllString(input))
	}
}

func TestCleanWithString(t *testing.T) {
	input := "https://x.com?utm_source=a&session_ref=b&id=1"

	// session_ref is not in the database, so the plain clean keeps it.
	if result := CleanAllString(input); result != "https://x.com?session_ref=b&id=1" {
		t.Errorf("Unexpected CleanAllString result: %q", result)
	}

	// Union with extras removes both.
	if result := CleanWithString(input, "session_ref"); result != "https://x.com?id=1" {
		t.Errorf("Unexpected CleanWithString result: %q", result)
	}
}

func TestCleanOnlyString(t *testing.T) {
	input := "https://x.com?utm_source=a&foo=1&id=2"

	// Only the named parameter goes; the database is bypassed entirely.
	if result := CleanOnlyString(input, "foo"); result != "https://x.com?utm_source=a&id=2" {
		t.Errorf("Unexpected CleanOnlyString result: %q", result)
	}

	// Case-insensitive like everything else.
	if result := CleanOnlyString(input, "FOO"); result != "https://x.com?utm_source=a&id=2" {
		t.Errorf("Unexpected case-insensitive CleanOnlyString result: %q", result)
	}
}

func TestCleanURLVariants(t *testing.T) {
	u, err := url.Parse("https://x.com/p?utm_source=a&fbclid=b&mc_cid=c&tag=d&ncid=e&keep=1")
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}

	tests := []struct {
		name     string
		cleaned  *url.URL
		expected string
	}{
		{"CleanAll", CleanAll(u), "https://x.com/p?keep=1"},
		{"CleanCategories social", CleanCategories(u, CategorySocial), "https://x.com/p?utm_source=a&mc_cid=c&tag=d&ncid=e&keep=1"},
		{"CleanOnly keep", CleanOnly(u, "keep"), "https://x.com/p?utm_source=a&fbclid=b&mc_cid=c&tag=d&ncid=e"},
		{"CleanWith keep", CleanWith(u, "keep"), "https://x.com/p"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cleaned.String(); got != tt.expected {
				t.Errorf("Got %q, want %q", got, tt.expected)
			}
		})
	}
}

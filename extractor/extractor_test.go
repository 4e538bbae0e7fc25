package extractor

import (
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
	<link rel="canonical" href="https://example.com/article?utm_source=rss">
	<script src="/static/app.js?v=3"></script>
</head>
<body>
	<a href="https://example.com/a?utm_source=news&id=1">first</a>
	<a href="/relative?fbclid=abc&page=2">second</a>
	<a href="#top">anchor</a>
	<a href="https://example.com/a?utm_source=news&id=1">duplicate</a>
	<img src="https://cdn.example.com/pic.png?mc_cid=x">
	<form action="/search?gclid=zzz"></form>
</body>
</html>`

func TestExtractLinks(t *testing.T) {
	base, err := url.Parse("https://example.com/")
	require.NoError(t, err)

	extractor := New(nil, zerolog.Nop())
	links, err := extractor.ExtractLinks([]byte(samplePage), base)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://example.com/article",
		"https://example.com/static/app.js?v=3",
		"https://example.com/a?id=1",
		"https://example.com/relative?page=2",
		"https://cdn.example.com/pic.png",
		"https://example.com/search",
	}, links)
}

func TestExtractLinksWithoutBase(t *testing.T) {
	extractor := New(nil, zerolog.Nop())
	links, err := extractor.ExtractLinks([]byte(`<a href="/page?utm_source=x&id=1">x</a>`), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"/page?id=1"}, links)
}

func TestExtractLinksCustomRemovalSet(t *testing.T) {
	extractor := New(map[string]bool{"session": true}, zerolog.Nop())
	links, err := extractor.ExtractLinks([]byte(`<a href="https://x.com?session=1&utm_source=keepme">x</a>`), nil)
	require.NoError(t, err)
	// The custom set bypasses the database, so utm_source survives.
	assert.Equal(t, []string{"https://x.com?utm_source=keepme"}, links)
}

func TestExtractLinksEmptyDocument(t *testing.T) {
	extractor := New(nil, zerolog.Nop())
	links, err := extractor.ExtractLinks([]byte(""), nil)
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestRewriteHTML(t *testing.T) {
	extractor := New(nil, zerolog.Nop())

	input := `<html><head></head><body><a href="https://x.com/a?utm_source=n&id=1">x</a></body></html>`
	output, err := extractor.RewriteHTML([]byte(input))
	require.NoError(t, err)

	assert.Contains(t, string(output), `href="https://x.com/a?id=1"`)
	assert.NotContains(t, string(output), "utm_source")
}

func TestRewriteHTMLKeepsCleanLinks(t *testing.T) {
	extractor := New(nil, zerolog.Nop())

	input := `<html><head></head><body><a href="https://x.com/a?id=1">x</a></body></html>`
	output, err := extractor.RewriteHTML([]byte(input))
	require.NoError(t, err)

	assert.Contains(t, string(output), `href="https://x.com/a?id=1"`)
}

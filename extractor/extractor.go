// Package extractor pulls link URLs out of HTML documents and strips
// tracking parameters from them. It operates on supplied document bytes
// only and performs no fetching of its own.
package extractor

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/aleister1102/urlclean"
	"github.com/aleister1102/urlclean/internal/errorwrapper"
)

// linkSelector matches every element/attribute pair that carries a URL.
const linkSelector = "a[href], link[href], script[src], img[src], iframe[src], form[action]"

// attrForTag returns the URL-carrying attribute for a tag name.
func attrForTag(tag string) string {
	switch tag {
	case "a", "link":
		return "href"
	case "script", "img", "iframe":
		return "src"
	case "form":
		return "action"
	default:
		return ""
	}
}

// Extractor extracts and cleans links from HTML content.
type Extractor struct {
	removing map[string]bool
	logger   zerolog.Logger
}

// New creates an extractor that strips the given removal set from every
// extracted link. A nil removal set means the full tracking database.
func New(removing map[string]bool, logger zerolog.Logger) *Extractor {
	if removing == nil {
		removing = urlclean.AllParameters()
	}
	return &Extractor{
		removing: removing,
		logger:   logger.With().Str("component", "LinkExtractor").Logger(),
	}
}

// ExtractLinks parses htmlContent, collects every link-carrying
// attribute, resolves relative references against base (when non-nil),
// and returns the cleaned URLs in document order with duplicates
// removed. Attributes that are empty or pure fragments are skipped.
func (e *Extractor) ExtractLinks(htmlContent []byte, base *url.URL) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlContent))
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse HTML content")
	}

	seen := make(map[string]bool)
	links := make([]string, 0, 32)

	doc.Find(linkSelector).Each(func(_ int, s *goquery.Selection) {
		attrName := attrForTag(goquery.NodeName(s))
		if attrName == "" {
			return
		}

		attrValue, exists := s.Attr(attrName)
		attrValue = strings.TrimSpace(attrValue)
		if !exists || attrValue == "" || strings.HasPrefix(attrValue, "#") {
			return
		}

		resolved := e.resolve(attrValue, base)
		cleaned := urlclean.CleanString(resolved, e.removing)
		if seen[cleaned] {
			return
		}
		seen[cleaned] = true
		links = append(links, cleaned)
	})

	e.logger.Debug().
		Int("link_count", len(links)).
		Msg("Extracted links from HTML content")

	return links, nil
}

// RewriteHTML parses htmlContent and returns it with tracking parameters
// stripped from every link-carrying attribute. Links are rewritten in
// place without resolving relative references. The output is the
// document as re-rendered by the HTML parser, so a fragment input gains
// the standard html/head/body wrapping.
func (e *Extractor) RewriteHTML(htmlContent []byte) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlContent))
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse HTML content")
	}

	rewritten := 0
	doc.Find(linkSelector).Each(func(_ int, s *goquery.Selection) {
		attrName := attrForTag(goquery.NodeName(s))
		if attrName == "" {
			return
		}

		attrValue, exists := s.Attr(attrName)
		if !exists || attrValue == "" {
			return
		}

		cleaned := urlclean.CleanString(attrValue, e.removing)
		if cleaned != attrValue {
			s.SetAttr(attrName, cleaned)
			rewritten++
		}
	})

	e.logger.Debug().
		Int("rewritten_count", rewritten).
		Msg("Rewrote tracking links in HTML content")

	rendered, err := doc.Html()
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to render HTML content")
	}
	return []byte(rendered), nil
}

// resolve makes attrValue absolute against base when possible. Values
// that fail to resolve are returned as-is so they still get the textual
// cleaning path.
func (e *Extractor) resolve(attrValue string, base *url.URL) string {
	if base == nil {
		return attrValue
	}
	resolved, err := base.Parse(attrValue)
	if err != nil {
		return attrValue
	}
	return resolved.String()
}

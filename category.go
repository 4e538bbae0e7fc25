package urlclean

import (
	"fmt"
	"strings"
)

// Category groups tracking parameters by the kind of platform that sets them.
type Category int

const (
	// CategoryAnalytics covers web-analytics and ad-attribution parameters (utm_*, gclid, ...).
	CategoryAnalytics Category = iota
	// CategorySocial covers social-platform share and click identifiers (fbclid, igshid, ...).
	CategorySocial
	// CategoryEmail covers email-marketing campaign identifiers (mc_cid, mkt_tok, ...).
	CategoryEmail
	// CategoryEcommerce covers marketplace and affiliate-network parameters (tag, cjevent, ...).
	CategoryEcommerce
	// CategoryOther covers publisher-specific and miscellaneous referral parameters.
	CategoryOther
)

// AllCategories lists every category in declaration order.
var AllCategories = []Category{
	CategoryAnalytics,
	CategorySocial,
	CategoryEmail,
	CategoryEcommerce,
	CategoryOther,
}

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryAnalytics:
		return "analytics"
	case CategorySocial:
		return "social"
	case CategoryEmail:
		return "email"
	case CategoryEcommerce:
		return "ecommerce"
	case CategoryOther:
		return "other"
	default:
		return "unknown"
	}
}

// ParseCategory converts a category name to a Category. Matching is case-insensitive.
func ParseCategory(name string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "analytics":
		return CategoryAnalytics, nil
	case "social":
		return CategorySocial, nil
	case "email":
		return CategoryEmail, nil
	case "ecommerce":
		return CategoryEcommerce, nil
	case "other":
		return CategoryOther, nil
	default:
		return 0, fmt.Errorf("unknown tracking parameter category: %q", name)
	}
}

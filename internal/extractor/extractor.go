package extractor

import (
	"fmt"
	"strings"

	"shopcat/extractor/internal/domain"
)

// Entry is one child category extracted from a page, in page order.
type Entry struct {
	Name string `json:"name"`
	ID   string `json:"id"` // canonical form, dedup key
	URL  string `json:"url"`
}

// Extractor pulls the direct child categories out of a fetched page.
// One implementation exists per storefront; the crawler stays
// site-agnostic behind this interface.
type Extractor interface {
	// Extract returns the page's direct children in extraction order.
	// An empty slice means the category is a leaf; a ParseError means
	// the expected page structure is absent.
	Extract(page, currentURL string) ([]Entry, error)

	// CategoryID extracts the canonical category id from a URL,
	// returning "" when the URL does not match the site's category
	// URL shape.
	CategoryID(url string) string

	// RootName reads the category's display name off a fetched page,
	// returning "" when none is found.
	RootName(page string) string
}

// ForSite selects the extraction variant for a storefront.
func ForSite(site domain.Site, baseURL string) (Extractor, error) {
	switch site {
	case domain.SiteRakuten:
		return NewRakuten(baseURL), nil
	case domain.SiteYahoo:
		return NewYahoo(baseURL), nil
	default:
		return nil, fmt.Errorf("no extractor for site %q", site)
	}
}

func resolveURL(baseURL, href string) string {
	switch {
	case strings.HasPrefix(href, "http"):
		return href
	case strings.HasPrefix(href, "//"):
		return "https:" + href
	case strings.HasPrefix(href, "/"):
		return baseURL + href
	default:
		return href
	}
}

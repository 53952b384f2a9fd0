package extractor

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

var (
	// Yahoo! Shopping category URLs carry the full id path:
	// /category/2517/881/883/list
	yahooCategoryPath = regexp.MustCompile(`/category/([\d/]+)/list`)

	yahooQuerySuffix = regexp.MustCompile(`\?.*$`)
	yahooNameSuffix  = regexp.MustCompile(`映像ソフト$|おすすめ.*$`)
)

// yahooExtractor reads child categories out of the __NEXT_DATA__
// hydration JSON instead of the rendered DOM, which survives markup
// changes the DOM variant would not.
type yahooExtractor struct {
	baseURL string
}

func NewYahoo(baseURL string) Extractor {
	return &yahooExtractor{baseURL: baseURL}
}

// CategoryID returns the last segment of the URL's id path; the full
// path repeats every ancestor id, so the tail is the canonical form.
func (e *yahooExtractor) CategoryID(url string) string {
	m := yahooCategoryPath.FindStringSubmatch(url)
	if len(m) < 2 {
		return ""
	}
	path := strings.TrimRight(m[1], "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

func (e *yahooExtractor) RootName(page string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return ""
	}
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		name := strings.TrimSpace(h1.Text())
		return strings.TrimSpace(yahooNameSuffix.ReplaceAllString(name, ""))
	}
	return ""
}

func (e *yahooExtractor) Extract(page, currentURL string) ([]Entry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, &ParseError{URL: currentURL, Reason: ReasonMissingJSONBlock, Err: err}
	}

	script := doc.Find("script#__NEXT_DATA__").First()
	if script.Length() == 0 {
		return nil, &ParseError{URL: currentURL, Reason: ReasonMissingJSONBlock}
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(script.Text()), &data); err != nil {
		return nil, &ParseError{URL: currentURL, Reason: ReasonMalformedJSON, Err: err}
	}

	items, ok := categoriesSection(data)
	if !ok {
		return nil, &ParseError{
			URL:    currentURL,
			Reason: ReasonMalformedJSON,
			Err:    fmt.Errorf("category section missing from hydration data"),
		}
	}

	currentID := e.CategoryID(currentURL)
	seen := make(map[string]struct{})
	entries := make([]Entry, 0, len(items))

	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}

		name, _ := obj["text"].(string)
		href, _ := obj["url"].(string)
		if name == "" || href == "" {
			continue
		}

		url := e.normalizeURL(href)
		id := e.CategoryID(url)
		if id == "" || id == currentID {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}

		seen[id] = struct{}{}
		entries = append(entries, Entry{Name: strings.TrimSpace(name), ID: id, URL: url})
	}

	log.Debugf("Extracted %d child categories from hydration data of %s", len(entries), currentURL)
	return entries, nil
}

// categoriesSection walks the known key path to the child-category
// arrays. The toggle-area items are the ones hidden behind the page's
// "show more" button.
func categoriesSection(data map[string]any) ([]any, bool) {
	node, ok := dig(data,
		"props", "pageProps", "initialState", "bff",
		"advancedFilter", "sections", "category", "categories")
	if !ok {
		return nil, false
	}

	section, ok := node.(map[string]any)
	if !ok {
		return nil, false
	}

	var items []any
	if suggested, ok := section["suggestedCategories"].([]any); ok {
		items = append(items, suggested...)
	}
	if toggle, ok := section["toggleAreaCategoryItems"].([]any); ok {
		items = append(items, toggle...)
	}
	return items, true
}

func dig(m map[string]any, keys ...string) (any, bool) {
	var cur any = m
	for _, key := range keys {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = obj[key]; !ok {
			return nil, false
		}
	}
	return cur, true
}

func (e *yahooExtractor) normalizeURL(href string) string {
	url := resolveURL(e.baseURL, href)
	url = yahooQuerySuffix.ReplaceAllString(url, "")
	if !strings.HasSuffix(url, "/list") {
		url = strings.TrimRight(url, "/") + "/list"
	}
	return url
}

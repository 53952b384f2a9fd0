package extractor

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

var (
	rakutenCategoryID = regexp.MustCompile(`/category/(\d+)/?`)

	// Trailing item counts like "（1,234件）" or "567件" appended to
	// genre link labels.
	countParenSuffix = regexp.MustCompile(`\s*[\(（]\s*[\d,]+\s*[件点]\s*[\)）]\s*$`)
	countBareSuffix  = regexp.MustCompile(`[\d,]+件$`)
)

// Selectors tried in order when locating the genre navigation block.
var rakutenGenreSelectors = []string{
	"div[class*='sidebar'] div[class*='genre']",
	"div[class*='side-menu'] div[class*='category']",
	"div[class*='genrefilter']",
	"div[class*='genre_filter']",
	"div[class*='genre-list']",
	"div.dui-filter-menu",
}

// rakutenExtractor parses the Rakuten Ichiba genre sidebar: the
// currently-active genre carries an "-active" class and its direct
// children sit in the following sibling list block.
type rakutenExtractor struct {
	baseURL string
}

func NewRakuten(baseURL string) Extractor {
	return &rakutenExtractor{baseURL: baseURL}
}

func (e *rakutenExtractor) CategoryID(url string) string {
	if m := rakutenCategoryID.FindStringSubmatch(url); len(m) > 1 {
		return m[1]
	}
	return ""
}

func (e *rakutenExtractor) RootName(page string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return ""
	}

	if items := doc.Find("div[class*='breadcrumb'] a.item"); items.Length() > 0 {
		return strings.TrimSpace(items.Last().Text())
	}
	if active := doc.Find("span[class*='-active']").First(); active.Length() > 0 {
		return strings.TrimSpace(active.Text())
	}
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		return strings.TrimSpace(h1.Text())
	}
	return ""
}

func (e *rakutenExtractor) Extract(page, currentURL string) ([]Entry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, &ParseError{URL: currentURL, Reason: ReasonMissingContainer, Err: err}
	}

	container := e.findGenreContainer(doc)
	if container == nil {
		return nil, &ParseError{URL: currentURL, Reason: ReasonMissingContainer}
	}

	active := container.Find("span[class*='-active'], div[class*='-active']").First()
	if active.Length() == 0 {
		return nil, &ParseError{URL: currentURL, Reason: ReasonMissingContainer}
	}

	// The active genre's children live in the next sibling item block.
	// Its absence means a leaf category, not a failure.
	childContainer := active.NextFiltered("div.item")
	if childContainer.Length() == 0 {
		return []Entry{}, nil
	}

	childList := childContainer.Find("div.dui-list").First()
	if childList.Length() == 0 {
		return []Entry{}, nil
	}

	currentID := e.CategoryID(currentURL)
	seen := make(map[string]struct{})
	entries := make([]Entry, 0)

	childList.Find("a[href*='/category/']").Each(func(i int, link *goquery.Selection) {
		href, exists := link.Attr("href")
		if !exists {
			return
		}

		id := e.CategoryID(href)
		if id == "" || id == currentID {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}

		// The active link points back at the current category.
		if class, _ := link.Attr("class"); strings.Contains(class, "-active") {
			return
		}

		name, _ := link.Attr("title")
		if name == "" {
			if ellipsis := link.Find("div._ellipsis").First(); ellipsis.Length() > 0 {
				name = ellipsis.Text()
			} else {
				name = link.Text()
			}
		}
		name = cleanName(name)
		if name == "" {
			return
		}

		seen[id] = struct{}{}
		entries = append(entries, Entry{
			Name: name,
			ID:   id,
			URL:  resolveURL(e.baseURL, href),
		})
	})

	log.Debugf("Extracted %d child categories from %s", len(entries), currentURL)
	return entries, nil
}

func (e *rakutenExtractor) findGenreContainer(doc *goquery.Document) *goquery.Selection {
	for _, sel := range rakutenGenreSelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			return s
		}
	}
	return nil
}

func cleanName(name string) string {
	name = strings.TrimSpace(name)
	name = countParenSuffix.ReplaceAllString(name, "")
	name = countBareSuffix.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

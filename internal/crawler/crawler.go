package crawler

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"shopcat/extractor/internal/domain"
	"shopcat/extractor/internal/extractor"
	"shopcat/extractor/internal/fetcher"

	log "github.com/sirupsen/logrus"
)

// ErrRootUnreachable is returned when the very first fetch fails even
// after the retry. There is nothing to export in that case.
var ErrRootUnreachable = errors.New("root category page unreachable")

// Events are the UI-boundary callbacks. All are optional and invoked
// synchronously; the crawler never waits on them.
type Events struct {
	OnProgress  func(count int, node *domain.Category)
	OnWarning   func(node *domain.Category, reason string)
	OnComplete  func(root *domain.Category)
	OnCancelled func(partial *domain.Category)
}

// Crawler walks a storefront's category hierarchy depth-first from a
// root URL, one request at a time.
type Crawler struct {
	fetcher   fetcher.PageFetcher
	extractor extractor.Extractor
	events    Events
}

func New(f fetcher.PageFetcher, e extractor.Extractor, events Events) *Crawler {
	return &Crawler{
		fetcher:   f,
		extractor: e,
		events:    events,
	}
}

// Run crawls the hierarchy below rootURL down to maxDepth levels and
// returns the populated tree. Per-node fetch and parse failures are
// downgraded to leaves with warnings; cancellation via ctx returns the
// partially-built tree so partial results stay exportable.
func (c *Crawler) Run(ctx context.Context, rootURL string, maxDepth int) (*domain.Result, error) {
	if maxDepth < 1 || maxDepth > 10 {
		return nil, fmt.Errorf("max depth must be between 1 and 10, got %d", maxDepth)
	}

	parsed, err := url.Parse(rootURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("invalid root URL %q", rootURL)
	}
	rootHost := parsed.Host

	root := &domain.Category{
		ID:    c.extractor.CategoryID(rootURL),
		Name:  rootURL,
		URL:   rootURL,
		Depth: 0,
		State: domain.StatePending,
	}

	result := &domain.Result{Root: root}
	visited := make(map[string]struct{})

	// Explicit LIFO stack: keeps the traversal depth-first so report
	// rows come out in page order, and makes the cancellation check a
	// plain loop condition.
	stack := []*domain.Category{root}

	for len(stack) > 0 {
		if ctx.Err() != nil {
			log.Warnf("🛑 Crawl cancelled after %d nodes, returning partial tree", result.NodesVisited)
			result.Cancelled = true
			if c.events.OnCancelled != nil {
				c.events.OnCancelled(root)
			}
			return result, nil
		}

		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result.NodesVisited++

		// Cross-linked categories show up more than once; only the
		// first occurrence is expanded.
		if _, dup := visited[node.ID]; dup && node.ID != "" {
			node.State = domain.StateLeaf
			c.progress(result, node)
			continue
		}
		if node.ID != "" {
			visited[node.ID] = struct{}{}
		}

		if node.Depth >= maxDepth {
			node.State = domain.StateLeaf
			c.progress(result, node)
			continue
		}

		page, err := c.fetchWithRetry(ctx, node.URL)
		if err != nil {
			if node == root {
				return nil, fmt.Errorf("%w: %v", ErrRootUnreachable, err)
			}
			node.State = domain.StateFailed
			node.FailureReason = err.Error()
			c.warn(result, node, err.Error())
			c.progress(result, node)
			continue
		}
		node.State = domain.StateFetched

		if node == root {
			if name := c.extractor.RootName(page.Body); name != "" {
				root.Name = name
			}
			log.Infof("📌 Root category: %s (ID: %s)", root.Name, root.ID)
		}

		entries, err := c.extractor.Extract(page.Body, node.URL)
		if err != nil {
			node.State = domain.StateLeaf
			c.warn(result, node, err.Error())
			c.progress(result, node)
			continue
		}
		node.State = domain.StateExtracted

		children := make([]*domain.Category, 0, len(entries))
		for _, entry := range entries {
			if !sameHost(rootHost, entry.URL) {
				c.warn(result, &domain.Category{URL: entry.URL, Name: entry.Name},
					"child link leaves the category namespace, not followed")
				continue
			}
			children = append(children, node.AddChild(entry.ID, entry.Name, entry.URL))
		}

		if len(children) == 0 {
			node.State = domain.StateLeaf
		} else {
			node.State = domain.StateRecursing
			// Pushed in reverse so the leftmost child pops first.
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}

		log.Debugf("%s: %d child categories at depth %d", node.URL, len(children), node.Depth)
		c.progress(result, node)
	}

	log.Infof("✅ Crawl complete: %d categories visited, %d warnings",
		result.NodesVisited, len(result.Warnings))
	if c.events.OnComplete != nil {
		c.events.OnComplete(root)
	}
	return result, nil
}

// fetchWithRetry applies the crawl's retry-once policy. The fetcher
// waits its randomized delay before the retry as well, so pacing stays
// uniform.
func (c *Crawler) fetchWithRetry(ctx context.Context, url string) (*domain.Page, error) {
	page, err := c.fetcher.Fetch(ctx, url)
	if err == nil {
		return page, nil
	}
	log.Warnf("🔄 Fetch failed for %s, retrying once: %v", url, err)
	return c.fetcher.Fetch(ctx, url)
}

func (c *Crawler) warn(result *domain.Result, node *domain.Category, reason string) {
	result.Warnings = append(result.Warnings, domain.Warning{URL: node.URL, Reason: reason})
	log.Warnf("⚠️ %s: %s", node.URL, reason)
	if c.events.OnWarning != nil {
		c.events.OnWarning(node, reason)
	}
}

func (c *Crawler) progress(result *domain.Result, node *domain.Category) {
	if c.events.OnProgress != nil {
		c.events.OnProgress(result.NodesVisited, node)
	}
}

func sameHost(rootHost, childURL string) bool {
	parsed, err := url.Parse(childURL)
	if err != nil {
		return false
	}
	return parsed.Host == rootHost
}

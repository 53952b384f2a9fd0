package container

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"shopcat/extractor/internal/config"
	"shopcat/extractor/internal/crawler"
	"shopcat/extractor/internal/domain"
	"shopcat/extractor/internal/extractor"
	"shopcat/extractor/internal/fetcher"
	"shopcat/extractor/internal/report"

	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config    *config.Config
	Fetcher   fetcher.PageFetcher
	Extractor extractor.Extractor
	Crawler   *crawler.Crawler

	visited atomic.Int64
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	delay := fetcher.NewUniformRandomDelay(
		time.Duration(cfg.Politeness.MinDelayMs)*time.Millisecond,
		time.Duration(cfg.Politeness.MaxDelayMs)*time.Millisecond,
	)
	c.Fetcher = fetcher.New(cfg.HTTP, delay)

	baseURL, err := baseURLOf(cfg.Crawl.RootURL)
	if err != nil {
		return nil, fmt.Errorf("failed to derive base URL: %w", err)
	}

	ext, err := extractor.ForSite(cfg.Site, baseURL)
	if err != nil {
		return nil, err
	}
	c.Extractor = ext

	events := crawler.Events{
		OnProgress: func(count int, node *domain.Category) {
			c.visited.Store(int64(count))
		},
		OnWarning: func(node *domain.Category, reason string) {
			// Already logged by the crawler; hook kept for UI shells.
		},
		OnComplete: func(root *domain.Category) {
			log.Infof("✅ Finished crawling %s", root.Name)
		},
		OnCancelled: func(partial *domain.Category) {
			log.Warnf("🛑 Crawl cancelled, partial tree for %s will still be exported", partial.Name)
		},
	}
	c.Crawler = crawler.New(c.Fetcher, ext, events)

	return c, nil
}

// Run crawls the configured root category and writes the flattened
// report. A cancelled run still exports whatever was collected.
func (c *Container) Run(ctx context.Context) error {
	log.Infof("🛒 Extracting %s categories from %s (max depth %d)",
		c.Config.Site.GetSiteName(), c.Config.Crawl.RootURL, c.Config.Crawl.MaxDepth)

	var result *domain.Result
	done := make(chan struct{})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(done)
		res, err := c.Crawler.Run(ctx, c.Config.Crawl.RootURL, c.Config.Crawl.MaxDepth)
		if err != nil {
			return err
		}
		result = res
		return nil
	})

	// Periodic progress while the crawl paces itself between requests.
	g.Go(func() error {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return nil
			case <-ticker.C:
				log.Infof("📊 Progress: %d categories visited", c.visited.Load())
			}
		}
	})

	if err := g.Wait(); err != nil {
		return err
	}

	return c.export(result)
}

func (c *Container) export(result *domain.Result) error {
	rows := report.Flatten(result.Root)
	counts := report.LevelCounts(result.Root)

	file, err := os.Create(c.Config.Output.Path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := report.WriteCSV(file, rows, counts); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	log.Infof("✅ Wrote %d rows to %s (%d warnings)",
		len(rows), c.Config.Output.Path, len(result.Warnings))
	return nil
}

func baseURLOf(rootURL string) (string, error) {
	parsed, err := url.Parse(rootURL)
	if err != nil {
		return "", err
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("root URL %q has no scheme or host", rootURL)
	}
	return parsed.Scheme + "://" + parsed.Host, nil
}

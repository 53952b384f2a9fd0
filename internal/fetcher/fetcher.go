package fetcher

import (
	"context"
	"errors"
	"net"
	"time"

	"shopcat/extractor/internal/config"
	"shopcat/extractor/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// PageFetcher issues a single GET per call with mandatory pacing.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*domain.Page, error)
}

type pageFetcher struct {
	rl         ratelimit.Limiter
	delay      DelayStrategy
	httpClient *resty.Client
}

// New builds a fetcher with browser-like headers. Retries are not
// configured on the client: the crawler owns the retry policy.
func New(cfg config.HTTPConfig, delay DelayStrategy) PageFetcher {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "ja,en-US;q=0.9,en;q=0.8")

	return &pageFetcher{
		rl:         ratelimit.New(cfg.MaxRequestsPerSecond),
		delay:      delay,
		httpClient: client,
	}
}

func (f *pageFetcher) Fetch(ctx context.Context, url string) (*domain.Page, error) {
	// Pacing applies before every request, the first included, so the
	// interval stays uniform across retries.
	f.delay.Wait()
	f.rl.Take()

	resp, err := f.httpClient.R().
		SetContext(ctx).
		Get(url)

	if err != nil {
		return nil, classify(url, err)
	}

	if resp.IsError() {
		return nil, &FetchError{
			URL:        url,
			Cause:      CauseHTTPStatus,
			StatusCode: resp.StatusCode(),
		}
	}

	log.Debugf("Fetched %s (%d, %d bytes)", url, resp.StatusCode(), len(resp.String()))
	return &domain.Page{Body: resp.String(), StatusCode: resp.StatusCode()}, nil
}

func classify(url string, err error) *FetchError {
	cause := CauseConnection

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		cause = CauseTimeout
	} else if errors.Is(err, context.DeadlineExceeded) {
		cause = CauseTimeout
	}

	return &FetchError{URL: url, Cause: cause, Err: err}
}

package fetcher

import "fmt"

// FailureCause classifies why a fetch failed.
type FailureCause string

const (
	CauseTimeout    FailureCause = "timeout"
	CauseHTTPStatus FailureCause = "http-error"
	CauseConnection FailureCause = "connection-error"
)

// FetchError carries the failed URL and its cause across the crawler
// boundary. The crawler owns the retry/skip decision.
type FetchError struct {
	URL        string
	Cause      FailureCause
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Cause == CauseHTTPStatus {
		return fmt.Sprintf("fetch %s failed: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s failed (%s): %v", e.URL, e.Cause, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

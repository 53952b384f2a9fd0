package domain

// Page is the raw result of a single fetch.
type Page struct {
	Body       string `json:"body"`
	StatusCode int    `json:"status_code"`
}

// Row is one line of the flattened report. Levels always has the same
// length for every row of a run: genre columns from the root down,
// padded with empty strings past the node's own depth.
type Row struct {
	Index      int      `json:"index"`
	Levels     []string `json:"levels"`
	CategoryID string   `json:"category_id"`
	URL        string   `json:"url"`
}

package extractor

import "fmt"

// ParseReason classifies why extraction failed.
type ParseReason string

const (
	ReasonMissingContainer ParseReason = "missing-container"
	ReasonMissingJSONBlock ParseReason = "missing-json-block"
	ReasonMalformedJSON    ParseReason = "malformed-json"
)

// ParseError signals that the expected page structure is absent,
// usually because the site changed markup or the URL is not a
// category page. The crawler downgrades it to a leaf plus a warning.
type ParseError struct {
	URL    string
	Reason ParseReason
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s failed (%s): %v", e.URL, e.Reason, e.Err)
	}
	return fmt.Sprintf("parse %s failed (%s)", e.URL, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

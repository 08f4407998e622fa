package model

import "time"

// Report represents the complete result of one obitwatch run
type Report struct {
	Selectors []string  `json:"selectors"`  // Selectors the run was invoked with
	FetchedAt time.Time `json:"fetched_at"` // When the run occurred

	Pages   []PageResult `json:"pages"`   // Per-page fetch/extraction outcomes, in selector order
	Entries []Entry      `json:"entries"` // Final deduplicated records, date-descending

	LLM *DigestSummary `json:"llm,omitempty"` // Optional LLM digest (never affects extraction)
}

// PageResult records what happened to a single source page
type PageResult struct {
	Title     string    `json:"title"`      // Wikipedia page title, e.g. "Deaths in March 2015"
	URL       string    `json:"url"`        // Resolved page URL
	FromCache bool      `json:"from_cache"` // Whether the body came from the cache
	Extracted int       `json:"extracted"`  // Candidate records extracted from this page
	FetchMeta FetchMeta `json:"fetch_meta"` // HTTP metadata
}

// FetchMeta contains HTTP metadata from fetching a source page
type FetchMeta struct {
	StatusCode   int    `json:"status_code"`
	ContentType  string `json:"content_type,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
	ETag         string `json:"etag,omitempty"`
}

// DigestSummary contains the optional LLM-generated digest.
// It is strictly additive: extraction and deduplication never depend on it.
type DigestSummary struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider,omitempty"` // e.g. "openai"
	Model    string `json:"model,omitempty"`    // Model name
	Text     string `json:"text,omitempty"`     // Generated digest
}

package worker

import (
	"context"
	"sort"

	"github.com/obitwatch/obitwatch/internal/model"
	"github.com/obitwatch/obitwatch/internal/source"
)

// Retriever fetches the body of one source page
type Retriever interface {
	FetchPage(ctx context.Context, page source.Page) (*PageFetch, error)
}

// PageFetch holds a fetched page body and its metadata
type PageFetch struct {
	Body      string
	Meta      model.FetchMeta
	FromCache bool
}

// FetchJob fetches a single page
type FetchJob struct {
	Index     int // Position in the selector order
	Page      source.Page
	Retriever Retriever
}

// Execute executes the fetch job
func (j *FetchJob) Execute(ctx context.Context) Result {
	fetch, err := j.Retriever.FetchPage(ctx, j.Page)
	return &FetchResult{
		Index: j.Index,
		Page:  j.Page,
		Fetch: fetch,
		Err:   err,
	}
}

// FetchResult represents the result of a fetch job
type FetchResult struct {
	Index int
	Page  source.Page
	Fetch *PageFetch
	Err   error
}

// GetError returns the error from the fetch result
func (r *FetchResult) GetError() error {
	return r.Err
}

// BatchFetcher fetches multiple pages concurrently while preserving
// selector order in its results. Date-context extraction depends on the
// pages being processed in the order they were requested, so the bodies
// may arrive in any order but are handed back sorted by index.
type BatchFetcher struct {
	retriever   Retriever
	concurrency int
}

// NewBatchFetcher creates a new batch fetcher
func NewBatchFetcher(retriever Retriever, concurrency int) *BatchFetcher {
	return &BatchFetcher{
		retriever:   retriever,
		concurrency: concurrency,
	}
}

// FetchAll fetches all pages and returns one result per page, in input order.
func (b *BatchFetcher) FetchAll(ctx context.Context, pages []source.Page) []*FetchResult {
	if len(pages) == 0 {
		return []*FetchResult{}
	}

	pool := NewPoolWithContext(ctx, b.concurrency, len(pages))
	pool.Start()

	for i, page := range pages {
		pool.Submit(&FetchJob{
			Index:     i,
			Page:      page,
			Retriever: b.retriever,
		})
	}

	results := pool.Wait()

	ordered := make([]*FetchResult, 0, len(results))
	for _, result := range results {
		ordered = append(ordered, result.(*FetchResult))
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Index < ordered[j].Index
	})

	return ordered
}

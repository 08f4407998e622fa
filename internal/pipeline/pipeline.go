package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/obitwatch/obitwatch/internal/cache"
	"github.com/obitwatch/obitwatch/internal/extract"
	"github.com/obitwatch/obitwatch/internal/llm"
	"github.com/obitwatch/obitwatch/internal/model"
	"github.com/obitwatch/obitwatch/internal/source"
	"github.com/obitwatch/obitwatch/internal/util"
	"github.com/obitwatch/obitwatch/internal/worker"
)

// Pipeline orchestrates the complete run: resolve selectors, fetch pages,
// extract records, merge, and optionally digest.
type Pipeline struct {
	fetcher   *Fetcher
	extractor *extract.PageExtractor
	pageCache cache.Cache // nil when caching is disabled
	limiter   *worker.Limiter
	robots    *util.RobotsChecker // nil when robots compliance is disabled
	digester  *llm.Digester       // nil when the digest is disabled
	config    *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var pageCache cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			pageCache = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		} else {
			pageCache = cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute)
		}
	}

	var robots *util.RobotsChecker
	if cfg.Crawl.RespectRobots {
		robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}

	var digester *llm.Digester
	if cfg.LLM.Provider != "" {
		d, err := llm.NewDigester(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			digester = d
		}
	}

	return &Pipeline{
		fetcher:   NewFetcher(cfg.HTTP),
		extractor: extract.NewPageExtractor(),
		pageCache: pageCache,
		limiter:   worker.NewLimiter(cfg.Crawl.RequestsPerSecond, cfg.Crawl.Burst),
		robots:    robots,
		digester:  digester,
		config:    cfg,
	}
}

// FetchPage retrieves one page body, honoring robots.txt, the per-domain
// rate limit, and the cache. It implements worker.Retriever.
func (p *Pipeline) FetchPage(ctx context.Context, page source.Page) (*worker.PageFetch, error) {
	key := cache.PageKey(page.URL)
	if p.pageCache != nil {
		if body, found := p.pageCache.Get(key); found {
			return &worker.PageFetch{Body: string(body), FromCache: true}, nil
		}
	}

	crawlDelay := time.Duration(0)
	if p.robots != nil {
		allowed, delay, err := p.robots.CanFetch(ctx, page.URL)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("robots.txt disallows fetching %s", page.URL)
		}
		crawlDelay = delay
	}

	if err := p.limiter.WaitWithDelay(ctx, page.URL, crawlDelay); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	body, meta, err := p.fetcher.FetchWithRetry(ctx, page.URL)
	if err != nil {
		return nil, err
	}

	if p.pageCache != nil {
		if err := p.pageCache.Set(key, []byte(body), p.config.Cache.TTL); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cache write failed: %v\n", err)
		}
	}

	return &worker.PageFetch{Body: body, Meta: meta}, nil
}

// Run executes the full pipeline for the given selectors
func (p *Pipeline) Run(ctx context.Context, selectors []string) (*model.Report, error) {
	pages, err := source.ParseSelectors(selectors)
	if err != nil {
		return nil, err
	}

	fetcher := worker.NewBatchFetcher(p, p.config.Concurrency.FetchWorkers)
	results := fetcher.FetchAll(ctx, pages)

	report, err := p.buildReport(selectors, results)
	if err != nil {
		return nil, err
	}

	if p.digester != nil && p.digester.IsEnabled() {
		summary, err := p.digester.Generate(ctx, report.Entries)
		if err != nil {
			// A failed digest never fails the run
			fmt.Fprintf(os.Stderr, "Warning: digest generation failed: %v\n", err)
		} else {
			report.LLM = summary
		}
	}

	return report, nil
}

// buildReport parses fetched bodies strictly in selector order and merges
// the per-page record lists. Pages arrive already ordered from the batch
// fetcher; a later page must be able to supersede an earlier page's
// mention of the same person, so the order is load-bearing.
func (p *Pipeline) buildReport(selectors []string, results []*worker.FetchResult) (*model.Report, error) {
	var all []model.Entry
	pageResults := make([]model.PageResult, 0, len(results))

	for _, res := range results {
		if res.Err != nil {
			return nil, fmt.Errorf("fetch %s: %w", res.Page.Title, res.Err)
		}

		entries, err := p.extractor.Extract(res.Fetch.Body, res.Page.YearHint)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", res.Page.Title, err)
		}

		all = append(all, entries...)
		pageResults = append(pageResults, model.PageResult{
			Title:     res.Page.Title,
			URL:       res.Page.URL,
			FromCache: res.Fetch.FromCache,
			Extracted: len(entries),
			FetchMeta: res.Fetch.Meta,
		})
	}

	return &model.Report{
		Selectors: selectors,
		FetchedAt: time.Now().UTC(),
		Pages:     pageResults,
		Entries:   extract.Dedupe(all),
	}, nil
}

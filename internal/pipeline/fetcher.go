package pipeline

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/obitwatch/obitwatch/internal/model"
	"github.com/obitwatch/obitwatch/internal/util"
)

// Fetcher fetches HTML content from source pages
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
}

// NewFetcher creates a new Fetcher from the HTTP configuration
func NewFetcher(cfg model.HTTPConfig) *Fetcher {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy),
	}
	if cfg.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
	}
}

// fetchSleepFunc is replaceable in tests to skip backoff waits
var fetchSleepFunc = time.Sleep

const fetchAttempts = 3

// FetchWithRetry fetches the page, retrying transient upstream failures
// (5xx and transport errors) with linear backoff. Client errors such as
// 404 fail immediately.
func (f *Fetcher) FetchWithRetry(ctx context.Context, rawURL string) (string, model.FetchMeta, error) {
	var body string
	var meta model.FetchMeta
	var err error

	for attempt := 1; attempt <= fetchAttempts; attempt++ {
		body, meta, err = f.Fetch(ctx, rawURL)
		if err == nil {
			return body, meta, nil
		}
		if meta.StatusCode >= 400 && meta.StatusCode < 500 {
			return "", meta, err
		}
		if ctx.Err() != nil {
			return "", meta, err
		}
		if attempt < fetchAttempts {
			fetchSleepFunc(time.Duration(attempt) * time.Second)
		}
	}

	return "", meta, err
}

// Fetch retrieves the page body from the given URL
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, model.FetchMeta, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", model.FetchMeta{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", model.FetchMeta{}, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	meta := model.FetchMeta{
		StatusCode:   resp.StatusCode,
		ContentType:  resp.Header.Get("Content-Type"),
		LastModified: resp.Header.Get("Last-Modified"),
		ETag:         resp.Header.Get("ETag"),
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", meta, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return "", meta, fmt.Errorf("read body: %w", err)
	}

	return string(body), meta, nil
}

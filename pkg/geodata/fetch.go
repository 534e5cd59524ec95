// Package geodata fetches remote geospatial datasets over HTTP.
package geodata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"
)

// FetcherOptions configures fetch behavior.
type FetcherOptions struct {
	// RequestsPerSecond limits outgoing requests, as a courtesy to the public
	// hosts that serve open datasets. Default: 4. Set negative to disable.
	RequestsPerSecond float64

	// Burst is the rate limiter burst size. Default: 2.
	Burst int

	// Timeout bounds each request. Default: 30s.
	Timeout time.Duration

	// UserAgent identifies the client. Default: "geodeck".
	UserAgent string

	// Client optionally overrides the HTTP client. Timeout is ignored when set.
	Client *http.Client
}

// DefaultFetcherOptions returns fetcher options with defaults.
func DefaultFetcherOptions() FetcherOptions {
	return FetcherOptions{
		RequestsPerSecond: 4,
		Burst:             2,
		Timeout:           30 * time.Second,
		UserAgent:         "geodeck",
	}
}

// Fetcher downloads remote datasets with rate limiting.
//
// A single Fetcher is safe for concurrent use; the limiter coordinates all
// callers.
type Fetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// NewFetcher creates a fetcher.
func NewFetcher(opts FetcherOptions) *Fetcher {
	def := DefaultFetcherOptions()
	if opts.RequestsPerSecond == 0 {
		opts.RequestsPerSecond = def.RequestsPerSecond
	}
	if opts.Burst == 0 {
		opts.Burst = def.Burst
	}
	if opts.Timeout == 0 {
		opts.Timeout = def.Timeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = def.UserAgent
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.Burst)
	}

	return &Fetcher{
		client:    client,
		limiter:   limiter,
		userAgent: opts.UserAgent,
	}
}

// Fetch downloads a URL and returns the response body.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", url, err)
	}
	return body, nil
}

// FetchFile downloads a URL into destDir and returns the local path.
//
// Downloads are cached: if the destination file already exists it is returned
// without a network request. The file name is the last URL path segment.
func (f *Fetcher) FetchFile(ctx context.Context, url, destDir string) (string, error) {
	name := filepath.Base(url)
	if name == "." || name == "/" || name == "" {
		return "", fmt.Errorf("cannot derive file name from URL: %s", url)
	}
	dest := filepath.Join(destDir, name)

	if _, err := os.Stat(dest); err == nil {
		return dest, nil
	}

	data, err := f.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("create dest dir: %w", err)
	}

	// Write via temp file so a partial download never masquerades as complete
	tmp, err := os.CreateTemp(destDir, name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("move into place: %w", err)
	}

	return dest, nil
}

package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/yyyoichi/httpcache-go"

	"github.com/yyyoichi/stegotext/harness"
)

// Fetcher performs HTTP requests for url covers.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewCachedFetcher returns a client that keeps responses under dir, so a
// remote cover text is downloaded once across runs.
func NewCachedFetcher(dir string) Fetcher {
	return &httpcache.Client{
		Client:  http.DefaultClient,
		Cache:   httpcache.NewStorageCache(dir),
		Handler: httpcache.NewDefaultHandler(),
	}
}

// Resolve returns the cover texts for the harness, downloading url covers
// with f in order.
func (c *Config) Resolve(ctx context.Context, f Fetcher) ([]harness.CoverText, error) {
	out := make([]harness.CoverText, len(c.Covers))
	for i, cv := range c.Covers {
		text := cv.Text
		if cv.URL != "" {
			var err error
			if text, err = fetchText(ctx, f, cv.URL); err != nil {
				return nil, fmt.Errorf("cover %q: %w", cv.Name, err)
			}
		}
		out[i] = harness.CoverText{Name: cv.Name, Text: text}
	}
	return out, nil
}

func fetchText(ctx context.Context, f Fetcher, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := f.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bad status: %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}
	// the codecs work on runes; invalid bytes would come back as U+FFFD
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrInvalidConfig, url)
	}
	return string(data), nil
}

// Package enrich fetches minimal public metadata about a prospect's
// website. Enrichment is best-effort: every failure degrades to a
// URL-only summary and is never surfaced to the caller.
package enrich

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// fetchTimeout bounds the whole page fetch.
	fetchTimeout = 5 * time.Second

	// userAgent is a generic browser-like identification; some sites
	// refuse requests without one.
	userAgent = "Mozilla/5.0"
)

// Fetcher retrieves and summarizes page metadata.
type Fetcher struct {
	httpClient *http.Client
}

// Option customizes a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient overrides the HTTP client. Used in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(f *Fetcher) {
		f.httpClient = hc
	}
}

// NewFetcher creates a Fetcher with a bounded-timeout client.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{
			Timeout: fetchTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   fetchTimeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: fetchTimeout,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Summarize fetches the page and composes a prospect summary from its
// title and meta description. On any failure it returns the URL-only
// summary; it never returns an error.
func (f *Fetcher) Summarize(ctx context.Context, pageURL string) string {
	fallback := fmt.Sprintf("Company Website: %s", pageURL)

	title, desc, err := f.fetchMetadata(ctx, pageURL)
	if err != nil {
		return fallback
	}

	return fmt.Sprintf("Company Website: %s\nTitle: %s\nDescription: %s", pageURL, title, desc)
}

func (f *Fetcher) fetchMetadata(ctx context.Context, pageURL string) (title, desc string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", "", err
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())
	desc, _ = doc.Find(`meta[name="description"]`).First().Attr("content")
	desc = strings.TrimSpace(desc)

	if title == "" && desc == "" {
		return "", "", fmt.Errorf("no metadata found")
	}
	return title, desc, nil
}

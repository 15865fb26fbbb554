// Package scrapers fetches and parses travel advisory pages from the
// Department of Foreign Affairs website.
package scrapers

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// CountryLink pairs a country display name with its advisory page URL.
type CountryLink struct {
	Country string
	URL     string
}

// Client fetches advisory pages from the DFA website.
type Client struct {
	http     *resty.Client
	indexURL string
}

// Options configures a Client. Zero values fall back to the live index page
// and a 10 second per-request timeout.
type Options struct {
	IndexURL string
	Timeout  time.Duration
}

// NewClient creates a new advisory page client.
func NewClient(opts Options) *Client {
	if opts.IndexURL == "" {
		opts.IndexURL = "https://www.ireland.ie/en/dfa/overseas-travel/advice/"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}

	// The site serves automated clients differently, so mimic a browser.
	httpClient := resty.New().
		SetTimeout(opts.Timeout).
		SetHeaders(map[string]string{
			"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
			"Accept-Language": "en-US,en;q=0.5",
		})

	return &Client{
		http:     httpClient,
		indexURL: opts.IndexURL,
	}
}

// IndexURL returns the advisory index page URL this client scrapes.
func (c *Client) IndexURL() string {
	return c.indexURL
}

// fetchDocument retrieves a page and parses it into a goquery document.
func (c *Client) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	slog.DebugContext(ctx, "fetching page", "url", pageURL)

	res, err := c.http.R().
		SetContext(ctx).
		Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status code: %d", pageURL, res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}
	return doc, nil
}

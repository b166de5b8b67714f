// Package wikiquote provides a luminary.QuoteService backed by the
// MediaWiki action API of Wikiquote. Quote pages have no structured API,
// so quotes are extracted from the rendered page HTML.
package wikiquote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/luminary"
)

// DefaultBaseURL is the English Wikiquote.
const DefaultBaseURL = "https://en.wikiquote.org"

// DefaultTimeout is the default timeout for API requests.
const DefaultTimeout = 10 * time.Second

const userAgent = "luminary/1.0 (https://github.com/fwojciec/luminary)"

// Ensure Client implements luminary.QuoteService at compile time.
var _ luminary.QuoteService = (*Client)(nil)

// Client retrieves quotations over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the wiki base URL. Defaults to DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the timeout for API requests.
// Defaults to DefaultTimeout (10s). Ignored when WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a new Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// parseResponse mirrors the action=parse response.
type parseResponse struct {
	Parse struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	} `json:"parse"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// Quotes returns up to max quotes attributed to the named person.
// A max of zero or less falls back to DefaultMaxQuotes.
func (c *Client) Quotes(ctx context.Context, name string, max int) ([]string, error) {
	if name == "" {
		return nil, luminary.Errorf(luminary.EINVALID, "person name required")
	}
	if max <= 0 {
		max = luminary.DefaultMaxQuotes
	}

	q := url.Values{}
	q.Set("action", "parse")
	q.Set("page", name)
	q.Set("prop", "text")
	q.Set("redirects", "1")
	q.Set("format", "json")
	q.Set("formatversion", "2")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/w/api.php?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, luminary.Errorf(luminary.EUNAVAILABLE, "quote source unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, luminary.Errorf(luminary.EUNAVAILABLE, "quote source returned HTTP %d", resp.StatusCode)
	}

	var pr parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, luminary.Errorf(luminary.EINTERNAL, "malformed parse response: %v", err)
	}
	if pr.Error != nil {
		if pr.Error.Code == "missingtitle" {
			return nil, luminary.Errorf(luminary.ENOTFOUND, "no quote page for %q", name)
		}
		return nil, luminary.Errorf(luminary.EUNAVAILABLE, "quote source error: %s", pr.Error.Code)
	}

	return extractQuotes(pr.Parse.Text, max)
}

// extractQuotes pulls quote text from rendered page HTML. Quotes are the
// top-level list items of the parser output; nested lists carry sourcing
// detail and are stripped.
func extractQuotes(html string, max int) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, luminary.Errorf(luminary.EINTERNAL, "unreadable quote page: %v", err)
	}

	var quotes []string
	doc.Find("div.mw-parser-output > ul > li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		li.Find("ul, ol").Remove()
		text := strings.TrimSpace(li.Text())
		if text == "" {
			return true
		}
		quotes = append(quotes, text)
		return len(quotes) < max
	})
	return quotes, nil
}

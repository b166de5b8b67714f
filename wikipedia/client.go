// Package wikipedia provides a luminary.BiographyService backed by the
// MediaWiki APIs of Wikipedia: the REST summary endpoint for lead
// summaries and the action API plain-text extracts for full entries.
package wikipedia

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/fwojciec/luminary"
)

// DefaultBaseURL is the English Wikipedia.
const DefaultBaseURL = "https://en.wikipedia.org"

// DefaultTimeout is the default timeout for API requests.
const DefaultTimeout = 10 * time.Second

const userAgent = "luminary/1.0 (https://github.com/fwojciec/luminary)"

// Ensure Client implements luminary.BiographyService at compile time.
var _ luminary.BiographyService = (*Client)(nil)

// Client retrieves encyclopedia entries over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	converter  luminary.Converter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the wiki base URL (scheme and host, no trailing slash).
// Defaults to DefaultBaseURL.
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

// WithConverter sets the HTML-to-Markdown converter used for summary
// leads. Without one, summaries carry plain text only.
func WithConverter(conv luminary.Converter) Option {
	return func(c *Client) {
		c.converter = conv
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

// restSummary mirrors the REST summary endpoint response.
type restSummary struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ExtractHTML string `json:"extract_html"`
	Thumbnail   struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// FindSummary retrieves the lead summary for a person.
func (c *Client) FindSummary(ctx context.Context, name string) (*luminary.Summary, error) {
	if name == "" {
		return nil, luminary.Errorf(luminary.EINVALID, "person name required")
	}

	endpoint := c.baseURL + "/api/rest_v1/page/summary/" + url.PathEscape(pageTitle(name))
	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, luminary.Errorf(luminary.ENOTFOUND, "no encyclopedia entry for %q", name)
	case resp.StatusCode != http.StatusOK:
		return nil, luminary.Errorf(luminary.EUNAVAILABLE, "encyclopedia returned HTTP %d", resp.StatusCode)
	}

	var rs restSummary
	if err := json.NewDecoder(resp.Body).Decode(&rs); err != nil {
		return nil, luminary.Errorf(luminary.EINTERNAL, "malformed summary response: %v", err)
	}

	summary := &luminary.Summary{
		Title:    rs.Title,
		Extract:  rs.Extract,
		URL:      rs.ContentURLs.Desktop.Page,
		ImageURL: rs.Thumbnail.Source,
	}
	if c.converter != nil && rs.ExtractHTML != "" {
		// Markdown is a nicety; fall back to the plain extract on failure.
		if md, err := c.converter.Convert(rs.ExtractHTML); err == nil {
			summary.Markdown = md
		}
	}
	return summary, nil
}

// extractResponse mirrors the action API prop=extracts response.
type extractResponse struct {
	Query struct {
		Pages map[string]struct {
			PageID  int     `json:"pageid"`
			Title   string  `json:"title"`
			Extract string  `json:"extract"`
			Missing *string `json:"missing"`
		} `json:"pages"`
	} `json:"query"`
}

// FindBiography retrieves the full entry including the section tree.
// A name that finds no page is retried once with a title-cased variant
// before reporting ENOTFOUND.
func (c *Client) FindBiography(ctx context.Context, name string) (*luminary.Biography, error) {
	if name == "" {
		return nil, luminary.Errorf(luminary.EINVALID, "person name required")
	}

	bio, err := c.fetchExtract(ctx, name)
	if luminary.ErrorCode(err) == luminary.ENOTFOUND {
		if alt := titleCase(name); alt != name {
			return c.fetchExtract(ctx, alt)
		}
	}
	return bio, err
}

func (c *Client) fetchExtract(ctx context.Context, title string) (*luminary.Biography, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("prop", "extracts")
	q.Set("explaintext", "1")
	q.Set("redirects", "1")
	q.Set("format", "json")
	q.Set("titles", title)

	resp, err := c.get(ctx, c.baseURL+"/w/api.php?"+q.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, luminary.Errorf(luminary.EUNAVAILABLE, "encyclopedia returned HTTP %d", resp.StatusCode)
	}

	var er extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return nil, luminary.Errorf(luminary.EINTERNAL, "malformed extract response: %v", err)
	}

	for _, page := range er.Query.Pages {
		if page.Missing != nil || page.PageID == 0 {
			continue
		}
		lead, sections, err := ParseExtract(page.Extract)
		if err != nil {
			return nil, err
		}
		return &luminary.Biography{
			Title:    page.Title,
			Summary:  lead,
			Content:  page.Extract,
			URL:      c.baseURL + "/wiki/" + url.PathEscape(pageTitle(page.Title)),
			Sections: sections,
		}, nil
	}
	return nil, luminary.Errorf(luminary.ENOTFOUND, "no encyclopedia entry for %q", title)
}

func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, luminary.Errorf(luminary.EUNAVAILABLE, "encyclopedia unreachable: %v", err)
	}
	return resp, nil
}

// pageTitle converts a display name to wiki title form.
func pageTitle(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

// titleCase capitalizes the first letter of each word and lowercases the
// rest, the most common wiki title form for person names.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		for j, r := range runes {
			if j == 0 {
				runes[j] = unicode.ToUpper(r)
			} else {
				runes[j] = unicode.ToLower(r)
			}
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

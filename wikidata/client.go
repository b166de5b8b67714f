// Package wikidata provides a luminary.KnowledgeService backed by the
// Wikidata SPARQL endpoint.
package wikidata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/luminary"
	"golang.org/x/time/rate"
)

// DefaultEndpoint is the public Wikidata query service.
const DefaultEndpoint = "https://query.wikidata.org/sparql"

// DefaultTimeout is the default timeout for SPARQL requests. Knowledge
// graph queries are slower than plain page fetches.
const DefaultTimeout = 20 * time.Second

// DefaultSearchLimit bounds people-by-field results when the caller has
// no preference.
const DefaultSearchLimit = 30

// DefaultRequestsPerSecond is the politeness limit for the public
// endpoint.
const DefaultRequestsPerSecond = 1.0

const userAgent = "luminary/1.0 (https://github.com/fwojciec/luminary)"

// Ensure Client implements luminary.KnowledgeService at compile time.
var _ luminary.KnowledgeService = (*Client)(nil)

// Client queries the knowledge graph over HTTP.
type Client struct {
	httpClient *http.Client
	endpoint   string
	timeout    time.Duration
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint sets the SPARQL endpoint URL. Defaults to DefaultEndpoint.
func WithEndpoint(u string) Option {
	return func(c *Client) {
		c.endpoint = u
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the timeout for SPARQL requests.
// Defaults to DefaultTimeout (20s). Ignored when WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRateLimit sets the requests-per-second politeness limit.
// Defaults to DefaultRequestsPerSecond; zero or less disables limiting.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a new Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		timeout:  DefaultTimeout,
		limiter:  rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// sparqlValue is one bound value in a SPARQL results binding.
type sparqlValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// sparqlResponse mirrors the application/sparql-results+json format.
type sparqlResponse struct {
	Results struct {
		Bindings []map[string]sparqlValue `json:"bindings"`
	} `json:"results"`
}

// PeopleByField returns notable people whose occupation labels match the
// field's keywords. Unknown fields search for the field name itself.
func (c *Client) PeopleByField(ctx context.Context, field string, limit int) ([]luminary.PersonRef, error) {
	if field == "" {
		return nil, luminary.Errorf(luminary.EINVALID, "field required")
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	keywords, ok := luminary.FieldKeywords[field]
	if !ok {
		keywords = []string{strings.ToLower(field)}
	}

	bindings, err := c.query(ctx, PeopleByFieldQuery(keywords, limit))
	if err != nil {
		return nil, err
	}

	people := make([]luminary.PersonRef, 0, len(bindings))
	for _, b := range bindings {
		name := b["personLabel"].Value
		if name == "" {
			continue
		}
		people = append(people, luminary.PersonRef{
			Name:        name,
			Description: b["description"].Value,
			ImageURL:    b["image"].Value,
		})
	}
	return people, nil
}

// ImageOf returns an image URL for the named person.
func (c *Client) ImageOf(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", luminary.Errorf(luminary.EINVALID, "person name required")
	}

	bindings, err := c.query(ctx, ImageQuery(name))
	if err != nil {
		return "", err
	}
	if len(bindings) == 0 {
		return "", luminary.Errorf(luminary.ENOTFOUND, "no image recorded for %q", name)
	}
	return bindings[0]["image"].Value, nil
}

func (c *Client) query(ctx context.Context, sparql string) ([]map[string]sparqlValue, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	q := url.Values{}
	q.Set("query", sparql)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/sparql-results+json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, luminary.Errorf(luminary.EUNAVAILABLE, "knowledge graph unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, luminary.Errorf(luminary.EUNAVAILABLE, "knowledge graph returned HTTP %d", resp.StatusCode)
	}

	var sr sparqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, luminary.Errorf(luminary.EINTERNAL, "malformed SPARQL response: %v", err)
	}
	return sr.Results.Bindings, nil
}

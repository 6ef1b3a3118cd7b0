// Package tmdb provides the minimal TMDB search surface used by identity
// lookups.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Match is the first search result for a query, reduced to the fields the
// lookup layer cares about.
type Match struct {
	Title string
	Year  int
	ID    int64
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Name         string `json:"name"`
	ReleaseDate  string `json:"release_date"`
	FirstAirDate string `json:"first_air_date"`
}

// Client provides access to the TMDB search API.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a TMDB client.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   strings.TrimSpace(language),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchMovie returns the first TMDB movie match for the query, or nil when
// nothing matched. A positive year narrows the search.
func (c *Client) SearchMovie(ctx context.Context, query string, year int) (*Match, error) {
	params := url.Values{}
	if year > 0 {
		params.Set("year", strconv.Itoa(year))
	}
	payload, err := c.search(ctx, "/search/movie", query, params)
	if err != nil {
		return nil, err
	}
	if len(payload.Results) == 0 {
		return nil, nil
	}
	first := payload.Results[0]
	return &Match{
		Title: first.Title,
		Year:  yearFromDate(first.ReleaseDate),
		ID:    first.ID,
	}, nil
}

// SearchTV returns the first TMDB series match for the query, or nil when
// nothing matched.
func (c *Client) SearchTV(ctx context.Context, query string) (*Match, error) {
	payload, err := c.search(ctx, "/search/tv", query, url.Values{})
	if err != nil {
		return nil, err
	}
	if len(payload.Results) == 0 {
		return nil, nil
	}
	first := payload.Results[0]
	return &Match{
		Title: first.Name,
		Year:  yearFromDate(first.FirstAirDate),
		ID:    first.ID,
	}, nil
}

func (c *Client) search(ctx context.Context, path, query string, params url.Values) (*searchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("parse tmdb url: %w", err)
	}
	params.Set("query", query)
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb search returned %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode tmdb response: %w", err)
	}
	return &payload, nil
}

func yearFromDate(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}

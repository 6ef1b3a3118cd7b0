// Package tvdb provides the minimal TheTVDB v4 search surface used by
// identity lookups.
package tvdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Match is the first search result for a query.
type Match struct {
	Title string
	Year  int
	ID    string
}

// flexible accepts both JSON strings and numbers; the v4 API is not
// consistent about which it returns for year and id fields.
type flexible string

func (f *flexible) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexible(s)
		return nil
	}
	*f = flexible(bytes.TrimSpace(data))
	return nil
}

func (f flexible) Int() int {
	value, err := strconv.Atoi(string(f))
	if err != nil {
		return 0
	}
	return value
}

type loginResponse struct {
	Data struct {
		Token string `json:"token"`
	} `json:"data"`
}

type searchResponse struct {
	Data []searchResult `json:"data"`
}

type searchResult struct {
	Series *searchEntity `json:"series"`
	Movie  *searchEntity `json:"movie"`
}

type searchEntity struct {
	ID   flexible `json:"id"`
	Name string   `json:"name"`
	Year flexible `json:"year"`
}

// Client provides access to the TheTVDB v4 search API. Authentication
// happens lazily on first use and the bearer token is reused afterwards.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client

	mu    sync.Mutex
	token string
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

// New creates a TVDB client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tvdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tvdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchSeries returns the first series match for the query, or nil when
// nothing matched.
func (c *Client) SearchSeries(ctx context.Context, query string) (*Match, error) {
	results, err := c.search(ctx, query, "series")
	if err != nil {
		return nil, err
	}
	for _, result := range results {
		if result.Series == nil {
			continue
		}
		return &Match{
			Title: result.Series.Name,
			Year:  result.Series.Year.Int(),
			ID:    string(result.Series.ID),
		}, nil
	}
	return nil, nil
}

// SearchMovie returns the first movie match for the query. When a positive
// year is supplied, only a movie from that year is accepted.
func (c *Client) SearchMovie(ctx context.Context, query string, year int) (*Match, error) {
	results, err := c.search(ctx, query, "movie")
	if err != nil {
		return nil, err
	}
	for _, result := range results {
		if result.Movie == nil {
			continue
		}
		movieYear := result.Movie.Year.Int()
		if year > 0 && movieYear != year {
			continue
		}
		return &Match{
			Title: result.Movie.Name,
			Year:  movieYear,
			ID:    string(result.Movie.ID),
		}, nil
	}
	return nil, nil
}

func (c *Client) search(ctx context.Context, query, entityType string) ([]searchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	endpoint, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("parse tvdb url: %w", err)
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("type", entityType)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tvdb search returned %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode tvdb response: %w", err)
	}
	return payload.Data, nil
}

func (c *Client) ensureToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" {
		return c.token, nil
	}

	body, err := json.Marshal(map[string]string{"apikey": c.apiKey})
	if err != nil {
		return "", fmt.Errorf("encode login payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tvdb login returned %d", resp.StatusCode)
	}

	var payload loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if payload.Data.Token == "" {
		return "", errors.New("tvdb login returned no token")
	}
	c.token = payload.Data.Token
	return c.token, nil
}

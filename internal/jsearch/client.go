// Package jsearch is a thin paginated proxy to the JSearch aggregator on
// RapidAPI, reshaping raw hits into client-facing results.
package jsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/Kariqs/jobland-api/internal/types"
)

// Host is the RapidAPI host for the JSearch API.
const Host = "jsearch.p.rapidapi.com"

// DefaultTimeout bounds one search request.
const DefaultTimeout = 30 * time.Second

// Client queries the JSearch API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a JSearch client with the given RapidAPI key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    "https://" + Host,
	}
}

// NewClientWithBaseURL creates a client against a custom endpoint. Used by
// tests to point at a local server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// UpstreamError indicates the aggregator returned a non-success response.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("jsearch returned status %d: %s", e.StatusCode, e.Body)
}

// searchResponse is the wire shape of a JSearch search result page.
type searchResponse struct {
	Data []RawJob `json:"data"`
}

// Search runs one paginated query and returns transformed results sorted
// newest first.
func (c *Client) Search(ctx context.Context, query, page string) ([]types.FrontendJob, error) {
	if page == "" {
		page = "1"
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", page)
	params.Set("num_pages", "1")
	params.Set("date_posted", "3days")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create jsearch request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", Host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jsearch request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read jsearch response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse jsearch response: %w", err)
	}

	results := make([]types.FrontendJob, 0, len(parsed.Data))
	for _, raw := range parsed.Data {
		results = append(results, transformJob(raw, time.Now()))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].PostedTimestamp > results[j].PostedTimestamp
	})
	return results, nil
}

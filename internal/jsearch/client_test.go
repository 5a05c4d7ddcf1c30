package jsearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	older := time.Now().Add(-20 * time.Hour).UTC().Format(time.RFC3339)
	newer := time.Now().Add(-2 * time.Hour).UTC().Format(time.RFC3339)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, Host, r.Header.Get("X-RapidAPI-Host"))
		assert.Equal(t, "backend engineer", r.URL.Query().Get("query"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "1", r.URL.Query().Get("num_pages"))
		assert.Equal(t, "3days", r.URL.Query().Get("date_posted"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []RawJob{
				{JobID: "old", JobTitle: "Older Role", JobPostedAtDatetimeUTC: older},
				{JobID: "new", JobTitle: "Newer Role", JobPostedAtDatetimeUTC: newer},
			},
		})
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	jobs, err := client.Search(context.Background(), "backend engineer", "2")
	require.NoError(t, err)

	require.Len(t, jobs, 2)
	assert.Equal(t, "new", jobs[0].ID, "results should be sorted newest first")
	assert.Equal(t, "old", jobs[1].ID)
}

func TestSearch_DefaultsPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []RawJob{}})
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	jobs, err := client.Search(context.Background(), "developer", "")
	require.NoError(t, err)
	assert.Empty(t, jobs)
	assert.NotNil(t, jobs)
}

func TestSearch_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message": "rate limited"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	_, err := client.Search(context.Background(), "developer", "1")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusTooManyRequests, upstream.StatusCode)
	assert.Contains(t, upstream.Body, "rate limited")
}

func TestSearch_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	_, err := client.Search(context.Background(), "developer", "1")
	require.Error(t, err)
}

package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestClassifyError(t *testing.T) {
	t.Run("deadline exceeded", func(t *testing.T) {
		err := classifyError(fmt.Errorf("generate: %w", context.DeadlineExceeded), 30*time.Second)

		var timeoutErr *TimeoutError
		require.ErrorAs(t, err, &timeoutErr)
		assert.Equal(t, 30*time.Second, timeoutErr.Budget)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("provider rejection", func(t *testing.T) {
		apiErr := &googleapi.Error{Code: 429, Body: `{"error": "quota exceeded"}`}
		err := classifyError(apiErr, 30*time.Second)

		var upstreamErr *UpstreamError
		require.ErrorAs(t, err, &upstreamErr)
		assert.Equal(t, 429, upstreamErr.StatusCode)
		assert.Contains(t, upstreamErr.Body, "quota exceeded")
	})

	t.Run("transport failure", func(t *testing.T) {
		err := classifyError(errors.New("connection reset by peer"), time.Minute)

		var upstreamErr *UpstreamError
		require.ErrorAs(t, err, &upstreamErr)
		assert.Zero(t, upstreamErr.StatusCode)
	})
}

func TestExtractTextFromResponse(t *testing.T) {
	t.Run("joins text parts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text(`{"name":`), genai.Text(` "Ada"}`)},
				},
			}},
		}

		text, err := extractTextFromResponse(resp)
		require.NoError(t, err)
		assert.Equal(t, `{"name": "Ada"}`, text)
	})

	t.Run("no candidates", func(t *testing.T) {
		_, err := extractTextFromResponse(&genai.GenerateContentResponse{})

		var upstreamErr *UpstreamError
		require.ErrorAs(t, err, &upstreamErr)
	})

	t.Run("no text parts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
		}

		_, err := extractTextFromResponse(resp)

		var upstreamErr *UpstreamError
		require.ErrorAs(t, err, &upstreamErr)
	})
}

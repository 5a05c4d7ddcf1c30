// Package pipeline composes the document-to-structured-data stages:
// extraction, prompt building, model invocation, sanitization, validation,
// and change-log auditing. Each invocation is a strict sequential chain;
// concurrent invocations share nothing but the storage layer.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Kariqs/jobland-api/internal/extract"
	"github.com/Kariqs/jobland-api/internal/llm"
	"github.com/Kariqs/jobland-api/internal/prompts"
	"github.com/Kariqs/jobland-api/internal/sanitize"
	"github.com/Kariqs/jobland-api/internal/schemas"
	"github.com/Kariqs/jobland-api/internal/tailoring"
	"github.com/Kariqs/jobland-api/internal/types"
)

// Minimum viable input lengths. Below these the model hallucinates a
// plausible record instead of returning nothing, which is worse than a
// hard failure.
const (
	MinResumeTextLength = 50
	MinTailorTextLength = 100
	MinJobTextLength    = 50
)

// Per-task model budgets.
const (
	parseTimeout   = 120 * time.Second
	extractTimeout = 60 * time.Second
	tailorTimeout  = 120 * time.Second
)

// Pipeline runs ingestion, extraction, and tailoring against an LLM
// client. It holds no per-invocation state.
type Pipeline struct {
	client  llm.Client
	verbose bool
}

// New creates a pipeline around an LLM client.
func New(client llm.Client, verbose bool) *Pipeline {
	return &Pipeline{client: client, verbose: verbose}
}

// ParseResume converts an uploaded PDF/DOCX buffer into a validated
// structured resume.
func (p *Pipeline) ParseResume(ctx context.Context, data []byte, mediaType string) (*types.ResumeContent, error) {
	text, err := extract.Document(data, mediaType)
	if err != nil {
		return nil, err
	}
	if err := extract.CheckMinLength(text, MinResumeTextLength); err != nil {
		return nil, err
	}
	if p.verbose {
		log.Printf("[PIPELINE] parsing resume, %d characters of text", len(text))
	}

	system, user, err := prompts.Build(prompts.TaskParseResume, prompts.Inputs{ResumeText: text})
	if err != nil {
		return nil, err
	}

	raw, err := p.client.Complete(ctx, system, user, llm.Options{
		Tier:        llm.TierStandard,
		Temperature: 0.15,
		MaxTokens:   4000,
		Timeout:     parseTimeout,
	})
	if err != nil {
		return nil, err
	}

	var doc json.RawMessage
	if err := sanitize.Object(raw, &doc); err != nil {
		return nil, err
	}
	return schemas.Resume(doc)
}

// ExtractJob renders a job-posting URL and extracts a structured posting.
func (p *Pipeline) ExtractJob(ctx context.Context, url string) (*types.JobPosting, error) {
	text, err := extract.Page(ctx, url, extract.DefaultPageTimeout, p.verbose)
	if err != nil {
		return nil, err
	}

	system, user, err := prompts.Build(prompts.TaskExtractJob, prompts.Inputs{JobText: text})
	if err != nil {
		return nil, err
	}

	raw, err := p.client.Complete(ctx, system, user, llm.Options{
		Tier:        llm.TierLite,
		Temperature: 0,
		MaxTokens:   2000,
		Timeout:     extractTimeout,
	})
	if err != nil {
		return nil, err
	}

	var doc json.RawMessage
	if err := sanitize.Object(raw, &doc); err != nil {
		return nil, err
	}
	return schemas.JobPosting(doc)
}

// Tailor is the stateless rewrite task: an uploaded resume file plus a job
// description produce a tailored resume and cover letter. No change log is
// requested, so the replacement record is accepted with an empty log.
func (p *Pipeline) Tailor(ctx context.Context, data []byte, mediaType, jobDescription string) (*types.TailoredResult, *types.CoverLetter, error) {
	text, err := extract.Document(data, mediaType)
	if err != nil {
		return nil, nil, err
	}
	if err := extract.CheckMinLength(text, MinTailorTextLength); err != nil {
		return nil, nil, err
	}

	system, user, err := prompts.Build(prompts.TaskTailor, prompts.Inputs{
		ResumeText: text,
		JobText:    jobDescription,
	})
	if err != nil {
		return nil, nil, err
	}

	raw, err := p.client.Complete(ctx, system, user, llm.Options{
		Tier:        llm.TierAdvanced,
		Temperature: 0.2,
		MaxTokens:   4000,
		Timeout:     tailorTimeout,
	})
	if err != nil {
		return nil, nil, err
	}

	var doc json.RawMessage
	if err := sanitize.Object(raw, &doc); err != nil {
		return nil, nil, err
	}

	result, coverLetter, err := schemas.TailoredResult(doc)
	if err != nil {
		return nil, nil, err
	}
	result.Changes = []types.ChangeRecord{}
	return result, coverLetter, nil
}

// TailorWithChanges rewrites a stored structured resume against a job
// description and audits the model's declared change log. The source
// record is never mutated; the caller decides whether the result becomes a
// new sibling document or an explicit replacement.
func (p *Pipeline) TailorWithChanges(ctx context.Context, original *types.ResumeContent, jobDescription string) (*types.TailoredResult, error) {
	originalJSON, err := json.MarshalIndent(original, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize original resume: %w", err)
	}

	system, user, err := prompts.Build(prompts.TaskTailorWithChanges, prompts.Inputs{
		ResumeJSON: string(originalJSON),
		JobText:    jobDescription,
	})
	if err != nil {
		return nil, err
	}

	raw, err := p.client.Complete(ctx, system, user, llm.Options{
		Tier:        llm.TierAdvanced,
		Temperature: 0.15,
		MaxTokens:   4000,
		Timeout:     tailorTimeout,
	})
	if err != nil {
		return nil, err
	}

	var doc json.RawMessage
	if err := sanitize.Object(raw, &doc); err != nil {
		return nil, err
	}

	result, _, err := schemas.TailoredResult(doc)
	if err != nil {
		return nil, err
	}
	result.Changes = tailoring.ProduceChanges(result.Changes)
	if result.Summary == "" {
		result.Summary = "AI improvements applied"
	}
	return result, nil
}

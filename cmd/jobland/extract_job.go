package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kariqs/jobland-api/internal/llm"
	"github.com/Kariqs/jobland-api/internal/pipeline"
)

var extractJobCmd = &cobra.Command{
	Use:   "extract-job",
	Short: "Extract structured job posting data from a URL",
	Long:  "Render a job posting page in a headless browser and extract its title, company, description, and required skills as JSON on stdout.",
	RunE:  runExtractJob,
}

var (
	extractURL     string
	extractAPIKey  string
	extractVerbose bool
)

func init() {
	extractJobCmd.Flags().StringVar(&extractURL, "url", "", "Job posting URL (required)")
	extractJobCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	extractJobCmd.Flags().BoolVar(&extractVerbose, "verbose", false, "Log pipeline stage details")
	_ = extractJobCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(extractJobCmd)
}

func runExtractJob(_ *cobra.Command, _ []string) error {
	apiKey := extractAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	posting, err := pipeline.New(client, extractVerbose).ExtractJob(ctx, extractURL)
	if err != nil {
		return fmt.Errorf("failed to extract job posting: %w", err)
	}

	out, err := json.MarshalIndent(posting, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

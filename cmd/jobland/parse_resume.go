package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kariqs/jobland-api/internal/extract"
	"github.com/Kariqs/jobland-api/internal/llm"
	"github.com/Kariqs/jobland-api/internal/pipeline"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume file into structured JSON",
	Long:  "Parse a PDF or DOCX resume into structured JSON on stdout, without touching the database.",
	RunE:  runParseResume,
}

var (
	parseInputFile string
	parseAPIKey    string
	parseVerbose   bool
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to the resume file (required)")
	parseResumeCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	parseResumeCmd.Flags().BoolVar(&parseVerbose, "verbose", false, "Log pipeline stage details")
	_ = parseResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	apiKey := parseAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	data, err := os.ReadFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var mediaType string
	switch strings.ToLower(filepath.Ext(parseInputFile)) {
	case ".pdf":
		mediaType = extract.MediaTypePDF
	case ".docx":
		mediaType = extract.MediaTypeDOCX
	default:
		return fmt.Errorf("unsupported file type %q (want .pdf or .docx)", filepath.Ext(parseInputFile))
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	content, err := pipeline.New(client, parseVerbose).ParseResume(ctx, data, mediaType)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	out, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// Package main provides the entry point for the jobland HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobland",
	Short: "jobland HTTP API Server",
	Long:  "jobland turns uploaded resumes and job posting pages into structured data, tailors resumes to postings, and proxies job search via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

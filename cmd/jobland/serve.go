package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kariqs/jobland-api/internal/config"
	"github.com/Kariqs/jobland-api/internal/server"
)

var (
	servePort    int
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume ingestion, tailoring, job extraction, and job search.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 3000, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveVerbose, "verbose", false, "Log pipeline stage details")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	appConfig, err := config.NewAppConfig()
	if err != nil {
		return err
	}

	srv, err := server.New(context.Background(), server.Config{
		Port:    servePort,
		App:     appConfig,
		Verbose: serveVerbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

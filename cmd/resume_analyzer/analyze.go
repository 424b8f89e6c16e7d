package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/deibuilders/resume-analyzer/internal/config"
	"github.com/deibuilders/resume-analyzer/internal/ingestion"
	"github.com/deibuilders/resume-analyzer/internal/observability"
	"github.com/deibuilders/resume-analyzer/internal/pipeline"
)

var (
	analyzeFile    string
	analyzeVerbose bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume file",
	Long:  `Decode a resume file (PDF, DOCX, HTML or plain text), extract a structured profile and print it with recommendations as JSON.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "Path to the resume file (required)")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print a human-readable summary instead of JSON")
	_ = analyzeCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(analyzeFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", analyzeFile, err)
	}

	text, err := ingestion.ExtractText(data, analyzeFile, "")
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	cfg := config.FromEnv()
	result := pipeline.Analyze(cmd.Context(), text, pipeline.Options{
		RemoteServiceURL: cfg.RemoteServiceURL,
		RemoteAPIKey:     cfg.RemoteAPIKey,
		RemoteModel:      cfg.RemoteModel,
		Timeout:          time.Duration(cfg.TimeoutMs) * time.Millisecond,
		MaxRetries:       cfg.MaxRetries,
	})

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintProfile(&result.Analysis)
		printer.PrintRecommendations(result.Recommendations)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

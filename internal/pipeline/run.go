// Package pipeline composes normalization, extraction and recommendation
// generation into the single analyze operation exposed to the HTTP layer
// and the CLI.
package pipeline

import (
	"context"
	"time"

	"github.com/deibuilders/resume-analyzer/internal/ingestion"
	"github.com/deibuilders/resume-analyzer/internal/parsing"
	"github.com/deibuilders/resume-analyzer/internal/recommend"
	"github.com/deibuilders/resume-analyzer/internal/types"
)

// Options carries the request-scoped configuration for one analysis.
type Options struct {
	RemoteServiceURL string
	RemoteAPIKey     string
	RemoteModel      string
	Timeout          time.Duration
	MaxRetries       int
}

// Analyze runs the full pipeline over decoded resume text. It never
// fails: adversarial or empty input produces an all-default profile and
// the local fallback recommendations.
func Analyze(ctx context.Context, rawText string, opts Options) *types.AnalysisResult {
	text := ingestion.NormalizeText(rawText)
	profile := parsing.BuildProfile(text)

	engine := recommend.New(recommend.Options{
		ServiceURL:  opts.RemoteServiceURL,
		APIKey:      opts.RemoteAPIKey,
		Model:       opts.RemoteModel,
		Timeout:     opts.Timeout,
		MaxAttempts: opts.MaxRetries,
	})
	recs := engine.Generate(ctx, text, profile.Skills, profile.Education, profile.YearsExperience)

	return &types.AnalysisResult{
		Analysis:        *profile,
		Recommendations: recs,
	}
}

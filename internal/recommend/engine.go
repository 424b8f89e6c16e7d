// Package recommend synthesizes job and program recommendations for an
// extracted resume profile, either through a remote scoring service with
// retry/backoff or through a deterministic local fallback.
package recommend

import (
	"context"
	"net/http"
	"time"

	"github.com/deibuilders/resume-analyzer/internal/types"
)

const (
	// DefaultTimeout bounds each remote attempt.
	DefaultTimeout = 10 * time.Second
	// DefaultMaxAttempts is the remote attempt budget.
	DefaultMaxAttempts = 2
	// backoffStep scales the linear backoff between attempts.
	backoffStep = 500 * time.Millisecond
)

// Options configures the engine. Remote mode is used only when both
// ServiceURL and APIKey are set; otherwise every call takes the local
// fallback path.
type Options struct {
	ServiceURL  string
	APIKey      string
	Model       string
	Timeout     time.Duration
	MaxAttempts int
}

// Engine produces recommendation lists. Safe for concurrent use; calls
// share no mutable state.
type Engine struct {
	opts   Options
	client *http.Client
	sleep  func(time.Duration)
}

// New creates an engine with defaults applied for unset options.
func New(opts Options) *Engine {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	return &Engine{
		opts:   opts,
		client: &http.Client{},
		sleep:  time.Sleep,
	}
}

// Generate returns recommendations for the given resume. The remote
// service wins when it produces a usable non-empty array within the
// attempt budget; in every other case the deterministic local fallback
// is returned. The result is never empty-by-error: exactly one terminal
// outcome is produced per invocation and no error is surfaced.
func (e *Engine) Generate(ctx context.Context, text string, skills, education []string, years int) []types.Recommendation {
	if e.opts.ServiceURL == "" || e.opts.APIKey == "" {
		return localFallback(skills, years)
	}
	if recs := e.generateRemote(ctx, text); len(recs) > 0 {
		return recs
	}
	return localFallback(skills, years)
}

package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/deibuilders/resume-analyzer/internal/types"
)

// maxPromptChars bounds how much resume text is embedded in the prompt.
const maxPromptChars = 10000

// scoringRequest is the request body for the remote scoring service.
type scoringRequest struct {
	Input scoringInput `json:"input"`
	Model string       `json:"model,omitempty"`
}

type scoringInput struct {
	Text string `json:"text"`
}

// generateRemote runs the attempt loop against the scoring service.
// Each attempt gets a fresh timeout context; failed attempts back off
// linearly (attempt x 500ms). A 4xx response aborts the loop without
// retrying; 5xx, timeouts and transport errors consume the attempt
// budget. Returns nil when no attempt yielded a usable array.
func (e *Engine) generateRemote(ctx context.Context, text string) []types.Recommendation {
	body, err := json.Marshal(scoringRequest{
		Input: scoringInput{Text: buildPrompt(text)},
		Model: e.opts.Model,
	})
	if err != nil {
		return nil
	}

	for attempt := 1; attempt <= e.opts.MaxAttempts; attempt++ {
		recs, retriable := e.attempt(ctx, body, attempt)
		if len(recs) > 0 {
			return recs
		}
		if !retriable {
			break
		}
		e.sleep(time.Duration(attempt) * backoffStep)
	}
	return nil
}

// attempt issues one POST to the scoring service. The second return
// value reports whether the attempt loop may continue.
func (e *Engine) attempt(ctx context.Context, body []byte, attempt int) ([]types.Recommendation, bool) {
	attemptCtx, cancel := context.WithTimeout(ctx, e.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, e.opts.ServiceURL, bytes.NewReader(body))
	if err != nil {
		log.Printf("scoring request error (attempt %d): %v", attempt, err)
		return nil, true
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.opts.APIKey)

	resp, err := e.client.Do(req)
	if err != nil {
		// Timeout or transport failure; both are retriable.
		log.Printf("scoring request failed (attempt %d): %v", attempt, err)
		return nil, true
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("scoring response read failed (attempt %d): %v", attempt, err)
		return nil, true
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("scoring service returned %d (attempt %d)", resp.StatusCode, attempt)
		// Client-side errors will not improve on retry. Rate limiting is
		// the exception: the next attempt runs after backoff.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, false
		}
		return nil, true
	}

	recs := parseRecommendations(extractCandidate(respBody))
	if len(recs) == 0 {
		log.Printf("scoring response could not be parsed into recommendations (attempt %d)", attempt)
	}
	return recs, true
}

// buildPrompt asks the service to respond with a bare JSON array of
// recommendation objects for the embedded resume snippet.
func buildPrompt(text string) string {
	snippet := text
	if len(snippet) > maxPromptChars {
		snippet = snippet[:maxPromptChars]
	}
	return fmt.Sprintf("You are an assistant that recommends jobs or programs given a resume.\n\n"+
		"Input resume (delimited by triple backticks):\n\n```\n%s\n```\n\n"+
		"Return a JSON array of objects. Each object must have: title (string), company (string or empty), "+
		"link (string URL or empty), score (number between 0 and 1), reason (short string). "+
		"Return ONLY the JSON array and nothing else.", snippet)
}

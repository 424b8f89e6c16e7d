package recommend

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/deibuilders/resume-analyzer/internal/types"
)

// maxRemoteRecommendations caps the list accepted from the service.
const maxRemoteRecommendations = 8

var trailingArrayRe = regexp.MustCompile(`(?s)\[.*\]\s*$`)

// responseShape covers the known response envelopes of the scoring
// service; whichever field carries text wins.
type responseShape struct {
	Outputs []struct {
		Content string `json:"content"`
		Text    string `json:"text"`
	} `json:"outputs"`
	Text       string `json:"text"`
	OutputText string `json:"output_text"`
}

// extractCandidate locates the candidate JSON payload within a scoring
// response body, falling back to the raw body when no known shape field
// is populated.
func extractCandidate(body []byte) string {
	var shape responseShape
	if err := json.Unmarshal(body, &shape); err == nil {
		if len(shape.Outputs) > 0 {
			if shape.Outputs[0].Content != "" {
				return shape.Outputs[0].Content
			}
			if shape.Outputs[0].Text != "" {
				return shape.Outputs[0].Text
			}
		}
		if shape.Text != "" {
			return shape.Text
		}
		if shape.OutputText != "" {
			return shape.OutputText
		}
	}

	// The body may itself be a JSON string payload.
	var asString string
	if err := json.Unmarshal(body, &asString); err == nil {
		return asString
	}
	return string(body)
}

// parseRecommendations parses a candidate string into a validated
// recommendation list. Markdown fences are stripped first; when a direct
// array parse fails, a trailing [...] substring is tried. Elements are
// coerced into shape with missing fields defaulting to ""/0; non-object
// elements are dropped and the list is capped at 8.
func parseRecommendations(candidate string) []types.Recommendation {
	candidate = stripCodeFences(candidate)
	if candidate == "" {
		return nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &elements); err != nil {
		sub := trailingArrayRe.FindString(candidate)
		if sub == "" {
			return nil
		}
		if err := json.Unmarshal([]byte(sub), &elements); err != nil {
			return nil
		}
	}

	out := make([]types.Recommendation, 0, len(elements))
	for _, raw := range elements {
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
			continue
		}
		out = append(out, types.Recommendation{
			Title:   stringField(obj, "title", "name", "role"),
			Company: stringField(obj, "company", "org"),
			Link:    stringField(obj, "link", "url"),
			Score:   scoreField(obj),
			Reason:  stringField(obj, "reason", "explanation"),
		})
		if len(out) == maxRemoteRecommendations {
			break
		}
	}
	return out
}

var codeFenceRe = regexp.MustCompile("```\\w*\\n?")

// stripCodeFences removes markdown code fence markers wherever they
// appear. Scoring services often wrap JSON in ```json ... ``` blocks,
// sometimes after leading prose, even when instructed not to.
func stripCodeFences(text string) string {
	return strings.TrimSpace(codeFenceRe.ReplaceAllString(text, ""))
}

// stringField returns the first present string value among keys, trimmed.
func stringField(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := obj[key].(string); ok && v != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// scoreField reads the score, accepting a numeric "match" value (number
// or numeric string) as an alternative key.
func scoreField(obj map[string]any) float64 {
	if v, ok := obj["score"].(float64); ok {
		return v
	}
	switch v := obj["match"].(type) {
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}

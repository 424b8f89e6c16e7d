package types

// Recommendation is a single job or program suggestion, produced either
// by the remote scoring service or by the local fallback generator.
type Recommendation struct {
	Title   string  `json:"title"`
	Company string  `json:"company"`
	Link    string  `json:"link"`
	Score   float64 `json:"score"`
	Reason  string  `json:"reason"`
}

// AnalysisResult is the full response for one analyzed resume: the
// extracted profile plus the recommendation list.
type AnalysisResult struct {
	Analysis        Profile          `json:"analysis"`
	Recommendations []Recommendation `json:"recommendations"`
}

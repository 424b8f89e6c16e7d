package recommend

import "github.com/deibuilders/resume-analyzer/internal/types"

// maxLocalRecommendations caps the fallback list.
const maxLocalRecommendations = 6

// localFallback deterministically synthesizes recommendations from the
// profile alone: an early-career entry for candidates with at most one
// year of experience, one entry per leading skill, and a generic
// training suggestion when fewer than two entries were produced.
func localFallback(skills []string, years int) []types.Recommendation {
	out := []types.Recommendation{}

	if years <= 1 {
		out = append(out, types.Recommendation{
			Title:   "Junior Developer",
			Company: "Various",
			Link:    "https://example.com",
			Score:   0.92,
			Reason:  "Early-career fit.",
		})
	}
	if len(skills) > 0 {
		out = append(out, types.Recommendation{
			Title:   skills[0] + " Developer",
			Company: "Tech Co",
			Link:    "https://example.com",
			Score:   0.78,
			Reason:  "Skill match: " + skills[0],
		})
		if len(skills) > 1 {
			out = append(out, types.Recommendation{
				Title:   skills[1] + " Engineer",
				Company: "Startup X",
				Link:    "https://example.com",
				Score:   0.72,
				Reason:  "Skill match: " + skills[1],
			})
		}
	}
	if len(out) < 2 {
		out = append(out, types.Recommendation{
			Title:   "Community Programs & Training",
			Company: "Local Partners",
			Link:    "https://example.com",
			Score:   0.5,
			Reason:  "Explore training and upskilling opportunities.",
		})
	}

	if len(out) > maxLocalRecommendations {
		out = out[:maxLocalRecommendations]
	}
	return out
}

package parsing

import (
	"strings"

	"github.com/deibuilders/resume-analyzer/internal/types"
)

// maxSummaryLines bounds the free-text summary carried on the profile.
const maxSummaryLines = 3

// BuildProfile runs the full extraction pipeline over normalized resume
// text and assembles the result into a single profile. The extractors
// are pure and independent; every field has a terminal fallback, so any
// string input, including empty, yields a fully-populated profile.
func BuildProfile(text string) *types.Profile {
	sections := SplitSections(text)

	return &types.Profile{
		Contact:         ExtractContact(text),
		Summary:         buildSummary(sections[SectionSummary]),
		Skills:          ExtractSkills(text, sections),
		Education:       ExtractEducation(text, sections),
		YearsExperience: EstimateYears(text),
		Experience:      ParseExperience(sections[SectionExperience]),
	}
}

// buildSummary joins the first few lines of the summary section.
func buildSummary(section string) string {
	if section == "" {
		return ""
	}
	lines := strings.Split(section, "\n")
	if len(lines) > maxSummaryLines {
		lines = lines[:maxSummaryLines]
	}
	return strings.Join(lines, " ")
}

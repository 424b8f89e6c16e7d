package parsing

import (
	"regexp"
	"strings"

	"github.com/deibuilders/resume-analyzer/internal/types"
)

var (
	blockSplitRe = regexp.MustCompile(`\n\s*\n`)
	titleDashRe  = regexp.MustCompile(`^(.*?)\s+[-–—]\s+(.*)$`)
	atWordRe     = regexp.MustCompile(`(?i)\bat\b`)
	companyHintRe = regexp.MustCompile(`(?i)\b(inc|llc|ltd|corp|company|co\.|technologies|solutions)\b`)
	yearRe        = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	monthRangeRe  = regexp.MustCompile(`(?s)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec|January|February|March|April|June|July|August|September|October|November|December)\b.{0,40}?\b(?:Present|present|\d{4})`)
)

// ParseExperience splits the experience section into blank-line-delimited
// blocks and extracts title/company/date per block. The first non-blank
// line drives the title/company heuristics, tried in order: a single
// dash-separated split, an " at " split, a company-indicator token, and
// finally title-first with the second line as company unless it carries
// a year. The raw block text is kept regardless.
func ParseExperience(sectionText string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	if sectionText == "" {
		return entries
	}

	for _, block := range blockSplitRe.Split(sectionText, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		entry := types.ExperienceEntry{Raw: block}
		lines := nonBlankLines(block)
		first := ""
		if len(lines) > 0 {
			first = lines[0]
		}

		switch {
		case titleDashRe.MatchString(first):
			m := titleDashRe.FindStringSubmatch(first)
			entry.Title = strings.TrimSpace(m[1])
			entry.Company = strings.TrimSpace(m[2])
		case atWordRe.MatchString(first):
			// Company is the segment between the first and second "at".
			parts := atWordRe.Split(first, -1)
			entry.Title = strings.TrimSpace(parts[0])
			if len(parts) > 1 {
				entry.Company = strings.TrimSpace(parts[1])
			}
		case companyHintRe.MatchString(first):
			entry.Company = first
			if len(lines) > 1 {
				entry.Title = lines[1]
			}
		default:
			entry.Title = first
			if len(lines) > 1 && !yearRe.MatchString(lines[1]) {
				entry.Company = lines[1]
			}
		}

		entry.Date = extractDate(block)
		entries = append(entries, entry)
	}
	return entries
}

// extractDate finds a date span in a block. With two or more 4-digit
// years present it formats "<first> - <last>" using document order;
// otherwise a month-name-led range ending in a year or "Present" is used
// literally.
func extractDate(block string) string {
	years := yearRe.FindAllString(block, -1)
	if len(years) >= 2 {
		return years[0] + " - " + years[len(years)-1]
	}
	return monthRangeRe.FindString(block)
}

package parsing

import (
	"regexp"
	"strings"
)

var degreeRe = regexp.MustCompile(`(?i)\b(Bachelor|B\.Sc|BA|Master|M\.Sc|MBA|PhD|Doctor|Associate)\b`)

const (
	maxEducationSectionLines = 8
	maxEducationScanLines    = 6
)

// ExtractEducation returns education lines. An explicit education section
// is split into its first 8 non-blank lines; without one, the full text
// is scanned for degree-keyword lines, capped at 6.
func ExtractEducation(text string, sections Sections) []string {
	if eduSection := sections[SectionEducation]; eduSection != "" {
		lines := nonBlankLines(eduSection)
		if len(lines) > maxEducationSectionLines {
			lines = lines[:maxEducationSectionLines]
		}
		return lines
	}

	out := []string{}
	for _, line := range nonBlankLines(text) {
		if degreeRe.MatchString(line) {
			out = append(out, strings.TrimSpace(line))
			if len(out) == maxEducationScanLines {
				break
			}
		}
	}
	return out
}

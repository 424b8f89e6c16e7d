// Package parsing derives a structured profile from normalized resume text
// using heuristic section splitting and pattern-based field extraction.
package parsing

import (
	"regexp"
	"strings"
)

// Section names produced by SplitSections.
const (
	SectionHeader     = "header"
	SectionSummary    = "summary"
	SectionSkills     = "skills"
	SectionEducation  = "education"
	SectionExperience = "experience"
)

// Sections maps a section name to the text belonging to it. Blank-line
// structure within a section is preserved so the experience parser can
// split blocks later.
type Sections map[string]string

// headingRules pairs a section name with the keyword pattern that opens
// it. Order matters: a line matching several families resolves to the
// first one here.
var headingRules = []struct {
	section string
	pattern *regexp.Regexp
}{
	{SectionExperience, regexp.MustCompile(`(?i)\b(experience|work experience|professional experience|employment history|work history|relevant experience|professional background)\b`)},
	{SectionSkills, regexp.MustCompile(`(?i)\b(skills|technical skills|skills & technologies|skills and technologies|technical competencies)\b`)},
	{SectionEducation, regexp.MustCompile(`(?i)\b(education|academic background|education & training|academic qualifications)\b`)},
	{SectionSummary, regexp.MustCompile(`(?i)\b(summary|professional summary|profile|objective)\b`)},
}

// SplitSections partitions resume text into labeled sections by scanning
// for heading keywords. Heading lines themselves are discarded; every
// other line, blank lines included, is appended verbatim to the current
// section. Lines before the first heading land in "header".
func SplitSections(text string) Sections {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")

	buffers := map[string][]string{}
	current := SectionHeader
	buffers[current] = []string{}

	for _, line := range lines {
		lower := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(line), ":"))

		matched := false
		for _, rule := range headingRules {
			if rule.pattern.MatchString(lower) {
				current = rule.section
				if _, ok := buffers[current]; !ok {
					buffers[current] = []string{}
				}
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		buffers[current] = append(buffers[current], line)
	}

	out := make(Sections, len(buffers))
	for name, buf := range buffers {
		out[name] = strings.TrimSpace(strings.Join(buf, "\n"))
	}
	return out
}

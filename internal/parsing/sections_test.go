package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
Austin, TX
jane.doe@example.com

Professional Summary
Engineer with a focus on data tooling.
Curious and collaborative.

Technical Skills
Python, SQL, Docker

Work Experience
Data Engineer - Acme Inc
2019 - 2022

Analyst at Beta Co
2017

Education
B.Sc Computer Science, State University`

func TestSplitSections(t *testing.T) {
	sections := SplitSections(sampleResume)

	assert.Contains(t, sections[SectionHeader], "Jane Doe")
	assert.Contains(t, sections[SectionHeader], "Austin, TX")
	assert.Contains(t, sections[SectionSummary], "data tooling")
	assert.Equal(t, "Python, SQL, Docker", sections[SectionSkills])
	assert.Contains(t, sections[SectionExperience], "Data Engineer - Acme Inc")
	assert.Contains(t, sections[SectionEducation], "B.Sc Computer Science")
}

func TestSplitSections_HeadingLinesDiscarded(t *testing.T) {
	sections := SplitSections(sampleResume)
	for name, content := range sections {
		assert.NotContains(t, content, "Professional Summary", "section %s", name)
		assert.NotContains(t, content, "Technical Skills", "section %s", name)
		assert.NotContains(t, content, "Work Experience", "section %s", name)
	}
}

func TestSplitSections_KnownKeysOnly(t *testing.T) {
	known := map[string]bool{
		SectionHeader:     true,
		SectionSummary:    true,
		SectionSkills:     true,
		SectionEducation:  true,
		SectionExperience: true,
	}
	for name := range SplitSections(sampleResume) {
		assert.True(t, known[name], "unexpected section %q", name)
	}
}

// Concatenating section contents reproduces the original lines minus the
// removed headings.
func TestSplitSections_Reconstruction(t *testing.T) {
	sections := SplitSections(sampleResume)

	var kept []string
	for _, content := range sections {
		for _, line := range strings.Split(content, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				kept = append(kept, line)
			}
		}
	}

	headings := map[string]bool{
		"Professional Summary": true,
		"Technical Skills":     true,
		"Work Experience":      true,
		"Education":            true,
	}
	var original []string
	for _, line := range strings.Split(sampleResume, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !headings[line] {
			original = append(original, line)
		}
	}

	assert.ElementsMatch(t, original, kept)
}

func TestSplitSections_BlankLinesPreservedWithinSection(t *testing.T) {
	sections := SplitSections(sampleResume)
	blocks := strings.Split(sections[SectionExperience], "\n\n")
	require.Len(t, blocks, 2)
}

func TestSplitSections_TieBreakOrder(t *testing.T) {
	// "Skills and Experience" matches both families; experience is
	// checked first and wins.
	text := "Skills and Experience\nDocker"
	sections := SplitSections(text)
	assert.Equal(t, "Docker", sections[SectionExperience])
	assert.Empty(t, sections[SectionSkills])
}

func TestSplitSections_TrailingColonAndCase(t *testing.T) {
	sections := SplitSections("EDUCATION:\nMBA, Business School")
	assert.Equal(t, "MBA, Business School", sections[SectionEducation])
}

func TestSplitSections_EmptyInput(t *testing.T) {
	sections := SplitSections("")
	assert.Equal(t, "", sections[SectionHeader])
}

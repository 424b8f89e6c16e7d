package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills_FromSkillsSection(t *testing.T) {
	sections := Sections{
		SectionSkills: "Python, SQL; Docker • Kubernetes\nFigma",
	}

	skills := ExtractSkills("irrelevant body text", sections)
	assert.Equal(t, []string{"Docker", "Figma", "Kubernetes", "Python", "Sql"}, skills)
}

func TestExtractSkills_SectionTokensRequireWordBoundary(t *testing.T) {
	sections := Sections{
		SectionSkills: "micropythonics",
	}

	// "python" appears only inside a larger word, so the section pass
	// finds nothing and the whole-text scan never runs on section-only
	// input either.
	skills := ExtractSkills("", sections)
	assert.Empty(t, skills)
}

func TestExtractSkills_FallbackWholeTextScan(t *testing.T) {
	text := "Built services in python and deployed with docker on AWS."

	skills := ExtractSkills(text, Sections{})
	assert.Equal(t, []string{"Aws", "Docker", "Python"}, skills)
}

func TestExtractSkills_GenericTokenCapture(t *testing.T) {
	// No vocabulary keywords anywhere; comma-terminated tokens are kept
	// verbatim.
	text := "Fortran, COBOL; Verilog, and more prose without keywords."

	skills := ExtractSkills(text, Sections{})
	assert.Contains(t, skills, "Fortran")
	assert.Contains(t, skills, "COBOL")
	assert.Contains(t, skills, "Verilog")
}

func TestExtractSkills_DeduplicatedAndSorted(t *testing.T) {
	sections := Sections{
		SectionSkills: "react, React; REACT\nangular",
	}

	skills := ExtractSkills("", sections)
	assert.Equal(t, []string{"Angular", "React"}, skills)
}

func TestExtractSkills_Idempotent(t *testing.T) {
	text := "Python, SQL, Docker and some prose"
	sections := SplitSections("Skills\n" + text)

	first := ExtractSkills(text, sections)
	second := ExtractSkills(text, sections)
	assert.Equal(t, first, second)
}

func TestExtractSkills_EmptyInput(t *testing.T) {
	assert.Empty(t, ExtractSkills("", Sections{}))
}

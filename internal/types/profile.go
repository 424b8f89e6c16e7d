// Package types provides type definitions for structured data shared across the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContactInfo holds contact details extracted from resume text.
// Fields are empty strings when no match was found; at most one value
// per field (first match wins). LinkedIn and GitHub URLs always carry
// a scheme.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ExperienceEntry represents one blank-line-delimited block within the
// experience section, normally a single job entry. Raw always holds the
// full block text; the structured fields are best-effort.
type ExperienceEntry struct {
	Raw     string `json:"raw"`
	Title   string `json:"title,omitempty"`
	Company string `json:"company,omitempty"`
	Date    string `json:"date,omitempty"`
}

// Profile is the structured result of the extraction pipeline.
// Built once per upload, immutable thereafter; the sole input to the
// recommendation engine.
type Profile struct {
	Contact         ContactInfo       `json:"contact"`
	Summary         string            `json:"summary"`
	Skills          []string          `json:"skills"`
	Education       []string          `json:"education"`
	YearsExperience int               `json:"yearsExperience"`
	Experience      []ExperienceEntry `json:"experience"`
}

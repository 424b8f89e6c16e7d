package parsing

import (
	"regexp"
	"strings"

	"github.com/deibuilders/resume-analyzer/internal/types"
)

var (
	emailRe    = regexp.MustCompile(`(?i)[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-z]{2,}`)
	phoneRe    = regexp.MustCompile(`(\+?\d{1,3}[\s\-.(]*)?(\(?\d{3}\)?[\s\-.)]*)?\d{3}[\s\-.)]*\d{4}`)
	linkedinRe = regexp.MustCompile(`(?i)(https?://)?(www\.)?linkedin\.com/[^\s,]+`)
	githubRe   = regexp.MustCompile(`(?i)(https?://)?(www\.)?github\.com/[^\s,]+`)
	locationRe = regexp.MustCompile(`[A-Za-z]+,\s*[A-Za-z]{2,}`)
)

// maxLocationLines bounds the location scan to the top of the document,
// where contact blocks live.
const maxLocationLines = 8

// ExtractContact pulls contact fields out of the full resume text with
// first-match regex extraction. Fields independently default to empty
// when nothing matches; there is no cross-field validation.
func ExtractContact(text string) types.ContactInfo {
	var contact types.ContactInfo
	if text == "" {
		return contact
	}

	contact.Email = emailRe.FindString(text)
	contact.Phone = strings.TrimSpace(phoneRe.FindString(text))
	contact.LinkedIn = absolutizeURL(linkedinRe.FindString(text))
	contact.GitHub = absolutizeURL(githubRe.FindString(text))

	lines := nonBlankLines(text)
	if len(lines) > maxLocationLines {
		lines = lines[:maxLocationLines]
	}
	for _, l := range lines {
		if locationRe.MatchString(l) && !strings.Contains(l, "@") {
			contact.Location = l
			break
		}
	}

	return contact
}

// absolutizeURL prefixes https:// when a matched profile URL lacks a scheme.
func absolutizeURL(match string) string {
	if match == "" {
		return ""
	}
	if strings.HasPrefix(match, "http") {
		return match
	}
	return "https://" + match
}

func nonBlankLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

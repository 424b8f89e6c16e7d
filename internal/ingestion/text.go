// Package ingestion turns uploaded resume files into normalized text.
package ingestion

import "strings"

// NormalizeText canonicalizes raw extracted text into line-oriented form:
// carriage returns are stripped and line breaks normalized to \n.
// Per-line whitespace is left alone; downstream extractors trim lines as
// they consume them. Safe on empty input.
func NormalizeText(content string) string {
	if content == "" {
		return ""
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return content
}

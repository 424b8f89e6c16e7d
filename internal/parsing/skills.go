package parsing

import (
	"regexp"
	"sort"
	"strings"
)

// skillVocabulary is the fixed set of recognized skill keywords:
// languages, frameworks, cloud platforms and common tooling. Matches are
// reported in canonical Title-Case form.
var skillVocabulary = []string{
	"javascript", "typescript", "python", "react", "angular", "vue",
	"node", "express", "java", "c#", "c++", "sql", "postgres", "mysql",
	"mongodb", "aws", "azure", "gcp", "docker", "kubernetes", "html",
	"css", "sass", "git", "rest", "graphql", "tensorflow", "pytorch",
	"nlp", "machine learning", "data analysis", "excel", "power bi",
	"figma", "photoshop",
}

// vocabularyPatterns holds a word-boundary matcher per vocabulary entry,
// compiled once at init.
var vocabularyPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(skillVocabulary))
	escaper := strings.NewReplacer("#", `\#`, ".", `\.`, "+", `\+`, "-", `\-`)
	for _, key := range skillVocabulary {
		patterns[key] = regexp.MustCompile(`(?i)\b` + escaper.Replace(key) + `\b`)
	}
	return patterns
}()

var (
	skillTokenSplitRe = regexp.MustCompile("[\n,;•·–—]")
	genericTokenRe    = regexp.MustCompile(`[A-Za-z+#\-.]{2,}(?:\s+[A-Za-z+#\-.]{2,})*[,;]`)
)

const (
	maxGenericTokens   = 40
	maxGenericTokenLen = 40
)

// ExtractSkills derives a deduplicated, sorted skill list. Three steps
// are tried in order, stopping at the first that yields anything:
// tokenizing an explicit skills section against the vocabulary, scanning
// the whole text for vocabulary keywords, and finally capturing generic
// comma/semicolon-terminated tokens verbatim.
func ExtractSkills(text string, sections Sections) []string {
	found := []string{}

	if skillsSection := sections[SectionSkills]; skillsSection != "" {
		for _, token := range skillTokenSplitRe.Split(skillsSection, -1) {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			for _, key := range skillVocabulary {
				if vocabularyPatterns[key].MatchString(token) {
					found = append(found, canonicalSkill(key))
				}
			}
		}
	}

	if len(found) == 0 && text != "" {
		hay := strings.ToLower(text)
		for _, key := range skillVocabulary {
			if strings.Contains(hay, key) {
				found = append(found, canonicalSkill(key))
			}
		}
	}

	if len(found) == 0 && text != "" {
		matches := genericTokenRe.FindAllString(text, -1)
		if len(matches) > maxGenericTokens {
			matches = matches[:maxGenericTokens]
		}
		for _, m := range matches {
			token := strings.TrimSpace(strings.TrimRight(m, ",;"))
			if token != "" && len(token) < maxGenericTokenLen {
				found = append(found, token)
			}
		}
	}

	return dedupSorted(found)
}

// canonicalSkill renders a vocabulary keyword in Title-Case, capitalizing
// the first rune of each whitespace-separated word.
func canonicalSkill(key string) string {
	words := strings.Fields(key)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// dedupSorted removes case-insensitive duplicates (first occurrence wins)
// and sorts the result lexicographically.
func dedupSorted(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		lower := strings.ToLower(s)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

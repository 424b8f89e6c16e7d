package parsing

import (
	"regexp"
	"strconv"
)

var explicitYearsRe = regexp.MustCompile(`(?i)(\d+)\s*(?:years|yrs)`)

// maxYearSpan caps the inferred span from first/last year tokens.
const maxYearSpan = 40

// EstimateYears infers years of experience from resume text. An explicit
// "<N> years" mention is trusted as-is. Otherwise the span between the
// first and last 4-digit years in document order is used, clamped to
// [0, 40]; a last-before-first ordering falls through to 0 rather than
// producing a negative span.
func EstimateYears(text string) int {
	if m := explicitYearsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}

	years := yearRe.FindAllString(text, -1)
	if len(years) >= 2 {
		first, errFirst := strconv.Atoi(years[0])
		last, errLast := strconv.Atoi(years[len(years)-1])
		if errFirst == nil && errLast == nil && last >= first {
			return min(maxYearSpan, last-first)
		}
	}
	return 0
}

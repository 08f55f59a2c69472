package textstat

import (
	"regexp"
	"strings"
)

// abbreviations lists tokens whose periods must not be read as sentence
// terminators. Matching is case-insensitive and anchored at a word boundary.
// This is a fixed heuristic, not grammar: an unlisted abbreviation at the end
// of a sentence, or a decimal number, will still miscount.
var abbreviations = []string{
	// titles
	"Mr.", "Mrs.", "Ms.", "Dr.", "Prof.", "Sr.", "Jr.",
	// latin and common shorthand
	"vs.", "etc.", "i.e.", "e.g.", "ca.", "cf.",
	// corporate suffixes
	"Inc.", "Ltd.", "Corp.", "Co.",
	// addresses
	"Ave.", "St.", "Rd.", "Blvd.",
	// academic and national
	"Ph.D.", "M.D.", "B.A.", "M.A.", "U.S.", "U.K.",
	// time
	"a.m.", "p.m.",
	// file extensions
	".js", ".css", ".md", ".txt",
}

// Placeholders stand in for periods that are not sentence boundaries. Both
// are distinct from each other and from the real terminators `.`, `!`, `?`.
const (
	abbrevDot    = "•" // •
	ellipsisMark = "…" // …
)

var (
	abbrevPatterns    = buildAbbrevPatterns()
	ellipsisPattern   = regexp.MustCompile(`\.{3}`)
	terminatorPattern = regexp.MustCompile(`[.!?]+`)
)

func buildAbbrevPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(abbreviations))
	for _, abbr := range abbreviations {
		quoted := regexp.QuoteMeta(abbr)
		expr := `(?i)\b` + quoted
		if strings.HasPrefix(abbr, ".") {
			// extension-like tokens anchor the boundary after the name
			expr = `(?i)` + quoted + `\b`
		}
		patterns = append(patterns, regexp.MustCompile(expr))
	}
	return patterns
}

// CountSentences counts sentence boundaries in text. Abbreviation and
// ellipsis periods are first swapped for placeholder runes so they cannot
// terminate a sentence; the text is then split on runs of `.`, `!`, `?`
// (a mixed run like `?!` is one boundary) and the non-empty segments are
// counted. A trailing clause with no terminator still counts as a segment.
func CountSentences(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	for _, pattern := range abbrevPatterns {
		text = pattern.ReplaceAllStringFunc(text, func(match string) string {
			return strings.ReplaceAll(match, ".", abbrevDot)
		})
	}
	text = ellipsisPattern.ReplaceAllString(text, ellipsisMark)

	count := 0
	for _, segment := range terminatorPattern.Split(text, -1) {
		if strings.TrimSpace(segment) != "" {
			count++
		}
	}
	return count
}

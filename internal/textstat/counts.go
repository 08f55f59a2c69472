package textstat

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// CountWords counts whitespace-delimited tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountChars counts characters (runes, not bytes). With stripMarkdown set,
// the text is first run through StripMarkdown, whitespace runs are collapsed
// to single spaces, and the trimmed remainder is measured — so neither markup
// punctuation nor the blank lines it leaves behind inflate the count.
func CountChars(text string, stripMarkdown bool) int {
	if !stripMarkdown {
		return utf8.RuneCountInString(text)
	}
	stripped := StripMarkdown(text)
	stripped = whitespaceRun.ReplaceAllString(stripped, " ")
	return utf8.RuneCountInString(strings.TrimSpace(stripped))
}

// CountLines counts newline-delimited lines, treating a missing trailing
// newline as ending the final line.
func CountLines(text string) int {
	if text == "" {
		return 0
	}
	lines := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		lines++
	}
	return lines
}

package textstat

import (
	"regexp"
	"strings"
)

var (
	fencedCodePattern = regexp.MustCompile("(?s)```.*?```")
	inlineCodePattern = regexp.MustCompile("`[^`]*`")

	calloutHeaderPattern = regexp.MustCompile(`^>\s*\[!\w+\]`)
	bareQuotePattern     = regexp.MustCompile(`^>\s*$`)
)

// StripBlocks removes fenced code blocks and inline code spans, and, when
// ignoreCallouts is set, callout blocks. Code is removed before callouts so
// callout-looking text inside a code block is never mistaken for a real one.
//
// An unterminated fence has no closing match and is left untouched.
func StripBlocks(text string, ignoreCallouts bool) string {
	text = fencedCodePattern.ReplaceAllString(text, "")
	text = stripInlineCode(text)
	if ignoreCallouts {
		text = stripCallouts(text)
	}
	return text
}

// stripInlineCode removes single-backtick code spans. Any triple backtick
// still present after the fenced pass belongs to an unterminated fence and
// must stay literal, so it is shielded from the span match and restored
// afterwards.
func stripInlineCode(text string) string {
	if !strings.Contains(text, "```") {
		return inlineCodePattern.ReplaceAllString(text, "")
	}
	const fenceGuard = "\x00"
	guarded := strings.ReplaceAll(text, "```", fenceGuard)
	guarded = inlineCodePattern.ReplaceAllString(guarded, "")
	return strings.ReplaceAll(guarded, fenceGuard, "```")
}

// stripCallouts drops every callout: a `> [!type]` header line plus all
// immediately following block-quote lines, ending at the first non-quote
// line or end of input. Bare `>` lines left behind are dropped as well so
// stray quote markers do not leak into the counts.
func stripCallouts(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for i := 0; i < len(lines); {
		if calloutHeaderPattern.MatchString(lines[i]) {
			i++
			for i < len(lines) && strings.HasPrefix(lines[i], ">") {
				i++
			}
			continue
		}
		kept = append(kept, lines[i])
		i++
	}

	out := make([]string, 0, len(kept))
	for _, line := range kept {
		if bareQuotePattern.MatchString(line) {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

package textstat

import "strings"

// Settings holds the two flags that change how text is analyzed. Display
// preferences live with the host; the analyzer never sees them.
type Settings struct {
	// IgnoreCallouts excises `> [!type]` callout blocks during cleaning.
	IgnoreCallouts bool
	// StripMarkdownForCharCount counts characters against Markdown-stripped
	// text instead of the cleaned-but-still-marked-up text.
	StripMarkdownForCharCount bool
}

// Result is one analysis of one document.
type Result struct {
	Sentences int
	Words     int
	Chars     int
}

// Analyze cleans raw document text — frontmatter first, then code blocks,
// inline code, and optionally callouts — and computes sentence, word, and
// character counts from the cleaned result. Deterministic: identical inputs
// always produce identical results.
func Analyze(raw string, settings Settings) Result {
	if strings.TrimSpace(raw) == "" {
		return Result{}
	}

	cleaned := StripBlocks(StripFrontmatter(raw), settings.IgnoreCallouts)
	if strings.TrimSpace(cleaned) == "" {
		return Result{}
	}

	return Result{
		Sentences: CountSentences(cleaned),
		Words:     CountWords(cleaned),
		Chars:     CountChars(cleaned, settings.StripMarkdownForCharCount),
	}
}

package textstat

import "regexp"

// markdownRewrite pairs a syntax pattern with its replacement. Rewrites run
// in declaration order: images and links resolve before emphasis so link
// punctuation cannot be re-read as emphasis, and emphasis resolves before
// the line-structural markers.
type markdownRewrite struct {
	pattern *regexp.Regexp
	repl    string
}

var markdownRewrites = []markdownRewrite{
	{regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`), ""},            // image, alt text dropped
	{regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`), "$1"},       // standard link keeps label
	{regexp.MustCompile(`\[\[[^\[\]|]*\|([^\[\]]*)\]\]`), "$1"}, // piped wiki link keeps label
	{regexp.MustCompile(`\[\[([^\[\]]+)\]\]`), "$1"},            // bare wiki link keeps target
	{regexp.MustCompile(`\*\*(.*?)\*\*`), "$1"},
	{regexp.MustCompile(`__(.*?)__`), "$1"},
	{regexp.MustCompile(`\*(.*?)\*`), "$1"},
	{regexp.MustCompile(`_(.*?)_`), "$1"},
	{regexp.MustCompile(`~~(.*?)~~`), "$1"},
	{regexp.MustCompile(`==(.*?)==`), "$1"},
	{regexp.MustCompile(`(?m)^#{1,6}\s+`), ""},
	{regexp.MustCompile(`(?m)^(?:>\s*)+`), ""}, // nested quote markers stripped together
	{regexp.MustCompile(`(?m)^\s*[-*+]\s+`), ""},
	{regexp.MustCompile(`(?m)^\s*\d+\.\s+`), ""},
	{regexp.MustCompile(`(?m)^\s*[-*_]{3,}\s*$`), ""},
	{regexp.MustCompile(`<[^>]+>`), ""},
}

// StripMarkdown removes inline and structural Markdown syntax while keeping
// the text it decorates. The output is not meant to read as prose; it only
// has to stop markup punctuation from being counted as content.
func StripMarkdown(text string) string {
	for _, rw := range markdownRewrites {
		text = rw.pattern.ReplaceAllString(text, rw.repl)
	}
	return text
}

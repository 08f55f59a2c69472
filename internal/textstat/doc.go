// Package textstat computes sentence, word, and character statistics for
// Markdown-flavored note text.
//
// The package is an ordered pipeline of pure text-to-text stages followed by
// counters. Cleaning first removes structural noise — YAML frontmatter,
// fenced code blocks, inline code spans, and optionally callout blocks — and
// the counters work on the cleaned result. Character counting can
// additionally strip inline Markdown syntax so formatting punctuation is not
// counted as content.
//
// Every function is a total function of its inputs: no errors, no I/O, no
// shared state. Malformed structure (an unclosed frontmatter block, an
// unterminated code fence) is treated as literal text rather than failing.
// Callers that issue overlapping analyses are responsible for ordering the
// results; the functions themselves are safe for concurrent use.
package textstat

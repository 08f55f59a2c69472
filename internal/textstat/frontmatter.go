package textstat

import "strings"

const frontmatterDelim = "---"

// StripFrontmatter removes a leading YAML frontmatter block: an opening
// `---` at the very start of the text, everything up to the next line whose
// trimmed content is exactly `---`, and that closing line itself.
//
// Text that does not open with the delimiter is returned unchanged, as is
// text whose opening delimiter is never closed — an unterminated block is
// treated as literal content, never partially stripped.
func StripFrontmatter(text string) string {
	if !strings.HasPrefix(text, frontmatterDelim) {
		return text
	}

	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontmatterDelim {
			return strings.Join(lines[i+1:], "\n")
		}
	}
	return text
}

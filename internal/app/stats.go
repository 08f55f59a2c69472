package app

import (
	"fmt"
	"strings"
)

// statsSummary formats the stats bar content, e.g. "S:3 W:42 C:256 L:12".
// The word segment honors the ShowWordCount setting; an empty or
// whitespace-only document yields an empty summary so the bar stays quiet.
func (m *Model) statsSummary() string {
	if strings.TrimSpace(m.currentText()) == "" {
		return ""
	}

	segments := make([]string, 0, 4)
	segments = append(segments, fmt.Sprintf("S:%d", m.stats.Sentences))
	if m.settings.ShowWordCount {
		segments = append(segments, fmt.Sprintf("W:%d", m.stats.Words))
	}
	segments = append(segments, fmt.Sprintf("C:%d", m.stats.Chars))
	segments = append(segments, fmt.Sprintf("L:%d", m.lines))
	return strings.Join(segments, " ")
}

// statsModeSuffix annotates the bar with the active analysis policies so a
// surprising count is explainable at a glance.
func (m *Model) statsModeSuffix() string {
	notes := make([]string, 0, 2)
	if m.settings.IgnoreCallouts {
		notes = append(notes, "no callouts")
	}
	if m.settings.StripMarkdownChars {
		notes = append(notes, "md-stripped chars")
	}
	if len(notes) == 0 {
		return ""
	}
	return " (" + strings.Join(notes, ", ") + ")"
}

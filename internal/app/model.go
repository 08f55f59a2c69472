// Package app implements the notestats terminal UI: a single-document
// Markdown viewer/editor whose stats bar shows live sentence, word,
// character, and line counts computed by the textstat pipeline.
//
// The app owns everything the analyzer deliberately does not: reading the
// document from disk, watching it for external changes, debouncing editor
// keystrokes into analysis calls, and persisting settings between sessions.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aferrant/notestats/internal/config"
	"github.com/aferrant/notestats/internal/textstat"
)

type mode int

const (
	modeView mode = iota
	modeEdit
)

const (
	// statsDebounceInterval coalesces rapid editor keystrokes into a single
	// delayed analysis pass.
	statsDebounceInterval = 300 * time.Millisecond

	// fileWatchInterval is how often the document is polled for external
	// changes.
	fileWatchInterval = 2 * time.Second
)

// Model is the Bubble Tea model for the stats viewer.
type Model struct {
	path     string
	content  string
	settings config.Settings

	viewport viewport.Model
	editor   textarea.Model
	mode     mode
	status   string

	stats textstat.Result
	lines int

	// statsGeneration invalidates stale debounce ticks: only the tick carrying
	// the latest generation recomputes, so the newest text always wins.
	statsGeneration int

	watch fileWatchState

	width  int
	height int
}

// New builds the model for the document at path using the given settings.
// The document is read and analyzed once up front so the first frame already
// shows correct counts.
func New(path string, settings config.Settings) (*Model, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve document path %q: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	vp := viewport.New(0, 0)

	editor := textarea.New()
	editor.Placeholder = "Your note content here..."
	editor.CharLimit = 0
	applyEditorTheme(&editor)

	m := &Model{
		path:     abs,
		content:  string(data),
		settings: settings,
		viewport: vp,
		editor:   editor,
		mode:     modeView,
		status:   "Ready",
	}
	m.recomputeStats()
	return m, nil
}

// Init schedules the first file watch poll.
func (m *Model) Init() tea.Cmd {
	return m.scheduleFileWatchTick()
}

// currentText returns the text the stats should describe: the live editor
// buffer while editing, the last loaded file content otherwise.
func (m *Model) currentText() string {
	if m.mode == modeEdit {
		return m.editor.Value()
	}
	return m.content
}

// analysisSettings maps persisted settings to the analyzer's flags,
// discarding the presentation-only fields.
func (m *Model) analysisSettings() textstat.Settings {
	return textstat.Settings{
		IgnoreCallouts:            m.settings.IgnoreCallouts,
		StripMarkdownForCharCount: m.settings.StripMarkdownChars,
	}
}

// recomputeStats runs the analyzer against the current text.
func (m *Model) recomputeStats() {
	text := m.currentText()
	m.stats = textstat.Analyze(text, m.analysisSettings())
	m.lines = textstat.CountLines(text)
}

// saveSettings persists the current settings, logging rather than failing
// when the write does not succeed — a toggle should never crash the UI.
func (m *Model) saveSettings() {
	if err := config.Save(m.settings); err != nil {
		m.setStatusError("Could not save settings", err)
	}
}

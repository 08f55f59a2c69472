package app

import (
	"testing"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aferrant/notestats/internal/config"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// newTestModel mirrors New without touching the filesystem.
func newTestModel(content string, settings config.Settings) *Model {
	editor := textarea.New()
	editor.CharLimit = 0
	m := &Model{
		content:  content,
		settings: settings,
		viewport: viewport.New(0, 0),
		editor:   editor,
	}
	m.recomputeStats()
	return m
}

func TestToggleCalloutsRecomputes(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	m := &Model{
		content:  "Real text.\n> [!note]\n> noise here",
		settings: config.Settings{IgnoreCallouts: false, ShowWordCount: true},
	}
	m.recomputeStats()
	if m.stats.Words != 7 {
		t.Fatalf("expected 7 words with callout counted, got %d", m.stats.Words)
	}

	m.handleKey(runeKey('c'))
	if !m.settings.IgnoreCallouts {
		t.Fatal("expected callout toggle to flip on")
	}
	if m.stats.Words != 2 {
		t.Fatalf("expected 2 words with callout excluded, got %d", m.stats.Words)
	}
}

func TestToggleStripMarkdownChars(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	m := &Model{content: "**bold** text"}
	m.recomputeStats()
	if m.stats.Chars != 13 {
		t.Fatalf("expected 13 raw chars, got %d", m.stats.Chars)
	}

	m.handleKey(runeKey('m'))
	if m.stats.Chars != 9 {
		t.Fatalf("expected 9 stripped chars, got %d", m.stats.Chars)
	}
}

func TestToggleStatsPosition(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	m := newTestModel("", config.Default())
	m.handleKey(runeKey('p'))
	if m.settings.StatsPosition != config.PositionHeader {
		t.Fatalf("expected header position, got %q", m.settings.StatsPosition)
	}
	m.handleKey(runeKey('p'))
	if m.settings.StatsPosition != config.PositionFooter {
		t.Fatalf("expected footer position, got %q", m.settings.StatsPosition)
	}
}

func TestTogglesPersistSettings(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	m := &Model{settings: config.Default()}
	m.handleKey(runeKey('w'))

	saved, err := config.Load()
	if err != nil {
		t.Fatalf("load saved settings: %v", err)
	}
	if saved.ShowWordCount {
		t.Fatal("expected word count toggle persisted as off")
	}
}

func TestEscCancelsEditAndRestoresStats(t *testing.T) {
	m := newTestModel("Saved text.", config.Default())

	m.mode = modeEdit
	m.editor.SetValue("completely different draft. two sentences.")
	m.recomputeStats()
	if m.stats.Sentences != 2 {
		t.Fatalf("expected editor buffer analyzed, got %d sentences", m.stats.Sentences)
	}

	m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeView {
		t.Fatal("expected view mode after esc")
	}
	if m.stats.Sentences != 1 {
		t.Fatalf("expected stats restored to file content, got %d", m.stats.Sentences)
	}
}

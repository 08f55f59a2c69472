package app

import (
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aferrant/notestats/internal/config"
)

// statsTickMsg fires when a debounced stats refresh comes due. Ticks from
// superseded generations are dropped.
type statsTickMsg struct {
	generation int
}

// scheduleStatsRefresh arms the debounce timer. Every call bumps the
// generation, so earlier pending ticks become no-ops and only the latest
// keystroke's tick triggers a recompute.
func (m *Model) scheduleStatsRefresh() tea.Cmd {
	m.statsGeneration++
	generation := m.statsGeneration
	return tea.Tick(statsDebounceInterval, func(time.Time) tea.Msg {
		return statsTickMsg{generation: generation}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshViewport()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case statsTickMsg:
		if msg.generation == m.statsGeneration {
			m.recomputeStats()
		}
		return m, nil
	case fileWatchTickMsg:
		return m.handleFileWatchTick(msg)
	}

	// non-key messages (cursor blink and the like) update the editor but
	// must not arm the debounce timer
	if m.mode == modeEdit {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.mode == modeEdit {
		switch key {
		case "ctrl+s":
			return m.saveEdit()
		case "esc":
			m.mode = modeView
			m.status = "Edit cancelled"
			m.recomputeStats()
			return m, nil
		default:
			var cmd tea.Cmd
			m.editor, cmd = m.editor.Update(msg)
			return m, tea.Batch(cmd, m.scheduleStatsRefresh())
		}
	}

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "e":
		return m.startEdit()
	case "r":
		m.reloadFromDisk("Reloaded")
		return m, nil
	case "c":
		m.settings.IgnoreCallouts = !m.settings.IgnoreCallouts
		m.applySettingToggle("Ignore callouts", m.settings.IgnoreCallouts)
		return m, nil
	case "m":
		m.settings.StripMarkdownChars = !m.settings.StripMarkdownChars
		m.applySettingToggle("Markdown-stripped characters", m.settings.StripMarkdownChars)
		return m, nil
	case "w":
		m.settings.ShowWordCount = !m.settings.ShowWordCount
		m.applySettingToggle("Word count display", m.settings.ShowWordCount)
		return m, nil
	case "p":
		if m.settings.StatsPosition == config.PositionFooter {
			m.settings.StatsPosition = config.PositionHeader
		} else {
			m.settings.StatsPosition = config.PositionFooter
		}
		m.saveSettings()
		m.status = "Stats moved to " + m.settings.StatsPosition
		m.updateLayout()
		m.refreshViewport()
		return m, nil
	case "up", "k":
		m.viewport.LineUp(1)
		return m, nil
	case "down", "j":
		m.viewport.LineDown(1)
		return m, nil
	case "pgup":
		m.viewport.HalfViewUp()
		return m, nil
	case "pgdown":
		m.viewport.HalfViewDown()
		return m, nil
	}
	return m, nil
}

// applySettingToggle persists a flipped flag, reports it in the status bar,
// and recomputes immediately so the bar reflects the new policy.
func (m *Model) applySettingToggle(label string, enabled bool) {
	m.saveSettings()
	state := "off"
	if enabled {
		state = "on"
	}
	m.status = label + ": " + state
	m.recomputeStats()
}

func (m *Model) startEdit() (tea.Model, tea.Cmd) {
	m.mode = modeEdit
	m.editor.SetValue(m.content)
	m.editor.CursorEnd()
	m.updateLayout()
	m.status = "Editing " + filepath.Base(m.path)
	m.recomputeStats()
	return m, m.editor.Focus()
}

func (m *Model) saveEdit() (tea.Model, tea.Cmd) {
	if err := os.WriteFile(m.path, []byte(m.editor.Value()), 0o644); err != nil {
		m.setStatusError("Error saving note", err, "path", m.path)
		return m, nil
	}
	m.content = m.editor.Value()
	m.mode = modeView
	m.status = "Saved: " + filepath.Base(m.path)
	m.recomputeStats()
	m.refreshViewport()
	// the save itself changes the file; rebaseline so the watcher stays quiet
	m.rebaselineWatch()
	return m, nil
}

// reloadFromDisk replaces the in-memory document with the on-disk content.
func (m *Model) reloadFromDisk(status string) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		m.setStatusError("Error reading note", err, "path", m.path)
		return
	}
	m.content = string(data)
	m.status = status
	m.recomputeStats()
	m.refreshViewport()
}

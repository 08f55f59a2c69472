// watcher.go implements poll-based monitoring of the open document for
// external changes.
//
// OS-level filesystem event APIs are uneven across platforms (and the note
// may live on a network mount), so the document is simply stat'd on a fixed
// interval. The first poll records a baseline; later polls compare the
// modification time (nanoseconds) and size against it and reload the
// document when either differs. While the user is editing, reloading is
// skipped so unsaved changes are never clobbered — only the status line
// notes that the file changed underneath the editor.
package app

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fileWatchTickMsg is emitted by the periodic poll timer.
type fileWatchTickMsg struct{}

// fileWatchState records the observable attributes of the watched document.
// UnixNano is used instead of time.Time so equality comparison is trivial
// and free of timezone concerns.
type fileWatchState struct {
	modNano int64
	size    int64
	ready   bool
}

// scheduleFileWatchTick queues the next poll.
func (m *Model) scheduleFileWatchTick() tea.Cmd {
	return tea.Tick(fileWatchInterval, func(time.Time) tea.Msg {
		return fileWatchTickMsg{}
	})
}

// handleFileWatchTick stats the document and compares against the last
// observed state. The next tick is always scheduled so monitoring continues
// for the lifetime of the program, even across transient stat failures
// (editors that replace files on save briefly leave no file to stat).
func (m *Model) handleFileWatchTick(_ fileWatchTickMsg) (tea.Model, tea.Cmd) {
	info, err := os.Stat(m.path)
	if err != nil {
		appLog.Warn("stat watched document", "path", m.path, "error", err)
		return m, m.scheduleFileWatchTick()
	}

	observed := fileWatchState{
		modNano: info.ModTime().UnixNano(),
		size:    info.Size(),
		ready:   true,
	}

	if !m.watch.ready {
		m.watch = observed
		return m, m.scheduleFileWatchTick()
	}

	if observed != m.watch {
		m.watch = observed
		if m.mode == modeEdit {
			m.status = "File changed on disk (kept your unsaved edits)"
			appLog.Info("external change ignored during edit", "path", m.path)
		} else {
			m.reloadFromDisk("Auto-refreshed (external change detected)")
		}
	}
	return m, m.scheduleFileWatchTick()
}

// rebaselineWatch re-reads the document attributes after our own write so
// the next poll does not misread it as an external change.
func (m *Model) rebaselineWatch() {
	info, err := os.Stat(m.path)
	if err != nil {
		m.watch = fileWatchState{}
		return
	}
	m.watch = fileWatchState{
		modNano: info.ModTime().UnixNano(),
		size:    info.Size(),
		ready:   true,
	}
}

package app

import (
	"path/filepath"

	"github.com/charmbracelet/glamour"

	"github.com/aferrant/notestats/internal/config"
)

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	contentHeight := max(0, m.height-3)
	var pane string
	if m.mode == modeEdit {
		pane = editPane.Width(max(0, m.width-2)).Height(contentHeight).Render(m.editor.View())
	} else {
		pane = previewPane.Width(max(0, m.width-2)).Height(contentHeight).Render(m.viewport.View())
	}

	bar := m.renderStatsBar(m.width)
	status := m.renderStatus(m.width)

	if m.settings.StatsPosition == config.PositionHeader {
		return bar + "\n" + pane + "\n" + status
	}
	return pane + "\n" + bar + "\n" + status
}

// renderStatsBar draws the counts line for the current document.
func (m *Model) renderStatsBar(width int) string {
	summary := m.statsSummary()
	if summary == "" {
		return mutedStyle.Width(width).Render(" " + truncate("No countable text", max(0, width-1)))
	}
	name := titleStyle.Render(filepath.Base(m.path))
	line := " " + name + "  " + summary + m.statsModeSuffix()
	return statsStyle.Width(width).Render(truncate(line, width))
}

func (m *Model) renderStatus(width int) string {
	help := "e edit  r reload  c callouts  m md-chars  w words  p position  q quit"
	style := statusStyle
	if m.mode == modeEdit {
		help = "Ctrl+S save  Esc cancel"
		style = editStatus
	}
	line := help
	if m.status != "" {
		line = help + " | " + m.status
	}
	return style.Width(width).Render(truncate(" "+line, width))
}

// updateLayout resizes the viewport and editor to the current window.
func (m *Model) updateLayout() {
	contentHeight := max(0, m.height-3)
	innerWidth := max(0, m.width-2-paneStyle.GetHorizontalFrameSize())
	innerHeight := max(0, contentHeight-paneStyle.GetVerticalFrameSize())
	m.viewport.Width = innerWidth
	m.viewport.Height = innerHeight
	m.editor.SetWidth(innerWidth)
	m.editor.SetHeight(innerHeight)
}

// refreshViewport re-renders the markdown preview from the loaded content.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(renderMarkdown(m.content, m.viewport.Width))
}

func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}

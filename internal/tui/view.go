package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/csheth/idmtui/internal/queue"
)

func (m *model) View() string {
	return m.render(m.state.Snapshot())
}

// render maps a state snapshot onto the frame: header, link list, footer and,
// while adding a link, the dialog on top.
func (m *model) render(snap queue.Snapshot) string {
	width := m.layout.windowWidth
	frame := lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(width),
		m.bodyView(width),
		m.footerView(snap, width),
	)
	if snap.Screen == queue.ScreenAddDialog {
		d := m.layout.dialog
		frame = overlay(frame, dialogView(snap, d), d.x, d.y)
	}
	return frame
}

func (m *model) headerView(width int) string {
	return headerBoxStyle.Copy().
		Width(width - 2).
		Render(headerTitleStyle.Render(fitLine(m.config.Title, width-2)))
}

func (m *model) bodyView(width int) string {
	return titledPanel(bodyPanelTitle, m.viewport.View(), width, panelBorderStyle, panelStyle)
}

func (m *model) footerView(snap queue.Snapshot, width int) string {
	hints := m.keys.MainHints()
	if snap.Screen == queue.ScreenAddDialog {
		hints = m.keys.DialogHints()
	}
	return footerBoxStyle.Copy().
		Width(width - 2).
		Render(footerHintStyle.Render(fitLine(formatHints(hints), width-2)))
}

// fitLine keeps fixed-height regions on a single row.
func fitLine(text string, width int) string {
	if width < 1 || lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}

func dialogView(snap queue.Snapshot, area rect) string {
	inner := area.width - 2
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 0
	input.Width = inner - 1
	input.Focus()
	input.Cursor.SetMode(cursor.CursorStatic)
	input.SetValue(snap.Input)
	input.SetCursor(snap.Cursor)

	lines := []string{input.View()}
	for len(lines) < area.height-2 {
		lines = append(lines, "")
	}
	return titledPanel(dialogPanelTitle, strings.Join(lines, "\n"), area.width, dialogBorder, dialogStyle)
}

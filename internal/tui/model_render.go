package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/gridsheet/internal/core/styles"
	"github.com/colonyops/gridsheet/internal/grid"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderEditBar())
	b.WriteByte('\n')
	b.WriteString(m.canvas.Render())
	b.WriteByte('\n')
	b.WriteString(m.renderStatusBar())
	return b.String()
}

// cellAddress formats the cursor position in spreadsheet notation.
func (m Model) cellAddress() string {
	return fmt.Sprintf("%s%d", m.engine.Cols().Axis().Label(m.cursorCol), m.cursorRow)
}

// renderEditBar shows the anchor cell's address and either its value or
// the live editor.
func (m Model) renderEditBar() string {
	addr := styles.CellAddrStyle.Render(" " + m.cellAddress() + " ")

	body := m.store.CellValue(m.cursorRow, m.cursorCol)
	if m.state == stateEditing {
		body = m.editor.View()
	}

	line := addr + " " + styles.EditBarStyle.Render(body)
	return padLine(line, m.width)
}

// renderStatusBar shows mode hints on the left and the selection
// statistics on the right.
func (m Model) renderStatusBar() string {
	left := " " + m.modeHint()
	if m.errText != "" {
		left = " " + styles.ErrorStyle.Render(m.errText)
	}

	right := styles.StatusStatsStyle.Render(m.stats.Current().String())
	if depth := m.history.Len(); depth > 0 {
		right += styles.StatusBarStyle.Render(fmt.Sprintf("  undo %d ", depth))
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return styles.StatusBarStyle.Render(left) +
		styles.StatusBarStyle.Render(strings.Repeat(" ", gap)) +
		right
}

// modeHint names the current interaction state for the status bar.
func (m Model) modeHint() string {
	switch {
	case m.state == stateEditing:
		return "editing (enter commit, esc cancel)"
	case m.engine.ResizeState() == grid.ResizeDragging:
		return "resizing"
	case m.engine.ResizeState() == grid.ResizeHovering:
		return "drag to resize"
	case m.engine.Selecting():
		return "selecting"
	default:
		return "q quit · enter edit · arrows move · shift+arrows select"
	}
}

// padLine right-pads a styled line to the terminal width.
func padLine(line string, width int) string {
	gap := width - lipgloss.Width(line)
	if gap <= 0 {
		return line
	}
	return line + strings.Repeat(" ", gap)
}

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/gridsheet/internal/core/cells"
	"github.com/colonyops/gridsheet/internal/grid"
)

// wheelStep is the content-pixel scroll distance of one wheel notch:
// three default rows.
const wheelStep = 75.0

// autoScrollFrame is the edge auto-scroll frame interval.
const autoScrollFrame = time.Second / 30

type autoScrollTickMsg struct{}

func autoScrollTick() tea.Cmd {
	return tea.Tick(autoScrollFrame, func(time.Time) tea.Msg {
		return autoScrollTickMsg{}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case autoScrollTickMsg:
		return m.handleAutoScrollTick()
	case tea.KeyMsg:
		if m.state == stateEditing {
			return m.handleEditingKey(msg)
		}
		return m.handleGridKey(msg)
	}
	return m, nil
}

// --- Window ---

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// Edit bar and status bar take one line each.
	gridRows := msg.Height - 2
	if gridRows < 1 {
		gridRows = 1
	}
	m.canvas.SetSize(msg.Width, gridRows)
	m.editor.Width = msg.Width - 4
	return m, nil
}

// --- Mouse ---

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.scrollBy(0, -wheelStep), nil
	case tea.MouseButtonWheelDown:
		return m.scrollBy(0, wheelStep), nil
	case tea.MouseButtonWheelLeft:
		return m.scrollBy(-wheelStep, 0), nil
	case tea.MouseButtonWheelRight:
		return m.scrollBy(wheelStep, 0), nil
	}

	x, y := m.canvas.ToContent(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.state == stateEditing {
			m = m.commitEdit()
		}
		m.engine.PointerDown(x, y)
		if row, col, ok := m.engine.ResolveCellAt(x, y); ok {
			m.cursorRow, m.cursorCol = row, col
		}
	case tea.MouseActionMotion:
		m.engine.PointerMove(x, y)
		if m.engine.Selecting() && m.engine.AutoScroller().Arm() {
			return m, autoScrollTick()
		}
	case tea.MouseActionRelease:
		m.engine.PointerUp(x, y)
	}
	return m, nil
}

func (m Model) scrollBy(dx, dy float64) Model {
	x, y := m.canvas.ScrollBy(dx, dy)
	m.engine.OnScroll(x, y)
	return m
}

func (m Model) handleAutoScrollTick() (tea.Model, tea.Cmd) {
	if m.engine.AutoScroller().Tick() {
		return m, autoScrollTick()
	}
	return m, nil
}

// --- Grid-mode keys ---

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		return m.moveCursor(-1, 0), nil
	case key.Matches(msg, keys.Down):
		return m.moveCursor(1, 0), nil
	case key.Matches(msg, keys.Left):
		return m.moveCursor(0, -1), nil
	case key.Matches(msg, keys.Right):
		return m.moveCursor(0, 1), nil

	case key.Matches(msg, keys.ExtendUp):
		return m.extendSelection(-1, 0), nil
	case key.Matches(msg, keys.ExtendDown):
		return m.extendSelection(1, 0), nil
	case key.Matches(msg, keys.ExtendLeft):
		return m.extendSelection(0, -1), nil
	case key.Matches(msg, keys.ExtendRight):
		return m.extendSelection(0, 1), nil

	case key.Matches(msg, keys.Edit):
		m.state = stateEditing
		m.editor.SetValue(m.store.CellValue(m.cursorRow, m.cursorCol))
		m.editor.CursorEnd()
		return m, m.editor.Focus()

	case key.Matches(msg, keys.ClearCell):
		return m.setCell(m.cursorRow, m.cursorCol, ""), nil

	case key.Matches(msg, keys.Undo):
		if m.history.Undo() {
			m.engine.RerenderAll()
			m.stats.RecomputeForSelection()
		}
		return m, nil
	case key.Matches(msg, keys.Redo):
		if m.history.Redo() {
			m.engine.RerenderAll()
			m.stats.RecomputeForSelection()
		}
		return m, nil
	}
	return m, nil
}

// --- Edit-mode keys ---

func (m Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m = m.commitEdit()
		return m.moveCursor(1, 0), nil
	case "esc":
		m.state = stateGrid
		m.editor.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// commitEdit writes the editor value into the anchor cell.
func (m Model) commitEdit() Model {
	m.state = stateGrid
	m.editor.Blur()
	return m.setCell(m.cursorRow, m.cursorCol, m.editor.Value())
}

// setCell applies an undoable cell edit and repaints the affected row.
func (m Model) setCell(row, col int, value string) Model {
	prev := m.store.CellValue(row, col)
	if prev == value {
		return m
	}
	m.store.Set(row, col, value)
	m.history.Execute(&cells.EditCommand{
		Store: m.store,
		Row:   row,
		Col:   col,
		Prev:  prev,
		Next:  value,
	})

	// An edit outside the mounted window repaints on remount; asking the
	// engine for the block anyway would log it as a window desync.
	blockID := (row - 1) / grid.BlockSize
	if _, ok := m.engine.Rows().Mounted(blockID); ok {
		if err := m.engine.RedrawRow(blockID); err != nil {
			m.log.Debug().Err(err).Int("row", row).Msg("deferred repaint of edited row")
		}
	} else {
		m.log.Debug().Int("row", row).Msg("edited row outside the window; repaint deferred")
	}
	m.stats.RecomputeForSelection()
	return m
}

// moveCursor moves the keyboard anchor and collapses the selection to it.
func (m Model) moveCursor(dr, dc int) Model {
	m.cursorRow = clampIndex(m.cursorRow+dr, grid.TotalRows)
	m.cursorCol = clampIndex(m.cursorCol+dc, grid.TotalColumns)
	m.engine.SetSelection(grid.CellSelection(m.cursorRow, m.cursorCol))
	m = m.ensureRowVisible(m.cursorRow)
	m = m.ensureColVisible(m.cursorCol)
	return m
}

// extendSelection grows the selection toward the pointer end and
// recomputes the statistics, matching the pointer-up behavior.
func (m Model) extendSelection(dr, dc int) Model {
	sel := m.engine.Selection()
	sel.EndRow = clampIndex(sel.EndRow+dr, grid.TotalRows)
	sel.EndCol = clampIndex(sel.EndCol+dc, grid.TotalColumns)
	m.engine.SetSelection(sel)
	m = m.ensureRowVisible(sel.EndRow)
	m = m.ensureColVisible(sel.EndCol)
	m.stats.RecomputeForSelection()
	return m
}

func clampIndex(v, max int) int {
	if v < 1 {
		return 1
	}
	if v > max {
		return max
	}
	return v
}

// ensureRowVisible scrolls just far enough to bring a row into the
// unpinned band below the column header strip.
func (m Model) ensureRowVisible(row int) Model {
	b, ok := m.engine.Rows().Mounted((row - 1) / grid.BlockSize)
	if !ok {
		return m
	}
	local := row - b.FirstIndex()
	top := grid.HeaderHeight + b.Origin() + b.Top(local)
	bottom := grid.HeaderHeight + b.Origin() + b.Position(local)

	vp := m.canvas.Viewport()
	switch {
	case top-vp.Y < grid.HeaderHeight:
		return m.scrollBy(0, top-vp.Y-grid.HeaderHeight)
	case bottom-vp.Y > vp.H:
		return m.scrollBy(0, bottom-vp.Y-vp.H)
	}
	return m
}

// ensureColVisible scrolls just far enough to bring a column into the
// unpinned band right of the row header strip.
func (m Model) ensureColVisible(col int) Model {
	b, ok := m.engine.Cols().Mounted((col - 1) / grid.BlockSize)
	if !ok {
		return m
	}
	local := col - b.FirstIndex()
	left := grid.HeaderWidth + b.Origin() + b.Top(local)
	right := grid.HeaderWidth + b.Origin() + b.Position(local)

	vp := m.canvas.Viewport()
	switch {
	case left-vp.X < grid.HeaderWidth:
		return m.scrollBy(left-vp.X-grid.HeaderWidth, 0)
	case right-vp.X > vp.W:
		return m.scrollBy(right-vp.X-vp.W, 0)
	}
	return m
}

package grid

// selectMode says what kind of range a drag gesture is building.
type selectMode int

const (
	selectCells selectMode = iota
	selectRows
	selectColumns
)

// selectController owns the drag-selection gesture: pointer down anchors
// the selection, moves extend it, release hands off to the statistics
// collaborator. Clicks on the row or column header strips build whole-row
// or whole-column selections. It runs after the resize coordinator in
// dispatch order, so boundary drags never reach it.
type selectController struct {
	e        *Engine
	mode     selectMode
	dragging bool

	// lastX/lastY is the most recent pointer position of the gesture,
	// replayed by the auto-scroller after each nudge.
	lastX, lastY float64
}

// HitTest accepts any coordinate that resolves to a cell or a header
// cell. Anything else is not a selectable target and the gesture aborts
// quietly upstream.
func (c *selectController) HitTest(x, y float64) bool {
	switch {
	case x < HeaderWidth && y < HeaderHeight:
		return false // corner chrome
	case x < HeaderWidth:
		_, ok := c.e.resolveRowAt(y)
		return ok
	case y < HeaderHeight:
		_, ok := c.e.resolveColAt(x)
		return ok
	default:
		_, _, ok := c.e.ResolveCellAt(x, y)
		return ok
	}
}

// PointerDown anchors a new selection at the resolved target.
func (c *selectController) PointerDown(x, y float64) {
	switch {
	case x < HeaderWidth:
		row, ok := c.e.resolveRowAt(y)
		if !ok {
			return
		}
		c.mode = selectRows
		c.e.setSelection(RowSelection(row, row))
	case y < HeaderHeight:
		col, ok := c.e.resolveColAt(x)
		if !ok {
			return
		}
		c.mode = selectColumns
		c.e.setSelection(ColumnSelection(col, col))
	default:
		row, col, ok := c.e.ResolveCellAt(x, y)
		if !ok {
			return
		}
		c.mode = selectCells
		c.e.setSelection(CellSelection(row, col))
	}
	c.dragging = true
	c.lastX, c.lastY = x, y
}

// PointerMove extends the selection's end coordinates toward the pointer
// and feeds the auto-scroller's edge detection.
func (c *selectController) PointerMove(x, y float64) {
	if !c.dragging {
		return
	}
	c.lastX, c.lastY = x, y

	sel := c.e.selection
	switch c.mode {
	case selectRows:
		if row, ok := c.e.resolveRowAt(y); ok {
			sel.EndRow = row
		}
	case selectColumns:
		if col, ok := c.e.resolveColAt(x); ok {
			sel.EndCol = col
		}
	default:
		if row, col, ok := c.e.ResolveCellAt(x, y); ok {
			sel.EndRow = row
			sel.EndCol = col
		}
	}

	if sel != c.e.selection {
		c.e.setSelection(sel)
	}
	c.e.auto.Update(x, y, c.e.canvas.Viewport())
}

// followScroll re-extends the selection after an auto-scroll nudge: the
// pointer is stationary on screen, so its content position shifts by the
// scrolled delta.
func (c *selectController) followScroll(dx, dy float64) {
	if !c.dragging {
		return
	}
	c.PointerMove(c.lastX+dx, c.lastY+dy)
}

// PointerUp ends the gesture and notifies the statistics engine.
func (c *selectController) PointerUp(x, y float64) {
	if !c.dragging {
		return
	}
	c.dragging = false
	if c.e.stats != nil {
		c.e.stats.RecomputeForSelection()
	}
}

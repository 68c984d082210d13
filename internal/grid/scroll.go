package grid

// ScrollCoordinator observes the host viewport's scroll offset and keeps
// the axis windows and the tile window tracking it. It only advances a
// window when the edge-most mounted block is actually leaving (or
// re-entering) the visible rectangle, so a fast fling does not mount
// blocks far ahead of the frame the user can see.
type ScrollCoordinator struct {
	rows   *Manager
	cols   *Manager
	tiles  *TileGrid
	canvas Canvas

	lastX float64
	lastY float64
}

// NewScrollCoordinator creates a coordinator over the managers and tiles.
func NewScrollCoordinator(rows, cols *Manager, tiles *TileGrid, canvas Canvas) *ScrollCoordinator {
	return &ScrollCoordinator{rows: rows, cols: cols, tiles: tiles, canvas: canvas}
}

// OnScroll handles a scroll event carrying the new absolute offsets. For
// each axis with a nonzero delta it advances or retreats the window while
// the geometric condition holds, driving the axis manager and the tile
// grid in lockstep within this one handler.
func (s *ScrollCoordinator) OnScroll(x, y float64) {
	dy := y - s.lastY
	dx := x - s.lastX
	s.lastX, s.lastY = x, y

	vp := s.canvas.Viewport()

	if dy > 0 {
		// Scrolling down: advance while the leading row block has fully
		// left the top of the viewport.
		for s.rowLeadGone(vp) && s.rows.ScrollForward() {
			s.tiles.ScrollDown()
		}
	} else if dy < 0 {
		// Scrolling up: retreat while the viewport has risen above the
		// window's leading edge.
		for vp.Y < HeaderHeight+s.rows.WindowStartPixel() && s.rows.ScrollBackward() {
			s.tiles.ScrollUp()
		}
	}

	if dx > 0 {
		for s.colLeadGone(vp) && s.cols.ScrollForward() {
			s.tiles.ScrollRight()
		}
	} else if dx < 0 {
		for vp.X < HeaderWidth+s.cols.WindowStartPixel() && s.cols.ScrollBackward() {
			s.tiles.ScrollLeft()
		}
	}

	// Returning exactly to the origin resets the accumulated leading-edge
	// margin so pixel drift cannot build up across many mount/unmount
	// cycles.
	if y == 0 {
		s.snapRowsToOrigin()
	}
	if x == 0 {
		s.snapColsToOrigin()
	}
}

// rowLeadGone reports whether the first mounted row block is entirely
// above the visible rectangle.
func (s *ScrollCoordinator) rowLeadGone(vp Rect) bool {
	first := s.rows.First()
	return HeaderHeight+first.Origin()+first.Extent() < vp.Y
}

// colLeadGone reports whether the first mounted column block is entirely
// left of the visible rectangle.
func (s *ScrollCoordinator) colLeadGone(vp Rect) bool {
	first := s.cols.First()
	return HeaderWidth+first.Origin()+first.Extent() < vp.X
}

// snapRowsToOrigin walks the row window back to block 0 and zeroes the
// leading margin.
func (s *ScrollCoordinator) snapRowsToOrigin() {
	for s.rows.ScrollBackward() {
		s.tiles.ScrollUp()
	}
	s.rows.Realign(0)
	s.tiles.Realign()
}

// snapColsToOrigin walks the column window back to block 0 and zeroes the
// leading margin.
func (s *ScrollCoordinator) snapColsToOrigin() {
	for s.cols.ScrollBackward() {
		s.tiles.ScrollLeft()
	}
	s.cols.Realign(0)
	s.tiles.Realign()
}

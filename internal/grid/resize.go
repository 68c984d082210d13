package grid

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/gridsheet/internal/core/history"
	"github.com/colonyops/gridsheet/internal/core/logging"
)

// CommandSink receives the undoable commands the grid constructs. The
// host's history stack implements it; the grid never manages the stack.
type CommandSink interface {
	Execute(c history.Command)
}

// ResizeState is the pointer-interaction state of the resize coordinator.
type ResizeState int

// Resize states: idle -> hovering -> dragging -> idle.
const (
	ResizeIdle ResizeState = iota
	ResizeHovering
	ResizeDragging
)

// ResizeCoordinator drives pointer-based adjustment of one row's or
// column's explicit size. Hovering within the boundary tolerance of a
// header edge shows the affordance; dragging applies clamped live
// resizes; releasing emits one undoable command carrying the pre-drag and
// final sizes, then repaints the dependent tile row or column.
type ResizeCoordinator struct {
	rows    *Manager
	cols    *Manager
	tiles   *TileGrid
	sel     SelectionSource
	history CommandSink
	log     zerolog.Logger

	state    ResizeState
	orient   Orientation
	block    *Block
	local    int
	prevSize float64
}

// NewResizeCoordinator creates a coordinator over both axes.
func NewResizeCoordinator(rows, cols *Manager, tiles *TileGrid, sel SelectionSource, sink CommandSink) *ResizeCoordinator {
	return &ResizeCoordinator{
		rows:    rows,
		cols:    cols,
		tiles:   tiles,
		sel:     sel,
		history: sink,
		log:     logging.Component("grid.resize"),
	}
}

// State returns the current interaction state, used by the host to show
// a resize cursor while hovering.
func (r *ResizeCoordinator) State() ResizeState { return r.state }

// HitTest reports whether (x, y) lies within the boundary tolerance of a
// header edge, transitioning idle <-> hovering as a side effect. A miss
// against anything that is not a header strip simply resolves to false;
// the gesture aborts quietly.
func (r *ResizeCoordinator) HitTest(x, y float64) bool {
	if r.state == ResizeDragging {
		return true
	}

	if x < HeaderWidth && y >= HeaderHeight && r.hitAxis(Rows, r.rows, y-HeaderHeight) {
		return true
	}
	if y < HeaderHeight && x >= HeaderWidth && r.hitAxis(Columns, r.cols, x-HeaderWidth) {
		return true
	}

	r.state = ResizeIdle
	r.block = nil
	return false
}

// hitAxis band-tests one axis at a content offset. At a block seam the
// tolerance band straddles two blocks but BlockAt resolves only the
// trailing one, so an offset within the band of a block's leading edge is
// retried against the previous block's last boundary.
func (r *ResizeCoordinator) hitAxis(o Orientation, mgr *Manager, offset float64) bool {
	b, ok := mgr.BlockAt(offset)
	if !ok {
		return false
	}
	if i, hit := b.HitTestBoundary(offset - b.Origin()); hit {
		r.hover(o, b, i)
		return true
	}
	if offset-b.Origin() <= BoundaryTolerance {
		if prev, ok := mgr.Mounted(b.ID - 1); ok {
			if i, hit := prev.HitTestBoundary(offset - prev.Origin()); hit {
				r.hover(o, prev, i)
				return true
			}
		}
	}
	return false
}

// PointerDown starts the drag when hovering over a boundary, recording
// the pre-drag size for the eventual undo record.
func (r *ResizeCoordinator) PointerDown(x, y float64) {
	if r.state != ResizeHovering {
		return
	}
	r.state = ResizeDragging
	r.prevSize = r.block.SizeAt(r.local)
}

// PointerMove applies a clamped live resize on every move while dragging:
// the pointer offset is converted to an absolute new size for the index
// being resized, the position array recomputes, and only then do the
// dependent surfaces repaint.
func (r *ResizeCoordinator) PointerMove(x, y float64) {
	if r.state != ResizeDragging {
		return
	}

	offset := y - HeaderHeight
	if r.orient == Columns {
		offset = x - HeaderWidth
	}
	size := offset - r.block.Origin() - r.block.Top(r.local)
	r.block.ApplyResize(r.local, size)
	r.redraw(r.orient, r.block)
}

// PointerUp ends the drag and emits the undoable command. The command is
// only recorded when the size actually changed. The gesture returns to
// idle; the next pointer move re-hovers if it still sits on a boundary.
func (r *ResizeCoordinator) PointerUp(x, y float64) {
	if r.state != ResizeDragging {
		return
	}
	r.state = ResizeIdle

	newSize := r.block.SizeAt(r.local)
	if newSize != r.prevSize && r.history != nil {
		r.history.Execute(&resizeCommand{
			coord:    r,
			orient:   r.orient,
			index:    r.block.GlobalIndex(r.local),
			prevSize: r.prevSize,
			newSize:  newSize,
		})
	}
	r.redraw(r.orient, r.block)
}

// Dragging reports whether a drag is in flight.
func (r *ResizeCoordinator) Dragging() bool { return r.state == ResizeDragging }

func (r *ResizeCoordinator) hover(o Orientation, b *Block, local int) {
	r.state = ResizeHovering
	r.orient = o
	r.block = b
	r.local = local
}

// redraw repaints the resized block's header, realigns trailing blocks
// whose origins shifted, and repaints the dependent tile row or column.
func (r *ResizeCoordinator) redraw(o Orientation, b *Block) {
	mgr := r.rows
	if o == Columns {
		mgr = r.cols
	}
	mgr.Realign(mgr.WindowStartPixel())
	mgr.RedrawAll()

	var err error
	if o == Rows {
		err = r.tiles.RedrawRow(b.ID)
	} else {
		err = r.tiles.RedrawColumn(b.ID)
	}
	if err != nil {
		// Already logged as a desync by the tile grid; nothing to recover.
		return
	}
}

// applyAbsolute is the undo/redo entry point: it writes an absolute size
// for a global index, through the mounted block when it is in the window
// (recomputing positions and repainting), or straight into the override
// map when it is not. Unmounted blocks rebuild their positions on the
// next mount, so skipping the repaint loses nothing.
func (r *ResizeCoordinator) applyAbsolute(o Orientation, index int, size float64) {
	mgr := r.rows
	if o == Columns {
		mgr = r.cols
	}

	blockID := (index - 1) / BlockSize
	if b, ok := mgr.Mounted(blockID); ok {
		b.ApplyResize(index-b.FirstIndex(), size)
		r.redraw(o, b)
		return
	}
	mgr.Axis().Overrides.Set(index, mgr.Axis().Clamp(size))
}

// resizeCommand is the undo record for one completed resize drag.
type resizeCommand struct {
	coord    *ResizeCoordinator
	orient   Orientation
	index    int // global 1-based index
	prevSize float64
	newSize  float64
}

func (c *resizeCommand) Undo() { c.coord.applyAbsolute(c.orient, c.index, c.prevSize) }
func (c *resizeCommand) Redo() { c.coord.applyAbsolute(c.orient, c.index, c.newSize) }

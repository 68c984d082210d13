// Package grid implements the virtualized grid windowing and
// position-indexing engine behind the spreadsheet surface: fixed-size
// blocks partitioning a million-row space, cumulative position arrays
// with per-index size overrides, sliding windows of mounted drawing
// blocks kept in lockstep across rows, columns, and cell tiles, and the
// pointer machinery (hit testing, drag selection, boundary resize,
// edge auto-scroll) built on top of them.
//
// The package draws through the Surface/Canvas abstraction and carries no
// rendering backend of its own; the TUI supplies a terminal-cell canvas
// and tests supply a recording fake.
package grid

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/gridsheet/internal/core/logging"
)

// StatsNotifier is the external statistics collaborator, poked after a
// selection gesture completes. It reads the selection and the cell store
// on its own.
type StatsNotifier interface {
	RecomputeForSelection()
}

// Config wires the engine's collaborators and tuning.
type Config struct {
	// VisibleRowBlocks and VisibleColBlocks set the fixed window lengths.
	// Zero means the defaults (10 row blocks, 4 column blocks).
	VisibleRowBlocks int
	VisibleColBlocks int

	// RowHeight and ColumnWidth override the default cell sizes. Zero
	// keeps the standard geometry.
	RowHeight   float64
	ColumnWidth float64

	Theme   Theme
	Cells   CellReader
	History CommandSink
	Stats   StatsNotifier

	// Nudge moves the host's scroll offset by a delta. The host owns the
	// offset; the engine only requests movement (auto-scroll) and
	// observes the result through OnScroll.
	Nudge func(dx, dy float64)
}

func (c Config) withDefaults() Config {
	if c.VisibleRowBlocks == 0 {
		c.VisibleRowBlocks = 10
	}
	if c.VisibleColBlocks == 0 {
		c.VisibleColBlocks = 4
	}
	return c
}

// Engine owns both axis managers, the tile grid, and the coordinators,
// and is the single writer of the selection record. All methods must be
// called from one goroutine; the event model is cooperative and
// single-threaded.
type Engine struct {
	canvas Canvas
	theme  Theme
	log    zerolog.Logger

	rows  *Manager
	cols  *Manager
	tiles *TileGrid

	scroll  *ScrollCoordinator
	resize  *ResizeCoordinator
	selects *selectController
	pointer *PointerDispatcher
	auto    *AutoScroller
	stats   StatsNotifier

	selection Selection
}

// New builds a fully mounted engine over the canvas.
func New(canvas Canvas, cfg Config) *Engine {
	cfg = cfg.withDefaults()

	e := &Engine{
		canvas:    canvas,
		theme:     cfg.Theme,
		log:       logging.Component("grid.engine"),
		stats:     cfg.Stats,
		selection: CellSelection(1, 1),
	}

	rowDef := RowDefaults()
	if cfg.RowHeight != 0 {
		rowDef.Size = rowDef.Clamp(cfg.RowHeight)
	}
	colDef := ColumnDefaults()
	if cfg.ColumnWidth != 0 {
		colDef.Size = colDef.Clamp(cfg.ColumnWidth)
	}
	rowAxis := NewAxis(Rows, rowDef)
	colAxis := NewAxis(Columns, colDef)
	e.rows = NewManager(rowAxis, canvas, &e.theme, e, cfg.VisibleRowBlocks)
	e.cols = NewManager(colAxis, canvas, &e.theme, e, cfg.VisibleColBlocks)
	e.tiles = NewTileGrid(e.rows, e.cols, canvas, &e.theme, cfg.Cells, e)
	e.scroll = NewScrollCoordinator(e.rows, e.cols, e.tiles, canvas)
	e.resize = NewResizeCoordinator(e.rows, e.cols, e.tiles, e, cfg.History)
	e.selects = &selectController{e: e}
	e.pointer = NewPointerDispatcher(e.resize, e.selects)

	nudge := cfg.Nudge
	if nudge == nil {
		nudge = func(dx, dy float64) {}
	}
	e.auto = NewAutoScroller(
		func() bool { return e.selects.dragging },
		func(dx, dy float64) {
			nudge(dx, dy)
			// The pointer did not move on screen, but the content under
			// it did: keep the selection tracking it.
			e.selects.followScroll(dx, dy)
		},
	)

	e.rows.MountInitial(0, 0)
	e.cols.MountInitial(0, 0)
	e.tiles.MountInitial()

	return e
}

// Selection returns the current selection snapshot. Engine implements
// SelectionSource for every component it owns.
func (e *Engine) Selection() Selection { return e.selection }

// SetSelection replaces the selection and repaints everything that reads
// it: both header windows and all mounted tiles.
func (e *Engine) SetSelection(sel Selection) {
	e.setSelection(sel)
}

func (e *Engine) setSelection(sel Selection) {
	e.selection = sel
	e.rows.RedrawAll()
	e.cols.RedrawAll()
	e.tiles.RedrawAll()
}

// RerenderAll repaints every mounted header and tile.
func (e *Engine) RerenderAll() {
	e.rows.RedrawAll()
	e.cols.RedrawAll()
	e.tiles.RedrawAll()
}

// RedrawRow repaints the tiles and header of one row block.
func (e *Engine) RedrawRow(globalID int) error {
	b, err := e.rows.Block(globalID)
	if err != nil {
		return err
	}
	b.DrawHeader(e.selection)
	return e.tiles.RedrawRow(globalID)
}

// RedrawColumn repaints the tiles and header of one column block.
func (e *Engine) RedrawColumn(globalID int) error {
	b, err := e.cols.Block(globalID)
	if err != nil {
		return err
	}
	b.DrawHeader(e.selection)
	return e.tiles.RedrawColumn(globalID)
}

// ScrollDown advances the row window one block. False at the bottom.
func (e *Engine) ScrollDown() bool {
	if !e.rows.ScrollForward() {
		return false
	}
	e.tiles.ScrollDown()
	return true
}

// ScrollUp retreats the row window one block. False at the top.
func (e *Engine) ScrollUp() bool {
	if !e.rows.ScrollBackward() {
		return false
	}
	e.tiles.ScrollUp()
	return true
}

// ScrollRight advances the column window one block. False at the end.
func (e *Engine) ScrollRight() bool {
	if !e.cols.ScrollForward() {
		return false
	}
	e.tiles.ScrollRight()
	return true
}

// ScrollLeft retreats the column window one block. False at the start.
func (e *Engine) ScrollLeft() bool {
	if !e.cols.ScrollBackward() {
		return false
	}
	e.tiles.ScrollLeft()
	return true
}

// OnScroll reports the host's new absolute scroll offsets.
func (e *Engine) OnScroll(x, y float64) {
	e.scroll.OnScroll(x, y)
}

// PointerDown dispatches a press in content coordinates. Returns whether
// any handler claimed the gesture.
func (e *Engine) PointerDown(x, y float64) bool {
	return e.pointer.Down(x, y)
}

// PointerMove dispatches pointer motion.
func (e *Engine) PointerMove(x, y float64) {
	e.pointer.Move(x, y)
}

// PointerUp finishes the gesture.
func (e *Engine) PointerUp(x, y float64) {
	e.pointer.Up(x, y)
}

// ResolveCellAt resolves a content coordinate to a logical cell via the
// bounded binary search of the containing blocks. ok is false for
// coordinates outside the cell area, which callers treat as a quietly
// aborted gesture.
func (e *Engine) ResolveCellAt(x, y float64) (row, col int, ok bool) {
	if x < HeaderWidth || y < HeaderHeight {
		return 0, 0, false
	}
	row, ok = e.resolveRowAt(y)
	if !ok {
		return 0, 0, false
	}
	col, ok = e.resolveColAt(x)
	if !ok {
		return 0, 0, false
	}
	return row, col, true
}

// resolveRowAt maps a content y to a global row number.
func (e *Engine) resolveRowAt(y float64) (int, bool) {
	b, ok := e.rows.BlockAt(y - HeaderHeight)
	if !ok {
		return 0, false
	}
	local := b.ResolveIndex(y - HeaderHeight - b.Origin())
	return b.GlobalIndex(local), true
}

// resolveColAt maps a content x to a global column number.
func (e *Engine) resolveColAt(x float64) (int, bool) {
	b, ok := e.cols.BlockAt(x - HeaderWidth)
	if !ok {
		return 0, false
	}
	local := b.ResolveIndex(x - HeaderWidth - b.Origin())
	return b.GlobalIndex(local), true
}

// CurrentRowBlock maps a global row-block ID into the mounted window.
func (e *Engine) CurrentRowBlock(globalID int) (*Block, error) {
	return e.rows.Block(globalID)
}

// CurrentColumnBlock maps a global column-block ID into the mounted window.
func (e *Engine) CurrentColumnBlock(globalID int) (*Block, error) {
	return e.cols.Block(globalID)
}

// Rows returns the row axis manager.
func (e *Engine) Rows() *Manager { return e.rows }

// Cols returns the column axis manager.
func (e *Engine) Cols() *Manager { return e.cols }

// AutoScroller returns the edge auto-scroll task for the host frame loop.
func (e *Engine) AutoScroller() *AutoScroller { return e.auto }

// ResizeState exposes the resize interaction state for cursor affordances.
func (e *Engine) ResizeState() ResizeState { return e.resize.State() }

// Selecting reports whether a drag-selection gesture is in flight.
func (e *Engine) Selecting() bool { return e.selects.dragging }

// Aligned asserts the lockstep invariant between the three windows.
func (e *Engine) Aligned() error { return e.tiles.Aligned() }

// ContentExtent returns the total mounted extent, the size the host
// should give its scrollable container.
func (e *Engine) ContentExtent() (w, h float64) {
	return HeaderWidth + e.cols.WindowEndPixel(), HeaderHeight + e.rows.WindowEndPixel()
}

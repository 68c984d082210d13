package grid

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/gridsheet/internal/core/logging"
)

// TileGrid owns the two-dimensional window of mounted tiles mirroring the
// row and column managers. Every scroll of an axis manager must be
// followed by the matching tile operation in the same event handler; the
// windows advancing in lockstep is the safety-critical invariant of the
// whole engine, and Aligned exists so tests and coordinators can assert
// it cheaply.
type TileGrid struct {
	rows   *Manager
	cols   *Manager
	canvas Canvas
	theme  *Theme
	cells  CellReader
	sel    SelectionSource
	log    zerolog.Logger

	// tiles[i][j] pairs rows.window[i] with cols.window[j].
	tiles [][]*Tile
}

// NewTileGrid creates a tile grid over the two axis managers.
func NewTileGrid(rows, cols *Manager, canvas Canvas, theme *Theme, cells CellReader, sel SelectionSource) *TileGrid {
	return &TileGrid{
		rows:   rows,
		cols:   cols,
		canvas: canvas,
		theme:  theme,
		cells:  cells,
		sel:    sel,
		log:    logging.Component("grid.tiles"),
	}
}

// MountInitial discards all tiles and rebuilds the full 2D window from
// the managers' current windows. Both managers must be mounted first.
func (g *TileGrid) MountInitial() {
	for _, row := range g.tiles {
		for _, t := range row {
			g.canvas.Release(t.surface)
		}
	}
	g.tiles = g.tiles[:0]

	sel := g.sel.Selection()
	for i := 0; i < g.rows.VisibleCount(); i++ {
		rb := g.rows.window[i]
		row := make([]*Tile, 0, g.cols.VisibleCount())
		for j := 0; j < g.cols.VisibleCount(); j++ {
			t := g.mountTile(rb, g.cols.window[j])
			t.DrawGrid(sel)
			row = append(row, t)
		}
		g.tiles = append(g.tiles, row)
	}
}

// ScrollDown mirrors a rows.ScrollForward: the top tile row is unmounted
// and a new bottom row is mounted against the rows manager's new trailing
// block. Call immediately after the axis scroll succeeded.
func (g *TileGrid) ScrollDown() {
	for _, t := range g.tiles[0] {
		g.canvas.Release(t.surface)
	}
	g.tiles = g.tiles[1:]
	g.tiles = append(g.tiles, g.mountTileRow(g.rows.Last()))
}

// ScrollUp mirrors a rows.ScrollBackward.
func (g *TileGrid) ScrollUp() {
	last := len(g.tiles) - 1
	for _, t := range g.tiles[last] {
		g.canvas.Release(t.surface)
	}
	g.tiles = g.tiles[:last]
	g.tiles = append([][]*Tile{g.mountTileRow(g.rows.First())}, g.tiles...)
}

// ScrollRight mirrors a cols.ScrollForward: the leftmost tile column is
// unmounted and a new rightmost column mounted.
func (g *TileGrid) ScrollRight() {
	cb := g.cols.Last()
	sel := g.sel.Selection()
	for i, row := range g.tiles {
		g.canvas.Release(row[0].surface)
		t := g.mountTile(g.rows.window[i], cb)
		t.DrawGrid(sel)
		g.tiles[i] = append(row[1:], t)
	}
}

// ScrollLeft mirrors a cols.ScrollBackward.
func (g *TileGrid) ScrollLeft() {
	cb := g.cols.First()
	sel := g.sel.Selection()
	for i, row := range g.tiles {
		last := len(row) - 1
		g.canvas.Release(row[last].surface)
		t := g.mountTile(g.rows.window[i], cb)
		t.DrawGrid(sel)
		g.tiles[i] = append([]*Tile{t}, row[:last]...)
	}
}

// RedrawRow repaints only the tiles borrowing the given row block,
// the targeted path after a row resize.
func (g *TileGrid) RedrawRow(globalRowID int) error {
	idx := globalRowID - g.rows.StartIndex()
	if idx < 0 || idx >= len(g.tiles) {
		return g.desync("row", globalRowID)
	}
	sel := g.sel.Selection()
	for _, t := range g.tiles[idx] {
		g.canvas.Place(t.surface, t.Bounds())
		t.DrawGrid(sel)
	}
	// Rows below the resized block shift; re-place their surfaces.
	g.placeFrom(idx + 1)
	return nil
}

// RedrawColumn repaints only the tiles borrowing the given column block.
func (g *TileGrid) RedrawColumn(globalColID int) error {
	idx := globalColID - g.cols.StartIndex()
	if idx < 0 || (len(g.tiles) > 0 && idx >= len(g.tiles[0])) {
		return g.desync("column", globalColID)
	}
	sel := g.sel.Selection()
	for _, row := range g.tiles {
		t := row[idx]
		g.canvas.Place(t.surface, t.Bounds())
		t.DrawGrid(sel)
	}
	g.placeFrom(0)
	return nil
}

// RedrawAll repaints every mounted tile, used after a selection change.
func (g *TileGrid) RedrawAll() {
	sel := g.sel.Selection()
	for _, row := range g.tiles {
		for _, t := range row {
			t.DrawGrid(sel)
		}
	}
}

// Realign re-places every tile at its current absolute bounds. Used after
// the scroll coordinator resets the leading-edge margin.
func (g *TileGrid) Realign() {
	g.placeFrom(0)
}

// Aligned verifies the tile window mirrors both axis windows. A failure
// is the drift bug the engine exists to prevent; it is logged and
// returned, and callers should treat it as fatal.
func (g *TileGrid) Aligned() error {
	if len(g.tiles) != g.rows.VisibleCount() {
		return g.desync("row-count", len(g.tiles))
	}
	for i, row := range g.tiles {
		if len(row) != g.cols.VisibleCount() {
			return g.desync("col-count", len(row))
		}
		for j, t := range row {
			if t.RowBlockID() != g.rows.window[i].ID || t.ColBlockID() != g.cols.window[j].ID {
				return g.desync("tile", t.RowBlockID()*10000+t.ColBlockID())
			}
		}
	}
	return nil
}

// mountTileRow mounts and draws a full row of tiles for a row block.
func (g *TileGrid) mountTileRow(rb *Block) []*Tile {
	sel := g.sel.Selection()
	row := make([]*Tile, 0, g.cols.VisibleCount())
	for j := 0; j < g.cols.VisibleCount(); j++ {
		t := g.mountTile(rb, g.cols.window[j])
		t.DrawGrid(sel)
		row = append(row, t)
	}
	return row
}

// mountTile allocates a surface at the tile's absolute bounds.
func (g *TileGrid) mountTile(rb, cb *Block) *Tile {
	t := NewTile(rb, cb, g.theme, g.cells, nil)
	t.surface = g.canvas.Allocate(t.Bounds())
	return t
}

// placeFrom re-places tile surfaces for tile rows idx.. at their current
// absolute bounds.
func (g *TileGrid) placeFrom(idx int) {
	for i := idx; i < len(g.tiles); i++ {
		for _, t := range g.tiles[i] {
			g.canvas.Place(t.surface, t.Bounds())
		}
	}
}

func (g *TileGrid) desync(kind string, id int) error {
	err := fmt.Errorf("%w: %s %d, rows start %d, cols start %d",
		ErrWindowMisaligned, kind, id, g.rows.StartIndex(), g.cols.StartIndex())
	g.log.Error().Err(err).Msg("tile window desync")
	return err
}

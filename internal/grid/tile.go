package grid

// CellReader is the read side of the external cell value store. The grid
// only ever reads values to paint them; writes go through the host.
type CellReader interface {
	CellValue(row, col int) string
}

// Tile is a BlockSize x BlockSize cell-group surface. It borrows (never
// owns) one row block's and one column block's position arrays; the
// blocks stay owned by their axis managers and a tile must be discarded
// before either block unmounts.
type Tile struct {
	rowBlock *Block
	colBlock *Block
	theme    *Theme
	cells    CellReader
	surface  Surface
}

// NewTile creates a tile over the given blocks drawing onto surface.
func NewTile(rowBlock, colBlock *Block, theme *Theme, cells CellReader, surface Surface) *Tile {
	return &Tile{
		rowBlock: rowBlock,
		colBlock: colBlock,
		theme:    theme,
		cells:    cells,
		surface:  surface,
	}
}

// RowBlockID returns the global ID of the borrowed row block.
func (t *Tile) RowBlockID() int { return t.rowBlock.ID }

// ColBlockID returns the global ID of the borrowed column block.
func (t *Tile) ColBlockID() int { return t.colBlock.ID }

// Bounds returns the tile's absolute content bounds.
func (t *Tile) Bounds() Rect {
	return Rect{
		X: HeaderWidth + t.colBlock.origin,
		Y: HeaderHeight + t.rowBlock.origin,
		W: t.colBlock.Extent(),
		H: t.rowBlock.Extent(),
	}
}

// DrawGrid repaints the tile: background, gridlines, cell values, then
// the selection overlay. The borrowed position arrays are read after any
// resize recomputation has completed; the single-threaded event model
// guarantees no interleaving, callers guarantee the order.
func (t *Tile) DrawGrid(sel Selection) {
	s := t.surface
	s.Clear()
	s.FillRect(0, 0, t.colBlock.Extent(), t.rowBlock.Extent(), t.theme.Background)

	for i := 0; i < BlockSize; i++ {
		for j := 0; j < BlockSize; j++ {
			x := t.colBlock.Top(j)
			y := t.rowBlock.Top(i)
			w := t.colBlock.SizeAt(j)
			h := t.rowBlock.SizeAt(i)
			s.StrokeRect(x, y, w, h, t.theme.Gridline, gridlineWidth)
			t.drawValue(i, j, x, y, w, h)
		}
	}

	t.renderSelection(sel)
}

// drawValue paints the stored cell value, clipped to the cell width.
func (t *Tile) drawValue(i, j int, x, y, w, h float64) {
	if t.cells == nil {
		return
	}
	row := t.rowBlock.GlobalIndex(i)
	col := t.colBlock.GlobalIndex(j)
	text := t.cells.CellValue(row, col)
	if text == "" {
		return
	}
	for len(text) > 1 && t.surface.MeasureText(text) > w {
		text = text[:len(text)-1]
	}
	t.surface.DrawText(x+2, y+h/2, text, t.theme.CellText)
}

// renderSelection overlays the selection highlight. The fill covers the
// intersection of the selection rectangle with this tile; border segments
// are drawn only on intersection edges, heavy where the edge coincides
// with the true selection boundary and light where the selection
// continues into a neighboring tile. The anchor cell is cleared back to
// unselected so the active-edit cell never shows the fill.
func (t *Tile) renderSelection(sel Selection) {
	rowLo, rowHi, ok := sel.IntersectRows(t.rowBlock.FirstIndex(), t.rowBlock.LastIndex())
	if !ok {
		return
	}
	colLo, colHi, ok := sel.IntersectCols(t.colBlock.FirstIndex(), t.colBlock.LastIndex())
	if !ok {
		return
	}

	top := t.rowBlock.Top(rowLo - t.rowBlock.FirstIndex())
	bottom := t.rowBlock.Position(rowHi - t.rowBlock.FirstIndex())
	left := t.colBlock.Top(colLo - t.colBlock.FirstIndex())
	right := t.colBlock.Position(colHi - t.colBlock.FirstIndex())

	s := t.surface
	s.FillRect(left, top, right-left, bottom-top, t.theme.SelectionFill)

	selRowLo, selRowHi := sel.RowSpan()
	selColLo, selColHi := sel.ColSpan()

	t.edge(left, top, right-left, 0, rowLo == selRowLo)    // top
	t.edge(left, bottom, right-left, 0, rowHi == selRowHi) // bottom
	t.edge(left, top, 0, bottom-top, colLo == selColLo)    // left
	t.edge(right, top, 0, bottom-top, colHi == selColHi)   // right

	t.clearAnchor(sel, rowLo, rowHi, colLo, colHi)
}

// edge draws one border segment of the intersection rectangle. boundary
// selects the heavy true-boundary treatment over the light interior one.
func (t *Tile) edge(x, y, w, h float64, boundary bool) {
	c := t.theme.InteriorBorder
	lw := interiorBorderWidth
	if boundary {
		c = t.theme.BoundaryBorder
		lw = boundaryBorderWidth
	}
	t.surface.StrokeRect(x, y, w, h, c, lw)
}

// clearAnchor repaints the anchor cell's interior as unselected when it
// falls inside this tile's intersection.
func (t *Tile) clearAnchor(sel Selection, rowLo, rowHi, colLo, colHi int) {
	ar, ac := sel.Anchor()
	if ar < rowLo || ar > rowHi || ac < colLo || ac > colHi {
		return
	}
	i := ar - t.rowBlock.FirstIndex()
	j := ac - t.colBlock.FirstIndex()
	x := t.colBlock.Top(j)
	y := t.rowBlock.Top(i)
	w := t.colBlock.SizeAt(j)
	h := t.rowBlock.SizeAt(i)
	t.surface.FillRect(x, y, w, h, t.theme.Background)
	t.surface.StrokeRect(x, y, w, h, t.theme.Gridline, gridlineWidth)
	t.drawValue(i, j, x, y, w, h)
}

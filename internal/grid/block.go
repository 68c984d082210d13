package grid

// BoundaryTolerance is the pixel band around a position boundary inside
// which HitTestBoundary reports a hit. Five pixels on either side is wide
// enough to grab with a pointer and narrower than half the minimum size,
// so at most one boundary can match.
const BoundaryTolerance = 5.0

// Block owns BlockSize consecutive global indices on one axis and the
// cumulative position array derived from the override map. Blocks hold no
// state that outlives a mount: everything is reconstructible from
// (ID, overrides, defaults), so unmounting never loses information.
type Block struct {
	// ID is the 0-based block number. The block owns global indices
	// [ID*BlockSize+1, ID*BlockSize+BlockSize].
	ID int

	axis  *Axis
	theme *Theme

	// positions[i] is the cumulative extent of the block's first i+1
	// indices. Strictly increasing; positions[BlockSize-1] is the total
	// block extent.
	positions [BlockSize]float64

	// origin is the absolute content-pixel offset of the block's leading
	// edge along its axis. Maintained by the owning manager.
	origin float64

	surface Surface // header strip; nil for blocks built outside a window
}

// NewBlock constructs a block and computes its position array.
func NewBlock(id int, axis *Axis, theme *Theme) *Block {
	b := &Block{ID: id, axis: axis, theme: theme}
	b.ComputePositions()
	return b
}

// FirstIndex returns the first global 1-based index the block owns.
func (b *Block) FirstIndex() int { return b.ID*BlockSize + 1 }

// LastIndex returns the last global 1-based index the block owns.
func (b *Block) LastIndex() int { return b.ID*BlockSize + BlockSize }

// GlobalIndex converts a local index (0..BlockSize-1) to the global
// 1-based index.
func (b *Block) GlobalIndex(local int) int { return b.FirstIndex() + local }

// Origin returns the absolute content offset of the block's leading edge.
func (b *Block) Origin() float64 { return b.origin }

// Extent returns the total pixel extent of the block.
func (b *Block) Extent() float64 { return b.positions[BlockSize-1] }

// Position returns the cumulative offset of local index i: the trailing
// boundary of that index within the block.
func (b *Block) Position(i int) float64 { return b.positions[i] }

// Top returns the leading boundary of local index i within the block.
func (b *Block) Top(i int) float64 {
	if i == 0 {
		return 0
	}
	return b.positions[i-1]
}

// SizeAt returns the effective size of local index i.
func (b *Block) SizeAt(i int) float64 {
	return b.positions[i] - b.Top(i)
}

// ComputePositions rebuilds the cumulative position array from the
// override map and the default size. Deterministic, O(BlockSize).
func (b *Block) ComputePositions() {
	var sum float64
	first := b.FirstIndex()
	for i := 0; i < BlockSize; i++ {
		sum += b.axis.Size(first + i)
		b.positions[i] = sum
	}
}

// HitTestBoundary searches for a position boundary within
// BoundaryTolerance of offset and returns its local index. This is the
// exact-match band search used for resize affordances; it is a different
// algorithm from ResolveIndex and the two must not be merged. Because
// positions are strictly increasing by at least the minimum size, at most
// one boundary satisfies the band, so the first satisfying midpoint is
// the answer.
func (b *Block) HitTestBoundary(offset float64) (int, bool) {
	lo, hi := 0, BlockSize-1
	for lo <= hi {
		mid := (lo + hi) / 2
		p := b.positions[mid]
		switch {
		case offset > p+BoundaryTolerance:
			lo = mid + 1
		case offset < p-BoundaryTolerance:
			hi = mid - 1
		default:
			return mid, true
		}
	}
	return 0, false
}

// ResolveIndex returns the smallest local index whose trailing boundary
// is at or beyond offset: the inclusive-upper-bound search used for
// coordinate-to-cell resolution. Offsets beyond the last boundary
// saturate to BlockSize-1.
func (b *Block) ResolveIndex(offset float64) int {
	lo, hi := 0, BlockSize-1
	for lo < hi {
		mid := (lo + hi) / 2
		if b.positions[mid] >= offset {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// ApplyResize sets an explicit size for local index i, clamped to the
// axis limits, and rebuilds the position array. Setting the default size
// removes the override entry. Returns the size actually applied. Redraw
// of dependent surfaces is the caller's responsibility and must happen
// after this returns, never interleaved.
func (b *Block) ApplyResize(i int, size float64) float64 {
	applied := b.axis.Clamp(size)
	b.axis.Overrides.Set(b.GlobalIndex(i), applied)
	b.ComputePositions()
	return applied
}

// DrawHeader repaints the block's header strip: one labeled cell per
// owned index, highlighted when the selection covers it.
func (b *Block) DrawHeader(sel Selection) {
	if b.surface == nil {
		return
	}
	s := b.surface
	s.Clear()

	across := HeaderWidth
	if b.axis.Orientation == Columns {
		across = HeaderHeight
	}

	for i := 0; i < BlockSize; i++ {
		top := b.Top(i)
		size := b.SizeAt(i)
		global := b.GlobalIndex(i)

		fill := b.theme.HeaderFill
		if b.headerActive(sel, global) {
			fill = b.theme.HeaderActive
		}

		if b.axis.Orientation == Rows {
			s.FillRect(0, top, across, size, fill)
			s.StrokeRect(0, top, across, size, b.theme.Gridline, gridlineWidth)
			b.drawHeaderLabel(s, 0, top, across, size, global)
		} else {
			s.FillRect(top, 0, size, across, fill)
			s.StrokeRect(top, 0, size, across, b.theme.Gridline, gridlineWidth)
			b.drawHeaderLabel(s, top, 0, size, across, global)
		}
	}
}

// headerActive reports whether the header cell for a global index should
// render highlighted for the given selection.
func (b *Block) headerActive(sel Selection, global int) bool {
	if b.axis.Orientation == Rows {
		return sel.ContainsRow(global)
	}
	return sel.ContainsCol(global)
}

// drawHeaderLabel centers the index label inside a header cell.
func (b *Block) drawHeaderLabel(s Surface, x, y, w, h float64, global int) {
	label := b.axis.Label(global)
	tw := s.MeasureText(label)
	s.DrawText(x+(w-tw)/2, y+h/2, label, b.theme.HeaderText)
}

package grid

// Selection is the shared start/end row/column record that drives
// highlight rendering. Either endpoint of a pair may be the numerically
// larger one: the start is the anchor cell of the gesture, the end is
// wherever the pointer (or shift-navigation) currently is. A column span
// of [1, TotalColumns] encodes whole-row selection; a row span of
// [1, TotalRows] encodes whole-column selection.
//
// The engine is the single writer. Every redraw path receives a Selection
// by value, so readers always see one consistent snapshot per event.
type Selection struct {
	StartRow int
	EndRow   int
	StartCol int
	EndCol   int
}

// CellSelection returns a one-cell selection anchored at (row, col).
func CellSelection(row, col int) Selection {
	return Selection{StartRow: row, EndRow: row, StartCol: col, EndCol: col}
}

// RowSelection returns a whole-row selection spanning rows lo..hi.
func RowSelection(lo, hi int) Selection {
	return Selection{StartRow: lo, EndRow: hi, StartCol: 1, EndCol: TotalColumns}
}

// ColumnSelection returns a whole-column selection spanning cols lo..hi.
func ColumnSelection(lo, hi int) Selection {
	return Selection{StartRow: 1, EndRow: TotalRows, StartCol: lo, EndCol: hi}
}

// Anchor returns the active-edit cell: the gesture's starting endpoint,
// regardless of drag direction.
func (s Selection) Anchor() (row, col int) {
	return s.StartRow, s.StartCol
}

// RowSpan returns the row range in ascending order.
func (s Selection) RowSpan() (lo, hi int) {
	return order(s.StartRow, s.EndRow)
}

// ColSpan returns the column range in ascending order.
func (s Selection) ColSpan() (lo, hi int) {
	return order(s.StartCol, s.EndCol)
}

// WholeRows reports whether the selection covers entire rows.
func (s Selection) WholeRows() bool {
	lo, hi := s.ColSpan()
	return lo == 1 && hi == TotalColumns
}

// WholeColumns reports whether the selection covers entire columns.
func (s Selection) WholeColumns() bool {
	lo, hi := s.RowSpan()
	return lo == 1 && hi == TotalRows
}

// IntersectRows clips the selection's row span to lo..hi. ok is false
// when the spans are disjoint.
func (s Selection) IntersectRows(lo, hi int) (int, int, bool) {
	slo, shi := s.RowSpan()
	return intersect(slo, shi, lo, hi)
}

// IntersectCols clips the selection's column span to lo..hi.
func (s Selection) IntersectCols(lo, hi int) (int, int, bool) {
	slo, shi := s.ColSpan()
	return intersect(slo, shi, lo, hi)
}

// ContainsRow reports whether the row span includes row.
func (s Selection) ContainsRow(row int) bool {
	lo, hi := s.RowSpan()
	return lo <= row && row <= hi
}

// ContainsCol reports whether the column span includes col.
func (s Selection) ContainsCol(col int) bool {
	lo, hi := s.ColSpan()
	return lo <= col && col <= hi
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func intersect(alo, ahi, blo, bhi int) (int, int, bool) {
	lo := max(alo, blo)
	hi := min(ahi, bhi)
	if lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}

// SelectionSource exposes the engine's current selection to components
// that redraw outside an explicit redraw call (block mounts during a
// scroll, for instance). There is exactly one writer behind it.
type SelectionSource interface {
	Selection() Selection
}

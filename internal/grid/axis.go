package grid

import "strconv"

// Orientation selects the row or the column axis.
type Orientation int

// The two axis orientations.
const (
	Rows Orientation = iota
	Columns
)

// String returns the lowercase name of the orientation.
func (o Orientation) String() string {
	if o == Rows {
		return "rows"
	}
	return "columns"
}

// Grid dimensions and header geometry, in content pixels.
const (
	// BlockSize is the number of consecutive indices one block owns.
	BlockSize = 25

	// TotalRows and TotalColumns bound the logical surface.
	TotalRows    = 1_000_000
	TotalColumns = 1_000

	// HeaderWidth is the width of the row-number strip on the left.
	// HeaderHeight is the height of the column-letter strip on top.
	// The cell area begins at (HeaderWidth, HeaderHeight).
	HeaderWidth  = 50.0
	HeaderHeight = 25.0
)

// Defaults holds the fixed geometry of one axis direction.
type Defaults struct {
	Size  float64 // size applied to every index without an override
	Min   float64 // ApplyResize clamps below this
	Max   float64 // ApplyResize clamps above this
	Count int     // total number of indices on the axis
}

// Clamp bounds a requested size to the axis limits.
func (d Defaults) Clamp(size float64) float64 {
	if size < d.Min {
		return d.Min
	}
	if size > d.Max {
		return d.Max
	}
	return size
}

// RowDefaults returns the row axis geometry.
func RowDefaults() Defaults {
	return Defaults{Size: 25, Min: 25, Max: 500, Count: TotalRows}
}

// ColumnDefaults returns the column axis geometry.
func ColumnDefaults() Defaults {
	return Defaults{Size: 100, Min: 50, Max: 500, Count: TotalColumns}
}

// Axis bundles one direction's geometry with its size overrides. Both the
// row and column managers, and every block they mount, share one Axis
// value per direction.
type Axis struct {
	Orientation Orientation
	Defaults    Defaults
	Overrides   *OverrideMap
}

// NewAxis creates an axis with an empty override map.
func NewAxis(o Orientation, d Defaults) *Axis {
	return &Axis{
		Orientation: o,
		Defaults:    d,
		Overrides:   NewOverrideMap(d.Size),
	}
}

// Size returns the effective pixel size of a global 1-based index.
func (a *Axis) Size(index int) float64 {
	return a.Overrides.Size(index)
}

// BlockCount returns the number of blocks the axis partitions into.
func (a *Axis) BlockCount() int {
	return (a.Defaults.Count + BlockSize - 1) / BlockSize
}

// Clamp bounds a requested size to the axis limits.
func (a *Axis) Clamp(size float64) float64 {
	return a.Defaults.Clamp(size)
}

// Label renders the header label for a global 1-based index: the number
// itself for rows, spreadsheet letters (A, B, ..., Z, AA, ...) for columns.
func (a *Axis) Label(index int) string {
	if a.Orientation == Rows {
		return strconv.Itoa(index)
	}
	return columnLabel(index)
}

// columnLabel converts a 1-based column number to spreadsheet letters.
func columnLabel(n int) string {
	b := make([]byte, 0, 3)
	for n > 0 {
		n--
		b = append(b, byte('A'+n%26))
		n /= 26
	}
	// Letters come out least significant first; reverse.
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

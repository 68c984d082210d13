package grid

import "image/color"

// Theme carries the colors the grid paints with. The engine receives one
// at construction; the styles package derives it from the active palette
// so the core stays free of any terminal styling dependency.
type Theme struct {
	Background     color.Color // cell interior, also used to clear the anchor cell
	Gridline       color.Color // 25x25 tile gridlines
	CellText       color.Color
	HeaderFill     color.Color // header strip background
	HeaderActive   color.Color // header cell covered by the selection
	HeaderText     color.Color
	SelectionFill  color.Color // highlight fill inside the selection
	BoundaryBorder color.Color // heavy border on true selection edges
	InteriorBorder color.Color // light border where a tile edge cuts the selection
}

// Border widths for the selection overlay.
const (
	boundaryBorderWidth = 2.0
	interiorBorderWidth = 1.0
	gridlineWidth       = 1.0
)

// Gray returns an opaque gray, a convenience for tests and defaults.
func Gray(v uint8) color.Color {
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}

// DefaultTheme returns a plain monochrome theme. The TUI replaces it with
// palette-derived colors; tests mostly care that distinct roles stay
// distinguishable.
func DefaultTheme() Theme {
	return Theme{
		Background:     Gray(0x10),
		Gridline:       Gray(0x30),
		CellText:       Gray(0xd0),
		HeaderFill:     Gray(0x20),
		HeaderActive:   Gray(0x40),
		HeaderText:     Gray(0xb0),
		SelectionFill:  Gray(0x50),
		BoundaryBorder: Gray(0xf0),
		InteriorBorder: Gray(0x70),
	}
}

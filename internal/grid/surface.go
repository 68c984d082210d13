package grid

import "image/color"

// Rect is an axis-aligned rectangle in content pixel space.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Surface is the minimal drawing target a block or tile paints onto.
// Coordinates are local to the surface; (0,0) is its top-left corner.
// Implementations decide how pixels map onto the real output device.
type Surface interface {
	Clear()
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h float64, c color.Color, width float64)
	DrawText(x, y float64, text string, c color.Color)
	MeasureText(text string) float64
}

// Canvas hands out surfaces positioned at absolute content coordinates.
// Blocks and tiles acquire a surface on mount and release it on unmount;
// re-parenting after a scroll is a Place call with new absolute bounds,
// never a relative adjustment, so surfaces stay addressable regardless of
// scroll history.
type Canvas interface {
	// Allocate mounts a new surface covering bounds.
	Allocate(bounds Rect) Surface
	// Place moves an existing surface to new absolute bounds.
	Place(s Surface, bounds Rect)
	// Release unmounts a surface. The surface must not be used afterwards.
	Release(s Surface)
	// Viewport returns the currently visible rectangle in content
	// coordinates, including any scroll offset applied by the host.
	Viewport() Rect
}

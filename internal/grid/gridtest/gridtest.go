// Package gridtest provides recording fakes for the grid's drawing
// abstraction so the windowing and indexing logic is testable without a
// real rendering backend.
package gridtest

import (
	"image/color"
	"sync/atomic"

	"github.com/colonyops/gridsheet/internal/grid"
)

// OpKind identifies one recorded drawing operation.
type OpKind string

// Recorded operation kinds.
const (
	OpClear  OpKind = "clear"
	OpFill   OpKind = "fill"
	OpStroke OpKind = "stroke"
	OpText   OpKind = "text"
)

// Op is one recorded drawing call.
type Op struct {
	Kind  OpKind
	X, Y  float64
	W, H  float64
	Text  string
	Color color.Color
	Width float64
}

var surfaceSeq atomic.Int64

// Surface records every drawing call made against it.
type Surface struct {
	ID     int64
	Ops    []Op
	Clears int
}

var _ grid.Surface = (*Surface)(nil)

// NewSurface creates a standalone recording surface.
func NewSurface() *Surface {
	return &Surface{ID: surfaceSeq.Add(1)}
}

// Clear implements grid.Surface. It drops previously recorded ops,
// mirroring a real surface starting a fresh frame, and counts the call.
func (s *Surface) Clear() {
	s.Ops = s.Ops[:0]
	s.Clears++
}

// FillRect implements grid.Surface.
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	s.Ops = append(s.Ops, Op{Kind: OpFill, X: x, Y: y, W: w, H: h, Color: c})
}

// StrokeRect implements grid.Surface.
func (s *Surface) StrokeRect(x, y, w, h float64, c color.Color, width float64) {
	s.Ops = append(s.Ops, Op{Kind: OpStroke, X: x, Y: y, W: w, H: h, Color: c, Width: width})
}

// DrawText implements grid.Surface.
func (s *Surface) DrawText(x, y float64, text string, c color.Color) {
	s.Ops = append(s.Ops, Op{Kind: OpText, X: x, Y: y, Text: text, Color: c})
}

// MeasureText implements grid.Surface with a fixed 8px per byte.
func (s *Surface) MeasureText(text string) float64 {
	return float64(len(text)) * 8
}

// Fills returns the recorded fill ops.
func (s *Surface) Fills() []Op { return s.byKind(OpFill) }

// Strokes returns the recorded stroke ops.
func (s *Surface) Strokes() []Op { return s.byKind(OpStroke) }

// Texts returns the recorded text ops.
func (s *Surface) Texts() []Op { return s.byKind(OpText) }

func (s *Surface) byKind(k OpKind) []Op {
	var out []Op
	for _, op := range s.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

// Canvas is a recording grid.Canvas. It tracks which surfaces are
// mounted, their absolute bounds, and every allocate/place/release, and
// reports a configurable viewport.
type Canvas struct {
	View grid.Rect

	Allocated int
	Released  int
	Placed    int

	bounds map[*Surface]grid.Rect
}

var _ grid.Canvas = (*Canvas)(nil)

// NewCanvas creates a canvas with the given visible rectangle.
func NewCanvas(view grid.Rect) *Canvas {
	return &Canvas{
		View:   view,
		bounds: make(map[*Surface]grid.Rect),
	}
}

// Allocate implements grid.Canvas.
func (c *Canvas) Allocate(bounds grid.Rect) grid.Surface {
	s := NewSurface()
	c.bounds[s] = bounds
	c.Allocated++
	return s
}

// Place implements grid.Canvas.
func (c *Canvas) Place(s grid.Surface, bounds grid.Rect) {
	c.bounds[s.(*Surface)] = bounds
	c.Placed++
}

// Release implements grid.Canvas.
func (c *Canvas) Release(s grid.Surface) {
	delete(c.bounds, s.(*Surface))
	c.Released++
}

// Viewport implements grid.Canvas.
func (c *Canvas) Viewport() grid.Rect { return c.View }

// Mounted returns the number of currently mounted surfaces.
func (c *Canvas) Mounted() int { return len(c.bounds) }

// BoundsOf returns the absolute bounds of a mounted surface.
func (c *Canvas) BoundsOf(s grid.Surface) (grid.Rect, bool) {
	r, ok := c.bounds[s.(*Surface)]
	return r, ok
}

// Surfaces returns every currently mounted surface, in no particular
// order.
func (c *Canvas) Surfaces() []*Surface {
	out := make([]*Surface, 0, len(c.bounds))
	for s := range c.bounds {
		out = append(out, s)
	}
	return out
}

// Scroll moves the viewport to an absolute offset, mimicking a host
// scroll. Returns the new offsets for feeding into Engine.OnScroll.
func (c *Canvas) Scroll(x, y float64) (float64, float64) {
	c.View.X = x
	c.View.Y = y
	return x, y
}

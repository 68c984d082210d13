package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/gridsheet/internal/core/history"
	"github.com/colonyops/gridsheet/internal/grid"
	"github.com/colonyops/gridsheet/internal/grid/gridtest"
)

type statsSpy struct {
	calls int
}

func (s *statsSpy) RecomputeForSelection() { s.calls++ }

type engineFixture struct {
	engine *grid.Engine
	canvas *gridtest.Canvas
	stack  *history.Stack
	stats  *statsSpy
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	canvas := gridtest.NewCanvas(grid.Rect{W: 1200, H: 800})
	stack := history.NewStack()
	stats := &statsSpy{}
	var eng *grid.Engine
	e := grid.New(canvas, grid.Config{
		VisibleRowBlocks: 3,
		VisibleColBlocks: 2,
		Theme:            grid.DefaultTheme(),
		Cells:            mapCells{},
		History:          stack,
		Stats:            stats,
		Nudge: func(dx, dy float64) {
			x, y := canvas.Scroll(canvas.View.X+dx, canvas.View.Y+dy)
			if eng != nil {
				eng.OnScroll(x, y)
			}
		},
	})
	eng = e
	return &engineFixture{engine: e, canvas: canvas, stack: stack, stats: stats}
}

func TestEngine_New_MountsAllWindows(t *testing.T) {
	f := newEngineFixture(t)

	// 3 row headers + 2 column headers + 6 tiles.
	assert.Equal(t, 11, f.canvas.Mounted())
	require.NoError(t, f.engine.Aligned())
	assert.Equal(t, grid.CellSelection(1, 1), f.engine.Selection())
}

func TestEngine_ResolveCellAt(t *testing.T) {
	f := newEngineFixture(t)

	tests := []struct {
		name    string
		x, y    float64
		row     int
		col     int
		ok      bool
	}{
		{name: "first cell", x: 60, y: 30, row: 1, col: 1, ok: true},
		{name: "row 6 col 2", x: 200, y: 155, row: 6, col: 2, ok: true},
		{name: "inside row header", x: 49, y: 100, ok: false},
		{name: "inside column header", x: 100, y: 24, ok: false},
		{name: "corner chrome", x: 10, y: 10, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := f.engine.ResolveCellAt(tt.x, tt.y)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.row, row)
				assert.Equal(t, tt.col, col)
			}
		})
	}
}

func TestEngine_ScrollMethods_StayAligned(t *testing.T) {
	f := newEngineFixture(t)

	for i := 0; i < 3; i++ {
		require.True(t, f.engine.ScrollDown())
	}
	assert.Equal(t, 3, f.engine.Rows().StartIndex())
	require.NoError(t, f.engine.Aligned())

	b, err := f.engine.CurrentRowBlock(3)
	require.NoError(t, err)
	assert.Equal(t, 76, b.FirstIndex())

	_, err = f.engine.CurrentRowBlock(0)
	require.ErrorIs(t, err, grid.ErrBlockNotMounted)

	require.True(t, f.engine.ScrollRight())
	assert.Equal(t, 1, f.engine.Cols().StartIndex())
	require.NoError(t, f.engine.Aligned())

	require.True(t, f.engine.ScrollLeft())
	for i := 0; i < 3; i++ {
		require.True(t, f.engine.ScrollUp())
	}
	assert.False(t, f.engine.ScrollUp(), "already at the top")
	require.NoError(t, f.engine.Aligned())
}

func TestEngine_OnScroll_TracksViewport(t *testing.T) {
	f := newEngineFixture(t)

	f.engine.OnScroll(f.canvas.Scroll(0, 700))
	assert.Equal(t, 1, f.engine.Rows().StartIndex())
	require.NoError(t, f.engine.Aligned())

	f.engine.OnScroll(f.canvas.Scroll(0, 0))
	assert.Equal(t, 0, f.engine.Rows().StartIndex())
	assert.InDelta(t, 0, f.engine.Rows().WindowStartPixel(), 1e-9)
}

func TestEngine_DragSelection(t *testing.T) {
	f := newEngineFixture(t)

	require.True(t, f.engine.PointerDown(60, 30))
	assert.True(t, f.engine.Selecting())
	assert.Equal(t, grid.CellSelection(1, 1), f.engine.Selection())

	f.engine.PointerMove(200, 155)
	assert.Equal(t, grid.Selection{StartRow: 1, EndRow: 6, StartCol: 1, EndCol: 2}, f.engine.Selection())

	f.engine.PointerUp(200, 155)
	assert.False(t, f.engine.Selecting())
	assert.Equal(t, 1, f.stats.calls, "stats recompute fires once per gesture")
}

// While a drag hugs the viewport's bottom edge, each auto-scroll frame
// must both nudge the viewport and extend the selection under the
// stationary pointer, without waiting for a real motion event.
func TestEngine_AutoScrollTickExtendsSelection(t *testing.T) {
	f := newEngineFixture(t)

	require.True(t, f.engine.PointerDown(60, 30))
	f.engine.PointerMove(100, 795) // inside the bottom edge band
	require.True(t, f.engine.AutoScroller().Arm())
	require.Equal(t, 31, f.engine.Selection().EndRow)

	require.True(t, f.engine.AutoScroller().Tick())
	assert.Equal(t, 32, f.engine.Selection().EndRow)
	assert.InDelta(t, grid.AutoScrollStep, f.canvas.View.Y, 1e-9)

	require.True(t, f.engine.AutoScroller().Tick())
	assert.Equal(t, 33, f.engine.Selection().EndRow)
	assert.InDelta(t, 2*grid.AutoScrollStep, f.canvas.View.Y, 1e-9)

	// Releasing ends the gesture; the next frame stops the loop.
	f.engine.PointerUp(100, 845)
	assert.False(t, f.engine.AutoScroller().Tick())
}

func TestEngine_HeaderClickSelectsWholeRow(t *testing.T) {
	f := newEngineFixture(t)

	// Row header strip, mid row 2, away from its boundaries.
	require.True(t, f.engine.PointerDown(10, 62))
	sel := f.engine.Selection()
	assert.True(t, sel.WholeRows())
	lo, hi := sel.RowSpan()
	assert.Equal(t, 2, lo)
	assert.Equal(t, 2, hi)

	f.engine.PointerMove(10, 140)
	f.engine.PointerUp(10, 140)
	lo, hi = f.engine.Selection().RowSpan()
	assert.Equal(t, 2, lo)
	assert.Equal(t, 5, hi)
	assert.True(t, f.engine.Selection().WholeRows())
}

func TestEngine_HeaderClickSelectsWholeColumn(t *testing.T) {
	f := newEngineFixture(t)

	require.True(t, f.engine.PointerDown(200, 10))
	assert.True(t, f.engine.Selection().WholeColumns())
	lo, hi := f.engine.Selection().ColSpan()
	assert.Equal(t, 2, lo)
	assert.Equal(t, 2, hi)
	f.engine.PointerUp(200, 10)
}

// A press within the boundary tolerance of a header edge must start a
// resize drag, never a selection: the resize handler runs first.
func TestEngine_ResizeWinsOverSelection(t *testing.T) {
	f := newEngineFixture(t)

	before := f.engine.Selection()
	require.True(t, f.engine.PointerDown(10, grid.HeaderHeight+25))

	assert.Equal(t, grid.ResizeDragging, f.engine.ResizeState())
	assert.False(t, f.engine.Selecting())
	assert.Equal(t, before, f.engine.Selection(), "selection untouched by a resize drag")

	f.engine.PointerMove(10, grid.HeaderHeight+90)
	f.engine.PointerUp(10, grid.HeaderHeight+90)
	assert.True(t, f.stack.CanUndo())
	assert.Equal(t, 0, f.stats.calls)
}

func TestEngine_CornerPressAbortsQuietly(t *testing.T) {
	f := newEngineFixture(t)

	assert.False(t, f.engine.PointerDown(10, 10))
	assert.False(t, f.engine.Selecting())

	// A release with no gesture in flight is a no-op.
	f.engine.PointerUp(10, 10)
	assert.Equal(t, 0, f.stats.calls)
}

func TestEngine_ContentExtent(t *testing.T) {
	f := newEngineFixture(t)

	w, h := f.engine.ContentExtent()
	// 2 column blocks x 2500px plus the row header strip.
	assert.InDelta(t, grid.HeaderWidth+5000, w, 1e-9)
	// 3 row blocks x 625px plus the column header strip.
	assert.InDelta(t, grid.HeaderHeight+1875, h, 1e-9)
}

func TestEngine_SetSelectionRepaintsEverything(t *testing.T) {
	f := newEngineFixture(t)

	surfaces := f.canvas.Surfaces()
	before := make(map[*gridtest.Surface]int, len(surfaces))
	for _, s := range surfaces {
		before[s] = s.Clears
	}

	f.engine.SetSelection(grid.RowSelection(3, 7))

	assert.Equal(t, grid.RowSelection(3, 7), f.engine.Selection())
	for _, s := range surfaces {
		assert.Greater(t, s.Clears, before[s], "every mounted surface repaints on selection change")
	}
}

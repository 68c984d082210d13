package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/gridsheet/internal/grid"
)

func newScrollFixture(t *testing.T) (*tileFixture, *grid.ScrollCoordinator) {
	t.Helper()
	f := newTileFixture(t, 3, 2)
	return f, grid.NewScrollCoordinator(f.rows, f.cols, f.tiles, f.canvas)
}

func TestScroll_AdvancesWhenLeadBlockLeaves(t *testing.T) {
	f, sc := newScrollFixture(t)

	// Row block 0 spans content y [25, 650): at offset 650 it still
	// touches the viewport edge, one tick past it is gone.
	sc.OnScroll(f.canvas.Scroll(0, 650))
	assert.Equal(t, 0, f.rows.StartIndex())

	sc.OnScroll(f.canvas.Scroll(0, 651))
	assert.Equal(t, 1, f.rows.StartIndex())
	require.NoError(t, f.tiles.Aligned())
}

func TestScroll_FastFlingAdvancesMultipleBlocks(t *testing.T) {
	f, sc := newScrollFixture(t)

	sc.OnScroll(f.canvas.Scroll(0, 2000))
	assert.Equal(t, 3, f.rows.StartIndex())
	require.NoError(t, f.tiles.Aligned())
}

func TestScroll_RetreatsOnScrollUp(t *testing.T) {
	f, sc := newScrollFixture(t)

	sc.OnScroll(f.canvas.Scroll(0, 2000))
	require.Equal(t, 3, f.rows.StartIndex())

	sc.OnScroll(f.canvas.Scroll(0, 100))
	assert.Equal(t, 0, f.rows.StartIndex())
	require.NoError(t, f.tiles.Aligned())
}

func TestScroll_Horizontal(t *testing.T) {
	f, sc := newScrollFixture(t)

	// Column block 0 spans content x [50, 2550).
	sc.OnScroll(f.canvas.Scroll(2600, 0))
	assert.Equal(t, 1, f.cols.StartIndex())
	assert.Equal(t, 0, f.rows.StartIndex())
	require.NoError(t, f.tiles.Aligned())

	sc.OnScroll(f.canvas.Scroll(100, 0))
	assert.Equal(t, 0, f.cols.StartIndex())
	require.NoError(t, f.tiles.Aligned())
}

// Returning to offset zero snaps the window back to block 0 and zeroes
// the leading margin, so drift cannot accumulate over many cycles.
func TestScroll_OriginSnapResetsMargin(t *testing.T) {
	f, sc := newScrollFixture(t)

	sc.OnScroll(f.canvas.Scroll(0, 2000))
	require.Equal(t, 3, f.rows.StartIndex())

	sc.OnScroll(f.canvas.Scroll(0, 0))
	assert.Equal(t, 0, f.rows.StartIndex())
	assert.InDelta(t, 0, f.rows.WindowStartPixel(), 1e-9)
	require.NoError(t, f.tiles.Aligned())
}

func TestScroll_DiagonalKeepsBothAxesAligned(t *testing.T) {
	f, sc := newScrollFixture(t)

	sc.OnScroll(f.canvas.Scroll(2600, 700))
	assert.Equal(t, 1, f.rows.StartIndex())
	assert.Equal(t, 1, f.cols.StartIndex())
	require.NoError(t, f.tiles.Aligned())

	sc.OnScroll(f.canvas.Scroll(0, 0))
	assert.Equal(t, 0, f.rows.StartIndex())
	assert.Equal(t, 0, f.cols.StartIndex())
	assert.InDelta(t, 0, f.cols.WindowStartPixel(), 1e-9)
	require.NoError(t, f.tiles.Aligned())
}

func TestScroll_RepeatedOffsetIsNoop(t *testing.T) {
	f, sc := newScrollFixture(t)

	sc.OnScroll(f.canvas.Scroll(0, 700))
	require.Equal(t, 1, f.rows.StartIndex())
	mounted := f.canvas.Mounted()

	sc.OnScroll(0, 700)
	assert.Equal(t, 1, f.rows.StartIndex())
	assert.Equal(t, mounted, f.canvas.Mounted())
}

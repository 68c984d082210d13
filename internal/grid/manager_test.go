package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/gridsheet/internal/grid"
	"github.com/colonyops/gridsheet/internal/grid/gridtest"
)

type stubSelection struct {
	sel grid.Selection
}

func (s *stubSelection) Selection() grid.Selection { return s.sel }

func newRowManager(t *testing.T, visible int) (*grid.Manager, *gridtest.Canvas) {
	t.Helper()
	canvas := gridtest.NewCanvas(grid.Rect{W: 1200, H: 800})
	theme := grid.DefaultTheme()
	axis := grid.NewAxis(grid.Rows, grid.RowDefaults())
	m := grid.NewManager(axis, canvas, &theme, &stubSelection{sel: grid.CellSelection(1, 1)}, visible)
	return m, canvas
}

func windowIDs(m *grid.Manager) []int {
	ids := make([]int, 0, m.VisibleCount())
	for id := m.StartIndex(); id <= m.Last().ID; id++ {
		ids = append(ids, id)
	}
	return ids
}

func TestManager_MountInitial(t *testing.T) {
	m, canvas := newRowManager(t, 10)
	m.MountInitial(0, 0)

	assert.Equal(t, 0, m.StartIndex())
	assert.Equal(t, 9, m.Last().ID)
	assert.Equal(t, 10, canvas.Mounted())
	assert.InDelta(t, 0, m.WindowStartPixel(), 1e-9)
	// 10 blocks x 25 rows x 25px default.
	assert.InDelta(t, 6250, m.WindowEndPixel(), 1e-9)
}

func TestManager_MountInitial_DiscardsPreviousWindow(t *testing.T) {
	m, canvas := newRowManager(t, 4)
	m.MountInitial(0, 0)
	m.MountInitial(7, 4375)

	assert.Equal(t, 7, m.StartIndex())
	assert.Equal(t, 4, canvas.Mounted(), "old surfaces must be released")
	assert.InDelta(t, 4375, m.WindowStartPixel(), 1e-9)
}

func TestManager_ScrollForward(t *testing.T) {
	m, canvas := newRowManager(t, 10)
	m.MountInitial(0, 0)

	// Three consecutive forward scrolls land the window at block 3.
	for i := 0; i < 3; i++ {
		require.True(t, m.ScrollForward())
	}

	assert.Equal(t, 3, m.StartIndex())
	assert.Equal(t, []int{3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, windowIDs(m))
	assert.Equal(t, 10, canvas.Mounted(), "window length is fixed")
	assert.InDelta(t, 3*625, m.WindowStartPixel(), 1e-9)
	assert.InDelta(t, 13*625, m.WindowEndPixel(), 1e-9)
}

func TestManager_ScrollBackward_AtOriginIsNoop(t *testing.T) {
	m, _ := newRowManager(t, 5)
	m.MountInitial(0, 0)

	assert.False(t, m.ScrollBackward())
	assert.Equal(t, 0, m.StartIndex())
}

func TestManager_ScrollForward_AtTerminalBlockIsNoop(t *testing.T) {
	canvas := gridtest.NewCanvas(grid.Rect{W: 1200, H: 800})
	theme := grid.DefaultTheme()
	// A short axis keeps the terminal block reachable: 100 columns = 4 blocks.
	axis := grid.NewAxis(grid.Columns, grid.Defaults{Size: 100, Min: 50, Max: 500, Count: 100})
	m := grid.NewManager(axis, canvas, &theme, &stubSelection{}, 3)
	m.MountInitial(0, 0)

	require.True(t, m.ScrollForward()) // window 1..3
	assert.False(t, m.ScrollForward(), "window already holds the terminal block")
	assert.Equal(t, 1, m.StartIndex())
}

// Scrolling forward then immediately backward restores the original
// window block IDs exactly, and vice versa.
func TestManager_ScrollRoundTrip(t *testing.T) {
	m, _ := newRowManager(t, 6)
	m.MountInitial(4, 4*625)
	orig := windowIDs(m)

	require.True(t, m.ScrollForward())
	require.True(t, m.ScrollBackward())
	assert.Equal(t, orig, windowIDs(m))
	assert.InDelta(t, 4*625, m.WindowStartPixel(), 1e-9)

	require.True(t, m.ScrollBackward())
	require.True(t, m.ScrollForward())
	assert.Equal(t, orig, windowIDs(m))
}

func TestManager_Block(t *testing.T) {
	m, _ := newRowManager(t, 10)
	m.MountInitial(3, 3*625)

	b, err := m.Block(7)
	require.NoError(t, err)
	assert.Equal(t, 7, b.ID)

	_, err = m.Block(2)
	require.ErrorIs(t, err, grid.ErrBlockNotMounted)

	_, err = m.Block(13)
	require.ErrorIs(t, err, grid.ErrBlockNotMounted)
}

func TestManager_Mounted(t *testing.T) {
	m, _ := newRowManager(t, 4)
	m.MountInitial(10, 0)

	_, ok := m.Mounted(9)
	assert.False(t, ok)

	b, ok := m.Mounted(12)
	require.True(t, ok)
	assert.Equal(t, 12, b.ID)
}

func TestManager_BlockAt(t *testing.T) {
	m, _ := newRowManager(t, 4)
	m.MountInitial(0, 0)

	tests := []struct {
		offset float64
		wantID int
		wantOK bool
	}{
		{offset: 0, wantID: 0, wantOK: true},
		{offset: 624.9, wantID: 0, wantOK: true},
		{offset: 625, wantID: 1, wantOK: true},
		{offset: 2400, wantID: 3, wantOK: true},
		{offset: 99999, wantID: 3, wantOK: true}, // saturates to the last block
		{offset: -1, wantOK: false},
	}

	for _, tt := range tests {
		b, ok := m.BlockAt(tt.offset)
		require.Equal(t, tt.wantOK, ok, "offset %v", tt.offset)
		if ok {
			assert.Equal(t, tt.wantID, b.ID, "offset %v", tt.offset)
		}
	}
}

func TestManager_ResizeShiftsTrailingOrigins(t *testing.T) {
	m, _ := newRowManager(t, 3)
	m.MountInitial(0, 0)

	b, err := m.Block(0)
	require.NoError(t, err)
	b.ApplyResize(0, 500)
	m.Realign(m.WindowStartPixel())

	next, err := m.Block(1)
	require.NoError(t, err)
	assert.InDelta(t, 625+475, next.Origin(), 1e-9)
	assert.InDelta(t, 3*625+475, m.WindowEndPixel(), 1e-9)
}

func TestManager_BlockAt_GapBeforeWindow(t *testing.T) {
	m, _ := newRowManager(t, 3)
	m.MountInitial(4, 4*625)

	_, ok := m.BlockAt(100)
	assert.False(t, ok, "offsets before the window resolve to nothing")
}

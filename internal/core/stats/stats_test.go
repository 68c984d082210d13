package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/gridsheet/internal/core/cells"
	"github.com/colonyops/gridsheet/internal/core/stats"
	"github.com/colonyops/gridsheet/internal/grid"
)

type fixedSelection struct {
	sel grid.Selection
}

func (f *fixedSelection) Selection() grid.Selection { return f.sel }

func seededStore() *cells.Store {
	s := cells.NewStore()
	s.Set(1, 1, "10")
	s.Set(2, 1, "20")
	s.Set(3, 1, "note")
	s.Set(4, 1, "-5")
	s.Set(1, 2, "999") // outside most test selections
	return s
}

func TestEngine_Recompute(t *testing.T) {
	sel := &fixedSelection{sel: grid.Selection{StartRow: 1, EndRow: 4, StartCol: 1, EndCol: 1}}
	e := stats.New(seededStore(), sel)

	e.RecomputeForSelection()
	got := e.Current()

	assert.Equal(t, 4, got.Cells)
	assert.Equal(t, 3, got.Numeric)
	assert.InDelta(t, 25, got.Sum, 1e-9)
	assert.InDelta(t, 25.0/3, got.Avg, 1e-9)
	assert.InDelta(t, -5, got.Min, 1e-9)
	assert.InDelta(t, 20, got.Max, 1e-9)
}

func TestEngine_WholeColumnSelectionWalksOnlyStoredCells(t *testing.T) {
	sel := &fixedSelection{sel: grid.ColumnSelection(1, 1)}
	e := stats.New(seededStore(), sel)

	e.RecomputeForSelection()
	got := e.Current()

	assert.Equal(t, 4, got.Cells)
	assert.Equal(t, 3, got.Numeric)
}

func TestEngine_EmptySelection(t *testing.T) {
	sel := &fixedSelection{sel: grid.CellSelection(500, 500)}
	e := stats.New(seededStore(), sel)

	e.RecomputeForSelection()
	got := e.Current()

	assert.Zero(t, got.Cells)
	assert.Zero(t, got.Min)
	assert.Zero(t, got.Max)
	assert.Equal(t, "", got.String())
}

func TestEngine_ReversedSelectionEndpoints(t *testing.T) {
	sel := &fixedSelection{sel: grid.Selection{StartRow: 4, EndRow: 1, StartCol: 1, EndCol: 1}}
	e := stats.New(seededStore(), sel)

	e.RecomputeForSelection()
	assert.Equal(t, 4, e.Current().Cells)
}

func TestSummary_String(t *testing.T) {
	require.Equal(t, "", stats.Summary{}.String())
	assert.Equal(t, "count 2", stats.Summary{Cells: 2}.String())

	s := stats.Summary{Cells: 3, Numeric: 2, Sum: 30, Avg: 15, Min: 10, Max: 20}
	assert.Equal(t, "count 3  sum 30  avg 15  min 10  max 20", s.String())
}

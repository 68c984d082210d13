// Package stats computes the selection summary shown in the status bar:
// cell count, and for numeric values sum, average, min and max.
package stats

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/colonyops/gridsheet/internal/core/cells"
	"github.com/colonyops/gridsheet/internal/core/logging"
	"github.com/colonyops/gridsheet/internal/grid"
)

// Summary is one computed snapshot over a selection.
type Summary struct {
	Cells   int // non-empty cells covered by the selection
	Numeric int // cells that parsed as numbers
	Sum     float64
	Avg     float64
	Min     float64
	Max     float64
}

// String formats the summary for the status bar. Selections with no
// numeric cells show only the count.
func (s Summary) String() string {
	if s.Cells == 0 {
		return ""
	}
	if s.Numeric == 0 {
		return fmt.Sprintf("count %d", s.Cells)
	}
	return fmt.Sprintf("count %d  sum %s  avg %s  min %s  max %s",
		s.Cells, trim(s.Sum), trim(s.Avg), trim(s.Min), trim(s.Max))
}

func trim(f float64) string {
	return fmt.Sprintf("%g", f)
}

// Engine recomputes the summary on demand. It reads the selection and
// the cell store itself; the grid only pokes it when a gesture ends.
type Engine struct {
	store *cells.Store
	sel   grid.SelectionSource
	log   zerolog.Logger

	current Summary
}

// New creates an engine over the store and selection source.
func New(store *cells.Store, sel grid.SelectionSource) *Engine {
	return &Engine{
		store: store,
		sel:   sel,
		log:   logging.Component("stats"),
	}
}

// Current returns the last computed summary.
func (e *Engine) Current() Summary { return e.current }

// RecomputeForSelection rebuilds the summary for the current selection.
// The store is sparse, so the walk is over stored cells rather than the
// selection's index space; a whole-column selection over a million rows
// costs only the number of values actually present.
func (e *Engine) RecomputeForSelection() {
	sel := e.sel.Selection()

	var out Summary
	out.Min = math.Inf(1)
	out.Max = math.Inf(-1)

	e.store.Range(func(k cells.Key, v string) bool {
		if !sel.ContainsRow(k.Row) || !sel.ContainsCol(k.Col) {
			return true
		}
		out.Cells++
		n, ok := cells.Number(v)
		if !ok {
			return true
		}
		out.Numeric++
		out.Sum += n
		out.Min = math.Min(out.Min, n)
		out.Max = math.Max(out.Max, n)
		return true
	})

	if out.Numeric > 0 {
		out.Avg = out.Sum / float64(out.Numeric)
	} else {
		out.Min, out.Max = 0, 0
	}

	e.current = out
	e.log.Debug().
		Int("cells", out.Cells).
		Int("numeric", out.Numeric).
		Msg("selection stats recomputed")
}

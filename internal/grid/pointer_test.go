package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/gridsheet/internal/grid"
)

// spyHandler records the pointer events it receives.
type spyHandler struct {
	hit    bool
	events []string
}

func (h *spyHandler) HitTest(x, y float64) bool {
	h.events = append(h.events, "hit")
	return h.hit
}
func (h *spyHandler) PointerDown(x, y float64) { h.events = append(h.events, "down") }
func (h *spyHandler) PointerMove(x, y float64) { h.events = append(h.events, "move") }
func (h *spyHandler) PointerUp(x, y float64)   { h.events = append(h.events, "up") }

func TestPointerDispatcher_FirstMatchWins(t *testing.T) {
	first := &spyHandler{hit: true}
	second := &spyHandler{hit: true}
	d := grid.NewPointerDispatcher(first, second)

	require.True(t, d.Down(1, 1))
	assert.True(t, d.Active())

	d.Move(2, 2)
	d.Up(3, 3)

	assert.Equal(t, []string{"hit", "down", "move", "up"}, first.events)
	assert.Empty(t, second.events, "lower-priority handler never consulted")
}

func TestPointerDispatcher_FallsThroughToNextHandler(t *testing.T) {
	first := &spyHandler{hit: false}
	second := &spyHandler{hit: true}
	d := grid.NewPointerDispatcher(first, second)

	require.True(t, d.Down(1, 1))
	d.Move(2, 2)
	d.Up(3, 3)

	assert.Equal(t, []string{"hit"}, first.events)
	assert.Equal(t, []string{"hit", "down", "move", "up"}, second.events)
}

func TestPointerDispatcher_MissAbortsQuietly(t *testing.T) {
	h := &spyHandler{hit: false}
	d := grid.NewPointerDispatcher(h)

	assert.False(t, d.Down(1, 1))
	assert.False(t, d.Active())

	// Moves and releases with no owner are dropped, not errors.
	d.Up(2, 2)
	assert.NotContains(t, h.events, "up")
	assert.NotContains(t, h.events, "down")
}

func TestPointerDispatcher_HoverRunsHitTests(t *testing.T) {
	h := &spyHandler{hit: false}
	d := grid.NewPointerDispatcher(h)

	d.Move(5, 5)
	assert.Equal(t, []string{"hit"}, h.events, "no gesture: move degrades to a hover hit test")
}

func TestPointerDispatcher_OwnershipReleasedOnUp(t *testing.T) {
	h := &spyHandler{hit: true}
	d := grid.NewPointerDispatcher(h)

	require.True(t, d.Down(1, 1))
	d.Up(1, 1)
	assert.False(t, d.Active())

	// The next gesture starts from a clean hit test.
	h.hit = false
	assert.False(t, d.Down(1, 1))
}

package grid

// AutoScrollStep is the per-frame scroll nudge applied while the pointer
// sits near a viewport edge during a drag selection, in content pixels.
const AutoScrollStep = 25.0

// edgeBand is how close to a viewport edge the pointer must be before
// auto-scroll engages.
const edgeBand = 10.0

// AutoScroller is the cancellable repeating task behind edge-triggered
// auto-scroll. The host's frame clock calls Tick once per frame while the
// scroller is armed; arming is idempotent so a stream of drag events
// never schedules a second loop. The loop cancels itself the moment the
// activity check fails.
type AutoScroller struct {
	active func() bool // is a drag-selection gesture still in flight
	step   func(dx, dy float64)

	armed  bool
	dx, dy float64
}

// NewAutoScroller creates a scroller. active gates each tick; step
// performs the host-side scroll nudge (the host owns the scroll offset,
// the engine only observes it).
func NewAutoScroller(active func() bool, step func(dx, dy float64)) *AutoScroller {
	return &AutoScroller{active: active, step: step}
}

// Update records the pointer position against the viewport and decides
// the nudge direction. Zero direction means the pointer is away from
// every edge.
func (a *AutoScroller) Update(x, y float64, vp Rect) {
	a.dx, a.dy = 0, 0
	switch {
	case x <= vp.X+edgeBand:
		a.dx = -AutoScrollStep
	case x >= vp.Right()-edgeBand:
		a.dx = AutoScrollStep
	}
	switch {
	case y <= vp.Y+edgeBand:
		a.dy = -AutoScrollStep
	case y >= vp.Bottom()-edgeBand:
		a.dy = AutoScrollStep
	}
}

// Arm requests the frame loop. Returns true only when the caller must
// schedule ticks: a second Arm while running is a no-op.
func (a *AutoScroller) Arm() bool {
	if a.armed {
		return false
	}
	if a.dx == 0 && a.dy == 0 {
		return false
	}
	a.armed = true
	return true
}

// Armed reports whether the frame loop is scheduled.
func (a *AutoScroller) Armed() bool { return a.armed }

// Tick runs one frame: it disarms and stops the instant the gesture is no
// longer active or the pointer has left the edge band, otherwise it
// applies one nudge. Returns whether the caller should schedule another
// frame.
func (a *AutoScroller) Tick() bool {
	if !a.armed {
		return false
	}
	if !a.active() || (a.dx == 0 && a.dy == 0) {
		a.armed = false
		return false
	}
	a.step(a.dx, a.dy)
	return true
}

package grid

// PointerHandler is the capability interface for pointer-driven
// interactions. Handlers are registered in priority order; on pointer
// down the first handler whose HitTest accepts the coordinate wins the
// gesture and receives the following moves and the release.
type PointerHandler interface {
	HitTest(x, y float64) bool
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp(x, y float64)
}

// PointerDispatcher routes pointer events to the owning handler. A down
// event over no handler aborts the gesture quietly; that is the normal
// outcome for clicks on non-drawing chrome.
type PointerDispatcher struct {
	handlers []PointerHandler
	active   PointerHandler
}

// NewPointerDispatcher creates a dispatcher trying handlers in the given
// priority order.
func NewPointerDispatcher(handlers ...PointerHandler) *PointerDispatcher {
	return &PointerDispatcher{handlers: handlers}
}

// Down starts a gesture with the first matching handler. Returns whether
// any handler claimed it.
func (d *PointerDispatcher) Down(x, y float64) bool {
	for _, h := range d.handlers {
		if h.HitTest(x, y) {
			d.active = h
			h.PointerDown(x, y)
			return true
		}
	}
	d.active = nil
	return false
}

// Move routes to the gesture owner; with no gesture in flight it runs
// hit tests so handlers can update hover affordances.
func (d *PointerDispatcher) Move(x, y float64) {
	if d.active != nil {
		d.active.PointerMove(x, y)
		return
	}
	for _, h := range d.handlers {
		if h.HitTest(x, y) {
			return
		}
	}
}

// Up finishes the gesture and releases ownership.
func (d *PointerDispatcher) Up(x, y float64) {
	if d.active == nil {
		return
	}
	d.active.PointerUp(x, y)
	d.active = nil
}

// Active reports whether a gesture is in flight.
func (d *PointerDispatcher) Active() bool { return d.active != nil }

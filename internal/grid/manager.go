package grid

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/gridsheet/internal/core/logging"
)

// Manager owns the ordered, contiguous window of mounted blocks for one
// axis and advances it one block at a time as the user scrolls. The
// window invariant is window[i].ID == window[0].ID + i for all i; the
// tile grid mirrors this window and the two must never drift apart.
type Manager struct {
	axis   *Axis
	canvas Canvas
	theme  *Theme
	sel    SelectionSource
	log    zerolog.Logger

	window       []*Block
	visibleCount int

	// startPixel and endPixel track the absolute content offsets of the
	// window's leading and trailing edges. They move on every mount and
	// unmount so the host container's extent stays consistent with the
	// logical content.
	startPixel float64
	endPixel   float64
}

// NewManager creates a manager for axis with a fixed window length.
func NewManager(axis *Axis, canvas Canvas, theme *Theme, sel SelectionSource, visibleCount int) *Manager {
	return &Manager{
		axis:         axis,
		canvas:       canvas,
		theme:        theme,
		sel:          sel,
		log:          logging.Component("grid." + axis.Orientation.String()),
		visibleCount: visibleCount,
	}
}

// Axis returns the managed axis.
func (m *Manager) Axis() *Axis { return m.axis }

// VisibleCount returns the fixed window length.
func (m *Manager) VisibleCount() int { return m.visibleCount }

// StartIndex returns the block ID at the front of the window.
func (m *Manager) StartIndex() int { return m.window[0].ID }

// WindowStartPixel returns the absolute offset of the window's leading edge.
func (m *Manager) WindowStartPixel() float64 { return m.startPixel }

// WindowEndPixel returns the absolute offset of the window's trailing edge.
func (m *Manager) WindowEndPixel() float64 { return m.endPixel }

// First returns the leading mounted block.
func (m *Manager) First() *Block { return m.window[0] }

// Last returns the trailing mounted block.
func (m *Manager) Last() *Block { return m.window[len(m.window)-1] }

// MountInitial discards any current window and mounts visibleCount
// blocks starting at startIdx, laid out consecutively from startPixel.
func (m *Manager) MountInitial(startIdx int, startPixel float64) {
	for _, b := range m.window {
		m.release(b)
	}
	m.window = m.window[:0]

	m.startPixel = startPixel
	offset := startPixel
	sel := m.sel.Selection()
	for i := 0; i < m.visibleCount; i++ {
		b := m.mount(startIdx+i, offset)
		b.DrawHeader(sel)
		offset += b.Extent()
	}
	m.endPixel = offset
}

// ScrollForward advances the window by one block: the leading block is
// unmounted, one new block is mounted at the trailing edge. Returns false
// without side effects when the trailing block is already the terminal
// block of the axis; hitting the limit is expected, not an error.
func (m *Manager) ScrollForward() bool {
	last := m.Last()
	if last.ID >= m.axis.BlockCount()-1 {
		return false
	}

	head := m.window[0]
	m.startPixel += head.Extent()
	m.release(head)
	m.window = m.window[1:]

	b := m.mount(last.ID+1, last.origin+last.Extent())
	b.DrawHeader(m.sel.Selection())
	m.endPixel = b.origin + b.Extent()
	return true
}

// ScrollBackward retreats the window by one block. Returns false without
// side effects when the window already starts at block 0.
func (m *Manager) ScrollBackward() bool {
	first := m.window[0]
	if first.ID == 0 {
		return false
	}

	tail := m.Last()
	m.endPixel = tail.origin
	m.release(tail)
	m.window = m.window[:len(m.window)-1]

	b := NewBlock(first.ID-1, m.axis, m.theme)
	b.origin = first.origin - b.Extent()
	b.surface = m.canvas.Allocate(m.headerBounds(b))
	b.DrawHeader(m.sel.Selection())
	m.window = append([]*Block{b}, m.window...)
	m.startPixel = b.origin
	return true
}

// Block maps a global block ID to the mounted block. An out-of-window ID
// is a desynchronization bug between callers and the window, never a
// normal miss; it is logged loudly and returned as ErrBlockNotMounted.
func (m *Manager) Block(globalID int) (*Block, error) {
	idx := globalID - m.window[0].ID
	if idx < 0 || idx >= len(m.window) {
		err := fmt.Errorf("%w: %s block %d, window [%d,%d)",
			ErrBlockNotMounted, m.axis.Orientation, globalID,
			m.window[0].ID, m.window[0].ID+len(m.window))
		m.log.Error().Err(err).Msg("window lookup desync")
		return nil, err
	}
	return m.window[idx], nil
}

// Mounted is the quiet sibling of Block for callers where an unmounted
// block is legitimate, such as undoing a resize after scrolling away.
func (m *Manager) Mounted(globalID int) (*Block, bool) {
	idx := globalID - m.window[0].ID
	if idx < 0 || idx >= len(m.window) {
		return nil, false
	}
	return m.window[idx], true
}

// RedrawAll repaints every mounted header, used after a selection change.
func (m *Manager) RedrawAll() {
	sel := m.sel.Selection()
	for _, b := range m.window {
		b.DrawHeader(sel)
	}
}

// Realign recomputes block origins from the current startPixel and
// re-places every header surface. Used by the scroll coordinator when the
// accumulated leading-edge margin is reset at the origin.
func (m *Manager) Realign(startPixel float64) {
	m.startPixel = startPixel
	offset := startPixel
	for _, b := range m.window {
		b.origin = offset
		m.canvas.Place(b.surface, m.headerBounds(b))
		offset += b.Extent()
	}
	m.endPixel = offset
}

// BlockAt locates the mounted block containing the given content offset
// along the axis (relative to the content origin, headers excluded).
func (m *Manager) BlockAt(offset float64) (*Block, bool) {
	for _, b := range m.window {
		if offset >= b.origin && offset < b.origin+b.Extent() {
			return b, true
		}
	}
	// Beyond the trailing edge resolves to the last block, matching the
	// saturating behavior of ResolveIndex.
	if len(m.window) > 0 && offset >= m.endPixel {
		return m.Last(), true
	}
	return nil, false
}

// headerBounds returns the absolute bounds of a block's header strip.
func (m *Manager) headerBounds(b *Block) Rect {
	if m.axis.Orientation == Rows {
		return Rect{X: 0, Y: HeaderHeight + b.origin, W: HeaderWidth, H: b.Extent()}
	}
	return Rect{X: HeaderWidth + b.origin, Y: 0, W: b.Extent(), H: HeaderHeight}
}

// mount creates a block at origin and allocates its header surface.
func (m *Manager) mount(id int, origin float64) *Block {
	b := NewBlock(id, m.axis, m.theme)
	b.origin = origin
	b.surface = m.canvas.Allocate(m.headerBounds(b))
	m.window = append(m.window, b)
	return b
}

// release unmounts a block's surface. The block itself is discarded; it
// carries nothing the override map cannot rebuild.
func (m *Manager) release(b *Block) {
	if b.surface != nil {
		m.canvas.Release(b.surface)
		b.surface = nil
	}
}

package grid

import "errors"

// ErrBlockNotMounted is returned when a global block ID is looked up
// outside the currently mounted window. This is never a normal miss: the
// axis windows and the tile window advance in lockstep, so an
// out-of-window lookup means the two have drifted apart. Callers must
// treat it as a bug, not retry or swallow it.
var ErrBlockNotMounted = errors.New("block not in mounted window")

// ErrWindowMisaligned is returned when the tile window no longer mirrors
// the axis windows. See ErrBlockNotMounted for severity.
var ErrWindowMisaligned = errors.New("tile window misaligned with axis windows")

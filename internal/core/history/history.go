// Package history provides the undo/redo command stack. The grid and the
// TUI construct commands; the stack only records and replays them.
package history

// Command is a recorded, invertible operation. Execute receives commands
// that have already been applied; Undo and Redo must be exact inverses of
// each other and idempotent per alternation.
type Command interface {
	Undo()
	Redo()
}

// Stack is a plain two-stack push/pop command log.
type Stack struct {
	undo []Command
	redo []Command
}

// NewStack creates an empty history stack.
func NewStack() *Stack {
	return &Stack{}
}

// Execute records an already-applied command. Any redoable future is
// discarded, matching the usual editing model.
func (s *Stack) Execute(c Command) {
	s.undo = append(s.undo, c)
	s.redo = s.redo[:0]
}

// Undo reverts the most recent command. Returns false when there is
// nothing to undo; an empty stack is expected, not an error.
func (s *Stack) Undo() bool {
	n := len(s.undo)
	if n == 0 {
		return false
	}
	c := s.undo[n-1]
	s.undo = s.undo[:n-1]
	c.Undo()
	s.redo = append(s.redo, c)
	return true
}

// Redo reapplies the most recently undone command. Returns false when
// there is nothing to redo.
func (s *Stack) Redo() bool {
	n := len(s.redo)
	if n == 0 {
		return false
	}
	c := s.redo[n-1]
	s.redo = s.redo[:n-1]
	c.Redo()
	s.undo = append(s.undo, c)
	return true
}

// CanUndo reports whether an undoable command is recorded.
func (s *Stack) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether a redoable command is recorded.
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }

// Len returns the undo depth, used by the status bar.
func (s *Stack) Len() int { return len(s.undo) }

package history_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/gridsheet/internal/core/history"
)

type recCommand struct {
	name string
	log  *[]string
}

func (c *recCommand) Undo() { *c.log = append(*c.log, "undo:"+c.name) }
func (c *recCommand) Redo() { *c.log = append(*c.log, "redo:"+c.name) }

func TestStack_UndoRedoOrder(t *testing.T) {
	var log []string
	s := history.NewStack()
	s.Execute(&recCommand{name: "a", log: &log})
	s.Execute(&recCommand{name: "b", log: &log})

	require.True(t, s.Undo())
	require.True(t, s.Undo())
	assert.Equal(t, []string{"undo:b", "undo:a"}, log)

	require.True(t, s.Redo())
	require.True(t, s.Redo())
	assert.Equal(t, []string{"undo:b", "undo:a", "redo:a", "redo:b"}, log)
}

func TestStack_EmptyStacksReturnFalse(t *testing.T) {
	s := history.NewStack()

	assert.False(t, s.Undo())
	assert.False(t, s.Redo())
	assert.False(t, s.CanUndo())
	assert.False(t, s.CanRedo())
	assert.Zero(t, s.Len())
}

func TestStack_ExecuteDiscardsRedoFuture(t *testing.T) {
	var log []string
	s := history.NewStack()
	s.Execute(&recCommand{name: "a", log: &log})
	s.Execute(&recCommand{name: "b", log: &log})

	require.True(t, s.Undo())
	require.True(t, s.CanRedo())

	s.Execute(&recCommand{name: "c", log: &log})
	assert.False(t, s.CanRedo(), "a new command invalidates the undone future")
	assert.Equal(t, 2, s.Len())

	require.True(t, s.Undo())
	assert.Equal(t, []string{"undo:b", "undo:c"}, log)
}

func TestStack_Len(t *testing.T) {
	var log []string
	s := history.NewStack()
	for _, n := range []string{"a", "b", "c"} {
		s.Execute(&recCommand{name: n, log: &log})
	}
	assert.Equal(t, 3, s.Len())

	s.Undo()
	assert.Equal(t, 2, s.Len())
	s.Redo()
	assert.Equal(t, 3, s.Len())
}

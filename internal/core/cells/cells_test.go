package cells_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/gridsheet/internal/core/cells"
)

func TestStore_SparseSemantics(t *testing.T) {
	s := cells.NewStore()

	s.Set(3, 4, "hello")
	v, ok := s.Get(3, 4)
	require.True(t, ok)
	assert.Equal(t, "hello", v)
	assert.Equal(t, 1, s.Len())

	// Clearing a cell removes the entry entirely.
	s.Set(3, 4, "")
	_, ok = s.Get(3, 4)
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}

func TestStore_CellValue(t *testing.T) {
	s := cells.NewStore()
	s.Set(1, 1, "x")

	assert.Equal(t, "x", s.CellValue(1, 1))
	assert.Equal(t, "", s.CellValue(999, 999))
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{in: "42", want: 42, ok: true},
		{in: " -3.5 ", want: -3.5, ok: true},
		{in: "1,234.5", want: 1234.5, ok: true},
		{in: "1e3", want: 1000, ok: true},
		{in: ""},
		{in: "abc"},
		{in: "12abc"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := cells.Number(tt.in)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestEditCommand(t *testing.T) {
	s := cells.NewStore()
	s.Set(2, 2, "new")

	cmd := &cells.EditCommand{Store: s, Row: 2, Col: 2, Prev: "", Next: "new"}

	cmd.Undo()
	_, ok := s.Get(2, 2)
	assert.False(t, ok, "undoing the first edit empties the cell")

	cmd.Redo()
	v, ok := s.Get(2, 2)
	require.True(t, ok)
	assert.Equal(t, "new", v)
}

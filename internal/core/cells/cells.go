// Package cells holds the in-memory cell value store. Values are plain
// strings keyed by (row, col); the sheet is sparse and empty cells are
// absent, never stored as "".
package cells

import (
	"strconv"
	"strings"

	"github.com/colonyops/gridsheet/pkg/kv"
)

// Key addresses one cell by its global 1-based row and column.
type Key struct {
	Row int
	Col int
}

// Store is the sheet's cell contents.
type Store struct {
	data *kv.Store[Key, string]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: kv.New[Key, string]()}
}

// Get returns the value at (row, col) and whether it is set.
func (s *Store) Get(row, col int) (string, bool) {
	return s.data.Get(Key{Row: row, Col: col})
}

// Set writes a value. Setting the empty string deletes the entry so the
// store stays sparse.
func (s *Store) Set(row, col int, value string) {
	k := Key{Row: row, Col: col}
	if value == "" {
		s.data.Delete(k)
		return
	}
	s.data.Set(k, value)
}

// Len returns the number of non-empty cells.
func (s *Store) Len() int { return s.data.Len() }

// Keys returns the addresses of every non-empty cell, in no particular
// order.
func (s *Store) Keys() []Key { return s.data.Keys() }

// Range calls fn for each non-empty cell until fn returns false.
func (s *Store) Range(fn func(Key, string) bool) { s.data.Range(fn) }

// Clear empties the sheet.
func (s *Store) Clear() { s.data.Clear() }

// CellValue implements the grid's cell reader. Missing cells render as
// the empty string.
func (s *Store) CellValue(row, col int) string {
	v, _ := s.Get(row, col)
	return v
}

// Number interprets a cell value as a number for the statistics engine.
// Leading/trailing whitespace and thousands separators are tolerated;
// anything else non-numeric is not a number.
func Number(value string) (float64, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0, false
	}
	v = strings.ReplaceAll(v, ",", "")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// EditCommand is the undoable record of one cell edit. The edit has
// already been applied when the command reaches the history stack.
type EditCommand struct {
	Store *Store
	Row   int
	Col   int
	Prev  string
	Next  string
}

// Undo restores the previous value.
func (c *EditCommand) Undo() { c.Store.Set(c.Row, c.Col, c.Prev) }

// Redo reapplies the edit.
func (c *EditCommand) Redo() { c.Store.Set(c.Row, c.Col, c.Next) }

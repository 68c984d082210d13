package grid

// OverrideMap is the sparse store of explicit sizes for individual
// indices on one axis. Absence means the default size applies. The map
// never holds an entry equal to the default; Set deletes instead, which
// keeps memory bounded across a million rows. Only the resize path (and
// its undo/redo inverse) mutates it.
type OverrideMap struct {
	def   float64
	sizes map[int]float64
}

// NewOverrideMap creates an empty override map with the given default.
func NewOverrideMap(def float64) *OverrideMap {
	return &OverrideMap{
		def:   def,
		sizes: make(map[int]float64),
	}
}

// Default returns the size applied to indices without an override.
func (m *OverrideMap) Default() float64 { return m.def }

// Size returns the effective size of a global 1-based index.
func (m *OverrideMap) Size(index int) float64 {
	if s, ok := m.sizes[index]; ok {
		return s
	}
	return m.def
}

// Has reports whether an explicit override exists for index.
func (m *OverrideMap) Has(index int) bool {
	_, ok := m.sizes[index]
	return ok
}

// Set records an explicit size for index. Setting the default size
// deletes the entry instead, preserving the sparsity invariant.
func (m *OverrideMap) Set(index int, size float64) {
	if size == m.def {
		delete(m.sizes, index)
		return
	}
	m.sizes[index] = size
}

// Delete removes the override for index, restoring the default.
func (m *OverrideMap) Delete(index int) {
	delete(m.sizes, index)
}

// Len returns the number of explicit overrides.
func (m *OverrideMap) Len() int { return len(m.sizes) }

// Each calls fn for every explicit override. Iteration order is
// unspecified.
func (m *OverrideMap) Each(fn func(index int, size float64)) {
	for i, s := range m.sizes {
		fn(i, s)
	}
}

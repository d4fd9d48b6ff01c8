package grid

import (
	"cmp"
	"slices"
	"sync"
)

// Occupancy is the set of cells that hold a placed object.
// It only grows through Mark; Reset empties it when the host starts a new session.
type Occupancy struct {
	mu    sync.RWMutex
	cells map[Cell]struct{}
}

// NewOccupancy creates an empty occupancy set.
func NewOccupancy() *Occupancy {
	return &Occupancy{cells: make(map[Cell]struct{})}
}

// Has reports whether c is occupied.
func (o *Occupancy) Has(c Cell) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.cells[c]
	return ok
}

// Mark records c as occupied. Marking an occupied cell is a no-op.
//
// Parameters:
//   - c: the cell
//
// Returns:
//   - bool: true if c was not occupied before
func (o *Occupancy) Mark(c Cell) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.cells[c]; ok {
		return false
	}
	o.cells[c] = struct{}{}
	return true
}

// Len returns the number of occupied cells.
func (o *Occupancy) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.cells)
}

// Cells returns the occupied cells ordered by row, then column.
func (o *Occupancy) Cells() []Cell {
	o.mu.RLock()
	out := make([]Cell, 0, len(o.cells))
	for c := range o.cells {
		out = append(out, c)
	}
	o.mu.RUnlock()

	slices.SortFunc(out, func(a, b Cell) int {
		return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Column, b.Column))
	})
	return out
}

// Reset empties the set.
func (o *Occupancy) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	clear(o.cells)
}

package grid

import (
	"slices"
	"testing"
)

func TestOccupancyMark(t *testing.T) {
	o := NewOccupancy()

	if o.Has(Cell{2, 3}) {
		t.Fatal("empty set reports (2,3) occupied")
	}
	if !o.Mark(Cell{2, 3}) {
		t.Error("first Mark(2,3) = false, want true")
	}
	if o.Mark(Cell{2, 3}) {
		t.Error("second Mark(2,3) = true, want false")
	}
	if !o.Has(Cell{2, 3}) {
		t.Error("Has(2,3) = false after Mark")
	}
	if o.Len() != 1 {
		t.Errorf("Len() = %d, want 1", o.Len())
	}
}

func TestOccupancyCellsSorted(t *testing.T) {
	o := NewOccupancy()
	for _, c := range []Cell{{3, 1}, {-1, 0}, {0, 1}, {5, -2}, {0, 0}} {
		o.Mark(c)
	}

	want := []Cell{{5, -2}, {-1, 0}, {0, 0}, {0, 1}, {3, 1}}
	if got := o.Cells(); !slices.Equal(got, want) {
		t.Errorf("Cells() = %v, want %v", got, want)
	}
}

func TestOccupancyReset(t *testing.T) {
	o := NewOccupancy()
	o.Mark(Cell{1, 1})
	o.Mark(Cell{2, 2})

	o.Reset()

	if o.Len() != 0 || o.Has(Cell{1, 1}) {
		t.Errorf("Reset left %v", o.Cells())
	}
	if !o.Mark(Cell{1, 1}) {
		t.Error("Mark after Reset = false, want true")
	}
}

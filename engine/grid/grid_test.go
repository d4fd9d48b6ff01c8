package grid

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSnap(t *testing.T) {
	testCases := []struct {
		name  string
		size  float32
		point mgl32.Vec3
		want  Cell
	}{
		{name: "origin", size: 1, point: mgl32.Vec3{0, 0, 0}, want: Cell{0, 0}},
		{name: "inside first cell", size: 1, point: mgl32.Vec3{0.99, 5, 0.01}, want: Cell{0, 0}},
		{name: "negative floors down", size: 1, point: mgl32.Vec3{-0.01, 0, -1.5}, want: Cell{-1, -2}},
		{name: "cell 2,3", size: 1, point: mgl32.Vec3{2.4, 0, 3.9}, want: Cell{2, 3}},
		{name: "half size cells", size: 0.5, point: mgl32.Vec3{1.2, 0, -0.2}, want: Cell{2, -1}},
		{name: "large cells", size: 4, point: mgl32.Vec3{7.9, 0, 8}, want: Cell{1, 2}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(WithCellSize(tc.size))
			if got := g.Snap(tc.point); got != tc.want {
				t.Errorf("Snap(%v) = %v, want %v", tc.point, got, tc.want)
			}
		})
	}
}

func TestCellCenter(t *testing.T) {
	testCases := []struct {
		name   string
		opts   []GridBuilderOption
		cell   Cell
		center mgl32.Vec3
	}{
		{name: "unit grid origin", cell: Cell{0, 0}, center: mgl32.Vec3{0.5, 0, 0.5}},
		{name: "unit grid negative", cell: Cell{-1, -3}, center: mgl32.Vec3{-0.5, 0, -2.5}},
		{name: "sized and raised", opts: []GridBuilderOption{WithCellSize(2), WithHeight(1.5)}, cell: Cell{2, 3}, center: mgl32.Vec3{5, 1.5, 7}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(tc.opts...)
			if got := g.CellCenter(tc.cell); got != tc.center {
				t.Errorf("CellCenter(%v) = %v, want %v", tc.cell, got, tc.center)
			}
		})
	}
}

func TestSnapIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, size := range []float32{1, 0.25, 2.5, 3} {
		g := NewGrid(WithCellSize(size))
		for range 5000 {
			p := mgl32.Vec3{
				float32(rng.Float64()*2000 - 1000),
				float32(rng.Float64() * 10),
				float32(rng.Float64()*2000 - 1000),
			}
			cell := g.Snap(p)
			if again := g.Snap(g.CellCenter(cell)); again != cell {
				t.Fatalf("size %v: Snap(CellCenter(Snap(%v))) = %v, want %v", size, p, again, cell)
			}
		}
	}
}

func TestInvalidCellSizeIgnored(t *testing.T) {
	g := NewGrid(WithCellSize(0), WithCellSize(-2))
	if g.CellSize() != 1 {
		t.Errorf("CellSize() = %v, want 1", g.CellSize())
	}
}

func TestCellString(t *testing.T) {
	if s := (Cell{Column: -2, Row: 7}).String(); s != "-2,7" {
		t.Errorf("String() = %q, want %q", s, "-2,7")
	}
}

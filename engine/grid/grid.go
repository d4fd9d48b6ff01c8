// Package grid maps continuous ground-plane points onto a regular lattice of cells
// and tracks which cells are taken.
package grid

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Cell identifies one grid cell by integer column (X) and row (Z).
type Cell struct {
	Column int
	Row    int
}

// String renders the cell as "column,row".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Column, c.Row)
}

// Grid defines the mapping between world points and cells.
type Grid interface {
	// Snap returns the cell containing the point's X/Z projection.
	//
	// Parameters:
	//   - p: world-space point
	//
	// Returns:
	//   - Cell: (floor(x / size), floor(z / size))
	Snap(p mgl32.Vec3) Cell

	// CellCenter returns the canonical world-space center of a cell on the ground.
	// Snap(CellCenter(c)) == c for every cell.
	//
	// Parameters:
	//   - c: the cell
	//
	// Returns:
	//   - mgl32.Vec3: ((column + 0.5) * size, height, (row + 0.5) * size)
	CellCenter(c Cell) mgl32.Vec3

	// CellSize returns the edge length of a cell in world units.
	CellSize() float32

	// Height returns the world-space Y of the ground the cells lie on.
	Height() float32
}

type gridImpl struct {
	cellSize float32
	height   float32
}

var _ Grid = &gridImpl{}

// NewGrid creates a Grid. Defaults: unit cells on the y = 0 plane.
//
// Parameters:
//   - options: functional options to configure the grid
//
// Returns:
//   - Grid: the newly created grid
func NewGrid(options ...GridBuilderOption) Grid {
	g := &gridImpl{
		cellSize: 1,
		height:   0,
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *gridImpl) Snap(p mgl32.Vec3) Cell {
	size := float64(g.cellSize)
	return Cell{
		Column: int(math.Floor(float64(p[0]) / size)),
		Row:    int(math.Floor(float64(p[2]) / size)),
	}
}

func (g *gridImpl) CellCenter(c Cell) mgl32.Vec3 {
	size := float64(g.cellSize)
	return mgl32.Vec3{
		float32((float64(c.Column) + 0.5) * size),
		g.height,
		float32((float64(c.Row) + 0.5) * size),
	}
}

func (g *gridImpl) CellSize() float32 {
	return g.cellSize
}

func (g *gridImpl) Height() float32 {
	return g.height
}

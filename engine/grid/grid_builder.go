package grid

type GridBuilderOption func(*gridImpl)

// WithCellSize sets the edge length of a cell. Non-positive sizes are ignored.
//
// Parameters:
//   - size: cell edge length in world units
//
// Returns:
//   - GridBuilderOption: a function that sets the cell size
func WithCellSize(size float32) GridBuilderOption {
	return func(g *gridImpl) {
		if size > 0 {
			g.cellSize = size
		}
	}
}

// WithHeight sets the world-space Y of the ground plane.
//
// Parameters:
//   - height: ground height
//
// Returns:
//   - GridBuilderOption: a function that sets the ground height
func WithHeight(height float32) GridBuilderOption {
	return func(g *gridImpl) {
		g.height = height
	}
}

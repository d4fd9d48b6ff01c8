// Package placement turns pointer input into grid placements: a highlight marker
// follows the hovered cell and a confirming click instantiates a placeable object
// plus its aura at the cell center, at most once per cell.
package placement

import (
	"github.com/Carmen-Shannon/oxy-placer/engine/game_object"
	"github.com/Carmen-Shannon/oxy-placer/engine/grid"
	"github.com/Carmen-Shannon/oxy-placer/engine/input"
	"github.com/Carmen-Shannon/oxy-placer/engine/picker"
)

// PlacedObject records one successful placement. It is never mutated after creation.
type PlacedObject struct {
	// ID is the scene ID of Object.
	ID     uint64
	Object game_object.GameObject
	Aura   game_object.GameObject
	Cell   grid.Cell
}

// Controller orchestrates picking, occupancy, highlight feedback and instantiation.
// Events passed to Enqueue are buffered and handled on the next Update.
type Controller interface {
	input.Handler

	// Update drains buffered input, hovering on pointer moves and confirming on
	// primary clicks that did not turn into a drag.
	//
	// Parameters:
	//   - dt: elapsed time since the last frame in seconds (unused, kept for the frame loop)
	//
	// Returns:
	//   - bool: true if the marker moved or an object was placed
	Update(dt float32) bool

	// Hover picks the cell under the NDC position, moves the marker to its center and
	// tints it by occupancy. A missed pick leaves the marker where it was.
	//
	// Parameters:
	//   - ndcX, ndcY: pointer position in normalized device coordinates
	//
	// Returns:
	//   - grid.Cell: the hovered cell
	//   - bool: false if the pick missed
	Hover(ndcX, ndcY float32) (grid.Cell, bool)

	// Confirm places an object in the cell under the NDC position. Missed picks,
	// occupied cells and template failures are no-ops with no side effects.
	//
	// Parameters:
	//   - ndcX, ndcY: pointer position in normalized device coordinates
	//
	// Returns:
	//   - PlacedObject: the new record
	//   - bool: true if an object was placed
	Confirm(ndcX, ndcY float32) (PlacedObject, bool)

	// Placed returns the placement records in placement order.
	Placed() []PlacedObject

	// Count returns the number of successful placements.
	Count() int

	// Occupancy returns the controller's occupancy set.
	Occupancy() *grid.Occupancy

	// Grid returns the grid used for snapping.
	Grid() grid.Grid

	// Picker returns the picker used for pointer rays.
	Picker() picker.Picker

	// Marker returns the highlight marker. It stays disabled until the first successful hover.
	Marker() game_object.GameObject

	// SetViewport sets the window size used to convert pixel events to NDC.
	//
	// Parameters:
	//   - width, height: viewport size in pixels
	SetViewport(width, height float32)

	// Reset removes every placed object and aura from the scene and empties the occupancy set.
	Reset()

	// SetPlaceCallback registers a function invoked after each successful placement.
	//
	// Parameters:
	//   - fn: the callback, or nil to clear it
	SetPlaceCallback(fn func(PlacedObject))
}

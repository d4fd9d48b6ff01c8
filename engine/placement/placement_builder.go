package placement

import (
	"github.com/Carmen-Shannon/oxy-placer/engine/game_object"
	"github.com/Carmen-Shannon/oxy-placer/engine/grid"
	"github.com/Carmen-Shannon/oxy-placer/engine/logger"
)

// ControllerBuilderOption is a functional option for configuring a placement Controller.
type ControllerBuilderOption func(*controllerImpl)

// WithGrid sets the grid used for snapping. The picker's ground plane follows the grid height.
//
// Parameters:
//   - g: the grid
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithGrid(g grid.Grid) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.grid = g
	}
}

// WithPlaceable sets the template name instantiated on each placement.
//
// Parameters:
//   - name: registry name of the placeable template
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithPlaceable(name string) ControllerBuilderOption {
	return func(c *controllerImpl) {
		if name != "" {
			c.placeable = name
		}
	}
}

// WithAura sets the template name of the decoration placed alongside each object.
// The template must be ephemeral.
//
// Parameters:
//   - name: registry name of the aura template
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithAura(name string) ControllerBuilderOption {
	return func(c *controllerImpl) {
		if name != "" {
			c.aura = name
		}
	}
}

// WithMarker replaces the default highlight marker. The marker should be ephemeral.
//
// Parameters:
//   - marker: the marker object
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithMarker(marker game_object.GameObject) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.marker = marker
	}
}

// WithTints sets the marker colors for free and occupied cells.
//
// Parameters:
//   - free: RGBA tint over a free cell
//   - occupied: RGBA tint over an occupied cell
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithTints(free, occupied [4]float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.freeTint = free
		c.occupiedTint = occupied
	}
}

// WithDragThreshold sets how far, in pixels, the pointer may travel between press and
// release and still count as a confirming click. Defaults to 4.
//
// Parameters:
//   - px: the threshold in pixels
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithDragThreshold(px float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		if px > 0 {
			c.dragThreshold = px
		}
	}
}

// WithViewport sets the initial viewport size used to convert pixel events to NDC.
//
// Parameters:
//   - width, height: viewport size in pixels
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithViewport(width, height float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		if width > 0 && height > 0 {
			c.clientWidth = width
			c.clientHeight = height
		}
	}
}

// WithLogger sets the diagnostic logger. The logger is tagged "Placement".
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithLogger(l *logger.Logger) ControllerBuilderOption {
	return func(c *controllerImpl) {
		if l != nil {
			c.log = l.Tag("Placement")
		}
	}
}

// WithPlaceCallback registers a function invoked after each successful placement.
//
// Parameters:
//   - fn: the callback
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithPlaceCallback(fn func(PlacedObject)) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.onPlace = fn
	}
}

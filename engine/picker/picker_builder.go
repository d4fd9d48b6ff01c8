package picker

import (
	"github.com/Carmen-Shannon/oxy-placer/common"
	"github.com/Carmen-Shannon/oxy-placer/engine/logger"
)

type PickerBuilderOption func(*pickerImpl)

// WithGroundHeight places the ground plane at y = height.
//
// Parameters:
//   - height: world-space Y of the ground
//
// Returns:
//   - PickerBuilderOption: a function that sets the ground plane
func WithGroundHeight(height float32) PickerBuilderOption {
	return func(p *pickerImpl) {
		p.plane = common.GroundPlane(height)
	}
}

// WithPlane picks against an arbitrary plane instead of the ground.
//
// Parameters:
//   - plane: the plane to intersect
//
// Returns:
//   - PickerBuilderOption: a function that sets the plane
func WithPlane(plane common.Plane) PickerBuilderOption {
	return func(p *pickerImpl) {
		p.plane = plane
	}
}

// WithLogger sets the logger used for diagnostics.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - PickerBuilderOption: a function that sets the logger
func WithLogger(l *logger.Logger) PickerBuilderOption {
	return func(p *pickerImpl) {
		if l != nil {
			p.log = l.Tag("Picker")
		}
	}
}

package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// cameraSettings collects construction parameters for every camera kind.
// Each constructor reads the fields relevant to its projection.
type cameraSettings struct {
	position mgl32.Vec3
	target   *mgl32.Vec3
	up       mgl32.Vec3

	near float32
	far  float32
	zoom float32

	fov    float32
	aspect float32

	left   float32
	right  float32
	bottom float32
	top    float32
}

func defaultCameraSettings() *cameraSettings {
	return &cameraSettings{
		position: mgl32.Vec3{0, 0, 1},
		up:       mgl32.Vec3{0, 1, 0},
		near:     0.1,
		far:      1000,
		zoom:     1,
		fov:      float32(math.Pi / 4),
		aspect:   1,
		left:     -1,
		right:    1,
		bottom:   -1,
		top:      1,
	}
}

type CameraBuilderOption func(*cameraSettings)

// WithPosition sets the camera's initial world-space position.
//
// Parameters:
//   - x, y, z: world-space position
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera position
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(s *cameraSettings) {
		s.position = mgl32.Vec3{x, y, z}
	}
}

// WithLookAt orients the camera towards a world-space point at construction.
// Without it the camera looks down -Z.
//
// Parameters:
//   - x, y, z: world-space point to look at
//
// Returns:
//   - CameraBuilderOption: a function that sets the initial look-at point
func WithLookAt(x, y, z float32) CameraBuilderOption {
	return func(s *cameraSettings) {
		s.target = &mgl32.Vec3{x, y, z}
	}
}

// WithUp sets the camera's up vector.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(x, y, z float32) CameraBuilderOption {
	return func(s *cameraSettings) {
		s.up = mgl32.Vec3{x, y, z}
	}
}

// WithFov sets the perspective camera's vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(s *cameraSettings) {
		s.fov = fov
	}
}

// WithAspect sets the perspective camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(s *cameraSettings) {
		s.aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(s *cameraSettings) {
		s.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(s *cameraSettings) {
		s.far = far
	}
}

// WithZoom sets the initial lens zoom factor.
//
// Parameters:
//   - zoom: zoom factor, must be > 0
//
// Returns:
//   - CameraBuilderOption: functional option to set the zoom
func WithZoom(zoom float32) CameraBuilderOption {
	return func(s *cameraSettings) {
		if zoom > 0 {
			s.zoom = zoom
		}
	}
}

// WithBounds sets the orthographic camera's view volume extents at zoom 1.
//
// Parameters:
//   - left, right, bottom, top: camera-space extents
//
// Returns:
//   - CameraBuilderOption: functional option to set the orthographic bounds
func WithBounds(left, right, bottom, top float32) CameraBuilderOption {
	return func(s *cameraSettings) {
		s.left = left
		s.right = right
		s.bottom = bottom
		s.top = top
	}
}

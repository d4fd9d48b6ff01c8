package camera

import (
	"github.com/Carmen-Shannon/oxy-placer/engine/logger"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithTarget sets the look-at/pivot point.
//
// Parameters:
//   - x: X coordinate of the target
//   - y: Y coordinate of the target
//   - z: Z coordinate of the target
//
// Returns:
//   - CameraControllerOption: functional option to set the target position
func WithTarget(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.Target = mgl32.Vec3{x, y, z}
	}
}

// WithDistanceBounds sets the minimum and maximum camera-to-target distance.
//
// Parameters:
//   - min: minimum dolly distance
//   - max: maximum dolly distance
//
// Returns:
//   - CameraControllerOption: functional option to set distance bounds
func WithDistanceBounds(min, max float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minDistance = min
		cc.maxDistance = max
	}
}

// WithZoomBounds sets the minimum and maximum lens zoom for orthographic cameras.
//
// Parameters:
//   - min: minimum zoom factor
//   - max: maximum zoom factor
//
// Returns:
//   - CameraControllerOption: functional option to set zoom bounds
func WithZoomBounds(min, max float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minZoom = min
		cc.maxZoom = max
	}
}

// WithPolarBounds sets the range of the polar angle, measured from the up axis.
//
// Parameters:
//   - min: minimum polar angle in radians (0 = looking straight down)
//   - max: maximum polar angle in radians (π = looking straight up)
//
// Returns:
//   - CameraControllerOption: functional option to set polar bounds
func WithPolarBounds(min, max float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minPolarAngle = min
		cc.maxPolarAngle = max
	}
}

// WithAzimuthBounds sets the range of the azimuthal angle. Infinite bounds (the
// default) leave the azimuth unconstrained. Finite bounds may wrap across ±π,
// e.g. min = 3π/4, max = -3π/4 allows a quarter turn centred on π.
//
// Parameters:
//   - min: minimum azimuthal angle in radians
//   - max: maximum azimuthal angle in radians
//
// Returns:
//   - CameraControllerOption: functional option to set azimuth bounds
func WithAzimuthBounds(min, max float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minAzimuthAngle = min
		cc.maxAzimuthAngle = max
	}
}

// WithDamping enables inertia. Each update applies factor of the pending rotation
// and pan and keeps the rest for later frames.
//
// Parameters:
//   - enabled: whether damping is on
//   - factor: fraction of the pending delta applied per update, in (0, 1]
//
// Returns:
//   - CameraControllerOption: functional option to configure damping
func WithDamping(enabled bool, factor float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.enableDamping = enabled
		if factor > 0 && factor <= 1 {
			cc.dampingFactor = factor
		}
	}
}

// WithEnableZoom turns dolly/zoom gestures on or off.
//
// Parameters:
//   - enabled: whether zooming is allowed
//
// Returns:
//   - CameraControllerOption: functional option to toggle zoom
func WithEnableZoom(enabled bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.enableZoom = enabled
	}
}

// WithEnableRotate turns rotate gestures on or off.
//
// Parameters:
//   - enabled: whether rotating is allowed
//
// Returns:
//   - CameraControllerOption: functional option to toggle rotation
func WithEnableRotate(enabled bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.enableRotate = enabled
	}
}

// WithEnablePan turns pan gestures and keyboard panning on or off.
//
// Parameters:
//   - enabled: whether panning is allowed
//
// Returns:
//   - CameraControllerOption: functional option to toggle panning
func WithEnablePan(enabled bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.enablePan = enabled
	}
}

// WithZoomToCursor makes dolly gestures keep the world point under the cursor fixed
// instead of zooming towards the target.
//
// Parameters:
//   - enabled: whether to zoom towards the cursor
//
// Returns:
//   - CameraControllerOption: functional option to toggle zoom-to-cursor
func WithZoomToCursor(enabled bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomToCursor = enabled
	}
}

// WithRotateSpeed sets the rotation speed multiplier.
//
// Parameters:
//   - speed: multiplier for rotate input
//
// Returns:
//   - CameraControllerOption: functional option to set rotate speed
func WithRotateSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.rotateSpeed = speed
	}
}

// WithZoomSpeed sets the zoom speed exponent applied to the per-step dolly factor.
//
// Parameters:
//   - speed: multiplier for zoom input
//
// Returns:
//   - CameraControllerOption: functional option to set zoom speed
func WithZoomSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomSpeed = speed
	}
}

// WithPanSpeed sets the pointer pan speed multiplier.
//
// Parameters:
//   - speed: multiplier for pan input
//
// Returns:
//   - CameraControllerOption: functional option to set pan speed
func WithPanSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.panSpeed = speed
	}
}

// WithKeyPanSpeed sets how many pixels one arrow key press pans.
//
// Parameters:
//   - pixels: pan distance per key press in screen pixels
//
// Returns:
//   - CameraControllerOption: functional option to set keyboard pan speed
func WithKeyPanSpeed(pixels float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.keyPanSpeed = pixels
	}
}

// WithScreenSpacePanning selects whether vertical pan moves along the camera's up
// axis (true) or across the ground plane (false).
//
// Parameters:
//   - enabled: whether to pan in screen space
//
// Returns:
//   - CameraControllerOption: functional option to set the panning space
func WithScreenSpacePanning(enabled bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.screenSpacePanning = enabled
	}
}

// WithAutoRotate spins the camera around the target while no gesture is active.
// A speed of 1 completes one orbit every 60 seconds.
//
// Parameters:
//   - enabled: whether to auto-rotate
//   - speed: orbits per minute
//
// Returns:
//   - CameraControllerOption: functional option to configure auto-rotation
func WithAutoRotate(enabled bool, speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.autoRotate = enabled
		cc.autoRotateSpeed = speed
	}
}

// WithMouseButtons remaps which mouse button starts which action.
//
// Parameters:
//   - buttons: the button mapping
//
// Returns:
//   - CameraControllerOption: functional option to set the button mapping
func WithMouseButtons(buttons MouseButtons) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseButtons = buttons
	}
}

// WithTouchGestures remaps which touch gesture starts which action.
//
// Parameters:
//   - touches: the gesture mapping
//
// Returns:
//   - CameraControllerOption: functional option to set the gesture mapping
func WithTouchGestures(touches TouchGestures) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.touches = touches
	}
}

// WithViewport sets the initial client area size in pixels.
//
// Parameters:
//   - width, height: client area size in pixels
//
// Returns:
//   - CameraControllerOption: functional option to set the viewport
func WithViewport(width, height float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.clientWidth = width
		cc.clientHeight = height
	}
}

// WithLogger sets the logger used for diagnostics.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - CameraControllerOption: functional option to set the logger
func WithLogger(l *logger.Logger) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if l != nil {
			cc.log = l.Tag("OrbitControls")
		}
	}
}

package camera

import (
	"github.com/Carmen-Shannon/oxy-placer/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraController is a damped orbit rig driving a Camera around a target point.
// Input events are buffered through Enqueue and applied in arrival order at the
// start of the next Update, which then recomputes the camera transform.
// Rotation works with any Camera; pan and dolly require the camera to implement Lens.
type CameraController interface {
	input.Handler

	// Update drains pending input, applies damping and clamping, and moves the camera.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous update; <= 0 means one 60 Hz frame
	//
	// Returns:
	//   - bool: true if the camera moved, turned or zoomed enough to warrant a redraw
	Update(deltaTime float32) bool

	// Camera returns the controlled camera.
	//
	// Returns:
	//   - Camera: the camera
	Camera() Camera

	// State returns a snapshot of the spherical state after the last update.
	//
	// Returns:
	//   - SphericalState: the state snapshot
	State() SphericalState

	// Mode returns the active interaction mode.
	//
	// Returns:
	//   - Mode: the current mode
	Mode() Mode

	// Target returns the look-at/pivot point.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target
	Target() mgl32.Vec3

	// SetTarget moves the pivot point. The camera keeps its position and re-aims on
	// the next update.
	//
	// Parameters:
	//   - target: world-space target
	SetTarget(target mgl32.Vec3)

	// PolarAngle returns the current polar angle in radians.
	PolarAngle() float32

	// AzimuthalAngle returns the current azimuthal angle in radians.
	AzimuthalAngle() float32

	// Distance returns the current camera-to-target distance.
	Distance() float32

	// Enabled reports whether the controller reacts to input.
	Enabled() bool

	// SetEnabled turns input handling on or off. A disabled controller still
	// applies remaining damping in Update.
	//
	// Parameters:
	//   - enabled: whether to react to input
	SetEnabled(enabled bool)

	// LensSupported reports whether the camera exposes the Lens capability. When it
	// does not, pan and dolly are disabled for the controller's lifetime.
	LensSupported() bool

	// SetViewport sets the client area size in pixels used to convert pointer
	// deltas into angles and world distances.
	//
	// Parameters:
	//   - width, height: client area size in pixels
	SetViewport(width, height float32)

	// SaveState records the current target, camera position and zoom for Reset.
	SaveState()

	// Reset restores the state recorded by SaveState (or the construction state),
	// cancels any gesture, and fires the change callback.
	Reset()

	// SetStartCallback registers a function called when a gesture starts.
	SetStartCallback(fn func())

	// SetEndCallback registers a function called when a gesture ends.
	SetEndCallback(fn func())

	// SetChangeCallback registers a function called whenever Update or Reset moves the camera.
	SetChangeCallback(fn func())
}

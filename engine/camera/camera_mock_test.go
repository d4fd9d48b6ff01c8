package camera

// lenslessCamera is a mock camera that hides the Lens capability of the camera it
// wraps, the way a third-party camera type would.
type lenslessCamera struct {
	Camera
}

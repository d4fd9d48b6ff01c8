package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-placer/common"
	"github.com/go-gl/mathgl/mgl32"
)

// PerspectiveCamera is a Camera with a symmetric perspective frustum.
type PerspectiveCamera interface {
	Camera
	Lens

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// SetFov sets the vertical field of view and recomputes the projection.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32
}

type perspectiveCameraImpl struct {
	*cameraBase

	fov    float32
	aspect float32
}

var _ PerspectiveCamera = &perspectiveCameraImpl{}

// NewPerspectiveCamera creates a perspective camera. Defaults: 45° vertical FOV,
// aspect 1, near 0.1, far 1000, positioned at (0, 0, 1) looking down -Z.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - PerspectiveCamera: the newly created camera
func NewPerspectiveCamera(options ...CameraBuilderOption) PerspectiveCamera {
	s := defaultCameraSettings()
	for _, option := range options {
		option(s)
	}

	c := &perspectiveCameraImpl{
		fov:    s.fov,
		aspect: s.aspect,
	}
	c.cameraBase = newCameraBase(s, c.projection)

	c.mu.Lock()
	c.updateMatrices()
	c.mu.Unlock()
	return c
}

func (c *perspectiveCameraImpl) projection() mgl32.Mat4 {
	return common.Perspective(c.fov, c.aspect, c.near, c.far, c.zoom)
}

func (c *perspectiveCameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *perspectiveCameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *perspectiveCameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *perspectiveCameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if aspect <= 0 {
		return
	}
	c.aspect = aspect
	c.updateMatrices()
}

func (c *perspectiveCameraImpl) Ray(ndcX, ndcY float32) common.Ray {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := common.TransformPoint(c.inverseProjectionMatrix, mgl32.Vec3{ndcX, ndcY, 0.5})
	return common.Ray{
		Origin:    c.position,
		Direction: c.viewToWorldDir(p).Normalize(),
	}
}

func (c *perspectiveCameraImpl) FrustumSizeAt(distance float32) (width, height float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	height = 2 * distance * float32(math.Tan(float64(c.fov)/2)) / c.zoom
	return height * c.aspect, height
}

func (c *perspectiveCameraImpl) ScalesRadius() bool {
	return true
}

func (c *perspectiveCameraImpl) ApplyZoom(scale, minZoom, maxZoom float32) bool {
	return false
}

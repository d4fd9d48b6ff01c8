package camera

import (
	"github.com/Carmen-Shannon/oxy-placer/common"
	"github.com/go-gl/mathgl/mgl32"
)

// OrthographicCamera is a Camera with a parallel projection. Dollying an
// orthographic camera changes its zoom factor instead of its distance.
type OrthographicCamera interface {
	Camera
	Lens

	// Bounds returns the view volume extents at zoom 1.
	//
	// Returns:
	//   - left, right, bottom, top: camera-space extents
	Bounds() (left, right, bottom, top float32)

	// SetBounds sets the view volume extents at zoom 1 and recomputes the projection.
	//
	// Parameters:
	//   - left, right, bottom, top: camera-space extents
	SetBounds(left, right, bottom, top float32)
}

type orthographicCameraImpl struct {
	*cameraBase

	left   float32
	right  float32
	bottom float32
	top    float32
}

var _ OrthographicCamera = &orthographicCameraImpl{}

// NewOrthographicCamera creates an orthographic camera. Defaults: bounds [-1, 1] on
// both axes, near 0.1, far 1000, positioned at (0, 0, 1) looking down -Z.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - OrthographicCamera: the newly created camera
func NewOrthographicCamera(options ...CameraBuilderOption) OrthographicCamera {
	s := defaultCameraSettings()
	for _, option := range options {
		option(s)
	}

	c := &orthographicCameraImpl{
		left:   s.left,
		right:  s.right,
		bottom: s.bottom,
		top:    s.top,
	}
	c.cameraBase = newCameraBase(s, c.projection)

	c.mu.Lock()
	c.updateMatrices()
	c.mu.Unlock()
	return c
}

func (c *orthographicCameraImpl) projection() mgl32.Mat4 {
	cx := (c.left + c.right) / 2
	cy := (c.bottom + c.top) / 2
	dx := (c.right - c.left) / (2 * c.zoom)
	dy := (c.top - c.bottom) / (2 * c.zoom)
	return common.Orthographic(cx-dx, cx+dx, cy-dy, cy+dy, c.near, c.far)
}

func (c *orthographicCameraImpl) Bounds() (left, right, bottom, top float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.left, c.right, c.bottom, c.top
}

func (c *orthographicCameraImpl) SetBounds(left, right, bottom, top float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.left, c.right, c.bottom, c.top = left, right, bottom, top
	c.updateMatrices()
}

// SetAspect widens or narrows the horizontal extents around their center so that
// (right - left) / (top - bottom) matches aspect.
func (c *orthographicCameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if aspect <= 0 {
		return
	}
	cx := (c.left + c.right) / 2
	half := (c.top - c.bottom) * aspect / 2
	c.left, c.right = cx-half, cx+half
	c.updateMatrices()
}

func (c *orthographicCameraImpl) Ray(ndcX, ndcY float32) common.Ray {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := common.TransformPoint(c.inverseProjectionMatrix, mgl32.Vec3{ndcX, ndcY, 0})
	return common.Ray{
		Origin:    c.viewToWorldPoint(p),
		Direction: c.back.Mul(-1),
	}
}

func (c *orthographicCameraImpl) FrustumSizeAt(distance float32) (width, height float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return (c.right - c.left) / c.zoom, (c.top - c.bottom) / c.zoom
}

func (c *orthographicCameraImpl) ScalesRadius() bool {
	return false
}

func (c *orthographicCameraImpl) ApplyZoom(scale, minZoom, maxZoom float32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if scale <= 0 {
		return false
	}
	zoom := common.Clamp(c.zoom/scale, minZoom, maxZoom)
	if zoom == c.zoom {
		return false
	}
	c.zoom = zoom
	c.updateMatrices()
	return true
}

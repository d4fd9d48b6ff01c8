package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-placer/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera defines the interface shared by every camera kind.
// The camera owns its world transform (position plus viewing direction) and
// recomputes view and projection matrices whenever any input changes.
// Matrices are column-major with clip-space depth in [0, 1].
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space position
	Position() mgl32.Vec3

	// SetPosition moves the camera without changing its viewing direction.
	//
	// Parameters:
	//   - p: world-space position
	SetPosition(p mgl32.Vec3)

	// Up returns the camera's world up hint.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// SetUp sets the camera's world up hint and recomputes matrices.
	//
	// Parameters:
	//   - up: the up vector
	SetUp(up mgl32.Vec3)

	// Forward returns the unit viewing direction.
	//
	// Returns:
	//   - mgl32.Vec3: the direction the camera looks along
	Forward() mgl32.Vec3

	// LookAt orients the camera towards a world-space point.
	// A target equal to the camera position leaves the orientation unchanged.
	//
	// Parameters:
	//   - target: world-space point to look at
	LookAt(target mgl32.Vec3)

	// Basis returns the camera's local axes in world space, matching the columns of
	// the camera's world matrix.
	//
	// Returns:
	//   - right, up, back: orthonormal camera axes
	Basis() (right, up, back mgl32.Vec3)

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// Zoom returns the lens zoom factor.
	//
	// Returns:
	//   - float32: zoom factor (1 = no zoom)
	Zoom() float32

	// SetZoom sets the lens zoom factor and recomputes the projection.
	//
	// Parameters:
	//   - zoom: zoom factor, must be > 0
	SetZoom(zoom float32)

	// SetAspect sets the viewport aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// ViewMatrix returns the current world-to-camera matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix
	ViewProjectionMatrix() mgl32.Mat4

	// InverseProjectionMatrix returns the inverse of the projection matrix, mapping
	// normalized device coordinates back into camera space.
	//
	// Returns:
	//   - mgl32.Mat4: the inverse projection matrix
	InverseProjectionMatrix() mgl32.Mat4

	// Unproject maps a point in normalized device coordinates (z in [0, 1]) to world space.
	//
	// Parameters:
	//   - ndc: the point in normalized device coordinates
	//
	// Returns:
	//   - mgl32.Vec3: the world-space point
	Unproject(ndc mgl32.Vec3) mgl32.Vec3

	// Ray builds the world-space ray passing through the given NDC position.
	//
	// Parameters:
	//   - ndcX, ndcY: pointer position in [-1, 1]
	//
	// Returns:
	//   - common.Ray: ray with a unit direction
	Ray(ndcX, ndcY float32) common.Ray
}

// Lens is the capability a camera must expose for the orbit controller to pan and
// dolly it. Both PerspectiveCamera and OrthographicCamera implement it; cameras
// without it can still be rotated.
type Lens interface {
	// FrustumSizeAt returns the visible world-space width and height of a plane
	// facing the camera at the given distance.
	FrustumSizeAt(distance float32) (width, height float32)

	// ScalesRadius reports whether dollying moves the camera (perspective) rather
	// than changing the lens zoom (orthographic).
	ScalesRadius() bool

	// ApplyZoom divides the zoom factor by scale, clamped to [minZoom, maxZoom].
	// It returns whether the zoom changed. Lenses that dolly by radius return false.
	ApplyZoom(scale, minZoom, maxZoom float32) bool
}

// cameraBase holds the transform and matrix state shared by all camera kinds.
// The concrete camera supplies the projection through the project callback, which
// is called with mu held.
type cameraBase struct {
	mu *sync.Mutex

	position mgl32.Vec3
	forward  mgl32.Vec3
	up       mgl32.Vec3

	near float32
	far  float32
	zoom float32

	right  mgl32.Vec3
	upAxis mgl32.Vec3
	back   mgl32.Vec3

	viewMatrix              mgl32.Mat4
	projectionMatrix        mgl32.Mat4
	viewProjectionMatrix    mgl32.Mat4
	inverseProjectionMatrix mgl32.Mat4

	project func() mgl32.Mat4
}

func newCameraBase(s *cameraSettings, project func() mgl32.Mat4) *cameraBase {
	c := &cameraBase{
		mu:       &sync.Mutex{},
		position: s.position,
		forward:  mgl32.Vec3{0, 0, -1},
		up:       s.up,
		near:     s.near,
		far:      s.far,
		zoom:     s.zoom,
		project:  project,
	}
	if s.target != nil {
		if dir := s.target.Sub(c.position); dir.Len() > 0 {
			c.forward = dir.Normalize()
		}
	}
	return c
}

func (c *cameraBase) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraBase) SetPosition(p mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
	c.updateMatrices()
}

func (c *cameraBase) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraBase) SetUp(up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up
	c.updateMatrices()
}

func (c *cameraBase) Forward() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.back.Mul(-1)
}

func (c *cameraBase) LookAt(target mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	dir := target.Sub(c.position)
	if dir.Len() == 0 {
		return
	}
	c.forward = dir.Normalize()
	c.updateMatrices()
}

func (c *cameraBase) Basis() (right, up, back mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.right, c.upAxis, c.back
}

func (c *cameraBase) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraBase) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraBase) Zoom() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

func (c *cameraBase) SetZoom(zoom float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if zoom <= 0 {
		return
	}
	c.zoom = zoom
	c.updateMatrices()
}

func (c *cameraBase) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraBase) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraBase) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraBase) InverseProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inverseProjectionMatrix
}

func (c *cameraBase) Unproject(ndc mgl32.Vec3) mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewToWorldPoint(common.TransformPoint(c.inverseProjectionMatrix, ndc))
}

// viewToWorldPoint maps a camera-space point to world space. Caller must hold the mutex.
func (c *cameraBase) viewToWorldPoint(v mgl32.Vec3) mgl32.Vec3 {
	return c.position.Add(c.viewToWorldDir(v))
}

// viewToWorldDir rotates a camera-space vector into world space. Caller must hold the mutex.
func (c *cameraBase) viewToWorldDir(v mgl32.Vec3) mgl32.Vec3 {
	return c.right.Mul(v[0]).Add(c.upAxis.Mul(v[1])).Add(c.back.Mul(v[2]))
}

// updateMatrices recalculates the camera basis and the view, projection,
// view-projection and inverse projection matrices. Caller must hold the mutex.
func (c *cameraBase) updateMatrices() {
	c.right, c.upAxis, c.back = common.CameraBasis(c.forward, c.up)
	c.viewMatrix = common.LookAt(c.position, c.right, c.upAxis, c.back)
	c.projectionMatrix = c.project()
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
	c.inverseProjectionMatrix = c.projectionMatrix.Inv()
}

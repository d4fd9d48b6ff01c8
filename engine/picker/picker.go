// Package picker converts pointer positions into world-space points on the
// placement ground plane.
package picker

import (
	"github.com/Carmen-Shannon/oxy-placer/common"
	"github.com/Carmen-Shannon/oxy-placer/engine/camera"
	"github.com/Carmen-Shannon/oxy-placer/engine/logger"
	"github.com/go-gl/mathgl/mgl32"
)

// Pick casts the camera ray through (ndcX, ndcY) and intersects it with plane.
// It reports false when the ray is parallel to the plane or the plane lies behind
// the ray origin. Pick has no side effects.
//
// Parameters:
//   - ndcX, ndcY: pointer position in normalized device coordinates, [-1, 1]
//   - cam: the camera the pointer looks through
//   - plane: the plane to intersect
//
// Returns:
//   - mgl32.Vec3: the world-space intersection point
//   - bool: false if there is no intersection
func Pick(ndcX, ndcY float32, cam camera.Camera, plane common.Plane) (mgl32.Vec3, bool) {
	return plane.IntersectRay(cam.Ray(ndcX, ndcY))
}

// PixelToNDC converts a window pixel position (origin top-left, Y down) into
// normalized device coordinates (origin center, Y up).
//
// Parameters:
//   - x, y: pixel position
//   - width, height: viewport size in pixels
//
// Returns:
//   - ndcX, ndcY: the position in [-1, 1]
func PixelToNDC(x, y, width, height float32) (ndcX, ndcY float32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return x/width*2 - 1, 1 - y/height*2
}

// Picker binds a camera and a ground plane for repeated picking.
type Picker interface {
	// Pick intersects the camera ray through (ndcX, ndcY) with the ground plane.
	//
	// Parameters:
	//   - ndcX, ndcY: pointer position in normalized device coordinates
	//
	// Returns:
	//   - mgl32.Vec3: the world-space point
	//   - bool: false if the ray misses the plane
	Pick(ndcX, ndcY float32) (mgl32.Vec3, bool)

	// PickPixel is Pick for a window pixel position.
	//
	// Parameters:
	//   - x, y: pixel position, origin top-left
	//   - width, height: viewport size in pixels
	//
	// Returns:
	//   - mgl32.Vec3: the world-space point
	//   - bool: false if the ray misses the plane
	PickPixel(x, y, width, height float32) (mgl32.Vec3, bool)

	// Camera returns the camera rays are cast from.
	Camera() camera.Camera

	// Plane returns the ground plane.
	Plane() common.Plane
}

type pickerImpl struct {
	cam   camera.Camera
	plane common.Plane
	log   *logger.Logger
}

var _ Picker = &pickerImpl{}

// NewPicker creates a Picker for cam. The ground plane defaults to y = 0.
//
// Parameters:
//   - cam: the camera to pick through, must not be nil
//   - options: functional options to configure the picker
//
// Returns:
//   - Picker: the newly created picker
func NewPicker(cam camera.Camera, options ...PickerBuilderOption) Picker {
	if cam == nil {
		panic("picker requires a camera")
	}
	p := &pickerImpl{
		cam:   cam,
		plane: common.GroundPlane(0),
		log:   logger.Default().Tag("Picker"),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *pickerImpl) Pick(ndcX, ndcY float32) (mgl32.Vec3, bool) {
	point, ok := Pick(ndcX, ndcY, p.cam, p.plane)
	if !ok {
		p.log.Debugf("no ground hit at ndc (%.3f, %.3f)", ndcX, ndcY)
	}
	return point, ok
}

func (p *pickerImpl) PickPixel(x, y, width, height float32) (mgl32.Vec3, bool) {
	ndcX, ndcY := PixelToNDC(x, y, width, height)
	return p.Pick(ndcX, ndcY)
}

func (p *pickerImpl) Camera() camera.Camera {
	return p.cam
}

func (p *pickerImpl) Plane() common.Plane {
	return p.plane
}

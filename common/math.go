package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the tolerance used for degenerate-geometry checks throughout the engine.
const Epsilon = 1e-6

// Perspective creates a perspective projection matrix.
// Depth is mapped to the WebGPU clip-space range [0, 1]. The zoom factor narrows
// the effective field of view the same way a lens zoom would.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//   - zoom: lens zoom factor (1 = no zoom)
//
// Returns:
//   - mgl32.Mat4: the column-major projection matrix
func Perspective(fovY, aspect, near, far, zoom float32) mgl32.Mat4 {
	f := zoom / float32(math.Tan(float64(fovY)/2.0))

	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}

// Orthographic creates an orthographic projection matrix for the given view volume.
// Depth is mapped to the WebGPU clip-space range [0, 1].
//
// Parameters:
//   - left, right, bottom, top: view volume bounds in camera space
//   - near, far: clipping plane distances
//
// Returns:
//   - mgl32.Mat4: the column-major projection matrix
func Orthographic(left, right, bottom, top, near, far float32) mgl32.Mat4 {
	var out mgl32.Mat4
	out[0] = 2 / (right - left)
	out[5] = 2 / (top - bottom)
	out[10] = 1 / (near - far)
	out[12] = -(right + left) / (right - left)
	out[13] = -(top + bottom) / (top - bottom)
	out[14] = near / (near - far)
	out[15] = 1
	return out
}

// CameraBasis derives the orthonormal camera axes for an eye looking along forward.
// The returned back axis is -forward. When forward is parallel to up the right axis
// falls back to the world X axis (or Z when looking along X), leaving the viewing
// direction untouched.
//
// Parameters:
//   - forward: viewing direction (need not be normalized)
//   - up: world up hint
//
// Returns:
//   - right, trueUp, back: the camera's local axes in world space
func CameraBasis(forward, up mgl32.Vec3) (right, trueUp, back mgl32.Vec3) {
	back = forward.Mul(-1)
	if back.Len() == 0 {
		back = mgl32.Vec3{0, 0, 1}
	}
	back = back.Normalize()

	right = up.Cross(back)
	if right.Len() < Epsilon {
		axis := mgl32.Vec3{1, 0, 0}
		if math.Abs(float64(back.X())) > 0.9 {
			axis = mgl32.Vec3{0, 0, 1}
		}
		right = axis.Sub(back.Mul(axis.Dot(back)))
	}
	right = right.Normalize()
	trueUp = back.Cross(right)
	return right, trueUp, back
}

// LookAt creates a view matrix from an eye position and camera axes as produced by CameraBasis.
// The resulting matrix transforms world coordinates to view/camera space.
//
// Parameters:
//   - eye: camera position in world space
//   - right, up, back: orthonormal camera axes in world space
//
// Returns:
//   - mgl32.Mat4: the column-major view matrix
func LookAt(eye, right, up, back mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Mat4{
		right[0], up[0], back[0], 0,
		right[1], up[1], back[1], 0,
		right[2], up[2], back[2], 0,
		-right.Dot(eye), -up.Dot(eye), -back.Dot(eye), 1,
	}
}

// ModelMatrix constructs a model matrix from position, Euler rotation and scale.
// The rotation order is Y * X * Z (yaw-pitch-roll).
//
// Parameters:
//   - pos: translation in world space
//   - rot: rotation angles in radians around each axis
//   - scale: scale factors along each axis
//
// Returns:
//   - mgl32.Mat4: the column-major model matrix
func ModelMatrix(pos, rot, scale mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(pos[0], pos[1], pos[2]).
		Mul4(mgl32.HomogRotate3DY(rot[1])).
		Mul4(mgl32.HomogRotate3DX(rot[0])).
		Mul4(mgl32.HomogRotate3DZ(rot[2])).
		Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
}

// TransformPoint applies a 4x4 matrix to a point and performs the perspective divide.
//
// Parameters:
//   - m: the transform
//   - p: the point
//
// Returns:
//   - mgl32.Vec3: the transformed point
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	if v[3] == 0 {
		return v.Vec3()
	}
	return v.Vec3().Mul(1 / v[3])
}

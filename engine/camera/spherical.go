package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-placer/common"
	"github.com/go-gl/mathgl/mgl32"
)

// SphericalState is the orbit rig's model of the camera: a look-at target plus
// spherical coordinates around it, and the deltas accumulated from input that the
// next Update has yet to consume.
type SphericalState struct {
	Target mgl32.Vec3

	// Radius is the distance from Target to the camera.
	Radius float32
	// Theta is the azimuthal angle around the up axis, measured from +Z towards +X.
	Theta float32
	// Phi is the polar angle measured from the up axis.
	Phi float32
	// Zoom mirrors the camera's lens zoom factor.
	Zoom float32

	PendingThetaDelta  float32
	PendingPhiDelta    float32
	PendingPanOffset   mgl32.Vec3
	PendingRadiusScale float32
}

// setFromVector sets Radius, Theta and Phi from an offset relative to Target,
// expressed in the y-up orbit space.
func (s *SphericalState) setFromVector(v mgl32.Vec3) {
	s.Radius = v.Len()
	if s.Radius == 0 {
		s.Theta = 0
		s.Phi = 0
		return
	}
	s.Theta = float32(math.Atan2(float64(v[0]), float64(v[2])))
	s.Phi = float32(math.Acos(float64(common.Clamp(v[1]/s.Radius, -1, 1))))
}

// vector returns the offset from Target described by Radius, Theta and Phi.
func (s *SphericalState) vector() mgl32.Vec3 {
	sinPhi := float32(math.Sin(float64(s.Phi)))
	cosPhi := float32(math.Cos(float64(s.Phi)))
	sinTheta := float32(math.Sin(float64(s.Theta)))
	cosTheta := float32(math.Cos(float64(s.Theta)))
	return mgl32.Vec3{
		s.Radius * sinPhi * sinTheta,
		s.Radius * cosPhi,
		s.Radius * sinPhi * cosTheta,
	}
}

// makeSafe keeps Phi strictly inside (0, π).
func (s *SphericalState) makeSafe() {
	s.Phi = common.Clamp(s.Phi, common.Epsilon, math.Pi-common.Epsilon)
}

// upAlignment returns the rotation that takes up onto +Y, so the orbit math can
// always work in a y-up space.
func upAlignment(up mgl32.Vec3) mgl32.Quat {
	yUp := mgl32.Vec3{0, 1, 0}
	if up.Len() == 0 {
		return mgl32.QuatIdent()
	}
	up = up.Normalize()
	cos := up.Dot(yUp)
	switch {
	case cos > 1-common.Epsilon:
		return mgl32.QuatIdent()
	case cos < -1+common.Epsilon:
		return mgl32.QuatRotate(math.Pi, mgl32.Vec3{1, 0, 0})
	}
	axis := up.Cross(yUp).Normalize()
	return mgl32.QuatRotate(float32(math.Acos(float64(cos))), axis)
}

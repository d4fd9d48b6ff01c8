package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPlaneIntersectRay(t *testing.T) {
	testCases := []struct {
		name   string
		plane  Plane
		ray    Ray
		want   mgl32.Vec3
		wantOk bool
	}{
		{
			name:   "straight down onto ground",
			plane:  GroundPlane(0),
			ray:    Ray{Origin: mgl32.Vec3{2, 10, -3}, Direction: mgl32.Vec3{0, -1, 0}},
			want:   mgl32.Vec3{2, 0, -3},
			wantOk: true,
		},
		{
			name:   "oblique onto raised plane",
			plane:  GroundPlane(1),
			ray:    Ray{Origin: mgl32.Vec3{0, 5, 0}, Direction: mgl32.Vec3{1, -1, 0}.Normalize()},
			want:   mgl32.Vec3{4, 1, 0},
			wantOk: true,
		},
		{
			name:   "parallel ray misses",
			plane:  GroundPlane(0),
			ray:    Ray{Origin: mgl32.Vec3{0, 5, 0}, Direction: mgl32.Vec3{1, 0, 0}},
			wantOk: false,
		},
		{
			name:   "plane behind origin misses",
			plane:  GroundPlane(0),
			ray:    Ray{Origin: mgl32.Vec3{0, 5, 0}, Direction: mgl32.Vec3{0, 1, 0}},
			wantOk: false,
		},
		{
			name:   "tilted plane from normal and point",
			plane:  NewPlaneFromNormalAndPoint(mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 0, -4}),
			ray:    Ray{Origin: mgl32.Vec3{1, 1, 0}, Direction: mgl32.Vec3{0, 0, -1}},
			want:   mgl32.Vec3{1, 1, -4},
			wantOk: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.plane.IntersectRay(tc.ray)
			if ok != tc.wantOk {
				t.Fatalf("IntersectRay() ok = %v, want %v", ok, tc.wantOk)
			}
			if ok && !got.ApproxEqualThreshold(tc.want, 1e-4) {
				t.Errorf("IntersectRay() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCameraBasisDegenerateUp(t *testing.T) {
	right, up, back := CameraBasis(mgl32.Vec3{0, -1, 0}, mgl32.Vec3{0, 1, 0})

	if !back.ApproxEqual(mgl32.Vec3{0, 1, 0}) {
		t.Errorf("back = %v, want +Y", back)
	}
	for _, axis := range []mgl32.Vec3{right, up, back} {
		if math.Abs(float64(axis.Len()-1)) > 1e-5 {
			t.Errorf("axis %v is not unit length", axis)
		}
	}
	if math.Abs(float64(right.Dot(up))) > 1e-5 || math.Abs(float64(right.Dot(back))) > 1e-5 {
		t.Errorf("basis is not orthogonal: right=%v up=%v back=%v", right, up, back)
	}
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	eye := mgl32.Vec3{3, 4, 5}
	right, up, back := CameraBasis(eye.Mul(-1), mgl32.Vec3{0, 1, 0})
	view := LookAt(eye, right, up, back)

	if got := TransformPoint(view, eye); !got.ApproxEqualThreshold(mgl32.Vec3{}, 1e-5) {
		t.Errorf("eye in view space = %v, want origin", got)
	}
	if got := TransformPoint(view, mgl32.Vec3{}); got.Z() >= 0 {
		t.Errorf("look-at target in view space = %v, want negative z", got)
	}
}

func TestClampAndCoalesce(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5, 0, 3) = %d", got)
	}
	if got := Clamp(float32(-1), 0, 1); got != 0 {
		t.Errorf("Clamp(-1, 0, 1) = %v", got)
	}
	if got := Coalesce("", "", "grid"); got != "grid" {
		t.Errorf("Coalesce() = %q, want grid", got)
	}
	if got := Coalesce([3]float64{}, [3]float64{1, 1, 1}); got != [3]float64{1, 1, 1} {
		t.Errorf("Coalesce() = %v, want unit scale", got)
	}
}

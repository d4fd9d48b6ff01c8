package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-placer/common"
	"github.com/go-gl/mathgl/mgl32"
)

const float32EqualityThreshold = 1e-4

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) <= float32EqualityThreshold
}

func vecAlmostEqual(a, b mgl32.Vec3, threshold float32) bool {
	return a.Sub(b).Len() <= threshold
}

func TestPerspectiveRayTopDown(t *testing.T) {
	cam := NewPerspectiveCamera(WithPosition(0, 10, 0), WithLookAt(0, 0, 0))

	ray := cam.Ray(0, 0)
	if ray.Origin != (mgl32.Vec3{0, 10, 0}) {
		t.Errorf("Origin = %v, want (0, 10, 0)", ray.Origin)
	}
	if ray.Direction.X() != 0 || ray.Direction.Z() != 0 || !almostEqual(ray.Direction.Y(), -1) {
		t.Errorf("Direction = %v, want (0, -1, 0) with exact zero X and Z", ray.Direction)
	}

	right, up, back := cam.Basis()
	if !vecAlmostEqual(right, mgl32.Vec3{1, 0, 0}, 1e-6) ||
		!vecAlmostEqual(up, mgl32.Vec3{0, 0, -1}, 1e-6) ||
		!vecAlmostEqual(back, mgl32.Vec3{0, 1, 0}, 1e-6) {
		t.Errorf("Basis() = %v %v %v, want X, -Z, Y", right, up, back)
	}
}

func TestOrthographicRayStartsOnNearPlane(t *testing.T) {
	cam := NewOrthographicCamera(
		WithPosition(0, 10, 0),
		WithLookAt(0, 0, 0),
		WithBounds(-5, 5, -5, 5),
		WithNear(0.1),
	)

	testCases := []struct {
		name       string
		ndcX, ndcY float32
		origin     mgl32.Vec3
	}{
		{name: "center", ndcX: 0, ndcY: 0, origin: mgl32.Vec3{0, 9.9, 0}},
		{name: "top right", ndcX: 1, ndcY: 1, origin: mgl32.Vec3{5, 9.9, -5}},
		{name: "bottom left", ndcX: -1, ndcY: -1, origin: mgl32.Vec3{-5, 9.9, 5}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ray := cam.Ray(tc.ndcX, tc.ndcY)
			if !vecAlmostEqual(ray.Origin, tc.origin, 1e-4) {
				t.Errorf("Origin = %v, want %v", ray.Origin, tc.origin)
			}
			if !vecAlmostEqual(ray.Direction, mgl32.Vec3{0, -1, 0}, 1e-6) {
				t.Errorf("Direction = %v, want (0, -1, 0)", ray.Direction)
			}
		})
	}
}

func TestFrustumSizeAt(t *testing.T) {
	testCases := []struct {
		name       string
		cam        Lens
		distance   float32
		wantWidth  float32
		wantHeight float32
	}{
		{
			name:       "perspective 90 degrees",
			cam:        NewPerspectiveCamera(WithFov(math.Pi/2), WithAspect(2)),
			distance:   3,
			wantWidth:  12,
			wantHeight: 6,
		},
		{
			name:       "perspective zoomed",
			cam:        NewPerspectiveCamera(WithFov(math.Pi/2), WithAspect(2), WithZoom(2)),
			distance:   3,
			wantWidth:  6,
			wantHeight: 3,
		},
		{
			name:       "orthographic ignores distance",
			cam:        NewOrthographicCamera(WithBounds(-4, 4, -2, 2)),
			distance:   100,
			wantWidth:  8,
			wantHeight: 4,
		},
		{
			name:       "orthographic zoomed",
			cam:        NewOrthographicCamera(WithBounds(-4, 4, -2, 2), WithZoom(4)),
			distance:   1,
			wantWidth:  2,
			wantHeight: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, h := tc.cam.FrustumSizeAt(tc.distance)
			if !almostEqual(w, tc.wantWidth) || !almostEqual(h, tc.wantHeight) {
				t.Errorf("FrustumSizeAt(%v) = (%v, %v), want (%v, %v)", tc.distance, w, h, tc.wantWidth, tc.wantHeight)
			}
		})
	}
}

func TestOrthographicApplyZoom(t *testing.T) {
	testCases := []struct {
		name        string
		scale       float32
		min, max    float32
		wantZoom    float32
		wantChanged bool
	}{
		{name: "zoom in", scale: 0.5, min: 0, max: 10, wantZoom: 2, wantChanged: true},
		{name: "zoom out", scale: 4, min: 0, max: 10, wantZoom: 0.25, wantChanged: true},
		{name: "clamped to max", scale: 0.1, min: 0, max: 1.5, wantZoom: 1.5, wantChanged: true},
		{name: "clamped to min", scale: 10, min: 0.5, max: 2, wantZoom: 0.5, wantChanged: true},
		{name: "unit scale", scale: 1, min: 0, max: 10, wantZoom: 1, wantChanged: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cam := NewOrthographicCamera()
			changed := cam.ApplyZoom(tc.scale, tc.min, tc.max)
			if changed != tc.wantChanged {
				t.Errorf("ApplyZoom() changed = %v, want %v", changed, tc.wantChanged)
			}
			if !almostEqual(cam.Zoom(), tc.wantZoom) {
				t.Errorf("Zoom() = %v, want %v", cam.Zoom(), tc.wantZoom)
			}
		})
	}

	persp := NewPerspectiveCamera()
	if persp.ApplyZoom(0.5, 0, 10) || persp.Zoom() != 1 {
		t.Error("perspective ApplyZoom should leave zoom unchanged and report false")
	}
}

func TestUnprojectInvertsViewProjection(t *testing.T) {
	cameras := map[string]Camera{
		"perspective":  NewPerspectiveCamera(WithPosition(3, 4, 5), WithLookAt(0, 0, 0), WithAspect(1.5)),
		"orthographic": NewOrthographicCamera(WithPosition(3, 4, 5), WithLookAt(0, 0, 0), WithBounds(-6, 6, -4, 4)),
	}
	point := mgl32.Vec3{1, 0, -1}

	for name, cam := range cameras {
		t.Run(name, func(t *testing.T) {
			ndc := common.TransformPoint(cam.ViewProjectionMatrix(), point)
			got := cam.Unproject(ndc)
			if !vecAlmostEqual(got, point, 1e-3) {
				t.Errorf("Unproject(project(%v)) = %v", point, got)
			}
		})
	}
}

func TestLookAtSelfKeepsOrientation(t *testing.T) {
	cam := NewPerspectiveCamera(WithPosition(0, 0, 5), WithLookAt(0, 0, 0))
	before := cam.Forward()

	cam.LookAt(cam.Position())

	if cam.Forward() != before {
		t.Errorf("Forward() = %v, want unchanged %v", cam.Forward(), before)
	}
}

func TestSetAspect(t *testing.T) {
	ortho := NewOrthographicCamera(WithBounds(-1, 1, -1, 1))
	ortho.SetAspect(2)
	l, r, b, top := ortho.Bounds()
	if !almostEqual(l, -2) || !almostEqual(r, 2) || !almostEqual(b, -1) || !almostEqual(top, 1) {
		t.Errorf("Bounds() = (%v, %v, %v, %v), want (-2, 2, -1, 1)", l, r, b, top)
	}

	persp := NewPerspectiveCamera()
	persp.SetAspect(0)
	if persp.Aspect() != 1 {
		t.Errorf("Aspect() = %v after invalid SetAspect, want 1", persp.Aspect())
	}
}

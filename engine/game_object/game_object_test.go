package game_object

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const float32EqualityThreshold = 1e-5

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) <= float32EqualityThreshold
}

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()

	if !obj.Enabled() {
		t.Error("new object should be enabled")
	}
	if obj.Ephemeral() {
		t.Error("new object should not be ephemeral")
	}
	if sx, sy, sz := obj.Scale(); sx != 1 || sy != 1 || sz != 1 {
		t.Errorf("Scale() = (%v, %v, %v), want unit scale", sx, sy, sz)
	}
	if tint := obj.Tint(); tint != [4]float32{1, 1, 1, 1} {
		t.Errorf("Tint() = %v, want white", tint)
	}
	if obj.ID() != 0 {
		t.Errorf("ID() = %d, want 0", obj.ID())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	src := NewGameObject(
		WithID(7),
		WithName("tower"),
		WithMesh("meshes/tower"),
		WithPosition(1, 2, 3),
		WithScale(2, 2, 2),
		WithTint([4]float32{0.2, 0.4, 0.6, 1}),
		WithEphemeral(true),
	)

	c := src.Clone()
	if c.ID() != 0 {
		t.Errorf("clone ID = %d, want 0", c.ID())
	}
	if c.Name() != "tower" || c.Mesh() != "meshes/tower" || !c.Ephemeral() {
		t.Errorf("clone lost attributes: name=%q mesh=%q ephemeral=%v", c.Name(), c.Mesh(), c.Ephemeral())
	}
	if c.Tint() != src.Tint() {
		t.Errorf("clone tint = %v, want %v", c.Tint(), src.Tint())
	}

	c.SetPosition(9, 9, 9)
	c.SetTint([4]float32{1, 0, 0, 1})
	if x, y, z := src.Position(); x != 1 || y != 2 || z != 3 {
		t.Errorf("moving the clone moved the source to (%v, %v, %v)", x, y, z)
	}
	if src.Tint() == c.Tint() {
		t.Error("tinting the clone tinted the source")
	}
}

func TestBoundingRadius(t *testing.T) {
	testCases := []struct {
		name string
		opts []GameObjectBuilderOption
		want float32
	}{
		{name: "default", want: 1},
		{name: "explicit radius", opts: []GameObjectBuilderOption{WithBoundingRadius(0.75)}, want: 0.75},
		{name: "largest scale wins", opts: []GameObjectBuilderOption{WithBoundingRadius(0.5), WithScale(1, 4, 2)}, want: 2},
		{name: "negative scale", opts: []GameObjectBuilderOption{WithScale(-3, 1, 1)}, want: 3},
		{name: "invalid radius ignored", opts: []GameObjectBuilderOption{WithBoundingRadius(-1)}, want: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewGameObject(tc.opts...).BoundingRadius(); !almostEqual(got, tc.want) {
				t.Errorf("BoundingRadius() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestModelMatrixPlacesOrigin(t *testing.T) {
	obj := NewGameObject(WithPosition(2.5, 0, 3.5), WithScale(2, 2, 2), WithRotation(0, math.Pi/2, 0))

	m := obj.ModelMatrix()
	origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !almostEqual(origin[0], 2.5) || !almostEqual(origin[1], 0) || !almostEqual(origin[2], 3.5) {
		t.Errorf("model origin = %v, want (2.5, 0, 3.5)", origin.Vec3())
	}

	// +X rotated a quarter turn about Y lands on -Z, then doubled.
	x := m.Mul4x1(mgl32.Vec4{1, 0, 0, 0})
	if !almostEqual(x[0], 0) || !almostEqual(x[2], -2) {
		t.Errorf("model X axis = %v, want (0, 0, -2)", x.Vec3())
	}
}

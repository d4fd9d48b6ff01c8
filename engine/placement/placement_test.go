package placement

import (
	"math/rand"
	"testing"

	"github.com/Carmen-Shannon/oxy-placer/engine/assets"
	"github.com/Carmen-Shannon/oxy-placer/engine/camera"
	"github.com/Carmen-Shannon/oxy-placer/engine/game_object"
	"github.com/Carmen-Shannon/oxy-placer/engine/grid"
	"github.com/Carmen-Shannon/oxy-placer/engine/input"
	"github.com/Carmen-Shannon/oxy-placer/engine/logger"
	"github.com/Carmen-Shannon/oxy-placer/engine/scene"
)

const float32EqualityThreshold = 1e-4

func almostEqual(a, b float32) bool {
	d := a - b
	return d <= float32EqualityThreshold && d >= -float32EqualityThreshold
}

type rig struct {
	ctrl Controller
	scn  scene.Scene
	reg  assets.Registry
}

func standardTemplates() []assets.RegistryBuilderOption {
	return []assets.RegistryBuilderOption{
		assets.WithTemplate(DefaultPlaceable, game_object.NewGameObject(game_object.WithName("tower"), game_object.WithMesh("tower"))),
		assets.WithTemplate(DefaultAura, game_object.NewGameObject(game_object.WithName("glow"), game_object.WithMesh("glow"), game_object.WithEphemeral(true))),
	}
}

func newRig(t *testing.T, cam camera.Camera, regOpts []assets.RegistryBuilderOption, options ...ControllerBuilderOption) rig {
	t.Helper()
	scn := scene.NewScene("placement", cam, scene.WithLogger(logger.Discard()))
	reg := assets.NewRegistry(append([]assets.RegistryBuilderOption{assets.WithLogger(logger.Discard()), assets.WithWorkers(1)}, regOpts...)...)
	opts := append([]ControllerBuilderOption{WithLogger(logger.Discard()), WithViewport(100, 100)}, options...)
	return rig{ctrl: NewController(cam, scn, reg, opts...), scn: scn, reg: reg}
}

// topDownOrtho maps NDC (x, y) onto the ground point (5x, 0, -5y).
func topDownOrtho() camera.Camera {
	return camera.NewOrthographicCamera(
		camera.WithPosition(0, 10, 0),
		camera.WithLookAt(0, 0, 0),
		camera.WithBounds(-5, 5, -5, 5),
	)
}

func TestHoverTopDownSnapsToOrigin(t *testing.T) {
	cam := camera.NewPerspectiveCamera(camera.WithPosition(0, 10, 0), camera.WithLookAt(0, 0, 0))
	r := newRig(t, cam, standardTemplates())

	if r.ctrl.Marker().Enabled() {
		t.Error("marker visible before the first hover")
	}

	cell, ok := r.ctrl.Hover(0, 0)
	if !ok {
		t.Fatal("Hover(0, 0) missed the ground")
	}
	if cell != (grid.Cell{Column: 0, Row: 0}) {
		t.Errorf("Hover cell = %v, want 0,0", cell)
	}

	x, y, z := r.ctrl.Marker().Position()
	if x != 0.5 || y != 0 || z != 0.5 {
		t.Errorf("marker at (%v, %v, %v), want (0.5, 0, 0.5)", x, y, z)
	}
	if !r.ctrl.Marker().Enabled() {
		t.Error("marker not shown after hover")
	}
	if r.ctrl.Marker().Tint() != DefaultFreeTint {
		t.Errorf("marker tint = %v, want free tint", r.ctrl.Marker().Tint())
	}
}

func TestDuplicateConfirm(t *testing.T) {
	r := newRig(t, topDownOrtho(), standardTemplates())

	first, ok := r.ctrl.Confirm(0.5, -0.7)
	if !ok {
		t.Fatal("first Confirm did not place")
	}
	if first.Cell != (grid.Cell{Column: 2, Row: 3}) {
		t.Fatalf("placed at %v, want 2,3", first.Cell)
	}
	if _, ok := r.ctrl.Confirm(0.5, -0.7); ok {
		t.Error("second Confirm on the same cell placed again")
	}

	if r.ctrl.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.ctrl.Count())
	}
	if r.ctrl.Occupancy().Len() != 1 {
		t.Errorf("occupancy grew to %d, want 1", r.ctrl.Occupancy().Len())
	}
	if r.scn.Count() != 1 {
		t.Errorf("scene Count() = %d, want 1", r.scn.Count())
	}
	// marker + one aura
	if r.scn.CountEphemeral() != 2 {
		t.Errorf("scene CountEphemeral() = %d, want 2", r.scn.CountEphemeral())
	}

	for name, obj := range map[string]game_object.GameObject{"object": first.Object, "aura": first.Aura} {
		x, y, z := obj.Position()
		if !almostEqual(x, 2.5) || y != 0 || !almostEqual(z, 3.5) {
			t.Errorf("%s at (%v, %v, %v), want (2.5, 0, 3.5)", name, x, y, z)
		}
	}
	if r.scn.Get(first.ID) != first.Object {
		t.Error("placed object not retrievable from the scene by its ID")
	}
	if r.ctrl.Marker().Tint() != DefaultOccupiedTint {
		t.Errorf("marker tint after placing = %v, want occupied tint", r.ctrl.Marker().Tint())
	}
}

func TestParallelRayIsNoop(t *testing.T) {
	cam := camera.NewPerspectiveCamera(camera.WithPosition(0, 1, 5), camera.WithLookAt(0, 1, 0))
	r := newRig(t, cam, standardTemplates())

	if _, ok := r.ctrl.Hover(0, 0); ok {
		t.Error("Hover on a parallel ray reported a cell")
	}
	if _, ok := r.ctrl.Confirm(0, 0); ok {
		t.Error("Confirm on a parallel ray placed an object")
	}
	if r.ctrl.Count() != 0 || r.ctrl.Occupancy().Len() != 0 || r.scn.Count() != 0 {
		t.Errorf("side effects: Count=%d occupancy=%d scene=%d", r.ctrl.Count(), r.ctrl.Occupancy().Len(), r.scn.Count())
	}
	if r.ctrl.Marker().Enabled() {
		t.Error("marker shown after a missed hover")
	}
}

func TestMissedHoverKeepsMarker(t *testing.T) {
	cam := camera.NewPerspectiveCamera(camera.WithPosition(0, 1, 5), camera.WithLookAt(0, 1, 0))
	r := newRig(t, cam, standardTemplates())

	if _, ok := r.ctrl.Hover(0, -0.9); !ok {
		t.Fatal("Hover toward the ground missed")
	}
	x0, y0, z0 := r.ctrl.Marker().Position()

	for _, ndcY := range []float32{0, 0.9} {
		if _, ok := r.ctrl.Hover(0, ndcY); ok {
			t.Errorf("Hover(0, %v) should miss", ndcY)
		}
	}

	if x, y, z := r.ctrl.Marker().Position(); x != x0 || y != y0 || z != z0 {
		t.Errorf("marker moved to (%v, %v, %v) on a miss, want (%v, %v, %v)", x, y, z, x0, y0, z0)
	}
}

func TestTemplateErrorsLeaveNoSideEffects(t *testing.T) {
	placeable := game_object.NewGameObject(game_object.WithName("tower"))
	ephemeralPlaceable := game_object.NewGameObject(game_object.WithEphemeral(true))
	aura := game_object.NewGameObject(game_object.WithEphemeral(true))
	solidAura := game_object.NewGameObject()

	testCases := []struct {
		name    string
		regOpts []assets.RegistryBuilderOption
	}{
		{name: "missing placeable", regOpts: []assets.RegistryBuilderOption{assets.WithTemplate(DefaultAura, aura)}},
		{name: "missing aura", regOpts: []assets.RegistryBuilderOption{assets.WithTemplate(DefaultPlaceable, placeable)}},
		{name: "persisted aura", regOpts: []assets.RegistryBuilderOption{assets.WithTemplate(DefaultPlaceable, placeable), assets.WithTemplate(DefaultAura, solidAura)}},
		{name: "ephemeral placeable", regOpts: []assets.RegistryBuilderOption{assets.WithTemplate(DefaultPlaceable, ephemeralPlaceable), assets.WithTemplate(DefaultAura, aura)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRig(t, topDownOrtho(), tc.regOpts)

			if _, ok := r.ctrl.Confirm(0.5, -0.7); ok {
				t.Fatal("Confirm placed despite a template error")
			}
			if r.ctrl.Count() != 0 || r.ctrl.Occupancy().Len() != 0 {
				t.Errorf("Count=%d occupancy=%d, want 0", r.ctrl.Count(), r.ctrl.Occupancy().Len())
			}
			if r.scn.Count() != 0 || r.scn.CountEphemeral() != 1 {
				t.Errorf("scene Count=%d CountEphemeral=%d, want 0 and 1 (marker)", r.scn.Count(), r.scn.CountEphemeral())
			}
		})
	}
}

func TestCustomPlaceableAndAura(t *testing.T) {
	regOpts := []assets.RegistryBuilderOption{
		assets.WithTemplate("house", game_object.NewGameObject(game_object.WithMesh("house"))),
		assets.WithTemplate("smoke", game_object.NewGameObject(game_object.WithMesh("smoke"), game_object.WithEphemeral(true))),
	}
	r := newRig(t, topDownOrtho(), regOpts, WithPlaceable("house"), WithAura("smoke"))

	placed, ok := r.ctrl.Confirm(0, 0)
	if !ok {
		t.Fatal("Confirm did not place")
	}
	if placed.Object.Mesh() != "house" || placed.Aura.Mesh() != "smoke" {
		t.Errorf("placed meshes %q/%q, want house/smoke", placed.Object.Mesh(), placed.Aura.Mesh())
	}
}

func TestCellSizeScalesSnap(t *testing.T) {
	r := newRig(t, topDownOrtho(), standardTemplates(), WithGrid(grid.NewGrid(grid.WithCellSize(2))))

	// ground point (2.5, 0, 3.5) lies in cell (1, 1) of a 2-unit grid
	placed, ok := r.ctrl.Confirm(0.5, -0.7)
	if !ok {
		t.Fatal("Confirm did not place")
	}
	if placed.Cell != (grid.Cell{Column: 1, Row: 1}) {
		t.Errorf("cell = %v, want 1,1", placed.Cell)
	}
	if x, _, z := placed.Object.Position(); x != 3 || z != 3 {
		t.Errorf("object at x=%v z=%v, want 3, 3", x, z)
	}
}

func TestOccupancyExclusivity(t *testing.T) {
	r := newRig(t, topDownOrtho(), standardTemplates())
	rng := rand.New(rand.NewSource(7))

	for range 500 {
		ndcX := float32(rng.Float64()*1.6 - 0.8)
		ndcY := float32(rng.Float64()*1.6 - 0.8)
		r.ctrl.Confirm(ndcX, ndcY)
	}

	seen := make(map[grid.Cell]bool)
	for _, p := range r.ctrl.Placed() {
		if seen[p.Cell] {
			t.Fatalf("cell %v placed twice", p.Cell)
		}
		seen[p.Cell] = true
	}
	if r.ctrl.Count() != r.ctrl.Occupancy().Len() || r.ctrl.Count() != r.scn.Count() {
		t.Errorf("Count=%d occupancy=%d scene=%d, want all equal", r.ctrl.Count(), r.ctrl.Occupancy().Len(), r.scn.Count())
	}
}

func TestClickVersusDrag(t *testing.T) {
	var callbacks []PlacedObject
	r := newRig(t, topDownOrtho(), standardTemplates(), WithPlaceCallback(func(p PlacedObject) {
		callbacks = append(callbacks, p)
	}))

	testCases := []struct {
		name   string
		events []input.Event
		placed bool
	}{
		{
			name: "click with jitter",
			events: []input.Event{
				input.PointerDown{PointerID: 1, Button: input.ButtonLeft, X: 75, Y: 85},
				input.PointerMove{PointerID: 1, X: 76, Y: 86},
				input.PointerUp{PointerID: 1, Button: input.ButtonLeft, X: 76, Y: 86},
			},
			placed: true,
		},
		{
			name: "drag that returns to the start",
			events: []input.Event{
				input.PointerDown{PointerID: 1, Button: input.ButtonLeft, X: 25, Y: 25},
				input.PointerMove{PointerID: 1, X: 40, Y: 25},
				input.PointerUp{PointerID: 1, Button: input.ButtonLeft, X: 25, Y: 25},
			},
			placed: false,
		},
		{
			name: "secondary button",
			events: []input.Event{
				input.PointerDown{PointerID: 1, Button: input.ButtonRight, X: 25, Y: 25},
				input.PointerUp{PointerID: 1, Button: input.ButtonRight, X: 25, Y: 25},
			},
			placed: false,
		},
		{
			name: "cancelled press",
			events: []input.Event{
				input.PointerDown{PointerID: 1, Button: input.ButtonLeft, X: 25, Y: 25},
				input.PointerCancel{PointerID: 1},
				input.PointerUp{PointerID: 1, Button: input.ButtonLeft, X: 25, Y: 25},
			},
			placed: false,
		},
		{
			name: "touch tap",
			events: []input.Event{
				input.PointerDown{PointerID: 4, Type: input.PointerTouch, X: 10, Y: 10},
				input.PointerUp{PointerID: 4, Type: input.PointerTouch, X: 10, Y: 10},
			},
			placed: true,
		},
		{
			name: "pinch with a still first finger",
			events: []input.Event{
				input.PointerDown{PointerID: 1, Type: input.PointerTouch, X: 50, Y: 50},
				input.PointerDown{PointerID: 2, Type: input.PointerTouch, X: 60, Y: 60},
				input.PointerMove{PointerID: 2, Type: input.PointerTouch, X: 90, Y: 90},
				input.PointerUp{PointerID: 1, Type: input.PointerTouch, X: 50, Y: 50},
				input.PointerUp{PointerID: 2, Type: input.PointerTouch, X: 90, Y: 90},
			},
			placed: false,
		},
		{
			name: "second finger lifted before the first",
			events: []input.Event{
				input.PointerDown{PointerID: 1, Type: input.PointerTouch, X: 50, Y: 50},
				input.PointerDown{PointerID: 2, Type: input.PointerTouch, X: 60, Y: 60},
				input.PointerUp{PointerID: 2, Type: input.PointerTouch, X: 60, Y: 60},
				input.PointerUp{PointerID: 1, Type: input.PointerTouch, X: 50, Y: 50},
			},
			placed: false,
		},
		{
			name: "tap after a pinch",
			events: []input.Event{
				input.PointerDown{PointerID: 3, Type: input.PointerTouch, X: 30, Y: 50},
				input.PointerUp{PointerID: 3, Type: input.PointerTouch, X: 30, Y: 50},
			},
			placed: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := r.ctrl.Count()
			for _, ev := range tc.events {
				r.ctrl.Enqueue(ev)
			}
			r.ctrl.Update(1.0 / 60)

			if placed := r.ctrl.Count() > before; placed != tc.placed {
				t.Errorf("placed = %v, want %v", placed, tc.placed)
			}
		})
	}

	if len(callbacks) != 3 {
		t.Errorf("place callback fired %d times, want 3", len(callbacks))
	}
	if len(callbacks) > 0 && callbacks[0].Cell != (grid.Cell{Column: 2, Row: 3}) {
		t.Errorf("first callback cell = %v, want 2,3", callbacks[0].Cell)
	}
}

func TestPointerMoveHovers(t *testing.T) {
	r := newRig(t, topDownOrtho(), standardTemplates())

	r.ctrl.Enqueue(input.PointerMove{PointerID: 1, X: 75, Y: 85})
	if !r.ctrl.Update(0) {
		t.Error("Update after a hovering move reported no change")
	}
	if x, _, z := r.ctrl.Marker().Position(); x != 2.5 || z != 3.5 {
		t.Errorf("marker at x=%v z=%v, want 2.5, 3.5", x, z)
	}
}

func TestReset(t *testing.T) {
	r := newRig(t, topDownOrtho(), standardTemplates())
	r.ctrl.Confirm(0.5, -0.7)
	r.ctrl.Confirm(-0.5, 0.5)

	r.ctrl.Reset()

	if r.ctrl.Count() != 0 || r.ctrl.Occupancy().Len() != 0 {
		t.Errorf("Reset left Count=%d occupancy=%d", r.ctrl.Count(), r.ctrl.Occupancy().Len())
	}
	if r.scn.Count() != 0 || r.scn.CountEphemeral() != 1 {
		t.Errorf("Reset left scene Count=%d CountEphemeral=%d, want 0 and 1 (marker)", r.scn.Count(), r.scn.CountEphemeral())
	}
	if _, ok := r.ctrl.Confirm(0.5, -0.7); !ok {
		t.Error("cannot place on a cell freed by Reset")
	}
}

func TestNewControllerPanicsOnNilDeps(t *testing.T) {
	cam := topDownOrtho()
	scn := scene.NewScene("s", cam)
	reg := assets.NewRegistry(assets.WithLogger(logger.Discard()))

	testCases := []struct {
		name string
		cam  camera.Camera
		scn  scene.Scene
		reg  assets.Registry
	}{
		{name: "nil camera", scn: scn, reg: reg},
		{name: "nil scene", cam: cam, reg: reg},
		{name: "nil registry", cam: cam, scn: scn},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("NewController did not panic")
				}
			}()
			NewController(tc.cam, tc.scn, tc.reg)
		})
	}
}

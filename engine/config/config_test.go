package config

import (
	"context"
	"errors"
	"io"
	"math"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-placer/engine/assets"
	"github.com/Carmen-Shannon/oxy-placer/engine/camera"
	"github.com/Carmen-Shannon/oxy-placer/engine/logger"
	"github.com/Carmen-Shannon/oxy-placer/engine/placement"
	"github.com/Carmen-Shannon/oxy-placer/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	doc := []byte(`
log_level: debug
grid:
  cell_size: 2
controls:
  target: [1, 0, 1]
  max_distance: .inf
  min_azimuth_angle: -45
  max_azimuth_angle: 45
  mouse_buttons:
    left: pan
`)

	cfg, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Grid.CellSize != 2 {
		t.Errorf("grid.cell_size = %v, want 2", cfg.Grid.CellSize)
	}
	if !math.IsInf(cfg.Controls.MaxDistance, 1) {
		t.Errorf("controls.max_distance = %v, want +Inf", cfg.Controls.MaxDistance)
	}
	if cfg.Controls.MouseButtons.Left != "pan" || cfg.Controls.MouseButtons.Right != "pan" {
		t.Errorf("mouse_buttons = %+v, want left overridden and right kept", cfg.Controls.MouseButtons)
	}
	if cfg.Window.Width != 800 {
		t.Errorf("window.width = %d, want the default 800", cfg.Window.Width)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	if _, err := Parse([]byte("grid:\n  cell_sise: 2\n")); err == nil {
		t.Error("Parse accepted a misspelled key")
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }},
		{name: "zero window", mutate: func(c *Config) { c.Window.Width = 0 }},
		{name: "unknown projection", mutate: func(c *Config) { c.Camera.Projection = "fisheye" }},
		{name: "fov too wide", mutate: func(c *Config) { c.Camera.Fov = 180 }},
		{name: "far before near", mutate: func(c *Config) { c.Camera.Far = 0.01 }},
		{name: "zero up", mutate: func(c *Config) { c.Camera.Up = [3]float64{} }},
		{name: "inverted distance", mutate: func(c *Config) { c.Controls.MinDistance = 50; c.Controls.MaxDistance = 10 }},
		{name: "polar beyond 180", mutate: func(c *Config) { c.Controls.MaxPolarAngle = 200 }},
		{name: "damping factor zero", mutate: func(c *Config) { c.Controls.DampingFactor = 0 }},
		{name: "unknown action", mutate: func(c *Config) { c.Controls.Touches.Two = "spin" }},
		{name: "zero cell size", mutate: func(c *Config) { c.Grid.CellSize = 0 }},
		{name: "zero drag threshold", mutate: func(c *Config) { c.Placement.DragThreshold = 0 }},
		{name: "missing placeable template", mutate: func(c *Config) { c.Placement.Placeable = "castle" }},
		{name: "persisted aura", mutate: func(c *Config) { c.Templates[1].Ephemeral = false }},
		{name: "duplicate template", mutate: func(c *Config) { c.Templates = append(c.Templates, c.Templates[0]) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "placer.yaml")

	cfg := Default()
	cfg.Grid.CellSize = 0.5
	cfg.Camera.Projection = ProjectionOrthographic
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Grid.CellSize != 0.5 || loaded.Camera.Projection != ProjectionOrthographic {
		t.Errorf("loaded grid=%v projection=%q", loaded.Grid.CellSize, loaded.Camera.Projection)
	}
	if !math.IsInf(loaded.Controls.MinAzimuthAngle, -1) {
		t.Errorf("min_azimuth_angle = %v, want -Inf after round trip", loaded.Controls.MinAzimuthAngle)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestNewCamera(t *testing.T) {
	testCases := []struct {
		name       string
		projection string
		wantOrtho  bool
	}{
		{name: "perspective", projection: ProjectionPerspective},
		{name: "orthographic", projection: ProjectionOrthographic, wantOrtho: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.Camera.Projection = tc.projection

			cam, err := cfg.NewCamera()
			if err != nil {
				t.Fatalf("NewCamera: %v", err)
			}
			ortho, isOrtho := cam.(camera.OrthographicCamera)
			if isOrtho != tc.wantOrtho {
				t.Fatalf("camera %T, want orthographic=%v", cam, tc.wantOrtho)
			}
			if isOrtho {
				l, r, b, tp := ortho.Bounds()
				if tp != 10 || b != -10 || r-l <= tp-b {
					t.Errorf("bounds = (%v, %v, %v, %v), want half height 10 widened by aspect", l, r, b, tp)
				}
			}
		})
	}
}

func TestControllerOptions(t *testing.T) {
	cfg := Default()
	cfg.Controls.Target = [3]float64{1, 0, 1}
	cfg.Controls.MaxPolarAngle = 30

	cam, err := cfg.NewCamera()
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	opts, err := cfg.ControllerOptions()
	if err != nil {
		t.Fatalf("ControllerOptions: %v", err)
	}
	opts = append(opts, camera.WithLogger(logger.Discard()))
	ctrl := camera.NewCameraController(cam, opts...)

	if ctrl.Target() != (mgl32.Vec3{1, 0, 1}) {
		t.Errorf("Target() = %v, want (1, 0, 1)", ctrl.Target())
	}
	// the default camera sits about 45 degrees off the up axis, so the limit applies
	if limit := mgl32.DegToRad(30); math.Abs(float64(ctrl.PolarAngle()-limit)) > 1e-4 {
		t.Errorf("PolarAngle() = %v, want %v", ctrl.PolarAngle(), limit)
	}
}

func TestControllerOptionsRejectsUnknownAction(t *testing.T) {
	cfg := Default()
	cfg.Controls.MouseButtons.Middle = "warp"

	if _, err := cfg.ControllerOptions(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ControllerOptions() error = %v, want ErrInvalidConfig", err)
	}
}

func TestTemplatesDrivePlacement(t *testing.T) {
	cfg := Default()
	cfg.Camera.Projection = ProjectionOrthographic
	cfg.Camera.Position = [3]float64{0, 10, 0}
	cfg.Controls.Target = [3]float64{0, 0, 0}

	cam, err := cfg.NewCamera()
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	reg := assets.NewRegistry(assets.WithLogger(logger.Discard()))
	if err := reg.Preload(context.Background(), cfg.TemplateNames(), cfg.TemplateLoader()); err != nil {
		t.Fatalf("Preload: %v", err)
	}
	scn := scene.NewScene("config", cam, scene.WithLogger(logger.Discard()))
	ctrl := placement.NewController(cam, scn, reg, append(cfg.PlacementOptions(), placement.WithLogger(logger.Discard()))...)

	placed, ok := ctrl.Confirm(0, 0)
	if !ok {
		t.Fatal("Confirm did not place")
	}
	if placed.Object.Mesh() != "meshes/tower" || placed.Aura.Mesh() != "meshes/ring" {
		t.Errorf("placed meshes %q/%q", placed.Object.Mesh(), placed.Aura.Mesh())
	}
	if sx, sy, _ := placed.Object.Scale(); sx != 0.8 || sy != 1.6 {
		t.Errorf("placed scale = (%v, %v), want template scale", sx, sy)
	}
	if scn.Count() != 1 {
		t.Errorf("scene Count() = %d, want 1", scn.Count())
	}
}

func TestTemplateLoaderUnknownName(t *testing.T) {
	load := Default().TemplateLoader()
	if _, err := load("castle"); !errors.Is(err, assets.ErrTemplateNotFound) {
		t.Errorf("load(castle) error = %v, want ErrTemplateNotFound", err)
	}
}

func TestLogger(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "warn"

	l, err := cfg.Logger(io.Discard)
	if err != nil {
		t.Fatalf("Logger: %v", err)
	}
	if l.Enabled(logger.LevelInfo) || !l.Enabled(logger.LevelWarn) {
		t.Errorf("logger level = %v, want warn", l.Level())
	}
}

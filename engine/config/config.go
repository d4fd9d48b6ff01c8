// Package config loads the YAML file that configures a placement session and
// converts it into the functional options the engine packages take.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/Carmen-Shannon/oxy-placer/engine/camera"
	"github.com/Carmen-Shannon/oxy-placer/engine/logger"
	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

const (
	ProjectionPerspective  = "perspective"
	ProjectionOrthographic = "orthographic"
)

// Config is the root of the configuration file.
type Config struct {
	LogLevel  string           `yaml:"log_level"`
	Window    WindowConfig     `yaml:"window"`
	Camera    CameraConfig     `yaml:"camera"`
	Controls  ControlsConfig   `yaml:"controls"`
	Grid      GridConfig       `yaml:"grid"`
	Placement PlacementConfig  `yaml:"placement"`
	Templates []TemplateConfig `yaml:"templates"`
}

// WindowConfig sizes the platform window.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	MinWidth  int    `yaml:"min_width"`
	MinHeight int    `yaml:"min_height"`
}

// CameraConfig describes the starting camera. Angles are in degrees.
type CameraConfig struct {
	Projection string     `yaml:"projection"` // perspective, orthographic
	Position   [3]float64 `yaml:"position"`
	Up         [3]float64 `yaml:"up"`
	Fov        float64    `yaml:"fov"`
	HalfHeight float64    `yaml:"half_height"` // orthographic only
	Near       float64    `yaml:"near"`
	Far        float64    `yaml:"far"`
}

// ControlsConfig configures the orbit controller. Angles are in degrees;
// use .inf / -.inf for unbounded limits.
type ControlsConfig struct {
	Target             [3]float64 `yaml:"target"`
	MinDistance        float64    `yaml:"min_distance"`
	MaxDistance        float64    `yaml:"max_distance"`
	MinZoom            float64    `yaml:"min_zoom"`
	MaxZoom            float64    `yaml:"max_zoom"`
	MinPolarAngle      float64    `yaml:"min_polar_angle"`
	MaxPolarAngle      float64    `yaml:"max_polar_angle"`
	MinAzimuthAngle    float64    `yaml:"min_azimuth_angle"`
	MaxAzimuthAngle    float64    `yaml:"max_azimuth_angle"`
	EnableDamping      bool       `yaml:"enable_damping"`
	DampingFactor      float64    `yaml:"damping_factor"`
	EnableZoom         bool       `yaml:"enable_zoom"`
	EnableRotate       bool       `yaml:"enable_rotate"`
	EnablePan          bool       `yaml:"enable_pan"`
	ZoomToCursor       bool       `yaml:"zoom_to_cursor"`
	ScreenSpacePanning bool       `yaml:"screen_space_panning"`
	RotateSpeed        float64    `yaml:"rotate_speed"`
	ZoomSpeed          float64    `yaml:"zoom_speed"`
	PanSpeed           float64    `yaml:"pan_speed"`
	KeyPanSpeed        float64    `yaml:"key_pan_speed"`
	AutoRotate         bool       `yaml:"auto_rotate"`
	AutoRotateSpeed    float64    `yaml:"auto_rotate_speed"`
	MouseButtons       struct {
		Left   string `yaml:"left"`
		Middle string `yaml:"middle"`
		Right  string `yaml:"right"`
	} `yaml:"mouse_buttons"`
	Touches struct {
		One string `yaml:"one"`
		Two string `yaml:"two"`
	} `yaml:"touches"`
}

// GridConfig sizes the placement grid.
type GridConfig struct {
	CellSize float64 `yaml:"cell_size"`
	Height   float64 `yaml:"height"`
}

// PlacementConfig names the templates placed on confirm and styles the marker.
type PlacementConfig struct {
	Placeable     string     `yaml:"placeable"`
	Aura          string     `yaml:"aura"`
	DragThreshold float64    `yaml:"drag_threshold"`
	FreeTint      [4]float64 `yaml:"free_tint"`
	OccupiedTint  [4]float64 `yaml:"occupied_tint"`
}

// TemplateConfig describes one object template for the asset registry.
type TemplateConfig struct {
	Name           string     `yaml:"name"`
	Mesh           string     `yaml:"mesh"`
	Scale          [3]float64 `yaml:"scale"`
	Tint           [4]float64 `yaml:"tint"`
	BoundingRadius float64    `yaml:"bounding_radius"`
	Ephemeral      bool       `yaml:"ephemeral"`
}

// Default returns the configuration used when no file is given: an 800x600 window,
// a perspective camera orbiting the origin and a unit grid with a tower placeable.
func Default() *Config {
	cfg := &Config{
		LogLevel: "info",
		Window: WindowConfig{
			Title:     "oxy-placer",
			Width:     800,
			Height:    600,
			MinWidth:  320,
			MinHeight: 240,
		},
		Camera: CameraConfig{
			Projection: ProjectionPerspective,
			Position:   [3]float64{8, 10, 8},
			Up:         [3]float64{0, 1, 0},
			Fov:        45,
			HalfHeight: 10,
			Near:       0.1,
			Far:        1000,
		},
		Controls: ControlsConfig{
			MinDistance:        2,
			MaxDistance:        100,
			MinZoom:            0.1,
			MaxZoom:            10,
			MinPolarAngle:      0,
			MaxPolarAngle:      85,
			MinAzimuthAngle:    math.Inf(-1),
			MaxAzimuthAngle:    math.Inf(1),
			EnableDamping:      true,
			DampingFactor:      0.05,
			EnableZoom:         true,
			EnableRotate:       true,
			EnablePan:          true,
			ZoomToCursor:       true,
			ScreenSpacePanning: false,
			RotateSpeed:        1,
			ZoomSpeed:          1,
			PanSpeed:           1,
			KeyPanSpeed:        7,
			AutoRotateSpeed:    2,
		},
		Grid: GridConfig{
			CellSize: 1,
			Height:   0,
		},
		Placement: PlacementConfig{
			Placeable:     "tower",
			Aura:          "tower-aura",
			DragThreshold: 4,
			FreeTint:      [4]float64{0.35, 0.9, 0.45, 0.6},
			OccupiedTint:  [4]float64{0.95, 0.3, 0.3, 0.6},
		},
		Templates: []TemplateConfig{
			{Name: "tower", Mesh: "meshes/tower", Scale: [3]float64{0.8, 1.6, 0.8}, Tint: [4]float64{1, 1, 1, 1}, BoundingRadius: 1},
			{Name: "tower-aura", Mesh: "meshes/ring", Scale: [3]float64{1, 0.05, 1}, Tint: [4]float64{0.4, 0.7, 1, 0.5}, BoundingRadius: 0.75, Ephemeral: true},
		},
	}
	cfg.Controls.MouseButtons.Left = camera.ActionRotate.String()
	cfg.Controls.MouseButtons.Middle = camera.ActionDolly.String()
	cfg.Controls.MouseButtons.Right = camera.ActionPan.String()
	cfg.Controls.Touches.One = camera.ActionRotate.String()
	cfg.Controls.Touches.Two = camera.ActionDollyPan.String()
	return cfg
}

// Load reads a YAML file over the defaults and validates the result. Keys the
// file omits keep their default values; unknown keys are rejected.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - *Config: the loaded configuration
//   - error: read, parse or validation failure
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
//
// Parameters:
//   - data: the YAML document
//
// Returns:
//   - *Config: the parsed configuration
//   - error: parse or validation failure
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
//
// Parameters:
//   - path: the destination file
//
// Returns:
//   - error: serialization or write failure
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Validate checks every section and reports all problems at once.
//
// Returns:
//   - error: nil, or ErrInvalidConfig joined with one error per problem
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		fail("log_level: %w", err)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		fail("window: size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.MinWidth < 0 || c.Window.MinHeight < 0 {
		fail("window: minimum size must not be negative")
	}

	switch c.Camera.Projection {
	case ProjectionPerspective:
		if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
			fail("camera.fov: %v must be in (0, 180)", c.Camera.Fov)
		}
	case ProjectionOrthographic:
		if c.Camera.HalfHeight <= 0 {
			fail("camera.half_height: %v must be positive", c.Camera.HalfHeight)
		}
	default:
		fail("camera.projection: unknown projection %q", c.Camera.Projection)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		fail("camera: need 0 < near < far, got near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.Up == [3]float64{} {
		fail("camera.up: must not be the zero vector")
	}

	ctl := c.Controls
	checkRange := func(name string, lo, hi float64) {
		if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
			fail("controls: %s range [%v, %v] is empty", name, lo, hi)
		}
	}
	checkRange("distance", ctl.MinDistance, ctl.MaxDistance)
	checkRange("zoom", ctl.MinZoom, ctl.MaxZoom)
	checkRange("polar angle", ctl.MinPolarAngle, ctl.MaxPolarAngle)
	checkRange("azimuth angle", ctl.MinAzimuthAngle, ctl.MaxAzimuthAngle)
	if ctl.MinDistance < 0 || ctl.MinZoom < 0 {
		fail("controls: distance and zoom limits must not be negative")
	}
	if ctl.MinPolarAngle < 0 || ctl.MaxPolarAngle > 180 {
		fail("controls: polar angle limits must lie within [0, 180]")
	}
	if ctl.DampingFactor <= 0 || ctl.DampingFactor > 1 {
		fail("controls.damping_factor: %v must be in (0, 1]", ctl.DampingFactor)
	}
	for name, action := range map[string]string{
		"mouse_buttons.left":   ctl.MouseButtons.Left,
		"mouse_buttons.middle": ctl.MouseButtons.Middle,
		"mouse_buttons.right":  ctl.MouseButtons.Right,
		"touches.one":          ctl.Touches.One,
		"touches.two":          ctl.Touches.Two,
	} {
		if _, err := camera.ParseAction(action); err != nil {
			fail("controls.%s: %w", name, err)
		}
	}

	if c.Grid.CellSize <= 0 {
		fail("grid.cell_size: %v must be positive", c.Grid.CellSize)
	}

	if c.Placement.DragThreshold <= 0 {
		fail("placement.drag_threshold: %v must be positive", c.Placement.DragThreshold)
	}

	names := make(map[string]TemplateConfig, len(c.Templates))
	for i, t := range c.Templates {
		if t.Name == "" {
			fail("templates[%d]: missing name", i)
			continue
		}
		if _, dup := names[t.Name]; dup {
			fail("templates[%d]: duplicate name %q", i, t.Name)
		}
		names[t.Name] = t
	}
	if len(c.Templates) > 0 {
		if t, ok := names[c.Placement.Placeable]; !ok {
			fail("placement.placeable: no template named %q", c.Placement.Placeable)
		} else if t.Ephemeral {
			fail("placement.placeable: template %q must not be ephemeral", t.Name)
		}
		if t, ok := names[c.Placement.Aura]; !ok {
			fail("placement.aura: no template named %q", c.Placement.Aura)
		} else if !t.Ephemeral {
			fail("placement.aura: template %q must be ephemeral", t.Name)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

package config

import (
	"fmt"
	"io"

	"github.com/Carmen-Shannon/oxy-placer/common"
	"github.com/Carmen-Shannon/oxy-placer/engine/assets"
	"github.com/Carmen-Shannon/oxy-placer/engine/camera"
	"github.com/Carmen-Shannon/oxy-placer/engine/game_object"
	"github.com/Carmen-Shannon/oxy-placer/engine/grid"
	"github.com/Carmen-Shannon/oxy-placer/engine/logger"
	"github.com/Carmen-Shannon/oxy-placer/engine/placement"
	"github.com/go-gl/mathgl/mgl32"
)

// Logger builds a logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) (*logger.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	return logger.New(level, w), nil
}

// Aspect returns the window's width over height.
func (c *Config) Aspect() float32 {
	if c.Window.Height <= 0 {
		return 1
	}
	return float32(c.Window.Width) / float32(c.Window.Height)
}

// NewCamera builds the configured camera, aimed at the controls target.
//
// Returns:
//   - camera.Camera: a PerspectiveCamera or an OrthographicCamera
//   - error: if the projection is unknown
func (c *Config) NewCamera() (camera.Camera, error) {
	cc := c.Camera
	t := c.Controls.Target
	opts := []camera.CameraBuilderOption{
		camera.WithPosition(float32(cc.Position[0]), float32(cc.Position[1]), float32(cc.Position[2])),
		camera.WithUp(float32(cc.Up[0]), float32(cc.Up[1]), float32(cc.Up[2])),
		camera.WithLookAt(float32(t[0]), float32(t[1]), float32(t[2])),
		camera.WithNear(float32(cc.Near)),
		camera.WithFar(float32(cc.Far)),
		camera.WithAspect(c.Aspect()),
	}

	switch cc.Projection {
	case ProjectionPerspective:
		opts = append(opts, camera.WithFov(mgl32.DegToRad(float32(cc.Fov))))
		return camera.NewPerspectiveCamera(opts...), nil
	case ProjectionOrthographic:
		h := float32(cc.HalfHeight)
		w := h * c.Aspect()
		opts = append(opts, camera.WithBounds(-w, w, -h, h))
		return camera.NewOrthographicCamera(opts...), nil
	default:
		return nil, fmt.Errorf("%w: camera.projection: unknown projection %q", ErrInvalidConfig, cc.Projection)
	}
}

// ControllerOptions converts the controls section into orbit controller options.
//
// Returns:
//   - []camera.CameraControllerOption: options for camera.NewCameraController
//   - error: if a button or gesture names an unknown action
func (c *Config) ControllerOptions() ([]camera.CameraControllerOption, error) {
	ctl := c.Controls

	buttons := camera.MouseButtons{}
	touches := camera.TouchGestures{}
	for _, m := range []struct {
		name string
		src  string
		dst  *camera.Action
	}{
		{"mouse_buttons.left", ctl.MouseButtons.Left, &buttons.Left},
		{"mouse_buttons.middle", ctl.MouseButtons.Middle, &buttons.Middle},
		{"mouse_buttons.right", ctl.MouseButtons.Right, &buttons.Right},
		{"touches.one", ctl.Touches.One, &touches.One},
		{"touches.two", ctl.Touches.Two, &touches.Two},
	} {
		a, err := camera.ParseAction(m.src)
		if err != nil {
			return nil, fmt.Errorf("%w: controls.%s: %w", ErrInvalidConfig, m.name, err)
		}
		*m.dst = a
	}

	return []camera.CameraControllerOption{
		camera.WithTarget(float32(ctl.Target[0]), float32(ctl.Target[1]), float32(ctl.Target[2])),
		camera.WithDistanceBounds(float32(ctl.MinDistance), float32(ctl.MaxDistance)),
		camera.WithZoomBounds(float32(ctl.MinZoom), float32(ctl.MaxZoom)),
		camera.WithPolarBounds(mgl32.DegToRad(float32(ctl.MinPolarAngle)), mgl32.DegToRad(float32(ctl.MaxPolarAngle))),
		camera.WithAzimuthBounds(mgl32.DegToRad(float32(ctl.MinAzimuthAngle)), mgl32.DegToRad(float32(ctl.MaxAzimuthAngle))),
		camera.WithDamping(ctl.EnableDamping, float32(ctl.DampingFactor)),
		camera.WithEnableZoom(ctl.EnableZoom),
		camera.WithEnableRotate(ctl.EnableRotate),
		camera.WithEnablePan(ctl.EnablePan),
		camera.WithZoomToCursor(ctl.ZoomToCursor),
		camera.WithScreenSpacePanning(ctl.ScreenSpacePanning),
		camera.WithRotateSpeed(float32(ctl.RotateSpeed)),
		camera.WithZoomSpeed(float32(ctl.ZoomSpeed)),
		camera.WithPanSpeed(float32(ctl.PanSpeed)),
		camera.WithKeyPanSpeed(float32(ctl.KeyPanSpeed)),
		camera.WithAutoRotate(ctl.AutoRotate, float32(ctl.AutoRotateSpeed)),
		camera.WithMouseButtons(buttons),
		camera.WithTouchGestures(touches),
		camera.WithViewport(float32(c.Window.Width), float32(c.Window.Height)),
	}, nil
}

// GridOptions converts the grid section into grid options.
func (c *Config) GridOptions() []grid.GridBuilderOption {
	return []grid.GridBuilderOption{
		grid.WithCellSize(float32(c.Grid.CellSize)),
		grid.WithHeight(float32(c.Grid.Height)),
	}
}

// PlacementOptions converts the grid and placement sections into placement
// controller options.
func (c *Config) PlacementOptions() []placement.ControllerBuilderOption {
	p := c.Placement
	return []placement.ControllerBuilderOption{
		placement.WithGrid(grid.NewGrid(c.GridOptions()...)),
		placement.WithPlaceable(p.Placeable),
		placement.WithAura(p.Aura),
		placement.WithDragThreshold(float32(p.DragThreshold)),
		placement.WithTints(rgba(p.FreeTint), rgba(p.OccupiedTint)),
		placement.WithViewport(float32(c.Window.Width), float32(c.Window.Height)),
	}
}

// TemplateNames returns the names of the configured templates in file order.
func (c *Config) TemplateNames() []string {
	names := make([]string, 0, len(c.Templates))
	for _, t := range c.Templates {
		names = append(names, t.Name)
	}
	return names
}

// TemplateLoader returns an assets.Loader that builds the configured templates.
// An omitted scale means unit scale and an omitted tint means white.
//
// Returns:
//   - assets.Loader: resolves a name to a new GameObject, or assets.ErrTemplateNotFound
func (c *Config) TemplateLoader() assets.Loader {
	byName := make(map[string]TemplateConfig, len(c.Templates))
	for _, t := range c.Templates {
		byName[t.Name] = t
	}

	return func(name string) (game_object.GameObject, error) {
		t, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q is not in the config", assets.ErrTemplateNotFound, name)
		}
		t.Scale = common.Coalesce(t.Scale, [3]float64{1, 1, 1})
		t.Tint = common.Coalesce(t.Tint, [4]float64{1, 1, 1, 1})
		return game_object.NewGameObject(
			game_object.WithName(t.Name),
			game_object.WithMesh(t.Mesh),
			game_object.WithScale(float32(t.Scale[0]), float32(t.Scale[1]), float32(t.Scale[2])),
			game_object.WithTint(rgba(t.Tint)),
			game_object.WithBoundingRadius(float32(t.BoundingRadius)),
			game_object.WithEphemeral(t.Ephemeral),
		), nil
	}
}

func rgba(c [4]float64) [4]float32 {
	return [4]float32{float32(c[0]), float32(c[1]), float32(c[2]), float32(c[3])}
}

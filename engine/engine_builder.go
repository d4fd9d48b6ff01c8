package engine

import (
	"github.com/Carmen-Shannon/oxy-placer/engine/logger"
	"github.com/Carmen-Shannon/oxy-placer/engine/profiler"
	"github.com/Carmen-Shannon/oxy-placer/engine/scene"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler.
//
// Parameters:
//   - p: the profiler to tick each frame
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithWindow sets the window the engine polls for events. Its input is routed to
// every controller and its resizes to the renderer, cameras and controllers.
//
// Parameters:
//   - w: a pre-configured window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w Host) EngineBuilderOption {
	return func(e *engine) {
		e.host = w
	}
}

// WithRenderer sets the renderer active scenes are drawn with.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r FrameRenderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithController registers a controller during construction.
//
// Parameters:
//   - c: the controller to add
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithController(c Controller) EngineBuilderOption {
	return func(e *engine) {
		if c != nil {
			e.controllers = append(e.controllers, c)
		}
	}
}

// WithScene registers a scene at the given z-index key during engine construction.
//
// Parameters:
//   - key: the z-index determining render order (lower renders first)
//   - s: the Scene to register
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(key int, s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scenes[key] = s
	}
}

// WithRenderFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.renderFrameLimit = frameDuration(fps)
	}
}

// WithRedrawOnChange skips drawing frames in which no controller reported a change,
// nothing was resized and no scene was added or removed.
//
// Parameters:
//   - enabled: true to skip unchanged frames
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRedrawOnChange(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.redrawOnChange = enabled
	}
}

// WithLogger sets the logger for frame loop diagnostics.
//
// Parameters:
//   - l: the logger to use
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(l *logger.Logger) EngineBuilderOption {
	return func(e *engine) {
		if l != nil {
			e.log = l.Tag("Engine")
		}
	}
}

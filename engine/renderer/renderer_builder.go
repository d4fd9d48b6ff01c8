package renderer

import (
	"github.com/Carmen-Shannon/oxy-placer/engine/grid"
	"github.com/Carmen-Shannon/oxy-placer/engine/logger"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.presentMode = mode
	}
}

// WithMSAA sets the multisample anti-aliasing sample count. The default is MSAA4x.
//
// Parameters:
//   - count: MSAAOff or MSAA4x
//
// Returns:
//   - RendererBuilderOption: a function that applies the MSAA option to a renderer
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.msaa = count
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithClearColor sets the background color.
//
// Parameters:
//   - rgba: the clear color
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color to a renderer
func WithClearColor(rgba [4]float32) RendererBuilderOption {
	return func(r *renderer) {
		r.clear = rgba
	}
}

// WithGridOverlay draws the cells of g within extent cells of the origin as flat tiles.
//
// Parameters:
//   - g: the grid whose cells are drawn
//   - extent: how many cells to draw on each side of the origin
//   - tint: the tile color
//
// Returns:
//   - RendererBuilderOption: a function that applies the overlay to a renderer
func WithGridOverlay(g grid.Grid, extent int, tint [4]float32) RendererBuilderOption {
	return func(r *renderer) {
		r.overlayGrid = g
		r.overlayExtent = extent
		r.overlayTint = tint
	}
}

// WithLogger sets the logger used for surface diagnostics.
//
// Parameters:
//   - l: the logger to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the logger to a renderer
func WithLogger(l *logger.Logger) RendererBuilderOption {
	return func(r *renderer) {
		if l != nil {
			r.log = l.Tag("Renderer")
		}
	}
}

package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-placer/engine/grid"
	"github.com/Carmen-Shannon/oxy-placer/engine/logger"
	"github.com/Carmen-Shannon/oxy-placer/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Surface is what the renderer needs from a window: a WebGPU surface descriptor and
// the framebuffer size. window.Window satisfies it.
type Surface interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

// FrameStats describes the last frame handed to the backend.
type FrameStats struct {
	Objects int
	Tiles   int
}

// Renderer draws a scene's visible objects as tinted boxes on top of an optional grid
// overlay. Every object is drawn with the same unit box mesh scaled by its transform;
// mesh handles are not resolved.
type Renderer interface {
	// Render draws one frame of scn from its camera.
	//
	// Parameters:
	//   - scn: the scene to draw
	//
	// Returns:
	//   - error: if the backend failed to produce the frame
	Render(scn scene.Scene) error

	// Resize reconfigures the surface for a new framebuffer size.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	Resize(width, height int)

	// SetPresentMode changes the present mode and reconfigures the surface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the background color.
	//
	// Parameters:
	//   - rgba: the clear color
	SetClearColor(rgba [4]float32)

	// LastFrame returns the instance counts of the most recent Render.
	//
	// Returns:
	//   - FrameStats: objects and grid tiles drawn
	LastFrame() FrameStats

	// Release frees the GPU resources.
	Release()
}

type renderer struct {
	mu *sync.Mutex

	backend RendererBackend
	log     *logger.Logger

	width  int
	height int
	clear  [4]float32

	overlayGrid   grid.Grid
	overlayExtent int
	overlayTint   [4]float32
	tiles         []byte

	instances []byte
	last      FrameStats

	forceFallbackAdapter bool
	presentMode          PresentMode
	msaa                 MSAASampleCount
}

var _ Renderer = &renderer{}

// NewRenderer creates a WebGPU renderer drawing into surface.
//
// Parameters:
//   - surface: the window providing the WebGPU surface
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the configured renderer
//   - error: if no adapter or device could be obtained
func NewRenderer(surface Surface, options ...RendererBuilderOption) (Renderer, error) {
	r := newRenderer(surface.Width(), surface.Height(), options...)

	backend, err := newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter, r.msaa)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	r.attach(backend)
	return r, nil
}

func newRenderer(width, height int, options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		log:         logger.Default().Tag("Renderer"),
		width:       width,
		height:      height,
		clear:       [4]float32{0.1, 0.1, 0.1, 1},
		overlayTint: [4]float32{0.3, 0.3, 0.32, 1},
		presentMode: PresentModeVSync,
		msaa:        MSAA4x,
	}
	for _, opt := range options {
		opt(r)
	}
	if r.overlayGrid != nil {
		r.tiles = gridTiles(r.overlayGrid, r.overlayExtent, r.overlayTint)
	}
	return r
}

func (r *renderer) attach(backend RendererBackend) {
	r.backend = backend
	r.backend.SetPresentMode(r.presentMode)
	r.backend.ConfigureSurface(r.width, r.height)
	r.log.Infof("surface configured at %dx%d", r.width, r.height)
}

func (r *renderer) Render(scn scene.Scene) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cam := scn.Camera()
	visible := scn.Visible()

	tileCount := len(r.tiles) / GPUInstanceSize
	total := tileCount + len(visible)
	r.instances = append(r.instances[:0], r.tiles...)
	r.instances = append(r.instances, make([]byte, len(visible)*GPUInstanceSize)...)

	offset := len(r.tiles)
	for _, obj := range visible {
		inst := GPUInstance{Model: obj.ModelMatrix(), Tint: obj.Tint()}
		inst.marshalInto(r.instances[offset:])
		offset += GPUInstanceSize
	}

	r.last = FrameStats{Objects: len(visible), Tiles: tileCount}
	if err := r.backend.DrawFrame(marshalCamera(cam.ViewProjectionMatrix()), r.instances, uint32(total), r.clear); err != nil {
		return fmt.Errorf("render %q: %w", scn.Name(), err)
	}
	return nil
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.width, r.height = width, height
	r.backend.ConfigureSurface(width, height)
	r.log.Debugf("surface resized to %dx%d", width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.presentMode = mode
	r.backend.SetPresentMode(mode)
	r.backend.ConfigureSurface(r.width, r.height)
}

func (r *renderer) SetClearColor(rgba [4]float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clear = rgba
}

func (r *renderer) LastFrame() FrameStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.Release()
}

// gridTiles lays thin tiles over the cells in [-extent, extent) on both axes, slightly
// below the grid height so markers drawn at the height stay visible.
func gridTiles(g grid.Grid, extent int, tint [4]float32) []byte {
	if extent <= 0 {
		return nil
	}
	size := g.CellSize()
	side := 2 * extent
	out := make([]byte, side*side*GPUInstanceSize)
	offset := 0
	for row := -extent; row < extent; row++ {
		for col := -extent; col < extent; col++ {
			center := g.CellCenter(grid.Cell{Column: col, Row: row})
			model := mgl32.Translate3D(center[0], center[1]-tileDepth, center[2]).
				Mul4(mgl32.Scale3D(size*tileFill, tileDepth, size*tileFill))
			inst := GPUInstance{Model: model, Tint: tint}
			inst.marshalInto(out[offset:])
			offset += GPUInstanceSize
		}
	}
	return out
}

const (
	tileFill  = 0.94
	tileDepth = 0.01
)

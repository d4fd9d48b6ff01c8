package engine

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-placer/engine/input"
	"github.com/Carmen-Shannon/oxy-placer/engine/logger"
	"github.com/Carmen-Shannon/oxy-placer/engine/profiler"
	"github.com/Carmen-Shannon/oxy-placer/engine/scene"
)

// Host is the platform window the engine polls each frame. window.Window satisfies it.
type Host interface {
	SetInputHandler(h input.Handler)
	SetResizeCallback(callback func(width, height int))
	PollEvents() bool
	IsRunning() bool
}

// FrameRenderer draws a scene. renderer.Renderer satisfies it.
type FrameRenderer interface {
	Render(scn scene.Scene) error
	Resize(width, height int)
}

// Controller consumes input events and advances once per frame. Update reports whether
// anything visible changed. camera.CameraController and placement.Controller satisfy it.
type Controller interface {
	input.Handler
	Update(deltaTime float32) bool
}

// viewportSetter is implemented by controllers that convert pixels using the window size.
type viewportSetter interface {
	SetViewport(width, height float32)
}

// engine implements the Engine interface.
type engine struct {
	mu *sync.Mutex

	host     Host
	renderer FrameRenderer
	log      *logger.Logger
	events   *input.Queue

	controllers []Controller
	scenes      map[int]scene.Scene

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	redrawOnChange   bool
	dirty            bool

	quit atomic.Bool
}

// Engine is the main entry point for the engine. It runs a single-threaded frame loop:
// platform events are polled, every input event is fanned out to the controllers, then
// the tick callback, controller updates, scene rendering and the render callback run in
// that order.
type Engine interface {
	// Host returns the window the engine polls, or nil when running headless.
	//
	// Returns:
	//   - Host: the window
	Host() Host

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickCallback registers the function called each frame before controllers update.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each frame after scenes are drawn.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// AddController registers a controller. Controllers receive every input event and
	// are updated in registration order.
	//
	// Parameters:
	//   - c: the controller to add
	AddController(c Controller)

	// AddScene registers a scene at the given z-index key.
	// Scenes are rendered in ascending key order.
	//
	// Parameters:
	//   - key: the z-index determining render order (lower renders first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given z-index key.
	// Returns nil if no scene exists at that key.
	//
	// Parameters:
	//   - key: the z-index of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes keyed by z-index.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Enqueue delivers an input event to every controller at the next Step.
	//
	// Parameters:
	//   - ev: the event to deliver
	Enqueue(ev input.Event)

	// Resize propagates a new framebuffer size to the renderer, the scene cameras and
	// every controller that tracks the viewport.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	Resize(width, height int)

	// Step runs one frame.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous frame
	//
	// Returns:
	//   - bool: true if the frame was drawn
	Step(deltaTime float32) bool

	// Run polls the host and steps until the host closes or Quit is called.
	// Must be called from the thread that created the host window.
	Run()

	// Quit stops Run after the current frame. Safe to call multiple times.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:     &sync.Mutex{},
		log:    logger.Default().Tag("Engine"),
		events: input.NewQueue(256),
		scenes: make(map[int]scene.Scene),
		dirty:  true,
	}

	for _, opt := range options {
		opt(e)
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.log))
	}

	if e.host != nil {
		e.host.SetInputHandler(e)
		e.host.SetResizeCallback(e.Resize)
	}

	return e
}

func (e *engine) Host() Host {
	return e.host
}

func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderFrameLimit = frameDuration(fps)
}

func (e *engine) AddController(c Controller) {
	if c == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.controllers = append(e.controllers, c)
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scenes[key] = s
	e.dirty = true
}

func (e *engine) RemoveScene(key int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.scenes, key)
	e.dirty = true
}

func (e *engine) Scene(key int) scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}

func (e *engine) Enqueue(ev input.Event) {
	e.events.Enqueue(ev)
}

func (e *engine) Resize(width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// minimized windows report a zero framebuffer
	if width <= 0 || height <= 0 {
		return
	}
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}
	aspect := float32(width) / float32(height)
	for _, s := range e.scenes {
		if c := s.Camera(); c != nil {
			c.SetAspect(aspect)
		}
	}
	for _, c := range e.controllers {
		if vs, ok := c.(viewportSetter); ok {
			vs.SetViewport(float32(width), float32(height))
		}
	}
	e.dirty = true
	e.log.Debugf("resized to %dx%d", width, height)
}

func (e *engine) Step(deltaTime float32) bool {
	e.mu.Lock()
	controllers := append([]Controller(nil), e.controllers...)
	tick := e.tickCallback
	e.mu.Unlock()

	for _, ev := range e.events.Drain() {
		for _, c := range controllers {
			c.Enqueue(ev)
		}
	}

	if tick != nil {
		tick(deltaTime)
	}

	changed := false
	for _, c := range controllers {
		if c.Update(deltaTime) {
			changed = true
		}
	}

	e.mu.Lock()
	draw := !e.redrawOnChange || changed || e.dirty
	e.dirty = false
	active := e.activeScenesLocked()
	r := e.renderer
	render := e.renderCallback
	profiling := e.profilingEnabled
	e.mu.Unlock()

	if draw {
		if r != nil {
			for _, s := range active {
				if err := r.Render(s); err != nil {
					e.log.Errorf("%v", err)
				}
			}
		}
		if render != nil {
			render(deltaTime)
		}
	}

	if profiling {
		e.profiler.Tick()
	}
	return draw
}

// activeScenesLocked returns the active scenes in ascending z-index order.
func (e *engine) activeScenesLocked() []scene.Scene {
	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]scene.Scene, 0, len(keys))
	for _, k := range keys {
		if s := e.scenes[k]; s.Active() {
			out = append(out, s)
		}
	}
	return out
}

func (e *engine) Run() {
	if e.host == nil {
		e.log.Errorf("Run called without a window")
		return
	}

	last := time.Now()
	for !e.quit.Load() && e.host.IsRunning() {
		if !e.host.PollEvents() {
			break
		}

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		e.Step(dt)

		e.mu.Lock()
		limit := e.renderFrameLimit
		e.mu.Unlock()
		if limit > 0 {
			if remaining := limit - time.Since(now); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	}
	e.log.Infof("frame loop stopped")
}

func (e *engine) Quit() {
	e.quit.Store(true)
}

func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}

package renderer

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// RendererBackend is the GPU side of the Renderer. The Renderer hands it serialized
// camera and instance data; the backend owns the device, surface and the single box
// pipeline.
type RendererBackend interface {
	// ConfigureSurface (re)configures the swapchain and the depth and MSAA targets.
	//
	// Parameters:
	//   - width: surface width in pixels
	//   - height: surface height in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets the present mode used at the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// DrawFrame acquires the next surface texture, clears it, draws instanceCount boxes
	// and presents.
	//
	// Parameters:
	//   - camera: the serialized camera uniform (GPUCameraSize bytes)
	//   - instances: instanceCount serialized GPUInstance values
	//   - instanceCount: the number of instances to draw
	//   - clear: the RGBA clear color
	//
	// Returns:
	//   - error: if the frame could not be acquired or submitted
	DrawFrame(camera, instances []byte, instanceCount uint32, clear [4]float32) error

	// Release frees every GPU resource held by the backend.
	Release()
}

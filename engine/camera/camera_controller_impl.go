package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-placer/common"
	"github.com/Carmen-Shannon/oxy-placer/engine/input"
	"github.com/Carmen-Shannon/oxy-placer/engine/logger"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// changeEpsilon is the squared distance (or scaled angular change) below which
	// an update is not reported as a change.
	changeEpsilon = 1e-6

	// tiltLimit is cos(70°). Steeper views retarget onto the ground plane after a
	// cursor zoom; shallower views re-aim at the old target.
	tiltLimit = 0.342
)

// cameraControllerImpl is the single implementation of CameraController.
// Input handlers only write the pending fields of state; update consumes them.
type cameraControllerImpl struct {
	mu *sync.Mutex

	cam   Camera
	lens  Lens
	log   *logger.Logger
	queue *input.Queue

	state   SphericalState
	mode    Mode
	enabled bool

	// Limits
	minDistance     float32
	maxDistance     float32
	minZoom         float32
	maxZoom         float32
	minPolarAngle   float32
	maxPolarAngle   float32
	minAzimuthAngle float32
	maxAzimuthAngle float32

	// Behavior
	enableDamping      bool
	dampingFactor      float32
	enableZoom         bool
	enableRotate       bool
	enablePan          bool
	zoomToCursor       bool
	screenSpacePanning bool
	autoRotate         bool
	autoRotateSpeed    float32

	// Speeds
	rotateSpeed float32
	zoomSpeed   float32
	panSpeed    float32
	keyPanSpeed float32

	mouseButtons MouseButtons
	touches      TouchGestures
	clientWidth  float32
	clientHeight float32

	// Rotation into and out of the y-up orbit space
	quat        mgl32.Quat
	quatInverse mgl32.Quat

	// Gesture tracking
	pointers         []int
	pointerPositions map[int]mgl32.Vec2
	rotateStart      mgl32.Vec2
	panStart         mgl32.Vec2
	dollyStart       mgl32.Vec2
	pinchDistance    float32

	// Zoom-to-cursor
	cursorNDC         mgl32.Vec2
	dollyDirection    mgl32.Vec3
	performCursorZoom bool

	// Change detection
	lastPosition mgl32.Vec3
	lastForward  mgl32.Vec3
	lastTarget   mgl32.Vec3

	// Saved state for Reset
	target0   mgl32.Vec3
	position0 mgl32.Vec3
	zoom0     float32

	onStart  func()
	onEnd    func()
	onChange func()
	fired    []func()
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates an orbit controller for cam. The initial radius and
// angles are derived from the camera's current position relative to the target,
// and the camera is aimed at the target immediately.
// When cam does not implement Lens, pan and dolly are disabled and a warning is logged.
//
// Parameters:
//   - cam: the camera to drive, must not be nil
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(cam Camera, options ...CameraControllerOption) CameraController {
	if cam == nil {
		panic("camera controller requires a camera")
	}

	inf := float32(math.Inf(1))
	cc := &cameraControllerImpl{
		mu:    &sync.Mutex{},
		cam:   cam,
		log:   logger.Default().Tag("OrbitControls"),
		queue: input.NewQueue(64),

		enabled: true,

		minDistance:     0,
		maxDistance:     inf,
		minZoom:         0,
		maxZoom:         inf,
		minPolarAngle:   0,
		maxPolarAngle:   math.Pi,
		minAzimuthAngle: -inf,
		maxAzimuthAngle: inf,

		dampingFactor:      0.05,
		enableZoom:         true,
		enableRotate:       true,
		enablePan:          true,
		screenSpacePanning: true,
		autoRotateSpeed:    2,

		rotateSpeed: 1,
		zoomSpeed:   1,
		panSpeed:    1,
		keyPanSpeed: 7,

		mouseButtons: DefaultMouseButtons(),
		touches:      DefaultTouchGestures(),
		clientWidth:  800,
		clientHeight: 600,

		pointerPositions: make(map[int]mgl32.Vec2),
	}
	cc.state.PendingRadiusScale = 1

	for _, option := range options {
		option(cc)
	}

	if lens, ok := cam.(Lens); ok {
		cc.lens = lens
	} else {
		cc.log.Warnf("camera %T does not expose a lens, pan and dolly disabled", cam)
		cc.enablePan = false
		cc.enableZoom = false
	}

	cc.quat = upAlignment(cam.Up())
	cc.quatInverse = cc.quat.Inverse()

	cc.target0 = cc.state.Target
	cc.position0 = cam.Position()
	cc.zoom0 = cam.Zoom()

	cc.mu.Lock()
	cc.update(0)
	cc.fired = nil
	cc.mu.Unlock()
	return cc
}

func (cc *cameraControllerImpl) Enqueue(ev input.Event) {
	cc.queue.Enqueue(ev)
}

func (cc *cameraControllerImpl) Update(deltaTime float32) bool {
	events := cc.queue.Drain()

	cc.mu.Lock()
	for _, ev := range events {
		cc.handle(ev)
	}
	changed := cc.update(deltaTime)
	fired := cc.fired
	cc.fired = nil
	cc.mu.Unlock()

	for _, fn := range fired {
		fn()
	}
	return changed
}

func (cc *cameraControllerImpl) Camera() Camera {
	return cc.cam
}

func (cc *cameraControllerImpl) State() SphericalState {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state
}

func (cc *cameraControllerImpl) Mode() Mode {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mode
}

func (cc *cameraControllerImpl) Target() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.Target
}

func (cc *cameraControllerImpl) SetTarget(target mgl32.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.state.Target = target
}

func (cc *cameraControllerImpl) PolarAngle() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.Phi
}

func (cc *cameraControllerImpl) AzimuthalAngle() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.Theta
}

func (cc *cameraControllerImpl) Distance() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.cam.Position().Sub(cc.state.Target).Len()
}

func (cc *cameraControllerImpl) Enabled() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.enabled
}

func (cc *cameraControllerImpl) SetEnabled(enabled bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.enabled = enabled
}

func (cc *cameraControllerImpl) LensSupported() bool {
	return cc.lens != nil
}

func (cc *cameraControllerImpl) SetViewport(width, height float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.clientWidth = width
	cc.clientHeight = height
}

func (cc *cameraControllerImpl) SaveState() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target0 = cc.state.Target
	cc.position0 = cc.cam.Position()
	cc.zoom0 = cc.cam.Zoom()
}

func (cc *cameraControllerImpl) Reset() {
	cc.mu.Lock()
	cc.state.Target = cc.target0
	cc.cam.SetPosition(cc.position0)
	cc.cam.SetZoom(cc.zoom0)

	cc.state.PendingThetaDelta = 0
	cc.state.PendingPhiDelta = 0
	cc.state.PendingPanOffset = mgl32.Vec3{}
	cc.state.PendingRadiusScale = 1
	cc.performCursorZoom = false
	cc.pointers = cc.pointers[:0]
	clear(cc.pointerPositions)
	cc.mode = ModeNone

	cc.fire(cc.onChange)
	cc.update(0)
	fired := cc.fired
	cc.fired = nil
	cc.mu.Unlock()

	for _, fn := range fired {
		fn()
	}
}

func (cc *cameraControllerImpl) SetStartCallback(fn func()) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.onStart = fn
}

func (cc *cameraControllerImpl) SetEndCallback(fn func()) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.onEnd = fn
}

func (cc *cameraControllerImpl) SetChangeCallback(fn func()) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.onChange = fn
}

// --- internal helpers ---

// update runs one orbit step: derive spherical coordinates from the camera, apply
// and decay the pending deltas, clamp, reposition the camera and report whether it
// moved. Caller must hold the mutex.
func (cc *cameraControllerImpl) update(deltaTime float32) bool {
	offset := cc.quat.Rotate(cc.cam.Position().Sub(cc.state.Target))
	cc.state.setFromVector(offset)

	if cc.autoRotate && cc.mode == ModeNone {
		cc.rotateLeft(cc.autoRotationAngle(deltaTime))
	}

	if cc.enableDamping {
		cc.state.Theta += cc.state.PendingThetaDelta * cc.dampingFactor
		cc.state.Phi += cc.state.PendingPhiDelta * cc.dampingFactor
	} else {
		cc.state.Theta += cc.state.PendingThetaDelta
		cc.state.Phi += cc.state.PendingPhiDelta
	}

	cc.state.Theta = cc.clampAzimuth(cc.state.Theta)
	cc.state.Phi = common.Clamp(cc.state.Phi, cc.minPolarAngle, cc.maxPolarAngle)
	cc.state.makeSafe()

	if cc.enableDamping {
		cc.state.Target = cc.state.Target.Add(cc.state.PendingPanOffset.Mul(cc.dampingFactor))
	} else {
		cc.state.Target = cc.state.Target.Add(cc.state.PendingPanOffset)
	}

	zoomChanged := false
	cursorZoom := cc.zoomToCursor && cc.performCursorZoom && cc.lens != nil
	if cursorZoom || !cc.scalesRadius() {
		cc.state.Radius = cc.clampDistance(cc.state.Radius)
	} else {
		prevRadius := cc.state.Radius
		cc.state.Radius = cc.clampDistance(cc.state.Radius * cc.state.PendingRadiusScale)
		zoomChanged = prevRadius != cc.state.Radius
	}

	offset = cc.quatInverse.Rotate(cc.state.vector())
	cc.cam.SetPosition(cc.state.Target.Add(offset))
	cc.cam.LookAt(cc.state.Target)

	if cc.enableDamping {
		decay := 1 - cc.dampingFactor
		cc.state.PendingThetaDelta *= decay
		cc.state.PendingPhiDelta *= decay
		cc.state.PendingPanOffset = cc.state.PendingPanOffset.Mul(decay)
	} else {
		cc.state.PendingThetaDelta = 0
		cc.state.PendingPhiDelta = 0
		cc.state.PendingPanOffset = mgl32.Vec3{}
	}

	if cursorZoom {
		if cc.dollyToCursor(offset.Len()) {
			zoomChanged = true
		}
	} else if !cc.scalesRadius() {
		zoomChanged = cc.lens.ApplyZoom(cc.state.PendingRadiusScale, cc.minZoom, cc.maxZoom)
	}

	cc.state.PendingRadiusScale = 1
	cc.performCursorZoom = false
	cc.state.Zoom = cc.cam.Zoom()

	position := cc.cam.Position()
	forward := cc.cam.Forward()
	if zoomChanged ||
		distanceSquared(position, cc.lastPosition) > changeEpsilon ||
		2*(1-cc.lastForward.Dot(forward)) > changeEpsilon ||
		distanceSquared(cc.state.Target, cc.lastTarget) > changeEpsilon {
		cc.lastPosition = position
		cc.lastForward = forward
		cc.lastTarget = cc.state.Target
		cc.fire(cc.onChange)
		return true
	}
	return false
}

// dollyToCursor moves the camera (perspective) or shifts it after a zoom change
// (orthographic) so that the world point under the cursor stays put, then
// re-derives the target. Caller must hold the mutex.
func (cc *cameraControllerImpl) dollyToCursor(prevRadius float32) bool {
	var newRadius float32
	changed := false

	if cc.lens.ScalesRadius() {
		newRadius = cc.clampDistance(prevRadius * cc.state.PendingRadiusScale)
		radiusDelta := prevRadius - newRadius
		cc.cam.SetPosition(cc.cam.Position().Add(cc.dollyDirection.Mul(radiusDelta)))
		changed = radiusDelta != 0
	} else {
		ndc := mgl32.Vec3{cc.cursorNDC[0], cc.cursorNDC[1], 0}
		before := cc.cam.Unproject(ndc)
		changed = cc.lens.ApplyZoom(cc.state.PendingRadiusScale, cc.minZoom, cc.maxZoom)
		after := cc.cam.Unproject(ndc)
		cc.cam.SetPosition(cc.cam.Position().Add(before.Sub(after)))
		newRadius = prevRadius
	}

	position := cc.cam.Position()
	forward := cc.cam.Forward()
	if cc.screenSpacePanning {
		cc.state.Target = position.Add(forward.Mul(newRadius))
	} else {
		up := cc.cam.Up().Normalize()
		if float32(math.Abs(float64(up.Dot(forward)))) < tiltLimit {
			cc.cam.LookAt(cc.state.Target)
		} else {
			ground := common.NewPlaneFromNormalAndPoint(up, cc.state.Target)
			if hit, ok := ground.IntersectRay(common.Ray{Origin: position, Direction: forward}); ok {
				cc.state.Target = hit
			}
		}
	}
	toCamera := cc.cam.Position().Sub(cc.state.Target)
	distance := toCamera.Len()
	if clamped := cc.clampDistance(distance); clamped != distance && distance > common.Epsilon {
		// the re-derived target may sit closer than the dolly allowed
		cc.cam.SetPosition(cc.state.Target.Add(toCamera.Mul(clamped / distance)))
		cc.cam.LookAt(cc.state.Target)
		distance = clamped
	}
	cc.state.Radius = distance
	return changed
}

// clampAzimuth clamps theta to the azimuth bounds, which may wrap across ±π.
func (cc *cameraControllerImpl) clampAzimuth(theta float32) float32 {
	lo, hi := float64(cc.minAzimuthAngle), float64(cc.maxAzimuthAngle)
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		return theta
	}
	lo, hi = wrapAngle(lo), wrapAngle(hi)

	t := wrapAngle(float64(theta))
	if lo <= hi {
		return float32(math.Max(lo, math.Min(hi, t)))
	}
	if t > (lo+hi)/2 {
		return float32(math.Max(lo, t))
	}
	return float32(math.Min(hi, t))
}

func (cc *cameraControllerImpl) clampDistance(distance float32) float32 {
	return common.Clamp(distance, cc.minDistance, cc.maxDistance)
}

func (cc *cameraControllerImpl) scalesRadius() bool {
	return cc.lens == nil || cc.lens.ScalesRadius()
}

func (cc *cameraControllerImpl) autoRotationAngle(deltaTime float32) float32 {
	if deltaTime > 0 {
		return 2 * math.Pi / 60 * cc.autoRotateSpeed * deltaTime
	}
	return 2 * math.Pi / 60 / 60 * cc.autoRotateSpeed
}

func (cc *cameraControllerImpl) zoomScale() float32 {
	return float32(math.Pow(0.95, float64(cc.zoomSpeed)))
}

func (cc *cameraControllerImpl) rotateLeft(angle float32) {
	cc.state.PendingThetaDelta -= angle
}

func (cc *cameraControllerImpl) rotateUp(angle float32) {
	cc.state.PendingPhiDelta -= angle
}

// rotate converts a pixel delta into pending angles. A full viewport height of
// drag turns the camera by 2π.
func (cc *cameraControllerImpl) rotate(dx, dy float32) {
	if cc.clientHeight <= 0 {
		return
	}
	cc.rotateLeft(2 * math.Pi * dx * cc.rotateSpeed / cc.clientHeight)
	cc.rotateUp(2 * math.Pi * dy * cc.rotateSpeed / cc.clientHeight)
}

// pan converts a pixel delta into a world-space target offset, scaled by the
// visible frustum size at the target distance so content under the pointer
// tracks the pointer.
func (cc *cameraControllerImpl) pan(dx, dy float32) {
	if cc.lens == nil || cc.clientWidth <= 0 || cc.clientHeight <= 0 {
		return
	}
	distance := cc.cam.Position().Sub(cc.state.Target).Len()
	frustumWidth, frustumHeight := cc.lens.FrustumSizeAt(distance)
	right, up, _ := cc.cam.Basis()

	offset := right.Mul(-dx * frustumWidth / cc.clientWidth)
	if !cc.screenSpacePanning {
		up = cc.cam.Up().Cross(right)
	}
	offset = offset.Add(up.Mul(dy * frustumHeight / cc.clientHeight))
	cc.state.PendingPanOffset = cc.state.PendingPanOffset.Add(offset)
}

func (cc *cameraControllerImpl) dollyIn(scale float32) {
	if cc.lens == nil {
		return
	}
	cc.state.PendingRadiusScale *= scale
}

func (cc *cameraControllerImpl) dollyOut(scale float32) {
	if cc.lens == nil || scale == 0 {
		return
	}
	cc.state.PendingRadiusScale /= scale
}

// updateZoomParts records the cursor for zoom-to-cursor. Caller must hold the mutex.
func (cc *cameraControllerImpl) updateZoomParts(x, y float32) {
	if !cc.zoomToCursor || cc.lens == nil {
		return
	}
	cc.performCursorZoom = true
	cc.cursorNDC = cc.toNDC(x, y)
	cc.dollyDirection = cc.cam.Ray(cc.cursorNDC[0], cc.cursorNDC[1]).Direction
}

func (cc *cameraControllerImpl) toNDC(x, y float32) mgl32.Vec2 {
	if cc.clientWidth <= 0 || cc.clientHeight <= 0 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{x/cc.clientWidth*2 - 1, 1 - y/cc.clientHeight*2}
}

func (cc *cameraControllerImpl) fire(fn func()) {
	if fn != nil {
		cc.fired = append(cc.fired, fn)
	}
}

// wrapAngle maps a into [-π, π].
func wrapAngle(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}

func distanceSquared(a, b mgl32.Vec3) float32 {
	d := a.Sub(b)
	return d.Dot(d)
}

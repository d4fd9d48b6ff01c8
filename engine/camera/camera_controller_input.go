package camera

import (
	"math"
	"slices"

	"github.com/Carmen-Shannon/oxy-placer/common"
	"github.com/Carmen-Shannon/oxy-placer/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// handle dispatches one queued event. Caller must hold the mutex.
func (cc *cameraControllerImpl) handle(ev input.Event) {
	switch e := ev.(type) {
	case input.PointerUp:
		cc.onPointerUp(e.PointerID)
		return
	case input.PointerCancel:
		cc.onPointerUp(e.PointerID)
		return
	}

	if !cc.enabled {
		return
	}

	switch e := ev.(type) {
	case input.PointerDown:
		cc.onPointerDown(e)
	case input.PointerMove:
		cc.onPointerMove(e)
	case input.Wheel:
		cc.onWheel(e)
	case input.KeyDown:
		cc.onKeyDown(e)
	}
}

func (cc *cameraControllerImpl) onPointerDown(e input.PointerDown) {
	if cc.isTracking(e.PointerID) {
		return
	}
	cc.pointers = append(cc.pointers, e.PointerID)
	cc.pointerPositions[e.PointerID] = mgl32.Vec2{e.X, e.Y}

	if e.Type == input.PointerTouch {
		cc.onTouchStart()
		return
	}
	cc.onMouseDown(e)
}

func (cc *cameraControllerImpl) onPointerMove(e input.PointerMove) {
	if !cc.isTracking(e.PointerID) {
		return
	}
	cc.pointerPositions[e.PointerID] = mgl32.Vec2{e.X, e.Y}

	if e.Type == input.PointerTouch {
		cc.onTouchMove()
		return
	}
	cc.onMouseMove(mgl32.Vec2{e.X, e.Y})
}

func (cc *cameraControllerImpl) onPointerUp(id int) {
	if !cc.isTracking(id) {
		return
	}
	cc.pointers = slices.DeleteFunc(cc.pointers, func(p int) bool { return p == id })
	delete(cc.pointerPositions, id)

	switch len(cc.pointers) {
	case 0:
		if cc.mode != ModeNone {
			cc.fire(cc.onEnd)
		}
		cc.mode = ModeNone
	case 1:
		// The remaining finger continues as a fresh one-finger gesture.
		cc.onTouchStart()
	}
}

func (cc *cameraControllerImpl) onMouseDown(e input.PointerDown) {
	var action Action
	switch e.Button {
	case input.ButtonLeft:
		action = cc.mouseButtons.Left
	case input.ButtonMiddle:
		action = cc.mouseButtons.Middle
	case input.ButtonRight:
		action = cc.mouseButtons.Right
	default:
		action = ActionNone
	}

	pos := mgl32.Vec2{e.X, e.Y}
	swap := e.Modifiers.SwapsGesture()
	switch action {
	case ActionDolly:
		if !cc.enableZoom {
			return
		}
		cc.updateZoomParts(e.X, e.Y)
		cc.dollyStart = pos
		cc.mode = ModeDolly
	case ActionRotate:
		if swap {
			if !cc.enablePan {
				return
			}
			cc.panStart = pos
			cc.mode = ModePan
		} else {
			if !cc.enableRotate {
				return
			}
			cc.rotateStart = pos
			cc.mode = ModeRotate
		}
	case ActionPan:
		if swap {
			if !cc.enableRotate {
				return
			}
			cc.rotateStart = pos
			cc.mode = ModeRotate
		} else {
			if !cc.enablePan {
				return
			}
			cc.panStart = pos
			cc.mode = ModePan
		}
	default:
		cc.mode = ModeNone
	}

	if cc.mode != ModeNone {
		cc.fire(cc.onStart)
	}
}

func (cc *cameraControllerImpl) onMouseMove(pos mgl32.Vec2) {
	switch cc.mode {
	case ModeRotate:
		if !cc.enableRotate {
			return
		}
		delta := pos.Sub(cc.rotateStart)
		cc.rotate(delta[0], delta[1])
		cc.rotateStart = pos
	case ModeDolly:
		if !cc.enableZoom {
			return
		}
		dy := pos[1] - cc.dollyStart[1]
		if dy > 0 {
			cc.dollyOut(cc.zoomScale())
		} else if dy < 0 {
			cc.dollyIn(cc.zoomScale())
		}
		cc.dollyStart = pos
	case ModePan:
		if !cc.enablePan {
			return
		}
		delta := pos.Sub(cc.panStart).Mul(cc.panSpeed)
		cc.pan(delta[0], delta[1])
		cc.panStart = pos
	}
}

func (cc *cameraControllerImpl) onWheel(e input.Wheel) {
	if !cc.enableZoom || cc.mode != ModeNone {
		return
	}
	cc.fire(cc.onStart)
	cc.updateZoomParts(e.X, e.Y)
	if e.DeltaY < 0 {
		cc.dollyIn(cc.zoomScale())
	} else if e.DeltaY > 0 {
		cc.dollyOut(cc.zoomScale())
	}
	cc.fire(cc.onEnd)
}

func (cc *cameraControllerImpl) onKeyDown(e input.KeyDown) {
	if cc.clientHeight <= 0 {
		return
	}
	angle := 2 * math.Pi * cc.rotateSpeed / cc.clientHeight
	rotate := e.Modifiers.SwapsGesture()

	switch e.Key {
	case common.KeyUp:
		if rotate {
			if cc.enableRotate {
				cc.rotateUp(angle)
			}
		} else if cc.enablePan {
			cc.pan(0, cc.keyPanSpeed)
		}
	case common.KeyDown:
		if rotate {
			if cc.enableRotate {
				cc.rotateUp(-angle)
			}
		} else if cc.enablePan {
			cc.pan(0, -cc.keyPanSpeed)
		}
	case common.KeyLeft:
		if rotate {
			if cc.enableRotate {
				cc.rotateLeft(angle)
			}
		} else if cc.enablePan {
			cc.pan(cc.keyPanSpeed, 0)
		}
	case common.KeyRight:
		if rotate {
			if cc.enableRotate {
				cc.rotateLeft(-angle)
			}
		} else if cc.enablePan {
			cc.pan(-cc.keyPanSpeed, 0)
		}
	}
}

func (cc *cameraControllerImpl) onTouchStart() {
	cc.mode = ModeNone

	switch len(cc.pointers) {
	case 1:
		switch cc.touches.One {
		case ActionRotate:
			if !cc.enableRotate {
				return
			}
			cc.rotateStart = cc.touchCenter()
			cc.mode = ModeTouchRotate
		case ActionPan:
			if !cc.enablePan {
				return
			}
			cc.panStart = cc.touchCenter()
			cc.mode = ModeTouchPan
		}
	case 2:
		switch cc.touches.Two {
		case ActionDollyPan:
			if !cc.enableZoom && !cc.enablePan {
				return
			}
			if cc.enableZoom {
				cc.pinchDistance = cc.touchDistance()
			}
			if cc.enablePan {
				cc.panStart = cc.touchCenter()
			}
			cc.mode = ModeTouchDollyPan
		case ActionDollyRotate:
			if !cc.enableZoom && !cc.enableRotate {
				return
			}
			if cc.enableZoom {
				cc.pinchDistance = cc.touchDistance()
			}
			if cc.enableRotate {
				cc.rotateStart = cc.touchCenter()
			}
			cc.mode = ModeTouchDollyRotate
		}
	}

	if cc.mode != ModeNone {
		cc.fire(cc.onStart)
	}
}

func (cc *cameraControllerImpl) onTouchMove() {
	switch cc.mode {
	case ModeTouchRotate:
		if cc.enableRotate {
			cc.touchMoveRotate()
		}
	case ModeTouchPan:
		if cc.enablePan {
			cc.touchMovePan()
		}
	case ModeTouchDollyPan:
		if cc.enableZoom {
			cc.touchMoveDolly()
		}
		if cc.enablePan {
			cc.touchMovePan()
		}
	case ModeTouchDollyRotate:
		if cc.enableZoom {
			cc.touchMoveDolly()
		}
		if cc.enableRotate {
			cc.touchMoveRotate()
		}
	default:
		cc.mode = ModeNone
	}
}

func (cc *cameraControllerImpl) touchMoveRotate() {
	center := cc.touchCenter()
	delta := center.Sub(cc.rotateStart)
	cc.rotate(delta[0], delta[1])
	cc.rotateStart = center
}

func (cc *cameraControllerImpl) touchMovePan() {
	center := cc.touchCenter()
	delta := center.Sub(cc.panStart).Mul(cc.panSpeed)
	cc.pan(delta[0], delta[1])
	cc.panStart = center
}

func (cc *cameraControllerImpl) touchMoveDolly() {
	if len(cc.pointers) < 2 {
		return
	}
	distance := cc.touchDistance()
	if cc.pinchDistance > 0 && distance > 0 {
		cc.dollyOut(float32(math.Pow(float64(distance/cc.pinchDistance), float64(cc.zoomSpeed))))
	}
	cc.pinchDistance = distance

	center := cc.touchCenter()
	cc.updateZoomParts(center[0], center[1])
}

// touchCenter returns the single touch position, or the midpoint of the first two.
func (cc *cameraControllerImpl) touchCenter() mgl32.Vec2 {
	switch len(cc.pointers) {
	case 0:
		return mgl32.Vec2{}
	case 1:
		return cc.pointerPositions[cc.pointers[0]]
	}
	a := cc.pointerPositions[cc.pointers[0]]
	b := cc.pointerPositions[cc.pointers[1]]
	return a.Add(b).Mul(0.5)
}

func (cc *cameraControllerImpl) touchDistance() float32 {
	if len(cc.pointers) < 2 {
		return 0
	}
	a := cc.pointerPositions[cc.pointers[0]]
	b := cc.pointerPositions[cc.pointers[1]]
	return a.Sub(b).Len()
}

func (cc *cameraControllerImpl) isTracking(id int) bool {
	return slices.Contains(cc.pointers, id)
}

// Package input defines the platform-neutral input events produced by the window
// and consumed once per frame by the camera and placement controllers.
package input

// Button identifies a mouse button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// PointerType distinguishes mouse pointers from touch contacts.
type PointerType uint8

const (
	PointerMouse PointerType = iota
	PointerTouch
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Has reports whether every bit in m2 is set.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// SwapsGesture reports whether Shift, Control or Super is held, which swaps the
// rotate and pan gestures. Alt alone does not.
func (m Modifiers) SwapsGesture() bool {
	return m&(ModShift|ModControl|ModSuper) != 0
}

// Event is the closed set of input events. Positions are window pixels with the
// origin at the top-left corner.
type Event interface {
	isEvent()
}

// PointerDown is emitted when a mouse button is pressed or a touch begins.
type PointerDown struct {
	PointerID int
	Type      PointerType
	Button    Button
	X, Y      float32
	Modifiers Modifiers
}

// PointerMove is emitted whenever a pointer moves, pressed or not.
type PointerMove struct {
	PointerID int
	Type      PointerType
	X, Y      float32
	Modifiers Modifiers
}

// PointerUp is emitted when a mouse button is released or a touch ends.
type PointerUp struct {
	PointerID int
	Type      PointerType
	Button    Button
	X, Y      float32
	Modifiers Modifiers
}

// PointerCancel is emitted when the platform aborts a pointer (e.g. focus loss).
type PointerCancel struct {
	PointerID int
	Type      PointerType
}

// Wheel is emitted for scroll input. DeltaY < 0 scrolls up (zoom in).
type Wheel struct {
	DeltaY    float32
	X, Y      float32
	Modifiers Modifiers
}

// KeyDown is emitted for key presses and repeats.
type KeyDown struct {
	Key       uint32
	Modifiers Modifiers
}

// KeyUp is emitted for key releases.
type KeyUp struct {
	Key       uint32
	Modifiers Modifiers
}

func (PointerDown) isEvent()   {}
func (PointerMove) isEvent()   {}
func (PointerUp) isEvent()     {}
func (PointerCancel) isEvent() {}
func (Wheel) isEvent()         {}
func (KeyDown) isEvent()       {}
func (KeyUp) isEvent()         {}

// Handler consumes input events. Implementations buffer events and apply them on
// their next per-frame update.
type Handler interface {
	Enqueue(ev Event)
}

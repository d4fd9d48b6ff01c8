package input

import "sync"

// Platform action codes passed to Translator. The values equal GLFW's so a GLFW
// callback can forward its arguments unchanged.
const (
	ActionRelease = 0
	ActionPress   = 1
	ActionRepeat  = 2
)

// mousePointerID is the PointerID of the single mouse pointer.
const mousePointerID = 0

// Translator converts raw platform callbacks (key codes, button numbers, cursor
// positions and scroll offsets) into Events for a Handler. Button numbers and
// modifier bits use GLFW's numbering, which Button and Modifiers mirror.
//
// The mouse behaves like a single pointer: the first pressed button produces a
// PointerDown, further buttons are ignored until that button is released.
type Translator struct {
	mu      sync.Mutex
	out     Handler
	x, y    float32
	mods    Modifiers
	pressed bool
	button  Button
}

// NewTranslator creates a Translator that emits into out.
func NewTranslator(out Handler) *Translator {
	return &Translator{out: out}
}

// SetHandler replaces the destination of translated events. A nil handler drops them.
func (t *Translator) SetHandler(h Handler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.out = h
}

// Key translates a key callback.
func (t *Translator) Key(key, action, mods int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.mods = modifiers(mods)
	switch action {
	case ActionPress, ActionRepeat:
		t.emit(KeyDown{Key: uint32(key), Modifiers: t.mods})
	case ActionRelease:
		t.emit(KeyUp{Key: uint32(key), Modifiers: t.mods})
	}
}

// MouseButton translates a mouse button callback at the last known cursor position.
func (t *Translator) MouseButton(button, action, mods int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.mods = modifiers(mods)
	b := Button(button)
	if b > ButtonMiddle {
		return
	}

	switch action {
	case ActionPress:
		if t.pressed {
			return
		}
		t.pressed = true
		t.button = b
		t.emit(PointerDown{PointerID: mousePointerID, Type: PointerMouse, Button: b, X: t.x, Y: t.y, Modifiers: t.mods})
	case ActionRelease:
		if !t.pressed || b != t.button {
			return
		}
		t.pressed = false
		t.emit(PointerUp{PointerID: mousePointerID, Type: PointerMouse, Button: b, X: t.x, Y: t.y, Modifiers: t.mods})
	}
}

// CursorPos translates a cursor movement in window pixels.
func (t *Translator) CursorPos(x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.x, t.y = float32(x), float32(y)
	t.emit(PointerMove{PointerID: mousePointerID, Type: PointerMouse, X: t.x, Y: t.y, Modifiers: t.mods})
}

// Scroll translates a vertical scroll offset. Platforms report positive offsets
// for scrolling up, which becomes a negative Wheel.DeltaY.
func (t *Translator) Scroll(yoff float64) {
	if yoff == 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.emit(Wheel{DeltaY: float32(-yoff), X: t.x, Y: t.y, Modifiers: t.mods})
}

// FocusLost cancels a held mouse button.
func (t *Translator) FocusLost() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.mods = 0
	if !t.pressed {
		return
	}
	t.pressed = false
	t.emit(PointerCancel{PointerID: mousePointerID, Type: PointerMouse})
}

// modifiers drops platform lock-key bits such as Caps Lock.
func modifiers(mods int) Modifiers {
	return Modifiers(mods) & (ModShift | ModControl | ModAlt | ModSuper)
}

func (t *Translator) emit(ev Event) {
	if t.out != nil {
		t.out.Enqueue(ev)
	}
}

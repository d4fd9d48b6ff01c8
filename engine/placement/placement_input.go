package placement

import (
	"math"

	"github.com/Carmen-Shannon/oxy-placer/engine/input"
	"github.com/Carmen-Shannon/oxy-placer/engine/picker"
)

// handle applies one event. Callers hold c.mu.
func (c *controllerImpl) handle(ev input.Event) (moved bool, placed PlacedObject, ok bool) {
	switch e := ev.(type) {
	case input.PointerDown:
		c.down[e.PointerID] = struct{}{}
		if len(c.down) > 1 {
			c.multi = true
		}
		if c.pressed || !isPrimary(e.Type, e.Button) {
			return false, PlacedObject{}, false
		}
		c.pressed = true
		c.pressID = e.PointerID
		c.pressX, c.pressY = e.X, e.Y
		c.maxTravel = 0

	case input.PointerMove:
		if c.pressed && e.PointerID == c.pressID {
			c.maxTravel = max(c.maxTravel, travel(c.pressX, c.pressY, e.X, e.Y))
		}
		_, moved = c.hover(c.toNDC(e.X, e.Y))

	case input.PointerUp:
		multi := c.release(e.PointerID)
		if !c.pressed || e.PointerID != c.pressID {
			return false, PlacedObject{}, false
		}
		c.pressed = false
		if multi || !isPrimary(e.Type, e.Button) {
			return false, PlacedObject{}, false
		}
		c.maxTravel = max(c.maxTravel, travel(c.pressX, c.pressY, e.X, e.Y))
		if c.maxTravel >= c.dragThreshold {
			return false, PlacedObject{}, false
		}
		placed, ok = c.confirm(c.toNDC(e.X, e.Y))

	case input.PointerCancel:
		c.release(e.PointerID)
		if c.pressed && e.PointerID == c.pressID {
			c.pressed = false
		}
	}
	return moved, placed, ok
}

// release forgets a lifted pointer and reports whether more than one pointer was
// down at some point during the current gesture.
func (c *controllerImpl) release(id int) bool {
	multi := c.multi
	delete(c.down, id)
	if len(c.down) == 0 {
		c.multi = false
	}
	return multi
}

func (c *controllerImpl) toNDC(x, y float32) (float32, float32) {
	return picker.PixelToNDC(x, y, c.clientWidth, c.clientHeight)
}

func isPrimary(t input.PointerType, b input.Button) bool {
	return t == input.PointerTouch || b == input.ButtonLeft
}

func travel(x0, y0, x1, y1 float32) float32 {
	return float32(math.Hypot(float64(x1-x0), float64(y1-y0)))
}

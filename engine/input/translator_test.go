package input

import (
	"reflect"
	"testing"
)

func TestTranslatorMouse(t *testing.T) {
	q := NewQueue(8)
	tr := NewTranslator(q)

	tr.CursorPos(10, 20)
	tr.MouseButton(int(ButtonLeft), ActionPress, int(ModShift))
	tr.MouseButton(int(ButtonRight), ActionPress, 0) // ignored while left is held
	tr.CursorPos(12, 24)
	tr.MouseButton(int(ButtonRight), ActionRelease, 0) // ignored, not the active button
	tr.MouseButton(int(ButtonLeft), ActionRelease, 0)

	want := []Event{
		PointerMove{PointerID: 0, Type: PointerMouse, X: 10, Y: 20},
		PointerDown{PointerID: 0, Type: PointerMouse, Button: ButtonLeft, X: 10, Y: 20, Modifiers: ModShift},
		PointerMove{PointerID: 0, Type: PointerMouse, X: 12, Y: 24},
		PointerUp{PointerID: 0, Type: PointerMouse, Button: ButtonLeft, X: 12, Y: 24},
	}
	if got := q.Drain(); !reflect.DeepEqual(got, want) {
		t.Errorf("events = %#v\nwant %#v", got, want)
	}
}

func TestTranslatorKeysAndScroll(t *testing.T) {
	q := NewQueue(8)
	tr := NewTranslator(q)

	tr.Key(265, ActionPress, int(ModControl)|0x10) // caps lock bit is dropped
	tr.Key(265, ActionRepeat, int(ModControl))
	tr.Key(265, ActionRelease, 0)
	tr.Scroll(0)
	tr.Scroll(1.5)

	want := []Event{
		KeyDown{Key: 265, Modifiers: ModControl},
		KeyDown{Key: 265, Modifiers: ModControl},
		KeyUp{Key: 265},
		Wheel{DeltaY: -1.5},
	}
	if got := q.Drain(); !reflect.DeepEqual(got, want) {
		t.Errorf("events = %#v\nwant %#v", got, want)
	}
}

func TestTranslatorFocusLost(t *testing.T) {
	testCases := []struct {
		name    string
		pressed bool
		want    []Event
	}{
		{name: "button held", pressed: true, want: []Event{PointerCancel{PointerID: 0, Type: PointerMouse}}},
		{name: "nothing held", pressed: false, want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := NewQueue(4)
			tr := NewTranslator(q)
			if tc.pressed {
				tr.MouseButton(int(ButtonMiddle), ActionPress, 0)
				q.Drain()
			}

			tr.FocusLost()

			if got := q.Drain(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("events = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestTranslatorWithoutHandler(t *testing.T) {
	tr := NewTranslator(nil)
	tr.CursorPos(1, 1)
	tr.MouseButton(0, ActionPress, 0)

	q := NewQueue(2)
	tr.SetHandler(q)
	tr.MouseButton(0, ActionRelease, 0)

	if got := q.Drain(); len(got) != 1 {
		t.Errorf("got %d events after SetHandler, want 1", len(got))
	}
}

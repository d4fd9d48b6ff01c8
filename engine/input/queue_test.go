package input

import "testing"

func TestQueueDrainPreservesOrder(t *testing.T) {
	q := NewQueue(2)
	q.Enqueue(PointerDown{PointerID: 1, X: 1})
	q.Enqueue(PointerMove{PointerID: 1, X: 2})
	q.Enqueue(PointerUp{PointerID: 1, X: 3})

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}

	events := q.Drain()
	if len(events) != 3 {
		t.Fatalf("Drain() returned %d events, want 3", len(events))
	}
	if _, ok := events[0].(PointerDown); !ok {
		t.Errorf("events[0] = %T, want PointerDown", events[0])
	}
	if _, ok := events[1].(PointerMove); !ok {
		t.Errorf("events[1] = %T, want PointerMove", events[1])
	}
	if _, ok := events[2].(PointerUp); !ok {
		t.Errorf("events[2] = %T, want PointerUp", events[2])
	}

	if q.Len() != 0 {
		t.Errorf("Len() after drain = %d, want 0", q.Len())
	}
	if again := q.Drain(); again != nil {
		t.Errorf("second Drain() = %v, want nil", again)
	}
}

func TestModifiers(t *testing.T) {
	testCases := []struct {
		name string
		mods Modifiers
		swap bool
	}{
		{name: "none", mods: 0, swap: false},
		{name: "alt only", mods: ModAlt, swap: false},
		{name: "shift", mods: ModShift, swap: true},
		{name: "control", mods: ModControl, swap: true},
		{name: "super and alt", mods: ModSuper | ModAlt, swap: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.mods.SwapsGesture(); got != tc.swap {
				t.Errorf("SwapsGesture() = %v, want %v", got, tc.swap)
			}
		})
	}

	if !(ModShift | ModControl).Has(ModControl) {
		t.Error("Has(ModControl) = false, want true")
	}
	if ModShift.Has(ModShift | ModControl) {
		t.Error("Has(ModShift|ModControl) = true on ModShift, want false")
	}
}

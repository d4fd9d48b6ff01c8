package camera

import (
	"fmt"
	"strings"
)

// Mode is the orbit controller's active interaction. Exactly one mode is active at
// a time; a new gesture start re-selects it and releasing the last pointer returns
// to ModeNone.
type Mode int

const (
	ModeNone Mode = iota
	ModeRotate
	ModePan
	ModeDolly
	ModeTouchRotate
	ModeTouchPan
	ModeTouchDollyPan
	ModeTouchDollyRotate
)

var modeNames = [...]string{
	ModeNone:             "none",
	ModeRotate:           "rotate",
	ModePan:              "pan",
	ModeDolly:            "dolly",
	ModeTouchRotate:      "touch-rotate",
	ModeTouchPan:         "touch-pan",
	ModeTouchDollyPan:    "touch-dolly-pan",
	ModeTouchDollyRotate: "touch-dolly-rotate",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Action is what a mouse button or touch gesture does when it starts.
type Action int

const (
	ActionNone Action = iota
	ActionRotate
	ActionDolly
	ActionPan
	ActionDollyPan
	ActionDollyRotate
)

var actionNames = map[Action]string{
	ActionNone:        "none",
	ActionRotate:      "rotate",
	ActionDolly:       "dolly",
	ActionPan:         "pan",
	ActionDollyPan:    "dolly-pan",
	ActionDollyRotate: "dolly-rotate",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction converts an action name ("rotate", "dolly", "pan", "dolly-pan",
// "dolly-rotate", "none") into an Action.
//
// Parameters:
//   - s: the action name, case-insensitive
//
// Returns:
//   - Action: the parsed action
//   - error: non-nil if the name is not recognized
func ParseAction(s string) (Action, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for a, name := range actionNames {
		if name == s {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown camera action %q", s)
}

// MouseButtons maps each mouse button to the action it starts.
type MouseButtons struct {
	Left   Action
	Middle Action
	Right  Action
}

// DefaultMouseButtons rotates with the left button, dollies with the middle button
// and pans with the right button.
func DefaultMouseButtons() MouseButtons {
	return MouseButtons{Left: ActionRotate, Middle: ActionDolly, Right: ActionPan}
}

// TouchGestures maps one- and two-finger gestures to the action they start.
type TouchGestures struct {
	One Action
	Two Action
}

// DefaultTouchGestures rotates with one finger and pinch-zooms plus pans with two.
func DefaultTouchGestures() TouchGestures {
	return TouchGestures{One: ActionRotate, Two: ActionDollyPan}
}

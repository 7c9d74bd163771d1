package input

import (
	"github.com/bethropolis/sketch/internal/types"
	"github.com/gdamore/tcell/v2"
)

// PointerKind classifies a pointer event.
type PointerKind int

const (
	PointerNone PointerKind = iota
	PointerDown
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "Down"
	case PointerMove:
		return "Move"
	case PointerUp:
		return "Up"
	}
	return "None"
}

// PointerEvent is a primary-button transition or a motion at a cell.
type PointerEvent struct {
	Kind PointerKind
	Pos  types.Point
}

// PointerTracker turns tcell mouse reports, which carry button state rather
// than transitions, into down/move/up events for the primary button.
type PointerTracker struct {
	pressed bool
	last    types.Point
}

// Pressed reports whether the primary button is held.
func (t *PointerTracker) Pressed() bool { return t.pressed }

// Track converts ev. Motion with no button held is reported as a move too, so
// callers that track their own flags see every position; repeated reports at
// the same cell while held are dropped.
func (t *PointerTracker) Track(ev *tcell.EventMouse) PointerEvent {
	x, y := ev.Position()
	p := types.Point{X: x, Y: y}
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !t.pressed:
		t.pressed = true
		t.last = p
		return PointerEvent{Kind: PointerDown, Pos: p}
	case !down && t.pressed:
		t.pressed = false
		t.last = p
		return PointerEvent{Kind: PointerUp, Pos: p}
	case down && p == t.last:
		return PointerEvent{Kind: PointerNone, Pos: p}
	default:
		t.last = p
		return PointerEvent{Kind: PointerMove, Pos: p}
	}
}

package modehandler

import (
	"github.com/bethropolis/sketch/internal/event"
	"github.com/bethropolis/sketch/internal/input"
	"github.com/bethropolis/sketch/internal/logger"
	"github.com/bethropolis/sketch/internal/types"
)

// HandlePointer applies a pointer transition in canvas coordinates.
func (mh *ModeHandler) HandlePointer(pe input.PointerEvent) bool {
	if mh.entry != entryNone {
		// The line being typed is modal; a press that opened the prompt still
		// has its release delivered here.
		if pe.Kind == input.PointerUp {
			mh.pressed = false
		}
		return false
	}

	switch pe.Kind {
	case input.PointerDown:
		return mh.pointerDown(pe.Pos)
	case input.PointerMove:
		return mh.pointerMove(pe.Pos)
	case input.PointerUp:
		return mh.pointerUp(pe.Pos)
	}
	return false
}

func (mh *ModeHandler) onCanvas(p types.Point) bool {
	w, h := mh.canvas.Size()
	return p.X >= 0 && p.Y >= 0 && p.X < w && p.Y < h
}

func (mh *ModeHandler) pointerDown(p types.Point) bool {
	if !mh.onCanvas(p) {
		return false
	}
	mh.pressed = true

	switch mh.mode {
	case ModeDraw:
		mh.stroking = true
		mh.lastStroke = p
		// The capture stands in for the stroke; the stroke itself is not undoable.
		mh.scene.CaptureSnapshot()
		logger.DebugTagf("stroke", "ModeHandler: Stroke started at %v", p)
		return true

	case ModeText:
		if mh.scene.Selected() != nil && mh.scene.BeginDrag(p) {
			mh.statusBar.SetDragging(true)
			return true
		}
		mh.openPrompt(p)
		return true
	}
	return false
}

func (mh *ModeHandler) pointerMove(p types.Point) bool {
	if !mh.pressed {
		return false
	}
	if mh.stroking {
		mh.canvas.DrawLine(mh.lastStroke, p, mh.color)
		mh.eventManager.Dispatch(event.TypeStroke, event.StrokeData{From: mh.lastStroke, To: p})
		mh.lastStroke = p
		return true
	}
	if mh.scene.Dragging() {
		return mh.scene.UpdateDrag(p)
	}
	return false
}

// pointerUp ends any stroke or drag, then selects whatever is under the
// pointer, like a click following the release.
func (mh *ModeHandler) pointerUp(p types.Point) bool {
	if !mh.pressed {
		return false
	}
	mh.pressed = false
	mh.stroking = false
	mh.scene.EndDrag()
	mh.statusBar.SetDragging(false)
	mh.scene.Select(p)
	return true
}

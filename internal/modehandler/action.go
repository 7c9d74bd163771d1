package modehandler

import (
	"github.com/bethropolis/sketch/internal/input"
	"github.com/bethropolis/sketch/internal/logger"
)

// executeAction handles tool key bindings.
func (mh *ModeHandler) executeAction(actionEvent input.ActionEvent) bool {
	actionProcessed := true

	switch actionEvent.Action {
	case input.ActionQuit:
		mh.quit()
		actionProcessed = false

	case input.ActionModeDraw:
		mh.SetMode(ModeDraw)
	case input.ActionModeText:
		mh.SetMode(ModeText)

	case input.ActionNextColor:
		if len(mh.palette) == 0 {
			mh.statusBar.SetTemporaryMessage("Palette is empty")
			break
		}
		mh.SetColor(mh.palette[(mh.paletteIdx+1)%len(mh.palette)])
	case input.ActionPickColor:
		if actionEvent.Index < 0 || actionEvent.Index >= len(mh.palette) {
			mh.statusBar.SetTemporaryMessage("No palette color %d", actionEvent.Index+1)
			break
		}
		mh.SetColor(mh.palette[actionEvent.Index])

	case input.ActionUndo:
		mh.undo()
	case input.ActionRedo:
		mh.redo()
	case input.ActionClear:
		mh.clear()
	case input.ActionYank:
		mh.yank()

	case input.ActionEnterCommandMode:
		mh.abandonPointer()
		mh.entry = entryCommand
		mh.cmdBuffer = ""
		mh.statusBar.SetCommand("")
		logger.Debugf("ModeHandler: Entering Command Mode")

	default:
		actionProcessed = false
	}

	return actionProcessed
}

func (mh *ModeHandler) undo() {
	if !mh.scene.Undo() {
		mh.statusBar.SetTemporaryMessage("Nothing to undo")
		return
	}
	mh.statusBar.SetTemporaryMessage("Undo (%d more)", mh.scene.UndoDepth())
}

func (mh *ModeHandler) redo() {
	if !mh.scene.Redo() {
		mh.statusBar.SetTemporaryMessage("Nothing to redo")
		return
	}
	mh.statusBar.SetTemporaryMessage("Redo (%d more)", mh.scene.RedoDepth())
}

func (mh *ModeHandler) clear() {
	mh.stroking = false
	mh.scene.Clear()
	mh.statusBar.SetTemporaryMessage("Canvas cleared")
}

// reset starts over with an empty scene and no history.
func (mh *ModeHandler) reset() {
	mh.abandonPointer()
	mh.scene.Reset()
	mh.statusBar.SetTemporaryMessage("New canvas")
}

func (mh *ModeHandler) yank() {
	sel := mh.scene.Selected()
	if sel == nil {
		mh.statusBar.SetTemporaryMessage("Nothing selected to yank")
		return
	}
	if err := mh.clipboard.Write(sel.Text); err != nil {
		logger.Warnf("ModeHandler: Yank: %v", err)
		mh.statusBar.SetTemporaryMessage("Yanked to internal clipboard (%v)", err)
		return
	}
	target := "register"
	if mh.clipboard.UsesSystem() {
		target = "system clipboard"
	}
	mh.statusBar.SetTemporaryMessage("Yanked %q to %s", sel.Text, target)
}

// abandonPointer ends a stroke or drag because keyboard entry takes over.
func (mh *ModeHandler) abandonPointer() {
	mh.pressed = false
	mh.stroking = false
	mh.scene.EndDrag()
	mh.statusBar.SetDragging(false)
}

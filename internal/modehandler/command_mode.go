package modehandler

import (
	"strings"

	"github.com/bethropolis/sketch/internal/input"
	"github.com/bethropolis/sketch/internal/logger"
	"github.com/bethropolis/sketch/internal/types"
	"github.com/rivo/uniseg"
)

const promptLabel = "text"

// openPrompt starts text acquisition for an annotation anchored at p.
func (mh *ModeHandler) openPrompt(p types.Point) {
	mh.entry = entryPrompt
	mh.promptAnchor = p
	mh.promptBuffer = ""
	mh.statusBar.SetPrompt(promptLabel, "")
	logger.Debugf("ModeHandler: Prompt opened at %v", p)
}

func (mh *ModeHandler) closeEntry() {
	mh.entry = entryNone
	mh.promptBuffer = ""
	mh.cmdBuffer = ""
	mh.statusBar.ClearInput()
}

// handleActionPrompt edits the annotation text prompt.
func (mh *ModeHandler) handleActionPrompt(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.promptBuffer += string(actionEvent.Rune)
	case input.ActionDeleteBackward:
		mh.promptBuffer = trimLastGrapheme(mh.promptBuffer)
	case input.ActionPaste:
		mh.promptBuffer += singleLine(mh.clipboard.Read())
	case input.ActionSubmit:
		text, anchor := mh.promptBuffer, mh.promptAnchor
		mh.closeEntry()
		mh.scene.AddText(anchor.X, anchor.Y, text, mh.color)
		// The prompt swallows the release that opened it, so select here.
		mh.scene.Select(anchor)
		return true
	case input.ActionCancel:
		anchor := mh.promptAnchor
		mh.closeEntry()
		mh.scene.Select(anchor)
		logger.Debugf("ModeHandler: Prompt canceled")
		return true
	default:
		return false
	}
	mh.statusBar.SetPrompt(promptLabel, mh.promptBuffer)
	return true
}

// handleActionCommand edits and runs the ':' command line.
func (mh *ModeHandler) handleActionCommand(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.cmdBuffer += string(actionEvent.Rune)
	case input.ActionDeleteBackward:
		if mh.cmdBuffer == "" {
			mh.closeEntry()
			logger.Debugf("ModeHandler: Exiting Command Mode via Backspace")
			return true
		}
		mh.cmdBuffer = trimLastGrapheme(mh.cmdBuffer)
	case input.ActionPaste:
		mh.cmdBuffer += singleLine(mh.clipboard.Read())
	case input.ActionSubmit:
		cmdStr := mh.cmdBuffer
		mh.closeEntry()
		mh.executeCommand(cmdStr)
		return true
	case input.ActionCancel:
		mh.closeEntry()
		logger.Debugf("ModeHandler: Canceled Command Mode via Escape")
		return true
	default:
		return false
	}
	mh.statusBar.SetCommand(mh.cmdBuffer)
	return true
}

// executeCommand parses and runs cmdStr.
func (mh *ModeHandler) executeCommand(cmdStr string) {
	parts := strings.Fields(cmdStr)
	if len(parts) == 0 {
		return
	}
	cmdName, args := parts[0], parts[1:]

	cmdFunc, exists := mh.commands[cmdName]
	if !exists {
		mh.statusBar.SetTemporaryMessage("Unknown command: %s", cmdName)
		return
	}
	logger.DebugTagf("command", "ModeHandler: Executing command ':%s' with args %v", cmdName, args)
	if err := cmdFunc(args); err != nil {
		mh.statusBar.SetTemporaryMessage("Error executing command '%s': %v", cmdName, err)
	}
}

// trimLastGrapheme drops the final user-perceived character of s.
func trimLastGrapheme(s string) string {
	last := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		last, _ = gr.Positions()
	}
	return s[:last]
}

// singleLine flattens pasted text, since annotations are one row tall.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(s)
}

package modehandler

import (
	"fmt"
	"strings"

	"github.com/bethropolis/sketch/internal/logger"
	"github.com/bethropolis/sketch/internal/theme"
	"github.com/rivo/uniseg"
)

// registerBuiltinCommands installs the ':' commands every session has.
func (mh *ModeHandler) registerBuiltinCommands() {
	builtins := map[string]CommandFunc{
		"undo":  func([]string) error { mh.undo(); return nil },
		"redo":  func([]string) error { mh.redo(); return nil },
		"clear": func([]string) error { mh.clear(); return nil },
		"new":   func([]string) error { mh.reset(); return nil },
		"yank":  func([]string) error { mh.yank(); return nil },
		"q":     func([]string) error { mh.quit(); return nil },
		"quit":  func([]string) error { mh.quit(); return nil },
		"color": mh.colorCommand,
		"mode":  mh.modeCommand,
		"brush": mh.brushCommand,
	}
	for name, fn := range builtins {
		if err := mh.RegisterCommand(name, fn); err != nil {
			logger.Warnf("Failed to register ':%s' command: %v", name, err)
		}
	}
}

// colorCommand handles ":color [name|#rrggbb]"; without an argument it shows
// the current color.
func (mh *ModeHandler) colorCommand(args []string) error {
	if len(args) == 0 {
		mh.statusBar.SetTemporaryMessage("Current color: %s", theme.Hex(mh.color))
		return nil
	}
	c, err := theme.ParseColor(strings.Join(args, " "))
	if err != nil {
		return err
	}
	mh.SetColor(c)
	mh.statusBar.SetTemporaryMessage("Color set to %s", theme.Hex(c))
	return nil
}

// modeCommand handles ":mode draw|text".
func (mh *ModeHandler) modeCommand(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: mode draw|text")
	}
	switch strings.ToLower(args[0]) {
	case "draw":
		mh.SetMode(ModeDraw)
	case "text":
		mh.SetMode(ModeText)
	default:
		return fmt.Errorf("unknown mode '%s'", args[0])
	}
	return nil
}

// brushCommand handles ":brush <char>".
func (mh *ModeHandler) brushCommand(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: brush <char>")
	}
	brush := args[0]
	if uniseg.GraphemeClusterCount(brush) != 1 || uniseg.StringWidth(brush) != 1 {
		return fmt.Errorf("brush '%s' is not a single-cell character", brush)
	}
	mh.canvas.SetBrush([]rune(brush)[0])
	mh.statusBar.SetTemporaryMessage("Brush set to %s", brush)
	return nil
}

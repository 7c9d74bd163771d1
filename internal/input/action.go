// internal/input/action.go
package input

// Action represents a command or operation requested by a key press.
type Action int

// Define the set of possible actions.
const (
	// --- Meta Actions ---
	ActionUnknown Action = iota // Default/invalid action
	ActionQuit

	// --- Tools ---
	ActionModeDraw
	ActionModeText
	ActionNextColor
	ActionPickColor // Requires Index

	// --- Scene ---
	ActionUndo
	ActionRedo
	ActionClear
	ActionYank // Copy the selected annotation's text

	// --- Line entry (prompt and command line) ---
	ActionEnterCommandMode // ':'
	ActionInsertRune       // Requires Rune
	ActionDeleteBackward
	ActionPaste
	ActionSubmit
	ActionCancel
)

var actionNames = map[Action]string{
	ActionUnknown:          "Unknown",
	ActionQuit:             "Quit",
	ActionModeDraw:         "ModeDraw",
	ActionModeText:         "ModeText",
	ActionNextColor:        "NextColor",
	ActionPickColor:        "PickColor",
	ActionUndo:             "Undo",
	ActionRedo:             "Redo",
	ActionClear:            "Clear",
	ActionYank:             "Yank",
	ActionEnterCommandMode: "EnterCommandMode",
	ActionInsertRune:       "InsertRune",
	ActionDeleteBackward:   "DeleteBackward",
	ActionPaste:            "Paste",
	ActionSubmit:           "Submit",
	ActionCancel:           "Cancel",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ActionEvent represents a decoded key event and the payload its action needs.
type ActionEvent struct {
	Action Action
	Rune   rune // ActionInsertRune
	Index  int  // ActionPickColor, zero-based palette slot
}

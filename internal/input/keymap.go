// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to actions.
type Keymap map[tcell.Key]Action
type RuneKeymap map[rune]Action

// InputProcessor translates tcell key events into ActionEvents. Keys mean
// different things while a line is being typed, so there are two sets of
// bindings.
type InputProcessor struct {
	keymap      Keymap     // Tool keys
	runeKeymap  RuneKeymap // Tool keys
	entryKeymap Keymap     // Prompt and command line
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:      make(Keymap),
		runeKeymap:  make(RuneKeymap),
		entryKeymap: make(Keymap),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	// --- Tool keys ---
	p.keymap[tcell.KeyEscape] = ActionQuit
	p.keymap[tcell.KeyCtrlC] = ActionQuit
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlY] = ActionRedo

	p.runeKeymap['q'] = ActionQuit
	p.runeKeymap['d'] = ActionModeDraw
	p.runeKeymap['t'] = ActionModeText
	p.runeKeymap['u'] = ActionUndo
	p.runeKeymap['r'] = ActionRedo
	p.runeKeymap['c'] = ActionClear
	p.runeKeymap['n'] = ActionNextColor
	p.runeKeymap['y'] = ActionYank
	p.runeKeymap[':'] = ActionEnterCommandMode

	// --- Line entry ---
	p.entryKeymap[tcell.KeyEnter] = ActionSubmit
	p.entryKeymap[tcell.KeyEscape] = ActionCancel
	p.entryKeymap[tcell.KeyCtrlC] = ActionCancel
	p.entryKeymap[tcell.KeyBackspace] = ActionDeleteBackward
	p.entryKeymap[tcell.KeyBackspace2] = ActionDeleteBackward // Often used for Backspace
	p.entryKeymap[tcell.KeyCtrlV] = ActionPaste
}

// ProcessEvent returns the tool action bound to ev.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()

	if key == tcell.KeyRune {
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return ActionEvent{Action: ActionUnknown}
		}
		r := ev.Rune()
		if r >= '1' && r <= '8' {
			return ActionEvent{Action: ActionPickColor, Index: int(r - '1')}
		}
		if action, ok := p.runeKeymap[r]; ok {
			return ActionEvent{Action: action, Rune: r}
		}
		return ActionEvent{Action: ActionUnknown, Rune: r}
	}

	if action, ok := p.keymap[key]; ok {
		return ActionEvent{Action: action}
	}
	return ActionEvent{Action: ActionUnknown}
}

// ProcessEntryEvent returns the line-editing action bound to ev. Plain runes
// are always inserted.
func (p *InputProcessor) ProcessEntryEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	if key == tcell.KeyRune {
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return ActionEvent{Action: ActionUnknown}
		}
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
	}
	if action, ok := p.entryKeymap[key]; ok {
		return ActionEvent{Action: action}
	}
	return ActionEvent{Action: ActionUnknown}
}

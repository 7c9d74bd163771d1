// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"

	"github.com/bethropolis/sketch/internal/canvas"
	"github.com/bethropolis/sketch/internal/clipboard"
	"github.com/bethropolis/sketch/internal/event"
	"github.com/bethropolis/sketch/internal/input"
	"github.com/bethropolis/sketch/internal/logger"
	"github.com/bethropolis/sketch/internal/scene"
	"github.com/bethropolis/sketch/internal/statusbar"
	"github.com/bethropolis/sketch/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Mode is the active drawing tool.
type Mode int

const (
	ModeDraw Mode = iota
	ModeText
)

func (m Mode) String() string {
	if m == ModeText {
		return "TEXT"
	}
	return "DRAW"
}

// entryState tracks which line, if any, keystrokes are typed into.
type entryState int

const (
	entryNone entryState = iota
	entryPrompt
	entryCommand
)

// CommandFunc runs a ':' command.
type CommandFunc func(args []string) error

// ModeHandler is the shell around the scene: it owns the tool mode, the
// drawing color, the stroke in progress and the text lines being typed.
type ModeHandler struct {
	// Dependencies (references to components managed by App)
	scene          *scene.Scene
	canvas         *canvas.Canvas
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	clipboard      *clipboard.Manager
	quitSignal     chan<- struct{}
	quitting       bool

	mode       Mode
	color      tcell.Color
	palette    []tcell.Color
	paletteIdx int

	// --- Pointer state ---
	pointer    input.PointerTracker
	pressed    bool // A press started on the canvas and has not been released
	stroking   bool
	lastStroke types.Point

	// --- Line entry ---
	entry        entryState
	promptAnchor types.Point
	promptBuffer string
	cmdBuffer    string
	commands     map[string]CommandFunc
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Scene          *scene.Scene
	Canvas         *canvas.Canvas
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	Clipboard      *clipboard.Manager
	QuitSignal     chan<- struct{} // Closed once to signal quit

	Color   tcell.Color   // Initial drawing color
	Palette []tcell.Color // Colors for 'n' and 1-8; may be empty
}

// New creates a new ModeHandler in draw mode with the built-in commands registered.
func New(cfg Config) *ModeHandler {
	if cfg.Scene == nil || cfg.Canvas == nil || cfg.InputProcessor == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = clipboard.New(false)
	}
	mh := &ModeHandler{
		scene:          cfg.Scene,
		canvas:         cfg.Canvas,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		clipboard:      cfg.Clipboard,
		quitSignal:     cfg.QuitSignal,
		mode:           ModeDraw,
		color:          cfg.Color,
		palette:        append([]tcell.Color(nil), cfg.Palette...),
		paletteIdx:     -1,
		commands:       make(map[string]CommandFunc),
	}
	for i, c := range mh.palette {
		if c == mh.color {
			mh.paletteIdx = i
			break
		}
	}
	mh.registerBuiltinCommands()
	mh.statusBar.SetMode(mh.mode.String())
	mh.statusBar.SetColor(mh.color)
	return mh
}

// HandleKeyEvent routes a key to the line being typed or to the tool bindings.
// Returns true if the event requires a redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	switch mh.entry {
	case entryPrompt:
		return mh.handleActionPrompt(mh.inputProcessor.ProcessEntryEvent(ev))
	case entryCommand:
		return mh.handleActionCommand(mh.inputProcessor.ProcessEntryEvent(ev))
	}
	return mh.executeAction(mh.inputProcessor.ProcessEvent(ev))
}

// HandleMouseEvent converts a tcell mouse report and handles it.
func (mh *ModeHandler) HandleMouseEvent(ev *tcell.EventMouse) bool {
	return mh.HandlePointer(mh.pointer.Track(ev))
}

// HandlePaste appends bracketed-paste text to the open line.
func (mh *ModeHandler) HandlePaste(text string) bool {
	switch mh.entry {
	case entryPrompt:
		mh.promptBuffer += singleLine(text)
		mh.statusBar.SetPrompt(promptLabel, mh.promptBuffer)
		return true
	case entryCommand:
		mh.cmdBuffer += singleLine(text)
		mh.statusBar.SetCommand(mh.cmdBuffer)
		return true
	}
	return false
}

// SetMode switches the tool. Any drag or stroke in progress ends; the
// selection survives.
func (mh *ModeHandler) SetMode(m Mode) {
	mh.scene.EndDrag()
	mh.stroking = false
	mh.statusBar.SetDragging(false)
	if mh.mode == m {
		return
	}
	mh.mode = m
	mh.statusBar.SetMode(m.String())
	logger.Debugf("ModeHandler: Mode set to %s", m)
	mh.eventManager.Dispatch(event.TypeModeChanged, event.ModeChangedData{Mode: m.String()})
}

// SetColor changes the color used for new strokes and annotations.
func (mh *ModeHandler) SetColor(c tcell.Color) {
	mh.color = c
	mh.paletteIdx = -1
	for i, pc := range mh.palette {
		if pc == c {
			mh.paletteIdx = i
			break
		}
	}
	mh.statusBar.SetColor(c)
	mh.eventManager.Dispatch(event.TypeColorChanged, event.ColorChangedData{Color: c})
}

// RegisterCommand adds a command to the registry.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if cmdFunc == nil {
		return fmt.Errorf("command '%s' has no function", name)
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.DebugTagf("command", "ModeHandler: Registered command ':%s'", name)
	return nil
}

// quit closes the quit signal once.
func (mh *ModeHandler) quit() {
	if mh.quitting {
		return
	}
	mh.quitting = true
	close(mh.quitSignal)
}

// GetCurrentMode returns the active tool.
func (mh *ModeHandler) GetCurrentMode() Mode {
	return mh.mode
}

// Color returns the current drawing color.
func (mh *ModeHandler) Color() tcell.Color {
	return mh.color
}

// Stroking reports whether a freehand stroke is in progress.
func (mh *ModeHandler) Stroking() bool {
	return mh.stroking
}

// PromptAnchor returns where submitted prompt text will be placed, and false
// when no prompt is open.
func (mh *ModeHandler) PromptAnchor() (types.Point, bool) {
	return mh.promptAnchor, mh.entry == entryPrompt
}

// GetPromptBuffer returns the text typed into the open prompt.
func (mh *ModeHandler) GetPromptBuffer() string {
	if mh.entry == entryPrompt {
		return mh.promptBuffer
	}
	return ""
}

// GetCommandBuffer returns the current command buffer content.
func (mh *ModeHandler) GetCommandBuffer() string {
	if mh.entry == entryCommand {
		return mh.cmdBuffer
	}
	return ""
}

// InCommandMode reports whether the ':' line is open.
func (mh *ModeHandler) InCommandMode() bool {
	return mh.entry == entryCommand
}

// internal/event/event.go
package event

import (
	"github.com/bethropolis/sketch/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Scene Events
	TypeAnnotationAdded // Fired after a text annotation is appended
	TypeSceneCleared    // Fired after the collection is replaced by an empty one
	TypeHistoryChanged  // Fired after an undo or redo installed a snapshot
	TypeSelectionChanged
	TypeAnnotationMoved // Fired on every drag step

	// Shell Events
	TypeModeChanged  // Fired when the tool mode switches (draw <-> text)
	TypeColorChanged // Fired when the current color changes
	TypeStroke       // Fired for every rasterized stroke segment

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins
)

var typeNames = map[Type]string{
	TypeUnknown:          "Unknown",
	TypeAnnotationAdded:  "AnnotationAdded",
	TypeSceneCleared:     "SceneCleared",
	TypeHistoryChanged:   "HistoryChanged",
	TypeSelectionChanged: "SelectionChanged",
	TypeAnnotationMoved:  "AnnotationMoved",
	TypeModeChanged:      "ModeChanged",
	TypeColorChanged:     "ColorChanged",
	TypeStroke:           "Stroke",
	TypeAppReady:         "AppReady",
	TypeAppQuit:          "AppQuit",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// --- Specific Event Data Structures ---

// AnnotationData describes the annotation an event is about.
type AnnotationData struct {
	Text  string
	Pos   types.Point
	Count int // Collection size after the change
}

// HistoryChangedData reports which direction history moved.
type HistoryChangedData struct {
	Redo      bool
	UndoDepth int
	RedoDepth int
}

// SelectionChangedData is empty Text when the selection was dropped.
type SelectionChangedData struct {
	Text     string
	Selected bool
}

// ModeChangedData contains the new tool mode name.
type ModeChangedData struct {
	Mode string
}

// ColorChangedData carries the new drawing color.
type ColorChangedData struct {
	Color tcell.Color
}

// StrokeData is one rasterized segment.
type StrokeData struct {
	From types.Point
	To   types.Point
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}

package scene

import (
	"strings"

	"github.com/bethropolis/sketch/internal/core/history"
	"github.com/bethropolis/sketch/internal/event"
	"github.com/bethropolis/sketch/internal/logger"
	"github.com/bethropolis/sketch/internal/types"
	"github.com/gdamore/tcell/v2"
)

// History is the history manager type the scene captures into.
type History = history.Manager[[]*Annotation, Snapshot]

// NewHistory creates a history manager that deep-copies annotation collections.
func NewHistory(limit int) *History {
	return history.NewManager[[]*Annotation, Snapshot](collectionCodec{}, limit)
}

// Options holds the scene's collaborators. Only History may be shared with
// other code; everything else is optional.
type Options struct {
	History *History
	Metrics Metrics        // Defaults to CellMetrics
	Surface Surface        // Redrawn after every mutation when set
	Events  *event.Manager // Notified after mutations when set
}

// Scene owns the live annotation collection and the selection.
type Scene struct {
	history *History
	metrics Metrics
	surface Surface
	events  *event.Manager

	annotations []*Annotation // Insertion order is paint order

	// --- Selection state ---
	selected *Annotation
	dragging bool
	anchor   types.Point // Last pointer position, valid only while dragging
}

// New creates an empty scene.
func New(opts Options) *Scene {
	if opts.History == nil {
		opts.History = NewHistory(0)
	}
	if opts.Metrics == nil {
		opts.Metrics = CellMetrics{}
	}
	return &Scene{
		history: opts.History,
		metrics: opts.Metrics,
		surface: opts.Surface,
		events:  opts.Events,
	}
}

// SetSurface changes the redraw target and paints onto it immediately.
func (s *Scene) SetSurface(surface Surface) {
	s.surface = surface
	s.redraw()
}

// AddText appends a new annotation on top of the paint order. Text that is
// empty or only whitespace is ignored and false is returned.
func (s *Scene) AddText(x, y int, text string, color tcell.Color) bool {
	if strings.TrimSpace(text) == "" {
		logger.DebugTagf("scene", "Scene: Ignoring empty annotation at (%d,%d)", x, y)
		return false
	}

	s.history.Capture(s.annotations)
	a := &Annotation{X: x, Y: y, Text: text, Color: color}
	s.annotations = append(s.annotations, a)
	logger.Debugf("Scene: Added %q at (%d,%d). Count: %d", text, x, y, len(s.annotations))

	s.redraw()
	s.events.Dispatch(event.TypeAnnotationAdded, event.AnnotationData{
		Text:  text,
		Pos:   a.Pos(),
		Count: len(s.annotations),
	})
	return true
}

// Clear drops every annotation and the selection. It always captures, even
// when the scene is already empty.
func (s *Scene) Clear() {
	s.history.Capture(s.annotations)
	s.annotations = nil
	hadSelection := s.selected != nil
	s.selected = nil
	s.dragging = false
	logger.Debugf("Scene: Cleared.")

	s.redraw()
	s.events.Dispatch(event.TypeSceneCleared, event.AnnotationData{})
	if hadSelection {
		s.events.Dispatch(event.TypeSelectionChanged, event.SelectionChangedData{})
	}
}

// Reset starts a new session. Annotations, selection and history are all
// dropped and nothing is captured, so a reset cannot be undone.
func (s *Scene) Reset() {
	s.history.Reset()
	s.annotations = nil
	hadSelection := s.selected != nil
	s.selected = nil
	s.dragging = false
	logger.Debugf("Scene: Reset.")

	s.redraw()
	s.events.Dispatch(event.TypeSceneCleared, event.AnnotationData{})
	s.events.Dispatch(event.TypeHistoryChanged, event.HistoryChangedData{})
	if hadSelection {
		s.events.Dispatch(event.TypeSelectionChanged, event.SelectionChangedData{})
	}
}

// CaptureSnapshot records the current collection without changing it.
func (s *Scene) CaptureSnapshot() {
	s.history.Capture(s.annotations)
}

// Bounds returns the hit box of a: [x, x+width] by [y-height, y].
func (s *Scene) Bounds(a *Annotation) types.Rect {
	width := s.metrics.TextWidth(a.Text)
	height := s.metrics.TextHeight()
	return types.Rect{
		Min: types.Point{X: a.X, Y: a.Y - height},
		Max: types.Point{X: a.X + width, Y: a.Y},
	}
}

// Contains reports whether p falls inside the hit box of a. A nil a never
// contains anything.
func (s *Scene) Contains(a *Annotation, p types.Point) bool {
	if a == nil {
		return false
	}
	return s.Bounds(a).Contains(p)
}

// HitTest returns the first annotation, in insertion order, whose box
// contains p. When boxes overlap this is the oldest one, not the one painted
// on top. It returns nil when nothing matches.
func (s *Scene) HitTest(p types.Point) *Annotation {
	for _, a := range s.annotations {
		if s.Contains(a, p) {
			return a
		}
	}
	return nil
}

// Select replaces the selection with the hit-test result at p, which may be nil.
func (s *Scene) Select(p types.Point) *Annotation {
	prev := s.selected
	s.selected = s.HitTest(p)
	if s.selected != prev {
		data := event.SelectionChangedData{}
		if s.selected != nil {
			data = event.SelectionChangedData{Text: s.selected.Text, Selected: true}
		}
		s.events.Dispatch(event.TypeSelectionChanged, data)
	}
	return s.selected
}

// BeginDrag starts moving the selection when p is inside its box.
func (s *Scene) BeginDrag(p types.Point) bool {
	if !s.Contains(s.selected, p) {
		return false
	}
	s.anchor = p
	s.dragging = true
	logger.DebugTagf("scene", "Scene: Drag started on %q at %v", s.selected.Text, p)
	return true
}

// UpdateDrag moves the selection by the pointer delta since the last call.
// Dragging is not captured into history.
func (s *Scene) UpdateDrag(p types.Point) bool {
	if !s.dragging || s.selected == nil {
		return false
	}
	d := p.Sub(s.anchor)
	s.selected.X += d.X
	s.selected.Y += d.Y
	s.anchor = p

	s.redraw()
	s.events.Dispatch(event.TypeAnnotationMoved, event.AnnotationData{
		Text:  s.selected.Text,
		Pos:   s.selected.Pos(),
		Count: len(s.annotations),
	})
	return true
}

// EndDrag stops dragging. Safe to call at any time.
func (s *Scene) EndDrag() {
	if s.dragging {
		logger.DebugTagf("scene", "Scene: Drag ended.")
	}
	s.dragging = false
}

// Undo restores the previous capture. The selection is dropped because the
// restored annotations are new objects.
func (s *Scene) Undo() bool {
	if !s.history.CanUndo() {
		logger.DebugTagf("scene", "Scene: Nothing to undo.")
		return false
	}
	restored, ok := s.history.Undo(s.annotations)
	if !ok {
		return false
	}
	s.install(restored, false)
	return true
}

// Redo reapplies the most recently undone state.
func (s *Scene) Redo() bool {
	if !s.history.CanRedo() {
		logger.DebugTagf("scene", "Scene: Nothing to redo.")
		return false
	}
	restored, ok := s.history.Redo(s.annotations)
	if !ok {
		return false
	}
	s.install(restored, true)
	return true
}

func (s *Scene) install(restored []*Annotation, redo bool) {
	s.annotations = restored
	hadSelection := s.selected != nil
	s.selected = nil
	s.dragging = false

	s.redraw()
	s.events.Dispatch(event.TypeHistoryChanged, event.HistoryChangedData{
		Redo:      redo,
		UndoDepth: s.history.UndoDepth(),
		RedoDepth: s.history.RedoDepth(),
	})
	if hadSelection {
		s.events.Dispatch(event.TypeSelectionChanged, event.SelectionChangedData{})
	}
}

// Render clears surface and paints every annotation in insertion order.
func (s *Scene) Render(surface Surface) {
	if surface == nil {
		return
	}
	surface.Clear()
	for _, a := range s.annotations {
		surface.DrawText(a.Pos(), a.Text, a.Color)
	}
}

func (s *Scene) redraw() {
	s.Render(s.surface)
}

// Annotations returns a value copy of the live collection.
func (s *Scene) Annotations() Snapshot {
	return collectionCodec{}.Snapshot(s.annotations)
}

// Len returns the number of annotations.
func (s *Scene) Len() int { return len(s.annotations) }

// Selected returns the selected annotation or nil.
func (s *Scene) Selected() *Annotation { return s.selected }

// Dragging reports whether a drag is in progress.
func (s *Scene) Dragging() bool { return s.dragging }

// UndoDepth returns the number of captures available to undo.
func (s *Scene) UndoDepth() int { return s.history.UndoDepth() }

// RedoDepth returns the number of undone states available to redo.
func (s *Scene) RedoDepth() int { return s.history.RedoDepth() }

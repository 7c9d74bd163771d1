package app

import (
	"github.com/bethropolis/sketch/internal/event"
	"github.com/bethropolis/sketch/internal/logger"
)

// subscribeEvents wires app-level reactions to scene and shell events.
func (a *App) subscribeEvents() {
	a.eventManager.Subscribe(event.TypeAnnotationAdded, a.handleAnnotationAdded)
	a.eventManager.Subscribe(event.TypeSceneCleared, a.handleSceneCleared)
	a.eventManager.Subscribe(event.TypeHistoryChanged, a.handleHistoryChanged)
	a.eventManager.Subscribe(event.TypeSelectionChanged, a.handleSelectionChanged)
	a.eventManager.Subscribe(event.TypeModeChanged, a.handleModeChanged)
}

func (a *App) handleAnnotationAdded(e event.Event) bool {
	if data, ok := e.Data.(event.AnnotationData); ok {
		logger.Infof("App: Annotation %q placed at %v (%d total)", data.Text, data.Pos, data.Count)
	}
	return false // Not consumed
}

func (a *App) handleSceneCleared(e event.Event) bool {
	logger.Infof("App: Scene cleared")
	return false
}

func (a *App) handleHistoryChanged(e event.Event) bool {
	if data, ok := e.Data.(event.HistoryChangedData); ok {
		a.statusBar.SetHistory(data.UndoDepth, data.RedoDepth)
	}
	return false
}

// handleSelectionChanged keeps the status bar current between draws.
func (a *App) handleSelectionChanged(e event.Event) bool {
	if data, ok := e.Data.(event.SelectionChangedData); ok {
		a.statusBar.SetSelection(data.Text, data.Selected)
	}
	return false
}

func (a *App) handleModeChanged(e event.Event) bool {
	if data, ok := e.Data.(event.ModeChangedData); ok {
		logger.Debugf("App: Mode changed to %s", data.Mode)
	}
	return false
}

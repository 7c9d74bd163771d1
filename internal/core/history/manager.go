package history

import (
	"sync"

	"github.com/bethropolis/sketch/internal/logger"
)

// Manager holds the undo and redo stacks. It is generic storage: it never
// inspects a snapshot beyond handing it to its Codec.
type Manager[L, S any] struct {
	codec Codec[L, S]
	undo  []S
	redo  []S
	limit int // Max undo depth; <= 0 means unbounded
	mutex sync.Mutex
}

// NewManager creates a history manager. A limit <= 0 keeps every capture.
func NewManager[L, S any](codec Codec[L, S], limit int) *Manager[L, S] {
	if limit < 0 {
		limit = 0
	}
	return &Manager[L, S]{
		codec: codec,
		limit: limit,
	}
}

// Capture snapshots live onto the undo stack and empties the redo stack.
// The redo stack is dropped even when it is already empty.
func (m *Manager[L, S]) Capture(live L) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.undo = append(m.undo, m.codec.Snapshot(live))
	m.redo = nil

	// Oldest entries go first once the limit is hit
	if m.limit > 0 && len(m.undo) > m.limit {
		m.undo = append([]S(nil), m.undo[len(m.undo)-m.limit:]...)
	}

	logger.DebugTagf("history", "History: Captured. Undo: %d, Redo: %d", len(m.undo), len(m.redo))
}

// Undo steps back one capture. current is the live state being abandoned; it
// is pushed onto the redo stack before the undo stack is popped. With nothing
// to undo it returns the zero value and false, and neither stack changes.
func (m *Manager[L, S]) Undo(current L) (L, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if len(m.undo) == 0 {
		logger.DebugTagf("history", "History: Nothing to undo.")
		var zero L
		return zero, false
	}

	m.redo = append(m.redo, m.codec.Snapshot(current))
	top := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]

	logger.DebugTagf("history", "History: Undo. Undo: %d, Redo: %d", len(m.undo), len(m.redo))
	return m.codec.Restore(top), true
}

// Redo is the mirror of Undo: current goes onto the undo stack, then the top
// of the redo stack is restored.
func (m *Manager[L, S]) Redo(current L) (L, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if len(m.redo) == 0 {
		logger.DebugTagf("history", "History: Nothing to redo.")
		var zero L
		return zero, false
	}

	m.undo = append(m.undo, m.codec.Snapshot(current))
	top := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]

	logger.DebugTagf("history", "History: Redo. Undo: %d, Redo: %d", len(m.undo), len(m.redo))
	return m.codec.Restore(top), true
}

// Reset empties both stacks.
func (m *Manager[L, S]) Reset() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.undo = nil
	m.redo = nil
	logger.DebugTagf("history", "History: Reset.")
}

// CanUndo returns true if there is a capture to step back to.
func (m *Manager[L, S]) CanUndo() bool {
	return m.UndoDepth() > 0
}

// CanRedo returns true if an undo can be reapplied.
func (m *Manager[L, S]) CanRedo() bool {
	return m.RedoDepth() > 0
}

// UndoDepth returns the number of entries on the undo stack.
func (m *Manager[L, S]) UndoDepth() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.undo)
}

// RedoDepth returns the number of entries on the redo stack.
func (m *Manager[L, S]) RedoDepth() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.redo)
}

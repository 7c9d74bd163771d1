// Package clipboard holds yanked annotation text and text pasted into the
// prompt. It prefers the system clipboard and keeps an in-memory register as
// the fallback.
package clipboard

import (
	"fmt"
	"sync"

	atclip "github.com/atotto/clipboard"
	"github.com/bethropolis/sketch/internal/logger"
)

// System is the slice of the system clipboard the manager needs.
type System interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type atottoClipboard struct{}

func (atottoClipboard) ReadAll() (string, error)   { return atclip.ReadAll() }
func (atottoClipboard) WriteAll(text string) error { return atclip.WriteAll(text) }

// Manager reads and writes clipboard text.
type Manager struct {
	mu       sync.Mutex
	system   System // nil when the system clipboard is disabled or unsupported
	register string
}

// New creates a manager. With useSystem false, or on platforms atotto does not
// support, only the in-memory register is used.
func New(useSystem bool) *Manager {
	m := &Manager{}
	if useSystem {
		if atclip.Unsupported {
			logger.Warnf("Clipboard: System clipboard unsupported, using internal register")
		} else {
			m.system = atottoClipboard{}
		}
	}
	return m
}

// NewWithSystem creates a manager backed by sys. A nil sys means register only.
func NewWithSystem(sys System) *Manager {
	return &Manager{system: sys}
}

// Write stores text in the register and, when available, the system clipboard.
// The register is always updated, even when the system write fails.
func (m *Manager) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.register = text
	if m.system == nil {
		logger.DebugTagf("clipboard", "Clipboard: Stored %d bytes in register", len(text))
		return nil
	}
	if err := m.system.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard write failed: %w", err)
	}
	logger.DebugTagf("clipboard", "Clipboard: Wrote %d bytes to system clipboard", len(text))
	return nil
}

// Read returns the system clipboard text, falling back to the register when
// the system clipboard is unavailable, fails or is empty.
func (m *Manager) Read() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.system != nil {
		text, err := m.system.ReadAll()
		if err == nil && text != "" {
			return text
		}
		if err != nil {
			logger.Debugf("Clipboard: System read failed, using register: %v", err)
		}
	}
	return m.register
}

// UsesSystem reports whether the system clipboard backs this manager.
func (m *Manager) UsesSystem() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.system != nil
}

// internal/event/manager.go
package event

import (
	"sync"

	"github.com/bethropolis/sketch/internal/logger"
)

// Handler is an event subscriber. Returning true consumes the event and stops
// delivery to handlers subscribed after it.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler for a specific event type. Handlers run in
// subscription order.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	if handler == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.DebugTagf("event", "Event Manager: Handler subscribed to %v", eventType)
}

// Dispatch delivers an event synchronously. It reports whether a handler
// consumed it.
func (m *Manager) Dispatch(eventType Type, data interface{}) bool {
	if m == nil {
		return false
	}
	e := Event{Type: eventType, Data: data}

	m.mu.RLock()
	// Copy so a handler may subscribe during dispatch without affecting this round
	handlers := append([]Handler(nil), m.handlers[eventType]...)
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return false
	}

	logger.DebugTagf("event", "Event Manager: Dispatching %v to %d handler(s)", eventType, len(handlers))
	for _, handler := range handlers {
		if handler(e) {
			return true
		}
	}
	return false
}

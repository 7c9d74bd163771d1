package event

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDispatchOrderAndConsume(t *testing.T) {
	m := NewManager()
	var calls []string
	m.Subscribe(TypeAnnotationAdded, func(e Event) bool {
		calls = append(calls, "first")
		return false
	})
	m.Subscribe(TypeAnnotationAdded, func(e Event) bool {
		calls = append(calls, "second")
		return true
	})
	m.Subscribe(TypeAnnotationAdded, func(e Event) bool {
		calls = append(calls, "third")
		return false
	})

	if !m.Dispatch(TypeAnnotationAdded, AnnotationData{Text: "hi"}) {
		t.Error("Dispatch did not report consumption")
	}
	if diff := cmp.Diff([]string{"first", "second"}, calls); diff != "" {
		t.Errorf("handler calls (-want +got):\n%s", diff)
	}
}

func TestDispatchPayload(t *testing.T) {
	m := NewManager()
	var got ModeChangedData
	m.Subscribe(TypeModeChanged, func(e Event) bool {
		got, _ = e.Data.(ModeChangedData)
		return false
	})
	m.Dispatch(TypeModeChanged, ModeChangedData{Mode: "text"})
	if got.Mode != "text" {
		t.Errorf("payload mode = %q, want text", got.Mode)
	}
}

func TestDispatchWithoutHandlers(t *testing.T) {
	m := NewManager()
	if m.Dispatch(TypeSceneCleared, nil) {
		t.Error("Dispatch with no handlers reported consumption")
	}
	var nilManager *Manager
	if nilManager.Dispatch(TypeSceneCleared, nil) {
		t.Error("nil manager reported consumption")
	}
}

func TestSubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	late := 0
	m.Subscribe(TypeStroke, func(e Event) bool {
		m.Subscribe(TypeStroke, func(Event) bool { late++; return false })
		return false
	})
	m.Dispatch(TypeStroke, StrokeData{})
	if late != 0 {
		t.Errorf("handler added during dispatch ran %d times in that dispatch", late)
	}
	m.Dispatch(TypeStroke, StrokeData{})
	if late != 1 {
		t.Errorf("late handler ran %d times on the next dispatch, want 1", late)
	}
}

func TestTypeString(t *testing.T) {
	if TypeHistoryChanged.String() != "HistoryChanged" {
		t.Errorf("String = %q", TypeHistoryChanged.String())
	}
	if Type(999).String() != "Unknown" {
		t.Errorf("unregistered type String = %q", Type(999).String())
	}
}

package history

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sliceCodec stores []int live values as independent copies.
type sliceCodec struct{}

func (sliceCodec) Snapshot(live []int) []int { return append([]int{}, live...) }
func (sliceCodec) Restore(snap []int) []int  { return append([]int{}, snap...) }

func newTestManager(limit int) *Manager[[]int, []int] {
	return NewManager[[]int, []int](sliceCodec{}, limit)
}

func TestUndoOnEmptyIsNoop(t *testing.T) {
	m := newTestManager(0)
	got, ok := m.Undo([]int{1, 2})
	if ok || got != nil {
		t.Fatalf("Undo on empty = (%v, %v), want (nil, false)", got, ok)
	}
	if m.RedoDepth() != 0 {
		t.Errorf("RedoDepth = %d after no-op undo, want 0", m.RedoDepth())
	}
	if _, ok := m.Redo([]int{1}); ok {
		t.Error("Redo on empty reported success")
	}
	if m.UndoDepth() != 0 {
		t.Errorf("UndoDepth = %d after no-op redo, want 0", m.UndoDepth())
	}
}

func TestUndoPushesCurrentBeforePopping(t *testing.T) {
	m := newTestManager(0)
	m.Capture([]int{})
	m.Capture([]int{1})

	live := []int{1, 2}
	live, ok := m.Undo(live)
	if !ok {
		t.Fatal("Undo failed")
	}
	if diff := cmp.Diff([]int{1}, live); diff != "" {
		t.Errorf("first undo (-want +got):\n%s", diff)
	}
	if m.UndoDepth() != 1 || m.RedoDepth() != 1 {
		t.Errorf("depths = %d/%d, want 1/1", m.UndoDepth(), m.RedoDepth())
	}

	live, _ = m.Undo(live)
	if diff := cmp.Diff([]int{}, live); diff != "" {
		t.Errorf("second undo (-want +got):\n%s", diff)
	}

	live, ok = m.Redo(live)
	if !ok {
		t.Fatal("Redo failed")
	}
	if diff := cmp.Diff([]int{1}, live); diff != "" {
		t.Errorf("redo (-want +got):\n%s", diff)
	}
	live, _ = m.Redo(live)
	if diff := cmp.Diff([]int{1, 2}, live); diff != "" {
		t.Errorf("second redo (-want +got):\n%s", diff)
	}
	if m.CanRedo() {
		t.Error("CanRedo = true after redoing everything")
	}
}

func TestUndoRedoIsIdentity(t *testing.T) {
	states := [][]int{{}, {7}, {7, 8, 9}}
	for _, s := range states {
		m := newTestManager(0)
		m.Capture([]int{42})
		undone, ok := m.Undo(s)
		if !ok {
			t.Fatal("Undo failed")
		}
		redone, ok := m.Redo(undone)
		if !ok {
			t.Fatal("Redo failed")
		}
		if diff := cmp.Diff(s, redone); diff != "" {
			t.Errorf("redo(undo(%v)) (-want +got):\n%s", s, diff)
		}
	}
}

func TestCaptureClearsRedo(t *testing.T) {
	m := newTestManager(0)
	m.Capture([]int{})
	m.Capture([]int{1})
	live, _ := m.Undo([]int{1, 2})
	if !m.CanRedo() {
		t.Fatal("expected redo entry after undo")
	}
	m.Capture(live)
	if m.CanRedo() {
		t.Error("Capture did not clear the redo stack")
	}
	if _, ok := m.Redo(live); ok {
		t.Error("Redo succeeded after a capture")
	}
}

func TestStoredSnapshotsAreIndependent(t *testing.T) {
	m := newTestManager(0)
	live := []int{1, 2, 3}
	m.Capture(live)
	live[0] = 99

	got, _ := m.Undo(live)
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("stored snapshot changed with live state (-want +got):\n%s", diff)
	}
	got[1] = 55
	again, _ := m.Redo(got)
	if diff := cmp.Diff([]int{99, 2, 3}, again); diff != "" {
		t.Errorf("redo entry changed with restored state (-want +got):\n%s", diff)
	}
}

func TestLimitEvictsOldest(t *testing.T) {
	m := newTestManager(2)
	m.Capture([]int{1})
	m.Capture([]int{2})
	m.Capture([]int{3})
	if m.UndoDepth() != 2 {
		t.Fatalf("UndoDepth = %d, want 2", m.UndoDepth())
	}
	live, _ := m.Undo([]int{4})
	live, _ = m.Undo(live)
	if diff := cmp.Diff([]int{2}, live); diff != "" {
		t.Errorf("oldest surviving capture (-want +got):\n%s", diff)
	}
	if _, ok := m.Undo(live); ok {
		t.Error("evicted capture was still undoable")
	}
}

func TestReset(t *testing.T) {
	m := newTestManager(0)
	m.Capture([]int{1})
	m.Capture([]int{2})
	m.Undo([]int{3})
	m.Reset()
	if m.CanUndo() || m.CanRedo() {
		t.Errorf("depths after Reset = %d/%d", m.UndoDepth(), m.RedoDepth())
	}
}

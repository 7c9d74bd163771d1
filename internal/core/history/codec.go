// Package history provides undo/redo functionality via two snapshot stacks.
package history

// Codec converts between the live state a caller edits and the snapshot form
// stored on the stacks. Snapshot must return a value that shares no mutable
// memory with its argument, and Restore must return a fresh live value each
// call, so nothing on a stack is ever reachable from the live state.
type Codec[L, S any] interface {
	Snapshot(live L) S
	Restore(snap S) L
}

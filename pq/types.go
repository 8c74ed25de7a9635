// SPDX-License-Identifier: MIT

package pq

import "errors"

// Sentinel errors returned by IndexedMinHeap.
var (
	// ErrInvalidID indicates an identifier outside [0, capacity).
	ErrInvalidID = errors.New("pq: identifier out of range")

	// ErrDuplicateInsert indicates an Insert for an id that already has a live entry.
	ErrDuplicateInsert = errors.New("pq: identifier already present")

	// ErrSettled indicates an Insert for an id that was already extracted.
	ErrSettled = errors.New("pq: identifier already extracted")

	// ErrNotPresent indicates an operation on an id that has no live entry.
	ErrNotPresent = errors.New("pq: identifier not present")

	// ErrEmptyHeap indicates ExtractMin or Peek on an empty heap.
	ErrEmptyHeap = errors.New("pq: heap is empty")

	// ErrPriorityIncrease indicates DecreaseKey was asked to raise a priority.
	ErrPriorityIncrease = errors.New("pq: priority increase not supported")

	// ErrInvalidPriority indicates a NaN priority, which has no ordering.
	ErrInvalidPriority = errors.New("pq: priority is NaN")
)

// SlotState describes where an identifier is in its heap lifecycle.
type SlotState uint8

const (
	// Absent means the id was never inserted.
	Absent SlotState = iota

	// Present means the id has a live entry in the heap.
	Present

	// Settled means the id was extracted and may not be inserted again.
	Settled
)

// String returns a lower-case name of the state.
func (s SlotState) String() string {
	switch s {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Settled:
		return "settled"
	default:
		return "unknown"
	}
}

// entry is a live (id, priority) pair stored in the heap array.
type entry struct {
	id       int
	priority float64
}

// slot records the state of one id and, when Present, its array position.
type slot struct {
	state SlotState
	pos   int
}

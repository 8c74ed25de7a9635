// SPDX-License-Identifier: MIT

// Package pq provides an indexed binary min-heap over dense integer node
// identifiers keyed by float64 priorities.
//
// Overview:
//
//   - Identifiers live in the fixed range [0, capacity) chosen at construction.
//   - Each identifier owns at most one live entry at any time.
//   - A per-identifier slot table maps an id to its position in the heap array,
//     so membership lookup is O(1) and DecreaseKey is O(log n).
//
// Slot states:
//
//	Absent  – never inserted.
//	Present – has a live entry; the slot stores its array position.
//	Settled – extracted by ExtractMin; re-insertion is rejected with ErrSettled.
//
// Insert of a Settled id fails with ErrSettled, distinct from ErrDuplicateInsert.
//
// Operations and complexity:
//
//   - Insert(id, priority):       O(log n)
//   - ExtractMin():               O(log n)
//   - DecreaseKey(id, priority):  O(log n)
//   - IsEmpty, Len, Cap, Peek:    O(1)
//
// Errors (sentinel):
//
//   - ErrInvalidID        id outside [0, capacity).
//   - ErrDuplicateInsert  Insert of an id that is already Present.
//   - ErrSettled          Insert of an id that was already extracted.
//   - ErrNotPresent       DecreaseKey / Priority of an id without a live entry.
//   - ErrEmptyHeap        ExtractMin / Peek on an empty heap.
//   - ErrPriorityIncrease DecreaseKey with a larger priority than stored.
//   - ErrInvalidPriority  NaN priority.
//
// Thread safety:
//
//   - IndexedMinHeap is not safe for concurrent use. One heap serves one search.
//
// Example:
//
//	h := pq.New(4)
//	_ = h.Insert(2, 7.5)
//	_ = h.Insert(0, 3.0)
//	_ = h.DecreaseKey(2, 1.0)
//	id, _ := h.ExtractMin() // 2
package pq

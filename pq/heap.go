// SPDX-License-Identifier: MIT
// File: heap.go
// Role: IndexedMinHeap construction, mutation and queries.
//
// Invariants (hold after every exported call):
//   - heap order: entries[parent(i)].priority <= entries[i].priority.
//   - slots[entries[p].id] == {Present, p} for every live position p.
//   - every id whose slot is Present points back at an entry holding that id.
package pq

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// IndexedMinHeap is a binary min-heap of node identifiers keyed by priority,
// with O(1) lookup from identifier to heap position.
type IndexedMinHeap struct {
	entries []entry // dense array, logically a complete binary tree
	slots   []slot  // id → state and position
}

// New returns an empty heap accepting identifiers in [0, capacity).
// A negative capacity is treated as zero.
//
// Complexity: O(capacity) time and space.
func New(capacity int) *IndexedMinHeap {
	if capacity < 0 {
		capacity = 0
	}

	return &IndexedMinHeap{
		entries: make([]entry, 0, capacity),
		slots:   make([]slot, capacity),
	}
}

// Len returns the number of live entries.
func (h *IndexedMinHeap) Len() int { return len(h.entries) }

// Cap returns the size of the identifier range.
func (h *IndexedMinHeap) Cap() int { return len(h.slots) }

// IsEmpty reports whether the heap has no live entries.
func (h *IndexedMinHeap) IsEmpty() bool { return len(h.entries) == 0 }

// Contains reports whether id currently has a live entry.
// Out-of-range ids are never contained.
func (h *IndexedMinHeap) Contains(id int) bool {
	return h.inRange(id) && h.slots[id].state == Present
}

// State returns the lifecycle state of id.
func (h *IndexedMinHeap) State(id int) (SlotState, error) {
	if !h.inRange(id) {
		return Absent, fmt.Errorf("%w: %d (capacity %d)", ErrInvalidID, id, len(h.slots))
	}

	return h.slots[id].state, nil
}

// Insert adds a live entry for id with the given priority.
//
// Implementation:
//   - Stage 1: Validate range, priority and slot state.
//   - Stage 2: Append entry at the end of the array and record its slot.
//   - Stage 3: Sift up to restore heap order.
//
// Errors: ErrInvalidID, ErrInvalidPriority, ErrDuplicateInsert, ErrSettled.
//
// Complexity: O(log n).
func (h *IndexedMinHeap) Insert(id int, priority float64) error {
	if !h.inRange(id) {
		return fmt.Errorf("%w: %d (capacity %d)", ErrInvalidID, id, len(h.slots))
	}
	if math.IsNaN(priority) {
		return fmt.Errorf("%w: id %d", ErrInvalidPriority, id)
	}
	switch h.slots[id].state {
	case Present:
		return fmt.Errorf("%w: %d", ErrDuplicateInsert, id)
	case Settled:
		return fmt.Errorf("%w: %d", ErrSettled, id)
	}

	p := len(h.entries)
	h.entries = append(h.entries, entry{id: id, priority: priority})
	h.slots[id] = slot{state: Present, pos: p}
	h.up(p)

	return nil
}

// ExtractMin removes the entry with the smallest priority and returns its id.
// The id becomes Settled. Callers check IsEmpty first; an empty heap yields
// ErrEmptyHeap.
//
// Implementation:
//   - Stage 1: Take the root id.
//   - Stage 2: Move the last entry into the root position and shrink the array.
//   - Stage 3: Sift the new root down.
//
// Complexity: O(log n).
func (h *IndexedMinHeap) ExtractMin() (int, error) {
	n := len(h.entries)
	if n == 0 {
		return -1, ErrEmptyHeap
	}

	top := h.entries[0].id
	last := n - 1
	if last > 0 {
		h.entries[0] = h.entries[last]
		h.slots[h.entries[0].id].pos = 0
	}
	h.entries = h.entries[:last]
	h.slots[top] = slot{state: Settled, pos: -1}
	if last > 0 {
		h.down(0)
	}

	return top, nil
}

// Peek returns the id and priority at the root without removing it.
func (h *IndexedMinHeap) Peek() (int, float64, error) {
	if len(h.entries) == 0 {
		return -1, 0, ErrEmptyHeap
	}

	return h.entries[0].id, h.entries[0].priority, nil
}

// Priority returns the stored priority of a live id.
func (h *IndexedMinHeap) Priority(id int) (float64, error) {
	if !h.inRange(id) {
		return 0, fmt.Errorf("%w: %d (capacity %d)", ErrInvalidID, id, len(h.slots))
	}
	if h.slots[id].state != Present {
		return 0, fmt.Errorf("%w: %d is %s", ErrNotPresent, id, h.slots[id].state)
	}

	return h.entries[h.slots[id].pos].priority, nil
}

// DecreaseKey lowers the priority of a live id and sifts it toward the root.
// Lowering to the current value is a successful no-op. Raising a priority
// would break heap order and is rejected with ErrPriorityIncrease.
//
// Errors: ErrInvalidID, ErrInvalidPriority, ErrNotPresent, ErrPriorityIncrease.
//
// Complexity: O(log n).
func (h *IndexedMinHeap) DecreaseKey(id int, priority float64) error {
	if !h.inRange(id) {
		return fmt.Errorf("%w: %d (capacity %d)", ErrInvalidID, id, len(h.slots))
	}
	if math.IsNaN(priority) {
		return fmt.Errorf("%w: id %d", ErrInvalidPriority, id)
	}
	if h.slots[id].state != Present {
		return fmt.Errorf("%w: %d is %s", ErrNotPresent, id, h.slots[id].state)
	}

	p := h.slots[id].pos
	if priority > h.entries[p].priority {
		return fmt.Errorf("%w: id %d from %g to %g", ErrPriorityIncrease, id, h.entries[p].priority, priority)
	}
	h.entries[p].priority = priority
	h.up(p)

	return nil
}

// String renders the heap level by level, one tree level per line, each entry
// as "priority(id)". An empty heap renders as "queue is empty".
func (h *IndexedMinHeap) String() string {
	if len(h.entries) == 0 {
		return "queue is empty"
	}

	var b strings.Builder
	levelStart, levelSize := 0, 1
	for levelStart < len(h.entries) {
		end := levelStart + levelSize
		if end > len(h.entries) {
			end = len(h.entries)
		}
		for i := levelStart; i < end; i++ {
			if i > levelStart {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(h.entries[i].priority, 'f', 2, 64))
			b.WriteByte('(')
			b.WriteString(strconv.Itoa(h.entries[i].id))
			b.WriteByte(')')
		}
		b.WriteByte('\n')
		levelStart = end
		levelSize *= 2
	}

	return b.String()
}

func (h *IndexedMinHeap) inRange(id int) bool { return id >= 0 && id < len(h.slots) }

// up moves the entry at position i toward the root while its parent is larger.
func (h *IndexedMinHeap) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.entries[parent].priority <= h.entries[i].priority {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves the entry at position i toward the leaves while a child is smaller.
func (h *IndexedMinHeap) down(i int) {
	n := len(h.entries)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		smallest := left
		if right := left + 1; right < n && h.entries[right].priority < h.entries[left].priority {
			smallest = right
		}
		if h.entries[smallest].priority >= h.entries[i].priority {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges two array positions and updates both ids' slots.
func (h *IndexedMinHeap) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.slots[h.entries[i].id].pos = i
	h.slots[h.entries[j].id].pos = j
}

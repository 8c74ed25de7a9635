// SPDX-License-Identifier: MIT

package pq

import "fmt"

// verify checks heap order and slot-table consistency.
// It returns the first violation found, or nil.
//
// Complexity: O(n + capacity).
func (h *IndexedMinHeap) verify() error {
	for i := 1; i < len(h.entries); i++ {
		parent := (i - 1) / 2
		if h.entries[i].priority < h.entries[parent].priority {
			return fmt.Errorf("pq: heap order broken at %d: %g < parent %g",
				i, h.entries[i].priority, h.entries[parent].priority)
		}
	}
	for p, e := range h.entries {
		s := h.slots[e.id]
		if s.state != Present || s.pos != p {
			return fmt.Errorf("pq: entry %d at %d has slot %s/%d", e.id, p, s.state, s.pos)
		}
	}
	live := 0
	for id, s := range h.slots {
		if s.state != Present {
			continue
		}
		live++
		if s.pos < 0 || s.pos >= len(h.entries) || h.entries[s.pos].id != id {
			return fmt.Errorf("pq: slot of %d points at %d", id, s.pos)
		}
	}
	if live != len(h.entries) {
		return fmt.Errorf("pq: %d present slots for %d entries", live, len(h.entries))
	}

	return nil
}

// SPDX-License-Identifier: MIT
// File: links.go
// Role: Directed link mutation and neighborhood queries.
//
// Determinism:
//   - Neighbors() returns ids ascending.
//   - Links() returns links sorted by (From, To).

package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/netrouting/geometry"
)

// AddLink adds the directed link from→to.
//
// Implementation:
//   - Stage 1: Validate both ids are in range (ErrInvalidID).
//   - Stage 2: Reject self-loops (ErrLoopNotAllowed).
//   - Stage 3: Under the write lock, reject duplicates (ErrDuplicateLink) and
//     degree overflow (ErrDegreeLimit), then insert.
//
// The reverse link to→from is not added.
//
// Complexity: O(1) amortized.
func (n *Network) AddLink(from, to int) error {
	if !n.HasNode(from) {
		return n.invalid(from)
	}
	if !n.HasNode(to) {
		return n.invalid(to)
	}
	if from == to {
		return fmt.Errorf("%w: node %d", ErrLoopNotAllowed, from)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	set := n.out[from]
	if _, ok := set[to]; ok {
		return fmt.Errorf("%w: %d→%d", ErrDuplicateLink, from, to)
	}
	if n.degreeLimit >= 0 && len(set) >= n.degreeLimit {
		return fmt.Errorf("%w: node %d already has %d links", ErrDegreeLimit, from, len(set))
	}
	set[to] = struct{}{}

	return nil
}

// HasLink reports whether the directed link from→to exists.
// Out-of-range ids yield false.
func (n *Network) HasLink(from, to int) bool {
	if !n.HasNode(from) || !n.HasNode(to) {
		return false
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.out[from][to]

	return ok
}

// Neighbors returns the outgoing neighbor ids of id, ascending.
// The slice is a fresh copy owned by the caller.
//
// Complexity: O(d log d) where d is the out-degree.
func (n *Network) Neighbors(id int) ([]int, error) {
	if !n.HasNode(id) {
		return nil, n.invalid(id)
	}

	n.mu.RLock()
	ids := make([]int, 0, len(n.out[id]))
	for to := range n.out[id] {
		ids = append(ids, to)
	}
	n.mu.RUnlock()
	sort.Ints(ids)

	return ids, nil
}

// Degree returns the out-degree of id.
func (n *Network) Degree(id int) (int, error) {
	if !n.HasNode(id) {
		return 0, n.invalid(id)
	}
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.out[id]), nil
}

// LinkCount returns the total number of directed links.
func (n *Network) LinkCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	m := 0
	for _, set := range n.out {
		m += len(set)
	}

	return m
}

// Links returns every directed link sorted by (From, To).
//
// Complexity: O(m log m).
func (n *Network) Links() []Link {
	n.mu.RLock()
	links := make([]Link, 0)
	for from, set := range n.out {
		for to := range set {
			links = append(links, Link{From: from, To: to})
		}
	}
	n.mu.RUnlock()

	sort.Slice(links, func(i, j int) bool {
		if links[i].From != links[j].From {
			return links[i].From < links[j].From
		}
		return links[i].To < links[j].To
	})

	return links
}

// LinkLength returns the Euclidean length of from→to.
// The link must exist; use geometry.Distance for arbitrary node pairs.
func (n *Network) LinkLength(from, to int) (float64, error) {
	if !n.HasNode(from) {
		return 0, n.invalid(from)
	}
	if !n.HasNode(to) {
		return 0, n.invalid(to)
	}
	if !n.HasLink(from, to) {
		return 0, fmt.Errorf("%w: %d→%d", ErrLinkNotFound, from, to)
	}

	return geometry.Distance(n.points[from], n.points[to]), nil
}

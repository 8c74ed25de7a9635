// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// fewest-hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node, following
//     links only in their own direction.
//   - Answers "is there any route at all" in O(V + E) without computing link
//     lengths, and yields the fewest-hop route via Result.PathTo.
//   - Honors MaxDepth (d > 0), neighbor filtering and context cancellation.
//
// Determinism
//
//	core.Network returns neighbors sorted ascending, and BFS enqueues them in
//	that order, so the visit sequence is reproducible.
//
// Complexity (V = nodes, E = links)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(network, 0, bfs.WithMaxDepth(4))
//	if err != nil {
//	    // ErrGraphNil, ErrStartNotFound, ErrOptionViolation, ErrNeighbors,
//	    // context errors, or OnVisit errors
//	}
//	hops, err := res.PathTo(7)
package bfs

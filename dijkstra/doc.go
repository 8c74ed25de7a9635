// SPDX-License-Identifier: MIT

// Package dijkstra finds the shortest route between two nodes of a planar,
// sparsely connected, directed network.
//
// Overview:
//
//   - FindPath runs Dijkstra from a source node and stops the moment the
//     destination is extracted from the priority queue.
//   - Link weight is the Euclidean distance between the endpoints'
//     coordinates, computed on demand and never stored.
//   - The frontier is a pq.IndexedMinHeap with decrease-key, so each node has
//     at most one live entry and the heap never exceeds V entries.
//   - The path is rebuilt from a predecessor array and returned in travel
//     order, source and destination included.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is extracted at most once.
//   - Each link relaxation costs at most one Insert or DecreaseKey, O(log V).
//   - Space: O(V) for distances, predecessors, settled flags and the heap.
//
// Options:
//
//	– WithMaxDistance(d):    do not queue nodes farther than d from the source.
//	– WithMaxEdgeLength(l):  links of length ≥ l are impassable.
//	– WithLogger(l):         debug tracing through log/slog.
//
// Results vs. errors:
//
//   - An unreachable destination is a normal outcome: Result.Reachable is
//     false and the error is nil.
//   - ErrNilGraph, ErrInvalidID: bad inputs.
//   - ErrNegativeWeight: a link length is NaN or +Inf, e.g. a custom
//     core.Graph produced a non-finite coordinate.
//   - ErrInternal: the heap rejected an operation (wraps pq errors). The search
//     is abandoned; no partial Result is returned.
//
// Thread safety:
//
//   - Each FindPath call owns its heap and state arrays, so concurrent calls
//     over the same unchanging graph are safe.
//   - The graph must not be modified while any search over it is running.
//
// Example usage:
//
//	res, err := dijkstra.FindPath(network, 0, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Reachable {
//	    fmt.Println("destination is unreachable")
//	    return
//	}
//	fmt.Printf("path %v, length %.2f\n", res.Path, res.Length)
package dijkstra

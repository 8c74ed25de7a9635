// SPDX-License-Identifier: MIT

// Package core defines Network, the graph model consumed by the routing
// engine: a dense node-id range [0, n), a directed set of outgoing links per
// node, and a planar coordinate for every node.
//
// Model:
//
//   - Nodes are identified by ints in [0, NodeCount()).
//   - Links are directed. AddLink(a, b) permits travel a→b only; b→a must be
//     added separately. The asymmetry is preserved on purpose: link length is
//     symmetric in value (Euclidean distance) while traversal is not.
//   - Each node's out-neighbors form a set: no duplicates, no self-loops.
//   - Link length is never stored. LinkLength recomputes it from coordinates.
//
// Configuration (Option):
//
//	– WithDegreeLimit(k) caps the out-degree of every node at k (k ≥ 0).
//	  Random networks in the reference setup use k = 3.
//
// Errors (sentinel):
//
//	ErrInvalidID       – node id outside [0, n).
//	ErrInvalidPoint    – coordinate is NaN or infinite.
//	ErrLoopNotAllowed  – link from a node to itself.
//	ErrDuplicateLink   – link already present.
//	ErrLinkNotFound    – LinkLength on a missing link.
//	ErrDegreeLimit     – out-degree would exceed WithDegreeLimit.
//	ErrSizeMismatch    – adjacency and coordinate slices differ in length.
//
// Concurrency:
//
//   - All methods are safe for concurrent use; a sync.RWMutex guards links.
//   - Coordinates are immutable after construction.
//   - A search reads a Network without locking it for its whole duration, so
//     callers must not add links while searches run.
//
// The Graph interface is the read-only surface the dijkstra package uses;
// *Network satisfies it, and callers with their own storage may implement it.
package core

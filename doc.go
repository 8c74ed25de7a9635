// SPDX-License-Identifier: MIT

// Package netrouting finds shortest routes across sparse, directed networks
// whose nodes are points in the plane.
//
// Link weight is the Euclidean distance between endpoints, computed on demand.
// A route search runs Dijkstra from a source and stops the moment the
// destination is extracted from an indexed min-heap with decrease-key.
//
// Packages:
//
//	pq/        — indexed binary min-heap over int ids (Insert, ExtractMin, DecreaseKey)
//	geometry/  — Point, Euclidean Distance, R-tree nearest-node Index
//	core/      — Network: node range, directed neighbor sets, coordinates
//	dijkstra/  — FindPath: shortest route, predecessor chain, search stats
//	bfs/       — fewest-hop search and plain reachability
//	examples/  — runnable relay-network demo
//
// Quick ASCII example:
//
//	0 ──→ 1
//	│     │
//	↓     ↓
//	2 ──→ 3
//
// represents four nodes with four one-way links; 3 cannot reach 0.
//
//	go get github.com/katalvlaran/netrouting
package netrouting

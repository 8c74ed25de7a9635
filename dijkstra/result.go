// SPDX-License-Identifier: MIT

package dijkstra

import "math"

// Edge is one hop of a reconstructed path.
type Edge struct {
	From   int
	To     int
	Length float64
}

// Stats counts the work done by one search.
type Stats struct {
	Extracted int  // nodes popped from the heap (settled)
	Inserted  int  // heap inserts, source included
	Decreased int  // successful decrease-key calls
	Relaxed   int  // links examined
	EarlyExit bool // search stopped on extracting the destination
}

// Result is the outcome of FindPath.
//
// When Reachable is false, Path is nil and Length is +Inf; Dist and Prev still
// hold what the search learned. Distances of nodes reported by Settled are
// final; other finite entries are upper bounds.
type Result struct {
	Source      int
	Destination int
	Reachable   bool

	// Path lists node ids from Source to Destination inclusive.
	Path []int

	// Length is the total Euclidean length of Path.
	Length float64

	// Dist[v] is the best known distance from Source, +Inf if never reached.
	Dist []float64

	// Prev[v] is the predecessor of v on the best known path, or NoPredecessor.
	Prev []int

	Stats Stats

	edges   []Edge
	settled []bool
}

// Edges returns the hops of Path in travel order. Nil when unreachable,
// empty for the trivial source == destination path.
func (r *Result) Edges() []Edge {
	if !r.Reachable {
		return nil
	}

	return append([]Edge{}, r.edges...)
}

// DistanceTo returns Dist[id], or +Inf for ids outside the graph.
func (r *Result) DistanceTo(id int) float64 {
	if id < 0 || id >= len(r.Dist) {
		return math.Inf(1)
	}

	return r.Dist[id]
}

// Settled reports whether id was extracted, which makes DistanceTo(id) final.
func (r *Result) Settled(id int) bool {
	return id >= 0 && id < len(r.settled) && r.settled[id]
}

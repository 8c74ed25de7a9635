// SPDX-License-Identifier: MIT

// Package dijkstra implements single-source, single-destination shortest paths
// on core.Graph networks whose link weights are Euclidean distances.
//
// Notes on implementation choices:
//
//   - The frontier is a pq.IndexedMinHeap sized to the node count; improved
//     distances use DecreaseKey, so each node has at most one heap entry.
//   - Link lengths are recomputed from coordinates on every relaxation.
//   - The search stops as soon as the destination is extracted: its distance
//     is final at that point because extraction order is non-decreasing.
//   - All state is local to one call. Nothing is shared between searches.
package dijkstra

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/netrouting/core"
	"github.com/katalvlaran/netrouting/geometry"
	"github.com/katalvlaran/netrouting/pq"
)

// FindPath computes the shortest path from source to destination in g.
//
// Returns:
//
//   - *Result with Reachable == true, Path from source to destination
//     inclusive and its total Length.
//   - *Result with Reachable == false and a nil error when the heap drains
//     before the destination is extracted. Unreachable is not an error.
//   - an error if inputs are invalid or the search hits a broken invariant.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and destination must be in [0, g.NodeCount()) (ErrInvalidID).
//
// During the search:
//   - Neighbor ids outside the range abort with ErrInvalidID.
//   - A negative, NaN or infinite link length aborts with ErrNegativeWeight.
//   - A rejected heap operation aborts with ErrInternal wrapping the pq error.
//
// source == destination yields the one-node path [source] with Length 0.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func FindPath(g core.Graph, source, destination int, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %w: source %d (node count %d)", ErrInvalidID, core.ErrInvalidID, source, n)
	}
	if destination < 0 || destination >= n {
		return nil, fmt.Errorf("%w: %w: destination %d (node count %d)", ErrInvalidID, core.ErrInvalidID, destination, n)
	}

	// 3) Per-call state
	r := &runner{
		g:       g,
		options: cfg,
		log:     cfg.Logger.With("source", source, "destination", destination),
		dst:     destination,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		settled: make([]bool, n),
		heap:    pq.New(n),
	}
	r.log.Debug("dijkstra: search start", "nodes", n)

	// 4) Run
	if err := r.init(source); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		r.log.Debug("dijkstra: search aborted", "error", err, "extracted", r.stats.Extracted)
		return nil, err
	}

	// 5) Assemble result
	res := &Result{
		Source:      source,
		Destination: destination,
		Length:      math.Inf(1),
		Dist:        r.dist,
		Prev:        r.prev,
		Stats:       r.stats,
		settled:     r.settled,
	}
	if !math.IsInf(r.dist[destination], 1) {
		path, edges, err := r.reconstruct(source)
		if err != nil {
			return nil, err
		}
		res.Reachable = true
		res.Path = path
		res.Length = r.dist[destination]
		res.edges = edges
	}
	r.log.Debug("dijkstra: search done",
		"reachable", res.Reachable,
		"length", res.Length,
		"extracted", r.stats.Extracted,
		"early_exit", r.stats.EarlyExit)

	return res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       core.Graph
	options Options
	log     *slog.Logger
	dst     int

	dist    []float64 // best known distance from source
	prev    []int     // predecessor on the best known path
	settled []bool    // extracted from the heap
	heap    *pq.IndexedMinHeap
	stats   Stats
}

// init sets every distance to +Inf, every predecessor to NoPredecessor and
// queues the source at distance 0.
func (r *runner) init(source int) error {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prev[v] = NoPredecessor
	}
	r.dist[source] = 0
	if err := r.heap.Insert(source, 0); err != nil {
		return fmt.Errorf("%w: queue source %d: %w", ErrInternal, source, err)
	}
	r.stats.Inserted++

	return nil
}

// process extracts nodes in distance order until the destination is
// extracted or the heap drains.
func (r *runner) process() error {
	for !r.heap.IsEmpty() {
		u, err := r.heap.ExtractMin()
		if err != nil {
			return fmt.Errorf("%w: extract: %w", ErrInternal, err)
		}
		r.settled[u] = true
		r.stats.Extracted++

		if u == r.dst {
			r.stats.EarlyExit = true
			return nil
		}
		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines the outgoing links of the settled node u.
//
// A neighbor at +Inf has never been queued and is inserted; a queued or
// settled neighbor is updated only on a strictly shorter candidate. Settled
// nodes never qualify since link lengths are non-negative.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}
	from, err := r.g.Point(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get point of %d: %w", u, err)
	}

	n := len(r.dist)
	for _, v := range neighbors {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: %w: neighbor %d of %d (node count %d)", ErrInvalidID, core.ErrInvalidID, v, u, n)
		}
		to, err := r.g.Point(v)
		if err != nil {
			return fmt.Errorf("dijkstra: failed to get point of %d: %w", v, err)
		}
		r.stats.Relaxed++

		w := geometry.Distance(from, to)
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 1) {
			return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, v, w)
		}
		if w >= r.options.MaxEdgeLength {
			continue
		}

		candidate := r.dist[u] + w
		if candidate > r.options.MaxDistance {
			continue
		}

		switch {
		case math.IsInf(r.dist[v], 1):
			r.dist[v] = candidate
			r.prev[v] = u
			if err = r.heap.Insert(v, candidate); err != nil {
				return fmt.Errorf("%w: insert %d reached from %d: %w", ErrInternal, v, u, err)
			}
			r.stats.Inserted++
		case candidate < r.dist[v]:
			r.dist[v] = candidate
			r.prev[v] = u
			if err = r.heap.DecreaseKey(v, candidate); err != nil {
				return fmt.Errorf("%w: decrease %d reached from %d: %w", ErrInternal, v, u, err)
			}
			r.stats.Decreased++
		}
	}

	return nil
}

// reconstruct walks prev from the destination back to source and returns the
// path in travel order together with its hops.
func (r *runner) reconstruct(source int) ([]int, []Edge, error) {
	rev := []int{r.dst}
	for v := r.dst; v != source; {
		p := r.prev[v]
		if p == NoPredecessor || len(rev) > len(r.prev) {
			return nil, nil, fmt.Errorf("%w: broken predecessor chain at %d", ErrInternal, v)
		}
		rev = append(rev, p)
		v = p
	}

	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	edges := make([]Edge, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		a, err := r.g.Point(path[i-1])
		if err != nil {
			return nil, nil, fmt.Errorf("dijkstra: failed to get point of %d: %w", path[i-1], err)
		}
		b, err := r.g.Point(path[i])
		if err != nil {
			return nil, nil, fmt.Errorf("dijkstra: failed to get point of %d: %w", path[i], err)
		}
		edges = append(edges, Edge{From: path[i-1], To: path[i], Length: geometry.Distance(a, b)})
	}

	return path, edges, nil
}

// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/netrouting/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph core.Graph
	opts  Options
	ctx   context.Context
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g starting from start, following links
// only in their own direction. Link lengths are ignored.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any OnVisit error.
// On cancellation or an OnVisit error the returned Result is non-nil and
// holds the traversal made so far.
func BFS(g core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NodeCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d (node count %d)", ErrStartNotFound, start, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = Unreached
	}

	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// enqueue marks id reached at depth d and appends it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, w.res.Depth[id]); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}
		if err := w.enqueueNeighbors(id); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(id int) error {
	neighbors, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, id, err)
	}
	next := w.res.Depth[id] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if nbr < 0 || nbr >= len(w.res.Depth) {
			return fmt.Errorf("%w: neighbor %d of %d out of range", ErrNeighbors, nbr, id)
		}
		if !w.opts.FilterNeighbor(id, nbr) {
			continue
		}
		if w.res.Depth[nbr] == Unreached {
			w.enqueue(nbr, next, id)
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// ErrInvalidPoint indicates a coordinate that is NaN or infinite.
var ErrInvalidPoint = errors.New("geometry: point has non-finite coordinate")

// pointTolerance pads each point into a tiny rectangle; rtreego stores rectangles.
const pointTolerance = 1e-9

// nodeEntry wraps one node for R-tree storage.
type nodeEntry struct {
	id   int
	at   Point
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect { return e.bbox }

// Index answers nearest-node and window queries over a fixed set of node
// coordinates. Node ids are positions in the slice given to NewIndex.
// It is read-only after construction and safe for concurrent queries.
type Index struct {
	tree *rtreego.Rtree
	size int
}

// NewIndex bulk-loads an R-tree over points. Every point must be Valid.
func NewIndex(points []Point) (*Index, error) {
	objs := make([]rtreego.Spatial, 0, len(points))
	for id, p := range points {
		if !Valid(p) {
			return nil, fmt.Errorf("%w: node %d at %v", ErrInvalidPoint, id, p)
		}
		objs = append(objs, &nodeEntry{
			id:   id,
			at:   p,
			bbox: rtreego.Point{p[0], p[1]}.ToRect(pointTolerance),
		})
	}

	return &Index{
		tree: rtreego.NewTree(2, 25, 50, objs...), // 2D, min 25, max 50 entries per node
		size: len(points),
	}, nil
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int { return ix.size }

// Nearest returns the id of the node closest to p.
// The boolean is false when the index is empty. Ties resolve arbitrarily.
func (ix *Index) Nearest(p Point) (int, bool) {
	if ix.size == 0 {
		return -1, false
	}
	hit := ix.tree.NearestNeighbor(rtreego.Point{p[0], p[1]})
	if hit == nil {
		return -1, false
	}

	return hit.(*nodeEntry).id, true
}

// Within returns the ids of nodes inside b (borders included), ascending.
func (ix *Index) Within(b orb.Bound) []int {
	if ix.size == 0 {
		return nil
	}
	rect, err := rtreego.NewRect(
		rtreego.Point{b.Min[0] - pointTolerance, b.Min[1] - pointTolerance},
		[]float64{b.Max[0] - b.Min[0] + 2*pointTolerance, b.Max[1] - b.Min[1] + 2*pointTolerance},
	)
	if err != nil {
		// Inverted bound.
		return nil
	}

	hits := ix.tree.SearchIntersect(rect)
	ids := make([]int, 0, len(hits))
	for _, h := range hits {
		e := h.(*nodeEntry)
		if b.Contains(e.at) {
			ids = append(ids, e.id)
		}
	}
	sort.Ints(ids)

	return ids
}

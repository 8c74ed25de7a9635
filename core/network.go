// SPDX-License-Identifier: MIT
// File: network.go
// Role: Network constructors, node queries and cloning.

package core

import (
	"fmt"

	"github.com/katalvlaran/netrouting/geometry"
)

// NewNetwork creates a Network with one node per point and no links.
//
// Implementation:
//   - Stage 1: Validate every coordinate is finite (ErrInvalidPoint).
//   - Stage 2: Copy the points so later changes by the caller are not observed.
//   - Stage 3: Allocate an empty neighbor set per node and apply options.
//
// Complexity: O(n) time and space.
func NewNetwork(points []geometry.Point, opts ...Option) (*Network, error) {
	for id, p := range points {
		if !geometry.Valid(p) {
			return nil, fmt.Errorf("%w: node %d at %v", ErrInvalidPoint, id, p)
		}
	}

	n := &Network{
		points:      append([]geometry.Point(nil), points...),
		out:         make([]map[int]struct{}, len(points)),
		degreeLimit: -1,
	}
	for i := range n.out {
		n.out[i] = make(map[int]struct{})
	}
	for _, opt := range opts {
		opt(n)
	}

	return n, nil
}

// FromAdjacency builds a Network from per-node neighbor lists and coordinates.
// adj[i] lists the outgoing neighbors of node i; len(adj) must equal len(points).
// Every link goes through AddLink, so the same validation applies.
//
// Complexity: O(n + m) where m is the total number of links.
func FromAdjacency(adj [][]int, points []geometry.Point, opts ...Option) (*Network, error) {
	if len(adj) != len(points) {
		return nil, fmt.Errorf("%w: %d adjacency rows, %d points", ErrSizeMismatch, len(adj), len(points))
	}
	n, err := NewNetwork(points, opts...)
	if err != nil {
		return nil, err
	}
	for from, row := range adj {
		for _, to := range row {
			if err = n.AddLink(from, to); err != nil {
				return nil, err
			}
		}
	}

	return n, nil
}

// NodeCount returns the number of nodes.
func (n *Network) NodeCount() int { return len(n.points) }

// HasNode reports whether id is inside [0, NodeCount()).
func (n *Network) HasNode(id int) bool { return id >= 0 && id < len(n.points) }

// Point returns the coordinate of node id.
func (n *Network) Point(id int) (geometry.Point, error) {
	if !n.HasNode(id) {
		return geometry.Point{}, n.invalid(id)
	}

	return n.points[id], nil
}

// Points returns a copy of all coordinates, indexed by node id.
func (n *Network) Points() []geometry.Point {
	return append([]geometry.Point(nil), n.points...)
}

// Index builds a nearest-node spatial index over the network's coordinates.
func (n *Network) Index() (*geometry.Index, error) {
	return geometry.NewIndex(n.points)
}

// Clone returns a deep copy: same coordinates, same links, same options.
//
// Complexity: O(n + m).
func (n *Network) Clone() *Network {
	n.mu.RLock()
	defer n.mu.RUnlock()

	c := &Network{
		points:      append([]geometry.Point(nil), n.points...),
		out:         make([]map[int]struct{}, len(n.out)),
		degreeLimit: n.degreeLimit,
	}
	for id, set := range n.out {
		c.out[id] = make(map[int]struct{}, len(set))
		for to := range set {
			c.out[id][to] = struct{}{}
		}
	}

	return c
}

func (n *Network) invalid(id int) error {
	return fmt.Errorf("%w: %d (node count %d)", ErrInvalidID, id, len(n.points))
}

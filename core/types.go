// SPDX-License-Identifier: MIT
// File: types.go
// Role: Network type, Graph interface, options and sentinel errors.

package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/netrouting/geometry"
)

// Sentinel errors for network construction and queries.
var (
	// ErrInvalidID indicates a node id outside [0, NodeCount()).
	ErrInvalidID = errors.New("core: node id out of range")

	// ErrInvalidPoint indicates a node coordinate that is NaN or infinite.
	ErrInvalidPoint = errors.New("core: node coordinate is not finite")

	// ErrLoopNotAllowed indicates a link from a node to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateLink indicates a link that already exists.
	ErrDuplicateLink = errors.New("core: link already exists")

	// ErrLinkNotFound indicates a query for a link that does not exist.
	ErrLinkNotFound = errors.New("core: link not found")

	// ErrDegreeLimit indicates a link that would exceed the configured out-degree.
	ErrDegreeLimit = errors.New("core: out-degree limit reached")

	// ErrSizeMismatch indicates adjacency and coordinates of different lengths.
	ErrSizeMismatch = errors.New("core: adjacency and coordinates differ in length")

	// ErrBadDegreeLimit indicates a negative WithDegreeLimit argument.
	ErrBadDegreeLimit = errors.New("core: degree limit must be non-negative")
)

// Graph is the read-only view a shortest-path search needs.
//
// Implementations must return ids in [0, NodeCount()) from Neighbors and must
// not change while a search is running.
type Graph interface {
	// NodeCount returns n; valid ids are [0, n).
	NodeCount() int

	// Neighbors returns the outgoing neighbor ids of id.
	Neighbors(id int) ([]int, error)

	// Point returns the coordinate of id.
	Point(id int) (geometry.Point, error)
}

// Link is one directed connection From→To.
type Link struct {
	From int
	To   int
}

// Option configures a Network at construction.
type Option func(*Network)

// WithDegreeLimit caps the number of outgoing links per node.
// Panics with ErrBadDegreeLimit if k < 0.
func WithDegreeLimit(k int) Option {
	if k < 0 {
		panic(ErrBadDegreeLimit.Error())
	}

	return func(n *Network) { n.degreeLimit = k }
}

// Network is a directed graph over node ids [0, n) with planar coordinates.
type Network struct {
	mu sync.RWMutex // guards out

	points      []geometry.Point   // id → coordinate, fixed at construction
	out         []map[int]struct{} // id → set of outgoing neighbor ids
	degreeLimit int                // max out-degree; -1 means unlimited
}

var _ Graph = (*Network)(nil)

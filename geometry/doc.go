// SPDX-License-Identifier: MIT

// Package geometry holds the planar primitives used by routing: node
// coordinates, the Euclidean edge-weight function and a nearest-node index.
//
// Points are orb.Point values (github.com/paulmach/orb). Distance is the
// Euclidean length computed with math.Hypot on every call; nothing is cached.
//
// Index wraps an R-tree (github.com/dhconnelly/rtreego) over node coordinates
// so callers can map an arbitrary location, such as a click position, to the
// closest node id.
package geometry

// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// Point is a location in the plane. X() and Y() read its coordinates.
type Point = orb.Point

// Pt builds a Point from its coordinates.
func Pt(x, y float64) Point { return Point{x, y} }

// Distance returns the Euclidean distance between a and b.
// It is symmetric, never negative, and zero exactly when a == b.
// The coordinate differences go through math.Hypot rather than a plain sum
// of squares, so tiny offsets do not underflow to 0 and large ones do not
// overflow. The result is +Inf only when the true distance exceeds
// math.MaxFloat64.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return math.Hypot(a[0]-b[0], a[1]-b[1])
}

// Valid reports whether both coordinates of p are finite.
func Valid(p Point) bool {
	return !math.IsNaN(p[0]) && !math.IsInf(p[0], 0) &&
		!math.IsNaN(p[1]) && !math.IsInf(p[1], 0)
}

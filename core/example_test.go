// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/netrouting/core"
	"github.com/katalvlaran/netrouting/geometry"
)

// ExampleFromAdjacency builds a small directed network and inspects it.
func ExampleFromAdjacency() {
	pts := []geometry.Point{
		geometry.Pt(0, 0),
		geometry.Pt(3, 0),
		geometry.Pt(3, 4),
	}
	n, err := core.FromAdjacency([][]int{{1, 2}, {2}, {}}, pts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	nbs, _ := n.Neighbors(0)
	l, _ := n.LinkLength(0, 2)
	fmt.Println(nbs, l, n.HasLink(2, 0))
	// Output: [1 2] 5 false
}

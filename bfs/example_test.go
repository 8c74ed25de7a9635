// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/netrouting/bfs"
	"github.com/katalvlaran/netrouting/core"
	"github.com/katalvlaran/netrouting/geometry"
)

// ExampleBFS counts hops on a one-way ring.
func ExampleBFS() {
	pts := []geometry.Point{
		geometry.Pt(0, 0),
		geometry.Pt(1, 0),
		geometry.Pt(1, 1),
		geometry.Pt(0, 1),
	}
	n, _ := core.FromAdjacency([][]int{{1}, {2}, {3}, {0}}, pts)

	res, _ := bfs.BFS(n, 2)
	path, _ := res.PathTo(1)
	fmt.Println(res.Depth, path)
	// Output: [2 3 0 1] [2 3 0 1]
}

// SPDX-License-Identifier: MIT

// Package dijkstra_test provides examples demonstrating FindPath.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/netrouting/core"
	"github.com/katalvlaran/netrouting/dijkstra"
	"github.com/katalvlaran/netrouting/geometry"
)

// ExampleFindPath routes across a small directed network where the direct
// looking branch is the longer one.
func ExampleFindPath() {
	pts := []geometry.Point{
		geometry.Pt(0, 0),
		geometry.Pt(0, 3),
		geometry.Pt(4, -10),
		geometry.Pt(4, 3),
	}
	n, _ := core.FromAdjacency([][]int{{1, 2}, {3}, {3}, {}}, pts)

	res, err := dijkstra.FindPath(n, 0, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("path=%v length=%.2f\n", res.Path, res.Length)
	for _, e := range res.Edges() {
		fmt.Printf("%d→%d %.2f\n", e.From, e.To, e.Length)
	}
	// Output:
	// path=[0 1 3] length=7.00
	// 0→1 3.00
	// 1→3 4.00
}

// ExampleFindPath_unreachable shows that a missing route is a value, not an error.
func ExampleFindPath_unreachable() {
	pts := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(1, 1)}
	n, _ := core.FromAdjacency([][]int{{}, {0}}, pts)

	res, err := dijkstra.FindPath(n, 0, 1)
	fmt.Println(err, res.Reachable)
	// Output: <nil> false
}

// ExampleFindPath_nearest picks endpoints by location, then routes.
func ExampleFindPath_nearest() {
	pts := []geometry.Point{
		geometry.Pt(10, 10),
		geometry.Pt(50, 10),
		geometry.Pt(50, 50),
	}
	n, _ := core.FromAdjacency([][]int{{1}, {2}, {0}}, pts)
	ix, _ := n.Index()

	src, _ := ix.Nearest(geometry.Pt(12, 9))
	dst, _ := ix.Nearest(geometry.Pt(48, 47))
	res, _ := dijkstra.FindPath(n, src, dst)
	fmt.Println(res.Path, res.Length)
	// Output: [0 1 2] 80
}

// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netrouting/core"
	"github.com/katalvlaran/netrouting/geometry"
)

// randomNetwork builds a seeded network where each node links to degree
// distinct random other nodes, with coordinates in an 800x600 box.
func randomNetwork(t testing.TB, seed int64, size, degree int) *core.Network {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))

	adj := make([][]int, size)
	for i := range adj {
		seen := make(map[int]bool, degree)
		for len(adj[i]) < degree {
			to := rng.Intn(size)
			if to != i && !seen[to] {
				seen[to] = true
				adj[i] = append(adj[i], to)
			}
		}
	}
	pts := make([]geometry.Point, size)
	for i := range pts {
		pts[i] = geometry.Pt(rng.Float64()*800, rng.Float64()*600)
	}

	n, err := core.FromAdjacency(adj, pts)
	require.NoError(t, err)

	return n
}

// bellmanFord returns reference distances from source by repeated relaxation.
func bellmanFord(n *core.Network, source int) []float64 {
	dist := make([]float64, n.NodeCount())
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[source] = 0
	links := n.Links()
	for round := 0; round < n.NodeCount(); round++ {
		changed := false
		for _, l := range links {
			if math.IsInf(dist[l.From], 1) {
				continue
			}
			w, _ := n.LinkLength(l.From, l.To)
			if d := dist[l.From] + w; d < dist[l.To] {
				dist[l.To] = d
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

// stubGraph lets tests feed the engine inputs core.Network would reject.
type stubGraph struct {
	adj [][]int
	pts []geometry.Point
}

func (s stubGraph) NodeCount() int { return len(s.pts) }

func (s stubGraph) Neighbors(id int) ([]int, error) { return s.adj[id], nil }

func (s stubGraph) Point(id int) (geometry.Point, error) { return s.pts[id], nil }

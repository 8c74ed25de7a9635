// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/netrouting/dijkstra"
)

func BenchmarkFindPath(b *testing.B) {
	n := randomNetwork(b, 1, 10000, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.FindPath(n, i%n.NodeCount(), (i*7919)%n.NodeCount())
	}
}

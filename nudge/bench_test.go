package nudge_test

import (
	"fmt"
	"testing"

	"github.com/jitprasann/orthoedge/geom"
	"github.com/jitprasann/orthoedge/nudge"
)

// benchSinkRoutes prevents the compiler from eliding the Separate call below.
var benchSinkRoutes []nudge.Route

// BenchmarkSeparate_20ParallelEdges measures Separate on 20 routes that
// all share the same overlapping horizontal run, the worst case for
// cluster-building: every route lands in a single cluster.
//
// Complexity: O(n log n) for the cluster sort, O(n) for the offset pass,
// with n the number of overlapping edges.
func BenchmarkSeparate_20ParallelEdges(b *testing.B) {
	const n = 20
	routes := make([]nudge.Route, n)
	for i := 0; i < n; i++ {
		routes[i] = nudge.Route{
			ID: fmt.Sprintf("R%d", i),
			Points: []geom.Point{
				{X: 100, Y: 100 + float64(i)},
				{X: 100, Y: 200},
				{X: 300, Y: 200},
				{X: 300, Y: 300 + float64(i)},
			},
		}
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchSinkRoutes = nudge.Separate(routes, 5)
	}
}

// BenchmarkSeparate_NoOverlap measures Separate's no-op fast path on
// routes that share no segment, so every route is simply cloned.
//
// Complexity: O(n) for the clone, since no cluster is ever built.
func BenchmarkSeparate_NoOverlap(b *testing.B) {
	const n = 20
	routes := make([]nudge.Route, n)
	for i := 0; i < n; i++ {
		x := float64(i * 100)
		routes[i] = nudge.Route{
			ID: fmt.Sprintf("R%d", i),
			Points: []geom.Point{
				{X: x, Y: 0},
				{X: x, Y: 100},
			},
		}
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchSinkRoutes = nudge.Separate(routes, 5)
	}
}

package router_test

import (
	"testing"

	"github.com/jitprasann/orthoedge/config"
	"github.com/jitprasann/orthoedge/geom"
	"github.com/jitprasann/orthoedge/router"
)

// benchSinkResult prevents the compiler from eliding the Route call below.
var benchSinkResult router.Result

// BenchmarkRoute_StraightDown measures Route on an unobstructed
// vertically-aligned pair of ports, the cheapest path through the grid
// builder and Dijkstra (a two-waypoint shortest path).
//
// Complexity: O(1) waypoints, so the cost is dominated by grid
// construction rather than the search itself.
func BenchmarkRoute_StraightDown(b *testing.B) {
	req := router.Request{
		SourcePort: geom.Point{X: 50, Y: 40},
		TargetPort: geom.Point{X: 50, Y: 200},
		Config:     config.Default(),
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchSinkResult = router.Route(req)
	}
}

// BenchmarkRoute_ObstacleField measures Route threading a path around a
// row of 10 obstacles straddling the direct line between the two ports,
// exercising the full grid-build + bend-penalized Dijkstra search.
//
// Complexity: the grid has O(k) columns/rows for k obstacles, so the
// search visits O(k^2) waypoints in the worst case.
func BenchmarkRoute_ObstacleField(b *testing.B) {
	obstacles := make([]geom.Rect, 0, 10)
	for i := 0; i < 10; i++ {
		obstacles = append(obstacles, geom.Rect{
			ID: "O", X: float64(20 + i*60), Y: 80, Width: 40, Height: 50,
		})
	}
	req := router.Request{
		SourcePort: geom.Point{X: 10, Y: 40},
		TargetPort: geom.Point{X: 590, Y: 200},
		Obstacles:  obstacles,
		Config:     config.Merge(config.Default(), config.WithPadding(20)),
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchSinkResult = router.Route(req)
	}
}

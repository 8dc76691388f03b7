package router

import (
	"sort"

	"github.com/jitprasann/orthoedge/geom"
)

// grid is the sparse visibility graph built for one routing request.
// Waypoints are generated in lexicographic (x, y) order, which is what
// makes Dijkstra's tie-breaking deterministic.
type grid struct {
	obstacles []geom.Inflated
	waypoints []geom.Point
	index     map[geom.Point]int
	// adjacency[i] lists the neighbours reachable directly from
	// waypoint i along a single grid line, with the segment's
	// orientation and Manhattan length.
	adjacency [][]gridEdge
}

type gridEdge struct {
	to          int
	orientation geom.Orientation
	weight      float64
}

// buildGrid constructs the waypoint set and adjacency for a request.
// stubSrc/stubTgt are guaranteed to be among the guide coordinates, but
// may be filtered out by the "not strictly inside any obstacle" rule —
// callers must check srcIdx/tgtIdx for presence before routing.
func buildGrid(obstacles []geom.Rect, padding float64, stubSrc, stubTgt geom.Point) *grid {
	inflated := make([]geom.Inflated, len(obstacles))
	for i, ob := range obstacles {
		inflated[i] = geom.Inflate(ob, padding)
	}

	xs := sortedUnique(append([]float64{stubSrc.X, stubTgt.X}, boundaryXs(inflated)...))
	ys := sortedUnique(append([]float64{stubSrc.Y, stubTgt.Y}, boundaryYs(inflated)...))

	g := &grid{
		obstacles: inflated,
		index:     make(map[geom.Point]int, len(xs)*len(ys)),
	}

	// Waypoints are generated with x as the outer loop so that the
	// resulting slice is in sorted (x, y) order.
	for _, x := range xs {
		for _, y := range ys {
			p := geom.Point{X: x, Y: y}
			if insideAny(p, inflated) {
				continue
			}
			g.index[p] = len(g.waypoints)
			g.waypoints = append(g.waypoints, p)
		}
	}

	g.adjacency = make([][]gridEdge, len(g.waypoints))
	g.connectColumns(xs, ys)
	g.connectRows(xs, ys)

	return g
}

func insideAny(p geom.Point, obstacles []geom.Inflated) bool {
	for _, ob := range obstacles {
		if ob.ContainsStrict(p) {
			return true
		}
	}
	return false
}

func boundaryXs(obstacles []geom.Inflated) []float64 {
	xs := make([]float64, 0, len(obstacles)*2)
	for _, ob := range obstacles {
		xs = append(xs, ob.Left, ob.Right)
	}
	return xs
}

func boundaryYs(obstacles []geom.Inflated) []float64 {
	ys := make([]float64, 0, len(obstacles)*2)
	for _, ob := range obstacles {
		ys = append(ys, ob.Top, ob.Bottom)
	}
	return ys
}

func sortedUnique(vs []float64) []float64 {
	sort.Float64s(vs)
	out := vs[:0:0]
	for i, v := range vs {
		if i == 0 || v != vs[i-1] {
			out = append(out, v)
		}
	}
	return out
}

// connectColumns links, for every guide-x column, consecutive surviving
// waypoints (sorted by y) whose connecting vertical segment clears every
// obstacle.
func (g *grid) connectColumns(xs, ys []float64) {
	for _, x := range xs {
		var col []geom.Point
		for _, y := range ys {
			p := geom.Point{X: x, Y: y}
			if _, ok := g.index[p]; ok {
				col = append(col, p)
			}
		}
		for i := 0; i+1 < len(col); i++ {
			g.link(col[i], col[i+1], geom.Vertical)
		}
	}
}

// connectRows is the transpose of connectColumns, over guide-y rows.
func (g *grid) connectRows(xs, ys []float64) {
	for _, y := range ys {
		var row []geom.Point
		for _, x := range xs {
			p := geom.Point{X: x, Y: y}
			if _, ok := g.index[p]; ok {
				row = append(row, p)
			}
		}
		for i := 0; i+1 < len(row); i++ {
			g.link(row[i], row[i+1], geom.Horizontal)
		}
	}
}

// link adds a bidirectional adjacency edge between a and b if the segment
// between them does not cross any obstacle.
func (g *grid) link(a, b geom.Point, orientation geom.Orientation) {
	seg, ok := geom.NewSegment(a, b)
	if !ok || seg.Orientation != orientation {
		return
	}
	if seg.CrossesAny(g.obstacles) {
		return
	}
	ai, bi := g.index[a], g.index[b]
	w := seg.Length()
	g.adjacency[ai] = append(g.adjacency[ai], gridEdge{to: bi, orientation: orientation, weight: w})
	g.adjacency[bi] = append(g.adjacency[bi], gridEdge{to: ai, orientation: orientation, weight: w})
}

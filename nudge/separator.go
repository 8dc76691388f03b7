package nudge

import (
	"github.com/jitprasann/orthoedge/geom"
)

// Separate spreads overlapping parallel interior segments across the
// batch of routes so no two edges visually coincide. A separation of
// zero or less, or a batch of zero or one routes, is a no-op: routes are
// still returned as independent copies so callers may mutate the result
// freely.
func Separate(routes []Route, separation float64) []Route {
	if separation <= 0 || len(routes) <= 1 {
		return cloneRoutes(routes)
	}

	segs := collectEligible(routes)
	if len(segs) == 0 {
		return cloneRoutes(routes)
	}
	clusters := groupIntoClusters(segs)
	if len(clusters) == 0 {
		return cloneRoutes(routes)
	}

	type key struct {
		route, seg int
	}
	offsets := make(map[key]float64)
	for _, c := range clusters {
		n := len(c.edgeOrder)
		rank := make(map[int]int, n)
		for i, routeIdx := range c.edgeOrder {
			rank[routeIdx] = i
		}
		for _, s := range c.segments {
			i := rank[s.routeIdx]
			offset := (float64(i) - float64(n-1)/2) * separation
			offsets[key{s.routeIdx, s.segIdx}] += offset
		}
	}

	out := cloneRoutes(routes)
	for k, offset := range offsets {
		pts := out[k.route].Points
		seg, ok := geom.NewSegment(routes[k.route].Points[k.seg], routes[k.route].Points[k.seg+1])
		if !ok {
			continue
		}
		applyPerpendicularOffset(pts, k.seg, seg.Orientation, offset)
	}

	for i := range out {
		out[i].Points = reorthogonalize(out[i].Points)
		out[i].Points = geom.Simplify(out[i].Points)
	}
	return out
}

// applyPerpendicularOffset shifts the coordinate perpendicular to a
// segment's own orientation (Y for a horizontal segment, X for a
// vertical one) at both of its endpoints by offset. Because a
// simplified orthogonal polyline always alternates segment orientation
// at every interior vertex, this coordinate is the neighbouring
// segment's length axis, so the shift never desynchronises a shared
// endpoint: it lengthens or shortens the neighbour (including a source
// or target stub) without bending it off-axis.
func applyPerpendicularOffset(points []geom.Point, segIdx int, orientation geom.Orientation, offset float64) {
	for _, idx := range [2]int{segIdx, segIdx + 1} {
		if idx < 0 || idx >= len(points) {
			continue
		}
		if orientation == geom.Horizontal {
			points[idx].Y += offset
		} else {
			points[idx].X += offset
		}
	}
}

// reorthogonalize is a defensive repair pass: if applying offsets ever
// leaves two consecutive points off-axis (which the alternating-segment
// invariant above should already prevent), insert a corner at
// {prev.X, cur.Y} so the polyline stays strictly orthogonal.
func reorthogonalize(points []geom.Point) []geom.Point {
	if len(points) < 2 {
		return points
	}
	out := make([]geom.Point, 0, len(points)+2)
	out = append(out, points[0])
	for i := 1; i < len(points); i++ {
		prev := out[len(out)-1]
		cur := points[i]
		if _, ok := geom.NewSegment(prev, cur); !ok {
			out = append(out, geom.Point{X: prev.X, Y: cur.Y})
		}
		out = append(out, cur)
	}
	return out
}

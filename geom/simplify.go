package geom

// Simplify collapses an orthogonal polyline to its minimal representation:
// exact consecutive duplicates are dropped, and any interior point whose
// neighbours are collinear with it (all three share an x or a y) is
// removed. The result is empty only for empty input; it is a single point
// when the input has no extent (all points coincide, or it only runs out
// and back along one line). Every consecutive pair remains axis-aligned (collinearity only ever
// drops a point, it never introduces a new segment).
//
// Simplify is idempotent: Simplify(Simplify(p)) always equals Simplify(p),
// because the single left-to-right sweep below collapses every collinear
// run to its two endpoints in one pass — a second pass has nothing left
// to collapse.
func Simplify(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}

	out := make([]Point, 0, len(points))
	for _, p := range points {
		// Drop exact duplicates of the last retained point.
		if n := len(out); n > 0 && out[n-1] == p {
			continue
		}
		// If the last two retained points plus the incoming one are
		// collinear, the middle point (out[n-1]) is redundant: replace it
		// with p rather than appending, which keeps the sweep single-pass
		// even across a long collinear run.
		if n := len(out); n >= 2 && collinear(out[n-2], out[n-1], p) {
			if out[n-2] == p {
				// The run doubles back onto out[n-2]: drop the middle
				// point instead of leaving a consecutive duplicate.
				out = out[:n-1]
			} else {
				out[n-1] = p
			}
			continue
		}
		out = append(out, p)
	}
	return out
}

// collinear reports whether a, b, c lie on a common horizontal or
// vertical line (strict equality on one coordinate).
func collinear(a, b, c Point) bool {
	sameX := a.X == b.X && b.X == c.X
	sameY := a.Y == b.Y && b.Y == c.Y
	return sameX || sameY
}

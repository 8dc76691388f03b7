package geom

import "math"

// Orientation classifies a Segment as running along the x or y axis.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// epsilon is the tolerance used to decide whether two coordinates are
// "the same" when classifying a segment's orientation. Host coordinates
// are doubles accumulated through several additions (port offset + stub
// length + nudge offset); a tiny epsilon absorbs that drift without
// reclassifying a genuinely diagonal segment as orthogonal.
const epsilon = 1e-6

// Segment is an axis-aligned, oriented pair of adjacent polyline points.
type Segment struct {
	Start, End  Point
	Orientation Orientation
}

// NewSegment classifies the pair (a, b) as horizontal or vertical. ok is
// false if neither coordinate matches within epsilon, i.e. the pair is not
// axis-aligned and therefore not a legal orthogonal Segment.
func NewSegment(a, b Point) (Segment, bool) {
	switch {
	case math.Abs(a.Y-b.Y) <= epsilon:
		return Segment{Start: a, End: b, Orientation: Horizontal}, true
	case math.Abs(a.X-b.X) <= epsilon:
		return Segment{Start: a, End: b, Orientation: Vertical}, true
	default:
		return Segment{}, false
	}
}

// Length returns the Manhattan length of the segment, which for an
// axis-aligned segment equals its Euclidean length.
func (s Segment) Length() float64 {
	return math.Abs(s.End.X-s.Start.X) + math.Abs(s.End.Y-s.Start.Y)
}

// FixedCoord returns the coordinate shared by both endpoints: y for a
// horizontal segment, x for a vertical one.
func (s Segment) FixedCoord() float64 {
	if s.Orientation == Horizontal {
		return s.Start.Y
	}
	return s.Start.X
}

// Range returns the [min, max] span of the segment's varying coordinate.
func (s Segment) Range() (min, max float64) {
	if s.Orientation == Horizontal {
		return math.Min(s.Start.X, s.End.X), math.Max(s.Start.X, s.End.X)
	}
	return math.Min(s.Start.Y, s.End.Y), math.Max(s.Start.Y, s.End.Y)
}

// CrossesRect reports whether the segment strictly passes through the
// interior of ir. A vertical segment at x crosses ir
// when ir.Left < x < ir.Right (the segment's column strictly inside the
// obstacle's horizontal span) and the segment's y-range genuinely overlaps
// ir's vertical span (touching at a single point, i.e. running along the
// boundary, does not count as crossing). The horizontal case is the
// transpose.
func (s Segment) CrossesRect(ir Inflated) bool {
	switch s.Orientation {
	case Vertical:
		x := s.Start.X
		if !(ir.Left < x && x < ir.Right) {
			return false
		}
		yMin, yMax := s.Range()
		return yMin < ir.Bottom && yMax > ir.Top
	default: // Horizontal
		y := s.Start.Y
		if !(ir.Top < y && y < ir.Bottom) {
			return false
		}
		xMin, xMax := s.Range()
		return xMin < ir.Right && xMax > ir.Left
	}
}

// CrossesAny reports whether the segment crosses any of the given
// obstacles.
func (s Segment) CrossesAny(obstacles []Inflated) bool {
	for _, ob := range obstacles {
		if s.CrossesRect(ob) {
			return true
		}
	}
	return false
}

// SameCoord reports whether a and b are equal within epsilon, the same
// tolerance NewSegment uses to classify orientation.
func SameCoord(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

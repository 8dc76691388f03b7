package geom

// Point is an (x, y) location in host-world coordinates.
type Point struct {
	X, Y float64
}

// Side identifies which edge of a rectangle a port's stub emerges from.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
)

// Rect is an axis-aligned obstacle as supplied by the host: an id and a
// top-left-anchored box. Width/height are taken as given; the router never
// mutates a Rect, it only reads one to compute an Inflated.
type Rect struct {
	ID     string
	X, Y   float64
	Width  float64
	Height float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX and CenterY report the rectangle's midpoint, used by the
// orchestrator's merge-node entry-side rule.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Inflated is the padded form of a Rect: (left, right, top, bottom), used
// for every obstacle-avoidance test in the router. Boundary tests against
// an Inflated are always strict, so that a path may legally graze the
// inflated boundary.
type Inflated struct {
	ID                          string
	Left, Right, Top, Bottom float64
}

// Inflate pads r by padding on every side. A negative or zero padding
// collapses to the original rectangle's bounds: invalid configuration
// values are treated as zero/disabled.
func Inflate(r Rect, padding float64) Inflated {
	if padding < 0 {
		padding = 0
	}
	return Inflated{
		ID:     r.ID,
		Left:   r.Left() - padding,
		Right:  r.Right() + padding,
		Top:    r.Top() - padding,
		Bottom: r.Bottom() + padding,
	}
}

// ContainsStrict reports whether p lies strictly inside ir — i.e. not on
// or outside any of its four edges. Waypoints and path segments may touch
// the boundary; only strict interior intersection disqualifies them.
func (ir Inflated) ContainsStrict(p Point) bool {
	return p.X > ir.Left && p.X < ir.Right && p.Y > ir.Top && p.Y < ir.Bottom
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Outward returns the unit vector a stub travels along when leaving a node
// on this Side: Top stubs go up (0,-1), Bottom down (0,1), Left left
// (-1,0), Right right (1,0). Both the source and the target stub are
// computed with this same vector: the source stub goes outward from the
// source, the target stub goes outward from the target.
func (s Side) Outward() (dx, dy float64) {
	switch s {
	case Top:
		return 0, -1
	case Bottom:
		return 0, 1
	case Left:
		return -1, 0
	default: // Right
		return 1, 0
	}
}

// Axis reports the orientation of the stub a port of this Side emits:
// Top/Bottom emit a vertical stub, Left/Right a horizontal one.
func (s Side) Axis() Orientation {
	if s == Top || s == Bottom {
		return Vertical
	}
	return Horizontal
}

// Stub returns the point a length-`length` stub reaches when leaving port
// p on this Side.
func (s Side) Stub(p Point, length float64) Point {
	dx, dy := s.Outward()
	return p.Add(dx*length, dy*length)
}

package svgpath

import (
	"math"
	"strconv"
	"strings"

	"github.com/jitprasann/orthoedge/geom"
)

// Render converts points into an SVG path string with rounded corners of
// radius up to bendRadius. The first command is always "M", the last is
// always "L"; corners are "L x y Q cx cy x y" when the radius-clamped
// arc is large enough to render (>= 0.5px), otherwise the corner
// degenerates to a plain "L".
func Render(points []geom.Point, bendRadius float64) string {
	if len(points) == 0 {
		return ""
	}
	if bendRadius < 0 {
		bendRadius = 0 // invalid configuration treated as disabled
	}

	var b strings.Builder
	writeCommand(&b, "M", points[0])

	for i := 1; i < len(points)-1; i++ {
		prev, cur, next := points[i-1], points[i], points[i+1]

		if collinear(prev, cur, next) {
			// Simplification should already have removed this point; the
			// renderer is defensive.
			writeCommand(&b, "L", cur)
			continue
		}

		inLen := dist(prev, cur)
		outLen := dist(cur, next)
		r := math.Min(bendRadius, math.Min(inLen/2, outLen/2))
		if r < 0.5 {
			writeCommand(&b, "L", cur)
			continue
		}

		entry := towards(cur, prev, r)
		exit := towards(cur, next, r)
		writeCommand(&b, "L", entry)
		b.WriteString(" Q ")
		b.WriteString(format(cur.X))
		b.WriteByte(' ')
		b.WriteString(format(cur.Y))
		b.WriteByte(' ')
		b.WriteString(format(exit.X))
		b.WriteByte(' ')
		b.WriteString(format(exit.Y))
	}

	writeCommand(&b, "L", points[len(points)-1])
	return b.String()
}

func writeCommand(b *strings.Builder, cmd string, p geom.Point) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(cmd)
	b.WriteByte(' ')
	b.WriteString(format(p.X))
	b.WriteByte(' ')
	b.WriteString(format(p.Y))
}

// towards returns the point on the segment from-to at distance dist from
// from, assuming the two points are axis-aligned.
func towards(from, to geom.Point, dist float64) geom.Point {
	if from.X == to.X {
		if to.Y < from.Y {
			dist = -dist
		}
		return geom.Point{X: from.X, Y: from.Y + dist}
	}
	if to.X < from.X {
		dist = -dist
	}
	return geom.Point{X: from.X + dist, Y: from.Y}
}

func dist(a, b geom.Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

func collinear(a, b, c geom.Point) bool {
	return (a.X == b.X && b.X == c.X) || (a.Y == b.Y && b.Y == c.Y)
}

// format renders a coordinate as a decimal string with no imposed
// rounding: coordinates are decimal doubles, passed through as-is.
func format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

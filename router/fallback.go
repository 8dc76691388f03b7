package router

import "github.com/jitprasann/orthoedge/geom"

// sShape builds the fixed fallback polyline used when the stub endpoints
// are unusable or Dijkstra cannot reach the target. The midpoint
// strategy depends on the two stubs' axes:
//
//   - both vertical (top/bottom stubs): a single shared mid-y row.
//   - both horizontal (left/right stubs): a single shared mid-x column.
//   - mixed: one corner point suffices, taking whichever of stubSrc's or
//     stubTgt's coordinates keeps both resulting segments orthogonal.
func sShape(sourcePort, stubSrc, stubTgt, targetPort geom.Point, sourceDir, targetDir geom.Side) []geom.Point {
	srcAxis, tgtAxis := sourceDir.Axis(), targetDir.Axis()

	switch {
	case srcAxis == geom.Vertical && tgtAxis == geom.Vertical:
		midY := (stubSrc.Y + stubTgt.Y) / 2
		return []geom.Point{
			sourcePort, stubSrc,
			{X: stubSrc.X, Y: midY}, {X: stubTgt.X, Y: midY},
			stubTgt, targetPort,
		}
	case srcAxis == geom.Horizontal && tgtAxis == geom.Horizontal:
		midX := (stubSrc.X + stubTgt.X) / 2
		return []geom.Point{
			sourcePort, stubSrc,
			{X: midX, Y: stubSrc.Y}, {X: midX, Y: stubTgt.Y},
			stubTgt, targetPort,
		}
	case srcAxis == geom.Vertical: // tgtAxis == Horizontal
		corner := geom.Point{X: stubTgt.X, Y: stubSrc.Y}
		return []geom.Point{sourcePort, stubSrc, corner, stubTgt, targetPort}
	default: // srcAxis == Horizontal, tgtAxis == Vertical
		corner := geom.Point{X: stubSrc.X, Y: stubTgt.Y}
		return []geom.Point{sourcePort, stubSrc, corner, stubTgt, targetPort}
	}
}

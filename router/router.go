package router

import "github.com/jitprasann/orthoedge/geom"

// Route computes the polyline for one (source, target, obstacles, config)
// tuple. It never fails: if the stubs cannot be placed or Dijkstra
// cannot reach the target, it returns the S-shape fallback instead.
func Route(req Request) Result {
	cfg := req.Config
	stubSrc := cfg.SourceDir.Stub(req.SourcePort, cfg.SourceStubLength)
	stubTgt := cfg.TargetDir.Stub(req.TargetPort, cfg.TargetStubLength)

	g := buildGrid(req.Obstacles, cfg.Padding, stubSrc, stubTgt)
	srcIdx, srcOK := g.index[stubSrc]
	tgtIdx, tgtOK := g.index[stubTgt]

	if !srcOK || !tgtOK {
		return fallbackResult(req, stubSrc, stubTgt)
	}

	initialAxis := cfg.SourceDir.Axis()
	path := shortestPath(g, srcIdx, tgtIdx, initialAxis, req.SourcePort.Y, cfg)
	if path == nil {
		return fallbackResult(req, stubSrc, stubTgt)
	}

	points := make([]geom.Point, 0, len(path)+2)
	points = append(points, req.SourcePort)
	for _, idx := range path {
		points = append(points, g.waypoints[idx])
	}
	points = append(points, req.TargetPort)

	return Result{Points: geom.Simplify(points), Fallback: false}
}

func fallbackResult(req Request, stubSrc, stubTgt geom.Point) Result {
	points := sShape(req.SourcePort, stubSrc, stubTgt, req.TargetPort, req.Config.SourceDir, req.Config.TargetDir)
	return Result{Points: geom.Simplify(points), Fallback: true}
}

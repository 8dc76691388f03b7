package router

import (
	"github.com/jitprasann/orthoedge/config"
	"github.com/jitprasann/orthoedge/geom"
)

// Request is the full input to a single-edge route.
type Request struct {
	SourcePort geom.Point
	TargetPort geom.Point
	// Obstacles excludes the endpoint nodes themselves; the caller (the
	// orchestrator) is responsible for filtering those out before
	// calling Route.
	Obstacles []geom.Rect
	Config    config.Config
}

// Result is the outcome of routing one edge.
type Result struct {
	// Points is the full polyline: [sourcePort, sourceStubEnd, ...,
	// targetStubStart, targetPort], already simplified.
	Points []geom.Point
	// Fallback reports whether the S-shape fallback was used instead of
	// a Dijkstra-found path. This is exposed for tests and diagnostics
	// only; callers must not key routing decisions on it.
	Fallback bool
}

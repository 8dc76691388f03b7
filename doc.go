// Package orthoedge is the routing orchestrator: given a host's node
// records and edge specs, it resolves every port, builds the
// obstacle list, drives the single-edge router package per edge, runs
// the overlap separator once over the resulting batch, renders each
// final polyline to an SVG path, and exposes the lot keyed by edge id.
//
// Package layout:
//
//	geom/       — rectangle inflation, segment tests, polyline simplification
//	pq/         — binary min-heap priority queue
//	config/     — the shared option surface threaded through every layer
//	router/     — single-edge sparse visibility graph + Dijkstra + fallback
//	svgpath/    — polyline -> SVG path string with rounded corners
//	nudge/      — batch overlap separator
//	layout/     — layered DAG layout (ranking + sibling ordering)
//	visibility/ — collapse/bypass filtering ahead of layout
//
// This root package is the host-facing entry point: Route ties the
// routing packages (router, nudge, svgpath) into one call per batch, and
// Pipeline runs visibility and layout ahead of Route.
package orthoedge

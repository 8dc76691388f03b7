// Package geom provides the axis-aligned geometry primitives shared by the
// routing, rendering and layout packages: points, rectangles, obstacle
// inflation, segment orientation/crossing tests and orthogonal polyline
// simplification.
//
// Every type here is a plain value (no pointers, no shared mutable state),
// so callers can copy freely; this is what lets the router, nudge and
// svgpath packages treat geometry as pure data (see the module's §5
// concurrency model: the core is synchronous and its inputs/outputs are
// never mutated in place).
package geom

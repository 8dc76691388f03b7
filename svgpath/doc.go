// Package svgpath renders an orthogonal polyline into an SVG path string
// with radius-clamped rounded corners. Every interior vertex
// whose neighbours are not collinear gets a quadratic Bézier corner whose
// radius is the largest value that does not overrun half of either
// adjacent segment; collinear interior points (which Simplify should
// already have removed) pass straight through as a defensive fallback.
package svgpath

// Package router implements the single-edge router: given one source
// port, one target port, a list of obstacle rectangles and a config, it
// produces an orthogonal polyline connecting the two ports that avoids
// every obstacle by the configured padding.
//
// The algorithm builds a sparse visibility grid from the obstacles'
// boundary coordinates (not a dense pixel grid — this is what keeps
// Dijkstra cheap), runs a bend-penalized Dijkstra over that grid, and
// falls back to a fixed S-shape if the target is provably unreachable or
// either stub lands inside an obstacle. The router never returns an
// error: every input, however degenerate, produces a best-effort route.
//
// Grounded on the modified-Dijkstra routing stage of d2gridrouter
// (dijkstra.go, router.go) and on lvlath/dijkstra's runner/heap
// structuring idiom.
package router

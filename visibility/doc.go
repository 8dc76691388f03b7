// Package visibility filters a diagram down to its visible subgraph and
// synthesises bypass edges across collapsed branch groups. A branch
// group is a branch node B together with every node strictly
// between B and a merge node M reachable from all of B's children; group
// discovery is grounded on the teacher's bfs.BFS traversal (bfs/bfs.go),
// run once per child of B and intersected to find the shared merge,
// mirroring how the original walker accumulates per-vertex state over a
// single breadth-first frontier.
package visibility

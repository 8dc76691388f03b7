// Package layout computes a layered top-to-bottom position for every node
// in an acyclic diagram. Ranking is longest-path-from-source via Kahn's
// topological BFS, grounded on the teacher's bfs.BFS
// level-by-level traversal (bfs/bfs.go) generalised from unweighted
// shortest path to longest path by relaxing on every visit instead of the
// first one, and on dfs.TopologicalSort (dfs/topological.go) for the
// acyclic-processing-order guarantee. Sibling ordering preserves each
// edge's source port index so a branch node's children always appear
// left-to-right in output-handle order, independent of how deep their
// subtrees grow.
package layout

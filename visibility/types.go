package visibility

// Node is one diagram node's visibility-relevant flags.
type Node struct {
	ID        string
	IsMerge   bool
	Collapsed bool
}

// Edge is a directed connection between two node ids, identified by its
// own id so that two distinct edges sharing a (Source, Target) pair
// (e.g. from different handles of the same two nodes) stay distinct
// through filtering.
type Edge struct {
	ID     string
	Source string
	Target string
}

// Input is the full diagram handed to Filter.
type Input struct {
	Nodes []Node
	Edges []Edge
}

// Output is the visible subgraph plus any synthesised bypass edges,
// already merged into Edges.
type Output struct {
	Nodes []Node
	Edges []Edge
}

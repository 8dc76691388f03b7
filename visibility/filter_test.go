package visibility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jitprasann/orthoedge/visibility"
)

func containsEdge(edges []visibility.Edge, source, target string) bool {
	for _, e := range edges {
		if e.Source == source && e.Target == target {
			return true
		}
	}
	return false
}

func containsNode(nodes []visibility.Node, id string) bool {
	for _, n := range nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}

// TestFilter_FullGroupCollapseWithBypass covers a fully collapsed branch
// group: the branch's children and merge are hidden, and a bypass edge
// from the branch to each of the merge's successors is synthesised.
func TestFilter_FullGroupCollapseWithBypass(t *testing.T) {
	in := visibility.Input{
		Nodes: []visibility.Node{
			{ID: "P"},
			{ID: "B", Collapsed: true},
			{ID: "L"},
			{ID: "R"},
			{ID: "M", IsMerge: true},
			{ID: "E"},
			{ID: "F"},
		},
		Edges: []visibility.Edge{
			{Source: "P", Target: "B"},
			{Source: "B", Target: "L"},
			{Source: "B", Target: "R"},
			{Source: "L", Target: "M"},
			{Source: "R", Target: "M"},
			{Source: "M", Target: "E"},
			{Source: "E", Target: "F"},
		},
	}

	out := visibility.Filter(in)

	assert.False(t, containsNode(out.Nodes, "L"))
	assert.False(t, containsNode(out.Nodes, "R"))
	assert.False(t, containsNode(out.Nodes, "M"))
	assert.True(t, containsNode(out.Nodes, "B"))
	assert.True(t, containsNode(out.Nodes, "E"))
	assert.True(t, containsNode(out.Nodes, "P"))
	assert.True(t, containsNode(out.Nodes, "F"))

	assert.True(t, containsEdge(out.Edges, "P", "B"))
	assert.True(t, containsEdge(out.Edges, "B", "E")) // synthesised bypass
	assert.True(t, containsEdge(out.Edges, "E", "F"))
	assert.False(t, containsEdge(out.Edges, "B", "L"))
	assert.False(t, containsEdge(out.Edges, "L", "M"))
}

func TestFilter_PerBranchCollapse_MergeStaysVisible(t *testing.T) {
	in := visibility.Input{
		Nodes: []visibility.Node{
			{ID: "B"},
			{ID: "L", Collapsed: true},
			{ID: "R"},
			{ID: "M", IsMerge: true},
		},
		Edges: []visibility.Edge{
			{Source: "B", Target: "L"},
			{Source: "B", Target: "R"},
			{Source: "L", Target: "M"},
			{Source: "R", Target: "M"},
		},
	}

	out := visibility.Filter(in)

	assert.False(t, containsNode(out.Nodes, "L"))
	assert.True(t, containsNode(out.Nodes, "R"))
	assert.True(t, containsNode(out.Nodes, "M"))
	assert.True(t, containsEdge(out.Edges, "R", "M"))
	assert.False(t, containsEdge(out.Edges, "L", "M"))
	assert.False(t, containsEdge(out.Edges, "B", "L"))
}

func TestFilter_NoCollapsedFlags_IsIdentity(t *testing.T) {
	in := visibility.Input{
		Nodes: []visibility.Node{
			{ID: "B"}, {ID: "L"}, {ID: "R"}, {ID: "M", IsMerge: true},
		},
		Edges: []visibility.Edge{
			{Source: "B", Target: "L"},
			{Source: "B", Target: "R"},
			{Source: "L", Target: "M"},
			{Source: "R", Target: "M"},
		},
	}

	out := visibility.Filter(in)
	assert.Equal(t, len(in.Nodes), len(out.Nodes))
	assert.Equal(t, len(in.Edges), len(out.Edges))
	for _, e := range in.Edges {
		assert.True(t, containsEdge(out.Edges, e.Source, e.Target))
	}
}

func TestFilter_NoMergeReachable_NoGroup(t *testing.T) {
	in := visibility.Input{
		Nodes: []visibility.Node{
			{ID: "B", Collapsed: true}, {ID: "L"}, {ID: "R"},
		},
		Edges: []visibility.Edge{
			{Source: "B", Target: "L"},
			{Source: "B", Target: "R"},
		},
	}
	out := visibility.Filter(in)
	// No reachable isMerge node means no branch group at all: collapsing
	// B has no effect since there is nothing to collapse into.
	assert.True(t, containsNode(out.Nodes, "L"))
	assert.True(t, containsNode(out.Nodes, "R"))
	assert.True(t, containsNode(out.Nodes, "B"))
}

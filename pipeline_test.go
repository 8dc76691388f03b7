package orthoedge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orthoedge "github.com/jitprasann/orthoedge"
)

func TestPipeline_LaysOutThenRoutes(t *testing.T) {
	nodes := []orthoedge.NodeInternals{
		{ID: "B", Width: 100, Height: 40},
		{ID: "X", Width: 100, Height: 40},
		{ID: "Y", Width: 100, Height: 40},
		{ID: "Z", Width: 100, Height: 40},
	}
	edges := []orthoedge.EdgeSpec{
		{ID: "e0", SourceNodeID: "B", SourceHandleID: "output-0", TargetNodeID: "X", TargetHandleID: "input-0"},
		{ID: "e1", SourceNodeID: "B", SourceHandleID: "output-1", TargetNodeID: "Y", TargetHandleID: "input-0"},
		{ID: "e2", SourceNodeID: "B", SourceHandleID: "output-2", TargetNodeID: "Z", TargetHandleID: "input-0"},
	}

	res, err := orthoedge.Pipeline(nodes, edges)
	require.NoError(t, err)
	for _, id := range []string{"e0", "e1", "e2"} {
		require.Contains(t, res, id)
		assert.NotEmpty(t, res[id].Points)
		assert.NotEmpty(t, res[id].SVGPath)
	}
}

func TestPipeline_CollapsedBranchProducesBypass(t *testing.T) {
	nodes := []orthoedge.NodeInternals{
		{ID: "P", Width: 100, Height: 40},
		{ID: "B", Width: 100, Height: 40, Collapsed: true},
		{ID: "L", Width: 100, Height: 40},
		{ID: "R", Width: 100, Height: 40},
		{ID: "M", Width: 100, Height: 40, IsMerge: true},
		{ID: "E", Width: 100, Height: 40},
	}
	edges := []orthoedge.EdgeSpec{
		{ID: "p-b", SourceNodeID: "P", SourceHandleID: "output-0", TargetNodeID: "B", TargetHandleID: "input-0"},
		{ID: "b-l", SourceNodeID: "B", SourceHandleID: "output-0", TargetNodeID: "L", TargetHandleID: "input-0"},
		{ID: "b-r", SourceNodeID: "B", SourceHandleID: "output-1", TargetNodeID: "R", TargetHandleID: "input-0"},
		{ID: "l-m", SourceNodeID: "L", SourceHandleID: "output-0", TargetNodeID: "M", TargetHandleID: "input-0"},
		{ID: "r-m", SourceNodeID: "R", SourceHandleID: "output-0", TargetNodeID: "M", TargetHandleID: "input-0"},
		{ID: "m-e", SourceNodeID: "M", SourceHandleID: "output-0", TargetNodeID: "E", TargetHandleID: "input-0"},
	}

	res, err := orthoedge.Pipeline(nodes, edges)
	require.NoError(t, err)

	assert.NotContains(t, res, "b-l")
	assert.NotContains(t, res, "l-m")
	assert.NotContains(t, res, "m-e")
	assert.Contains(t, res, "p-b")
	assert.Contains(t, res, "bypass:B->E")
}

package orthoedge

import (
	"github.com/jitprasann/orthoedge/config"
	"github.com/jitprasann/orthoedge/layout"
	"github.com/jitprasann/orthoedge/visibility"
)

// Pipeline runs the full host-to-routes data flow: the visibility filter
// hides collapsed branch groups and synthesises
// bypass edges, the layout engine assigns every surviving node's
// position, and the routing orchestrator then routes and separates the
// visible edges. Host-measured positions (NodeInternals.X/Y) are
// overwritten by the layout step; callers that already have a fixed
// layout and only want routing should call Route directly instead.
func Pipeline(nodes []NodeInternals, edges []EdgeSpec, globalOpts ...RoutingOption) (RoutingResult, error) {
	byID := make(map[string]NodeInternals, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	visNodes := make([]visibility.Node, len(nodes))
	for i, n := range nodes {
		visNodes[i] = visibility.Node{ID: n.ID, IsMerge: n.IsMerge, Collapsed: n.Collapsed}
	}
	visEdges := make([]visibility.Edge, len(edges))
	for i, e := range edges {
		visEdges[i] = visibility.Edge{ID: e.ID, Source: e.SourceNodeID, Target: e.TargetNodeID}
	}
	visOut := visibility.Filter(visibility.Input{Nodes: visNodes, Edges: visEdges})

	cfg := config.Merge(config.Default(), globalOpts...)

	layoutNodes := make([]layout.Node, 0, len(visOut.Nodes))
	for _, n := range visOut.Nodes {
		host := byID[n.ID]
		w, h := host.Width, host.Height
		if w == 0 {
			w = cfg.NodeWidth
		}
		if h == 0 {
			h = cfg.NodeHeight
		}
		layoutNodes = append(layoutNodes, layout.Node{ID: n.ID, Width: w, Height: h})
	}

	originalEdges := make(map[string]EdgeSpec, len(edges))
	for _, e := range edges {
		originalEdges[e.ID] = e
	}

	layoutEdges := make([]layout.Edge, len(visOut.Edges))
	outEdges := make([]EdgeSpec, len(visOut.Edges))
	for i, e := range visOut.Edges {
		portIdx := 0
		labeled := false
		if orig, ok := originalEdges[e.ID]; ok {
			if idx, parsed := handleIndex(orig.SourceHandleID); parsed {
				portIdx = idx
			}
			labeled = orig.Label != ""
			outEdges[i] = orig
		} else {
			// Synthesised bypass edge: no host-supplied handles, so the
			// orchestrator falls back to the default port-layout formula.
			outEdges[i] = EdgeSpec{ID: e.ID, SourceNodeID: e.Source, SourceHandleID: "output-0", TargetNodeID: e.Target, TargetHandleID: "input-0"}
		}
		layoutEdges[i] = layout.Edge{Source: e.Source, Target: e.Target, SourcePort: portIdx, Labeled: labeled}
	}

	layoutResult, err := layout.Compute(layoutNodes, layoutEdges, cfg)
	if err != nil {
		return nil, err
	}

	placedNodes := make([]NodeInternals, 0, len(visOut.Nodes))
	for _, n := range visOut.Nodes {
		host := byID[n.ID]
		pos := layoutResult.Positions[n.ID]
		host.X, host.Y = pos.X, pos.Y
		if host.Width == 0 {
			host.Width = cfg.NodeWidth
		}
		if host.Height == 0 {
			host.Height = cfg.NodeHeight
		}
		placedNodes = append(placedNodes, host)
	}

	return Route(placedNodes, outEdges, globalOpts...), nil
}

package orthoedge

import (
	"sort"

	"github.com/jitprasann/orthoedge/config"
	"github.com/jitprasann/orthoedge/geom"
	"github.com/jitprasann/orthoedge/nudge"
	"github.com/jitprasann/orthoedge/router"
	"github.com/jitprasann/orthoedge/svgpath"
)

// Route drives the full batch routing pipeline: resolve every port,
// build each edge's obstacle list, run the single-edge router, separate
// overlaps across the whole batch, then render SVG paths. Results are
// memoised by a structural hash of the inputs; repeat calls with
// unchanged nodes/edges/options return the cached batch without
// re-routing.
func Route(nodes []NodeInternals, edges []EdgeSpec, globalOpts ...RoutingOption) RoutingResult {
	key := memoKey(nodes, edges, globalOpts)
	if cached, ok := cacheGet(key); ok {
		return cached
	}

	result := route(nodes, edges, globalOpts)
	cachePut(key, result)
	return result
}

func route(nodes []NodeInternals, edges []EdgeSpec, globalOpts []RoutingOption) RoutingResult {
	globalCfg := config.Merge(config.Default(), globalOpts...)

	byID := make(map[string]NodeInternals, len(nodes))
	allRects := make([]geom.Rect, 0, len(nodes))
	for _, n := range nodes {
		if n.Width == 0 {
			n.Width = globalCfg.NodeWidth
		}
		if n.Height == 0 {
			n.Height = globalCfg.NodeHeight
		}
		byID[n.ID] = n
		allRects = append(allRects, n.rect())
	}
	sort.Slice(allRects, func(i, j int) bool { return allRects[i].ID < allRects[j].ID })

	// Resolve each edge's intended side before grouping handles, so the
	// default port-layout formula spreads offsets per (node, side)
	// rather than across a node's whole fan-out/fan-in.
	sourceSide := make(map[string]geom.Side, len(edges))
	targetSide := make(map[string]geom.Side, len(edges))
	for _, e := range edges {
		source, sOK := byID[e.SourceNodeID]
		target, tOK := byID[e.TargetNodeID]
		if !sOK || !tOK {
			continue
		}
		cfg := config.Merge(globalCfg, e.RoutingConfig...)
		sourceSide[e.ID] = sideFor(e.SourceHandleID, source.SourceHandles, cfg.SourceDir)
		if target.IsMerge {
			targetSide[e.ID] = resolveMergeEntrySide(source, target)
		} else {
			targetSide[e.ID] = sideFor(e.TargetHandleID, target.TargetHandles, cfg.TargetDir)
		}
	}
	hg := buildHandleGroups(edges, sourceSide, targetSide)

	type routed struct {
		id     string
		points []geom.Point
	}
	var batch []routed

	for _, e := range edges {
		source, sOK := byID[e.SourceNodeID]
		target, tOK := byID[e.TargetNodeID]
		if !sOK || !tOK {
			continue // dangling reference; host data is out of sync
		}

		cfg := config.Merge(globalCfg, e.RoutingConfig...)
		if e.Label == "" {
			cfg.EarlyBendBias = 0
		}

		srcIdx, srcCount := hg.sourceIndex[e.ID], hg.sourceCount[e.ID]
		sourcePoint, resolvedSourceSide := resolvePort(source, e.SourceHandleID, source.SourceHandles, cfg.SourceDir, srcIdx, srcCount)
		cfg.SourceDir = resolvedSourceSide

		var targetPoint geom.Point
		var resolvedTargetSide geom.Side
		if target.IsMerge {
			resolvedTargetSide = resolveMergeEntrySide(source, target)
			targetPoint, _ = resolvePort(target, e.TargetHandleID, target.TargetHandles, resolvedTargetSide, 0, 1)
		} else {
			tgtIdx, tgtCount := hg.targetIndex[e.ID], hg.targetCount[e.ID]
			targetPoint, resolvedTargetSide = resolvePort(target, e.TargetHandleID, target.TargetHandles, cfg.TargetDir, tgtIdx, tgtCount)
		}
		cfg.TargetDir = resolvedTargetSide

		obstacles := make([]geom.Rect, 0, len(allRects))
		for _, r := range allRects {
			if r.ID == e.SourceNodeID || r.ID == e.TargetNodeID {
				continue
			}
			obstacles = append(obstacles, r)
		}

		res := router.Route(router.Request{
			SourcePort: sourcePoint,
			TargetPort: targetPoint,
			Obstacles:  obstacles,
			Config:     cfg,
		})
		batch = append(batch, routed{id: e.ID, points: res.Points})
	}

	routes := make([]nudge.Route, len(batch))
	for i, r := range batch {
		routes[i] = nudge.Route{ID: r.id, Points: r.points}
	}
	separated := nudge.Separate(routes, globalCfg.EdgeSeparation)

	out := make(RoutingResult, len(separated))
	for _, r := range separated {
		out[r.ID] = EdgeResult{
			Points:  r.Points,
			SVGPath: svgpath.Render(r.Points, globalCfg.BendRadius),
		}
	}
	return out
}

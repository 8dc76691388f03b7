package orthoedge

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jitprasann/orthoedge/geom"
)

// handleSpacing is the fixed inter-port spacing used by the default
// port-layout formula.
const handleSpacing = 8.0

// portOffset implements the default port-layout formula: the i-th of N
// handles on one side sits at perpendicular offset (i - (N-1)/2) *
// handleSpacing from the side's midpoint. Identical at every layer that
// computes a synthesised port position.
func portOffset(i, n int) float64 {
	return (float64(i) - float64(n-1)/2) * handleSpacing
}

// handleIndex parses the zero-based index out of a "output-<i>" or
// "input-<i>" handle id. ok is false for a malformed id; Pipeline then
// uses port index 0, and buildHandleGroups orders such an id by its
// string within its (node, side) group.
func handleIndex(id string) (int, bool) {
	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 {
		return 0, false
	}
	i, err := strconv.Atoi(parts[1])
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

// resolvePort returns the absolute (x, y) position and stub side for one
// edge endpoint. If the node declares measured handles, the named one's
// centre and side are used as-is. Otherwise the position is synthesised:
// side defaults to defaultSide, and index/count place it among its
// (node, side) siblings.
func resolvePort(node NodeInternals, handleID string, measured []HandleBounds, defaultSide geom.Side, index, count int) (geom.Point, geom.Side) {
	for _, h := range measured {
		if h.ID == handleID {
			return geom.Point{X: node.X + h.X + h.Width/2, Y: node.Y + h.Y + h.Height/2}, h.Side
		}
	}

	offset := portOffset(index, count)
	switch defaultSide {
	case geom.Top:
		return geom.Point{X: node.CenterX() + offset, Y: node.Y}, geom.Top
	case geom.Bottom:
		return geom.Point{X: node.CenterX() + offset, Y: node.Y + node.Height}, geom.Bottom
	case geom.Left:
		return geom.Point{X: node.X, Y: node.CenterY() + offset}, geom.Left
	default: // Right
		return geom.Point{X: node.X + node.Width, Y: node.CenterY() + offset}, geom.Right
	}
}

// sideFor reports the side a handle resolves to: the measured handle's
// own side if handleID is named in measured, otherwise defaultSide. Used
// ahead of resolvePort so handles can be grouped by (node, side) before
// their index/count within that group is known.
func sideFor(handleID string, measured []HandleBounds, defaultSide geom.Side) geom.Side {
	for _, h := range measured {
		if h.ID == handleID {
			return h.Side
		}
	}
	return defaultSide
}

// handleGroups scans every edge to find, per (node, side), the full set
// of distinct source handle ids (and separately target handle ids) so an
// unmeasured node's synthesised ports spread across only the siblings
// that actually land on the same side, not its whole fan-out/fan-in.
type handleGroups struct {
	sourceIndex map[string]int // edgeID -> 0-based position within its (source node, side) handle set
	sourceCount map[string]int // edgeID -> N for that (source node, side) group
	targetIndex map[string]int
	targetCount map[string]int
}

type nodeSide struct {
	node string
	side geom.Side
}

// buildHandleGroups groups handle ids by (node, side) using each edge's
// already-resolved source/target side (keyed by edge id), so a node with
// children split across two sides (e.g. some routed Bottom, others Right
// via per-edge RoutingConfig) gets independent index/count per side.
func buildHandleGroups(edges []EdgeSpec, sourceSide, targetSide map[string]geom.Side) handleGroups {
	hg := handleGroups{
		sourceIndex: make(map[string]int),
		sourceCount: make(map[string]int),
		targetIndex: make(map[string]int),
		targetCount: make(map[string]int),
	}

	type key struct {
		nodeSide
		handle string
	}
	sourceHandles := make(map[nodeSide]map[string]bool)
	targetHandles := make(map[nodeSide]map[string]bool)
	for _, e := range edges {
		ss := nodeSide{e.SourceNodeID, sourceSide[e.ID]}
		if sourceHandles[ss] == nil {
			sourceHandles[ss] = make(map[string]bool)
		}
		sourceHandles[ss][e.SourceHandleID] = true

		ts := nodeSide{e.TargetNodeID, targetSide[e.ID]}
		if targetHandles[ts] == nil {
			targetHandles[ts] = make(map[string]bool)
		}
		targetHandles[ts][e.TargetHandleID] = true
	}

	sortedHandleOrder := func(set map[string]bool) []string {
		ids := make([]string, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool {
			vi, oki := handleIndex(ids[i])
			vj, okj := handleIndex(ids[j])
			if oki && okj && vi != vj {
				return vi < vj
			}
			return ids[i] < ids[j]
		})
		return ids
	}

	sourcePosition := make(map[key]int)
	sourceGroupCount := make(map[nodeSide]int)
	for ns, set := range sourceHandles {
		ids := sortedHandleOrder(set)
		sourceGroupCount[ns] = len(ids)
		for i, id := range ids {
			sourcePosition[key{ns, id}] = i
		}
	}
	targetPosition := make(map[key]int)
	targetGroupCount := make(map[nodeSide]int)
	for ns, set := range targetHandles {
		ids := sortedHandleOrder(set)
		targetGroupCount[ns] = len(ids)
		for i, id := range ids {
			targetPosition[key{ns, id}] = i
		}
	}

	for _, e := range edges {
		ss := nodeSide{e.SourceNodeID, sourceSide[e.ID]}
		ts := nodeSide{e.TargetNodeID, targetSide[e.ID]}
		hg.sourceIndex[e.ID] = sourcePosition[key{ss, e.SourceHandleID}]
		hg.sourceCount[e.ID] = sourceGroupCount[ss]
		hg.targetIndex[e.ID] = targetPosition[key{ts, e.TargetHandleID}]
		hg.targetCount[e.ID] = targetGroupCount[ts]
	}
	return hg
}

// resolveMergeEntrySide picks a merge node's entry side by comparing the
// source's horizontal centre to the merge's centre within a threshold of
// half the merge's width.
func resolveMergeEntrySide(source, merge NodeInternals) geom.Side {
	threshold := merge.Width / 2
	delta := source.CenterX() - merge.CenterX()
	switch {
	case delta < -threshold:
		return geom.Left
	case delta > threshold:
		return geom.Right
	default:
		return geom.Top
	}
}

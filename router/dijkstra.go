package router

import (
	"github.com/jitprasann/orthoedge/config"
	"github.com/jitprasann/orthoedge/geom"
	"github.com/jitprasann/orthoedge/pq"
)

// state is a Dijkstra vertex: a waypoint reached while travelling along a
// given axis. Tracking the arrival axis per state (rather than per
// waypoint) is what lets the bend penalty be charged correctly even when
// the cheapest way to re-visit a waypoint changes direction; the same
// technique is used by d2gridrouter's (NodeID, Direction) state key.
type state struct {
	waypoint int
	axis     geom.Orientation
}

// shortestPath runs bend-penalized Dijkstra from srcIdx to tgtIdx and
// returns the sequence of waypoint indices from src to tgt inclusive, or
// nil if tgtIdx is unreachable. initialAxis is the axis the source stub
// counts as having arrived along, so a first move along that same axis
// is not charged a bend penalty.
func shortestPath(g *grid, srcIdx, tgtIdx int, initialAxis geom.Orientation, sourcePortY float64, cfg config.Config) []int {
	if srcIdx == tgtIdx {
		return []int{srcIdx}
	}

	dist := make(map[state]float64)
	prev := make(map[state]state)
	visited := make(map[state]bool)

	queue := pq.New()
	start := state{waypoint: srcIdx, axis: initialAxis}
	dist[start] = 0
	queue.Push(start, 0)

	for {
		item, ok := queue.Pop()
		if !ok {
			return nil // frontier exhausted: unreachable
		}
		cur := item.Value.(state)
		if visited[cur] {
			continue
		}
		visited[cur] = true

		if cur.waypoint == tgtIdx {
			return reconstruct(prev, cur, srcIdx)
		}

		curDist := dist[cur]
		for _, e := range g.adjacency[cur.waypoint] {
			next := state{waypoint: e.to, axis: e.orientation}
			if visited[next] {
				continue
			}

			cost := curDist + e.weight
			if e.orientation != cur.axis {
				cost += cfg.BendPenalty
			}
			if e.orientation == geom.Horizontal && cfg.EarlyBendBias > 0 {
				// The segment's shared y IS its midpoint's y (both
				// endpoints share y), so no separate midpoint lookup is
				// needed.
				y := g.waypoints[e.to].Y
				cost += cfg.EarlyBendBias * (y - sourcePortY)
			}

			if best, seen := dist[next]; seen && cost >= best {
				continue
			}
			dist[next] = cost
			prev[next] = cur
			queue.Push(next, cost)
		}
	}
}

func reconstruct(prev map[state]state, end state, srcIdx int) []int {
	var path []int
	cur := end
	for {
		path = append(path, cur.waypoint)
		if cur.waypoint == srcIdx {
			break
		}
		p, ok := prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

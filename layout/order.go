package layout

import "sort"

// fanoutSpan bounds the number of children any single node may have while
// still producing one order key per rank without collisions: a real
// diagram never approaches this, and a node with more children than this
// simply loses fine-grained ordering stability relative to its
// far-removed cousins, not correctness within its own sibling group.
const fanoutSpan = 1 << 16

// orderKeys computes one sortable float64 per node such that, within a
// rank, sorting by key reproduces left-to-right port order among every
// node's direct children regardless of how deep their subtrees grow.
// Rank-0 nodes are keyed by their
// position in the input node list (stable, deterministic); every other
// node inherits the minimum parent key, scaled up and offset by its
// incoming edge's source port index, so a node with several parents
// settles near its left-most one.
func orderKeys(nodes []Node, edges []Edge, ranks map[string]int) map[string]float64 {
	incoming := make(map[string][]Edge, len(nodes))
	for _, e := range edges {
		incoming[e.Target] = append(incoming[e.Target], e)
	}

	keys := make(map[string]float64, len(nodes))
	maxRank := 0
	for _, r := range ranks {
		if r > maxRank {
			maxRank = r
		}
	}

	rankNodes := make([][]string, maxRank+1)
	for _, n := range nodes {
		r := ranks[n.ID]
		rankNodes[r] = append(rankNodes[r], n.ID)
	}

	for i, id := range rankNodes[0] {
		keys[id] = float64(i)
	}

	for r := 1; r <= maxRank; r++ {
		for _, id := range rankNodes[r] {
			parents := incoming[id]
			if len(parents) == 0 {
				keys[id] = 0
				continue
			}
			best := 0.0
			first := true
			for _, e := range parents {
				k := keys[e.Source]*fanoutSpan + float64(e.SourcePort)
				if first || k < best {
					best = k
					first = false
				}
			}
			keys[id] = best
		}
	}
	return keys
}

// orderRank returns this rank's node ids sorted by key ascending, tying
// on id for full determinism.
func orderRank(ids []string, keys map[string]float64) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.SliceStable(out, func(i, j int) bool {
		if keys[out[i]] != keys[out[j]] {
			return keys[out[i]] < keys[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}

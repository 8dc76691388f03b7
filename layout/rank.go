package layout

// computeRanks assigns every node the longest-path-from-any-source rank,
// via Kahn's topological BFS: nodes enter the frontier once every
// incoming edge has been relaxed, and a node's rank is relaxed upward
// (never downward) each time an incoming edge is processed, so two
// siblings of a branch always land on the same row even if one's
// subtree is deeper.
func computeRanks(nodes []Node, edges []Edge) (map[string]int, error) {
	indegree := make(map[string]int, len(nodes))
	children := make(map[string][]Edge, len(nodes))
	for _, n := range nodes {
		indegree[n.ID] = 0
	}
	for _, e := range edges {
		indegree[e.Target]++
		children[e.Source] = append(children[e.Source], e)
	}

	rank := make(map[string]int, len(nodes))
	// 1. Seed the frontier with every source (indegree 0); isolated nodes
	// are sources and rank 0 by construction.
	var frontier []string
	for _, n := range nodes {
		if indegree[n.ID] == 0 {
			rank[n.ID] = 0
			frontier = append(frontier, n.ID)
		}
	}

	// 2. Process the frontier in stable (insertion) order, relaxing every
	// outgoing edge's target rank upward and decrementing indegree; a
	// target joins the next frontier once its indegree reaches zero.
	remaining := make(map[string]int, len(indegree))
	for id, d := range indegree {
		remaining[id] = d
	}
	visited := 0
	for len(frontier) > 0 {
		var next []string
		for _, id := range frontier {
			visited++
			for _, e := range children[id] {
				if r := rank[id] + 1; r > rank[e.Target] {
					rank[e.Target] = r
				}
				remaining[e.Target]--
				if remaining[e.Target] == 0 {
					next = append(next, e.Target)
				}
			}
		}
		frontier = next
	}

	// 3. Any node never visited sits on a cycle.
	if visited < len(nodes) {
		return nil, ErrCycleDetected
	}
	return rank, nil
}

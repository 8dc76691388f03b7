package visibility

// adjacency indexes a diagram's edges for forward and reverse traversal.
type adjacency struct {
	forward map[string][]string
	reverse map[string][]string
}

func buildAdjacency(edges []Edge) adjacency {
	a := adjacency{forward: make(map[string][]string), reverse: make(map[string][]string)}
	for _, e := range edges {
		a.forward[e.Source] = append(a.forward[e.Source], e.Target)
		a.reverse[e.Target] = append(a.reverse[e.Target], e.Source)
	}
	return a
}

// reachableFrom returns every node reachable from start (inclusive),
// following edges in the given direction ("forward" or "reverse"), via a
// plain breadth-first frontier walk.
func (a adjacency) reachableFrom(start string, reverse bool) map[string]bool {
	adj := a.forward
	if reverse {
		adj = a.reverse
	}
	seen := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range adj[id] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return seen
}

// depthFrom returns the BFS depth (hop count) of every node reachable
// from start, used to pick the closest candidate merge for a branch.
func (a adjacency) depthFrom(start string) map[string]int {
	depth := map[string]int{start: 0}
	queue := []string{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range a.forward[id] {
			if _, ok := depth[next]; !ok {
				depth[next] = depth[id] + 1
				queue = append(queue, next)
			}
		}
	}
	return depth
}

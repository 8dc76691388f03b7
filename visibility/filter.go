package visibility

import (
	"fmt"
	"sort"
)

// branchGroup describes one branch node's collapse-eligible structure:
// the branch, its resolved merge, and the set of nodes strictly between
// them.
type branchGroup struct {
	branch   string
	merge    string
	children []string
	between  map[string]bool // strictly between branch and merge, exclusive of both
}

// Filter computes the visible subgraph of in, hiding collapsed branch
// groups and individually collapsed branches, and synthesising bypass
// edges from a fully collapsed branch to its merge's successors.
func Filter(in Input) Output {
	adj := buildAdjacency(in.Edges)
	nodesByID := make(map[string]Node, len(in.Nodes))
	for _, n := range in.Nodes {
		nodesByID[n.ID] = n
	}

	groups := findBranchGroups(in, adj)

	hidden := make(map[string]bool)
	bypass := make(map[[2]string]bool)

	for _, g := range groups {
		branch := nodesByID[g.branch]
		if branch.Collapsed {
			for id := range g.between {
				hidden[id] = true
			}
			hidden[g.merge] = true
			for _, succ := range adj.forward[g.merge] {
				bypass[[2]string{g.branch, succ}] = true
			}
			continue
		}
		for _, child := range g.children {
			if !nodesByID[child].Collapsed {
				continue
			}
			sub := adj.reachableFrom(child, false)
			for id := range sub {
				if id != g.merge && g.between[id] {
					hidden[id] = true
				}
			}
			if child != g.merge {
				hidden[child] = true
			}
		}
	}

	var outNodes []Node
	for _, n := range in.Nodes {
		if !hidden[n.ID] {
			outNodes = append(outNodes, n)
		}
	}

	visible := func(id string) bool { return !hidden[id] }

	// Pass-through edges keep their own identity: two distinct edges
	// sharing a (Source, Target) pair (different handles of the same two
	// nodes) both survive, unlike the synthesised bypass edges below.
	var outEdges []Edge
	for _, e := range in.Edges {
		if visible(e.Source) && visible(e.Target) {
			outEdges = append(outEdges, e)
		}
	}

	var bypassKeys [][2]string
	for k := range bypass {
		bypassKeys = append(bypassKeys, k)
	}
	sort.Slice(bypassKeys, func(i, j int) bool {
		if bypassKeys[i][0] != bypassKeys[j][0] {
			return bypassKeys[i][0] < bypassKeys[j][0]
		}
		return bypassKeys[i][1] < bypassKeys[j][1]
	})
	seenBypass := make(map[[2]string]bool)
	for _, k := range bypassKeys {
		if !visible(k[0]) || !visible(k[1]) {
			continue
		}
		if seenBypass[k] {
			continue
		}
		seenBypass[k] = true
		outEdges = append(outEdges, Edge{
			ID:     fmt.Sprintf("bypass:%s->%s", k[0], k[1]),
			Source: k[0],
			Target: k[1],
		})
	}

	return Output{Nodes: outNodes, Edges: outEdges}
}

// findBranchGroups locates every branch node (>= 2 outgoing edges) that
// has a reachable merge, and resolves each one's group.
func findBranchGroups(in Input, adj adjacency) []branchGroup {
	isMerge := make(map[string]bool, len(in.Nodes))
	for _, n := range in.Nodes {
		isMerge[n.ID] = n.IsMerge
	}

	var groups []branchGroup
	for _, n := range in.Nodes {
		children := adj.forward[n.ID]
		if len(children) < 2 {
			continue
		}
		merge, ok := resolveMerge(n.ID, children, adj, isMerge)
		if !ok {
			continue
		}
		forward := adj.reachableFrom(n.ID, false)
		backward := adj.reachableFrom(merge, true)
		between := make(map[string]bool)
		for id := range forward {
			if id == n.ID || id == merge {
				continue
			}
			if backward[id] {
				between[id] = true
			}
		}
		groups = append(groups, branchGroup{
			branch:   n.ID,
			merge:    merge,
			children: append([]string(nil), children...),
			between:  between,
		})
	}
	return groups
}

// resolveMerge finds the isMerge node reachable from every one of
// branch's children, preferring the one closest to branch (fewest hops)
// and breaking ties by id for determinism.
func resolveMerge(branch string, children []string, adj adjacency, isMerge map[string]bool) (string, bool) {
	var sets []map[string]bool
	for _, c := range children {
		sets = append(sets, adj.reachableFrom(c, false))
	}

	var candidates []string
	for id, ok := range isMerge {
		if !ok {
			continue
		}
		inAll := true
		for _, s := range sets {
			if !s[id] {
				inAll = false
				break
			}
		}
		if inAll {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}

	depth := adj.depthFrom(branch)
	sort.Slice(candidates, func(i, j int) bool {
		di, dj := depth[candidates[i]], depth[candidates[j]]
		if di != dj {
			return di < dj
		}
		return candidates[i] < candidates[j]
	})
	return candidates[0], true
}

package layout

import "github.com/jitprasann/orthoedge/config"

// Compute runs the full layered layout: ranking, sibling ordering, and
// coordinate assignment, with optional post-layout compaction. Cycles
// return ErrCycleDetected; the engine does not guess at a partial layout
// for cyclic input.
func Compute(nodes []Node, edges []Edge, cfg config.Config) (Result, error) {
	ranks, err := computeRanks(nodes, edges)
	if err != nil {
		return Result{}, err
	}
	keys := orderKeys(nodes, edges, ranks)

	maxRank := 0
	byID := make(map[string]Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
		if ranks[n.ID] > maxRank {
			maxRank = ranks[n.ID]
		}
	}
	rankMembers := make([][]string, maxRank+1)
	for _, n := range nodes {
		r := ranks[n.ID]
		rankMembers[r] = append(rankMembers[r], n.ID)
	}

	positions := make(map[string]Placement, len(nodes))
	rankHeight := make([]float64, maxRank+1)
	for r, ids := range rankMembers {
		ordered := orderRank(ids, keys)
		x := 0.0
		tallest := 0.0
		for i, id := range ordered {
			n := byID[id]
			if i > 0 {
				x += cfg.HorizontalGap
			}
			positions[id] = Placement{X: x}
			x += n.Width
			if n.Height > tallest {
				tallest = n.Height
			}
		}
		rankHeight[r] = tallest
	}

	gaps := rankGaps(rankMembers, edges, ranks, cfg)
	y := 0.0
	for r := range rankMembers {
		if r > 0 {
			y += rankHeight[r-1] + gaps[r]
		}
		for _, id := range rankMembers[r] {
			p := positions[id]
			p.Y = y
			positions[id] = p
		}
	}

	return Result{Positions: positions, Ranks: ranks}, nil
}

// rankGaps returns, for each rank index r >= 1, the vertical gap between
// rank r-1 and r. Without compaction every gap is VerticalGap. With
// compaction enabled, a rank pair whose connecting edges are all
// unlabeled collapses to CompactGap; the saving is a pure shift of every
// later rank, since coordinates accumulate.
func rankGaps(rankMembers [][]string, edges []Edge, ranks map[string]int, cfg config.Config) []float64 {
	gaps := make([]float64, len(rankMembers))
	if !cfg.Compact {
		for r := 1; r < len(gaps); r++ {
			gaps[r] = cfg.VerticalGap
		}
		return gaps
	}

	anyLabeled := make([]bool, len(rankMembers))
	anyEdge := make([]bool, len(rankMembers))
	for _, e := range edges {
		sr, tr := ranks[e.Source], ranks[e.Target]
		if tr != sr+1 {
			continue // only adjacent-rank edges govern that pair's gap
		}
		anyEdge[tr] = true
		if e.Labeled {
			anyLabeled[tr] = true
		}
	}
	for r := 1; r < len(gaps); r++ {
		if anyEdge[r] && !anyLabeled[r] {
			gaps[r] = cfg.CompactGap
		} else {
			gaps[r] = cfg.VerticalGap
		}
	}
	return gaps
}

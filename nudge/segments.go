package nudge

import (
	"math"
	"sort"

	"github.com/jitprasann/orthoedge/geom"
)

// eligibleSegment is one interior (non-stub) segment of one route,
// decomposed for grouping.
type eligibleSegment struct {
	routeIdx    int
	segIdx      int // index i such that the segment is (points[i], points[i+1])
	orientation geom.Orientation
	fixedCoord  float64
	rangeMin    float64
	rangeMax    float64
}

// fixedBucketTolerance absorbs floating-point drift when grouping
// segments that are meant to share one grid line.
const fixedBucketTolerance = 0.5

// collectEligible extracts every interior segment of every route: every
// segment except the first (source stub) and last (target stub). Routes
// shorter than 4 points contribute nothing.
func collectEligible(routes []Route) []eligibleSegment {
	var segs []eligibleSegment
	for ri, r := range routes {
		n := len(r.Points)
		if n < 4 {
			continue
		}
		// Segment indices run 0..n-2; exclude the first (0, source stub)
		// and the last (n-2, target stub).
		for i := 1; i <= n-3; i++ {
			seg, ok := geom.NewSegment(r.Points[i], r.Points[i+1])
			if !ok {
				continue
			}
			rmin, rmax := seg.Range()
			segs = append(segs, eligibleSegment{
				routeIdx:    ri,
				segIdx:      i,
				orientation: seg.Orientation,
				fixedCoord:  seg.FixedCoord(),
				rangeMin:    rmin,
				rangeMax:    rmax,
			})
		}
	}
	return segs
}

// cluster is a set of segments (from at least two distinct edges) that
// overlap along a shared grid line.
type cluster struct {
	orientation  geom.Orientation
	fixedCoord   float64
	segments     []eligibleSegment
	edgeOrder    []int // distinct routeIdx in first-appearance order
}

// groupIntoClusters buckets segments by (orientation, fixedCoord) and,
// within each bucket, sweeps by range start to form overlap clusters.
// Touching ranges count as overlapping. Clusters with fewer than two
// distinct edges are discarded.
func groupIntoClusters(segs []eligibleSegment) []cluster {
	type bucketKey struct {
		orientation geom.Orientation
		bucket      int64
	}
	buckets := make(map[bucketKey][]eligibleSegment)
	var bucketOrder []bucketKey
	for _, s := range segs {
		key := bucketKey{orientation: s.orientation, bucket: int64(math.Round(s.fixedCoord / fixedBucketTolerance))}
		if _, ok := buckets[key]; !ok {
			bucketOrder = append(bucketOrder, key)
		}
		buckets[key] = append(buckets[key], s)
	}

	var clusters []cluster
	for _, key := range bucketOrder {
		bucketSegs := buckets[key]
		sort.SliceStable(bucketSegs, func(i, j int) bool {
			return bucketSegs[i].rangeMin < bucketSegs[j].rangeMin
		})

		var cur []eligibleSegment
		curMax := math.Inf(-1)
		flush := func() {
			if len(cur) == 0 {
				return
			}
			c := cluster{orientation: key.orientation, fixedCoord: cur[0].fixedCoord, segments: cur}
			seen := make(map[int]bool)
			for _, s := range cur {
				if !seen[s.routeIdx] {
					seen[s.routeIdx] = true
					c.edgeOrder = append(c.edgeOrder, s.routeIdx)
				}
			}
			if len(c.edgeOrder) >= 2 {
				clusters = append(clusters, c)
			}
		}

		for _, s := range bucketSegs {
			if len(cur) > 0 && s.rangeMin > curMax+fixedBucketTolerance {
				flush()
				cur = nil
				curMax = math.Inf(-1)
			}
			cur = append(cur, s)
			if s.rangeMax > curMax {
				curMax = s.rangeMax
			}
		}
		flush()
	}
	return clusters
}

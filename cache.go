package orthoedge

import (
	"hash/fnv"
	"sort"
	"strconv"
	"sync"

	"github.com/jitprasann/orthoedge/config"
)

// memoCache is process-local and guarded by a mutex: the core itself is
// single-threaded and synchronous, but a host embedding it from multiple
// goroutines must not see a torn cache entry.
var memoCache = struct {
	mu      sync.RWMutex
	entries map[uint64]RoutingResult
}{entries: make(map[uint64]RoutingResult)}

func cacheGet(key uint64) (RoutingResult, bool) {
	memoCache.mu.RLock()
	defer memoCache.mu.RUnlock()
	r, ok := memoCache.entries[key]
	return r, ok
}

func cachePut(key uint64, result RoutingResult) {
	memoCache.mu.Lock()
	defer memoCache.mu.Unlock()
	memoCache.entries[key] = result
}

// memoKey hashes the routing-relevant shape of the input: node positions
// and dimensions in id-sorted order, edge endpoint/handle tuples in
// id-sorted order, and the resolved global configuration; the key must
// be stable across calls with unchanged inputs. Per-edge routing-config overrides
// are intentionally excluded from a simple scalar hash and instead
// folded in via each edge's resolved id/handle tuple plus label, which
// is sufficient to invalidate the cache whenever the edges themselves
// change; a config.Option is an opaque closure and cannot be hashed
// directly, so per-edge overrides rely on the caller not mutating an
// edge's RoutingConfig in place between calls.
func memoKey(nodes []NodeInternals, edges []EdgeSpec, globalOpts []RoutingOption) uint64 {
	h := fnv.New64a()
	write := func(s string) { h.Write([]byte(s)); h.Write([]byte{0}) }
	writeFloat := func(f float64) { write(strconv.FormatFloat(f, 'g', -1, 64)) }

	sortedNodes := make([]NodeInternals, len(nodes))
	copy(sortedNodes, nodes)
	sort.Slice(sortedNodes, func(i, j int) bool { return sortedNodes[i].ID < sortedNodes[j].ID })
	for _, n := range sortedNodes {
		write(n.ID)
		writeFloat(n.X)
		writeFloat(n.Y)
		writeFloat(n.Width)
		writeFloat(n.Height)
		write(strconv.FormatBool(n.IsMerge))
	}

	sortedEdges := make([]EdgeSpec, len(edges))
	copy(sortedEdges, edges)
	sort.Slice(sortedEdges, func(i, j int) bool { return sortedEdges[i].ID < sortedEdges[j].ID })
	for _, e := range sortedEdges {
		write(e.ID)
		write(e.SourceNodeID)
		write(e.SourceHandleID)
		write(e.TargetNodeID)
		write(e.TargetHandleID)
		write(e.Label)
		write(strconv.Itoa(len(e.RoutingConfig)))
	}

	cfg := config.Merge(config.Default(), globalOpts...)
	for _, f := range []float64{
		cfg.Padding, cfg.SourceStubLength, cfg.TargetStubLength, cfg.BendPenalty,
		cfg.EarlyBendBias, float64(cfg.SourceDir), float64(cfg.TargetDir),
		cfg.EdgeSeparation, cfg.BendRadius, cfg.HorizontalGap, cfg.VerticalGap,
		cfg.CompactGap, cfg.NodeWidth, cfg.NodeHeight,
	} {
		writeFloat(f)
	}
	write(strconv.FormatBool(cfg.Compact))

	return h.Sum64()
}

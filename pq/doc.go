// Package pq implements a binary min-heap keyed by a floating-point cost,
// the priority queue used by the router's Dijkstra search and by any
// other component in this module that needs cheapest-first ordering over
// a small, dynamically-growing frontier.
//
// The heap itself carries no domain knowledge — it orders opaque Items by
// Cost — mirroring how lvlath/dijkstra's nodePQ and d2gridrouter's
// dijkstraPQ are each a thin container/heap.Interface wrapper around a
// slice of algorithm-specific structs. Here the struct is generalized to
// an interface{} Value so every caller in this module (single-edge
// router today, any future cost-ordered search tomorrow) shares one
// implementation instead of redefining Len/Less/Swap/Push/Pop per caller.
package pq

// Package nudge implements the overlap separator: given every routed
// edge in one batch, it finds interior segments that run along the same
// grid line and spreads them symmetrically about that line so parallel
// edges never visually merge, then repairs the polylines back into
// fully orthogonal paths.
//
// Grounded on d2gridrouter's nudging stage (nudging.go): the
// bucket-by-(orientation, fixed coordinate) + sweep-for-overlap grouping
// is the same shape, adapted here to a center-spread offset rule
// ((i - (N-1)/2) * separation) in place of d2's evenly-divide-the-channel
// rule, and extended with a re-orthogonalization repair pass that d2's
// router never needs, because it nudges within a fixed channel that
// already has room on both sides.
package nudge

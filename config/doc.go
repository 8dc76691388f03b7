// Package config defines the single configuration surface shared by every
// component of the routing and layout pipeline. A Config is a plain
// value; it is built once via Default() and customized with functional
// options, the same contract the teacher uses for dijkstra.Options and
// builder.builderConfig.
//
// The orchestrator layer (package orthoedge) performs a three-tier
// merge — defaults, then caller-wide overrides, then per-edge overrides
// — by calling Merge twice in sequence; Merge itself is tier-agnostic,
// it just folds options over a base value.
package config

package config

import "github.com/jitprasann/orthoedge/geom"

// Config collects every recognised routing, layout and rendering option,
// plus the per-edge stub-direction fields. A single struct threads
// through router, nudge, svgpath and layout so that every layer reads
// the same names instead of re-deriving them.
type Config struct {
	// Padding is the obstacle inflation in px.
	Padding float64
	// SourceStubLength/TargetStubLength are the mandatory straight-out
	// stub lengths at each port.
	SourceStubLength float64
	TargetStubLength float64
	// BendPenalty is the additive Dijkstra cost per direction change.
	BendPenalty float64
	// EarlyBendBias is the per-unit-y cost added to horizontal segments;
	// zero unless the orchestrator is routing a labelled edge.
	EarlyBendBias float64
	// SourceDir/TargetDir are the stub directions at each port.
	SourceDir geom.Side
	TargetDir geom.Side

	// EdgeSeparation is the perpendicular offset between overlapping
	// parallel edges, used by the overlap separator.
	EdgeSeparation float64
	// BendRadius is the max radius of a rendered rounded corner.
	BendRadius float64

	// HorizontalGap/VerticalGap are the layered-layout's intra-/inter-rank
	// spacing.
	HorizontalGap float64
	VerticalGap float64
	// CompactGap is the reduced inter-rank spacing used for rank pairs
	// whose connecting edges carry no labels, when compaction is enabled.
	CompactGap float64
	// Compact enables the optional post-layout compaction pass.
	Compact bool

	// NodeWidth/NodeHeight are fallback node dimensions used when the
	// host has not measured a node.
	NodeWidth  float64
	NodeHeight float64
}

// Default returns the Config populated with its documented defaults.
func Default() Config {
	return Config{
		Padding:          20,
		SourceStubLength: 20,
		TargetStubLength: 20,
		BendPenalty:      1,
		EarlyBendBias:    0,
		SourceDir:        geom.Bottom,
		TargetDir:        geom.Top,
		EdgeSeparation:   5,
		BendRadius:       8,
		HorizontalGap:    40,
		VerticalGap:      60,
		CompactGap:       30,
		Compact:          false,
		NodeWidth:        150,
		NodeHeight:       60,
	}
}

// Option mutates a Config in place; the zero value of Option must never
// be called (functional-options contract shared with the teacher's
// dijkstra.Option / builder.BuilderOption).
type Option func(*Config)

// Merge applies opts in order over a copy of base and returns the result,
// leaving base untouched. Used by the orchestrator to layer
// defaults <- global overrides <- per-edge overrides.
func Merge(base Config, opts ...Option) Config {
	cfg := base
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Invalid values (negative radius, negative separation, ...) are treated
// as zero/disabled rather than rejected.
func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func WithPadding(v float64) Option {
	return func(c *Config) { c.Padding = clampNonNegative(v) }
}

func WithSourceStubLength(v float64) Option {
	return func(c *Config) { c.SourceStubLength = clampNonNegative(v) }
}

func WithTargetStubLength(v float64) Option {
	return func(c *Config) { c.TargetStubLength = clampNonNegative(v) }
}

func WithBendPenalty(v float64) Option {
	return func(c *Config) { c.BendPenalty = clampNonNegative(v) }
}

func WithEarlyBendBias(v float64) Option {
	return func(c *Config) { c.EarlyBendBias = v } // not clamped here; the router applies the bias only when it is positive
}

func WithSourceDir(side geom.Side) Option {
	return func(c *Config) { c.SourceDir = side }
}

func WithTargetDir(side geom.Side) Option {
	return func(c *Config) { c.TargetDir = side }
}

func WithEdgeSeparation(v float64) Option {
	return func(c *Config) { c.EdgeSeparation = clampNonNegative(v) }
}

func WithBendRadius(v float64) Option {
	return func(c *Config) { c.BendRadius = clampNonNegative(v) }
}

func WithHorizontalGap(v float64) Option {
	return func(c *Config) { c.HorizontalGap = clampNonNegative(v) }
}

func WithVerticalGap(v float64) Option {
	return func(c *Config) { c.VerticalGap = clampNonNegative(v) }
}

func WithCompaction(gap float64) Option {
	return func(c *Config) {
		c.Compact = true
		c.CompactGap = clampNonNegative(gap)
	}
}

func WithNodeSize(width, height float64) Option {
	return func(c *Config) {
		c.NodeWidth = clampNonNegative(width)
		c.NodeHeight = clampNonNegative(height)
	}
}

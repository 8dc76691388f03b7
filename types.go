package orthoedge

import "github.com/jitprasann/orthoedge/geom"

// HandleBounds is one measured port, relative to its owning node's
// top-left corner.
type HandleBounds struct {
	ID     string
	X, Y   float64
	Width  float64
	Height float64
	Side   geom.Side
}

// NodeInternals is one node record consumed from the host. When
// SourceHandles/TargetHandles is nil, the orchestrator synthesises
// positions via the default port-layout formula instead.
type NodeInternals struct {
	ID        string
	X, Y      float64
	Width     float64
	Height    float64
	IsMerge   bool
	Collapsed bool

	SourceHandles []HandleBounds
	TargetHandles []HandleBounds
}

func (n NodeInternals) rect() geom.Rect {
	return geom.Rect{ID: n.ID, X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
}

func (n NodeInternals) CenterX() float64 { return n.X + n.Width/2 }
func (n NodeInternals) CenterY() float64 { return n.Y + n.Height/2 }

// EdgeSpec is one edge consumed from the host. Handle ids follow the
// "output-<i>" / "input-<i>" convention; RoutingConfig supplies this
// edge's own per-edge overrides, applied over the global configuration.
type EdgeSpec struct {
	ID             string
	SourceNodeID   string
	SourceHandleID string
	TargetNodeID   string
	TargetHandleID string
	Label          string
	RoutingConfig  []RoutingOption
	Order          int
}

// EdgeResult is one edge's final routed shape, keyed by edge id in
// RoutingResult.
type EdgeResult struct {
	Points  []geom.Point
	SVGPath string
}

// RoutingResult is the full batch output exposed to the host.
type RoutingResult map[string]EdgeResult

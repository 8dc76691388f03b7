package nudge

import "github.com/jitprasann/orthoedge/geom"

// Route is one routed edge's id and polyline, the batch unit the
// separator operates over.
type Route struct {
	ID     string
	Points []geom.Point
}

func cloneRoutes(routes []Route) []Route {
	out := make([]Route, len(routes))
	for i, r := range routes {
		pts := make([]geom.Point, len(r.Points))
		copy(pts, r.Points)
		out[i] = Route{ID: r.ID, Points: pts}
	}
	return out
}

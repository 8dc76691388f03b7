package router_test

import (
	"fmt"

	"github.com/jitprasann/orthoedge/config"
	"github.com/jitprasann/orthoedge/geom"
	"github.com/jitprasann/orthoedge/router"
)

// ExampleRoute routes a straight vertical edge between two ports with a
// clear corridor.
func ExampleRoute() {
	res := router.Route(router.Request{
		SourcePort: geom.Point{X: 50, Y: 40},
		TargetPort: geom.Point{X: 50, Y: 200},
		Config:     config.Default(),
	})
	fmt.Println(res.Points)
	// Output: [{50 40} {50 200}]
}

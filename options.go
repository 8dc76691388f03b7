package orthoedge

import "github.com/jitprasann/orthoedge/config"

// RoutingOption is the host-facing alias of config.Option: every With*
// constructor in package config doubles as a global or per-edge
// RoutingOption, applied as defaults <- global overrides <- per-edge
// routing config.
type RoutingOption = config.Option

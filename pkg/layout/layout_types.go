// Package layout arranges the nodes of a graph. Layouts only move nodes;
// sizes, sockets and connections are left alone.
package layout

import (
	"github.com/dd0wney/peacock/pkg/geom"
	"github.com/dd0wney/peacock/pkg/identity"
	"github.com/dd0wney/peacock/pkg/model"
)

// Layout interface for different layout algorithms
type Layout interface {
	// ComputeLayout returns the new top-left corner of every node.
	ComputeLayout(g model.Graph) map[identity.ID]geom.Point
}

// Config configures layout parameters
type Config struct {
	Origin  geom.Point // Top-left corner of the arranged graph
	Spacing float64    // Gap between neighbouring nodes
}

package layout

import (
	"math"

	"github.com/dd0wney/peacock/pkg/geom"
	"github.com/dd0wney/peacock/pkg/identity"
	"github.com/dd0wney/peacock/pkg/model"
)

// LayeredLayout arranges nodes in columns following the data flow: a node
// feeding another through a connection sits in an earlier column.
type LayeredLayout struct {
	config *Config
}

// NewLayeredLayout creates a new layered layout
func NewLayeredLayout(config *Config) *LayeredLayout {
	if config.Spacing == 0 {
		config.Spacing = 40
	}
	return &LayeredLayout{config: config}
}

// flow returns, for each node, the nodes its outputs feed. A connection's
// destination socket is the producing side.
func flow(g model.Graph) (out map[identity.ID][]identity.ID, incoming map[identity.ID]int) {
	out = make(map[identity.ID][]identity.ID)
	incoming = make(map[identity.ID]int)
	for _, c := range g.Connections {
		from, ok1 := g.NodeOfSocket(c.DestinationID)
		to, ok2 := g.NodeOfSocket(c.SourceID)
		if !ok1 || !ok2 || from.ID() == to.ID() {
			continue
		}
		out[from.ID()] = append(out[from.ID()], to.ID())
		incoming[to.ID()]++
	}
	return out, incoming
}

// levels groups node ids breadth-first from the nodes nothing feeds. Nodes
// only reachable through a cycle start further columns of their own.
func levels(g model.Graph) [][]identity.ID {
	out, incoming := flow(g)
	visited := make(map[identity.ID]bool, len(g.Nodes))

	var result [][]identity.ID
	walk := func(current []identity.ID) {
		for _, id := range current {
			visited[id] = true
		}
		for len(current) > 0 {
			result = append(result, current)
			var next []identity.ID
			for _, id := range current {
				for _, to := range out[id] {
					if !visited[to] {
						visited[to] = true
						next = append(next, to)
					}
				}
			}
			current = next
		}
	}

	// Find root nodes (nodes with no incoming connections)
	var roots []identity.ID
	for _, n := range g.Nodes {
		if incoming[n.ID()] == 0 {
			roots = append(roots, n.ID())
		}
	}
	walk(roots)
	for _, n := range g.Nodes {
		if !visited[n.ID()] {
			walk([]identity.ID{n.ID()})
		}
	}
	return result
}

// ComputeLayout stacks each level top to bottom; columns are as wide as
// their widest node.
func (ll *LayeredLayout) ComputeLayout(g model.Graph) map[identity.ID]geom.Point {
	positions := make(map[identity.ID]geom.Point, len(g.Nodes))
	sizes := make(map[identity.ID]geom.Size, len(g.Nodes))
	for _, n := range g.Nodes {
		sizes[n.ID()] = n.Rect.Size()
	}

	x := ll.config.Origin.X
	for _, level := range levels(g) {
		y := ll.config.Origin.Y
		width := 0.0
		for _, id := range level {
			positions[id] = geom.Pt(x, y)
			y += sizes[id].Height + ll.config.Spacing
			width = math.Max(width, sizes[id].Width)
		}
		x += width + ll.config.Spacing
	}
	return positions
}

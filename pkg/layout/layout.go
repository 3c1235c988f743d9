package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/dd0wney/peacock/pkg/geom"
	"github.com/dd0wney/peacock/pkg/identity"
	"github.com/dd0wney/peacock/pkg/model"
)

var ErrUnknownLayout = errors.New("unknown layout")

// Names lists the layouts accepted by ByName.
var Names = []string{"grid", "layered", "circular"}

// ByName returns the named layout configured from p.
func ByName(name string, p model.Placement) (Layout, error) {
	cfg := &Config{Origin: p.Origin, Spacing: p.Spacing}
	switch name {
	case "grid":
		return NewGridLayout(p), nil
	case "layered":
		return NewLayeredLayout(cfg), nil
	case "circular":
		return NewCircularLayout(cfg), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownLayout, name)
	}
}

// Apply moves every node of g to the position l computes for it.
func Apply(g model.Graph, l Layout) model.Graph {
	positions := l.ComputeLayout(g)
	nodes := make([]model.Node, len(g.Nodes))
	for i, n := range g.Nodes {
		if p, ok := positions[n.ID()]; ok {
			n = n.MoveTo(p)
		}
		nodes[i] = n
	}
	g.Nodes = nodes
	return g
}

// GridLayout is the row placement used for parsed graphs.
type GridLayout struct {
	placement model.Placement
}

func NewGridLayout(p model.Placement) *GridLayout {
	return &GridLayout{placement: p}
}

// ComputeLayout places nodes in rows of Columns, keeping their sizes.
func (gl *GridLayout) ComputeLayout(g model.Graph) map[identity.ID]geom.Point {
	p := gl.placement
	cols := p.Columns
	if cols <= 0 {
		cols = len(g.Nodes)
	}
	positions := make(map[identity.ID]geom.Point, len(g.Nodes))
	x, y, rowHeight := p.Origin.X, p.Origin.Y, 0.0
	for i, n := range g.Nodes {
		if i > 0 && i%cols == 0 {
			x = p.Origin.X
			y += rowHeight + p.Spacing
			rowHeight = 0
		}
		positions[n.ID()] = geom.Pt(x, y)
		x += n.Rect.Width + p.Spacing
		rowHeight = math.Max(rowHeight, n.Rect.Height)
	}
	return positions
}

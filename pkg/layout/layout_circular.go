package layout

import (
	"math"

	"github.com/dd0wney/peacock/pkg/geom"
	"github.com/dd0wney/peacock/pkg/identity"
	"github.com/dd0wney/peacock/pkg/model"
)

// CircularLayout arranges node centers on a circle, first node at the top,
// going clockwise.
type CircularLayout struct {
	config *Config
}

// NewCircularLayout creates a new circular layout
func NewCircularLayout(config *Config) *CircularLayout {
	if config.Spacing == 0 {
		config.Spacing = 40
	}
	return &CircularLayout{config: config}
}

// ComputeLayout picks the smallest radius at which neighbouring nodes keep
// Spacing between their bounding circles.
func (cl *CircularLayout) ComputeLayout(g model.Graph) map[identity.ID]geom.Point {
	positions := make(map[identity.ID]geom.Point, len(g.Nodes))
	n := len(g.Nodes)
	if n == 0 {
		return positions
	}

	extent := 0.0
	for _, node := range g.Nodes {
		s := node.Rect.Size()
		extent = math.Max(extent, math.Hypot(s.Width, s.Height))
	}
	radius := 0.0
	if n > 1 {
		radius = (extent + cl.config.Spacing) / (2 * math.Sin(math.Pi/float64(n)))
	}

	angleStep := 2 * math.Pi / float64(n)
	centers := make([]geom.Point, n)
	for i := range g.Nodes {
		angle := float64(i)*angleStep - math.Pi/2
		centers[i] = geom.Pt(radius*math.Cos(angle), radius*math.Sin(angle))
	}

	corners := make([]geom.Point, n)
	for i, node := range g.Nodes {
		s := node.Rect.Size()
		corners[i] = centers[i].Sub(geom.Pt(s.Width/2, s.Height/2))
	}
	shift := cl.config.Origin.Sub(minCorner(corners))
	for i, node := range g.Nodes {
		positions[node.ID()] = corners[i].Add(shift)
	}
	return positions
}

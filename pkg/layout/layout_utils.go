package layout

import (
	"math"

	"github.com/dd0wney/peacock/pkg/geom"
)

// minCorner returns the component-wise minimum of pts.
func minCorner(pts []geom.Point) geom.Point {
	minX, minY := math.MaxFloat64, math.MaxFloat64
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
	}
	return geom.Pt(minX, minY)
}

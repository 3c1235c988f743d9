package geom

import "math"

// MinConnectorOffset is the smallest horizontal control-point offset of a
// connector curve.
const MinConnectorOffset = 75.0

// Bezier is a cubic bezier curve.
type Bezier struct {
	Start, Control1, Control2, End Point
}

// Connector returns the horizontally biased S-curve used for connections
// between a and b. The control offset is 0.4 of the horizontal distance,
// never less than MinConnectorOffset.
func Connector(a, b Point) Bezier {
	offset := math.Max(0.4*math.Abs(a.X-b.X), MinConnectorOffset)
	return Bezier{
		Start:    a,
		Control1: a.Add(Pt(offset, 0)),
		Control2: b.Sub(Pt(offset, 0)),
		End:      b,
	}
}

// At evaluates the curve at t in [0, 1].
func (c Bezier) At(t float64) Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	d := 3 * u * t * t
	e := t * t * t
	return Point{
		X: a*c.Start.X + b*c.Control1.X + d*c.Control2.X + e*c.End.X,
		Y: a*c.Start.Y + b*c.Control1.Y + d*c.Control2.Y + e*c.End.Y,
	}
}

// Sample returns n+1 evenly spaced points along the curve, endpoints included.
func (c Bezier) Sample(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = c.At(float64(i) / float64(n))
	}
	return pts
}

// Offset returns the curve translated by d.
func (c Bezier) Offset(d Point) Bezier {
	return Bezier{
		Start:    c.Start.Add(d),
		Control1: c.Control1.Add(d),
		Control2: c.Control2.Add(d),
		End:      c.End.Add(d),
	}
}

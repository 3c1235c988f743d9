package geom

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := R(10, 20, 100, 50)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Pt(50, 40), true},
		{"top-left edge", Pt(10, 20), true},
		{"bottom-right edge", Pt(110, 70), true},
		{"left of", Pt(9, 40), false},
		{"below", Pt(50, 71), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectMoveTo(t *testing.T) {
	r := R(10, 20, 100, 50).MoveTo(Pt(-5, 7))
	if r != R(-5, 7, 100, 50) {
		t.Errorf("MoveTo() = %+v", r)
	}
}

func TestRectIntersect(t *testing.T) {
	got := R(0, 0, 10, 10).Intersect(R(5, 5, 10, 10))
	if got != R(5, 5, 5, 5) {
		t.Errorf("Intersect() = %+v", got)
	}
	if !R(0, 0, 10, 10).Intersect(R(20, 20, 1, 1)).IsEmpty() {
		t.Error("disjoint rectangles should intersect to an empty rect")
	}
}

func TestWithin(t *testing.T) {
	if !Pt(0, 0).Within(Pt(3, 4), 5) {
		t.Error("distance 5 should be within radius 5")
	}
	if Pt(0, 0).Within(Pt(3, 4.1), 5) {
		t.Error("distance > 5 should not be within radius 5")
	}
}

func TestConnector(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Point
		offset float64
	}{
		{"close nodes clamp to minimum", Pt(0, 0), Pt(10, 100), 75},
		{"far nodes scale with distance", Pt(0, 0), Pt(500, 0), 200},
		{"right to left uses magnitude", Pt(500, 0), Pt(0, 30), 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Connector(tt.a, tt.b)
			if c.Start != tt.a || c.End != tt.b {
				t.Errorf("endpoints = %v, %v", c.Start, c.End)
			}
			if c.Control1 != tt.a.Add(Pt(tt.offset, 0)) {
				t.Errorf("Control1 = %v, want offset %v", c.Control1, tt.offset)
			}
			if c.Control2 != tt.b.Sub(Pt(tt.offset, 0)) {
				t.Errorf("Control2 = %v, want offset %v", c.Control2, tt.offset)
			}
		})
	}
}

func TestBezierSampleEndpoints(t *testing.T) {
	c := Connector(Pt(1, 2), Pt(300, 400))
	pts := c.Sample(16)
	if len(pts) != 17 {
		t.Fatalf("Sample(16) returned %d points", len(pts))
	}
	if pts[0] != c.Start {
		t.Errorf("first sample = %v, want %v", pts[0], c.Start)
	}
	last := pts[len(pts)-1]
	if math.Abs(last.X-c.End.X) > 1e-9 || math.Abs(last.Y-c.End.Y) > 1e-9 {
		t.Errorf("last sample = %v, want %v", last, c.End)
	}
}

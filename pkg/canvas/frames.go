package canvas

import "github.com/dd0wney/peacock/pkg/geom"

// Frame is one entry of a frame stack: the absolute origin of the current
// coordinate system and the absolute clip rectangle.
type Frame struct {
	Origin geom.Point
	Clip   geom.Rect
}

// Frames tracks nested clip+translate frames for canvas adapters. The zero
// value is unclipped with its origin at (0, 0).
type Frames struct {
	stack []Frame
}

// Unbounded is the clip used before any frame is pushed.
var Unbounded = geom.R(-1e9, -1e9, 2e9, 2e9)

// Current returns the active frame.
func (f *Frames) Current() Frame {
	if len(f.stack) == 0 {
		return Frame{Clip: Unbounded}
	}
	return f.stack[len(f.stack)-1]
}

// Push enters r, given in the current frame's coordinates.
func (f *Frames) Push(r geom.Rect) Frame {
	cur := f.Current()
	abs := r.Offset(cur.Origin)
	next := Frame{Origin: abs.TopLeft(), Clip: cur.Clip.Intersect(abs)}
	f.stack = append(f.stack, next)
	return next
}

// Pop leaves the innermost frame. Popping an empty stack is a no-op.
func (f *Frames) Pop() {
	if len(f.stack) > 0 {
		f.stack = f.stack[:len(f.stack)-1]
	}
}

// Depth returns the number of pushed frames.
func (f *Frames) Depth() int {
	return len(f.stack)
}

// ToAbsolute converts a point in the current frame to absolute coordinates.
func (f *Frames) ToAbsolute(p geom.Point) geom.Point {
	return p.Add(f.Current().Origin)
}

// RectToAbsolute converts a rectangle in the current frame to absolute
// coordinates.
func (f *Frames) RectToAbsolute(r geom.Rect) geom.Rect {
	return r.Offset(f.Current().Origin)
}

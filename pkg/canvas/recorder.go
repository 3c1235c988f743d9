package canvas

import "github.com/dd0wney/peacock/pkg/geom"

// OpKind names a recorded drawing operation.
type OpKind string

const (
	OpText    OpKind = "text"
	OpLine    OpKind = "line"
	OpEllipse OpKind = "ellipse"
	OpRect    OpKind = "rect"
	OpBezier  OpKind = "bezier"
	OpPush    OpKind = "push"
	OpPop     OpKind = "pop"
)

// Op is one recorded call. Geometry is converted to absolute coordinates.
type Op struct {
	Kind   OpKind
	Rect   geom.Rect
	Points []geom.Point
	Text   string
	Depth  int
}

// Recorder is a Canvas that records what was drawn. It is used by tests and
// by hosts that post-process a frame.
type Recorder struct {
	Ops    []Op
	frames Frames
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(op Op) *Recorder {
	op.Depth = r.frames.Depth()
	r.Ops = append(r.Ops, op)
	return r
}

func (r *Recorder) DrawText(t StyledText) Canvas {
	return r.record(Op{Kind: OpText, Rect: r.frames.RectToAbsolute(t.Rect), Text: t.Text})
}

func (r *Recorder) DrawLine(l StyledLine) Canvas {
	return r.record(Op{Kind: OpLine, Points: []geom.Point{
		r.frames.ToAbsolute(l.Line.A), r.frames.ToAbsolute(l.Line.B),
	}})
}

func (r *Recorder) DrawEllipse(e StyledEllipse) Canvas {
	c := r.frames.ToAbsolute(e.Center)
	return r.record(Op{
		Kind:   OpEllipse,
		Rect:   geom.R(c.X-e.Radius.X, c.Y-e.Radius.Y, 2*e.Radius.X, 2*e.Radius.Y),
		Points: []geom.Point{c},
	})
}

func (r *Recorder) DrawRect(s StyledRect) Canvas {
	return r.record(Op{Kind: OpRect, Rect: r.frames.RectToAbsolute(s.Rect)})
}

func (r *Recorder) DrawBezier(b StyledBezier) Canvas {
	c := b.Curve.Offset(r.frames.Current().Origin)
	return r.record(Op{Kind: OpBezier, Points: []geom.Point{c.Start, c.Control1, c.Control2, c.End}})
}

func (r *Recorder) MeasureText(t StyledText) geom.Size {
	return ApproxTextSize(t)
}

func (r *Recorder) PushClipAndTranslate(rect geom.Rect) Canvas {
	abs := r.frames.RectToAbsolute(rect)
	r.record(Op{Kind: OpPush, Rect: abs})
	r.frames.Push(rect)
	return r
}

func (r *Recorder) Pop() Canvas {
	r.frames.Pop()
	return r.record(Op{Kind: OpPop})
}

// Depth returns the number of frames currently pushed.
func (r *Recorder) Depth() int {
	return r.frames.Depth()
}

// Filter returns the recorded ops of the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

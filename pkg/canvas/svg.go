package canvas

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/dd0wney/peacock/pkg/geom"
)

// SVG is a Canvas that writes an SVG document. Frames become translated,
// clipped groups. Call Close to finish the document.
type SVG struct {
	doc    *svg.SVG
	frames Frames
	clips  int
}

// NewSVG starts an SVG document of the given size on w.
func NewSVG(w io.Writer, width, height int) *SVG {
	doc := svg.New(w)
	doc.Start(width, height)
	return &SVG{doc: doc}
}

func px(v float64) int {
	return int(math.Round(v))
}

func fillStroke(s ShapeStyle) string {
	fill := "none"
	if !s.Brush.Color.IsTransparent() {
		fill = s.Brush.Color.Hex()
	}
	stroke := "none"
	if !s.Pen.Brush.Color.IsTransparent() && s.Pen.Width > 0 {
		stroke = s.Pen.Brush.Color.Hex()
	}
	return fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g", fill, stroke, s.Pen.Width)
}

func penStyle(p PenStyle) string {
	return fillStroke(ShapeStyle{Pen: p})
}

func (s *SVG) DrawText(t StyledText) Canvas {
	anchor := "start"
	x := t.Rect.X
	switch t.Style.Alignment.X {
	case AlignCenter:
		anchor, x = "middle", t.Rect.Center().X
	case AlignRight:
		anchor, x = "end", t.Rect.X+t.Rect.Width
	}
	y := t.Rect.Center().Y + t.Style.FontSize/3
	switch t.Style.Alignment.Y {
	case AlignTop:
		y = t.Rect.Y + t.Style.FontSize
	case AlignBottom:
		y = t.Rect.Y + t.Rect.Height
	}
	style := fmt.Sprintf("fill:%s;font-family:%s;font-size:%gpx;text-anchor:%s",
		t.Style.Brush.Color.Hex(), t.Style.FontFamily, t.Style.FontSize, anchor)
	s.doc.Text(px(x), px(y), t.Text, style)
	return s
}

func (s *SVG) DrawLine(l StyledLine) Canvas {
	s.doc.Line(px(l.Line.A.X), px(l.Line.A.Y), px(l.Line.B.X), px(l.Line.B.Y), penStyle(l.Pen))
	return s
}

func (s *SVG) DrawEllipse(e StyledEllipse) Canvas {
	s.doc.Ellipse(px(e.Center.X), px(e.Center.Y), px(e.Radius.X), px(e.Radius.Y), fillStroke(e.Style))
	return s
}

func (s *SVG) DrawRect(r StyledRect) Canvas {
	x, y, w, h := px(r.Rect.X), px(r.Rect.Y), px(r.Rect.Width), px(r.Rect.Height)
	if r.Radius.X > 0 || r.Radius.Y > 0 {
		s.doc.Roundrect(x, y, w, h, px(r.Radius.X), px(r.Radius.Y), fillStroke(r.Style))
	} else {
		s.doc.Rect(x, y, w, h, fillStroke(r.Style))
	}
	return s
}

func (s *SVG) DrawBezier(b StyledBezier) Canvas {
	c := b.Curve
	s.doc.Bezier(
		px(c.Start.X), px(c.Start.Y),
		px(c.Control1.X), px(c.Control1.Y),
		px(c.Control2.X), px(c.Control2.Y),
		px(c.End.X), px(c.End.Y),
		penStyle(b.Pen))
	return s
}

func (s *SVG) MeasureText(t StyledText) geom.Size {
	return ApproxTextSize(t)
}

func (s *SVG) PushClipAndTranslate(r geom.Rect) Canvas {
	s.clips++
	id := fmt.Sprintf("clip%d", s.clips)
	s.doc.Def()
	s.doc.ClipPath(fmt.Sprintf(`id="%s"`, id))
	s.doc.Rect(0, 0, px(r.Width), px(r.Height))
	s.doc.ClipEnd()
	s.doc.DefEnd()
	s.doc.Group(
		fmt.Sprintf(`transform="translate(%d,%d)"`, px(r.X), px(r.Y)),
		fmt.Sprintf(`clip-path="url(#%s)"`, id))
	s.frames.Push(r)
	return s
}

func (s *SVG) Pop() Canvas {
	if s.frames.Depth() == 0 {
		return s
	}
	s.frames.Pop()
	s.doc.Gend()
	return s
}

// Close pops any frames still open and ends the document.
func (s *SVG) Close() {
	for s.frames.Depth() > 0 {
		s.Pop()
	}
	s.doc.End()
}

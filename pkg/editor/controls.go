package editor

import (
	"math"

	"github.com/dd0wney/peacock/pkg/canvas"
	"github.com/dd0wney/peacock/pkg/geom"
	"github.com/dd0wney/peacock/pkg/identity"
	"github.com/dd0wney/peacock/pkg/ui"
	"github.com/dd0wney/peacock/pkg/view"
)

// GraphControl is the root control. It has no frame, so graph coordinates
// are screen coordinates.
type GraphControl struct {
	ui.BaseControl
	view    view.GraphView
	factory *Factory
}

func (c GraphControl) ID() identity.ID           { return c.view.ID() }
func (c GraphControl) View() view.View           { return c.view }
func (c GraphControl) GraphView() view.GraphView { return c.view }

func (c GraphControl) UpdateView(v view.View) ui.Control {
	c.view = v.(view.GraphView)
	return c
}

// Draw fills the area around the nodes and draws the grid.
func (c GraphControl) Draw(cv canvas.Canvas) canvas.Canvas {
	st := c.view.Style
	area := c.bounds()
	if area.IsEmpty() {
		return cv
	}
	cv = cv.DrawRect(canvas.StyledRect{Style: canvas.Shape(st.Background, canvas.Transparent, 0), Rect: area})
	if st.GridDistance <= 0 {
		return cv
	}
	pen := canvas.Pen(st.Grid, 1)
	for x := area.X; x <= area.X+area.Width; x += st.GridDistance {
		cv = cv.DrawLine(canvas.StyledLine{Pen: pen, Line: geom.Line{A: geom.Pt(x, area.Y), B: geom.Pt(x, area.Y+area.Height)}})
	}
	for y := area.Y; y <= area.Y+area.Height; y += st.GridDistance {
		cv = cv.DrawLine(canvas.StyledLine{Pen: pen, Line: geom.Line{A: geom.Pt(area.X, y), B: geom.Pt(area.X+area.Width, y)}})
	}
	return cv
}

// bounds is the grid-aligned area covering every node plus one grid cell.
func (c GraphControl) bounds() geom.Rect {
	if len(c.view.Nodes) == 0 {
		return geom.Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, n := range c.view.Nodes {
		minX, minY = math.Min(minX, n.Rect.X), math.Min(minY, n.Rect.Y)
		br := n.Rect.BottomRight()
		maxX, maxY = math.Max(maxX, br.X), math.Max(maxY, br.Y)
	}
	d := c.view.Style.GridDistance
	if d <= 0 {
		return geom.R(minX, minY, maxX-minX, maxY-minY)
	}
	minX = (math.Floor(minX/d) - 1) * d
	minY = (math.Floor(minY/d) - 1) * d
	maxX = (math.Ceil(maxX/d) + 1) * d
	maxY = (math.Ceil(maxY/d) + 1) * d
	return geom.R(minX, minY, maxX-minX, maxY-minY)
}

// Children puts connections first so nodes draw over them.
func (c GraphControl) Children(f ui.Factory) []ui.Control {
	out := ui.CreateAll(f, c, c.view.Connections)
	return append(out, ui.CreateAll(f, c, c.view.Nodes)...)
}

func (c GraphControl) DefaultBehaviors() []ui.Behavior {
	return []ui.Behavior{NewConnectingBehavior(c.ID(), c.factory)}
}

// NodeControl draws a node's body. Its frame is the node rectangle.
type NodeControl struct {
	ui.BaseControl
	view    view.NodeView
	factory *Factory
}

func (c NodeControl) ID() identity.ID         { return c.view.ID() }
func (c NodeControl) View() view.View         { return c.view }
func (c NodeControl) NodeView() view.NodeView { return c.view }
func (c NodeControl) Frame() geom.Rect        { return c.view.Rect }

func (c NodeControl) UpdateView(v view.View) ui.Control {
	c.view = v.(view.NodeView)
	return c
}

func (c NodeControl) Draw(cv canvas.Canvas) canvas.Canvas {
	st := c.view.Style
	local := geom.RectAt(geom.Point{}, c.view.Rect.Size())
	return cv.DrawRect(canvas.StyledRect{Style: st.Shape, Rect: local, Radius: st.Radius})
}

func (c NodeControl) Children(f ui.Factory) []ui.Control {
	return ui.CreateAll(f, c, c.view.AllSlots())
}

func (c NodeControl) DefaultBehaviors() []ui.Behavior {
	return []ui.Behavior{NewDraggingBehavior(c.ID(), c.factory.HitRadius)}
}

// SlotControl draws a slot's label. The header slot shows the node label
// centered.
type SlotControl struct {
	ui.BaseControl
	view view.SlotView
}

func (c SlotControl) ID() identity.ID  { return c.view.ID() }
func (c SlotControl) View() view.View  { return c.view }
func (c SlotControl) Frame() geom.Rect { return c.view.Rect }

func (c SlotControl) UpdateView(v view.View) ui.Control {
	c.view = v.(view.SlotView)
	return c
}

func (c SlotControl) Draw(cv canvas.Canvas) canvas.Canvas {
	st := c.view.Style
	s := c.view.Slot
	local := geom.RectAt(geom.Point{}, c.view.Rect.Size())
	if s.IsHeader {
		text := st.Text
		text.Alignment = canvas.CenterCenter
		return cv.DrawText(canvas.StyledText{Style: text, Rect: local, Text: s.Label})
	}
	label := local.Inset(st.TextOffset, 0)
	cv = cv.DrawText(canvas.StyledText{Style: st.Text, Rect: label, Text: s.Label})
	if s.Type != "" && s.Type != s.Label {
		cv = cv.DrawText(canvas.StyledText{Style: st.TypeText, Rect: label, Text: s.Type})
	}
	return cv
}

func (c SlotControl) Children(f ui.Factory) []ui.Control {
	return ui.CreateAll(f, c, c.view.Sockets())
}

// SocketControl draws a socket. It owns no frame and draws in its slot's
// space. Highlighted is set while a compatible connection hovers over it.
type SocketControl struct {
	ui.BaseControl
	view        view.SocketView
	Highlighted bool
}

func (c SocketControl) ID() identity.ID             { return c.view.ID() }
func (c SocketControl) View() view.View             { return c.view }
func (c SocketControl) SocketView() view.SocketView { return c.view }

func (c SocketControl) UpdateView(v view.View) ui.Control {
	c.view = v.(view.SocketView)
	return c
}

// WithHighlight returns a copy with the highlight set to on.
func (c SocketControl) WithHighlight(on bool) SocketControl {
	c.Highlighted = on
	return c
}

func (c SocketControl) Draw(cv canvas.Canvas) canvas.Canvas {
	st := c.view.Style
	shape, r := st.Shape, st.Radius
	if !c.view.Connected {
		shape = st.Open
	}
	if c.Highlighted {
		shape, r = st.Highlight, r*1.5
	}
	return cv.DrawEllipse(canvas.StyledEllipse{Style: shape, Center: c.view.Point, Radius: geom.Pt(r, r)})
}

// ConnectionControl draws a connection in graph space.
type ConnectionControl struct {
	ui.BaseControl
	view view.ConnectionView
}

func (c ConnectionControl) ID() identity.ID { return c.view.ID() }
func (c ConnectionControl) View() view.View { return c.view }

func (c ConnectionControl) UpdateView(v view.View) ui.Control {
	c.view = v.(view.ConnectionView)
	return c
}

// Draw runs the curve from the destination socket, which sits on an output
// edge, to the source socket on an input edge.
func (c ConnectionControl) Draw(cv canvas.Canvas) canvas.Canvas {
	l := c.view.Line
	return cv.DrawBezier(canvas.StyledBezier{Pen: c.view.Style.Pen, Curve: geom.Connector(l.B, l.A)})
}

package ui

import (
	"testing"

	"github.com/dd0wney/peacock/pkg/canvas"
	"github.com/dd0wney/peacock/pkg/geom"
	"github.com/dd0wney/peacock/pkg/identity"
	"github.com/dd0wney/peacock/pkg/input"
	"github.com/dd0wney/peacock/pkg/model"
	"github.com/dd0wney/peacock/pkg/view"
)

// stub is a control for any view variant. It logs the input it sees and
// draws its name as text.
type stub struct {
	BaseControl
	v    view.View
	mark int
	log  *[]string
	dup  bool
}

func name(v view.View) string {
	switch v := v.(type) {
	case view.GraphView:
		return "graph"
	case view.NodeView:
		return v.Node.Label
	case view.SlotView:
		return "slot:" + v.Slot.Label
	case view.SocketView:
		return "socket"
	case view.ConnectionView:
		return "connection"
	}
	panic("unknown view")
}

func (s stub) ID() identity.ID { return s.v.ID() }
func (s stub) View() view.View { return s.v }

func (s stub) UpdateView(v view.View) Control {
	s.v = v
	return s
}

func (s stub) Frame() geom.Rect {
	switch v := s.v.(type) {
	case view.NodeView:
		return v.Rect
	case view.SlotView:
		return v.Rect
	}
	return geom.Rect{}
}

func (s stub) Draw(cv canvas.Canvas) canvas.Canvas {
	return cv.DrawText(canvas.StyledText{Text: name(s.v)})
}

func (s stub) Children(f Factory) []Control {
	switch v := s.v.(type) {
	case view.GraphView:
		return append(CreateAll(f, s, v.Nodes), CreateAll(f, s, v.Connections)...)
	case view.NodeView:
		out := CreateAll(f, s, v.AllSlots())
		if s.dup {
			out = append(out, out[0])
		}
		return out
	case view.SlotView:
		return CreateAll(f, s, v.Sockets())
	}
	return nil
}

func (s stub) DefaultBehaviors() []Behavior {
	if _, ok := s.v.(view.NodeView); ok {
		return []Behavior{counter{BehaviorBase: NewBehaviorBase(s.ID()), log: s.log}}
	}
	return nil
}

func (s stub) Process(_ Element, _ input.Event, u *Updates) *Updates {
	*s.log = append(*s.log, "control:"+name(s.v))
	return u
}

// counter counts the events its node has seen.
type counter struct {
	BehaviorBase
	n   int
	log *[]string
}

func (c counter) Draw(_ Element, cv canvas.Canvas) canvas.Canvas {
	return cv.DrawText(canvas.StyledText{Text: "overlay"})
}

func (c counter) Process(el Element, _ input.Event, u *Updates) *Updates {
	*c.log = append(*c.log, "behavior:"+name(el.Control().View()))
	return UpdateBehaviorAs(u, c, func(c counter) counter {
		c.n++
		return c
	})
}

type stubFactory struct {
	log *[]string
	dup bool
}

func newStubFactory() stubFactory {
	return stubFactory{log: new([]string)}
}

func (f stubFactory) Create(_ Control, v view.View) Control {
	return stub{v: v, log: f.log, dup: f.dup}
}

func (f stubFactory) Root(g model.Graph) (Control, error) {
	gv, err := view.Resolve(g, view.DefaultDimensions, view.DefaultTheme())
	if err != nil {
		return nil, err
	}
	return f.Create(nil, gv), nil
}

// twoNodes returns a graph with an output node A at (10, 20) and an input
// node B at (300, 0), each 100x45 with one body slot.
func twoNodes(t *testing.T) (model.Graph, model.Socket, model.Socket) {
	t.Helper()
	out := model.NewSocket("Number", false)
	in := model.NewSocket("Number", true)
	a, err := model.NewNode("A", model.OperatorSet, model.NewSlot("A", "A", true, nil, nil),
		[]model.Slot{model.NewSlot("X", "Number", false, nil, &out)}, geom.R(10, 20, 100, 45))
	if err != nil {
		t.Fatal(err)
	}
	b, err := model.NewNode("B", model.OperatorSet, model.NewSlot("B", "B", true, nil, nil),
		[]model.Slot{model.NewSlot("Y", "Number", false, &in, nil)}, geom.R(300, 0, 100, 45))
	if err != nil {
		t.Fatal(err)
	}
	g, err := model.NewGraph([]model.Node{a, b}, []model.Connection{model.NewConnection(in.ID(), out.ID())})
	if err != nil {
		t.Fatal(err)
	}
	return g, out, in
}

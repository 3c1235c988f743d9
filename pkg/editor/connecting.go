package editor

import (
	"fmt"

	"github.com/dd0wney/peacock/pkg/canvas"
	"github.com/dd0wney/peacock/pkg/geom"
	"github.com/dd0wney/peacock/pkg/identity"
	"github.com/dd0wney/peacock/pkg/input"
	"github.com/dd0wney/peacock/pkg/model"
	"github.com/dd0wney/peacock/pkg/semantics"
	"github.com/dd0wney/peacock/pkg/ui"
	"github.com/dd0wney/peacock/pkg/view"
)

// ConnectState is Idle or Connecting.
type ConnectState interface {
	isConnectState()
}

// Connecting follows a connection being dragged out of Source. When
// StartingFromSource is set the line is anchored at Source, otherwise at
// the pointer.
type Connecting struct {
	Source             view.SocketView
	Current            geom.Point
	StartingFromSource bool
}

func (Idle) isConnectState()       {}
func (Connecting) isConnectState() {}

// ConnectingBehavior lives on the graph control and creates connections
// between compatible sockets.
type ConnectingBehavior struct {
	ui.BehaviorBase
	State     ConnectState
	HitRadius float64
	Semantics *semantics.Compatibility
	Pen       canvas.PenStyle
}

func NewConnectingBehavior(control identity.ID, f *Factory) ConnectingBehavior {
	return ConnectingBehavior{
		BehaviorBase: ui.NewBehaviorBase(control),
		State:        Idle{},
		HitRadius:    f.HitRadius,
		Semantics:    f.Semantics,
		Pen:          f.Theme.Connection.Pending,
	}
}

func (b ConnectingBehavior) Process(el ui.Element, in input.Event, u *ui.Updates) *ui.Updates {
	switch s := b.State.(type) {
	case Idle:
		if _, ok := in.(input.MouseDown); !ok {
			return u
		}
		p := in.Mouse().Location
		hit, ok := socketAt(el, p, b.HitRadius, nil)
		if !ok {
			return u
		}
		src := hit.view()
		return b.become(u, Connecting{Source: src, Current: p, StartingFromSource: !src.Socket.LeftOrRight})
	case Connecting:
		switch in.(type) {
		case input.MouseMove:
			if !in.Mouse().LeftDown {
				return b.become(b.highlight(el, u, s, false), Idle{})
			}
			s.Current = in.Mouse().Location
			return b.become(b.highlight(el, u, s, true), s)
		case input.MouseUp:
			s.Current = in.Mouse().Location
			u = b.highlight(el, u, s, false)
			if dst, ok := b.destination(el, s); ok {
				c := Orient(s.Source.Socket, dst.view().Socket)
				g := el.Control().View().(view.GraphView).Graph
				u = ui.UpdateModelAs(u, g, func(g model.Graph) model.Graph {
					return g.WithConnection(c)
				})
			}
			return b.become(u, Idle{})
		}
		return u
	default:
		panic(fmt.Sprintf("editor: unknown connect state %T", s))
	}
}

// destination returns the first socket near the pointer that the source
// may connect to.
func (b ConnectingBehavior) destination(el ui.Element, s Connecting) (socketHit, bool) {
	return socketAt(el, s.Current, b.HitRadius, func(d view.SocketView) bool {
		return b.Semantics.CanConnectSockets(s.Source.Socket, d.Socket)
	})
}

// highlight registers control updates so that only the current destination
// is highlighted, or none when on is false.
func (b ConnectingBehavior) highlight(el ui.Element, u *ui.Updates, s Connecting, on bool) *ui.Updates {
	var target identity.ID
	if on {
		if dst, ok := b.destination(el, s); ok {
			target = dst.view().ID()
		}
	}
	for _, h := range socketsBelow(el) {
		want := on && h.control.ID() == target
		if h.control.Highlighted == want {
			continue
		}
		u = ui.UpdateControlAs(u, h.control, func(c SocketControl) SocketControl {
			return c.WithHighlight(want)
		})
	}
	return u
}

func (b ConnectingBehavior) become(u *ui.Updates, s ConnectState) *ui.Updates {
	return ui.UpdateBehaviorAs(u, b, func(b ConnectingBehavior) ConnectingBehavior {
		b.State = s
		return b
	})
}

// Draw overlays the pending connection while connecting.
func (b ConnectingBehavior) Draw(el ui.Element, cv canvas.Canvas) canvas.Canvas {
	s, ok := b.State.(Connecting)
	if !ok {
		return cv
	}
	src, ok := el.Tree().Lookup(s.Source.ID())
	if !ok {
		return cv
	}
	anchor := el.ToLocal(src.ToAbsolute(s.Source.Point))
	free := el.ToLocal(s.Current)
	curve := geom.Connector(free, anchor)
	if s.StartingFromSource {
		curve = geom.Connector(anchor, free)
	}
	return cv.DrawBezier(canvas.StyledBezier{Pen: b.Pen, Curve: curve})
}

// Orient returns a connection between a and b whose source is the socket
// with LeftOrRight set.
func Orient(a, b model.Socket) model.Connection {
	if a.LeftOrRight {
		return model.NewConnection(a.ID(), b.ID())
	}
	return model.NewConnection(b.ID(), a.ID())
}

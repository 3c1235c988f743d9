package editor

import (
	"fmt"

	"github.com/dd0wney/peacock/pkg/canvas"
	"github.com/dd0wney/peacock/pkg/geom"
	"github.com/dd0wney/peacock/pkg/identity"
	"github.com/dd0wney/peacock/pkg/input"
	"github.com/dd0wney/peacock/pkg/model"
	"github.com/dd0wney/peacock/pkg/ui"
	"github.com/dd0wney/peacock/pkg/view"
)

// DragState is Idle or Dragging.
type DragState interface {
	isDragState()
}

// Idle is the resting state of both editor behaviors.
type Idle struct{}

// Dragging records where the node was and where the pointer went down.
type Dragging struct {
	Origin     geom.Rect
	MouseStart geom.Point
}

func (Idle) isDragState()     {}
func (Dragging) isDragState() {}

// DraggingBehavior moves a node with the pointer. Presses on one of the
// node's sockets are left to the connecting behavior.
type DraggingBehavior struct {
	ui.BehaviorBase
	State     DragState
	HitRadius float64
}

func NewDraggingBehavior(control identity.ID, hitRadius float64) DraggingBehavior {
	return DraggingBehavior{
		BehaviorBase: ui.NewBehaviorBase(control),
		State:        Idle{},
		HitRadius:    hitRadius,
	}
}

func (b DraggingBehavior) Process(el ui.Element, in input.Event, u *ui.Updates) *ui.Updates {
	switch s := b.State.(type) {
	case Idle:
		down, ok := in.(input.MouseDown)
		if !ok {
			return u
		}
		p := down.Mouse().Location
		if !el.Absolute().Contains(p) {
			return u
		}
		if _, onSocket := socketAt(el, p, b.HitRadius, nil); onSocket {
			return u
		}
		nv := el.Control().View().(view.NodeView)
		return b.become(u, Dragging{Origin: nv.Node.Rect, MouseStart: p})
	case Dragging:
		switch in.(type) {
		case input.MouseMove:
			node := el.Control().View().(view.NodeView).Node
			to := s.Origin.TopLeft().Add(in.Mouse().Location.Sub(s.MouseStart))
			return ui.UpdateModelAs(u, node, func(n model.Node) model.Node {
				return n.MoveTo(to)
			})
		case input.MouseUp:
			return b.become(u, Idle{})
		}
		return u
	default:
		panic(fmt.Sprintf("editor: unknown drag state %T", s))
	}
}

func (b DraggingBehavior) become(u *ui.Updates, s DragState) *ui.Updates {
	return ui.UpdateBehaviorAs(u, b, func(b DraggingBehavior) DraggingBehavior {
		b.State = s
		return b
	})
}

func (b DraggingBehavior) Draw(_ ui.Element, cv canvas.Canvas) canvas.Canvas {
	return cv
}

package view

import (
	"errors"
	"fmt"

	"github.com/dd0wney/peacock/pkg/geom"
	"github.com/dd0wney/peacock/pkg/identity"
	"github.com/dd0wney/peacock/pkg/model"
)

// ErrUnresolvedSocket is returned when a connection names a socket that no
// node view places.
var ErrUnresolvedSocket = errors.New("connection endpoint has no socket view")

// Dimensions are the layout constants used to place slots and sockets.
type Dimensions struct {
	HeaderHeight float64
	SlotHeight   float64
	SocketRadius float64
}

// DefaultDimensions matches model.DefaultPlacement.
var DefaultDimensions = Dimensions{
	HeaderHeight: 25,
	SlotHeight:   20,
	SocketRadius: 6,
}

// Resolve lays out every node of g and resolves each connection's endpoints.
// Node rectangles come from the model; slots stack below a header row and
// sockets sit on the left or right edge of their slot.
func Resolve(g model.Graph, d Dimensions, t Theme) (GraphView, error) {
	gv := GraphView{Graph: g, Style: t.GraphStyle()}
	for _, n := range g.Nodes {
		gv.Nodes = append(gv.Nodes, ResolveNode(n, d, t))
	}
	for _, c := range g.Connections {
		a, ok := gv.SocketCenter(c.SourceID)
		if !ok {
			return GraphView{}, fmt.Errorf("resolve connection %s source %s: %w", c.ID(), c.SourceID, ErrUnresolvedSocket)
		}
		b, ok := gv.SocketCenter(c.DestinationID)
		if !ok {
			return GraphView{}, fmt.Errorf("resolve connection %s destination %s: %w", c.ID(), c.DestinationID, ErrUnresolvedSocket)
		}
		gv.Connections = append(gv.Connections, ConnectionView{
			Connection: c,
			Line:       geom.Line{A: a, B: b},
			Style:      t.Connection,
		})
	}
	return gv.Apply(markConnected(gv.Connections)).(GraphView), nil
}

// markConnected flags the sockets at either end of conns.
func markConnected(conns []ConnectionView) func(View) View {
	ends := make(map[identity.ID]bool, 2*len(conns))
	for _, c := range conns {
		ends[c.Connection.SourceID] = true
		ends[c.Connection.DestinationID] = true
	}
	return func(v View) View {
		if s, ok := v.(SocketView); ok {
			s.Connected = ends[s.ID()]
			return s
		}
		return v
	}
}

// ResolveNode lays out a single node.
func ResolveNode(n model.Node, d Dimensions, t Theme) NodeView {
	w := n.Rect.Width
	nv := NodeView{
		Node:   n,
		Rect:   n.Rect,
		Style:  t.NodeStyle(n.Kind),
		Header: resolveSlot(n.Header, geom.R(0, 0, w, d.HeaderHeight), d, t),
	}
	for i, s := range n.Slots {
		r := geom.R(0, d.HeaderHeight+float64(i)*d.SlotHeight, w, d.SlotHeight)
		nv.Slots = append(nv.Slots, resolveSlot(s, r, d, t))
	}
	return nv
}

func resolveSlot(s model.Slot, r geom.Rect, d Dimensions, t Theme) SlotView {
	sv := SlotView{Slot: s, Rect: r, Style: t.SlotStyle(d.SocketRadius)}
	local := geom.RectAt(geom.Point{}, r.Size())
	if s.Left != nil {
		sv.Left = &SocketView{Socket: *s.Left, Point: local.LeftCenter(), Style: t.SocketStyle(s.Left.Type, d.SocketRadius)}
	}
	if s.Right != nil {
		sv.Right = &SocketView{Socket: *s.Right, Point: local.RightCenter(), Style: t.SocketStyle(s.Right.Type, d.SocketRadius)}
	}
	return sv
}

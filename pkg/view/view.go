// Package view projects model objects into read-only views carrying their
// resolved style and geometry. Views are recomputed, never mutated, and a
// view's identity is its model's identity.
package view

import (
	"fmt"

	"github.com/dd0wney/peacock/pkg/geom"
	"github.com/dd0wney/peacock/pkg/identity"
	"github.com/dd0wney/peacock/pkg/model"
)

// View is implemented by GraphView, NodeView, SlotView, SocketView and
// ConnectionView.
type View interface {
	identity.Identified
	// Apply rewrites the view's children and then the view itself with f,
	// returning a new tree.
	Apply(f func(View) View) View
	isView()
}

// GraphView is the root view. Node rectangles are in graph coordinates.
type GraphView struct {
	Graph       model.Graph
	Style       GraphStyle
	Nodes       []NodeView
	Connections []ConnectionView
}

// NodeView places a node. Rect is in graph coordinates; Header and Slots
// are positioned relative to Rect.
type NodeView struct {
	Node   model.Node
	Rect   geom.Rect
	Style  NodeStyle
	Header SlotView
	Slots  []SlotView
}

// SlotView places a slot relative to its node. Its sockets are positioned
// relative to the slot.
type SlotView struct {
	Slot  model.Slot
	Rect  geom.Rect
	Style SlotStyle
	Left  *SocketView
	Right *SocketView
}

// SocketView places a socket's center relative to its slot. Connected is
// set when a connection of the graph ends at the socket.
type SocketView struct {
	Socket    model.Socket
	Point     geom.Point
	Style     SocketStyle
	Connected bool
}

// ConnectionView holds a connection and its endpoints in graph coordinates,
// Line.A at the source socket and Line.B at the destination.
type ConnectionView struct {
	Connection model.Connection
	Line       geom.Line
	Style      ConnectionStyle
}

func (v GraphView) ID() identity.ID      { return v.Graph.ID() }
func (v NodeView) ID() identity.ID       { return v.Node.ID() }
func (v SlotView) ID() identity.ID       { return v.Slot.ID() }
func (v SocketView) ID() identity.ID     { return v.Socket.ID() }
func (v ConnectionView) ID() identity.ID { return v.Connection.ID() }

func (GraphView) isView()      {}
func (NodeView) isView()       {}
func (SlotView) isView()       {}
func (SocketView) isView()     {}
func (ConnectionView) isView() {}

func (v GraphView) Apply(f func(View) View) View {
	nodes := make([]NodeView, len(v.Nodes))
	for i, n := range v.Nodes {
		nodes[i] = same(n, n.Apply(f))
	}
	conns := make([]ConnectionView, len(v.Connections))
	for i, c := range v.Connections {
		conns[i] = same(c, c.Apply(f))
	}
	v.Nodes = nodes
	v.Connections = conns
	return f(v)
}

func (v NodeView) Apply(f func(View) View) View {
	v.Header = same(v.Header, v.Header.Apply(f))
	slots := make([]SlotView, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = same(s, s.Apply(f))
	}
	v.Slots = slots
	return f(v)
}

func (v SlotView) Apply(f func(View) View) View {
	if v.Left != nil {
		left := same(*v.Left, v.Left.Apply(f))
		v.Left = &left
	}
	if v.Right != nil {
		right := same(*v.Right, v.Right.Apply(f))
		v.Right = &right
	}
	return f(v)
}

func (v SocketView) Apply(f func(View) View) View {
	return f(v)
}

func (v ConnectionView) Apply(f func(View) View) View {
	return f(v)
}

// same asserts that a rewrite kept the variant and identity of a child.
func same[T View](orig T, got View) T {
	out, ok := got.(T)
	if !ok || out.ID() != orig.ID() {
		panic(fmt.Sprintf("view: Apply replaced %T %s with %T", orig, orig.ID(), got))
	}
	return out
}

// AllSlots returns the header followed by the body slots.
func (v NodeView) AllSlots() []SlotView {
	out := make([]SlotView, 0, len(v.Slots)+1)
	out = append(out, v.Header)
	return append(out, v.Slots...)
}

// Sockets returns the slot's socket views, left first.
func (v SlotView) Sockets() []SocketView {
	var out []SocketView
	if v.Left != nil {
		out = append(out, *v.Left)
	}
	if v.Right != nil {
		out = append(out, *v.Right)
	}
	return out
}

// Node returns the node view with the given id.
func (v GraphView) Node(id identity.ID) (NodeView, bool) {
	for _, n := range v.Nodes {
		if n.ID() == id {
			return n, true
		}
	}
	return NodeView{}, false
}

// SocketCenter returns the center of a socket in graph coordinates.
func (v GraphView) SocketCenter(id identity.ID) (geom.Point, bool) {
	for _, n := range v.Nodes {
		for _, s := range n.AllSlots() {
			for _, sock := range s.Sockets() {
				if sock.ID() == id {
					return n.Rect.TopLeft().Add(s.Rect.TopLeft()).Add(sock.Point), true
				}
			}
		}
	}
	return geom.Point{}, false
}

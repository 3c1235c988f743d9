// Package model defines the node-graph domain model edited by the UI:
// sockets, slots, nodes, connections and the graph that owns them.
//
// Every value carries an identity.ID fixed at construction. Values are
// immutable by convention; the With* and MoveTo helpers return copies that
// keep the original ID.
package model

import (
	"github.com/dd0wney/peacock/pkg/geom"
	"github.com/dd0wney/peacock/pkg/identity"
)

// Object is any model value. The set of implementations is closed:
// Socket, Slot, Node, Connection and Graph.
type Object interface {
	identity.Identified
	isObject()
}

// NodeKind classifies a node.
type NodeKind int

const (
	PropertySet NodeKind = iota
	OperatorSet
	Input
	Output
)

func (k NodeKind) String() string {
	switch k {
	case PropertySet:
		return "PropertySet"
	case OperatorSet:
		return "OperatorSet"
	case Input:
		return "Input"
	case Output:
		return "Output"
	default:
		return "Unknown"
	}
}

// Socket is a typed connection point. LeftOrRight is true for a socket on
// the left side of its slot and doubles as its polarity.
type Socket struct {
	id          identity.ID
	Type        string
	LeftOrRight bool
}

// NewSocket creates a socket with a fresh ID.
func NewSocket(typ string, leftOrRight bool) Socket {
	return Socket{id: identity.New(), Type: typ, LeftOrRight: leftOrRight}
}

func (s Socket) ID() identity.ID { return s.id }

// Slot is a labeled row of a node with up to two sockets.
type Slot struct {
	id       identity.ID
	Label    string
	Type     string
	IsHeader bool
	Left     *Socket
	Right    *Socket
}

// NewSlot creates a slot with a fresh ID. Nil sockets are absent.
func NewSlot(label, typ string, isHeader bool, left, right *Socket) Slot {
	return Slot{id: identity.New(), Label: label, Type: typ, IsHeader: isHeader, Left: left, Right: right}
}

func (s Slot) ID() identity.ID { return s.id }

// Sockets returns the slot's sockets, left first.
func (s Slot) Sockets() []Socket {
	var out []Socket
	if s.Left != nil {
		out = append(out, *s.Left)
	}
	if s.Right != nil {
		out = append(out, *s.Right)
	}
	return out
}

// Node is a titled box made of a header slot and an ordered list of slots.
// Rect is the node's bounds in graph coordinates.
type Node struct {
	id     identity.ID
	Label  string
	Kind   NodeKind
	Header Slot
	Slots  []Slot
	Rect   geom.Rect
}

// NewNode creates a node with a fresh ID. The kind is derived from the
// slots' sockets; a node without any socket on either side is rejected.
func NewNode(label string, declared NodeKind, header Slot, slots []Slot, rect geom.Rect) (Node, error) {
	kind, err := DeriveKind(declared, slots)
	if err != nil {
		return Node{}, NewError("NewNode").Node(label).Cause(err).Build()
	}
	return Node{
		id:     identity.New(),
		Label:  label,
		Kind:   kind,
		Header: header,
		Slots:  append([]Slot(nil), slots...),
		Rect:   rect,
	}, nil
}

func (n Node) ID() identity.ID { return n.id }

// MoveTo returns a copy of n with its top-left corner at p.
func (n Node) MoveTo(p geom.Point) Node {
	n.Rect = n.Rect.MoveTo(p)
	return n
}

// AllSlots returns the header followed by the body slots.
func (n Node) AllSlots() []Slot {
	out := make([]Slot, 0, len(n.Slots)+1)
	out = append(out, n.Header)
	return append(out, n.Slots...)
}

// Sockets returns every socket of the node, header first.
func (n Node) Sockets() []Socket {
	var out []Socket
	for _, s := range n.AllSlots() {
		out = append(out, s.Sockets()...)
	}
	return out
}

// DeriveKind classifies a node from its slots: no left socket makes it an
// Output, no right socket an Input, otherwise the declared kind stands.
func DeriveKind(declared NodeKind, slots []Slot) (NodeKind, error) {
	hasLeft, hasRight := false, false
	for _, s := range slots {
		hasLeft = hasLeft || s.Left != nil
		hasRight = hasRight || s.Right != nil
	}
	switch {
	case !hasLeft && !hasRight:
		return declared, ErrDegenerateNode
	case !hasLeft:
		return Output, nil
	case !hasRight:
		return Input, nil
	default:
		return declared, nil
	}
}

// Connection is a directed edge between two sockets.
type Connection struct {
	id            identity.ID
	SourceID      identity.ID
	DestinationID identity.ID
}

// NewConnection creates a connection with a fresh ID.
func NewConnection(source, destination identity.ID) Connection {
	return Connection{id: identity.New(), SourceID: source, DestinationID: destination}
}

func (c Connection) ID() identity.ID { return c.id }

func (Socket) isObject()     {}
func (Slot) isObject()       {}
func (Node) isObject()       {}
func (Connection) isObject() {}
func (Graph) isObject()      {}

package model

import (
	"errors"

	"github.com/dd0wney/peacock/pkg/identity"
)

// Graph is the root of the model: a set of nodes and the connections
// between their sockets. It is never mutated in place.
type Graph struct {
	id          identity.ID
	Nodes       []Node
	Connections []Connection
}

// NewGraph creates a graph and verifies that every connection endpoint
// resolves to a socket of one of the nodes. A dangling endpoint is a
// construction error.
func NewGraph(nodes []Node, connections []Connection) (Graph, error) {
	g := Graph{
		id:          identity.New(),
		Nodes:       append([]Node(nil), nodes...),
		Connections: append([]Connection(nil), connections...),
	}
	if err := g.Validate(); err != nil {
		return Graph{}, err
	}
	return g, nil
}

// MustGraph is like NewGraph but panics on error.
func MustGraph(nodes []Node, connections []Connection) Graph {
	g, err := NewGraph(nodes, connections)
	if err != nil {
		panic(err)
	}
	return g
}

func (g Graph) ID() identity.ID { return g.id }

// Validate checks id uniqueness and that every connection endpoint
// resolves to a socket.
func (g Graph) Validate() error {
	store, err := identity.Collect(g.objects()...)
	if err != nil {
		var dup *identity.DuplicateError
		if errors.As(err, &dup) {
			return NewError("Validate").Object(dup.ID).Cause(ErrDuplicateID).Build()
		}
		return NewError("Validate").Cause(err).Build()
	}
	for _, c := range g.Connections {
		if !isSocket(store, c.SourceID) {
			return NewError("Validate").Connection(c.ID()).Cause(ErrDanglingConnection).
				Context("source " + c.SourceID.String()).Build()
		}
		if !isSocket(store, c.DestinationID) {
			return NewError("Validate").Connection(c.ID()).Cause(ErrDanglingConnection).
				Context("destination " + c.DestinationID.String()).Build()
		}
	}
	return nil
}

func isSocket(store identity.Store[Object], id identity.ID) bool {
	o, ok := store.Get(id)
	if !ok {
		return false
	}
	_, ok = o.(Socket)
	return ok
}

// Objects returns a store over every object reachable from the graph,
// including the graph itself.
func (g Graph) Objects() identity.Store[Object] {
	return identity.NewStore(append([]Object{g}, g.objects()...)...)
}

// objects lists the nodes with their slots and sockets, then the
// connections.
func (g Graph) objects() []Object {
	var objs []Object
	for _, n := range g.Nodes {
		objs = append(objs, n)
		for _, s := range n.AllSlots() {
			objs = append(objs, s)
			for _, sock := range s.Sockets() {
				objs = append(objs, sock)
			}
		}
	}
	for _, c := range g.Connections {
		objs = append(objs, c)
	}
	return objs
}

// Socket looks up a socket by id.
func (g Graph) Socket(id identity.ID) (Socket, bool) {
	o, ok := g.Objects().Get(id)
	if !ok {
		return Socket{}, false
	}
	s, ok := o.(Socket)
	return s, ok
}

// Node looks up a node by id.
func (g Graph) Node(id identity.ID) (Node, bool) {
	o, ok := g.Objects().Get(id)
	if !ok {
		return Node{}, false
	}
	n, ok := o.(Node)
	return n, ok
}

// NodeOfSocket returns the node owning the given socket.
func (g Graph) NodeOfSocket(id identity.ID) (Node, bool) {
	for _, n := range g.Nodes {
		for _, s := range n.Sockets() {
			if s.ID() == id {
				return n, true
			}
		}
	}
	return Node{}, false
}

// WithConnection returns a copy of g with c appended.
func (g Graph) WithConnection(c Connection) Graph {
	g.Connections = append(append([]Connection(nil), g.Connections...), c)
	return g
}

// WithNode returns a copy of g with n added, or replaced if its id exists.
func (g Graph) WithNode(n Node) Graph {
	nodes := make([]Node, 0, len(g.Nodes)+1)
	replaced := false
	for _, cur := range g.Nodes {
		if cur.ID() == n.ID() {
			nodes = append(nodes, n)
			replaced = true
			continue
		}
		nodes = append(nodes, cur)
	}
	if !replaced {
		nodes = append(nodes, n)
	}
	g.Nodes = nodes
	return g
}

// Rewriter maps a model object to its replacement. It must return the same
// variant it was given.
type Rewriter func(Object) (Object, error)

// Rewrite applies f to every object of g bottom-up: sockets, then slots,
// then nodes, then connections, then the graph itself. Objects f fails on
// keep the value f returned alongside the error; the errors are joined and
// the remaining objects are still rewritten.
func Rewrite(g Graph, f Rewriter) (Graph, error) {
	var errs []error
	apply := func(o Object) Object {
		out, err := f(o)
		if err != nil {
			errs = append(errs, err)
		}
		if out == nil {
			return o
		}
		return out
	}

	nodes := make([]Node, len(g.Nodes))
	for i, n := range g.Nodes {
		n.Header = rewriteSlot(n.Header, apply, &errs)
		slots := make([]Slot, len(n.Slots))
		for j, s := range n.Slots {
			slots[j] = rewriteSlot(s, apply, &errs)
		}
		n.Slots = slots
		nodes[i] = expect(n, apply(n), &errs)
	}
	conns := make([]Connection, len(g.Connections))
	for i, c := range g.Connections {
		conns[i] = expect(c, apply(c), &errs)
	}
	g.Nodes = nodes
	g.Connections = conns
	g = expect(g, apply(g), &errs)
	return g, errors.Join(errs...)
}

func rewriteSlot(s Slot, apply func(Object) Object, errs *[]error) Slot {
	if s.Left != nil {
		left := expect(*s.Left, apply(*s.Left), errs)
		s.Left = &left
	}
	if s.Right != nil {
		right := expect(*s.Right, apply(*s.Right), errs)
		s.Right = &right
	}
	return expect(s, apply(s), errs)
}

// expect asserts that a rewritten object kept its variant and identity.
func expect[T Object](orig T, got Object, errs *[]error) T {
	out, ok := got.(T)
	if !ok || out.ID() != orig.ID() {
		*errs = append(*errs, NewError("Rewrite").Object(orig.ID()).Cause(ErrVariantChanged).Build())
		return orig
	}
	return out
}

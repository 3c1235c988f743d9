package ui

import (
	"fmt"

	"github.com/dd0wney/peacock/pkg/geom"
	"github.com/dd0wney/peacock/pkg/identity"
)

type entry struct {
	control  Control
	parent   int
	children []int
	origin   geom.Point // absolute origin of the control's coordinate space
	frame    geom.Rect  // absolute frame; empty when the control owns none
}

// Tree is a flattened control tree. Entries are stored in depth-first
// pre-order, so index 0 is the root.
type Tree struct {
	entries []entry
	index   map[identity.ID]int
}

// Len returns the number of controls.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Root returns the root element. It panics on an empty tree.
func (t *Tree) Root() Element {
	if t.Len() == 0 {
		panic("ui: Root of empty tree")
	}
	return Element{t: t, i: 0}
}

// Lookup returns the element for a control id.
func (t *Tree) Lookup(id identity.ID) (Element, bool) {
	if t == nil {
		return Element{}, false
	}
	i, ok := t.index[id]
	if !ok {
		return Element{}, false
	}
	return Element{t: t, i: i}, true
}

// Control returns the control with the given id.
func (t *Tree) Control(id identity.ID) (Control, bool) {
	el, ok := t.Lookup(id)
	if !ok {
		return nil, false
	}
	return el.Control(), true
}

// Contains reports whether a control id is in the tree.
func (t *Tree) Contains(id identity.ID) bool {
	_, ok := t.Lookup(id)
	return ok
}

// Elements returns every element in depth-first pre-order.
func (t *Tree) Elements() []Element {
	out := make([]Element, t.Len())
	for i := range out {
		out[i] = Element{t: t, i: i}
	}
	return out
}

// withControls returns a copy of t with f applied to every control. f must
// keep ids.
func (t *Tree) withControls(f func(Control) Control) *Tree {
	if t == nil {
		return nil
	}
	out := &Tree{entries: make([]entry, len(t.entries)), index: t.index}
	copy(out.entries, t.entries)
	for i := range out.entries {
		out.entries[i].control = f(out.entries[i].control)
	}
	return out
}

// Element is a handle on one control within a tree.
type Element struct {
	t *Tree
	i int
}

func (e Element) Valid() bool { return e.t != nil && e.i < len(e.t.entries) }

func (e Element) ID() identity.ID  { return e.Control().ID() }
func (e Element) Control() Control { return e.t.entries[e.i].control }
func (e Element) Tree() *Tree      { return e.t }

// Origin is the absolute position of the control's local (0, 0).
func (e Element) Origin() geom.Point { return e.t.entries[e.i].origin }

// Absolute is the control's frame in absolute coordinates. It is empty,
// positioned at Origin, for controls without a frame.
func (e Element) Absolute() geom.Rect { return e.t.entries[e.i].frame }

// ToLocal converts an absolute point to the control's coordinate space.
func (e Element) ToLocal(p geom.Point) geom.Point { return p.Sub(e.Origin()) }

// ToAbsolute converts a point in the control's space to absolute
// coordinates.
func (e Element) ToAbsolute(p geom.Point) geom.Point { return p.Add(e.Origin()) }

// Parent returns the parent element; the root has none.
func (e Element) Parent() (Element, bool) {
	p := e.t.entries[e.i].parent
	if p < 0 {
		return Element{}, false
	}
	return Element{t: e.t, i: p}, true
}

func (e Element) Children() []Element {
	idx := e.t.entries[e.i].children
	out := make([]Element, len(idx))
	for k, i := range idx {
		out[k] = Element{t: e.t, i: i}
	}
	return out
}

// Descendants returns every element below e in pre-order.
func (e Element) Descendants() []Element {
	var out []Element
	stack := []int{e.i}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if i != e.i {
			out = append(out, Element{t: e.t, i: i})
		}
		ch := e.t.entries[i].children
		for k := len(ch) - 1; k >= 0; k-- {
			stack = append(stack, ch[k])
		}
	}
	return out
}

// Reconcile builds the tree for root, merging it with old by id: a
// generated control whose id is in old is replaced by the old control
// showing the new view, so control state survives the rebuild. Children are
// generated from the merged control. Ids missing from the new tree are
// dropped. old may be nil.
func Reconcile(old *Tree, root Control, f Factory) (*Tree, error) {
	t := &Tree{index: make(map[identity.ID]int)}
	type pending struct {
		control Control
		parent  int
	}
	stack := []pending{{control: root, parent: -1}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c := p.control
		if prev, ok := old.Control(c.ID()); ok {
			c = prev.UpdateView(c.View())
		}
		id := c.ID()
		if _, dup := t.index[id]; dup {
			return nil, fmt.Errorf("reconcile %T %s: %w", c, id.Short(), ErrDuplicateID)
		}

		var base geom.Point
		if p.parent >= 0 {
			base = t.entries[p.parent].origin
		}
		e := entry{control: c, parent: p.parent, origin: base, frame: geom.RectAt(base, geom.Size{})}
		if fr := c.Frame(); !fr.IsEmpty() {
			e.frame = fr.Offset(base)
			e.origin = e.frame.TopLeft()
		}

		i := len(t.entries)
		t.entries = append(t.entries, e)
		t.index[id] = i
		if p.parent >= 0 {
			t.entries[p.parent].children = append(t.entries[p.parent].children, i)
		}

		children := c.Children(f)
		for k := len(children) - 1; k >= 0; k-- {
			stack = append(stack, pending{control: children[k], parent: i})
		}
	}
	return t, nil
}

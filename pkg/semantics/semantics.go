// Package semantics decides which sockets may be wired together.
package semantics

import (
	"sort"

	"github.com/dd0wney/peacock/pkg/model"
)

const (
	// Any connects to and from every type.
	Any = "Any"
	// Array accepts every type as a sink.
	Array = "Array"
)

// Pair is a two-way conversion between type names.
type Pair struct {
	A string `yaml:"a" toml:"a" validate:"required"`
	B string `yaml:"b" toml:"b" validate:"required"`
}

// DefaultConversions is the standard two-way conversion list.
var DefaultConversions = []Pair{
	{"Point 2D", "Vector 2D"},
	{"Point 2D", "Size 2D"},
	{"Size 2D", "Vector 2D"},
	{"Line", "Interval"},
	{"Line", "Rect"},
	{"Angle", "Number"},
	{"Integer", "Number"},
	{"Integer", "Angle"},
	{"Boolean", "Number"},
	{"Boolean", "Integer"},
}

// Compatibility is an immutable conversion graph over type names. Build one
// at start-up and pass it to whatever needs to check connections.
type Compatibility struct {
	convert map[string]map[string]struct{}
	pairs   []Pair
}

// New expands the two-way pairs into an adjacency map.
func New(pairs []Pair) *Compatibility {
	c := &Compatibility{
		convert: make(map[string]map[string]struct{}),
		pairs:   append([]Pair(nil), pairs...),
	}
	for _, p := range pairs {
		c.link(p.A, p.B)
		c.link(p.B, p.A)
	}
	return c
}

// Default returns the compatibility graph for DefaultConversions.
func Default() *Compatibility {
	return New(DefaultConversions)
}

// With returns a new graph with extra pairs added.
func (c *Compatibility) With(pairs ...Pair) *Compatibility {
	return New(append(append([]Pair(nil), c.pairs...), pairs...))
}

func (c *Compatibility) link(from, to string) {
	set, ok := c.convert[from]
	if !ok {
		set = make(map[string]struct{})
		c.convert[from] = set
	}
	set[to] = struct{}{}
}

// Pairs returns the conversion pairs the graph was built from.
func (c *Compatibility) Pairs() []Pair {
	return append([]Pair(nil), c.pairs...)
}

// Convertible returns the types from converts to, sorted.
func (c *Compatibility) Convertible(from string) []string {
	out := make([]string, 0, len(c.convert[from]))
	for t := range c.convert[from] {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// CanConnect reports whether a value of type from may flow into to.
func (c *Compatibility) CanConnect(from, to string) bool {
	if from == Any || to == Any {
		return true
	}
	if to == Array {
		return true
	}
	if from == to {
		return true
	}
	_, ok := c.convert[from][to]
	return ok
}

// CanConnectSockets requires complementary polarity, exactly one of the
// two sockets on the left, and compatible types from source to dest.
func (c *Compatibility) CanConnectSockets(source, dest model.Socket) bool {
	return source.LeftOrRight != dest.LeftOrRight && c.CanConnect(source.Type, dest.Type)
}

package model

import (
	_ "embed"
	"strings"

	"github.com/dd0wney/peacock/pkg/geom"
)

// Library is a sample node library in the text format read by ParseGraph.
//
//go:embed library.txt
var Library string

// Placement controls the simple left-to-right layout applied to parsed
// nodes: nodes are placed in a row and wrap after Columns nodes.
type Placement struct {
	Origin       geom.Point
	NodeWidth    float64
	HeaderHeight float64
	SlotHeight   float64
	Spacing      float64
	Columns      int
}

// DefaultPlacement mirrors the default layout dimensions.
var DefaultPlacement = Placement{
	Origin:       geom.Pt(20, 20),
	NodeWidth:    110,
	HeaderHeight: 25,
	SlotHeight:   20,
	Spacing:      40,
	Columns:      5,
}

// NodeHeight returns the height of a node with n body slots.
func (p Placement) NodeHeight(n int) float64 {
	return p.HeaderHeight + float64(n)*p.SlotHeight
}

// ParseGraph builds a graph without connections from the text format:
// nodes are separated by "--" lines, the first line of a block is the node
// label and each further line is a slot. A leading '*' gives the slot a left
// socket and a trailing '*' a right socket. "Name : Type" sets the slot
// type, which otherwise defaults to the node label. A first slot named
// "Value" becomes the header and makes the node a PropertySet.
func ParseGraph(text string, p Placement) (Graph, error) {
	var nodes []Node
	var block []string
	start := 1
	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		n, err := parseNode(block, start)
		block = nil
		if err != nil {
			return err
		}
		nodes = append(nodes, n)
		return nil
	}
	for i, l := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(l)
		switch {
		case strings.HasPrefix(trimmed, "--"):
			if err := flush(); err != nil {
				return Graph{}, err
			}
		case trimmed == "":
		default:
			if len(block) == 0 {
				start = i + 1
			}
			block = append(block, l)
		}
	}
	if err := flush(); err != nil {
		return Graph{}, err
	}
	return NewGraph(Place(nodes, p), nil)
}

func parseNode(lines []string, line int) (Node, error) {
	label := strings.TrimSpace(lines[0])
	if strings.HasPrefix(label, "*") || strings.HasSuffix(label, "*") {
		return Node{}, NewError("ParseGraph").Line(line).Cause(ErrParse).Context("node label missing").Build()
	}
	kind := OperatorSet
	header := NewSlot(label, label, true, nil, nil)
	body := lines[1:]
	if len(body) > 0 {
		if first := parseSlot(body[0], label); first.Label == "Value" {
			header = first
			header.IsHeader = true
			header.Label = label
			body = body[1:]
			kind = PropertySet
		}
	}

	slots := make([]Slot, 0, len(body))
	for _, l := range body {
		slots = append(slots, parseSlot(l, label))
	}
	n, err := NewNode(label, kind, header, slots, geom.Rect{})
	if err != nil {
		return Node{}, NewError("ParseGraph").Line(line).Cause(err).Build()
	}
	return n, nil
}

func parseSlot(s, nodeLabel string) Slot {
	s = strings.TrimSpace(s)
	hasLeft := strings.HasPrefix(s, "*")
	hasRight := strings.HasSuffix(s, "*")
	s = strings.TrimSpace(strings.Trim(s, "* "))

	name, typ := s, nodeLabel
	if i := strings.Index(s, ":"); i >= 0 {
		name = strings.TrimSpace(s[:i])
		typ = strings.TrimSpace(s[i+1:])
	}

	var left, right *Socket
	if hasLeft {
		sock := NewSocket(typ, true)
		left = &sock
	}
	if hasRight {
		sock := NewSocket(typ, false)
		right = &sock
	}
	return NewSlot(name, typ, false, left, right)
}

// Place assigns each node a rectangle, left to right, wrapping rows after
// p.Columns nodes.
func Place(nodes []Node, p Placement) []Node {
	cols := p.Columns
	if cols <= 0 {
		cols = len(nodes)
	}
	out := make([]Node, len(nodes))
	x, y, rowHeight := p.Origin.X, p.Origin.Y, 0.0
	for i, n := range nodes {
		if i > 0 && i%cols == 0 {
			x = p.Origin.X
			y += rowHeight + p.Spacing
			rowHeight = 0
		}
		h := p.NodeHeight(len(n.Slots))
		n.Rect = geom.R(x, y, p.NodeWidth, h)
		out[i] = n
		x += p.NodeWidth + p.Spacing
		if h > rowHeight {
			rowHeight = h
		}
	}
	return out
}

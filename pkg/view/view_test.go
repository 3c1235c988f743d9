package view

import (
	"errors"
	"testing"

	"github.com/dd0wney/peacock/pkg/geom"
	"github.com/dd0wney/peacock/pkg/identity"
	"github.com/dd0wney/peacock/pkg/model"
)

func connectedGraph(t *testing.T) (model.Graph, model.Socket, model.Socket) {
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

func TestResolveLayout(t *testing.T) {
	g, out, in := connectedGraph(t)
	gv, err := Resolve(g, DefaultDimensions, DefaultTheme())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if gv.ID() != g.ID() || len(gv.Nodes) != 2 || len(gv.Connections) != 1 {
		t.Fatalf("Resolve() = %d nodes, %d connections", len(gv.Nodes), len(gv.Connections))
	}

	a := gv.Nodes[0]
	if a.Rect != geom.R(10, 20, 100, 45) {
		t.Errorf("node rect = %+v", a.Rect)
	}
	if a.Header.Rect != geom.R(0, 0, 100, 25) {
		t.Errorf("header rect = %+v", a.Header.Rect)
	}
	if a.Slots[0].Rect != geom.R(0, 25, 100, 20) {
		t.Errorf("slot rect = %+v", a.Slots[0].Rect)
	}
	if a.Slots[0].Left != nil || a.Slots[0].Right == nil {
		t.Fatal("slot X should only have a right socket")
	}
	if a.Slots[0].Right.Point != geom.Pt(100, 10) {
		t.Errorf("right socket point = %+v", a.Slots[0].Right.Point)
	}

	tests := []struct {
		name string
		id   identity.ID
		want geom.Point
	}{
		{"output socket", out.ID(), geom.Pt(110, 55)},
		{"input socket", in.ID(), geom.Pt(300, 35)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := gv.SocketCenter(tt.id)
			if !ok || got != tt.want {
				t.Errorf("SocketCenter() = %+v, %v, want %+v", got, ok, tt.want)
			}
		})
	}

	line := gv.Connections[0].Line
	if line.A != geom.Pt(300, 35) || line.B != geom.Pt(110, 55) {
		t.Errorf("connection line = %+v", line)
	}
}

func TestResolveUnresolvedSocket(t *testing.T) {
	g, out, _ := connectedGraph(t)
	// Bypass NewGraph validation to reach the view-level check.
	g.Connections = append(g.Connections, model.NewConnection(out.ID(), identity.New()))
	_, err := Resolve(g, DefaultDimensions, DefaultTheme())
	if !errors.Is(err, ErrUnresolvedSocket) {
		t.Fatalf("Resolve() error = %v, want ErrUnresolvedSocket", err)
	}
}

func TestThemeFallbacks(t *testing.T) {
	th := DefaultTheme()
	if got := th.SocketStyle("Unheard Of", 5).Shape.Brush.Color; got != th.DefaultColor {
		t.Errorf("unknown socket type color = %v, want default", got)
	}
	if th.NodeStyle(model.Input).Shape.Pen.Brush.Color == th.NodeStyle(model.Output).Shape.Pen.Brush.Color {
		t.Error("input and output nodes should be told apart")
	}
}

func TestApplyIsBottomUp(t *testing.T) {
	g, _, _ := connectedGraph(t)
	gv, err := Resolve(g, DefaultDimensions, DefaultTheme())
	if err != nil {
		t.Fatal(err)
	}

	var order []string
	out := gv.Apply(func(v View) View {
		switch v := v.(type) {
		case GraphView:
			order = append(order, "graph")
		case NodeView:
			order = append(order, "node:"+v.Node.Label)
			v.Rect = v.Rect.Offset(geom.Pt(1, 1))
			return v
		case SlotView:
			order = append(order, "slot:"+v.Slot.Label)
		case SocketView:
			order = append(order, "socket")
		case ConnectionView:
			order = append(order, "connection")
		}
		return v
	}).(GraphView)

	want := []string{
		"slot:A", "socket", "slot:X", "node:A",
		"slot:B", "socket", "slot:Y", "node:B",
		"connection", "graph",
	}
	if len(order) != len(want) {
		t.Fatalf("visit order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("visit order = %v, want %v", order, want)
		}
	}
	if out.Nodes[0].Rect == gv.Nodes[0].Rect {
		t.Error("Apply result did not carry the rewrite")
	}
	if gv.Nodes[0].Rect != geom.R(10, 20, 100, 45) {
		t.Error("Apply modified the original view")
	}
}

func TestApplyPanicsOnIdentityChange(t *testing.T) {
	g, _, _ := connectedGraph(t)
	gv, err := Resolve(g, DefaultDimensions, DefaultTheme())
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("Apply should panic when a child changes identity")
		}
	}()
	gv.Apply(func(v View) View {
		if _, ok := v.(NodeView); ok {
			return gv.Connections[0]
		}
		return v
	})
}

func TestResolveMarksConnectedSockets(t *testing.T) {
	g, out, in := connectedGraph(t)
	loose := g
	loose.Connections = nil

	tests := []struct {
		name string
		g    model.Graph
		want bool
	}{
		{"connected", g, true},
		{"no connections", loose, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gv, err := Resolve(tt.g, DefaultDimensions, DefaultTheme())
			if err != nil {
				t.Fatal(err)
			}
			if got := gv.Nodes[0].Slots[0].Right; got.ID() != out.ID() || got.Connected != tt.want {
				t.Errorf("output socket Connected = %v, want %v", got.Connected, tt.want)
			}
			if got := gv.Nodes[1].Slots[0].Left; got.ID() != in.ID() || got.Connected != tt.want {
				t.Errorf("input socket Connected = %v, want %v", got.Connected, tt.want)
			}
			if gv.Nodes[0].Header.Left != nil || gv.Nodes[0].Header.Right != nil {
				t.Error("header slot grew sockets")
			}
		})
	}
}

func TestThemeOpenSocket(t *testing.T) {
	st := DefaultTheme().SocketStyle("Number", 5)
	if !st.Open.Brush.Color.IsTransparent() {
		t.Error("open sockets should not be filled")
	}
	if st.Open.Pen.Brush.Color != st.Shape.Brush.Color {
		t.Error("open socket outline should keep the type color")
	}
}

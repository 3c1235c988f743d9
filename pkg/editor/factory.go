// Package editor provides the node-graph editor's controls, their factory
// and the dragging and connecting behaviors.
package editor

import (
	"fmt"

	"github.com/dd0wney/peacock/pkg/model"
	"github.com/dd0wney/peacock/pkg/semantics"
	"github.com/dd0wney/peacock/pkg/ui"
	"github.com/dd0wney/peacock/pkg/view"
)

// DefaultHitRadius is the pickup distance around a socket center.
const DefaultHitRadius = 8.0

// Factory creates editor controls for views. It is shared by every control
// it creates and must not be modified afterwards.
type Factory struct {
	Dimensions view.Dimensions
	Theme      view.Theme
	Semantics  *semantics.Compatibility
	HitRadius  float64
}

// NewFactory returns a factory with the default dimensions, theme and
// conversions.
func NewFactory() *Factory {
	return &Factory{
		Dimensions: view.DefaultDimensions,
		Theme:      view.DefaultTheme(),
		Semantics:  semantics.Default(),
		HitRadius:  DefaultHitRadius,
	}
}

func (f *Factory) Root(g model.Graph) (ui.Control, error) {
	gv, err := view.Resolve(g, f.Dimensions, f.Theme)
	if err != nil {
		return nil, fmt.Errorf("resolve graph %s: %w", g.ID().Short(), err)
	}
	return f.Create(nil, gv), nil
}

func (f *Factory) Create(_ ui.Control, v view.View) ui.Control {
	switch v := v.(type) {
	case view.GraphView:
		return GraphControl{view: v, factory: f}
	case view.NodeView:
		return NodeControl{view: v, factory: f}
	case view.SlotView:
		return SlotControl{view: v}
	case view.SocketView:
		return SocketControl{view: v}
	case view.ConnectionView:
		return ConnectionControl{view: v}
	default:
		panic(fmt.Sprintf("editor: no control for view %T", v))
	}
}

// Package ui is the retained-mode core of the editor: an immutable control
// tree rebuilt from the model on every change, per-control behaviors that
// outlive rebuilds, and the Updates ledger through which controls and
// behaviors propose changes.
package ui

import (
	"github.com/dd0wney/peacock/pkg/canvas"
	"github.com/dd0wney/peacock/pkg/geom"
	"github.com/dd0wney/peacock/pkg/identity"
	"github.com/dd0wney/peacock/pkg/input"
	"github.com/dd0wney/peacock/pkg/model"
	"github.com/dd0wney/peacock/pkg/view"
)

// Control is one node of the control tree. Controls are values: every
// change produces a new control carrying the same id.
type Control interface {
	identity.Identified

	View() view.View
	// Frame is the region the control occupies in its parent's coordinates.
	// An empty frame means the control draws in its parent's space.
	Frame() geom.Rect
	// Draw draws the control in its own coordinate space.
	Draw(cv canvas.Canvas) canvas.Canvas
	// Children generates the child controls from the current view.
	Children(f Factory) []Control
	// DefaultBehaviors returns fresh behaviors for a control id seen for
	// the first time.
	DefaultBehaviors() []Behavior
	Process(el Element, in input.Event, u *Updates) *Updates
	// UpdateView returns a copy of the control showing v. v has the
	// control's id.
	UpdateView(v view.View) Control
}

// Factory maps views to controls.
type Factory interface {
	// Create returns the control for v. It panics if v is a variant the
	// factory does not know.
	Create(parent Control, v view.View) Control
	// Root resolves g and returns the root control for it.
	Root(g model.Graph) (Control, error)
}

// BaseControl supplies the defaults for controls that draw nothing, own no
// region, have no children and ignore input. Embed it and override.
type BaseControl struct{}

func (BaseControl) Frame() geom.Rect                    { return geom.Rect{} }
func (BaseControl) Draw(cv canvas.Canvas) canvas.Canvas { return cv }
func (BaseControl) Children(Factory) []Control          { return nil }
func (BaseControl) DefaultBehaviors() []Behavior        { return nil }

func (BaseControl) Process(_ Element, _ input.Event, u *Updates) *Updates {
	return u
}

// CreateAll creates a control for each view.
func CreateAll[V view.View](f Factory, parent Control, views []V) []Control {
	out := make([]Control, 0, len(views))
	for _, v := range views {
		out = append(out, f.Create(parent, v))
	}
	return out
}

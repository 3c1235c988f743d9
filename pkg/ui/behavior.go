package ui

import (
	"github.com/dd0wney/peacock/pkg/canvas"
	"github.com/dd0wney/peacock/pkg/identity"
	"github.com/dd0wney/peacock/pkg/input"
)

// Behavior is a stateful input handler attached to one control id. It
// survives tree rebuilds for as long as its control id is present, and
// changes its own state only through Updates.UpdateBehavior.
type Behavior interface {
	identity.Identified
	ControlID() identity.ID
	// Draw draws a transient overlay in the control's coordinate space.
	Draw(el Element, cv canvas.Canvas) canvas.Canvas
	Process(el Element, in input.Event, u *Updates) *Updates
}

// BehaviorBase carries the identity of a behavior and the control it is
// attached to.
type BehaviorBase struct {
	id      identity.ID
	control identity.ID
}

// NewBehaviorBase returns a base with a fresh id for the given control.
func NewBehaviorBase(control identity.ID) BehaviorBase {
	return BehaviorBase{id: identity.New(), control: control}
}

func (b BehaviorBase) ID() identity.ID        { return b.id }
func (b BehaviorBase) ControlID() identity.ID { return b.control }

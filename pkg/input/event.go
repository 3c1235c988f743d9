// Package input defines the closed set of input events the UI core
// processes. Hosts convert native events into these values.
package input

import (
	"time"

	"github.com/dd0wney/peacock/pkg/geom"
)

// MouseStatus is the pointer state accompanying every event.
type MouseStatus struct {
	Location   geom.Point
	LeftDown   bool
	RightDown  bool
	MiddleDown bool
}

// Button identifies a mouse button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Event is one input event. The set of implementations is closed.
type Event interface {
	Mouse() MouseStatus
	isEvent()
}

type KeyDown struct {
	Status MouseStatus
	Key    string
}

type KeyUp struct {
	Status MouseStatus
	Key    string
}

type MouseDown struct {
	Status MouseStatus
	Button Button
}

type MouseUp struct {
	Status MouseStatus
	Button Button
}

type MouseMove struct {
	Status MouseStatus
}

type MouseWheel struct {
	Status MouseStatus
	Delta  float64
}

type MouseDoubleClick struct {
	Status MouseStatus
	Button Button
}

type Resize struct {
	Status MouseStatus
	Size   geom.Size
}

// Clock is a periodic tick. It travels the same routing path as pointer
// and keyboard events.
type Clock struct {
	Status  MouseStatus
	Elapsed time.Duration
}

func (e KeyDown) Mouse() MouseStatus          { return e.Status }
func (e KeyUp) Mouse() MouseStatus            { return e.Status }
func (e MouseDown) Mouse() MouseStatus        { return e.Status }
func (e MouseUp) Mouse() MouseStatus          { return e.Status }
func (e MouseMove) Mouse() MouseStatus        { return e.Status }
func (e MouseWheel) Mouse() MouseStatus       { return e.Status }
func (e MouseDoubleClick) Mouse() MouseStatus { return e.Status }
func (e Resize) Mouse() MouseStatus           { return e.Status }
func (e Clock) Mouse() MouseStatus            { return e.Status }

func (KeyDown) isEvent()          {}
func (KeyUp) isEvent()            {}
func (MouseDown) isEvent()        {}
func (MouseUp) isEvent()          {}
func (MouseMove) isEvent()        {}
func (MouseWheel) isEvent()       {}
func (MouseDoubleClick) isEvent() {}
func (Resize) isEvent()           {}
func (Clock) isEvent()            {}

// Kind returns a short name for the event variant, for logs and metrics.
func Kind(e Event) string {
	switch e.(type) {
	case KeyDown:
		return "key_down"
	case KeyUp:
		return "key_up"
	case MouseDown:
		return "mouse_down"
	case MouseUp:
		return "mouse_up"
	case MouseMove:
		return "mouse_move"
	case MouseWheel:
		return "mouse_wheel"
	case MouseDoubleClick:
		return "mouse_double_click"
	case Resize:
		return "resize"
	case Clock:
		return "clock"
	default:
		panic("input: unknown event variant")
	}
}

// Press returns a left-button MouseDown at p.
func Press(p geom.Point) MouseDown {
	return MouseDown{Status: MouseStatus{Location: p, LeftDown: true}, Button: ButtonLeft}
}

// Drag returns a MouseMove at p with the left button held.
func Drag(p geom.Point) MouseMove {
	return MouseMove{Status: MouseStatus{Location: p, LeftDown: true}}
}

// Hover returns a MouseMove at p with no button held.
func Hover(p geom.Point) MouseMove {
	return MouseMove{Status: MouseStatus{Location: p}}
}

// Release returns a left-button MouseUp at p.
func Release(p geom.Point) MouseUp {
	return MouseUp{Status: MouseStatus{Location: p}, Button: ButtonLeft}
}

package editor

import (
	"github.com/dd0wney/peacock/pkg/geom"
	"github.com/dd0wney/peacock/pkg/ui"
	"github.com/dd0wney/peacock/pkg/view"
)

// socketHit is a socket control found below an element, with its center in
// absolute coordinates.
type socketHit struct {
	control SocketControl
	center  geom.Point
}

func (h socketHit) view() view.SocketView { return h.control.view }

// socketsBelow returns every socket control under el in tree order.
func socketsBelow(el ui.Element) []socketHit {
	var out []socketHit
	for _, d := range el.Descendants() {
		sc, ok := d.Control().(SocketControl)
		if !ok {
			continue
		}
		out = append(out, socketHit{control: sc, center: d.ToAbsolute(sc.view.Point)})
	}
	return out
}

// socketAt returns the first socket under el within r of p for which
// accept holds. A nil accept takes any socket.
func socketAt(el ui.Element, p geom.Point, r float64, accept func(view.SocketView) bool) (socketHit, bool) {
	for _, h := range socketsBelow(el) {
		if h.center.Within(p, r) && (accept == nil || accept(h.view())) {
			return h, true
		}
	}
	return socketHit{}, false
}

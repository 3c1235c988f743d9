package view

import (
	"github.com/dd0wney/peacock/pkg/canvas"
	"github.com/dd0wney/peacock/pkg/geom"
	"github.com/dd0wney/peacock/pkg/model"
)

type GraphStyle struct {
	Background   canvas.Color
	Grid         canvas.Color
	GridDistance float64
	Text         canvas.TextStyle
}

type NodeStyle struct {
	Shape  canvas.ShapeStyle
	Text   canvas.TextStyle
	Radius geom.Point
}

type SlotStyle struct {
	Shape    canvas.ShapeStyle
	Text     canvas.TextStyle
	TypeText canvas.TextStyle
	// TextOffset is the horizontal gap kept between the slot edge and its label.
	TextOffset float64
}

type SocketStyle struct {
	Shape canvas.ShapeStyle
	// Open is drawn instead of Shape while nothing is connected.
	Open      canvas.ShapeStyle
	Highlight canvas.ShapeStyle
	Radius    float64
}

type ConnectionStyle struct {
	Pen canvas.PenStyle
	// Pending is used for the connection being dragged out.
	Pending canvas.PenStyle
}

// Theme holds the cosmetic choices applied during Resolve.
type Theme struct {
	Font         string
	Background   canvas.Color
	Grid         canvas.Color
	GridDistance float64
	NodeColors   map[model.NodeKind]canvas.Color
	SocketColors map[string]canvas.Color
	DefaultColor canvas.Color
	Connection   ConnectionStyle
}

// DefaultTheme returns the stock dark theme.
func DefaultTheme() Theme {
	return Theme{
		Font:         "Lato",
		Background:   canvas.Black,
		Grid:         canvas.Grid,
		GridDistance: 40,
		NodeColors: map[model.NodeKind]canvas.Color{
			model.PropertySet: canvas.RGB(0x7f, 0xff, 0x00),
			model.OperatorSet: canvas.RGB(0xff, 0x14, 0x93),
			model.Input:       canvas.RGB(0xff, 0xff, 0x00),
			model.Output:      canvas.RGB(0x00, 0xff, 0xff),
		},
		SocketColors: map[string]canvas.Color{
			"Any":      canvas.RGB(0x22, 0x8b, 0x22),
			"Number":   canvas.RGB(0xff, 0x00, 0xff),
			"Decimal":  canvas.RGB(0xff, 0xa5, 0x00),
			"Array":    canvas.RGB(0x1e, 0x90, 0xff),
			"Point 2D": canvas.RGB(0xb2, 0x22, 0x22),
			"Size 2D":  canvas.RGB(0xb2, 0x22, 0x22),
		},
		DefaultColor: canvas.RGB(0x00, 0x00, 0x8b),
		Connection: ConnectionStyle{
			Pen:     canvas.Pen(canvas.Blue, 4),
			Pending: canvas.Pen(canvas.BlueViolet, 4),
		},
	}
}

func (t Theme) text(size float64, align canvas.Alignment) canvas.TextStyle {
	return canvas.TextStyle{
		Brush:      canvas.BrushStyle{Color: canvas.WhiteSmoke},
		FontFamily: t.Font,
		FontSize:   size,
		Alignment:  align,
	}
}

func (t Theme) GraphStyle() GraphStyle {
	return GraphStyle{
		Background:   t.Background,
		Grid:         t.Grid,
		GridDistance: t.GridDistance,
		Text:         t.text(16, canvas.LeftCenter),
	}
}

func (t Theme) NodeStyle(kind model.NodeKind) NodeStyle {
	c, ok := t.NodeColors[kind]
	if !ok {
		c = canvas.White
	}
	return NodeStyle{
		Shape:  canvas.Shape(t.Background, c, 3),
		Text:   t.text(14, canvas.CenterCenter),
		Radius: geom.Pt(8, 8),
	}
}

func (t Theme) SlotStyle(socketRadius float64) SlotStyle {
	return SlotStyle{
		Shape:      canvas.Shape(t.Background, canvas.Transparent, 0),
		Text:       t.text(12, canvas.LeftCenter),
		TypeText:   t.text(6, canvas.RightTop),
		TextOffset: socketRadius * 1.5,
	}
}

func (t Theme) SocketStyle(typ string, radius float64) SocketStyle {
	c, ok := t.SocketColors[typ]
	if !ok {
		c = t.DefaultColor
	}
	return SocketStyle{
		Shape:     canvas.Shape(c, c, 1),
		Open:      canvas.Shape(canvas.Transparent, c, 1.5),
		Highlight: canvas.Shape(canvas.White, c, 2),
		Radius:    radius,
	}
}

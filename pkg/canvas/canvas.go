// Package canvas defines the drawing surface the UI core draws on and the
// styled shapes it issues. Concrete surfaces are thin adapters.
package canvas

import (
	"fmt"

	"github.com/dd0wney/peacock/pkg/geom"
)

// Canvas is a drawing surface. Every call returns the canvas to draw on
// next, so drawing code threads the value through.
type Canvas interface {
	DrawText(t StyledText) Canvas
	DrawLine(l StyledLine) Canvas
	DrawEllipse(e StyledEllipse) Canvas
	DrawRect(r StyledRect) Canvas
	DrawBezier(b StyledBezier) Canvas
	MeasureText(t StyledText) geom.Size

	// PushClipAndTranslate makes r the current frame: subsequent coordinates
	// are relative to r's top-left corner and drawing is clipped to r.
	PushClipAndTranslate(r geom.Rect) Canvas
	// Pop restores the frame active before the matching push.
	Pop() Canvas
}

// Color is an sRGB color with alpha.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// Hex returns the #rrggbb form, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsTransparent reports whether the color draws nothing.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

var (
	Transparent = Color{}
	Black       = RGB(0x00, 0x00, 0x00)
	White       = RGB(0xff, 0xff, 0xff)
	WhiteSmoke  = RGB(0xf5, 0xf5, 0xf5)
	Grid        = RGB(0x33, 0x33, 0x33)
	Blue        = RGB(0x00, 0x00, 0xff)
	BlueViolet  = RGB(0x8a, 0x2b, 0xe2)
)

type AlignX int

const (
	AlignLeft AlignX = iota
	AlignCenter
	AlignRight
)

type AlignY int

const (
	AlignTop AlignY = iota
	AlignMiddle
	AlignBottom
)

// Alignment positions text inside its rectangle.
type Alignment struct {
	X AlignX
	Y AlignY
}

var (
	LeftCenter   = Alignment{X: AlignLeft, Y: AlignMiddle}
	CenterCenter = Alignment{X: AlignCenter, Y: AlignMiddle}
	RightTop     = Alignment{X: AlignRight, Y: AlignTop}
)

type BrushStyle struct {
	Color Color
}

type PenStyle struct {
	Brush BrushStyle
	Width float64
}

// Pen is shorthand for a solid pen.
func Pen(c Color, width float64) PenStyle {
	return PenStyle{Brush: BrushStyle{Color: c}, Width: width}
}

type TextStyle struct {
	Brush      BrushStyle
	FontFamily string
	FontSize   float64
	Alignment  Alignment
}

type ShapeStyle struct {
	Brush BrushStyle
	Pen   PenStyle
}

// Shape is shorthand for a fill and an outline.
func Shape(fill, stroke Color, width float64) ShapeStyle {
	return ShapeStyle{Brush: BrushStyle{Color: fill}, Pen: Pen(stroke, width)}
}

type StyledText struct {
	Style TextStyle
	Rect  geom.Rect
	Text  string
}

type StyledLine struct {
	Pen  PenStyle
	Line geom.Line
}

type StyledEllipse struct {
	Style  ShapeStyle
	Center geom.Point
	Radius geom.Point
}

type StyledRect struct {
	Style  ShapeStyle
	Rect   geom.Rect
	Radius geom.Point
}

type StyledBezier struct {
	Pen   PenStyle
	Curve geom.Bezier
}

// ApproxTextSize estimates the extent of t for surfaces without font
// metrics: 0.6em per rune, 1.2em line height.
func ApproxTextSize(t StyledText) geom.Size {
	n := len([]rune(t.Text))
	return geom.Size{
		Width:  float64(n) * t.Style.FontSize * 0.6,
		Height: t.Style.FontSize * 1.2,
	}
}

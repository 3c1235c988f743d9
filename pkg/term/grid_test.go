package term

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dd0wney/peacock/pkg/canvas"
	"github.com/dd0wney/peacock/pkg/geom"
)

func rows(g *Grid) []string {
	return strings.Split(g.Plain(), "\n")
}

func TestGridRect(t *testing.T) {
	g := NewGrid(6, 4, 10, 10)
	g.DrawRect(canvas.StyledRect{Style: canvas.Shape(canvas.Black, canvas.White, 1), Rect: geom.R(0, 0, 40, 30)})
	assert.Equal(t, []string{
		"┌──┐  ",
		"│  │  ",
		"└──┘  ",
		"      ",
	}, rows(g))

	g = NewGrid(3, 3, 10, 10)
	g.DrawRect(canvas.StyledRect{
		Style:  canvas.Shape(canvas.Black, canvas.White, 1),
		Rect:   geom.R(0, 0, 30, 30),
		Radius: geom.Pt(3, 3),
	})
	assert.Equal(t, '╭', g.Rune(0, 0))
	assert.Equal(t, '╯', g.Rune(2, 2))
}

func TestGridText(t *testing.T) {
	tests := []struct {
		name  string
		align canvas.Alignment
		want  string
	}{
		{"left", canvas.LeftCenter, " ab       "},
		{"center", canvas.CenterCenter, "    ab    "},
		{"right", canvas.RightTop, "        ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(10, 1, 10, 10)
			g.DrawText(canvas.StyledText{
				Style: canvas.TextStyle{Alignment: tt.align},
				Rect:  geom.R(10, 0, 90, 10),
				Text:  "ab",
			})
			assert.Equal(t, tt.want, g.Plain())
		})
	}
}

func TestGridClipAndTranslate(t *testing.T) {
	g := NewGrid(8, 2, 10, 10)
	g.PushClipAndTranslate(geom.R(20, 0, 30, 10))
	g.DrawText(canvas.StyledText{
		Style: canvas.TextStyle{Alignment: canvas.LeftCenter},
		Rect:  geom.R(0, 0, 100, 10),
		Text:  "abcdef",
	})
	g.DrawEllipse(canvas.StyledEllipse{Center: geom.Pt(5, 15), Radius: geom.Pt(3, 3)})
	g.Pop()
	g.DrawEllipse(canvas.StyledEllipse{Center: geom.Pt(5, 15), Radius: geom.Pt(3, 3)})

	// Text is clipped to the three cells of the frame; the first ellipse
	// falls outside the frame's single row.
	assert.Equal(t, []string{
		"  abc   ",
		"●       ",
	}, rows(g))
}

func TestGridLines(t *testing.T) {
	g := NewGrid(5, 3, 10, 10)
	g.DrawLine(canvas.StyledLine{Pen: canvas.Pen(canvas.Grid, 1), Line: geom.Line{A: geom.Pt(0, 5), B: geom.Pt(50, 5)}})
	assert.Equal(t, "     ", rows(g)[0], "hairline drawn")

	g.DrawLine(canvas.StyledLine{Pen: canvas.Pen(canvas.Blue, 4), Line: geom.Line{A: geom.Pt(0, 15), B: geom.Pt(49, 15)}})
	assert.Equal(t, "─────", rows(g)[1])

	g.DrawLine(canvas.StyledLine{Pen: canvas.Pen(canvas.Blue, 4), Line: geom.Line{A: geom.Pt(5, 0), B: geom.Pt(5, 29)}})
	assert.Equal(t, '│', g.Rune(0, 2))
}

func TestGridBezierReachesBothEnds(t *testing.T) {
	g := NewGrid(20, 6, 10, 10)
	g.DrawBezier(canvas.StyledBezier{
		Pen:   canvas.Pen(canvas.Blue, 4),
		Curve: geom.Connector(geom.Pt(15, 5), geom.Pt(185, 55)),
	})
	assert.NotEqual(t, ' ', g.Rune(1, 0))
	assert.NotEqual(t, ' ', g.Rune(18, 5))
	assert.Equal(t, ' ', g.Rune(18, 0))
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2, 10, 10)
	g.DrawEllipse(canvas.StyledEllipse{Center: geom.Pt(-50, 500), Radius: geom.Pt(3, 3)})
	assert.Equal(t, "  \n  ", g.Plain())
	assert.Equal(t, rune(0), g.Rune(5, 5))
}

func TestGridRenderKeepsText(t *testing.T) {
	g := NewGrid(4, 1, 10, 10)
	g.DrawRect(canvas.StyledRect{Style: canvas.Shape(canvas.Black, canvas.Transparent, 0), Rect: geom.R(0, 0, 40, 10)})
	g.DrawText(canvas.StyledText{
		Style: canvas.TextStyle{Brush: canvas.BrushStyle{Color: canvas.White}, Alignment: canvas.LeftCenter},
		Rect:  geom.R(0, 0, 40, 10),
		Text:  "node",
	})
	assert.Contains(t, g.Render(), "node")
	assert.Equal(t, 40.0, g.MeasureText(canvas.StyledText{Text: "node"}).Width)
}

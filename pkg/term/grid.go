package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/peacock/pkg/canvas"
	"github.com/dd0wney/peacock/pkg/geom"
)

// DefaultMinLineWidth drops hairlines such as the background grid, which
// would otherwise cover every other column.
const DefaultMinLineWidth = 2

type cell struct {
	r      rune
	fg, bg canvas.Color
}

// Grid is a canvas.Canvas that rasterises graph coordinates onto terminal
// cells. Cell (c, r) covers [c*CellWidth, (c+1)*CellWidth) horizontally and
// the same for rows.
type Grid struct {
	cols, rows   int
	cellW, cellH float64
	cells        []cell
	frames       canvas.Frames

	// MinLineWidth is the thinnest pen drawn by DrawLine.
	MinLineWidth float64
}

// NewGrid returns a blank grid of cols x rows cells.
func NewGrid(cols, rows int, cellW, cellH float64) *Grid {
	cols, rows = max(cols, 0), max(rows, 0)
	g := &Grid{
		cols:         cols,
		rows:         rows,
		cellW:        cellW,
		cellH:        cellH,
		cells:        make([]cell, cols*rows),
		MinLineWidth: DefaultMinLineWidth,
	}
	for i := range g.cells {
		g.cells[i].r = ' '
	}
	return g
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// CellOf returns the cell containing the absolute point p.
func (g *Grid) CellOf(p geom.Point) (col, row int) {
	return int(math.Floor(p.X / g.cellW)), int(math.Floor(p.Y / g.cellH))
}

// CellCenter returns the absolute point at the middle of a cell.
func (g *Grid) CellCenter(col, row int) geom.Point {
	return geom.Pt((float64(col)+0.5)*g.cellW, (float64(row)+0.5)*g.cellH)
}

func (g *Grid) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return nil
	}
	return &g.cells[row*g.cols+col]
}

// visible reports whether the middle of the cell lies inside the active clip.
func (g *Grid) visible(col, row int) bool {
	return g.frames.Current().Clip.Contains(g.CellCenter(col, row))
}

func (g *Grid) put(col, row int, r rune, fg canvas.Color) {
	c := g.at(col, row)
	if c == nil || !g.visible(col, row) {
		return
	}
	c.r = r
	if !fg.IsTransparent() {
		c.fg = fg
	}
}

func (g *Grid) fill(col, row int, bg canvas.Color) {
	c := g.at(col, row)
	if c == nil || !g.visible(col, row) || bg.IsTransparent() {
		return
	}
	c.bg = bg
	c.r = ' '
}

// Rune returns the character at a cell, or zero outside the grid.
func (g *Grid) Rune(col, row int) rune {
	if c := g.at(col, row); c != nil {
		return c.r
	}
	return 0
}

func (g *Grid) DrawText(t canvas.StyledText) canvas.Canvas {
	r := g.frames.RectToAbsolute(t.Rect)
	runes := []rune(t.Text)
	n := len(runes)

	var col, row int
	switch t.Style.Alignment.X {
	case canvas.AlignLeft:
		col = int(math.Ceil(r.X / g.cellW))
	case canvas.AlignCenter:
		col, _ = g.CellOf(r.Center())
		col -= n / 2
	case canvas.AlignRight:
		col, _ = g.CellOf(geom.Pt(r.X+r.Width, 0))
		col -= n
	}
	switch t.Style.Alignment.Y {
	case canvas.AlignTop:
		_, row = g.CellOf(r.TopLeft())
	case canvas.AlignMiddle:
		_, row = g.CellOf(r.Center())
	case canvas.AlignBottom:
		_, row = g.CellOf(geom.Pt(0, r.Y+r.Height-1))
	}
	for i, ch := range runes {
		g.put(col+i, row, ch, t.Style.Brush.Color)
	}
	return g
}

func (g *Grid) DrawLine(l canvas.StyledLine) canvas.Canvas {
	if l.Pen.Width < g.MinLineWidth {
		return g
	}
	a, b := g.frames.ToAbsolute(l.Line.A), g.frames.ToAbsolute(l.Line.B)
	g.trace([]geom.Point{a, b}, l.Pen.Brush.Color)
	return g
}

// DrawEllipse marks the cell under the center. The clip is tested at the
// center itself, so sockets on a frame's edge stay visible.
func (g *Grid) DrawEllipse(e canvas.StyledEllipse) canvas.Canvas {
	p := g.frames.ToAbsolute(e.Center)
	if !g.frames.Current().Clip.Contains(p) {
		return g
	}
	color := e.Style.Brush.Color
	if color.IsTransparent() {
		color = e.Style.Pen.Brush.Color
	}
	col, row := g.CellOf(p)
	if c := g.at(col, row); c != nil {
		c.r = '●'
		if !color.IsTransparent() {
			c.fg = color
		}
	}
	return g
}

func (g *Grid) DrawRect(s canvas.StyledRect) canvas.Canvas {
	r := g.frames.RectToAbsolute(s.Rect)
	c0, r0 := g.CellOf(r.TopLeft())
	c1, r1 := g.CellOf(geom.Pt(r.X+r.Width-1e-9, r.Y+r.Height-1e-9))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			g.fill(col, row, s.Style.Brush.Color)
		}
	}
	if s.Style.Pen.Width <= 0 || s.Style.Pen.Brush.Color.IsTransparent() {
		return g
	}
	pen := s.Style.Pen.Brush.Color
	for col := c0 + 1; col < c1; col++ {
		g.put(col, r0, '─', pen)
		g.put(col, r1, '─', pen)
	}
	for row := r0 + 1; row < r1; row++ {
		g.put(c0, row, '│', pen)
		g.put(c1, row, '│', pen)
	}
	tl, tr, bl, br := '┌', '┐', '└', '┘'
	if s.Radius.X > 0 || s.Radius.Y > 0 {
		tl, tr, bl, br = '╭', '╮', '╰', '╯'
	}
	g.put(c0, r0, tl, pen)
	g.put(c1, r0, tr, pen)
	g.put(c0, r1, bl, pen)
	g.put(c1, r1, br, pen)
	return g
}

func (g *Grid) DrawBezier(b canvas.StyledBezier) canvas.Canvas {
	c := b.Curve.Offset(g.frames.Current().Origin)
	span := math.Sqrt(c.Start.DistanceSqr(c.Control1)) +
		math.Sqrt(c.Control1.DistanceSqr(c.Control2)) +
		math.Sqrt(c.Control2.DistanceSqr(c.End))
	n := max(8, int(2*span/math.Min(g.cellW, g.cellH)))
	g.trace(c.Sample(n), b.Pen.Brush.Color)
	return g
}

// trace draws a polyline through absolute points, stepping half a cell at a
// time and choosing a box character from the local direction.
func (g *Grid) trace(pts []geom.Point, color canvas.Color) {
	step := math.Min(g.cellW, g.cellH) / 2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		ch := slope(d.X/g.cellW, d.Y/g.cellH)
		n := max(1, int(math.Ceil(math.Sqrt(a.DistanceSqr(b))/step)))
		for k := 0; k <= n; k++ {
			col, row := g.CellOf(a.Add(d.Scale(float64(k) / float64(n))))
			g.put(col, row, ch, color)
		}
	}
}

func slope(dx, dy float64) rune {
	adx, ady := math.Abs(dx), math.Abs(dy)
	switch {
	case ady <= adx/2:
		return '─'
	case adx <= ady/2:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func (g *Grid) MeasureText(t canvas.StyledText) geom.Size {
	return geom.Size{Width: float64(len([]rune(t.Text))) * g.cellW, Height: g.cellH}
}

func (g *Grid) PushClipAndTranslate(r geom.Rect) canvas.Canvas {
	g.frames.Push(r)
	return g
}

func (g *Grid) Pop() canvas.Canvas {
	g.frames.Pop()
	return g
}

// Plain returns the grid as text without colors.
func (g *Grid) Plain() string {
	var sb strings.Builder
	for row := 0; row < g.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.cols; col++ {
			sb.WriteRune(g.cells[row*g.cols+col].r)
		}
	}
	return sb.String()
}

// Render returns the grid with lipgloss colors, one style per run of equal
// colors.
func (g *Grid) Render() string {
	lines := make([]string, g.rows)
	for row := 0; row < g.rows; row++ {
		var sb strings.Builder
		line := g.cells[row*g.cols : (row+1)*g.cols]
		for start := 0; start < len(line); {
			end := start + 1
			for end < len(line) && line[end].fg == line[start].fg && line[end].bg == line[start].bg {
				end++
			}
			var run strings.Builder
			for _, c := range line[start:end] {
				run.WriteRune(c.r)
			}
			sb.WriteString(styleOf(line[start]).Render(run.String()))
			start = end
		}
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func styleOf(c cell) lipgloss.Style {
	s := lipgloss.NewStyle()
	if !c.fg.IsTransparent() {
		s = s.Foreground(lipgloss.Color(c.fg.Hex()))
	}
	if !c.bg.IsTransparent() {
		s = s.Background(lipgloss.Color(c.bg.Hex()))
	}
	return s
}

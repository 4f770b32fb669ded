package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/hanoisim/internal/hanoi"
	"github.com/san-kum/hanoisim/internal/render"
)

// Window pixels covered by one terminal cell. A cell row matches one disk.
const (
	CellWidth  = 10
	CellHeight = 20
)

const blockRune = '█'

type cell struct {
	r     rune
	color hanoi.Color
	set   bool
}

// Grid is a frame rasterised to terminal cells.
type Grid struct {
	Cols, Rows int
	cells      [][]cell
}

func NewGrid(cols, rows int) *Grid {
	g := &Grid{Cols: cols, Rows: rows, cells: make([][]cell, rows)}
	for i := range g.cells {
		g.cells[i] = make([]cell, cols)
	}
	return g
}

// Rasterize paints f in order, so later rectangles cover earlier ones.
func Rasterize(f render.Frame) *Grid {
	g := NewGrid(ceilDiv(f.Width, CellWidth), ceilDiv(f.Height, CellHeight))
	for _, r := range f.Rects {
		g.fill(r)
	}
	for _, t := range f.Texts {
		g.text(t)
	}
	return g
}

func (g *Grid) fill(r render.Rect) {
	c0, c1 := span(r.X, r.W, CellWidth)
	r0, r1 := span(r.Y, r.H, CellHeight)
	for row := max(r0, 0); row < min(r1, g.Rows); row++ {
		for col := max(c0, 0); col < min(c1, g.Cols); col++ {
			g.cells[row][col] = cell{r: blockRune, color: r.Color, set: true}
		}
	}
}

func (g *Grid) text(t render.Text) {
	row := int(t.Y) / CellHeight
	if row < 0 || row >= g.Rows {
		return
	}
	col := int(t.X) / CellWidth
	for _, ch := range t.Body {
		if col >= 0 && col < g.Cols {
			g.cells[row][col] = cell{r: ch, color: t.Color, set: true}
		}
		col++
	}
}

// At returns the rune at a cell, or a space when nothing was drawn there.
func (g *Grid) At(col, row int) rune {
	c := g.cells[row][col]
	if !c.set {
		return ' '
	}
	return c.r
}

// Plain renders the grid without colors.
func (g *Grid) Plain() string {
	var b strings.Builder
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			b.WriteRune(g.At(col, row))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Render paints each run of equally colored cells with one lipgloss style.
func (g *Grid) Render() string {
	var b strings.Builder
	for _, line := range g.cells {
		start := 0
		for start < len(line) {
			end := start + 1
			for end < len(line) && line[end].set == line[start].set && line[end].color == line[start].color {
				end++
			}
			b.WriteString(paint(line[start:end]))
			start = end
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func paint(run []cell) string {
	var sb strings.Builder
	for _, c := range run {
		if c.set {
			sb.WriteRune(c.r)
		} else {
			sb.WriteByte(' ')
		}
	}
	// black would vanish on dark terminals; use the default foreground
	if !run[0].set || run[0].color == render.Black {
		return sb.String()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex(run[0].color))).Render(sb.String())
}

// span maps [pos, pos+size) in pixels to a half-open cell range.
func span(pos, size float32, cellSize int) (int, int) {
	start := int(math.Floor(float64(pos) / float64(cellSize)))
	end := int(math.Ceil(float64(pos+size) / float64(cellSize)))
	return start, end
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func hex(c hanoi.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Package pie renders the cause breakdown as a braille pie chart with a legend.
package pie

import (
	"fmt"
	"image/color"
	"math/bits"
	"strconv"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/tally/internal/aggregate"
	"github.com/garrettladley/tally/internal/client/tally"
	"github.com/garrettladley/tally/internal/tui/theme"
)

const (
	// chart dimensions in braille dots (2 dots per char width, 4 dots per char height)
	DefaultDotsWidth  = 44 // 22 chars wide
	DefaultDotsHeight = 44 // 11 chars tall
)

type Pie struct {
	Causes     []tally.Cause
	DotsWidth  int
	DotsHeight int
	StartAngle float64

	OutlineColor color.Color
	LabelColor   color.Color
	ShowLegend   bool
}

type Option func(*Pie)

func WithSize(dotsWidth, dotsHeight int) Option {
	return func(p *Pie) {
		p.DotsWidth = dotsWidth
		p.DotsHeight = dotsHeight
	}
}

func WithoutLegend() Option {
	return func(p *Pie) { p.ShowLegend = false }
}

func New(causes []tally.Cause, opts ...Option) Pie {
	p := Pie{
		Causes:       causes,
		DotsWidth:    DefaultDotsWidth,
		DotsHeight:   DefaultDotsHeight,
		StartAngle:   aggregate.DefaultStartAngle,
		OutlineColor: theme.ColorBgLight,
		LabelColor:   theme.ColorWhite,
		ShowLegend:   true,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func (p Pie) geometry() aggregate.Geometry {
	size := min(p.DotsWidth, p.DotsHeight)
	return aggregate.Geometry{
		CenterX:     float64(p.DotsWidth) / 2,
		CenterY:     float64(p.DotsHeight) / 2,
		OuterRadius: float64(size)/2 - 1,
		StartAngle:  p.StartAngle,
	}
}

// cell is one terminal character of the chart.
type cell struct {
	r     rune
	color color.Color
	dots  int
	label bool
}

func (p Pie) Render() string {
	var (
		g      = p.geometry()
		slices = aggregate.Project(p.Causes, g)
		grid   = p.newGrid()
		canvas = drawille.NewCanvas()
	)

	var filled bool
	for _, s := range slices {
		if s.Empty() {
			continue
		}
		filled = true

		canvas.Clear()
		fillSector(&canvas, g.CenterX, g.CenterY, g.OuterRadius, s.StartAngle, s.Span())
		grid.merge(getCanvasString(&canvas, p.DotsWidth, p.DotsHeight), lipgloss.Color(s.Cause.Color))
	}

	if !filled {
		canvas.Clear()
		drawOutline(&canvas, g.CenterX, g.CenterY, g.OuterRadius)
		grid.merge(getCanvasString(&canvas, p.DotsWidth, p.DotsHeight), p.OutlineColor)
	}

	for _, s := range slices {
		if s.Empty() {
			continue
		}
		grid.label(strconv.FormatInt(s.Cause.Value, 10), s.LabelX, s.LabelY)
	}

	chart := grid.render(p.LabelColor)
	if !p.ShowLegend {
		return chart
	}

	return lipgloss.JoinVertical(lipgloss.Left, chart, "", Legend(slices))
}

// Legend lists every cause in its color, including those with no share.
func Legend(slices []aggregate.Slice) string {
	if len(slices) == 0 {
		return lipgloss.NewStyle().Foreground(theme.ColorDim).Render("no causes yet")
	}

	var (
		lines     = make([]string, 0, len(slices))
		nameWidth int
	)
	for _, s := range slices {
		nameWidth = max(nameWidth, lipgloss.Width(s.Cause.Cause))
	}

	valueStyle := lipgloss.NewStyle().Foreground(theme.ColorDim)
	for _, s := range slices {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Cause.Color)).Render("■")
		name := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Cause.Color)).Width(nameWidth).Render(s.Cause.Cause)
		value := valueStyle.Render(fmt.Sprintf("%d (%d%%)", s.Cause.Value, s.Percent()))
		lines = append(lines, swatch+" "+name+"  "+value)
	}
	return strings.Join(lines, "\n")
}

type grid struct {
	width  int
	height int
	cells  [][]cell
}

func (p Pie) newGrid() *grid {
	g := &grid{width: p.DotsWidth / 2, height: p.DotsHeight / 4}
	g.cells = make([][]cell, g.height)
	for i := range g.cells {
		g.cells[i] = make([]cell, g.width)
		for j := range g.cells[i] {
			g.cells[i][j] = cell{r: ' '}
		}
	}
	return g
}

// merge ORs a canvas layer into the grid. Where layers share a cell the color
// of the layer contributing the most dots wins.
func (g *grid) merge(layer string, c color.Color) {
	for i, line := range strings.Split(layer, "\n") {
		if i >= g.height {
			break
		}
		for j, r := range []rune(line) {
			if j >= g.width || !isBraille(r) || r == emptyBraille {
				continue
			}
			dst := &g.cells[i][j]
			dots := bits.OnesCount(uint(r - emptyBraille))
			if isBraille(dst.r) {
				dst.r = combineBraille(dst.r, r)
			} else {
				dst.r = r
			}
			if dots > dst.dots {
				dst.dots = dots
				dst.color = c
			}
		}
	}
}

// label centers text on the cell containing the dot position (x, y).
func (g *grid) label(text string, x, y float64) {
	var (
		row   = int(y) / 4
		runes = []rune(text)
		start = int(x)/2 - len(runes)/2
	)
	if row < 0 || row >= g.height {
		return
	}
	start = max(0, min(start, g.width-len(runes)))
	for k, r := range runes {
		col := start + k
		if col < 0 || col >= g.width {
			continue
		}
		g.cells[row][col] = cell{r: r, label: true}
	}
}

func (g *grid) render(labelColor color.Color) string {
	labelStyle := lipgloss.NewStyle().Foreground(labelColor).Bold(true)

	lines := make([]string, 0, g.height)
	for _, row := range g.cells {
		var b strings.Builder
		for _, c := range row {
			switch {
			case c.label:
				b.WriteString(labelStyle.Render(string(c.r)))
			case isBraille(c.r):
				b.WriteString(lipgloss.NewStyle().Foreground(c.color).Render(string(c.r)))
			default:
				b.WriteRune(' ')
			}
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// getCanvasString extracts the canvas as a string with consistent dimensions.
func getCanvasString(canvas *drawille.Canvas, width, height int) string {
	// each braille char is 2 dots wide, 4 dots tall
	charWidth := width / 2
	charHeight := height / 4

	rows := canvas.Rows(0, 0, width, height)

	var lines []string
	for i := range charHeight {
		if i < len(rows) {
			// pad or truncate to exact width
			line := rows[i]
			runeCount := len([]rune(line))
			if runeCount < charWidth {
				line += strings.Repeat(" ", charWidth-runeCount)
			} else if runeCount > charWidth {
				line = string([]rune(line)[:charWidth])
			}
			lines = append(lines, line)
		} else {
			lines = append(lines, strings.Repeat(" ", charWidth))
		}
	}

	return strings.Join(lines, "\n")
}

const emptyBraille rune = '\u2800'

// isBraille returns true if the rune is a braille character (U+2800 to U+28FF)
func isBraille(r rune) bool {
	return r >= 0x2800 && r <= 0x28FF
}

// combineBraille ORs the dots of two braille characters together
func combineBraille(a, b rune) rune {
	patternA := a - emptyBraille
	patternB := b - emptyBraille
	return emptyBraille + (patternA | patternB)
}

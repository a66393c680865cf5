package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wize-snake/internal/render"
)

// upperHalf packs two grid rows into one terminal line: the glyph takes the
// top cell's colour and the background the bottom cell's.
const upperHalf = "▀"

// painter turns a CellBuffer into a coloured string. Rendered glyphs are
// cached per colour pair.
type painter struct {
	glyphs map[[2]color.RGBA]string
	line   []string
}

func newPainter() *painter {
	return &painter{glyphs: make(map[[2]color.RGBA]string)}
}

func (p *painter) paint(cells *render.CellBuffer) string {
	cols, rows := cells.Size()
	lines := (rows + 1) / 2
	if cap(p.line) < cols {
		p.line = make([]string, cols)
	}
	p.line = p.line[:cols]

	var sb strings.Builder
	for l := 0; l < lines; l++ {
		top, bottom := 2*l, 2*l+1
		if bottom >= rows {
			bottom = top
		}
		for c := 0; c < cols; c++ {
			p.line[c] = p.glyph(cells.At(c, top), cells.At(c, bottom))
		}
		for _, span := range cells.Texts() {
			if span.Y/cells.Block()/2 == l {
				p.overlayText(cells, span, top)
			}
		}
		for _, seg := range p.line {
			sb.WriteString(seg)
		}
		if l < lines-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// overlayText writes span over the line, one terminal column per character,
// clipped at the right edge.
func (p *painter) overlayText(cells *render.CellBuffer, span render.TextSpan, row int) {
	col := span.X / cells.Block()
	if col < 0 || col >= len(p.line) {
		return
	}
	runes := []rune(span.Text)
	if room := len(p.line) - col; len(runes) > room {
		runes = runes[:room]
	}
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(hexColor(span.Color)).
		Background(hexColor(cells.At(col, row)))
	p.line[col] = style.Render(string(runes))
	for i := 1; i < len(runes); i++ {
		p.line[col+i] = ""
	}
}

func (p *painter) glyph(top, bottom color.RGBA) string {
	key := [2]color.RGBA{top, bottom}
	if g, ok := p.glyphs[key]; ok {
		return g
	}
	g := lipgloss.NewStyle().
		Foreground(hexColor(top)).
		Background(hexColor(bottom)).
		Render(upperHalf)
	p.glyphs[key] = g
	return g
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

package render

import "image/color"

// TextSpan is a piece of text queued by DrawText, in display units.
type TextSpan struct {
	Text  string
	X, Y  int
	Color color.RGBA
	Size  int
}

// CellBuffer is a headless core.Surface at block resolution. Rectangles are
// rasterised onto whole blocks; text is kept as spans for the front end to
// place.
type CellBuffer struct {
	cols, rows int
	block      int
	cells      []color.RGBA
	texts      []TextSpan
	frames     int
}

// NewCellBuffer allocates a buffer covering a w×h board of block-sized cells.
func NewCellBuffer(w, h, block int) *CellBuffer {
	if block <= 0 {
		block = 1
	}
	cols := w / block
	rows := h / block
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	return &CellBuffer{cols: cols, rows: rows, block: block, cells: make([]color.RGBA, cols*rows)}
}

// Clear fills every cell with c and drops queued text.
func (b *CellBuffer) Clear(c color.Color) {
	col := toRGBA(c)
	for i := range b.cells {
		b.cells[i] = col
	}
	b.texts = b.texts[:0]
}

// DrawRect fills every block the rectangle touches, clipped to the buffer.
func (b *CellBuffer) DrawRect(x, y, w, h int, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := b.cellFloor(x), b.cellFloor(y)
	x1, y1 := b.cellCeil(x+w), b.cellCeil(y+h)
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > b.cols {
		x1 = b.cols
	}
	if y1 > b.rows {
		y1 = b.rows
	}
	col := toRGBA(c)
	for row := y0; row < y1; row++ {
		for cx := x0; cx < x1; cx++ {
			b.cells[row*b.cols+cx] = col
		}
	}
}

// DrawText queues a text span.
func (b *CellBuffer) DrawText(text string, x, y int, c color.Color, size int) {
	b.texts = append(b.texts, TextSpan{Text: text, X: x, Y: y, Color: toRGBA(c), Size: size})
}

// Present marks the end of a frame.
func (b *CellBuffer) Present() { b.frames++ }

// Size returns the buffer dimensions in cells.
func (b *CellBuffer) Size() (cols, rows int) { return b.cols, b.rows }

// Block returns the cell size in display units.
func (b *CellBuffer) Block() int { return b.block }

// At returns the colour of the cell at (col, row).
func (b *CellBuffer) At(col, row int) color.RGBA {
	if col < 0 || col >= b.cols || row < 0 || row >= b.rows {
		return color.RGBA{}
	}
	return b.cells[row*b.cols+col]
}

// Cells exposes the row-major cell colours.
func (b *CellBuffer) Cells() []color.RGBA { return b.cells }

// Texts returns the spans queued since the last Clear.
func (b *CellBuffer) Texts() []TextSpan { return b.texts }

// Frames returns how many frames have been presented.
func (b *CellBuffer) Frames() int { return b.frames }

func (b *CellBuffer) cellFloor(v int) int {
	if v < 0 {
		return -((-v + b.block - 1) / b.block)
	}
	return v / b.block
}

func (b *CellBuffer) cellCeil(v int) int {
	if v < 0 {
		return -(-v / b.block)
	}
	return (v + b.block - 1) / b.block
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

package snake

import "wize-snake/internal/core"

// Body is the ordered list of occupied cells, oldest first. The last cell is
// the head.
type Body struct {
	cells []core.Cell
}

// Push appends head and drops the oldest cells until at most limit remain.
func (b *Body) Push(head core.Cell, limit int) {
	b.cells = append(b.cells, head)
	if over := len(b.cells) - limit; over > 0 {
		b.cells = b.cells[over:]
	}
}

// Head returns the newest cell. ok is false for an empty body.
func (b *Body) Head() (core.Cell, bool) {
	if len(b.cells) == 0 {
		return core.Cell{}, false
	}
	return b.cells[len(b.cells)-1], true
}

// Len returns the number of occupied cells.
func (b *Body) Len() int { return len(b.cells) }

// Cells exposes the backing slice; callers must not modify it.
func (b *Body) Cells() []core.Cell { return b.cells }

// Segments returns every cell except the head.
func (b *Body) Segments() []core.Cell {
	if len(b.cells) == 0 {
		return nil
	}
	return b.cells[:len(b.cells)-1]
}

// Reset empties the body, keeping the allocation.
func (b *Body) Reset() { b.cells = b.cells[:0] }

package snake

import "wize-snake/internal/core"

// DefaultScanSteps is the lookahead budget of ScanPathClear.
const DefaultScanSteps = 100

// IsOccupied reports whether c equals any cell of body.
func IsOccupied(c core.Cell, body []core.Cell) bool {
	for _, part := range body {
		if part == c {
			return true
		}
	}
	return false
}

// ScanPathClear walks up to steps moves of d from start and reports whether
// none of them hits body. The walk does not wrap at the board edges, unlike
// live movement. It returns the cells visited before the first hit, or the
// whole path when clear.
//
// Nothing in the zigzag policy consults it; it is kept as a lookahead
// primitive.
func ScanPathClear(start core.Cell, d core.Delta, body []core.Cell, steps int) (bool, []core.Cell) {
	path := make([]core.Cell, 0, steps)
	for step := 1; step <= steps; step++ {
		next := core.Cell{X: start.X + d.DX*step, Y: start.Y + d.DY*step}
		if IsOccupied(next, body) {
			return false, path
		}
		path = append(path, next)
	}
	return true, path
}

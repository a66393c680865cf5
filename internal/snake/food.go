package snake

import (
	"wize-snake/internal/core"
	rng "wize-snake/pkg/core"
)

// Spawner places food on grid-aligned cells.
type Spawner struct {
	board core.Board
	rng   *rng.RNG
}

// NewSpawner returns a Spawner drawing from a PCG stream seeded with seed.
func NewSpawner(board core.Board, seed int64) *Spawner {
	return &Spawner{board: board, rng: rng.NewRNG(seed)}
}

// Spawn returns a uniformly chosen cell with x in [0, W-B) and y in
// [0, H-B), each floored to the block grid. The snake body is not consulted,
// so food may land under it.
func (s *Spawner) Spawn() core.Cell {
	b := s.board
	return core.Cell{
		X: s.rng.Aligned(b.W-b.Block, b.Block),
		Y: s.rng.Aligned(b.H-b.Block, b.Block),
	}
}

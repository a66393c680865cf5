package snake

import "wize-snake/internal/core"

// ComputeAIMove picks the next movement vector for the zigzag sweep.
//
// Columns whose x is a multiple of 2*block are swept downwards, the others
// upwards; at the bottom (or top) margin the snake steps one column left.
// If the chosen cell is already part of the body the vector is reversed once
// and returned without a second check. The food position and the current
// vector do not influence the decision.
func ComputeAIMove(head core.Cell, _ core.Delta, body []core.Cell, _ core.Cell, b core.Board) core.Delta {
	var d core.Delta
	if head.X%(2*b.Block) == 0 {
		if head.Y < b.H-b.Block {
			d = core.Down(b.Block)
		} else {
			d = core.Left(b.Block)
		}
	} else {
		if head.Y > 0 {
			d = core.Up(b.Block)
		} else {
			d = core.Left(b.Block)
		}
	}

	if IsOccupied(head.Add(d), body) {
		return d.Reverse()
	}
	return d
}

package core

import (
	"errors"
	"fmt"
)

// ErrInvalidBoard reports board dimensions that cannot hold a block grid.
var ErrInvalidBoard = errors.New("invalid board")

// Cell is a grid-aligned board coordinate in display units.
type Cell struct {
	X, Y int
}

// Delta is a per-tick movement vector. It is either zero or exactly one
// block along a single axis.
type Delta struct {
	DX, DY int
}

// Left returns the unit vector pointing left for the given block size.
func Left(block int) Delta { return Delta{DX: -block} }

// Right returns the unit vector pointing right for the given block size.
func Right(block int) Delta { return Delta{DX: block} }

// Up returns the unit vector pointing up (towards y=0).
func Up(block int) Delta { return Delta{DY: -block} }

// Down returns the unit vector pointing down.
func Down(block int) Delta { return Delta{DY: block} }

// Reverse returns the vector pointing the opposite way.
func (d Delta) Reverse() Delta { return Delta{DX: -d.DX, DY: -d.DY} }

// IsZero reports whether the vector is the stationary (0,0) start vector.
func (d Delta) IsZero() bool { return d.DX == 0 && d.DY == 0 }

// Add moves c by d without wrapping.
func (c Cell) Add(d Delta) Cell { return Cell{X: c.X + d.DX, Y: c.Y + d.DY} }

// Board describes the toroidal play area: W×H display units split into
// square blocks of size Block.
type Board struct {
	W, H  int
	Block int
}

// NewBoard validates the dimensions and returns a Board.
func NewBoard(w, h, block int) (Board, error) {
	if block <= 0 {
		return Board{}, fmt.Errorf("block size %d: %w", block, ErrInvalidBoard)
	}
	if w <= 0 || h <= 0 {
		return Board{}, fmt.Errorf("size %dx%d: %w", w, h, ErrInvalidBoard)
	}
	if w%block != 0 || h%block != 0 {
		return Board{}, fmt.Errorf("size %dx%d not a multiple of block %d: %w", w, h, block, ErrInvalidBoard)
	}
	return Board{W: w, H: h, Block: block}, nil
}

// Cols returns the number of block columns.
func (b Board) Cols() int { return b.W / b.Block }

// Rows returns the number of block rows.
func (b Board) Rows() int { return b.H / b.Block }

// Wrap applies d to c with toroidal wrapping on both axes.
func (b Board) Wrap(c Cell, d Delta) Cell {
	x := ((c.X+d.DX)%b.W + b.W) % b.W
	y := ((c.Y+d.DY)%b.H + b.H) % b.H
	return Cell{X: x, Y: y}
}

// Center returns the block containing the middle of the board.
func (b Board) Center() Cell {
	return Cell{X: b.W / 2 / b.Block * b.Block, Y: b.H / 2 / b.Block * b.Block}
}

// Contains reports whether c lies inside the board.
func (b Board) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

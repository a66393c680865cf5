package ui

import (
	"image/color"
	"strconv"

	"wize-snake/internal/core"
)

const (
	hudX = 10
	hudY = 10
)

// HUD renders the score in the band at the top-left of the board.
type HUD struct {
	color color.Color
	size  int
}

// NewHUD constructs a HUD drawing in col at the given font size.
func NewHUD(col color.Color, size int) *HUD {
	if size <= 0 {
		size = 1
	}
	return &HUD{color: col, size: size}
}

// Draw paints the current score.
func (h *HUD) Draw(dst core.Surface, score int) {
	if h == nil {
		return
	}
	dst.DrawText(ScoreText(score), hudX, hudY, h.color, h.size)
}

// ScoreText formats the score label.
func ScoreText(score int) string {
	return "Score: " + strconv.Itoa(score)
}

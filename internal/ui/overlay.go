package ui

import (
	"image/color"

	"wize-snake/internal/core"
)

// LostMessage is shown once a round ends.
const LostMessage = "You Lost! Press C-Play Again or Q-Quit"

// Overlay draws the round-over message on top of the background.
type Overlay struct {
	text  string
	color color.Color
	size  int
}

// NewOverlay constructs the round-over overlay.
func NewOverlay(col color.Color, size int) *Overlay {
	if size <= 0 {
		size = 1
	}
	return &Overlay{text: LostMessage, color: col, size: size}
}

// Draw places the message a sixth of the way across and a third of the way
// down a w×h board.
func (o *Overlay) Draw(dst core.Surface, w, h int) {
	if o == nil {
		return
	}
	dst.DrawText(o.text, w/6, h/3, o.color, o.size)
}

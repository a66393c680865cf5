//go:build ebiten

package app

import (
	"wize-snake/internal/core"
	"wize-snake/internal/render"
	"wize-snake/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a snake session to the ebiten.Game interface.
type Game struct {
	session *snake.Session
	input   *Keyboard
	step    *core.FixedStep
	cells   *render.CellBuffer
	painter *render.GridPainter

	w, h int
}

// New constructs a Game for the provided session.
func New(session *snake.Session) *Game {
	b := session.Board()
	cells := render.NewCellBuffer(b.W, b.H, b.Block)
	cols, rows := cells.Size()
	return &Game{
		session: session,
		input:   NewKeyboard(),
		step:    core.NewFixedStep(session.TickRate()),
		cells:   cells,
		painter: render.NewGridPainter(cols, rows),
		w:       b.W,
		h:       b.H,
	}
}

// Update polls input and advances the session by the ticks that are due.
func (g *Game) Update() error {
	g.session.HandleEvents(g.input.PollEvents())
	if g.session.State() == snake.Exited {
		return ebiten.Termination
	}

	g.step.SetTPS(g.session.TickRate())
	for n := g.step.Due(); n > 0 && g.session.State() == snake.Running; n-- {
		g.session.Tick()
	}
	return nil
}

// Draw renders the current session frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Draw(g.cells)
	g.painter.Blit(screen, g.cells)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

package snake

import "wize-snake/internal/core"

// Draw renders the current frame onto dst and presents it.
//
// While running, and for the frame in which the round was lost, it draws the
// board: background, food, every body block and the score. Once the loss has
// been seen by an input poll it draws the round-over overlay instead.
func (s *Session) Draw(dst core.Surface) {
	p := s.cfg.Palette
	dst.Clear(p.Background)
	if s.state == RoundOver && s.showOverlay {
		s.overlay.Draw(dst, s.board.W, s.board.H)
		dst.Present()
		return
	}

	block := s.board.Block
	dst.DrawRect(s.round.food.X, s.round.food.Y, block, block, p.Food)
	for _, c := range s.round.body.Cells() {
		dst.DrawRect(c.X, c.Y, block, block, p.Body)
	}
	s.hud.Draw(dst, s.round.score)
	dst.Present()
}

package snake

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"wize-snake/internal/core"
	"wize-snake/internal/ui"
)

// State is the phase of the game state machine.
type State uint8

const (
	// Running advances the snake every tick.
	Running State = iota
	// RoundOver shows the loss overlay and waits for quit or restart.
	RoundOver
	// Exited is terminal; the front end should tear down.
	Exited
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case RoundOver:
		return "round-over"
	case Exited:
		return "exited"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// round is everything that is rebuilt on restart.
type round struct {
	id     string
	head   core.Cell
	delta  core.Delta
	body   Body
	length int
	score  int
	food   core.Cell
}

// Session runs rounds of the game. It is driven by a single front-end loop
// and is not safe for concurrent use.
type Session struct {
	cfg   Config
	board core.Board
	food  *Spawner
	log   *slog.Logger

	hud     *ui.HUD
	overlay *ui.Overlay

	state       State
	ai          bool
	showOverlay bool
	round       round
}

// NewSession validates cfg and starts the first round. ai pre-enables AI
// mode. A nil logger discards log output.
func NewSession(cfg Config, ai bool, logger *slog.Logger) (*Session, error) {
	board, err := core.NewBoard(cfg.Width, cfg.Height, cfg.Block)
	if err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		cfg:     cfg,
		board:   board,
		food:    NewSpawner(board, seed),
		log:     logger,
		hud:     ui.NewHUD(cfg.Palette.Score, cfg.ScoreFontSize),
		overlay: ui.NewOverlay(cfg.Palette.Message, cfg.MessageFontSize),
		ai:      ai,
	}
	s.Restart()
	return s, nil
}

// Restart reinitialises the round in place. AI mode is kept.
func (s *Session) Restart() {
	body := s.round.body
	body.Reset()
	s.round = round{
		id:     uuid.NewString(),
		head:   s.board.Center(),
		body:   body,
		length: 1,
		food:   s.food.Spawn(),
	}
	s.state = Running
	s.showOverlay = false
	s.log.Info("round started", "round", s.round.id, "ai", s.ai, "food_x", s.round.food.X, "food_y", s.round.food.Y)
}

// HandleEvents applies the input collected since the previous frame.
func (s *Session) HandleEvents(events []core.Event) {
	switch s.state {
	case Running:
		for _, ev := range events {
			if s.state != Running {
				return
			}
			s.handleRunning(ev)
		}
	case RoundOver:
		s.showOverlay = true
		for _, ev := range events {
			if s.state != RoundOver {
				return
			}
			s.handleRoundOver(ev)
		}
	}
}

func (s *Session) handleRunning(ev core.Event) {
	if ev.Kind == core.EventQuit {
		s.exit()
		return
	}
	if ev.Kind != core.EventKeyDown {
		return
	}
	if ev.Key == core.KeyToggleAI {
		s.ai = !s.ai
		s.log.Info("ai mode toggled", "round", s.round.id, "ai", s.ai)
		return
	}
	if s.ai {
		return
	}
	s.steer(ev.Key)
}

// steer sets the manual direction, refusing the exact reverse of the
// current vector on the same axis.
func (s *Session) steer(k core.Key) {
	block := s.board.Block
	d := s.round.delta
	switch k {
	case core.KeyLeft:
		if d.DX != block {
			s.round.delta = core.Left(block)
		}
	case core.KeyRight:
		if d.DX != -block {
			s.round.delta = core.Right(block)
		}
	case core.KeyUp:
		if d.DY != block {
			s.round.delta = core.Up(block)
		}
	case core.KeyDown:
		if d.DY != -block {
			s.round.delta = core.Down(block)
		}
	}
}

func (s *Session) handleRoundOver(ev core.Event) {
	switch {
	case ev.Kind == core.EventQuit:
		s.exit()
	case ev.Kind == core.EventKeyDown && ev.Key == core.KeyQuit:
		s.exit()
	case ev.Kind == core.EventKeyDown && ev.Key == core.KeyConfirm:
		s.Restart()
	}
}

func (s *Session) exit() {
	s.state = Exited
	s.log.Info("exiting", "round", s.round.id, "score", s.round.score)
}

// Tick advances a running round by one step. It is a no-op in other states.
func (s *Session) Tick() {
	if s.state != Running {
		return
	}
	r := &s.round
	if s.ai {
		r.delta = ComputeAIMove(r.head, r.delta, r.body.Cells(), r.food, s.board)
	}

	r.head = s.board.Wrap(r.head, r.delta)
	s.log.Debug("position", "x", r.head.X, "y", r.head.Y)

	r.body.Push(r.head, r.length)
	if IsOccupied(r.head, r.body.Segments()) {
		s.state = RoundOver
		s.log.Info("round lost", "round", r.id, "score", r.score, "length", r.length)
	}

	if r.head == r.food {
		r.food = s.food.Spawn()
		r.length++
		r.score++
		s.log.Debug("food eaten", "round", r.id, "length", r.length, "food_x", r.food.X, "food_y", r.food.Y)
	}
}

// TickRate returns the ticks per second the front end should run:
// ManualTPS for a player, core.Unbounded in AI mode.
func (s *Session) TickRate() int {
	if s.ai {
		return core.Unbounded
	}
	return s.cfg.ManualTPS
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// AIMode reports whether the AI is steering.
func (s *Session) AIMode() bool { return s.ai }

// Board returns the play area geometry.
func (s *Session) Board() core.Board { return s.board }

// Head returns the current head position.
func (s *Session) Head() core.Cell { return s.round.head }

// Delta returns the current movement vector.
func (s *Session) Delta() core.Delta { return s.round.delta }

// Body returns the occupied cells, oldest first. Callers must not modify it.
func (s *Session) Body() []core.Cell { return s.round.body.Cells() }

// Length returns the target body length.
func (s *Session) Length() int { return s.round.length }

// Score returns the round score.
func (s *Session) Score() int { return s.round.score }

// Food returns the food cell.
func (s *Session) Food() core.Cell { return s.round.food }

// RoundID returns the identifier used to tag this round's log lines.
func (s *Session) RoundID() string { return s.round.id }

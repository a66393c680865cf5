package snake

import (
	"testing"

	"wize-snake/internal/core"
)

func newTestSession(t *testing.T, ai bool) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 1
	s, err := NewSession(cfg, ai, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

// placeSnake puts the session in the middle of a round with the given body,
// head last.
func placeSnake(s *Session, body []core.Cell, length int, d core.Delta) {
	s.round.body = Body{cells: append([]core.Cell(nil), body...)}
	s.round.head = body[len(body)-1]
	s.round.length = length
	s.round.delta = d
	s.round.food = core.Cell{X: 500, Y: 400}
}

func TestNewSessionRejectsMisalignedBoard(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 605
	if _, err := NewSession(cfg, false, nil); err == nil {
		t.Fatal("expected an error for a board not divisible by the block")
	}
}

func TestNewSessionInitialRound(t *testing.T) {
	s := newTestSession(t, false)
	if s.State() != Running {
		t.Fatalf("state got %v, expected running", s.State())
	}
	if s.Head() != (core.Cell{X: 300, Y: 250}) {
		t.Fatalf("head got %v, expected (300,250)", s.Head())
	}
	if s.Length() != 1 || s.Score() != 0 || len(s.Body()) != 0 {
		t.Fatalf("got length=%d score=%d body=%d, expected 1/0/0", s.Length(), s.Score(), len(s.Body()))
	}
	if !s.Delta().IsZero() {
		t.Fatalf("delta got %v, expected zero", s.Delta())
	}
	if s.RoundID() == "" {
		t.Fatal("round id should be set")
	}
}

func TestTickSelfCollision(t *testing.T) {
	body := []core.Cell{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}

	s := newTestSession(t, false)
	placeSnake(s, body, 4, core.Right(10))
	s.HandleEvents([]core.Event{core.KeyEvent(core.KeyUp)})
	s.Tick()
	if s.State() != RoundOver {
		t.Fatalf("moving up into (10,0) got %v, expected round-over", s.State())
	}

	s = newTestSession(t, false)
	placeSnake(s, body, 4, core.Down(10))
	s.HandleEvents([]core.Event{core.KeyEvent(core.KeyLeft)})
	s.Tick()
	if s.State() != Running {
		t.Fatalf("moving left into (0,10) got %v, expected running", s.State())
	}
	if s.Head() != (core.Cell{X: 0, Y: 10}) {
		t.Fatalf("head got %v, expected (0,10)", s.Head())
	}
}

func TestSteerRejectsReverse(t *testing.T) {
	s := newTestSession(t, false)
	placeSnake(s, []core.Cell{{X: 100, Y: 100}}, 1, core.Right(10))
	s.HandleEvents([]core.Event{core.KeyEvent(core.KeyLeft)})
	if s.Delta() != core.Right(10) {
		t.Fatalf("delta got %v, expected the reverse to be ignored", s.Delta())
	}
	s.HandleEvents([]core.Event{core.KeyEvent(core.KeyUp)})
	if s.Delta() != core.Up(10) {
		t.Fatalf("delta got %v, expected up", s.Delta())
	}
	s.HandleEvents([]core.Event{core.KeyEvent(core.KeyDown)})
	if s.Delta() != core.Up(10) {
		t.Fatalf("delta got %v, expected down to be ignored while moving up", s.Delta())
	}
}

func TestSteerFromRest(t *testing.T) {
	for _, k := range []core.Key{core.KeyLeft, core.KeyRight, core.KeyUp, core.KeyDown} {
		s := newTestSession(t, false)
		s.HandleEvents([]core.Event{core.KeyEvent(k)})
		if s.Delta().IsZero() {
			t.Fatalf("%v from rest left the delta at zero", k)
		}
	}
}

func TestTickEatsFood(t *testing.T) {
	s := newTestSession(t, false)
	placeSnake(s, []core.Cell{{X: 100, Y: 100}}, 1, core.Right(10))
	s.round.food = core.Cell{X: 110, Y: 100}
	s.Tick()
	if s.Score() != 1 || s.Length() != 2 {
		t.Fatalf("got score=%d length=%d, expected 1/2", s.Score(), s.Length())
	}
	f := s.Food()
	if f.X%10 != 0 || f.Y%10 != 0 || f.X >= 590 || f.Y >= 490 {
		t.Fatalf("new food %v is not a valid grid cell", f)
	}
	s.Tick()
	if got := len(s.Body()); got != 2 {
		t.Fatalf("body got %d cells after growing, expected 2", got)
	}
}

func TestTickWrapsAround(t *testing.T) {
	s := newTestSession(t, false)
	placeSnake(s, []core.Cell{{X: 590, Y: 0}}, 1, core.Right(10))
	s.Tick()
	if s.Head() != (core.Cell{X: 0, Y: 0}) {
		t.Fatalf("head got %v, expected wrap to (0,0)", s.Head())
	}
	s.round.delta = core.Up(10)
	s.Tick()
	if s.Head() != (core.Cell{X: 0, Y: 490}) {
		t.Fatalf("head got %v, expected wrap to (0,490)", s.Head())
	}
}

func TestBodyNeverExceedsLength(t *testing.T) {
	s := newTestSession(t, true)
	for i := 0; i < 5000 && s.State() == Running; i++ {
		s.Tick()
		if len(s.Body()) > s.Length() {
			t.Fatalf("tick %d: body %d cells exceeds length %d", i, len(s.Body()), s.Length())
		}
		if !s.Board().Contains(s.Head()) {
			t.Fatalf("tick %d: head %v left the board", i, s.Head())
		}
	}
}

func TestRoundOverInput(t *testing.T) {
	s := newTestSession(t, false)
	s.state = RoundOver
	s.HandleEvents([]core.Event{
		core.KeyEvent(core.KeyLeft),
		core.KeyEvent(core.KeyToggleAI),
	})
	if s.State() != RoundOver || s.AIMode() {
		t.Fatalf("got state=%v ai=%v, expected other keys ignored", s.State(), s.AIMode())
	}
	before := s.Head()
	s.Tick()
	if s.Head() != before {
		t.Fatal("tick should not move the snake once the round is over")
	}
	s.HandleEvents([]core.Event{core.KeyEvent(core.KeyQuit)})
	if s.State() != Exited {
		t.Fatalf("state got %v, expected exited", s.State())
	}
}

func TestRoundOverWindowClose(t *testing.T) {
	s := newTestSession(t, false)
	s.state = RoundOver
	s.HandleEvents([]core.Event{core.QuitEvent()})
	if s.State() != Exited {
		t.Fatalf("state got %v, expected exited", s.State())
	}
}

func TestRestartResetsRound(t *testing.T) {
	s := newTestSession(t, true)
	placeSnake(s, []core.Cell{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}}, 3, core.Right(10))
	s.round.score = 7
	s.state = RoundOver
	oldID := s.RoundID()

	s.HandleEvents([]core.Event{core.KeyEvent(core.KeyConfirm)})
	if s.State() != Running {
		t.Fatalf("state got %v, expected running", s.State())
	}
	if s.Length() != 1 || s.Score() != 0 || len(s.Body()) != 0 {
		t.Fatalf("got length=%d score=%d body=%d, expected 1/0/0", s.Length(), s.Score(), len(s.Body()))
	}
	if s.Head() != s.Board().Center() {
		t.Fatalf("head got %v, expected center", s.Head())
	}
	if s.RoundID() == oldID {
		t.Fatal("restart should start a new round id")
	}
	if !s.AIMode() {
		t.Fatal("restart should keep AI mode")
	}
}

func TestRestartIsRepeatable(t *testing.T) {
	s := newTestSession(t, false)
	for i := 0; i < 100; i++ {
		s.state = RoundOver
		s.HandleEvents([]core.Event{core.KeyEvent(core.KeyConfirm)})
		if s.State() != Running {
			t.Fatalf("restart %d: state got %v", i, s.State())
		}
	}
}

func TestRunningInput(t *testing.T) {
	s := newTestSession(t, false)
	s.HandleEvents([]core.Event{core.KeyEvent(core.KeyQuit), core.KeyEvent(core.KeyConfirm)})
	if s.State() != Running {
		t.Fatalf("state got %v, expected Q and C to be ignored while running", s.State())
	}
	s.HandleEvents([]core.Event{core.QuitEvent(), core.KeyEvent(core.KeyLeft)})
	if s.State() != Exited {
		t.Fatalf("state got %v, expected exited", s.State())
	}
	if !s.Delta().IsZero() {
		t.Fatal("events after quit must not be applied")
	}
}

func TestToggleAI(t *testing.T) {
	s := newTestSession(t, false)
	if s.TickRate() != 15 {
		t.Fatalf("manual tick rate got %d, expected 15", s.TickRate())
	}
	s.HandleEvents([]core.Event{core.KeyEvent(core.KeyToggleAI)})
	if !s.AIMode() || s.TickRate() != core.Unbounded {
		t.Fatalf("got ai=%v rate=%d, expected AI unbounded", s.AIMode(), s.TickRate())
	}
	s.HandleEvents([]core.Event{core.KeyEvent(core.KeyLeft)})
	if !s.Delta().IsZero() {
		t.Fatal("arrow keys must be ignored in AI mode")
	}
	s.Tick()
	if s.Delta() != core.Down(10) {
		t.Fatalf("AI delta from the center got %v, expected down", s.Delta())
	}
	s.HandleEvents([]core.Event{core.KeyEvent(core.KeyToggleAI)})
	if s.AIMode() {
		t.Fatal("second toggle should hand control back")
	}
}

func TestStateString(t *testing.T) {
	for st, want := range map[State]string{Running: "running", RoundOver: "round-over", Exited: "exited", State(9): "state(9)"} {
		if got := st.String(); got != want {
			t.Fatalf("got %q, expected %q", got, want)
		}
	}
}

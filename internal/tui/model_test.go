package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wize-snake/internal/core"
	"wize-snake/internal/snake"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := snake.DefaultConfig()
	cfg.Seed = 3
	s, err := snake.NewSession(cfg, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	return New(s)
}

func TestModelFirstFrameTicks(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(frameMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected the next frame to be scheduled")
	}
	if got := len(m.Session().Body()); got != 1 {
		t.Fatalf("body got %d cells after the first frame, expected 1", got)
	}
}

func TestModelQueuesKeysUntilFrame(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if !m.Session().Delta().IsZero() {
		t.Fatal("key should not apply before the frame")
	}
	m.Update(frameMsg(time.Now()))
	if got := m.Session().Delta(); got != core.Right(10) {
		t.Fatalf("delta got %v, expected right", got)
	}
}

func TestModelQuitsOnEsc(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	_, cmd := m.Update(frameMsg(time.Now()))
	if m.Session().State() != snake.Exited {
		t.Fatalf("state got %v, expected exited", m.Session().State())
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.Quit")
	}
	if m.View() != "" {
		t.Fatal("view should be empty after exit")
	}
}

func TestModelViewDimensions(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	if got := len(strings.Split(view, "\n")); got != 25 {
		t.Fatalf("view got %d lines, expected 25", got)
	}
	if !strings.Contains(view, "Score: 0") {
		t.Fatal("view should carry the score")
	}
}

func TestModelToggleAI(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	m.Update(frameMsg(time.Now()))
	if !m.Session().AIMode() {
		t.Fatal("expected AI mode after pressing i")
	}
	if !m.step.Unbounded() {
		t.Fatal("step should be unbounded in AI mode")
	}
}

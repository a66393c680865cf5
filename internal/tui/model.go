// Package tui runs the game in a terminal with bubbletea.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wize-snake/internal/core"
	"wize-snake/internal/render"
	"wize-snake/internal/snake"
)

const frameInterval = time.Second / 60

type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Model is the bubbletea model wrapping a snake session. Key presses are
// queued and handed to the session at the start of the next frame.
type Model struct {
	session *snake.Session
	step    *core.FixedStep
	cells   *render.CellBuffer
	painter *painter
	pending []core.Event
}

// New returns a Model driving session.
func New(session *snake.Session) *Model {
	b := session.Board()
	return &Model{
		session: session,
		step:    core.NewFixedStep(session.TickRate()),
		cells:   render.NewCellBuffer(b.W, b.H, b.Block),
		painter: newPainter(),
	}
}

// Init starts the frame clock.
func (m *Model) Init() tea.Cmd {
	return frame()
}

// Update queues key presses and advances the session on every frame.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if ev, ok := translateKey(msg); ok {
			m.pending = append(m.pending, ev)
		}
		return m, nil
	case frameMsg:
		m.advance()
		if m.session.State() == snake.Exited {
			return m, tea.Quit
		}
		return m, frame()
	}
	return m, nil
}

func (m *Model) advance() {
	m.session.HandleEvents(m.pending)
	m.pending = m.pending[:0]
	if m.session.State() != snake.Running {
		return
	}
	m.step.SetTPS(m.session.TickRate())
	for n := m.step.Due(); n > 0 && m.session.State() == snake.Running; n-- {
		m.session.Tick()
	}
}

// View draws the current frame.
func (m *Model) View() string {
	if m.session.State() == snake.Exited {
		return ""
	}
	m.session.Draw(m.cells)
	return m.painter.paint(m.cells)
}

// Session returns the wrapped session.
func (m *Model) Session() *snake.Session { return m.session }

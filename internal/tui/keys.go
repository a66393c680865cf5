package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"wize-snake/internal/core"
)

// translateKey maps a terminal key press onto a game event. ctrl+c and esc
// stand in for closing the window.
func translateKey(msg tea.KeyMsg) (core.Event, bool) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return core.QuitEvent(), true
	case tea.KeyLeft:
		return core.KeyEvent(core.KeyLeft), true
	case tea.KeyRight:
		return core.KeyEvent(core.KeyRight), true
	case tea.KeyUp:
		return core.KeyEvent(core.KeyUp), true
	case tea.KeyDown:
		return core.KeyEvent(core.KeyDown), true
	case tea.KeyRunes:
		switch strings.ToLower(string(msg.Runes)) {
		case "i":
			return core.KeyEvent(core.KeyToggleAI), true
		case "c":
			return core.KeyEvent(core.KeyConfirm), true
		case "q":
			return core.KeyEvent(core.KeyQuit), true
		}
	}
	return core.Event{}, false
}

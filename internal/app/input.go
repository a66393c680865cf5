//go:build ebiten

package app

import (
	"wize-snake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = []struct {
	key ebiten.Key
	to  core.Key
}{
	{ebiten.KeyArrowLeft, core.KeyLeft},
	{ebiten.KeyArrowRight, core.KeyRight},
	{ebiten.KeyArrowUp, core.KeyUp},
	{ebiten.KeyArrowDown, core.KeyDown},
	{ebiten.KeyI, core.KeyToggleAI},
	{ebiten.KeyC, core.KeyConfirm},
	{ebiten.KeyQ, core.KeyQuit},
}

// Keyboard is a core.EventSource reading ebiten's per-frame key state.
type Keyboard struct {
	events []core.Event
}

// NewKeyboard returns a Keyboard. The window close button is routed through
// it, so closing is deferred until the session has seen the quit event.
func NewKeyboard() *Keyboard {
	ebiten.SetWindowClosingHandled(true)
	return &Keyboard{}
}

// PollEvents returns the keys pressed this frame plus a quit event when the
// window is being closed or Escape is pressed.
func (k *Keyboard) PollEvents() []core.Event {
	k.events = k.events[:0]
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		k.events = append(k.events, core.QuitEvent())
	}
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			k.events = append(k.events, core.KeyEvent(b.to))
		}
	}
	return k.events
}

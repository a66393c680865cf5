package core

import "image/color"

// Surface is the drawing contract a front end offers to the game. All
// coordinates are display units with the origin at the top-left corner.
type Surface interface {
	Clear(c color.Color)
	DrawRect(x, y, w, h int, c color.Color)
	DrawText(text string, x, y int, c color.Color, size int)
	Present()
}

// EventKind distinguishes window-level events from key presses.
type EventKind uint8

const (
	// EventQuit is a request to close the game window.
	EventQuit EventKind = iota + 1
	// EventKeyDown is a single key press.
	EventKeyDown
)

// Key enumerates the keys the game reacts to.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyToggleAI
	KeyConfirm
	KeyQuit
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyToggleAI:
		return "toggle-ai"
	case KeyConfirm:
		return "confirm"
	case KeyQuit:
		return "quit"
	default:
		return "none"
	}
}

// Event is a single input event delivered by a front end.
type Event struct {
	Kind EventKind
	Key  Key
}

// QuitEvent returns a window close request.
func QuitEvent() Event { return Event{Kind: EventQuit} }

// KeyEvent returns a key press event.
func KeyEvent(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// EventSource yields the events collected since the previous poll.
type EventSource interface {
	PollEvents() []Event
}

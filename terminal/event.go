package terminal

import "github.com/lixenwraith/menukit/core"

// EventType classifies terminal events
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventClosed
	EventError
)

// Key represents a parsed input key
type Key uint16

// Key constants - the navigation core only interprets the directional
// keys plus Enter/Escape/Tab; everything else is opaque payload for
// the focused widget
const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete
	KeySpace

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyCtrlC
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// Event is a single terminal event delivered by PollEvent
type Event struct {
	Type EventType
	Key  Key
	Rune rune
	Mod  Modifier

	// Resize payload
	Width, Height int

	// Error payload
	Err error
}

// Direction maps an arrow key to a navigation direction
func (e Event) Direction() (core.Direction, bool) {
	if e.Type != EventKey {
		return 0, false
	}
	switch e.Key {
	case KeyUp:
		return core.DirUp, true
	case KeyDown:
		return core.DirDown, true
	case KeyLeft:
		return core.DirLeft, true
	case KeyRight:
		return core.DirRight, true
	default:
		return 0, false
	}
}

package terminal

import "github.com/gdamore/tcell/v2"

// Screen is the drawing and input surface consumed by the toolkit.
// The navigation core never draws; widgets and the ui session use this
// interface so tests can substitute a simulation screen.
type Screen interface {
	// Lifecycle
	Init() error
	Fini()

	// Geometry
	Size() (width, height int)

	// Output
	SetCell(x, y int, r rune, style tcell.Style)
	Clear()
	Show()

	// Input, blocking
	PollEvent() Event

	// Interrupt wakes a blocked PollEvent with an EventClosed
	Interrupt()
}

package menu

import (
	"fmt"

	"github.com/lixenwraith/menukit/core"
	"github.com/lixenwraith/menukit/terminal"
)

// Stack layers zero or more overlay menus above exactly one active
// background menu. Input routing is top-layer exclusive: while any
// overlay is present, menus below it are inert.
//
// The stack is session state confined to the single control goroutine;
// it is never shared across goroutines.
type Stack struct {
	menus    map[string]*Menu // background menus by name
	current  string           // active background menu
	overlays []*Menu          // bottom to top
}

// NewStack creates a stack with no menus registered
func NewStack() *Stack {
	return &Stack{menus: make(map[string]*Menu)}
}

// AddMenu registers a named background menu. The first menu added
// becomes the active background.
func (s *Stack) AddMenu(name string, m *Menu) error {
	if _, ok := s.menus[name]; ok {
		return fmt.Errorf("add menu %q: %w", name, ErrDuplicateMenu)
	}
	s.menus[name] = m
	if s.current == "" {
		s.current = name
	}
	return nil
}

// SetBackground switches the active background menu by name
func (s *Stack) SetBackground(name string) error {
	if _, ok := s.menus[name]; !ok {
		return fmt.Errorf("set background %q: %w", name, ErrUnknownMenu)
	}
	s.current = name
	return nil
}

// Background returns the active background menu, nil if none was
// registered
func (s *Stack) Background() *Menu {
	return s.menus[s.current]
}

// BackgroundName returns the active background menu name
func (s *Stack) BackgroundName() string {
	return s.current
}

// Menu looks up a registered background menu by name
func (s *Stack) Menu(name string) (*Menu, bool) {
	m, ok := s.menus[name]
	return m, ok
}

// Push places an overlay menu on top of the stack, making it the
// exclusive input target
func (s *Stack) Push(m *Menu) {
	s.overlays = append(s.overlays, m)
}

// Pop removes and returns the topmost overlay. Popping an empty stack
// is a caller logic defect and is surfaced, never silently ignored.
func (s *Stack) Pop() (*Menu, error) {
	if len(s.overlays) == 0 {
		return nil, ErrEmptyStack
	}
	top := s.overlays[len(s.overlays)-1]
	s.overlays = s.overlays[:len(s.overlays)-1]
	return top, nil
}

// ClearOverlays drops every overlay
func (s *Stack) ClearOverlays() {
	s.overlays = nil
}

// Depth returns the overlay count
func (s *Stack) Depth() int {
	return len(s.overlays)
}

// Overlays returns the overlay menus from bottom to top for drawing
func (s *Stack) Overlays() []*Menu {
	out := make([]*Menu, len(s.overlays))
	copy(out, s.overlays)
	return out
}

// Active returns the menu that currently receives input: the topmost
// overlay, else the background menu
func (s *Stack) Active() *Menu {
	if n := len(s.overlays); n > 0 {
		return s.overlays[n-1]
	}
	return s.Background()
}

// HandleDirection delegates spatial navigation to the active menu
func (s *Stack) HandleDirection(dir core.Direction) (string, bool) {
	m := s.Active()
	if m == nil {
		return "", false
	}
	return m.HandleDirection(dir)
}

// HandleKey forwards a key event to the active menu's focused widget
func (s *Stack) HandleKey(ev terminal.Event) bool {
	m := s.Active()
	if m == nil {
		return false
	}
	return m.HandleKey(ev)
}

package ui

import (
	"fmt"

	"github.com/lixenwraith/menukit/core"
	"github.com/lixenwraith/menukit/input"
	"github.com/lixenwraith/menukit/menu"
	"github.com/lixenwraith/menukit/terminal"
	"github.com/lixenwraith/menukit/tui"
)

// Session owns the control loop: it polls the screen for events,
// resolves them against the key bindings, routes them through the
// menu stack and redraws. Everything runs on the caller's goroutine;
// widget callbacks execute inside the loop and may safely mutate
// menus and the stack.
type Session struct {
	scr      terminal.Screen
	stack    *menu.Stack
	binds    *input.Bindings
	theme    *tui.Theme
	feedback *Feedback

	minW, minH int
	onResize   func(w, h int)

	quitMessage string // non-empty enables quit confirmation
	running     bool
}

// NewSession wires a session over a screen and a menu stack with
// default bindings and theme
func NewSession(scr terminal.Screen, stack *menu.Stack) *Session {
	return &Session{
		scr:      scr,
		stack:    stack,
		binds:    input.Default(),
		theme:    tui.DefaultTheme(),
		feedback: NewFeedback(),
		minW:     20,
		minH:     5,
	}
}

// Stack returns the menu stack for callbacks that push or switch menus
func (s *Session) Stack() *menu.Stack {
	return s.stack
}

// Theme returns the active theme
func (s *Session) Theme() *tui.Theme {
	return s.theme
}

// SetTheme replaces the theme, effective on the next draw
func (s *Session) SetTheme(th *tui.Theme) {
	s.theme = th
}

// SetBindings replaces the key bindings
func (s *Session) SetBindings(b *input.Bindings) {
	s.binds = b
}

// Feedback returns the edge tone control
func (s *Session) Feedback() *Feedback {
	return s.feedback
}

// SetMinSize sets the terminal size below which drawing degrades to a
// resize hint instead of a broken layout
func (s *Session) SetMinSize(w, h int) {
	s.minW, s.minH = w, h
}

// OnResize installs the layout callback, invoked with the new size so
// the caller can push recomputed hitboxes through Menu.UpdateHitbox
func (s *Session) OnResize(fn func(w, h int)) {
	s.onResize = fn
}

// ConfirmQuit makes the quit action show a confirmation popup with
// the given message instead of stopping immediately
func (s *Session) ConfirmQuit(message string) {
	s.quitMessage = message
}

// Stop ends the loop after the current event finishes dispatching.
// Safe to call from widget callbacks; from another goroutine pair it
// with the screen's Interrupt.
func (s *Session) Stop() {
	s.running = false
}

// Run initializes the screen and blocks in the event loop until Stop,
// a quit action, or the terminal closing
func (s *Session) Run() error {
	if err := s.scr.Init(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	defer s.scr.Fini()

	if s.onResize != nil {
		w, h := s.scr.Size()
		s.onResize(w, h)
	}

	s.running = true
	s.draw()
	for s.running {
		ev := s.scr.PollEvent()
		switch ev.Type {
		case terminal.EventClosed:
			s.running = false
		case terminal.EventError:
			return fmt.Errorf("session: %w", ev.Err)
		case terminal.EventResize:
			if s.onResize != nil {
				s.onResize(ev.Width, ev.Height)
			}
		case terminal.EventKey:
			s.handleKey(ev)
		}
		s.draw()
	}
	return nil
}

// handleKey routes one key event. Order matters: an actively editing
// widget grabs everything, then bindings resolve, then directional
// actions go widget-first so lists can consume arrows internally
// before spatial navigation runs.
func (s *Session) handleKey(ev terminal.Event) {
	active := s.stack.Active()
	if active != nil {
		if w, ok := active.FocusedWidget(); ok {
			if g, ok := w.(menu.KeyGrabber); ok && g.GrabsKeys() {
				w.HandleKey(ev)
				return
			}
		}
	}

	action := s.binds.Lookup(ev)
	if dir, ok := action.Direction(); ok {
		// hjkl normalizes to arrows so widgets see one shape of
		// directional event
		ev = directionEvent(dir)
		if s.stack.HandleKey(ev) {
			return
		}
		if _, moved := s.stack.HandleDirection(dir); !moved {
			s.feedback.Edge()
		}
		return
	}

	switch action {
	case input.ActionQuit:
		s.requestQuit()
	case input.ActionCancel:
		if s.stack.Depth() > 0 {
			s.stack.Pop()
			return
		}
		s.stack.HandleKey(ev)
	case input.ActionNext:
		if active != nil {
			if _, moved := active.FocusNext(); !moved {
				s.feedback.Edge()
			}
		}
	case input.ActionPrev:
		if active != nil {
			if _, moved := active.FocusPrev(); !moved {
				s.feedback.Edge()
			}
		}
	default:
		s.stack.HandleKey(ev)
	}
}

func (s *Session) requestQuit() {
	if s.quitMessage == "" {
		s.running = false
		return
	}
	s.Confirm(s.quitMessage, func() { s.running = false })
}

func directionEvent(dir core.Direction) terminal.Event {
	ev := terminal.Event{Type: terminal.EventKey}
	switch dir {
	case core.DirUp:
		ev.Key = terminal.KeyUp
	case core.DirDown:
		ev.Key = terminal.KeyDown
	case core.DirLeft:
		ev.Key = terminal.KeyLeft
	default:
		ev.Key = terminal.KeyRight
	}
	return ev
}

// draw renders background then overlays bottom to top. Below the
// minimum size only a resize hint is shown.
func (s *Session) draw() {
	s.scr.Clear()
	w, h := s.scr.Size()
	if w < s.minW || h < s.minH {
		hint := fmt.Sprintf("%dx%d < %dx%d, enlarge terminal", w, h, s.minW, s.minH)
		tui.DrawString(s.scr, 0, 0, hint, s.theme.Text)
		s.scr.Show()
		return
	}
	tui.FillRect(s.scr, 0, 0, w, h, s.theme.Background)
	if bg := s.stack.Background(); bg != nil {
		s.drawMenu(bg)
	}
	for _, m := range s.stack.Overlays() {
		s.drawMenu(m)
	}
	s.scr.Show()
}

func (s *Session) drawMenu(m *menu.Menu) {
	for _, w := range m.Widgets() {
		if d, ok := w.(tui.Drawer); ok {
			d.Draw(s.scr, s.theme)
		}
	}
}

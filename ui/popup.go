package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/menukit/core"
	"github.com/lixenwraith/menukit/menu"
	"github.com/lixenwraith/menukit/tui"
)

// Severity accents for the canned popups
var (
	warnAccent = tcell.NewRGBColor(230, 180, 80)
	errAccent  = tcell.NewRGBColor(230, 90, 90)
)

// PopupButton is one choice offered by a popup
type PopupButton struct {
	Label  string
	Action func()
}

// Popup builds a centered overlay menu with a title, a message and a
// button row, pushes it onto the stack and returns it. Buttons pop
// the overlay before running their action. A default accent keeps the
// theme border; the buttons share one submenu so navigation prefers
// moving between them.
func (s *Session) Popup(title, message string, accent tcell.Color, buttons ...PopupButton) *menu.Menu {
	lines := strings.Split(message, "\n")

	width := runewidth.StringWidth(title) + 6
	for _, l := range lines {
		if w := runewidth.StringWidth(l) + 4; w > width {
			width = w
		}
	}
	btnRow := 0
	for _, b := range buttons {
		btnRow += runewidth.StringWidth(b.Label) + 4 + 2
	}
	if btnRow > 0 {
		btnRow -= 2 // no gap after the last button
	}
	if btnRow+4 > width {
		width = btnRow + 4
	}
	height := len(lines) + 4

	sw, sh := s.scr.Size()
	x := (sw - width) / 2
	y := (sh - height) / 2

	m := menu.New()
	box := tui.NewBox("popup.box", core.NewHitbox(x, y, width, height), title).Filled()
	if accent != tcell.ColorDefault {
		box.Tint(accent)
	}
	m.Register(box, "")

	for i, l := range lines {
		id := fmt.Sprintf("popup.msg.%d", i)
		m.Register(tui.NewText(id, core.NewHitbox(x+2, y+1+i, width-4, 1), l).Centered(), "")
	}

	bx := x + (width-btnRow)/2
	by := y + height - 2
	for i, b := range buttons {
		id := fmt.Sprintf("popup.btn.%d", i)
		bw := runewidth.StringWidth(b.Label) + 4
		action := b.Action
		btn := tui.NewButton(id, core.NewHitbox(bx, by, bw, 1), b.Label, func() {
			s.stack.Pop()
			if action != nil {
				action()
			}
		})
		m.Register(btn, "popup.buttons")
		if i == 0 {
			m.SetFocus(id)
		}
		bx += bw + 2
	}

	s.stack.Push(m)
	return m
}

// Confirm shows a yes/no popup, running onYes only on confirmation
func (s *Session) Confirm(message string, onYes func()) *menu.Menu {
	return s.Popup("Confirm", message, tcell.ColorDefault,
		PopupButton{Label: "Yes", Action: onYes},
		PopupButton{Label: "No"},
	)
}

// Info shows a message with a single OK button
func (s *Session) Info(message string) *menu.Menu {
	return s.Popup("Info", message, s.theme.Accent, PopupButton{Label: "OK"})
}

// Warning shows a message in the warning accent
func (s *Session) Warning(message string) *menu.Menu {
	return s.Popup("Warning", message, warnAccent, PopupButton{Label: "OK"})
}

// Error shows a message in the error accent
func (s *Session) Error(message string) *menu.Menu {
	return s.Popup("Error", message, errAccent, PopupButton{Label: "OK"})
}

// Prompt shows a message above a text field. Committing the field or
// pressing OK pops the overlay and delivers the value; Cancel and
// Escape discard it.
func (s *Session) Prompt(title, message, initial string, onDone func(string)) *menu.Menu {
	width := runewidth.StringWidth(message) + 6
	if width < 30 {
		width = 30
	}
	height := 7

	sw, sh := s.scr.Size()
	x := (sw - width) / 2
	y := (sh - height) / 2

	m := menu.New()
	m.Register(tui.NewBox("popup.box", core.NewHitbox(x, y, width, height), title).Filled(), "")
	m.Register(tui.NewText("popup.msg", core.NewHitbox(x+2, y+1, width-4, 1), message), "")

	deliver := func(v string) {
		s.stack.Pop()
		if onDone != nil {
			onDone(v)
		}
	}
	field := tui.NewTextInput("popup.field", core.NewHitbox(x+2, y+3, width-4, 1), initial, 0, deliver)
	m.Register(field, "popup.form")

	okW := runewidth.StringWidth("OK") + 4
	cancelW := runewidth.StringWidth("Cancel") + 4
	bx := x + (width-okW-cancelW-2)/2
	by := y + height - 2
	m.Register(tui.NewButton("popup.ok", core.NewHitbox(bx, by, okW, 1), "OK", func() {
		deliver(field.Value())
	}), "popup.buttons")
	m.Register(tui.NewButton("popup.cancel", core.NewHitbox(bx+okW+2, by, cancelW, 1), "Cancel", func() {
		s.stack.Pop()
	}), "popup.buttons")

	m.SetFocus("popup.field")
	s.stack.Push(m)
	return m
}

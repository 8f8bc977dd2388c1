package tui

import (
	"github.com/lixenwraith/menukit/core"
	"github.com/lixenwraith/menukit/terminal"
)

// Button is a focusable label that runs an action on Enter or Space
type Button struct {
	BaseWidget
	label  string
	action func()
}

// NewButton creates a button; action may be nil
func NewButton(id string, hb core.Hitbox, label string, action func()) *Button {
	return &Button{
		BaseWidget: newBaseWidget(id, hb),
		label:      label,
		action:     action,
	}
}

// SetLabel replaces the button text
func (b *Button) SetLabel(label string) {
	b.label = label
}

// HandleKey activates on Enter or Space, everything else flows past
func (b *Button) HandleKey(ev terminal.Event) bool {
	if ev.Type != terminal.EventKey {
		return false
	}
	switch ev.Key {
	case terminal.KeyEnter, terminal.KeySpace:
		if b.action != nil {
			b.action()
		}
		return true
	}
	return false
}

// Draw renders the label centered, highlighted while focused
func (b *Button) Draw(scr terminal.Screen, th *Theme) {
	hb := b.Hitbox()
	style := th.Button
	if b.Focused() {
		style = th.ButtonFocus
	} else if !b.Enabled() {
		style = th.Dim
	}
	DrawStringFixed(scr, hb.X, hb.Y, hb.W, b.label, style, true)
}

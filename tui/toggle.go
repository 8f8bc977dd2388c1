package tui

import (
	"github.com/lixenwraith/menukit/core"
	"github.com/lixenwraith/menukit/terminal"
)

// Toggle is an on/off checkbox rendered as "[x] label"
type Toggle struct {
	BaseWidget
	label    string
	checked  bool
	onChange func(bool)
}

// NewToggle creates a toggle; onChange may be nil
func NewToggle(id string, hb core.Hitbox, label string, checked bool, onChange func(bool)) *Toggle {
	return &Toggle{
		BaseWidget: newBaseWidget(id, hb),
		label:      label,
		checked:    checked,
		onChange:   onChange,
	}
}

// Checked returns the current state
func (t *Toggle) Checked() bool {
	return t.checked
}

// SetChecked forces the state without firing onChange
func (t *Toggle) SetChecked(checked bool) {
	t.checked = checked
}

// HandleKey flips on Enter or Space
func (t *Toggle) HandleKey(ev terminal.Event) bool {
	if ev.Type != terminal.EventKey {
		return false
	}
	switch ev.Key {
	case terminal.KeyEnter, terminal.KeySpace:
		t.checked = !t.checked
		if t.onChange != nil {
			t.onChange(t.checked)
		}
		return true
	}
	return false
}

// Draw renders the mark and label
func (t *Toggle) Draw(scr terminal.Screen, th *Theme) {
	hb := t.Hitbox()
	style := th.Text
	if t.Focused() {
		style = th.FieldFocus
	} else if !t.Enabled() {
		style = th.Dim
	}
	mark := "[ ] "
	if t.checked {
		mark = "[x] "
	}
	DrawStringFixed(scr, hb.X, hb.Y, hb.W, mark+t.label, style, false)
}

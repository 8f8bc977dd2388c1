package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/menukit/core"
	"github.com/lixenwraith/menukit/terminal"
)

// TextInput is a single-line edit field. It has two states: focused
// but idle, where directional keys still navigate, and active, where
// it grabs every key until Enter or Escape ends the edit.
type TextInput struct {
	BaseWidget
	content []rune
	cursor  int
	offset  int
	maxLen  int
	active  bool
	hidden  bool
	onDone  func(string)
}

// NewTextInput creates an edit field; onDone fires when an edit is
// committed with Enter and may be nil. maxLen 0 means unbounded.
func NewTextInput(id string, hb core.Hitbox, initial string, maxLen int, onDone func(string)) *TextInput {
	return &TextInput{
		BaseWidget: newBaseWidget(id, hb),
		content:    []rune(initial),
		cursor:     len([]rune(initial)),
		maxLen:     maxLen,
		onDone:     onDone,
	}
}

// Hidden masks the content with asterisks, for password prompts
func (ti *TextInput) Hidden() *TextInput {
	ti.hidden = true
	return ti
}

// Value returns the current content
func (ti *TextInput) Value() string {
	return string(ti.content)
}

// SetValue replaces the content and moves the cursor to the end
func (ti *TextInput) SetValue(s string) {
	ti.content = []rune(s)
	ti.cursor = len(ti.content)
	ti.offset = 0
}

// Active reports whether the field is in edit mode
func (ti *TextInput) Active() bool {
	return ti.active
}

// GrabsKeys bypasses binding lookup while editing, so navigation
// runes like hjkl type instead of moving focus
func (ti *TextInput) GrabsKeys() bool {
	return ti.Focused() && ti.active
}

// SetFocus ends any edit in progress on focus loss
func (ti *TextInput) SetFocus(focused bool) {
	if !focused {
		ti.active = false
	}
	ti.BaseWidget.SetFocus(focused)
}

// HandleKey enters edit mode on Enter when idle; while active every
// key is consumed, Enter committing and Escape reverting to idle
func (ti *TextInput) HandleKey(ev terminal.Event) bool {
	if ev.Type != terminal.EventKey {
		return false
	}
	if !ti.active {
		if ev.Key == terminal.KeyEnter {
			ti.active = true
			return true
		}
		return false
	}

	switch ev.Key {
	case terminal.KeyEnter:
		ti.active = false
		if ti.onDone != nil {
			ti.onDone(string(ti.content))
		}
	case terminal.KeyEscape:
		ti.active = false
	case terminal.KeyLeft:
		if ti.cursor > 0 {
			ti.cursor--
		}
	case terminal.KeyRight:
		if ti.cursor < len(ti.content) {
			ti.cursor++
		}
	case terminal.KeyHome:
		ti.cursor = 0
	case terminal.KeyEnd:
		ti.cursor = len(ti.content)
	case terminal.KeyBackspace:
		if ti.cursor > 0 {
			ti.content = append(ti.content[:ti.cursor-1], ti.content[ti.cursor:]...)
			ti.cursor--
		}
	case terminal.KeyDelete:
		if ti.cursor < len(ti.content) {
			ti.content = append(ti.content[:ti.cursor], ti.content[ti.cursor+1:]...)
		}
	case terminal.KeyRune, terminal.KeySpace:
		ti.insert(ev.Rune)
	}
	return true
}

func (ti *TextInput) insert(r rune) {
	if r == 0 {
		return
	}
	if ti.maxLen > 0 && len(ti.content) >= ti.maxLen {
		return
	}
	ti.content = append(ti.content, 0)
	copy(ti.content[ti.cursor+1:], ti.content[ti.cursor:])
	ti.content[ti.cursor] = r
	ti.cursor++
}

// Draw renders the visible window of the content with the cursor cell
// inverted while editing
func (ti *TextInput) Draw(scr terminal.Screen, th *Theme) {
	hb := ti.Hitbox()
	style := th.Field
	if ti.Focused() {
		style = th.FieldFocus
	} else if !ti.Enabled() {
		style = th.Dim
	}

	shown := ti.content
	if ti.hidden {
		shown = make([]rune, len(ti.content))
		for i := range shown {
			shown[i] = '*'
		}
	}

	// Keep the cursor inside the visible window
	if ti.cursor < ti.offset {
		ti.offset = ti.cursor
	}
	if ti.cursor >= ti.offset+hb.W {
		ti.offset = ti.cursor - hb.W + 1
	}

	cx := hb.X
	for i := ti.offset; cx < hb.X+hb.W; i++ {
		r := ' '
		if i < len(shown) {
			r = shown[i]
		}
		cell := style
		if ti.active && i == ti.cursor {
			cell = th.Cursor
		}
		scr.SetCell(cx, hb.Y, r, cell)
		cx += runewidth.RuneWidth(r)
	}
}

package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/menukit/core"
	"github.com/lixenwraith/menukit/terminal"
)

// TextAlign controls horizontal placement within the hitbox
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
)

// Text is a decorative label. It registers like any widget so layout
// code can reposition it, but it is never a navigation candidate.
type Text struct {
	BaseWidget
	content string
	align   TextAlign
	style   func(*Theme) tcell.Style
}

// NewText creates a label occupying a single row of the given width
func NewText(id string, hb core.Hitbox, content string) *Text {
	return &Text{
		BaseWidget: newBaseWidget(id, hb),
		content:    content,
		style:      func(th *Theme) tcell.Style { return th.Text },
	}
}

// Dim switches the label to the muted style
func (t *Text) Dim() *Text {
	t.style = func(th *Theme) tcell.Style { return th.Dim }
	return t
}

// Centered switches to centered alignment
func (t *Text) Centered() *Text {
	t.align = AlignCenter
	return t
}

// SetContent replaces the label text
func (t *Text) SetContent(content string) {
	t.content = content
}

// Content returns the label text
func (t *Text) Content() string {
	return t.content
}

// Enabled is always false, decoration never takes focus
func (t *Text) Enabled() bool {
	return false
}

// HandleKey never consumes, decoration has no behaviour
func (t *Text) HandleKey(terminal.Event) bool {
	return false
}

// Draw renders the label clipped to its hitbox width
func (t *Text) Draw(scr terminal.Screen, th *Theme) {
	hb := t.Hitbox()
	DrawStringFixed(scr, hb.X, hb.Y, hb.W, t.content, t.style(th), t.align == AlignCenter)
}

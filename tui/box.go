package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/menukit/core"
	"github.com/lixenwraith/menukit/terminal"
)

// Box is a decorative bordered panel with an optional title. Popups
// use it as their backdrop.
type Box struct {
	BaseWidget
	title  string
	line   LineStyle
	fill   bool
	accent tcell.Color
	tinted bool
}

// NewBox creates a bordered panel
func NewBox(id string, hb core.Hitbox, title string) *Box {
	return &Box{
		BaseWidget: newBaseWidget(id, hb),
		title:      title,
		line:       LineSingle,
	}
}

// Double switches to the double-line border
func (b *Box) Double() *Box {
	b.line = LineDouble
	return b
}

// Filled clears the interior with the background style, needed when
// the box overlays other content
func (b *Box) Filled() *Box {
	b.fill = true
	return b
}

// Tint draws the border and title in a severity accent, used by the
// warning and error popups
func (b *Box) Tint(accent tcell.Color) *Box {
	b.accent = accent
	b.tinted = true
	return b
}

// SetTitle replaces the title shown in the top border
func (b *Box) SetTitle(title string) {
	b.title = title
}

// Enabled is always false, decoration never takes focus
func (b *Box) Enabled() bool {
	return false
}

// HandleKey never consumes
func (b *Box) HandleKey(terminal.Event) bool {
	return false
}

// Draw renders the border, interior fill and centered title
func (b *Box) Draw(scr terminal.Screen, th *Theme) {
	if b.tinted {
		th = th.Tinted(b.accent)
	}
	hb := b.Hitbox()
	if b.fill {
		FillRect(scr, hb.X, hb.Y, hb.W, hb.H, th.Background)
	}
	DrawBorder(scr, hb.X, hb.Y, hb.W, hb.H, th.Border, b.line)
	if b.title == "" || hb.W < 4 {
		return
	}
	label := " " + b.title + " "
	w := runewidth.StringWidth(label)
	if w > hb.W-2 {
		label = runewidth.Truncate(label, hb.W-2, "")
		w = runewidth.StringWidth(label)
	}
	DrawString(scr, hb.X+(hb.W-w)/2, hb.Y, label, th.Title)
}

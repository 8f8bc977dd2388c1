package tui

import (
	"github.com/lixenwraith/menukit/core"
	"github.com/lixenwraith/menukit/terminal"
)

// ChooseItem is one selectable row in a Choose list
type ChooseItem struct {
	Label  string
	Action func()
}

// Choose is a vertical option list with an internal cursor. Up and
// down move the cursor within the list and are consumed only when
// movement happens, so the navigation engine takes over at the edges.
type Choose struct {
	BaseWidget
	items  []ChooseItem
	cursor int
}

// NewChoose creates an option list; the hitbox height should cover
// the rows it displays
func NewChoose(id string, hb core.Hitbox, items []ChooseItem) *Choose {
	return &Choose{
		BaseWidget: newBaseWidget(id, hb),
		items:      items,
	}
}

// Cursor returns the highlighted index
func (c *Choose) Cursor() int {
	return c.cursor
}

// Selected returns the highlighted item
func (c *Choose) Selected() ChooseItem {
	if len(c.items) == 0 {
		return ChooseItem{}
	}
	return c.items[c.cursor]
}

// HandleKey moves the cursor or activates the highlighted item. An
// up press on the first row or down on the last returns false and
// lets focus leave the list.
func (c *Choose) HandleKey(ev terminal.Event) bool {
	if ev.Type != terminal.EventKey || len(c.items) == 0 {
		return false
	}
	switch ev.Key {
	case terminal.KeyUp:
		if c.cursor == 0 {
			return false
		}
		c.cursor--
		return true
	case terminal.KeyDown:
		if c.cursor == len(c.items)-1 {
			return false
		}
		c.cursor++
		return true
	case terminal.KeyEnter, terminal.KeySpace:
		if act := c.items[c.cursor].Action; act != nil {
			act()
		}
		return true
	}
	return false
}

// Draw renders one row per item, the cursor row highlighted while
// the list holds focus
func (c *Choose) Draw(scr terminal.Screen, th *Theme) {
	hb := c.Hitbox()
	for i := 0; i < hb.H && i < len(c.items); i++ {
		style := th.Text
		prefix := "  "
		if i == c.cursor {
			prefix = "> "
			if c.Focused() {
				style = th.FieldFocus
			}
		}
		if !c.Enabled() {
			style = th.Dim
		}
		DrawStringFixed(scr, hb.X, hb.Y+i, hb.W, prefix+c.items[i].Label, style, false)
	}
}

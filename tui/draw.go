package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/menukit/terminal"
)

// Drawer is implemented by widgets that know how to render themselves.
// The session walks the active menus and draws whatever implements it;
// the navigation core itself never draws.
type Drawer interface {
	Draw(scr terminal.Screen, th *Theme)
}

// LineStyle selects the box-drawing rune set
type LineStyle uint8

const (
	LineSingle LineStyle = iota
	LineDouble
)

type lineRunes struct {
	h, v, tl, tr, bl, br rune
}

var lineSets = map[LineStyle]lineRunes{
	LineSingle: {'─', '│', '┌', '┐', '└', '┘'},
	LineDouble: {'═', '║', '╔', '╗', '╚', '╝'},
}

// DrawString writes a string advancing by display width, returning
// the cells consumed. Wide runes occupy two cells.
func DrawString(scr terminal.Screen, x, y int, s string, style tcell.Style) int {
	cx := x
	for _, r := range s {
		scr.SetCell(cx, y, r, style)
		cx += runewidth.RuneWidth(r)
	}
	return cx - x
}

// DrawStringFixed writes a string clipped or padded to exactly width
// cells, optionally centered
func DrawStringFixed(scr terminal.Screen, x, y, width int, s string, style tcell.Style, centered bool) {
	s = runewidth.Truncate(s, width, "")
	pad := width - runewidth.StringWidth(s)
	left := 0
	if centered {
		left = pad / 2
	}
	for i := 0; i < left; i++ {
		scr.SetCell(x+i, y, ' ', style)
	}
	used := DrawString(scr, x+left, y, s, style)
	for cx := x + left + used; cx < x+width; cx++ {
		scr.SetCell(cx, y, ' ', style)
	}
}

// FillRect fills a rectangle with spaces in the given style
func FillRect(scr terminal.Screen, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			scr.SetCell(col, row, ' ', style)
		}
	}
}

// DrawBorder draws a rectangle outline. Rectangles smaller than 2x2
// degenerate to a fill.
func DrawBorder(scr terminal.Screen, x, y, w, h int, style tcell.Style, line LineStyle) {
	if w < 2 || h < 2 {
		FillRect(scr, x, y, w, h, style)
		return
	}
	r := lineSets[line]
	for col := x + 1; col < x+w-1; col++ {
		scr.SetCell(col, y, r.h, style)
		scr.SetCell(col, y+h-1, r.h, style)
	}
	for row := y + 1; row < y+h-1; row++ {
		scr.SetCell(x, row, r.v, style)
		scr.SetCell(x+w-1, row, r.v, style)
	}
	scr.SetCell(x, y, r.tl, style)
	scr.SetCell(x+w-1, y, r.tr, style)
	scr.SetCell(x, y+h-1, r.bl, style)
	scr.SetCell(x+w-1, y+h-1, r.br, style)
}

package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func channelSum(c tcell.Color) int32 {
	r, g, b := c.TrueColor().RGB()
	return r + g + b
}

func TestLightenDarken(t *testing.T) {
	base := tcell.NewRGBColor(100, 100, 100)

	if channelSum(Lighten(base, 0.5)) <= channelSum(base) {
		t.Error("Expected Lighten to brighten the color")
	}
	if channelSum(Darken(base, 0.5)) >= channelSum(base) {
		t.Error("Expected Darken to dim the color")
	}
}

func TestBlendMidpoint(t *testing.T) {
	black := tcell.NewRGBColor(0, 0, 0)
	white := tcell.NewRGBColor(255, 255, 255)

	mid := Blend(black, white, 0.5)
	if s := channelSum(mid); s <= 0 || s >= 255*3 {
		t.Errorf("Expected midpoint between the endpoints, got sum %d", s)
	}
}

func TestTintedKeepsBody(t *testing.T) {
	th := DefaultTheme()
	red := tcell.NewRGBColor(230, 90, 90)
	out := th.Tinted(red)

	if out.Accent != red {
		t.Error("Expected accent replaced")
	}
	if out.Text != th.Text || out.Field != th.Field {
		t.Error("Expected body styles untouched")
	}
	if out.Title == th.Title {
		t.Error("Expected title restyled with the accent")
	}
}

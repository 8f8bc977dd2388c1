package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme carries the styles widgets draw with. Widgets never hardcode
// colors; popup builders derive tinted variants for severity.
type Theme struct {
	Background tcell.Style
	Text       tcell.Style
	Label      tcell.Style
	Dim        tcell.Style
	Border     tcell.Style
	Title      tcell.Style

	Button      tcell.Style
	ButtonFocus tcell.Style

	Field      tcell.Style
	FieldFocus tcell.Style
	Cursor     tcell.Style

	Accent tcell.Color
}

// DefaultTheme returns the stock dark palette
func DefaultTheme() *Theme {
	bg := tcell.NewRGBColor(25, 25, 35)
	fieldBg := tcell.NewRGBColor(35, 35, 45)
	text := tcell.NewRGBColor(220, 220, 220)
	label := tcell.NewRGBColor(150, 150, 180)
	dim := tcell.NewRGBColor(100, 100, 100)
	border := tcell.NewRGBColor(80, 100, 140)
	accent := tcell.NewRGBColor(100, 200, 220)

	base := tcell.StyleDefault.Background(bg)
	return &Theme{
		Background:  base,
		Text:        base.Foreground(text),
		Label:       base.Foreground(label),
		Dim:         base.Foreground(dim),
		Border:      base.Foreground(border),
		Title:       base.Foreground(accent).Bold(true),
		Button:      tcell.StyleDefault.Background(fieldBg).Foreground(text),
		ButtonFocus: tcell.StyleDefault.Background(accent).Foreground(bg).Bold(true),
		Field:       tcell.StyleDefault.Background(fieldBg).Foreground(text),
		FieldFocus:  tcell.StyleDefault.Background(Lighten(fieldBg, 0.15)).Foreground(text),
		Cursor:      tcell.StyleDefault.Background(text).Foreground(bg),
		Accent:      accent,
	}
}

// Tinted derives a copy whose border, title and focus highlight take
// the given accent. Popup builders use this for info/warning/error
// severity without a second full palette.
func (t *Theme) Tinted(accent tcell.Color) *Theme {
	out := *t
	_, bg, _ := t.Background.Decompose()
	out.Border = t.Border.Foreground(Darken(accent, 0.25))
	out.Title = t.Title.Foreground(accent)
	out.ButtonFocus = tcell.StyleDefault.Background(accent).Foreground(bg).Bold(true)
	out.Accent = accent
	return &out
}

// Lighten blends a color toward white in Lab space
func Lighten(c tcell.Color, amount float64) tcell.Color {
	return fromColorful(toColorful(c).BlendLab(colorful.Color{R: 1, G: 1, B: 1}, amount))
}

// Darken blends a color toward black in Lab space
func Darken(c tcell.Color, amount float64) tcell.Color {
	return fromColorful(toColorful(c).BlendLab(colorful.Color{}, amount))
}

// Blend mixes two colors in Lab space, t=0 yielding a and t=1 yielding b
func Blend(a, b tcell.Color, t float64) tcell.Color {
	return fromColorful(toColorful(a).BlendLab(toColorful(b), t))
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.TrueColor().RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// tcellScreen adapts a tcell.Screen to the toolkit Screen interface
type tcellScreen struct {
	s tcell.Screen
}

// New creates a Screen backed by the real terminal
func New() (Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &tcellScreen{s: s}, nil
}

// NewSimulation creates a Screen backed by a tcell simulation screen,
// returned alongside it for event injection in tests
func NewSimulation() (Screen, tcell.SimulationScreen) {
	sim := tcell.NewSimulationScreen("UTF-8")
	return &tcellScreen{s: sim}, sim
}

func (t *tcellScreen) Init() error {
	if err := t.s.Init(); err != nil {
		return err
	}
	t.s.HideCursor()
	return nil
}

func (t *tcellScreen) Fini() {
	t.s.Fini()
}

func (t *tcellScreen) Size() (int, int) {
	return t.s.Size()
}

func (t *tcellScreen) SetCell(x, y int, r rune, style tcell.Style) {
	t.s.SetContent(x, y, r, nil, style)
}

func (t *tcellScreen) Clear() {
	t.s.Clear()
}

func (t *tcellScreen) Show() {
	t.s.Show()
}

func (t *tcellScreen) Interrupt() {
	_ = t.s.PostEvent(tcell.NewEventInterrupt(nil))
}

// PollEvent blocks for the next event and converts it to the toolkit
// event model
func (t *tcellScreen) PollEvent() Event {
	for {
		ev := t.s.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventKey:
			return convertKey(tev)
		case *tcell.EventResize:
			w, h := tev.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		case *tcell.EventInterrupt:
			return Event{Type: EventClosed}
		case nil: // screen finalized
			return Event{Type: EventClosed}
		default:
			// Mouse, paste and focus events are not part of the toolkit
			continue
		}
	}
}

// tcell key codes the toolkit interprets directly
var keyTable = map[tcell.Key]Key{
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyCtrlC:      KeyCtrlC,
}

func convertKey(ev *tcell.EventKey) Event {
	out := Event{Type: EventKey, Mod: convertMod(ev.Modifiers())}

	if k, ok := keyTable[ev.Key()]; ok {
		out.Key = k
		return out
	}

	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == ' ' {
			out.Key = KeySpace
			out.Rune = ' '
			return out
		}
		out.Key = KeyRune
		out.Rune = ev.Rune()
		return out
	}

	out.Key = KeyNone
	return out
}

func convertMod(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}

package input

import (
	"github.com/lixenwraith/menukit/core"
	"github.com/lixenwraith/menukit/terminal"
)

// Action is a named input intent the session control loop dispatches on
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionActivate
	ActionCancel
	ActionNext // Tab traversal, registration order
	ActionPrev
	ActionQuit
)

// String returns the TOML-facing action name
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionActivate:
		return "activate"
	case ActionCancel:
		return "cancel"
	case ActionNext:
		return "next"
	case ActionPrev:
		return "prev"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Direction maps directional actions to navigation directions
func (a Action) Direction() (core.Direction, bool) {
	switch a {
	case ActionUp:
		return core.DirUp, true
	case ActionDown:
		return core.DirDown, true
	case ActionLeft:
		return core.DirLeft, true
	case ActionRight:
		return core.DirRight, true
	default:
		return 0, false
	}
}

// Bindings maps keys and runes to actions
type Bindings struct {
	keys  map[terminal.Key]Action
	runes map[rune]Action
}

// Default returns the stock key table: arrows plus hjkl for movement,
// Enter activates, Escape cancels, Tab cycles, q quits
func Default() *Bindings {
	return &Bindings{
		keys: map[terminal.Key]Action{
			terminal.KeyUp:      ActionUp,
			terminal.KeyDown:    ActionDown,
			terminal.KeyLeft:    ActionLeft,
			terminal.KeyRight:   ActionRight,
			terminal.KeyEnter:   ActionActivate,
			terminal.KeyEscape:  ActionCancel,
			terminal.KeyTab:     ActionNext,
			terminal.KeyBacktab: ActionPrev,
			terminal.KeyCtrlC:   ActionQuit,
		},
		runes: map[rune]Action{
			'h': ActionLeft,
			'j': ActionDown,
			'k': ActionUp,
			'l': ActionRight,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a key event to an action. Unbound keys return
// ActionNone and flow through to the focused widget untouched.
func (b *Bindings) Lookup(ev terminal.Event) Action {
	if ev.Type != terminal.EventKey {
		return ActionNone
	}
	if ev.Key == terminal.KeyRune {
		return b.runes[ev.Rune]
	}
	// Space is delivered as a special key but binds as the ' ' rune
	if ev.Key == terminal.KeySpace {
		if a, ok := b.runes[' ']; ok {
			return a
		}
	}
	return b.keys[ev.Key]
}

// bind clears any previous keys mapped to the action, then installs
// the new set - TOML overrides replace, they do not accumulate
func (b *Bindings) bind(a Action, keys []terminal.Key, runes []rune) {
	for k, act := range b.keys {
		if act == a {
			delete(b.keys, k)
		}
	}
	for r, act := range b.runes {
		if act == a {
			delete(b.runes, r)
		}
	}
	for _, k := range keys {
		b.keys[k] = a
	}
	for _, r := range runes {
		b.runes[r] = a
	}
}

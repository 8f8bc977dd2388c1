package input

import (
	"fmt"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/menukit/terminal"
)

// Rune aliases for keys that can't be bare single-char TOML values
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Named special keys accepted in keymap files
var keyNames = map[string]terminal.Key{
	"up":        terminal.KeyUp,
	"down":      terminal.KeyDown,
	"left":      terminal.KeyLeft,
	"right":     terminal.KeyRight,
	"enter":     terminal.KeyEnter,
	"escape":    terminal.KeyEscape,
	"tab":       terminal.KeyTab,
	"backtab":   terminal.KeyBacktab,
	"backspace": terminal.KeyBackspace,
	"delete":    terminal.KeyDelete,
	"home":      terminal.KeyHome,
	"end":       terminal.KeyEnd,
	"pageup":    terminal.KeyPageUp,
	"pagedown":  terminal.KeyPageDown,
	"ctrl-c":    terminal.KeyCtrlC,
}

var actionNames = map[string]Action{
	"up":       ActionUp,
	"down":     ActionDown,
	"left":     ActionLeft,
	"right":    ActionRight,
	"activate": ActionActivate,
	"cancel":   ActionCancel,
	"next":     ActionNext,
	"prev":     ActionPrev,
	"quit":     ActionQuit,
}

// keymapFile is the TOML schema:
//
//	[bindings]
//	quit = ["q"]
//	up   = ["up", "k"]
type keymapFile struct {
	Bindings map[string][]string `toml:"bindings"`
}

// LoadBindings parses a TOML keymap into a bindings table layered on
// the defaults. Only actions present in the file are overridden, and
// an override replaces that action's previous keys entirely. Unknown
// action or key names are errors.
func LoadBindings(data []byte) (*Bindings, error) {
	var file keymapFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	b := Default()
	for name, keys := range file.Bindings {
		action, ok := actionNames[name]
		if !ok {
			return nil, fmt.Errorf("keymap: unknown action %q", name)
		}

		var specials []terminal.Key
		var runes []rune
		for _, keyName := range keys {
			special, r, err := parseKeyName(keyName)
			if err != nil {
				return nil, fmt.Errorf("keymap: action %q: %w", name, err)
			}
			if special != terminal.KeyNone {
				specials = append(specials, special)
			} else {
				runes = append(runes, r)
			}
		}
		b.bind(action, specials, runes)
	}
	return b, nil
}

// parseKeyName resolves a key name to either a special key or a rune
func parseKeyName(name string) (terminal.Key, rune, error) {
	if r, ok := runeAliases[name]; ok {
		return terminal.KeyNone, r, nil
	}
	if k, ok := keyNames[name]; ok {
		return k, 0, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return terminal.KeyNone, r, nil
	}
	return terminal.KeyNone, 0, fmt.Errorf("invalid key name %q", name)
}

package input

import (
	"testing"

	"github.com/lixenwraith/menukit/terminal"
)

func keyEvent(k terminal.Key) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: k}
}

func runeEvent(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}

func TestDefaultBindings(t *testing.T) {
	b := Default()
	tests := []struct {
		ev   terminal.Event
		want Action
	}{
		{keyEvent(terminal.KeyUp), ActionUp},
		{keyEvent(terminal.KeyDown), ActionDown},
		{keyEvent(terminal.KeyEnter), ActionActivate},
		{keyEvent(terminal.KeyEscape), ActionCancel},
		{keyEvent(terminal.KeyTab), ActionNext},
		{keyEvent(terminal.KeyBacktab), ActionPrev},
		{keyEvent(terminal.KeyCtrlC), ActionQuit},
		{runeEvent('q'), ActionQuit},
		{runeEvent('j'), ActionDown},
		{runeEvent('k'), ActionUp},
		{runeEvent('z'), ActionNone},
		{terminal.Event{Type: terminal.EventResize}, ActionNone},
	}
	for _, tt := range tests {
		if got := b.Lookup(tt.ev); got != tt.want {
			t.Errorf("Lookup(%+v): expected %v, got %v", tt.ev, tt.want, got)
		}
	}
}

func TestActionDirection(t *testing.T) {
	if _, ok := ActionActivate.Direction(); ok {
		t.Error("Activate is not directional")
	}
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if _, ok := a.Direction(); !ok {
			t.Errorf("Expected %v to be directional", a)
		}
	}
}

func TestLoadBindingsOverride(t *testing.T) {
	data := []byte(`
[bindings]
quit = ["x"]
activate = ["space", "enter"]
`)
	b, err := LoadBindings(data)
	if err != nil {
		t.Fatalf("LoadBindings failed: %v", err)
	}

	if got := b.Lookup(runeEvent('x')); got != ActionQuit {
		t.Errorf("Expected x bound to quit, got %v", got)
	}
	// Override replaces the old quit rune
	if got := b.Lookup(runeEvent('q')); got != ActionNone {
		t.Errorf("Expected q unbound after override, got %v", got)
	}
	if got := b.Lookup(runeEvent(' ')); got != ActionActivate {
		t.Errorf("Expected space bound to activate, got %v", got)
	}
	// Untouched actions keep their defaults
	if got := b.Lookup(keyEvent(terminal.KeyUp)); got != ActionUp {
		t.Errorf("Expected arrow defaults preserved, got %v", got)
	}
}

func TestLoadBindingsErrors(t *testing.T) {
	if _, err := LoadBindings([]byte("[bindings]\nwarp = [\"w\"]\n")); err == nil {
		t.Error("Expected error for unknown action")
	}
	if _, err := LoadBindings([]byte("[bindings]\nquit = [\"bogus-key\"]\n")); err == nil {
		t.Error("Expected error for unknown key name")
	}
	if _, err := LoadBindings([]byte("not toml at all [")); err == nil {
		t.Error("Expected parse error")
	}
}

func TestLoadBindingsEmpty(t *testing.T) {
	b, err := LoadBindings([]byte(""))
	if err != nil {
		t.Fatalf("LoadBindings failed: %v", err)
	}
	if got := b.Lookup(runeEvent('q')); got != ActionQuit {
		t.Errorf("Expected defaults with empty file, got %v", got)
	}
}

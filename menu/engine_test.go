package menu

import (
	"testing"

	"github.com/lixenwraith/menukit/core"
	"github.com/lixenwraith/menukit/terminal"
)

// stubWidget is a minimal Widget for navigation tests
type stubWidget struct {
	id      string
	hb      core.Hitbox
	enabled bool
	focused bool
	keys    []terminal.Event
}

func newStub(id string, x, y, w, h int) *stubWidget {
	return &stubWidget{id: id, hb: core.NewHitbox(x, y, w, h), enabled: true}
}

func (s *stubWidget) ID() string              { return s.id }
func (s *stubWidget) Hitbox() core.Hitbox     { return s.hb }
func (s *stubWidget) Enabled() bool           { return s.enabled }
func (s *stubWidget) SetFocus(f bool)         { s.focused = f }
func (s *stubWidget) SetHitbox(hb core.Hitbox) { s.hb = hb }
func (s *stubWidget) HandleKey(ev terminal.Event) bool {
	s.keys = append(s.keys, ev)
	return true
}

// formMenu builds the reference layout from the design discussion:
// group "form" holds fields at y=2,4,6 (same column), group "sidebar"
// holds one widget 20 cells to the right of the top field.
func formMenu() *Menu {
	m := New()
	m.Register(newStub("field1", 4, 2, 10, 1), "form")
	m.Register(newStub("field2", 4, 4, 10, 1), "form")
	m.Register(newStub("field3", 4, 6, 10, 1), "form")
	m.Register(newStub("side", 24, 2, 8, 1), "sidebar")
	return m
}

func TestResolveNextIntraGroupPriority(t *testing.T) {
	m := formMenu()
	if err := m.SetFocus("field1"); err != nil {
		t.Fatalf("SetFocus failed: %v", err)
	}

	// From field1 going down, field2 wins over the sidebar even
	// though both are down-relevant
	id, ok := ResolveNext("field1", core.DirDown, m)
	if !ok || id != "field2" {
		t.Errorf("Expected field2, got %q (ok=%v)", id, ok)
	}
}

func TestResolveNextInterGroupFallback(t *testing.T) {
	m := formMenu()

	// From field3 going down there is no form candidate; the sidebar
	// widget is not down-relevant either (its center is above), so
	// focus must not move
	if id, ok := ResolveNext("field3", core.DirDown, m); ok {
		t.Errorf("Expected no movement, got %q", id)
	}

	// Going right from field1 leaves the form for the sidebar
	id, ok := ResolveNext("field1", core.DirRight, m)
	if !ok || id != "side" {
		t.Errorf("Expected side, got %q (ok=%v)", id, ok)
	}
}

func TestResolveNextLocalityLaw(t *testing.T) {
	// Whenever at least one in-group candidate passes the direction
	// filter, the result is never from another group, even if closer
	m := New()
	m.Register(newStub("a", 0, 0, 1, 1), "g1")
	m.Register(newStub("far", 0, 20, 1, 1), "g1")
	m.Register(newStub("near", 0, 2, 1, 1), "g2")

	id, ok := ResolveNext("a", core.DirDown, m)
	if !ok || id != "far" {
		t.Errorf("Expected in-group far, got %q (ok=%v)", id, ok)
	}
}

func TestResolveNextInitialFocusDefault(t *testing.T) {
	m := formMenu()
	// No focus: first enabled widget in registration order
	id, ok := ResolveNext("", core.DirDown, m)
	if !ok || id != "field1" {
		t.Errorf("Expected field1 default, got %q (ok=%v)", id, ok)
	}

	// Stale focus id behaves the same
	id, ok = ResolveNext("ghost", core.DirUp, m)
	if !ok || id != "field1" {
		t.Errorf("Expected field1 for stale focus, got %q (ok=%v)", id, ok)
	}
}

func TestResolveNextDisabledCurrentFallsBack(t *testing.T) {
	m := formMenu()
	w, _ := m.Widget("field2")
	w.(*stubWidget).enabled = false

	id, ok := ResolveNext("field2", core.DirDown, m)
	if !ok || id != "field1" {
		t.Errorf("Expected initial-focus fallback to field1, got %q (ok=%v)", id, ok)
	}
}

func TestResolveNextSkipsDisabledCandidates(t *testing.T) {
	m := New()
	m.Register(newStub("a", 0, 0, 1, 1), "g")
	near := newStub("near", 0, 2, 1, 1)
	near.enabled = false
	m.Register(near, "g")
	m.Register(newStub("far", 0, 9, 1, 1), "g")

	id, ok := ResolveNext("a", core.DirDown, m)
	if !ok || id != "far" {
		t.Errorf("Expected far (near is disabled), got %q (ok=%v)", id, ok)
	}
}

func TestResolveNextEquidistantTieBreak(t *testing.T) {
	// Two candidates at identical distance: registration order decides
	m := New()
	m.Register(newStub("origin", 10, 10, 1, 1), "g")
	m.Register(newStub("second", 13, 14, 1, 1), "g") // dist 5
	m.Register(newStub("first", 7, 14, 1, 1), "g")   // dist 5, registered later

	id, ok := ResolveNext("origin", core.DirDown, m)
	if !ok || id != "second" {
		t.Errorf("Expected registration-order winner second, got %q (ok=%v)", id, ok)
	}
}

func TestResolveNextDeterminism(t *testing.T) {
	m := formMenu()
	a, okA := ResolveNext("field1", core.DirDown, m)
	b, okB := ResolveNext("field1", core.DirDown, m)
	if a != b || okA != okB {
		t.Errorf("Expected identical results, got %q/%v and %q/%v", a, okA, b, okB)
	}
}

func TestResolveNextSingleWidgetBoundary(t *testing.T) {
	m := New()
	m.Register(newStub("only", 0, 0, 5, 1), "")

	// First navigation call with no focus selects the widget
	id, ok := ResolveNext("", core.DirDown, m)
	if !ok || id != "only" {
		t.Fatalf("Expected only, got %q (ok=%v)", id, ok)
	}

	// Repeating the direction with it focused yields no movement
	if id, ok := ResolveNext("only", core.DirDown, m); ok {
		t.Errorf("Expected no movement, got %q", id)
	}
}

func TestResolveNextUngroupedAreSingletons(t *testing.T) {
	// Two ungrouped widgets never share a group, so navigation
	// between them is inter-group phase B
	m := New()
	m.Register(newStub("a", 0, 0, 1, 1), "")
	m.Register(newStub("b", 0, 3, 1, 1), "")

	id, ok := ResolveNext("a", core.DirDown, m)
	if !ok || id != "b" {
		t.Errorf("Expected b, got %q (ok=%v)", id, ok)
	}
}

func TestResolveNextEmptyMenu(t *testing.T) {
	m := New()
	if id, ok := ResolveNext("", core.DirDown, m); ok {
		t.Errorf("Expected no result on empty menu, got %q", id)
	}
}

func TestResolveNextUniqueCandidate(t *testing.T) {
	// If exactly one enabled in-group widget passes the direction
	// filter, it is the result
	m := New()
	m.Register(newStub("a", 5, 5, 1, 1), "g")
	m.Register(newStub("b", 5, 9, 1, 1), "g")
	m.Register(newStub("above", 5, 1, 1, 1), "g")

	id, ok := ResolveNext("a", core.DirDown, m)
	if !ok || id != "b" {
		t.Errorf("Expected unique candidate b, got %q (ok=%v)", id, ok)
	}
}

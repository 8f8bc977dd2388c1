package menu

import (
	"errors"
	"testing"

	"github.com/lixenwraith/menukit/core"
)

func TestStackPushPopIdentity(t *testing.T) {
	s := NewStack()
	overlay := New()
	s.Push(overlay)

	got, err := s.Pop()
	if err != nil {
		t.Fatalf("Pop failed: %v", err)
	}
	if got != overlay {
		t.Error("Expected the exact pushed menu back")
	}
}

func TestStackEmptyPop(t *testing.T) {
	s := NewStack()
	if _, err := s.Pop(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("Expected ErrEmptyStack, got %v", err)
	}
}

func TestStackBackgroundSelection(t *testing.T) {
	s := NewStack()
	main := New()
	settings := New()

	if err := s.AddMenu("main", main); err != nil {
		t.Fatal(err)
	}
	if err := s.AddMenu("settings", settings); err != nil {
		t.Fatal(err)
	}

	// First registered menu becomes the default background
	if s.Background() != main {
		t.Error("Expected main as default background")
	}

	if err := s.SetBackground("settings"); err != nil {
		t.Fatalf("SetBackground failed: %v", err)
	}
	if s.Background() != settings || s.BackgroundName() != "settings" {
		t.Error("Expected settings active")
	}

	if err := s.SetBackground("ghost"); !errors.Is(err, ErrUnknownMenu) {
		t.Errorf("Expected ErrUnknownMenu, got %v", err)
	}
	if err := s.AddMenu("main", New()); !errors.Is(err, ErrDuplicateMenu) {
		t.Errorf("Expected ErrDuplicateMenu, got %v", err)
	}
}

func TestStackActiveIsTopmost(t *testing.T) {
	s := NewStack()
	bg := New()
	if err := s.AddMenu("main", bg); err != nil {
		t.Fatal(err)
	}

	if s.Active() != bg {
		t.Error("Expected background active with no overlays")
	}

	first := New()
	second := New()
	s.Push(first)
	s.Push(second)
	if s.Active() != second {
		t.Error("Expected topmost overlay active")
	}
	if s.Depth() != 2 {
		t.Errorf("Expected depth 2, got %d", s.Depth())
	}

	if _, err := s.Pop(); err != nil {
		t.Fatal(err)
	}
	if s.Active() != first {
		t.Error("Expected next overlay after pop")
	}
}

func TestStackRoutingTargetsActive(t *testing.T) {
	s := NewStack()
	bg := New()
	bg.Register(newStub("bg1", 0, 0, 1, 1), "")
	if err := s.AddMenu("main", bg); err != nil {
		t.Fatal(err)
	}

	overlay := New()
	overlay.Register(newStub("ov1", 0, 0, 1, 1), "")
	overlay.Register(newStub("ov2", 0, 2, 1, 1), "")
	s.Push(overlay)

	// Navigation lands in the overlay, the background stays inert
	id, moved := s.HandleDirection(core.DirDown)
	if !moved || id != "ov1" {
		t.Errorf("Expected overlay default ov1, got %q (moved=%v)", id, moved)
	}
	if _, ok := bg.Focus(); ok {
		t.Error("Background menu must stay inert under an overlay")
	}

	if _, err := s.Pop(); err != nil {
		t.Fatal(err)
	}
	id, moved = s.HandleDirection(core.DirDown)
	if !moved || id != "bg1" {
		t.Errorf("Expected background bg1 after pop, got %q", id)
	}
}

func TestStackClearOverlays(t *testing.T) {
	s := NewStack()
	s.Push(New())
	s.Push(New())
	s.ClearOverlays()
	if s.Depth() != 0 {
		t.Errorf("Expected empty stack, got depth %d", s.Depth())
	}
}

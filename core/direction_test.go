package core

import "testing"

func TestDirectionString(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{DirUp, "up"},
		{DirDown, "down"},
		{DirLeft, "left"},
		{DirRight, "right"},
		{Direction(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := [][2]Direction{
		{DirUp, DirDown},
		{DirLeft, DirRight},
	}
	for _, p := range pairs {
		if p[0].Opposite() != p[1] || p[1].Opposite() != p[0] {
			t.Errorf("Expected %v and %v to be opposites", p[0], p[1])
		}
	}
}

func TestDirectionAxes(t *testing.T) {
	if !DirUp.IsVertical() || !DirDown.IsVertical() {
		t.Error("Expected up/down vertical")
	}
	if !DirLeft.IsHorizontal() || !DirRight.IsHorizontal() {
		t.Error("Expected left/right horizontal")
	}
	if DirUp.IsHorizontal() || DirLeft.IsVertical() {
		t.Error("Axis predicates overlap")
	}
}

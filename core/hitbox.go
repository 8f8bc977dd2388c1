package core

import "math"

// Hitbox is an axis-aligned rectangle in screen-cell coordinates.
// It is a pure value: mutation goes through Translate/Resize, which
// return a new value.
type Hitbox struct {
	X, Y int // Top-left corner
	W, H int // Dimensions (minimum 1x1)
}

// NewHitbox creates a hitbox at (x, y). Width and height are clamped
// to 1 so a hitbox always covers at least one cell.
func NewHitbox(x, y, w, h int) Hitbox {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Hitbox{X: x, Y: y, W: w, H: h}
}

// Center returns the geometric center in fractional cell coordinates.
// A 1x1 hitbox centers on its own cell.
func (h Hitbox) Center() (float64, float64) {
	cx := float64(h.X) + float64(h.W-1)/2
	cy := float64(h.Y) + float64(h.H-1)/2
	return cx, cy
}

// EdgeMid returns the midpoint of the edge facing the given direction
func (h Hitbox) EdgeMid(d Direction) (float64, float64) {
	cx, cy := h.Center()
	switch d {
	case DirUp:
		return cx, float64(h.Y)
	case DirDown:
		return cx, float64(h.Y + h.H - 1)
	case DirLeft:
		return float64(h.X), cy
	case DirRight:
		return float64(h.X + h.W - 1), cy
	default:
		return cx, cy
	}
}

// DistanceTo returns the Euclidean distance between the centers of
// the two hitboxes. Used as the base navigation tie-break metric.
func (h Hitbox) DistanceTo(o Hitbox) float64 {
	ax, ay := h.Center()
	bx, by := o.Center()
	return math.Hypot(bx-ax, by-ay)
}

// RelevantTo reports whether o lies in the half-plane implied by the
// direction relative to h. The test is strict center ordering on the
// direction axis, so coincident centers are never candidates.
func (h Hitbox) RelevantTo(o Hitbox, d Direction) bool {
	ax, ay := h.Center()
	bx, by := o.Center()
	switch d {
	case DirUp:
		return by < ay
	case DirDown:
		return by > ay
	case DirLeft:
		return bx < ax
	case DirRight:
		return bx > ax
	default:
		return false
	}
}

// Contains reports whether the cell (x, y) falls inside the hitbox
func (h Hitbox) Contains(x, y int) bool {
	return x >= h.X && x < h.X+h.W && y >= h.Y && y < h.Y+h.H
}

// Translate returns a copy moved by (dx, dy)
func (h Hitbox) Translate(dx, dy int) Hitbox {
	return Hitbox{X: h.X + dx, Y: h.Y + dy, W: h.W, H: h.H}
}

// Resize returns a copy with new dimensions, clamped to 1x1 minimum
func (h Hitbox) Resize(w, hh int) Hitbox {
	return NewHitbox(h.X, h.Y, w, hh)
}

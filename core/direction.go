package core

// Direction is a cardinal navigation direction on the terminal grid
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the reversed direction
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// IsVertical reports whether the direction moves along the Y axis
func (d Direction) IsVertical() bool {
	return d == DirUp || d == DirDown
}

// IsHorizontal reports whether the direction moves along the X axis
func (d Direction) IsHorizontal() bool {
	return d == DirLeft || d == DirRight
}

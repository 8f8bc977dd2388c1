package menu

import (
	"github.com/lixenwraith/menukit/core"
	"github.com/lixenwraith/menukit/terminal"
)

// Widget is the capability set the navigation core depends on. Any
// widget type qualifies by implementing it; the core never references
// concrete widget types.
type Widget interface {
	// ID is unique within the owning menu for the widget's lifetime
	ID() string

	// Hitbox returns the current screen-space bounding box
	Hitbox() core.Hitbox

	// Enabled reports navigation candidacy. Disabled widgets stay
	// registered (their hitbox remains queryable for layout) but are
	// never focus targets.
	Enabled() bool

	// SetFocus notifies the widget of focus gain or loss
	SetFocus(focused bool)

	// HandleKey processes a key event, returning true if consumed.
	// Returning false for a directional key lets the menu run spatial
	// navigation instead.
	HandleKey(ev terminal.Event) bool
}

// HitboxSetter is implemented by widgets whose geometry the layout
// collaborator can rewrite, e.g. after a terminal resize
type HitboxSetter interface {
	SetHitbox(hb core.Hitbox)
}

// KeyGrabber is implemented by widgets that, while in an active edit
// state, must see every key including the quit shortcut and arrows
type KeyGrabber interface {
	GrabsKeys() bool
}

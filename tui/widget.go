package tui

import "github.com/lixenwraith/menukit/core"

// BaseWidget carries the identity, geometry and state shared by every
// widget type. Concrete widgets embed it and add behaviour.
type BaseWidget struct {
	id       string
	hb       core.Hitbox
	disabled bool
	focused  bool
}

func newBaseWidget(id string, hb core.Hitbox) BaseWidget {
	return BaseWidget{id: id, hb: hb}
}

// ID returns the widget identifier
func (b *BaseWidget) ID() string {
	return b.id
}

// Hitbox returns the current screen-space bounds
func (b *BaseWidget) Hitbox() core.Hitbox {
	return b.hb
}

// SetHitbox rewrites the bounds; the layout collaborator calls this
// through Menu.UpdateHitbox after a resize
func (b *BaseWidget) SetHitbox(hb core.Hitbox) {
	b.hb = hb
}

// Enabled reports navigation candidacy
func (b *BaseWidget) Enabled() bool {
	return !b.disabled
}

// SetEnabled toggles navigation candidacy; a disabled widget stays
// registered and keeps its hitbox
func (b *BaseWidget) SetEnabled(enabled bool) {
	b.disabled = !enabled
}

// SetFocus records focus gain or loss
func (b *BaseWidget) SetFocus(focused bool) {
	b.focused = focused
}

// Focused reports whether the widget currently has focus
func (b *BaseWidget) Focused() bool {
	return b.focused
}

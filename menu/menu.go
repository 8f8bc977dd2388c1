package menu

import (
	"fmt"

	"github.com/lixenwraith/menukit/core"
	"github.com/lixenwraith/menukit/terminal"
)

// Menu owns an arena of widgets indexed by id, their submenu
// partition, and a single nullable focus pointer. Widgets are owned
// exclusively by the menu that registered them; groups store ids, not
// widget references.
//
// A menu with zero focusable widgets is legal (decorative view);
// HandleDirection is then a no-op.
type Menu struct {
	widgets map[string]Widget
	order   []string // registration order, the stable tie-break key

	groups  map[string]*Submenu
	groupOf map[string]string // widget id -> submenu id

	focus string // empty = no focus
}

// New creates an empty menu
func New() *Menu {
	return &Menu{
		widgets: make(map[string]Widget),
		groups:  make(map[string]*Submenu),
		groupOf: make(map[string]string),
	}
}

// Register adds a widget to the arena under the given submenu id.
// An empty group id leaves the widget ungrouped (a singleton group
// for navigation priority). Registering an id that already exists
// replaces the widget in place, keeping its registration-order slot;
// this is how the layout collaborator resynchronizes geometry. Group
// membership follows the reassignment policy: the latest registration
// wins.
func (m *Menu) Register(w Widget, groupID string) {
	id := w.ID()
	_, existed := m.widgets[id]
	m.widgets[id] = w
	if !existed {
		m.order = append(m.order, id)
	}

	m.leaveGroup(id)
	if groupID != "" {
		g, ok := m.groups[groupID]
		if !ok {
			g = NewSubmenu(groupID)
			m.groups[groupID] = g
		}
		g.Add(id)
		m.groupOf[id] = groupID
	}
}

// Unregister removes a widget and its group membership. The focus is
// cleared if it pointed at the removed widget.
func (m *Menu) Unregister(id string) error {
	if _, ok := m.widgets[id]; !ok {
		return fmt.Errorf("unregister %q: %w", id, ErrInvalidReference)
	}
	delete(m.widgets, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.leaveGroup(id)
	if m.focus == id {
		m.focus = ""
	}
	return nil
}

// leaveGroup detaches id from its submenu, dropping the submenu once
// empty so register/unregister round-trips leave no residue
func (m *Menu) leaveGroup(id string) {
	gid, ok := m.groupOf[id]
	if !ok {
		return
	}
	if g := m.groups[gid]; g != nil {
		g.Remove(id)
		if g.Len() == 0 {
			delete(m.groups, gid)
		}
	}
	delete(m.groupOf, id)
}

// Widget looks up a widget by id
func (m *Menu) Widget(id string) (Widget, bool) {
	w, ok := m.widgets[id]
	return w, ok
}

// Widgets returns the widgets in registration order
func (m *Menu) Widgets() []Widget {
	out := make([]Widget, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.widgets[id])
	}
	return out
}

// Group returns the submenu with the given id, if any
func (m *Menu) Group(id string) (*Submenu, bool) {
	g, ok := m.groups[id]
	return g, ok
}

// GroupOf returns the submenu id of a widget, empty if ungrouped
func (m *Menu) GroupOf(widgetID string) string {
	return m.groupOf[widgetID]
}

// Len returns the widget count
func (m *Menu) Len() int {
	return len(m.widgets)
}

// SetFocus moves focus to the given widget. The id must be owned by
// this menu. Focusing a disabled widget is permitted for explicit
// caller control; navigation itself never selects one.
func (m *Menu) SetFocus(id string) error {
	w, ok := m.widgets[id]
	if !ok {
		return fmt.Errorf("set focus %q: %w", id, ErrInvalidReference)
	}
	m.applyFocus(w)
	return nil
}

// ClearFocus drops the focus pointer, notifying the focused widget
func (m *Menu) ClearFocus() {
	if prev, ok := m.widgets[m.focus]; ok {
		prev.SetFocus(false)
	}
	m.focus = ""
}

// Focus returns the focused widget id, false if none
func (m *Menu) Focus() (string, bool) {
	if m.focus == "" {
		return "", false
	}
	return m.focus, true
}

// FocusedWidget returns the focused widget, false if none
func (m *Menu) FocusedWidget() (Widget, bool) {
	w, ok := m.widgets[m.focus]
	return w, ok
}

func (m *Menu) applyFocus(w Widget) {
	if prev, ok := m.widgets[m.focus]; ok && prev != w {
		prev.SetFocus(false)
	}
	m.focus = w.ID()
	w.SetFocus(true)
}

// HandleDirection runs spatial navigation and applies the result,
// returning the new focus id for the caller to trigger redraws. The
// second result is false when focus did not move - the edge of the
// navigable area, not an error.
func (m *Menu) HandleDirection(dir core.Direction) (string, bool) {
	id, ok := ResolveNext(m.focus, dir, m)
	if !ok {
		return "", false
	}
	m.applyFocus(m.widgets[id])
	return id, true
}

// FocusNext cycles focus to the next enabled widget in registration
// order, wrapping around. Used for Tab traversal.
func (m *Menu) FocusNext() (string, bool) {
	return m.cycle(1)
}

// FocusPrev cycles focus to the previous enabled widget in
// registration order, wrapping around
func (m *Menu) FocusPrev() (string, bool) {
	return m.cycle(-1)
}

func (m *Menu) cycle(step int) (string, bool) {
	if len(m.order) == 0 {
		return "", false
	}
	start := -1
	for i, id := range m.order {
		if id == m.focus {
			start = i
			break
		}
	}
	n := len(m.order)
	for off := 1; off <= n; off++ {
		idx := ((start+off*step)%n + n) % n
		w := m.widgets[m.order[idx]]
		if w.Enabled() {
			m.applyFocus(w)
			return w.ID(), true
		}
	}
	return "", false
}

// UpdateHitbox rewrites a widget's geometry after the layout
// collaborator recomputed it, e.g. on terminal resize
func (m *Menu) UpdateHitbox(id string, hb core.Hitbox) error {
	w, ok := m.widgets[id]
	if !ok {
		return fmt.Errorf("update hitbox %q: %w", id, ErrInvalidReference)
	}
	setter, ok := w.(HitboxSetter)
	if !ok {
		return fmt.Errorf("update hitbox %q: widget does not support geometry updates", id)
	}
	setter.SetHitbox(hb)
	return nil
}

// HandleKey forwards a non-directional key event to the focused
// widget, returning true if consumed
func (m *Menu) HandleKey(ev terminal.Event) bool {
	w, ok := m.FocusedWidget()
	if !ok {
		return false
	}
	return w.HandleKey(ev)
}

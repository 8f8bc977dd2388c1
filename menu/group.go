package menu

// Submenu is a named partition of a menu's widgets expressing
// navigation locality: directional search prefers members of the
// focused widget's submenu before considering the rest of the menu.
// Membership is maintained by the owning Menu, which enforces the
// one-group-per-widget invariant by reassignment (last registration
// wins).
type Submenu struct {
	id      string
	members []string // widget ids in registration order
}

// NewSubmenu creates an empty submenu with the given id
func NewSubmenu(id string) *Submenu {
	return &Submenu{id: id}
}

// ID returns the submenu identifier
func (s *Submenu) ID() string {
	return s.id
}

// Add appends a widget id, ignoring ids already present
func (s *Submenu) Add(widgetID string) {
	if s.Contains(widgetID) {
		return
	}
	s.members = append(s.members, widgetID)
}

// Remove deletes a widget id, preserving member order
func (s *Submenu) Remove(widgetID string) {
	for i, id := range s.members {
		if id == widgetID {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return
		}
	}
}

// Contains reports membership
func (s *Submenu) Contains(widgetID string) bool {
	for _, id := range s.members {
		if id == widgetID {
			return true
		}
	}
	return false
}

// Members returns a copy of the member ids in registration order
func (s *Submenu) Members() []string {
	out := make([]string, len(s.members))
	copy(out, s.members)
	return out
}

// Len returns the member count
func (s *Submenu) Len() int {
	return len(s.members)
}

package menu

import (
	"sort"

	"github.com/lixenwraith/menukit/core"
)

// ResolveNext computes the widget that should receive focus when
// moving in the given direction from currentID. It is a pure function
// over the menu's current widget snapshot; no adjacency structure is
// cached, so live hitbox changes (e.g. after a resize) are always
// honored.
//
// Search order:
//  1. No usable current focus: the first enabled widget in
//     registration order is the default.
//  2. Phase A, intra-group: enabled widgets sharing the current
//     widget's submenu that lie in the direction's half-plane, ranked
//     by center distance, ties broken by registration order.
//  3. Phase B, inter-group: the same filter and ranking over the
//     enabled widgets of every other submenu, pooled together.
//
// The false result means focus should not move - the edge of the
// navigable area, a normal outcome.
func ResolveNext(currentID string, dir core.Direction, m *Menu) (string, bool) {
	cur, ok := m.widgets[currentID]
	if !ok || !cur.Enabled() {
		// Absent, removed or disabled focus falls back to the
		// initial-focus rule
		return firstEnabled(m)
	}

	curGroup := m.groupOf[currentID]
	curBox := cur.Hitbox()

	var intra, inter []candidate
	for i, id := range m.order {
		if id == currentID {
			continue
		}
		w := m.widgets[id]
		if !w.Enabled() {
			continue
		}
		if !curBox.RelevantTo(w.Hitbox(), dir) {
			continue
		}
		c := candidate{id: id, order: i, dist: curBox.DistanceTo(w.Hitbox())}
		// Ungrouped widgets are singleton groups: they never share a
		// group with anything, so they only pool into phase B
		if curGroup != "" && m.groupOf[id] == curGroup {
			intra = append(intra, c)
		} else {
			inter = append(inter, c)
		}
	}

	if best, ok := head(intra); ok {
		return best, true
	}
	return head(inter)
}

type candidate struct {
	id    string
	order int
	dist  float64
}

// head ranks candidates by distance, then registration order, and
// returns the winner
func head(cands []candidate) (string, bool) {
	if len(cands) == 0 {
		return "", false
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist != cands[j].dist {
			return cands[i].dist < cands[j].dist
		}
		return cands[i].order < cands[j].order
	})
	return cands[0].id, true
}

// firstEnabled implements the initial-focus default
func firstEnabled(m *Menu) (string, bool) {
	for _, id := range m.order {
		if m.widgets[id].Enabled() {
			return id, true
		}
	}
	return "", false
}

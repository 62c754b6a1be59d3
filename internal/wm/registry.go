package wm

import "deskfolio/internal/geom"

// Definition is the host-supplied, immutable description of one window.
type Definition struct {
	ID       string
	Title    string
	Position geom.Point
	Size     geom.Size
}

// Registry holds the canonical, ordered set of window definitions.
// It is immutable after construction.
type Registry struct {
	defs  []Definition
	index map[string]int
}

// NewRegistry creates a registry from defs in definition order. The input is
// trusted static configuration; a repeated id keeps its first definition.
func NewRegistry(defs []Definition) *Registry {
	r := &Registry{
		defs:  make([]Definition, 0, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	for _, d := range defs {
		if _, dup := r.index[d.ID]; dup {
			continue
		}
		r.index[d.ID] = len(r.defs)
		r.defs = append(r.defs, d)
	}
	return r
}

// Len returns the number of windows.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Definitions returns a copy of the definitions in definition order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Lookup returns the definition for id.
func (r *Registry) Lookup(id string) (Definition, bool) {
	i, ok := r.index[id]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// IDs returns the window ids in definition order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.defs))
	for i, d := range r.defs {
		ids[i] = d.ID
	}
	return ids
}

// Initial builds a fresh state: every window closed, zIndex assigned by
// definition order starting at 1, no active window and nothing minimized by
// the home action. Calling it again always yields an equal state.
func (r *Registry) Initial() State {
	s := State{
		reg:     r,
		windows: make(map[string]Window, len(r.defs)),
		byHome:  make(map[string]struct{}),
	}
	for i, d := range r.defs {
		s.windows[d.ID] = Window{
			ID:       d.ID,
			Title:    d.Title,
			Z:        i + 1,
			Position: d.Position,
			Size:     d.Size,
		}
	}
	return s
}

// Package drag tracks a single bounded pointer drag at a time.
//
// Desktop icons and windows share the same rules: the grabbed entity keeps
// the pointer offset captured at press time, and its top-left corner is
// clamped so the entity stays inside the container above the reserved
// bottom inset (the taskbar).
package drag

import "deskfolio/internal/geom"

// Bounds describes the container an entity is dragged within.
type Bounds struct {
	Width       int
	Height      int
	BottomInset int
}

// Clamp limits p so an entity of the given size stays inside b. When the
// entity is larger than the container the result is pinned to the origin.
func Clamp(p geom.Point, entity geom.Size, b Bounds) geom.Point {
	maxX := b.Width - entity.Width
	maxY := b.Height - entity.Height - b.BottomInset
	return geom.Point{
		X: clampInt(p.X, 0, maxX),
		Y: clampInt(p.Y, 0, maxY),
	}
}

func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Tracker owns the one active drag, if any.
type Tracker struct {
	cur *Session
}

// Session is one drag from press to release. A released session ignores
// further calls.
type Session struct {
	t        *Tracker
	id       string
	offset   geom.Point
	size     geom.Size
	bounds   Bounds
	origin   geom.Point
	last     geom.Point
	moved    bool
	released bool
}

// Begin starts dragging id. pointer is the press position and origin the
// entity's current top-left corner. Any drag still in progress is released
// first, so at most one entity is ever being dragged.
func (t *Tracker) Begin(id string, pointer, origin geom.Point, size geom.Size, b Bounds) *Session {
	if t.cur != nil {
		t.cur.Release()
	}
	s := &Session{
		t:      t,
		id:     id,
		offset: pointer.Sub(origin),
		size:   size,
		bounds: b,
		origin: origin,
		last:   origin,
	}
	t.cur = s
	return s
}

// Active returns the id being dragged.
func (t *Tracker) Active() (string, bool) {
	if t.cur == nil {
		return "", false
	}
	return t.cur.id, true
}

// Session returns the drag in progress, or nil.
func (t *Tracker) Session() *Session {
	return t.cur
}

// Move updates the drag in progress with a new pointer position and returns
// the clamped top-left corner of the entity. ok is false when nothing is
// being dragged.
func (t *Tracker) Move(pointer geom.Point) (geom.Point, bool) {
	if t.cur == nil {
		return geom.Point{}, false
	}
	return t.cur.Move(pointer), true
}

// End releases the drag in progress. dragged reports whether the entity
// actually moved, in which case the release must not be treated as a click.
func (t *Tracker) End() (id string, pos geom.Point, dragged bool) {
	s := t.cur
	if s == nil {
		return "", geom.Point{}, false
	}
	s.Release()
	return s.id, s.last, s.moved
}

// Cancel drops the drag in progress without reporting it. It is used when
// the pointer leaves the surface.
func (t *Tracker) Cancel() {
	if t.cur != nil {
		t.cur.Release()
	}
}

// ID returns the dragged entity id.
func (s *Session) ID() string {
	return s.id
}

// Position returns the latest clamped top-left corner.
func (s *Session) Position() geom.Point {
	return s.last
}

// Moved reports whether the entity left its starting position.
func (s *Session) Moved() bool {
	return s.moved
}

// Move computes the clamped top-left for pointer.
func (s *Session) Move(pointer geom.Point) geom.Point {
	if s.released {
		return s.last
	}
	s.last = Clamp(pointer.Sub(s.offset), s.size, s.bounds)
	if s.last != s.origin {
		s.moved = true
	}
	return s.last
}

// Release ends the session. It is safe to call more than once.
func (s *Session) Release() {
	if s.released {
		return
	}
	s.released = true
	if s.t != nil && s.t.cur == s {
		s.t.cur = nil
	}
}

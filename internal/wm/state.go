package wm

import (
	"errors"
	"fmt"
	"sort"

	"deskfolio/internal/geom"
)

// ErrInvariant is wrapped by every error returned from State.Validate.
var ErrInvariant = errors.New("window manager invariant violated")

// Mode is the lifecycle state of a single window.
type Mode int

const (
	// ModeClosed indicates the window is not open.
	ModeClosed Mode = iota
	// ModeNormal indicates an open window drawn at its own position.
	ModeNormal
	// ModeMinimized indicates an open window hidden from the desktop.
	ModeMinimized
	// ModeMaximized indicates an open window filling the desktop.
	ModeMaximized
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeClosed:
		return "closed"
	case ModeNormal:
		return "normal"
	case ModeMinimized:
		return "minimized"
	case ModeMaximized:
		return "maximized"
	default:
		return "unknown"
	}
}

// Window is the mutable per-window state. Values are copied out of State, so
// changing a Window has no effect on the manager.
type Window struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Open      bool       `json:"open"`
	Minimized bool       `json:"minimized"`
	Maximized bool       `json:"maximized"`
	Z         int        `json:"z"`
	Position  geom.Point `json:"position"`
	Size      geom.Size  `json:"size"`
}

// Mode derives the lifecycle state from the flags.
func (w Window) Mode() Mode {
	switch {
	case !w.Open:
		return ModeClosed
	case w.Minimized:
		return ModeMinimized
	case w.Maximized:
		return ModeMaximized
	default:
		return ModeNormal
	}
}

// Visible reports whether the window is open and not minimized.
func (w Window) Visible() bool {
	return w.Open && !w.Minimized
}

// State is a snapshot of the whole window manager. The zero value has no
// windows and ignores every command; obtain real states from Registry.Initial.
type State struct {
	reg     *Registry
	windows map[string]Window
	active  string
	byHome  map[string]struct{}
}

// Window returns the state of window id.
func (s State) Window(id string) (Window, bool) {
	w, ok := s.windows[id]
	return w, ok
}

// Windows returns every window in definition order.
func (s State) Windows() []Window {
	if s.reg == nil {
		return nil
	}
	out := make([]Window, 0, len(s.windows))
	for _, d := range s.reg.defs {
		out = append(out, s.windows[d.ID])
	}
	return out
}

// Stack returns the open windows, minimized ones included, ordered by
// ascending zIndex. The last element is the front-most window.
func (s State) Stack() []Window {
	out := make([]Window, 0, len(s.windows))
	for _, w := range s.Windows() {
		if w.Open {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}

// Visible returns the open, non-minimized windows in render order.
func (s State) Visible() []Window {
	stack := s.Stack()
	out := stack[:0]
	for _, w := range stack {
		if !w.Minimized {
			out = append(out, w)
		}
	}
	return out
}

// Active returns the focused window id, or "" when no window is focused.
func (s State) Active() string {
	return s.active
}

// MinimizedByHome returns, in definition order, the windows the bulk home
// action minimized and will restore on its next use.
func (s State) MinimizedByHome() []string {
	if s.reg == nil {
		return nil
	}
	var out []string
	for _, d := range s.reg.defs {
		if _, ok := s.byHome[d.ID]; ok {
			out = append(out, d.ID)
		}
	}
	return out
}

// OpenCount returns the number of open windows.
func (s State) OpenCount() int {
	n := 0
	for _, w := range s.windows {
		if w.Open {
			n++
		}
	}
	return n
}

// Registry returns the registry the state was built from.
func (s State) Registry() *Registry {
	return s.reg
}

// Validate checks every structural invariant of the state and reports all
// violations joined into one error.
func (s State) Validate() error {
	var errs []error
	open := s.OpenCount()
	seen := make(map[int]string, open)
	for _, w := range s.Windows() {
		if w.Z < 1 {
			errs = append(errs, fmt.Errorf("%w: %s has zIndex %d", ErrInvariant, w.ID, w.Z))
		}
		if w.Minimized && w.Maximized {
			errs = append(errs, fmt.Errorf("%w: %s is both minimized and maximized", ErrInvariant, w.ID))
		}
		if !w.Open {
			if w.Minimized || w.Maximized {
				errs = append(errs, fmt.Errorf("%w: closed window %s keeps flags", ErrInvariant, w.ID))
			}
			continue
		}
		if w.Z > open {
			errs = append(errs, fmt.Errorf("%w: %s has zIndex %d above open count %d", ErrInvariant, w.ID, w.Z, open))
		}
		if other, dup := seen[w.Z]; dup {
			errs = append(errs, fmt.Errorf("%w: %s and %s share zIndex %d", ErrInvariant, other, w.ID, w.Z))
		}
		seen[w.Z] = w.ID
	}
	if s.active != "" {
		w, ok := s.windows[s.active]
		if !ok || !w.Visible() {
			errs = append(errs, fmt.Errorf("%w: active window %q is not visible", ErrInvariant, s.active))
		}
	}
	for id := range s.byHome {
		if w, ok := s.windows[id]; !ok || !w.Open {
			errs = append(errs, fmt.Errorf("%w: %q minimized by home but not open", ErrInvariant, id))
		}
	}
	return errors.Join(errs...)
}

func (s State) clone() State {
	next := State{
		reg:     s.reg,
		windows: make(map[string]Window, len(s.windows)),
		active:  s.active,
		byHome:  make(map[string]struct{}, len(s.byHome)),
	}
	for id, w := range s.windows {
		next.windows[id] = w
	}
	for id := range s.byHome {
		next.byHome[id] = struct{}{}
	}
	return next
}

// topVisible returns the open, non-minimized window with the highest zIndex.
func (s *State) topVisible() string {
	best, bestZ := "", 0
	for id, w := range s.windows {
		if w.Visible() && w.Z > bestZ {
			best, bestZ = id, w.Z
		}
	}
	return best
}

package wm

import "deskfolio/internal/geom"

// Kind identifies a window manager command.
type Kind int

const (
	Open Kind = iota
	Close
	Minimize
	Maximize
	Restore
	Focus
	TaskbarClick
	ToggleMinimizeAll
	Reset
	Move
)

// String returns a string representation of the command kind.
func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Close:
		return "close"
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	case Restore:
		return "restore"
	case Focus:
		return "focus"
	case TaskbarClick:
		return "taskbar_click"
	case ToggleMinimizeAll:
		return "toggle_minimize_all"
	case Reset:
		return "reset"
	case Move:
		return "move"
	default:
		return "unknown"
	}
}

// Command is one input to Apply. ByHome is only read by Minimize and
// Restore; To is only read by Move.
type Command struct {
	Kind   Kind
	ID     string
	ByHome bool
	To     geom.Point
}

// Apply returns the state that results from running c against s. The input
// state is never modified. Commands that name an unknown window, or whose
// precondition does not hold, return s unchanged.
func Apply(s State, c Command) State {
	if s.reg == nil {
		return s
	}
	switch c.Kind {
	case Reset:
		return s.reg.Initial()
	case ToggleMinimizeAll:
		next := s.clone()
		next.toggleMinimizeAll()
		return next
	}

	w, ok := s.windows[c.ID]
	if !ok || !legal(w, c.Kind) {
		return s
	}
	next := s.clone()
	switch c.Kind {
	case Open:
		next.open(c.ID)
	case Close:
		next.close(c.ID)
	case Minimize:
		next.minimize(c.ID, c.ByHome)
	case Maximize:
		next.maximize(c.ID)
	case Restore:
		next.restore(c.ID, c.ByHome)
	case Focus:
		next.focus(c.ID)
	case TaskbarClick:
		next.taskbarClick(c.ID)
	case Move:
		w.Position = c.To
		next.windows[c.ID] = w
	default:
		return s
	}
	return next
}

// legal reports whether the precondition of k holds for w.
func legal(w Window, k Kind) bool {
	switch k {
	case Open:
		return true
	case Close, Maximize, TaskbarClick:
		return w.Open
	case Minimize, Focus:
		return w.Visible()
	case Restore:
		return w.Open && w.Minimized
	case Move:
		return w.Visible() && !w.Maximized
	default:
		return false
	}
}

func (s *State) open(id string) {
	w := s.windows[id]
	if w.Visible() {
		s.focus(id)
		return
	}
	if !w.Open {
		w.Open = true
		w.Z = s.OpenCount() + 1
	}
	w.Minimized = false
	s.windows[id] = w
	delete(s.byHome, id)
	s.focus(id)
}

func (s *State) close(id string) {
	w := s.windows[id]
	former := w.Z
	w.Open, w.Minimized, w.Maximized = false, false, false
	s.windows[id] = w
	delete(s.byHome, id)
	for oid, o := range s.windows {
		if o.Open && o.Z > former {
			o.Z--
			s.windows[oid] = o
		}
	}
	if s.active == id {
		s.active = s.topVisible()
	}
}

func (s *State) minimize(id string, byHome bool) {
	w := s.windows[id]
	w.Minimized, w.Maximized = true, false
	s.windows[id] = w
	if byHome {
		s.byHome[id] = struct{}{}
	} else {
		delete(s.byHome, id)
	}
	if s.active == id {
		s.active = s.topVisible()
	}
}

func (s *State) maximize(id string) {
	w := s.windows[id]
	w.Maximized = !w.Maximized
	w.Minimized = false
	s.windows[id] = w
	delete(s.byHome, id)
	s.focus(id)
}

func (s *State) restore(id string, byHome bool) {
	w := s.windows[id]
	w.Minimized = false
	s.windows[id] = w
	if byHome {
		delete(s.byHome, id)
	}
	s.focus(id)
}

// focus raises id to the top of the open stack and makes it active in the
// same step. It does nothing unless id is visible.
func (s *State) focus(id string) {
	w := s.windows[id]
	if !w.Visible() {
		return
	}
	top := s.OpenCount()
	if w.Z != top {
		for oid, o := range s.windows {
			if o.Open && o.Z > w.Z {
				o.Z--
				s.windows[oid] = o
			}
		}
		w.Z = top
		s.windows[id] = w
	}
	s.active = id
}

func (s *State) taskbarClick(id string) {
	w := s.windows[id]
	switch {
	case w.Minimized:
		s.restore(id, false)
	case s.active == id:
		s.minimize(id, false)
	default:
		s.focus(id)
	}
}

func (s *State) toggleMinimizeAll() {
	if len(s.byHome) == 0 {
		for _, d := range s.reg.defs {
			if s.windows[d.ID].Visible() {
				s.minimize(d.ID, true)
			}
		}
		s.active = ""
		return
	}

	front, frontZ := "", 0
	for _, d := range s.reg.defs {
		if _, ok := s.byHome[d.ID]; !ok {
			continue
		}
		w := s.windows[d.ID]
		if !w.Open || !w.Minimized {
			continue
		}
		w.Minimized = false
		s.windows[d.ID] = w
		if w.Z > frontZ {
			front, frontZ = d.ID, w.Z
		}
	}
	clear(s.byHome)
	if front == "" {
		s.active = ""
		return
	}
	s.focus(front)
}

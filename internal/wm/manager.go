package wm

import "deskfolio/internal/geom"

// Logger receives one debug record per applied command.
type Logger interface {
	Debug(msg string, args ...any)
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used to record transitions.
func WithLogger(l Logger) Option {
	return func(m *Manager) {
		m.log = l
	}
}

// Manager owns the current State for a single-threaded caller. Commands issued
// in sequence observe each other's effects in issuance order.
type Manager struct {
	reg   *Registry
	state State
	log   Logger
}

// NewManager creates a manager holding reg's initial state.
func NewManager(reg *Registry, opts ...Option) *Manager {
	m := &Manager{reg: reg, state: reg.Initial()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current state.
func (m *Manager) State() State {
	return m.state
}

// Registry returns the registry the manager resets to.
func (m *Manager) Registry() *Registry {
	return m.reg
}

// Dispatch applies c and reports whether the state changed.
func (m *Manager) Dispatch(c Command) bool {
	prev := m.state
	m.state = Apply(prev, c)
	changed := !sameState(prev, m.state)
	if m.log != nil {
		m.log.Debug("window command",
			"kind", c.Kind.String(),
			"id", c.ID,
			"by_home", c.ByHome,
			"changed", changed,
			"active", m.state.active,
			"open", m.state.OpenCount(),
		)
	}
	return changed
}

// Rebase replaces the registry and resets the state from it.
func (m *Manager) Rebase(reg *Registry) {
	m.reg = reg
	m.state = reg.Initial()
	if m.log != nil {
		m.log.Debug("window registry replaced", "windows", reg.Len())
	}
}

func (m *Manager) Open(id string) bool {
	return m.Dispatch(Command{Kind: Open, ID: id})
}

func (m *Manager) Close(id string) bool {
	return m.Dispatch(Command{Kind: Close, ID: id})
}

func (m *Manager) Minimize(id string, byHome bool) bool {
	return m.Dispatch(Command{Kind: Minimize, ID: id, ByHome: byHome})
}

func (m *Manager) Maximize(id string) bool {
	return m.Dispatch(Command{Kind: Maximize, ID: id})
}

func (m *Manager) Restore(id string, byHome bool) bool {
	return m.Dispatch(Command{Kind: Restore, ID: id, ByHome: byHome})
}

func (m *Manager) Focus(id string) bool {
	return m.Dispatch(Command{Kind: Focus, ID: id})
}

func (m *Manager) TaskbarClick(id string) bool {
	return m.Dispatch(Command{Kind: TaskbarClick, ID: id})
}

func (m *Manager) ToggleMinimizeAll() bool {
	return m.Dispatch(Command{Kind: ToggleMinimizeAll})
}

func (m *Manager) Reset() bool {
	return m.Dispatch(Command{Kind: Reset})
}

func (m *Manager) Move(id string, to geom.Point) bool {
	return m.Dispatch(Command{Kind: Move, ID: id, To: to})
}

// sameState compares two states that share a registry.
func sameState(a, b State) bool {
	if a.active != b.active || len(a.windows) != len(b.windows) || len(a.byHome) != len(b.byHome) {
		return false
	}
	for id, w := range a.windows {
		if b.windows[id] != w {
			return false
		}
	}
	for id := range a.byHome {
		if _, ok := b.byHome[id]; !ok {
			return false
		}
	}
	return true
}

package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"deskfolio/internal/geom"
	"deskfolio/internal/wm"
)

type titleButton struct {
	kind  wm.Kind
	label string
	rect  geom.Rect
}

// windowRect is where w is drawn. Narrow viewports and maximized windows
// fill the desktop; a window being dragged follows the pointer.
func (m *model) windowRect(w wm.Window) geom.Rect {
	if m.narrow() || w.Maximized {
		return m.viewport().Desktop()
	}
	pos := w.Position
	if m.dragKind == dragWindow {
		if s := m.drag.Session(); s != nil && s.ID() == w.ID {
			pos = s.Position()
		}
	}
	return geom.Rect{Point: pos, Size: w.Size}
}

// titleButtons returns the buttons in the title bar of a window drawn at r,
// left to right. Narrow viewports only get close.
func (m *model) titleButtons(r geom.Rect) []titleButton {
	buttons := []titleButton{
		{kind: wm.Minimize, label: "[_]"},
		{kind: wm.Maximize, label: "[□]"},
		{kind: wm.Close, label: "[x]"},
	}
	if m.narrow() {
		buttons = buttons[2:]
	}
	x := r.Right() - 1 - len(buttons)*titleButtonWidth
	for i := range buttons {
		buttons[i].rect = geom.R(x+i*titleButtonWidth, r.Y, titleButtonWidth, 1)
	}
	return buttons
}

// windowAt returns the front-most visible window under p.
func (m *model) windowAt(p geom.Point) (wm.Window, bool) {
	visible := m.wm.State().Visible()
	for i := len(visible) - 1; i >= 0; i-- {
		if m.windowRect(visible[i]).Contains(p) {
			return visible[i], true
		}
	}
	return wm.Window{}, false
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	p := geom.Point{X: msg.X, Y: msg.Y}
	switch m.mode {
	case ModeLogin:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			m.loginButtonRect().Contains(p) {
			return m.startLogin()
		}
		return nil
	case ModeDesktop:
	default:
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return m.press(p)
		case tea.MouseButtonWheelUp:
			m.scrollAt(p, -1)
		case tea.MouseButtonWheelDown:
			m.scrollAt(p, 1)
		}
	case tea.MouseActionMotion:
		m.motion(p)
	case tea.MouseActionRelease:
		m.release(p)
	}
	return nil
}

func (m *model) press(p geom.Point) tea.Cmd {
	if p.Y >= m.taskbarRow() {
		if it, ok := m.taskbarHit(p.X); ok {
			return m.taskbarAction(it)
		}
		return nil
	}

	if w, ok := m.windowAt(p); ok {
		r := m.windowRect(w)
		if p.Y == r.Y {
			for _, b := range m.titleButtons(r) {
				if b.rect.Contains(p) {
					m.dispatch(wm.Command{Kind: b.kind, ID: w.ID})
					return nil
				}
			}
		}
		m.dispatch(wm.Command{Kind: wm.Focus, ID: w.ID})
		if p.Y == r.Y && !m.narrow() && !w.Maximized {
			m.drag.Begin(w.ID, p, w.Position, w.Size, m.viewport().Bounds())
			m.dragKind = dragWindow
		}
		return nil
	}

	if id, ok := m.icons.HitTest(p); ok {
		origin, _ := m.icons.Position(id)
		m.drag.Begin(id, p, origin, m.icons.Grid().Icon, m.viewport().Bounds())
		m.dragKind = dragIcon
	}
	return nil
}

func (m *model) motion(p geom.Point) {
	pos, ok := m.drag.Move(p)
	if !ok {
		return
	}
	if m.dragKind == dragIcon {
		id, _ := m.drag.Active()
		m.icons.Set(id, pos)
	}
}

func (m *model) release(p geom.Point) {
	if _, ok := m.drag.Active(); !ok {
		return
	}
	m.drag.Move(p)
	kind := m.dragKind
	m.dragKind = dragNone
	id, pos, dragged := m.drag.End()

	switch kind {
	case dragIcon:
		if dragged {
			m.icons.Set(id, pos)
			return
		}
		m.openPanel(id)
	case dragWindow:
		if dragged {
			m.dispatch(wm.Command{Kind: wm.Move, ID: id, To: pos})
		}
	}
}

// cancelDrag drops a drag when the pointer leaves the terminal.
func (m *model) cancelDrag() {
	if _, ok := m.drag.Active(); ok {
		m.log.Debug("drag cancelled")
	}
	m.drag.Cancel()
	m.dragKind = dragNone
}

func (m *model) scrollAt(p geom.Point, delta int) {
	if w, ok := m.windowAt(p); ok {
		m.scrollBy(w.ID, delta)
	}
}

func (m *model) taskbarAction(it taskbarItem) tea.Cmd {
	switch it.action {
	case actHome:
		m.dispatch(wm.Command{Kind: wm.ToggleMinimizeAll})
	case actWindow:
		m.dispatch(wm.Command{Kind: wm.TaskbarClick, ID: it.id})
	case actTheme:
		m.pal = m.pal.toggled()
	case actFullscreen:
		return m.toggleFullscreen()
	case actRestart:
		return m.enterMode(ModeRestarting)
	case actShutdown:
		return m.enterMode(ModeShuttingDown)
	}
	return nil
}

func (m *model) toggleFullscreen() tea.Cmd {
	m.fullscreen = !m.fullscreen
	m.log.Debug("fullscreen toggled", "on", m.fullscreen)
	if m.fullscreen {
		return tea.EnterAltScreen
	}
	return tea.ExitAltScreen
}

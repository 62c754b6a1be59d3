package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"deskfolio/internal/content"
	"deskfolio/internal/wm"
)

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	switch m.mode {
	case ModeLogin:
		switch key {
		case "enter", " ":
			return m.startLogin()
		case "ctrl+c":
			return m.enterMode(ModeShuttingDown)
		}
		return nil
	case ModeDesktop:
		return m.desktopKey(key)
	default:
		if key == "ctrl+c" {
			return tea.Quit
		}
		return nil
	}
}

func (m *model) desktopKey(key string) tea.Cmd {
	active := m.wm.State().Active()
	switch key {
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(key[0] - '1')
		if i < len(m.panels) {
			m.openPanel(m.panels[i].ID)
		}
	case "tab":
		// Raising the bottom window cycles through all of them.
		if visible := m.wm.State().Visible(); len(visible) > 1 {
			m.dispatch(wm.Command{Kind: wm.Focus, ID: visible[0].ID})
		}
	case "m":
		m.dispatch(wm.Command{Kind: wm.Minimize, ID: active})
	case "z":
		m.dispatch(wm.Command{Kind: wm.Maximize, ID: active})
	case "x":
		m.dispatch(wm.Command{Kind: wm.Close, ID: active})
	case "h":
		m.dispatch(wm.Command{Kind: wm.ToggleMinimizeAll})
	case "t":
		m.pal = m.pal.toggled()
	case "f":
		return m.toggleFullscreen()
	case "w":
		return m.refreshWallpaper()
	case "up":
		m.scrollBy(active, -1)
	case "down":
		m.scrollBy(active, 1)
	case "j", "k":
		if active == content.SkillsID {
			m.moveSkill(key == "j")
		}
	case "y":
		return m.copyEmail()
	case "ctrl+s":
		return m.snapshot()
	case "r":
		return m.enterMode(ModeRestarting)
	case "q", "ctrl+c":
		return m.enterMode(ModeShuttingDown)
	case "H", "J", "K", "L", "shift+left", "shift+right", "shift+up", "shift+down":
		m.nudgeActive(key)
	}
	return nil
}

func (m *model) moveSkill(down bool) {
	n := len(content.Skills())
	switch {
	case down && m.skill < n-1:
		m.skill++
	case !down && m.skill > 0:
		m.skill--
	}
}

// scrollBy moves a window body by delta lines within its content.
func (m *model) scrollBy(id string, delta int) {
	w, ok := m.wm.State().Window(id)
	if !ok || !w.Visible() {
		return
	}
	m.scroll[id] = clamp(m.scroll[id]+delta, 0, m.maxScroll(w))
}

func (m *model) maxScroll(w wm.Window) int {
	body := bodyRect(m.windowRect(w))
	lines := m.panelLines(w.ID, body.Width)
	return max(0, len(lines)-body.Height)
}

func (m *model) copyEmail() tea.Cmd {
	email := m.cfg.Profile.Email
	if email == "" {
		return nil
	}
	if err := m.copyText(email); err != nil {
		return m.fail("clipboard", err)
	}
	return m.setStatus("Copied " + email)
}

func (m *model) snapshot() tea.Cmd {
	path := m.cfg.SnapshotPath(snapshotName(m.now()))
	if err := m.compose().ExportPNG(path); err != nil {
		return m.fail("snapshot", err)
	}
	m.log.Info("snapshot saved", "path", path)
	return m.setStatus("Saved " + path)
}

package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"deskfolio/internal/wallpaper"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.resize(msg.Width, msg.Height)

	case tickMsg:
		if msg.gen != m.gen || m.runner == nil {
			return m, nil
		}
		if !m.runner.Advance(m.cfg.Desktop.Tick) {
			return m, m.tick()
		}
		return m, m.finishSequence()

	case clockMsg:
		m.clock = time.Time(msg)
		return m, m.clockTick()

	case statusClearMsg:
		if msg.gen == m.statusGen {
			m.status = ""
		}
		return m, nil

	case wallpaperMsg:
		res := wallpaper.Result(msg)
		if !m.walls.Accept(res) {
			m.log.Debug("stale wallpaper dropped", "request", res.RequestID)
			return m, nil
		}
		if res.Err != nil {
			return m, m.fail("wallpaper", res.Err)
		}
		m.art = res.Art
		return m, nil

	case configChangedMsg:
		if msg.err != nil {
			return m, m.fail("config reload", msg.err)
		}
		m.pending = msg.cfg
		m.log.Info("config changed", "path", msg.cfg.Path())
		return m, m.setStatus("Config changed, restart to apply")

	case tea.BlurMsg:
		m.cancelDrag()
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

// resize applies a new terminal size. Icons are relaid out when the
// viewport class changes and a wallpaper for the new size is requested.
func (m *model) resize(width, height int) tea.Cmd {
	if width == m.width && height == m.height {
		return nil
	}
	m.width, m.height = width, height
	if m.icons.Sync(m.viewport()) {
		m.log.Debug("icons relaid out", "narrow", m.icons.Narrow(), "width", width)
	}
	m.art = nil
	return m.refreshWallpaper()
}

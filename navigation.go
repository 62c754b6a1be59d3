package main

import (
	"deskfolio/internal/drag"
	"deskfolio/internal/geom"
	"deskfolio/internal/wm"
)

// nudgeActive moves the active window from the keyboard. Held shift moves
// two cells at a time.
func (m *model) nudgeActive(key string) bool {
	state := m.wm.State()
	w, ok := state.Window(state.Active())
	if !ok || !w.Visible() || w.Maximized || m.narrow() {
		return false
	}
	speed := m.getMoveSpeed(key)
	to := w.Position
	switch key {
	case "H", "shift+left":
		to.X -= speed
	case "L", "shift+right":
		to.X += speed
	case "K", "shift+up":
		to.Y -= speed
	case "J", "shift+down":
		to.Y += speed
	default:
		return false
	}
	to = drag.Clamp(to, w.Size, m.viewport().Bounds())
	return m.dispatch(wm.Command{Kind: wm.Move, ID: w.ID, To: to})
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

// windowPosition reports where id is currently drawn.
func (m *model) windowPosition(id string) (geom.Point, bool) {
	w, ok := m.wm.State().Window(id)
	if !ok {
		return geom.Point{}, false
	}
	return m.windowRect(w).Point, true
}

package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"deskfolio/internal/geom"
	"deskfolio/internal/wm"
)

func (m *model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	return strings.Join(m.compose().Render(), "\n")
}

// compose draws the current mode into a fresh frame.
func (m *model) compose() *screen {
	switch m.mode {
	case ModeBooting, ModeShuttingDown, ModeRestarting:
		return m.composeSequence()
	case ModeLogin:
		return m.composeLogin()
	default:
		return m.composeDesktop()
	}
}

func (m *model) composeSequence() *screen {
	fg := m.pal.ByeText
	if m.mode == ModeBooting {
		fg = m.pal.BootText
	}
	st := cellStyle{Fg: fg, Bg: m.pal.Screen}
	s := newScreen(m.width, m.height, st)
	if m.runner == nil {
		return s
	}
	st.Faint = m.runner.Fading()

	if m.mode != ModeBooting {
		y := m.height/2 - 1
		msg := m.runner.Message()
		s.DrawText(centered(m.width, msg), y, msg, m.width, st)
		return s
	}

	y := 1
	for _, line := range m.runner.Sequence().Banner {
		s.DrawText(2, y, line, m.width-2, st)
		y++
	}
	y++
	msg := m.runner.Message()
	if m.runner.Blink() {
		msg += "_"
	}
	s.DrawText(2, y, msg, m.width-2, st)
	y += 2
	s.DrawText(2, y, progressBar(m.runner.Progress(), min(40, m.width-4)), m.width-2, st)
	return s
}

func progressBar(p float64, width int) string {
	inner := width - 7
	if inner < 1 {
		return fmt.Sprintf("%3d%%", int(p*100))
	}
	filled := int(p * float64(inner))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", inner-filled) + "] " + fmt.Sprintf("%3d%%", int(p*100))
}

func centered(width int, text string) int {
	return max(0, (width-utf8.RuneCountInString(text))/2)
}

const (
	loginCardWidth  = 30
	loginCardHeight = 9
	loginLabel      = "[ Login ]"
)

func (m *model) loginCardRect() geom.Rect {
	desk := m.viewport().Desktop()
	w := min(loginCardWidth, desk.Width)
	h := min(loginCardHeight, desk.Height)
	return geom.R((desk.Width-w)/2, (desk.Height-h)/2, w, h)
}

func (m *model) loginButtonRect() geom.Rect {
	card := m.loginCardRect()
	w := utf8.RuneCountInString(loginLabel)
	return geom.R(card.X+(card.Width-w)/2, card.Y+6, w, 1)
}

func (m *model) composeLogin() *screen {
	s := newScreen(m.width, m.height, cellStyle{Bg: m.pal.Screen})
	m.drawBackground(s)

	card := m.loginCardRect()
	st := cellStyle{Fg: m.pal.WindowText, Bg: m.pal.Window}
	s.Fill(card, ' ', st)
	s.DrawBox(card, true, cellStyle{Fg: m.pal.Accent, Bg: m.pal.Window})
	bold := st
	bold.Bold = true
	s.DrawText(card.X+centered(card.Width, "Welcome!"), card.Y+2, "Welcome!", card.Width-2, bold)
	s.DrawText(card.X+centered(card.Width, "Guest"), card.Y+4, "Guest", card.Width-2, st)

	btn := m.loginButtonRect()
	if m.loggingIn {
		msg := "Logging in..."
		s.DrawText(card.X+centered(card.Width, msg), btn.Y, msg, card.Width-2, cellStyle{Fg: m.pal.Muted, Bg: m.pal.Window})
	} else {
		s.DrawText(btn.X, btn.Y, loginLabel, btn.Width, cellStyle{Fg: m.pal.TitleText, Bg: m.pal.ActiveBtn, Bold: true})
	}
	return s
}

func (m *model) composeDesktop() *screen {
	s := newScreen(m.width, m.height, cellStyle{Fg: m.pal.Text, Bg: m.pal.Desktop})
	m.drawBackground(s)
	m.drawIcons(s)

	state := m.wm.State()
	for _, w := range state.Visible() {
		m.drawWindow(s, w, w.ID == state.Active())
	}
	m.drawTaskbar(s)

	if m.status != "" {
		row := m.taskbarRow() - 1
		text := " " + m.status + " "
		s.DrawText(max(0, m.width-utf8.RuneCountInString(text)), row, text, m.width, cellStyle{Fg: m.pal.TaskbarText, Bg: m.pal.Taskbar})
	}
	return s
}

// drawBackground paints the wallpaper, or the theme color without one.
func (m *model) drawBackground(s *screen) {
	desk := m.viewport().Desktop()
	if m.art == nil {
		s.Fill(desk, ' ', cellStyle{Fg: m.pal.Text, Bg: m.pal.Desktop})
		return
	}
	for y := desk.Y; y < desk.Bottom(); y++ {
		for x := desk.X; x < desk.Right(); x++ {
			if c, ok := m.art.At(x, y); ok {
				s.Set(x, y, '▀', cellStyle{Fg: c.Top, Bg: c.Bottom})
			} else {
				s.Set(x, y, ' ', cellStyle{Bg: m.pal.Desktop})
			}
		}
	}
}

func (m *model) drawIcons(s *screen) {
	st := cellStyle{Fg: m.pal.IconText, Bg: m.pal.Icon}
	for _, id := range m.icons.IDs() {
		p, ok := m.panel(id)
		if !ok {
			continue
		}
		r := m.icons.Rect(id)
		s.Fill(r, ' ', st)
		glyph := p.Glyph
		s.DrawText(r.X+centered(r.Width, glyph), r.Y+1, glyph, r.Width, cellStyle{Fg: m.pal.Accent, Bg: m.pal.Icon, Bold: true})
		title := truncate(p.Title, r.Width)
		s.DrawText(r.X+centered(r.Width, title), r.Bottom()-2, title, r.Width, st)
	}
}

// bodyRect is the text area of a window drawn at r.
func bodyRect(r geom.Rect) geom.Rect {
	return geom.R(r.X+2, r.Y+1, max(0, r.Width-4), max(0, r.Height-2))
}

func (m *model) drawWindow(s *screen, w wm.Window, active bool) {
	r := m.windowRect(w)
	base := cellStyle{Fg: m.pal.WindowText, Bg: m.pal.Window}
	s.Fill(r, ' ', base)
	border := cellStyle{Fg: m.pal.Border, Bg: m.pal.Window}
	title := cellStyle{Fg: m.pal.WindowText, Bg: m.pal.IdleTitle}
	if active {
		border.Fg = m.pal.ActiveTitle
		title = cellStyle{Fg: m.pal.TitleText, Bg: m.pal.ActiveTitle, Bold: true}
	}
	s.DrawBox(r, active, border)

	buttons := m.titleButtons(r)
	bar := geom.R(r.X+1, r.Y, max(0, r.Width-2), 1)
	s.Fill(bar, ' ', title)
	label := " " + w.Title
	if p, ok := m.panel(w.ID); ok && p.Glyph != "" {
		label = " " + p.Glyph + label
	}
	room := bar.Width
	if len(buttons) > 0 {
		room = max(0, buttons[0].rect.X-bar.X-1)
	}
	s.DrawText(bar.X, bar.Y, label, room, title)
	for _, b := range buttons {
		s.DrawText(b.rect.X, b.rect.Y, b.label, b.rect.Width, title)
	}

	body := bodyRect(r)
	lines := m.panelLines(w.ID, body.Width)
	off := clamp(m.scroll[w.ID], 0, max(0, len(lines)-body.Height))
	for i := 0; i < body.Height && off+i < len(lines); i++ {
		s.DrawText(body.X, body.Y+i, lines[off+i], body.Width, base)
	}
	if len(lines) > body.Height && body.Height > 0 {
		s.Set(r.Right()-1, body.Y+off*body.Height/len(lines), '█', border)
	}
}

func (m *model) drawTaskbar(s *screen) {
	row := m.taskbarRow()
	base := cellStyle{Fg: m.pal.TaskbarText, Bg: m.pal.Taskbar}
	s.Fill(geom.R(0, row, m.width, 1), ' ', base)
	for _, it := range m.taskbarItems() {
		st := base
		switch it.action {
		case actWindow:
			st.Bg = m.pal.Button
			if it.active {
				st.Bg, st.Bold = m.pal.ActiveBtn, true
			}
			st.Faint = it.faint
		case actHome:
			st.Bold = true
		case actShutdown:
			st.Fg = m.pal.Danger
		}
		s.DrawText(it.x, row, it.label, it.width, st)
	}
}

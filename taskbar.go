package main

import (
	"unicode/utf8"

	"deskfolio/internal/layout"
)

type taskbarAction int

const (
	actHome taskbarAction = iota
	actWindow
	actTheme
	actFullscreen
	actClock
	actRestart
	actShutdown
)

// taskbarItem is one clickable span of the bottom row.
type taskbarItem struct {
	action taskbarAction
	id     string
	label  string
	x      int
	width  int
	active bool
	faint  bool
}

func (it taskbarItem) contains(x int) bool {
	return x >= it.x && x < it.x+it.width
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}

// taskbarItems lays out the taskbar for the current state. The same layout
// is used for drawing and for hit testing.
func (m *model) taskbarItems() []taskbarItem {
	right := []taskbarItem{
		{action: actTheme, label: " ☼ "},
		{action: actFullscreen, label: " □ "},
		{action: actClock, label: " " + m.clock.Format("3:04 PM 1/2/2006") + " "},
		{action: actRestart, label: " Restart "},
		{action: actShutdown, label: " Off "},
	}
	if m.fullscreen {
		right[1].label = " ■ "
	}
	x := m.width
	for i := len(right) - 1; i >= 0; i-- {
		right[i].width = utf8.RuneCountInString(right[i].label)
		x -= right[i].width
		right[i].x = x
	}
	limit := x

	home := taskbarItem{action: actHome, label: " ⌂ Home "}
	home.width = utf8.RuneCountInString(home.label)
	items := []taskbarItem{home}
	x = home.width + 1

	if !m.narrow() {
		state := m.wm.State()
		for _, w := range state.Windows() {
			if !w.Open {
				continue
			}
			it := taskbarItem{
				action: actWindow,
				id:     w.ID,
				label:  " " + truncate(w.Title, maxTaskbarLabel) + " ",
				active: w.ID == state.Active(),
				faint:  w.Minimized,
			}
			it.width = utf8.RuneCountInString(it.label)
			if x+it.width > limit {
				break
			}
			it.x = x
			items = append(items, it)
			x += it.width + 1
		}
	}

	for _, it := range right {
		if it.x >= home.width {
			items = append(items, it)
		}
	}
	return items
}

// taskbarRow is the screen row holding the taskbar.
func (m *model) taskbarRow() int {
	return m.height - layout.TaskbarRows
}

func (m *model) taskbarHit(x int) (taskbarItem, bool) {
	for _, it := range m.taskbarItems() {
		if it.contains(x) {
			return it, true
		}
	}
	return taskbarItem{}, false
}

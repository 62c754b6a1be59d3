package main

import "github.com/charmbracelet/lipgloss"

// palette holds the hex colors of one theme. Cells carry colors rather than
// styles so the same frame can be drawn to the terminal and to a PNG.
type palette struct {
	Name        string
	Desktop     string
	Text        string
	Muted       string
	Accent      string
	Window      string
	WindowText  string
	Border      string
	ActiveTitle string
	IdleTitle   string
	TitleText   string
	Taskbar     string
	TaskbarText string
	Button      string
	ActiveBtn   string
	Icon        string
	IconText    string
	Screen      string
	BootText    string
	ByeText     string
	Danger      string
}

func darkPalette() palette {
	return palette{
		Name:        "dark",
		Desktop:     "#1E2A38",
		Text:        "#E6EDF3",
		Muted:       "#7D8590",
		Accent:      "#58A6FF",
		Window:      "#0D1117",
		WindowText:  "#C9D1D9",
		Border:      "#30363D",
		ActiveTitle: "#1F6FEB",
		IdleTitle:   "#21262D",
		TitleText:   "#FFFFFF",
		Taskbar:     "#161B22",
		TaskbarText: "#C9D1D9",
		Button:      "#21262D",
		ActiveBtn:   "#388BFD",
		Icon:        "#2D333B",
		IconText:    "#E6EDF3",
		Screen:      "#000000",
		BootText:    "#4ADE80",
		ByeText:     "#93C5FD",
		Danger:      "#FF0055",
	}
}

func lightPalette() palette {
	return palette{
		Name:        "light",
		Desktop:     "#DCE6F0",
		Text:        "#1F2328",
		Muted:       "#6E7781",
		Accent:      "#0969DA",
		Window:      "#FFFFFF",
		WindowText:  "#24292F",
		Border:      "#D0D7DE",
		ActiveTitle: "#0969DA",
		IdleTitle:   "#EAEEF2",
		TitleText:   "#FFFFFF",
		Taskbar:     "#F6F8FA",
		TaskbarText: "#24292F",
		Button:      "#EAEEF2",
		ActiveBtn:   "#54AEFF",
		Icon:        "#FFFFFF",
		IconText:    "#1F2328",
		Screen:      "#000000",
		BootText:    "#4ADE80",
		ByeText:     "#93C5FD",
		Danger:      "#CF222E",
	}
}

func paletteFor(name string) palette {
	if name == "light" {
		return lightPalette()
	}
	return darkPalette()
}

func (p palette) toggled() palette {
	if p.Name == "light" {
		return darkPalette()
	}
	return lightPalette()
}

// cellStyle is the look of one screen cell.
type cellStyle struct {
	Fg    string
	Bg    string
	Bold  bool
	Faint bool
}

func (s cellStyle) style() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Fg != "" {
		st = st.Foreground(lipgloss.Color(s.Fg))
	}
	if s.Bg != "" {
		st = st.Background(lipgloss.Color(s.Bg))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Faint {
		st = st.Faint(true)
	}
	return st
}

// Package content holds the static panels shown inside desktop windows.
//
// Panels are display data only. The window manager sees them through the
// id, title and geometry fields; the shell asks a panel for its text at a
// given width.
package content

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"deskfolio/internal/geom"
)

// Panel ids in desktop order.
const (
	AboutID          = "about"
	ProjectsID       = "projects"
	SkillsID         = "skills"
	EducationID      = "education"
	CertificationsID = "certifications"
	BlogID           = "blog"
	ContactID        = "contact"
)

// Section is a heading followed by paragraphs.
type Section struct {
	Heading    string
	Paragraphs []string
}

// Panel is one window's content and default geometry.
type Panel struct {
	ID       string
	Title    string
	Glyph    string
	Position geom.Point
	Size     geom.Size
	Sections []Section
}

// Lines renders the panel as text wrapped to width.
func (p Panel) Lines(width int) []string {
	return renderSections(p.Sections, width)
}

func renderSections(sections []Section, width int) []string {
	if width < 1 {
		width = 1
	}
	var out []string
	for i, s := range sections {
		if i > 0 {
			out = append(out, "")
		}
		if s.Heading != "" {
			out = append(out, wrap(strings.ToUpper(s.Heading), width)...)
		}
		for _, para := range s.Paragraphs {
			out = append(out, wrap(para, width)...)
		}
	}
	return out
}

// wrap word-wraps text to width and trims the padding lipgloss adds.
func wrap(text string, width int) []string {
	rendered := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(rendered, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

// Link is a labelled URL on the contact panel.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Profile is the owner information woven into the panels.
type Profile struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Blog  string `yaml:"blog"`
	Links []Link `yaml:"links"`
}

// DefaultProfile is used when the config names no owner.
func DefaultProfile() Profile {
	return Profile{
		Name:  "Guest Developer",
		Email: "hello@deskfolio.dev",
		Blog:  "https://blog.deskfolio.dev",
		Links: []Link{
			{Label: "GitHub", URL: "https://github.com/deskfolio"},
			{Label: "LinkedIn", URL: "https://linkedin.com/in/deskfolio"},
		},
	}
}

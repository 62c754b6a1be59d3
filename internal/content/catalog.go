package content

import (
	"fmt"

	"deskfolio/internal/geom"
)

// Catalog returns every panel in desktop order, filled in from profile.
func Catalog(profile Profile) []Panel {
	panels := []Panel{
		{
			ID:    AboutID,
			Title: "About Me",
			Glyph: "[@]",
			Size:  geom.Size{Width: 54, Height: 19},
			Sections: []Section{
				{Paragraphs: []string{fmt.Sprintf("Hello! I'm %s, a software engineer who likes building "+
					"scalable systems that solve real problems.", profile.Name)}},
				{Heading: "Core strengths", Paragraphs: []string{
					"Cloud computing: designing cost-aware architectures on AWS and Google Cloud.",
					"Full stack development: React, Node.js and Python from the database to the browser.",
					"Problem solving: breaking complex problems into parts that can be shipped.",
				}},
				{Heading: "Future aspirations", Paragraphs: []string{
					"Launch a company offering cloud infrastructure to local businesses.",
				}},
				{Heading: "Personal interests", Paragraphs: []string{
					"Gaming, open source communities and teaching others about software.",
				}},
			},
		},
		{
			ID:    ProjectsID,
			Title: "Projects",
			Glyph: "[#]",
			Size:  geom.Size{Width: 59, Height: 17},
			Sections: []Section{
				{Heading: "MineVerse: game server management", Paragraphs: []string{
					"Objective: run a custom multiplayer server and grow a community around it.",
					"Tech stack: Java, Linux server management, MySQL for player data, modding APIs.",
					"Key features: custom mechanics, performance tuning and security hardening.",
					"Community: regular events, contests and challenges.",
				}},
			},
		},
		{
			ID:    SkillsID,
			Title: "Skills",
			Glyph: "[*]",
			Size:  geom.Size{Width: 63, Height: 17},
		},
		{
			ID:    EducationID,
			Title: "Education",
			Glyph: "[^]",
			Size:  geom.Size{Width: 54, Height: 16},
			Sections: []Section{
				{Heading: "Postgraduate degree in cyber security", Paragraphs: []string{
					"Security frameworks, threat detection, network security, cryptography and cyber defense for cloud environments.",
				}},
				{Heading: "Bachelor of computer applications", Paragraphs: []string{
					"Software development, database management and cloud computing with practical projects.",
				}},
			},
		},
		{
			ID:    CertificationsID,
			Title: "Certifications",
			Glyph: "[!]",
			Size:  geom.Size{Width: 54, Height: 17},
			Sections: []Section{
				{Heading: "Certified Ethical Hacker", Paragraphs: []string{
					"Penetration testing, vulnerability assessment and offensive security practice.",
				}},
				{Heading: "Cyber Security Expert", Paragraphs: []string{
					"Network security, incident response and vulnerability management.",
				}},
				{Heading: "Cyber Security Certification", Paragraphs: []string{
					"Threat detection and cyber defense with a focus on ethical hacking.",
				}},
			},
		},
		{
			ID:    BlogID,
			Title: "Blog",
			Glyph: "[~]",
			Size:  geom.Size{Width: 50, Height: 19},
			Sections: []Section{
				{Heading: "Latest posts", Paragraphs: []string{
					"Notes on cloud infrastructure, security and the tools used along the way.",
					"New posts aim to help fellow engineers learn in the open.",
				}},
				{Heading: "Read more", Paragraphs: []string{profile.Blog}},
			},
		},
		{
			ID:       ContactID,
			Title:    "Contact",
			Glyph:    "[&]",
			Size:     geom.Size{Width: 50, Height: 17},
			Sections: contactSections(profile),
		},
	}
	for i := range panels {
		panels[i].Position = geom.Point{X: 12 + 2*i, Y: 3 + i}
	}
	return panels
}

func contactSections(p Profile) []Section {
	links := make([]string, 0, len(p.Links))
	for _, l := range p.Links {
		links = append(links, l.Label+": "+l.URL)
	}
	return []Section{
		{Paragraphs: []string{"Let's connect! Always happy to share ideas and explore new opportunities."}},
		{Heading: "Email", Paragraphs: []string{p.Email, "(press y to copy)"}},
		{Heading: "Elsewhere", Paragraphs: links},
	}
}

// Find returns the panel with id.
func Find(panels []Panel, id string) (Panel, bool) {
	for _, p := range panels {
		if p.ID == id {
			return p, true
		}
	}
	return Panel{}, false
}

package content

import (
	"sort"
	"strings"
)

// Skill is one entry on the skills panel.
type Skill struct {
	Name        string
	Category    string
	Description string
	URL         string
}

var skills = []Skill{
	{"Python", "Languages", "A versatile high-level language used for web development, data science and scripting.", "https://www.python.org/"},
	{"Go", "Languages", "A compiled language with built-in concurrency, used for services and tooling.", "https://go.dev/"},
	{"Java", "Languages", "An object-oriented language for enterprise applications and large systems.", "https://www.java.com/"},
	{"TypeScript", "Languages", "JavaScript with static types for maintainable large projects.", "https://www.typescriptlang.org/"},
	{"React", "Frontend", "A component-based library for building user interfaces.", "https://react.dev/"},
	{"HTML5", "Frontend", "The standard markup language for web pages.", "https://developer.mozilla.org/en-US/docs/Web/HTML"},
	{"Node.js", "Backend", "A JavaScript runtime for scalable server-side applications.", "https://nodejs.org/"},
	{"Django", "Backend", "A Python web framework for rapid, pragmatic development.", "https://www.djangoproject.com/"},
	{"RabbitMQ", "Backend", "An open-source message broker implementing AMQP.", "https://www.rabbitmq.com/"},
	{"AWS", "Cloud", "Amazon's cloud computing platform.", "https://aws.amazon.com/"},
	{"Google Cloud", "Cloud", "Google's suite of cloud computing services.", "https://cloud.google.com/"},
	{"Docker", "DevOps", "Build, ship and run applications in containers.", "https://www.docker.com/"},
	{"Kubernetes", "DevOps", "Automated deployment, scaling and management of containers.", "https://kubernetes.io/"},
	{"Nginx", "DevOps", "Web server, reverse proxy and load balancer.", "https://nginx.org/"},
	{"Postgres", "Databases", "A reliable open-source object-relational database.", "https://www.postgresql.org/"},
	{"MongoDB", "Databases", "A document database with optional schemas.", "https://www.mongodb.com/"},
	{"Pandas", "Data Science", "Data structures and analysis tools for Python.", "https://pandas.pydata.org/"},
	{"Git", "Tools", "Distributed version control.", "https://git-scm.com/"},
	{"UI/UX Design", "Design", "Designing interfaces that are usable and accessible.", "https://en.wikipedia.org/wiki/User_experience_design"},
}

// Skills returns the skills sorted by category, then in listing order.
func Skills() []Skill {
	out := append([]Skill(nil), skills...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// SkillLines renders the skills panel with the skill at selected
// highlighted and described. A selected index out of range shows a hint.
func SkillLines(width, selected int) []string {
	list := Skills()
	var (
		sections []Section
		current  *Section
	)
	for i, s := range list {
		if current == nil || current.Heading != s.Category {
			sections = append(sections, Section{Heading: s.Category})
			current = &sections[len(sections)-1]
		}
		marker := "  "
		if i == selected {
			marker = "> "
		}
		current.Paragraphs = append(current.Paragraphs, marker+s.Name)
	}

	detail := Section{Heading: "Details", Paragraphs: []string{"Select a skill with j/k to see details."}}
	if selected >= 0 && selected < len(list) {
		s := list[selected]
		detail.Paragraphs = []string{s.Name + " (" + strings.ToLower(s.Category) + ")", s.Description, s.URL}
	}
	return renderSections(append([]Section{detail}, sections...), width)
}

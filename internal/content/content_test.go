package content

import (
	"strings"
	"testing"
)

func TestCatalogOrderAndIDs(t *testing.T) {
	panels := Catalog(DefaultProfile())
	want := []string{AboutID, ProjectsID, SkillsID, EducationID, CertificationsID, BlogID, ContactID}
	if len(panels) != len(want) {
		t.Fatalf("Catalog() has %d panels, want %d", len(panels), len(want))
	}
	for i, id := range want {
		p := panels[i]
		if p.ID != id {
			t.Errorf("panel %d = %q, want %q", i, p.ID, id)
		}
		if p.Title == "" || p.Glyph == "" || p.Size.Empty() {
			t.Errorf("panel %q is incomplete: %+v", id, p)
		}
	}
	if _, ok := Find(panels, "nope"); ok {
		t.Error("Find(nope) should fail")
	}
}

func TestLinesWrap(t *testing.T) {
	about, _ := Find(Catalog(DefaultProfile()), AboutID)
	lines := about.Lines(30)
	if len(lines) < 5 {
		t.Fatalf("expected several lines, got %d", len(lines))
	}
	for _, l := range lines {
		if len([]rune(l)) > 30 {
			t.Errorf("line wider than 30: %q", l)
		}
	}
	if !strings.Contains(strings.Join(lines, " "), "Guest Developer") {
		t.Error("profile name missing from About")
	}
}

func TestContactUsesProfile(t *testing.T) {
	p := DefaultProfile()
	p.Email = "someone@example.org"
	contact, _ := Find(Catalog(p), ContactID)
	if !strings.Contains(strings.Join(contact.Lines(60), "\n"), "someone@example.org") {
		t.Error("contact panel does not show the configured email")
	}
}

func TestSkillLines(t *testing.T) {
	list := Skills()
	for i := 1; i < len(list); i++ {
		if list[i-1].Category > list[i].Category {
			t.Fatalf("skills not grouped by category at %d", i)
		}
	}

	hint := strings.Join(SkillLines(60, -1), "\n")
	if !strings.Contains(hint, "Select a skill") {
		t.Error("hint missing without a selection")
	}

	got := strings.Join(SkillLines(80, 0), "\n")
	if !strings.Contains(got, "> "+list[0].Name) {
		t.Errorf("selected skill not marked:\n%s", got)
	}
	if !strings.Contains(got, list[0].URL) {
		t.Error("selected skill details missing")
	}
}

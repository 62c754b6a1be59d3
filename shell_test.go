package main

import (
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"deskfolio/internal/content"
	"deskfolio/internal/geom"
	"deskfolio/internal/wallpaper"
)

var fixedNow = time.Date(2025, 3, 4, 15, 4, 0, 0, time.UTC)

func testConfig() *Config {
	cfg := defaultConfig()
	cfg.Wallpaper.Enabled = false
	cfg.Desktop.SkipBoot = true
	cfg.Timing.Boot = 80 * time.Millisecond
	cfg.Timing.Restart = 80 * time.Millisecond
	cfg.Timing.Shutdown = 100 * time.Millisecond
	cfg.Timing.Login = 100 * time.Millisecond
	return cfg
}

func newTestModel(t *testing.T, cfg *Config, d deps) *model {
	t.Helper()
	if d.now == nil {
		d.now = func() time.Time { return fixedNow }
	}
	if d.copyText == nil {
		d.copyText = func(string) error { return nil }
	}
	m := newModel(cfg, d)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "shift+right":
		return tea.KeyMsg{Type: tea.KeyShiftRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *model, x, y int) tea.Cmd {
	_, cmd := m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return cmd
}

func motion(m *model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
}

func release(m *model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
}

func click(m *model, x, y int) tea.Cmd {
	cmd := press(m, x, y)
	release(m, x, y)
	return cmd
}

// runTicks feeds ticks of the current generation until mode leaves from.
func runTicks(t *testing.T, m *model, from Mode) tea.Cmd {
	t.Helper()
	var last tea.Cmd
	for i := 0; i < 1000; i++ {
		if m.mode != from || m.runner == nil {
			return last
		}
		_, last = m.Update(tickMsg{gen: m.gen})
	}
	t.Fatalf("still in %s after 1000 ticks", from)
	return nil
}

func TestBootLoginDesktop(t *testing.T) {
	cfg := testConfig()
	cfg.Desktop.SkipBoot = false
	m := newTestModel(t, cfg, deps{})

	if m.mode != ModeBooting {
		t.Fatalf("mode = %s, want booting", m.mode)
	}
	runTicks(t, m, ModeBooting)
	if m.mode != ModeLogin {
		t.Fatalf("mode = %s, want login", m.mode)
	}
	if m.authenticated {
		t.Fatal("authenticated before login")
	}

	m.Update(key("enter"))
	if !m.loggingIn {
		t.Fatal("enter did not start login")
	}
	runTicks(t, m, ModeLogin)
	if m.mode != ModeDesktop || !m.authenticated {
		t.Fatalf("mode = %s authenticated = %v", m.mode, m.authenticated)
	}
}

func TestLoginButtonClick(t *testing.T) {
	cfg := testConfig()
	cfg.Desktop.SkipBoot = false
	m := newTestModel(t, cfg, deps{})
	runTicks(t, m, ModeBooting)

	btn := m.loginButtonRect()
	press(m, btn.X+1, btn.Y)
	if !m.loggingIn {
		t.Fatal("clicking the login button did not start login")
	}
	// A second press while logging in does not restart the delay.
	gen := m.gen
	press(m, btn.X+1, btn.Y)
	if m.gen != gen {
		t.Error("login restarted")
	}
}

func TestStaleTicksDropped(t *testing.T) {
	cfg := testConfig()
	cfg.Desktop.SkipBoot = false
	m := newTestModel(t, cfg, deps{})
	runTicks(t, m, ModeBooting)

	old := m.gen
	m.Update(key("enter"))
	m.Update(tickMsg{gen: old})
	if got := m.runner.Elapsed(); got != 0 {
		t.Fatalf("stale tick advanced the login runner to %v", got)
	}
	m.Update(tickMsg{gen: m.gen})
	if got := m.runner.Elapsed(); got != cfg.Desktop.Tick {
		t.Fatalf("elapsed = %v, want %v", got, cfg.Desktop.Tick)
	}
}

func TestIconClickOpensWindow(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	p, ok := m.icons.Position(content.AboutID)
	if !ok {
		t.Fatal("about icon missing")
	}
	click(m, p.X+1, p.Y+1)

	w, _ := m.wm.State().Window(content.AboutID)
	if !w.Open || m.wm.State().Active() != content.AboutID {
		t.Fatalf("about not opened and focused: %+v active=%q", w, m.wm.State().Active())
	}
}

func TestIconDragDoesNotOpen(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	p, _ := m.icons.Position(content.ContactID)

	press(m, p.X+1, p.Y+1)
	motion(m, p.X+11, p.Y+6)
	release(m, p.X+11, p.Y+6)

	got, _ := m.icons.Position(content.ContactID)
	if want := p.Add(geom.Point{X: 10, Y: 5}); got != want {
		t.Errorf("icon at %+v, want %+v", got, want)
	}
	if w, _ := m.wm.State().Window(content.ContactID); w.Open {
		t.Error("drag opened the window")
	}
}

func TestWindowDrag(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	m.Update(key("1"))
	w, _ := m.wm.State().Window(content.AboutID)
	start := w.Position

	press(m, start.X+5, start.Y)
	motion(m, start.X+15, start.Y+5)
	if pos, _ := m.windowPosition(content.AboutID); pos != start.Add(geom.Point{X: 10, Y: 5}) {
		t.Errorf("window drawn at %+v during drag", pos)
	}
	if w, _ := m.wm.State().Window(content.AboutID); w.Position != start {
		t.Error("state moved before release")
	}
	release(m, start.X+15, start.Y+5)

	w, _ = m.wm.State().Window(content.AboutID)
	if want := start.Add(geom.Point{X: 10, Y: 5}); w.Position != want {
		t.Errorf("position = %+v, want %+v", w.Position, want)
	}
}

func TestWindowDragClamped(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	m.Update(key("1"))
	w, _ := m.wm.State().Window(content.AboutID)

	press(m, w.Position.X+1, w.Position.Y)
	motion(m, 500, 500)
	release(m, 500, 500)

	w, _ = m.wm.State().Window(content.AboutID)
	want := geom.Point{X: 120 - w.Size.Width, Y: 40 - 1 - w.Size.Height}
	if w.Position != want {
		t.Errorf("position = %+v, want %+v", w.Position, want)
	}
}

func TestBlurCancelsDrag(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	m.Update(key("1"))
	w, _ := m.wm.State().Window(content.AboutID)

	press(m, w.Position.X+1, w.Position.Y)
	m.Update(tea.BlurMsg{})
	motion(m, w.Position.X+20, w.Position.Y+4)
	release(m, w.Position.X+20, w.Position.Y+4)

	got, _ := m.wm.State().Window(content.AboutID)
	if got.Position != w.Position {
		t.Errorf("cancelled drag moved window to %+v", got.Position)
	}
}

func TestTitleButtons(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	m.Update(key("1"))

	buttonAt := func(label string) geom.Point {
		w, _ := m.wm.State().Window(content.AboutID)
		for _, b := range m.titleButtons(m.windowRect(w)) {
			if b.label == label {
				return b.rect.Point
			}
		}
		t.Fatalf("no %s button", label)
		return geom.Point{}
	}

	p := buttonAt("[□]")
	click(m, p.X+1, p.Y)
	if w, _ := m.wm.State().Window(content.AboutID); !w.Maximized {
		t.Fatal("maximize button did not maximize")
	}
	p = buttonAt("[□]")
	click(m, p.X+1, p.Y)
	if w, _ := m.wm.State().Window(content.AboutID); w.Maximized {
		t.Fatal("second click did not restore")
	}

	p = buttonAt("[_]")
	click(m, p.X+1, p.Y)
	if w, _ := m.wm.State().Window(content.AboutID); !w.Minimized {
		t.Fatal("minimize button did not minimize")
	}
	if m.wm.State().Active() != "" {
		t.Errorf("active = %q after minimize", m.wm.State().Active())
	}

	m.Update(key("1"))
	p = buttonAt("[x]")
	click(m, p.X+1, p.Y)
	if w, _ := m.wm.State().Window(content.AboutID); w.Open {
		t.Fatal("close button did not close")
	}
}

func TestClickFocusesTopWindow(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	m.Update(key("1"))
	m.Update(key("2"))

	// The windows overlap; a point inside both hits the front one.
	about, _ := m.wm.State().Window(content.AboutID)
	projects, _ := m.wm.State().Window(content.ProjectsID)
	x, y := projects.Position.X+3, projects.Position.Y+3
	if !m.windowRect(about).Contains(geom.Point{X: x, Y: y}) {
		t.Fatal("test windows do not overlap")
	}
	click(m, x, y)
	if got := m.wm.State().Active(); got != content.ProjectsID {
		t.Fatalf("active = %q, want projects", got)
	}

	// A point only inside about brings it to the front.
	click(m, about.Position.X+1, about.Position.Y+1)
	if got := m.wm.State().Active(); got != content.AboutID {
		t.Fatalf("active = %q, want about", got)
	}
}

func taskbarItemFor(t *testing.T, m *model, action taskbarAction, id string) taskbarItem {
	t.Helper()
	for _, it := range m.taskbarItems() {
		if it.action == action && it.id == id {
			return it
		}
	}
	t.Fatalf("no taskbar item %d %q", action, id)
	return taskbarItem{}
}

func TestTaskbarWindowButton(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	m.Update(key("1"))
	row := m.taskbarRow()

	it := taskbarItemFor(t, m, actWindow, content.AboutID)
	if !it.active {
		t.Error("active window button not marked active")
	}
	press(m, it.x, row)
	if w, _ := m.wm.State().Window(content.AboutID); !w.Minimized {
		t.Fatal("clicking the active window's button did not minimize it")
	}

	it = taskbarItemFor(t, m, actWindow, content.AboutID)
	if !it.faint {
		t.Error("minimized window button not dimmed")
	}
	press(m, it.x, row)
	if w, _ := m.wm.State().Window(content.AboutID); w.Minimized || m.wm.State().Active() != content.AboutID {
		t.Fatal("clicking a minimized window's button did not restore it")
	}
}

func TestHomeTogglesAll(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	m.Update(key("1"))
	m.Update(key("2"))
	home := taskbarItemFor(t, m, actHome, "")

	press(m, home.x, m.taskbarRow())
	state := m.wm.State()
	if len(state.Visible()) != 0 || state.Active() != "" {
		t.Fatalf("home did not minimize everything: visible=%d active=%q", len(state.Visible()), state.Active())
	}

	m.Update(key("h"))
	state = m.wm.State()
	if len(state.Visible()) != 2 || state.Active() != content.ProjectsID {
		t.Fatalf("restore: visible=%d active=%q", len(state.Visible()), state.Active())
	}
}

func TestTaskbarThemeAndFullscreen(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	row := m.taskbarRow()

	theme := taskbarItemFor(t, m, actTheme, "")
	press(m, theme.x, row)
	if m.pal.Name != "light" {
		t.Errorf("theme = %s, want light", m.pal.Name)
	}

	full := taskbarItemFor(t, m, actFullscreen, "")
	if cmd := press(m, full.x, row); cmd == nil {
		t.Error("fullscreen toggle returned no command")
	}
	if m.fullscreen {
		t.Error("fullscreen still on")
	}
}

func TestNarrowViewport(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	m.Update(key("1"))
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})

	if !m.icons.Narrow() {
		t.Fatal("icons not relaid out for a narrow viewport")
	}
	w, _ := m.wm.State().Window(content.AboutID)
	if got, want := m.windowRect(w), m.viewport().Desktop(); got != want {
		t.Errorf("window rect = %+v, want %+v", got, want)
	}
	if b := m.titleButtons(m.windowRect(w)); len(b) != 1 || b[0].label != "[x]" {
		t.Errorf("narrow title buttons = %+v", b)
	}
	for _, it := range m.taskbarItems() {
		if it.action == actWindow {
			t.Error("window buttons shown on a narrow taskbar")
		}
	}

	// Title bar presses do not start a drag.
	press(m, 5, 0)
	if _, ok := m.drag.Active(); ok {
		t.Error("drag started on narrow viewport")
	}
}

func TestRestartResetsDesktop(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	m.Update(key("1"))
	m.Update(key("3"))
	m.Update(key("j"))

	m.Update(key("r"))
	if m.mode != ModeRestarting {
		t.Fatalf("mode = %s", m.mode)
	}
	runTicks(t, m, ModeRestarting)
	if m.mode != ModeBooting {
		t.Fatalf("mode = %s, want booting", m.mode)
	}
	if m.authenticated {
		t.Error("still authenticated after restart")
	}
	state := m.wm.State()
	if state.OpenCount() != 0 || state.Active() != "" {
		t.Errorf("state not reset: open=%d active=%q", state.OpenCount(), state.Active())
	}
	if m.skill != -1 {
		t.Errorf("skill = %d after restart", m.skill)
	}
}

func TestRestartAppliesPendingConfig(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	next := testConfig()
	next.Windows = []WindowOverride{{ID: content.AboutID, Title: "Who"}}

	m.Update(configChangedMsg{cfg: next})
	if m.pending != next || m.status == "" {
		t.Fatal("config change not staged")
	}
	if w, _ := m.wm.State().Window(content.AboutID); w.Title == "Who" {
		t.Fatal("config applied before restart")
	}

	m.Update(key("r"))
	runTicks(t, m, ModeRestarting)
	if w, _ := m.wm.State().Window(content.AboutID); w.Title != "Who" {
		t.Errorf("title = %q after restart", w.Title)
	}
	if m.pending != nil {
		t.Error("pending config kept")
	}
}

func TestConfigReloadError(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	m.Update(configChangedMsg{err: ErrInvalidTheme})
	if m.pending != nil {
		t.Error("broken config staged")
	}
	if m.status != "config reload failed" {
		t.Errorf("status = %q", m.status)
	}
}

func TestShutdownQuits(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	m.Update(key("q"))
	if m.mode != ModeShuttingDown {
		t.Fatalf("mode = %s", m.mode)
	}
	var cmd tea.Cmd
	for i := 0; i < 1000 && m.runner != nil; i++ {
		_, cmd = m.Update(tickMsg{gen: m.gen})
	}
	if cmd == nil {
		t.Fatal("no command after shutdown finished")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("shutdown did not quit")
	}
}

func TestKeyboardWindowCommands(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	m.Update(key("1"))
	m.Update(key("2"))

	m.Update(key("tab"))
	if got := m.wm.State().Active(); got != content.AboutID {
		t.Fatalf("tab: active = %q", got)
	}
	m.Update(key("z"))
	if w, _ := m.wm.State().Window(content.AboutID); !w.Maximized {
		t.Fatal("z did not maximize")
	}
	m.Update(key("m"))
	if w, _ := m.wm.State().Window(content.AboutID); !w.Minimized || w.Maximized {
		t.Fatalf("m: %+v", w)
	}
	m.Update(key("2"))
	m.Update(key("x"))
	if w, _ := m.wm.State().Window(content.ProjectsID); w.Open {
		t.Fatal("x did not close")
	}
	if err := m.wm.State().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestKeyboardNudge(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	m.Update(key("1"))
	w, _ := m.wm.State().Window(content.AboutID)

	m.Update(key("L"))
	m.Update(key("shift+right"))
	got, _ := m.wm.State().Window(content.AboutID)
	if want := w.Position.Add(geom.Point{X: 3}); got.Position != want {
		t.Errorf("position = %+v, want %+v", got.Position, want)
	}
}

func TestSkillSelection(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	m.Update(key("3"))
	m.Update(key("j"))
	m.Update(key("j"))
	m.Update(key("k"))
	if m.skill != 0 {
		t.Fatalf("skill = %d, want 0", m.skill)
	}
	for i := 0; i < 100; i++ {
		m.Update(key("j"))
	}
	if want := len(content.Skills()) - 1; m.skill != want {
		t.Errorf("skill = %d, want %d", m.skill, want)
	}
}

func TestScrollClamped(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	m.Update(key("1"))
	for i := 0; i < 500; i++ {
		m.Update(key("down"))
	}
	w, _ := m.wm.State().Window(content.AboutID)
	if got, want := m.scroll[content.AboutID], m.maxScroll(w); got != want {
		t.Errorf("scroll = %d, want %d", got, want)
	}
	m.Update(key("up"))
	if m.scroll[content.AboutID] < 0 {
		t.Error("negative scroll")
	}
}

func TestCopyEmail(t *testing.T) {
	var copied string
	m := newTestModel(t, testConfig(), deps{copyText: func(s string) error {
		copied = s
		return nil
	}})
	m.Update(key("y"))
	if copied != m.cfg.Profile.Email {
		t.Errorf("copied %q", copied)
	}

	m = newTestModel(t, testConfig(), deps{copyText: func(string) error { return errors.New("no clipboard") }})
	m.Update(key("y"))
	if m.status != "clipboard failed" {
		t.Errorf("status = %q", m.status)
	}
}

func TestStatusClears(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	m.setStatus("one")
	first := m.statusGen
	m.setStatus("two")

	m.Update(statusClearMsg{gen: first})
	if m.status != "two" {
		t.Fatal("stale clear removed a newer status")
	}
	m.Update(statusClearMsg{gen: m.statusGen})
	if m.status != "" {
		t.Fatal("status not cleared")
	}
}

func TestSnapshotKey(t *testing.T) {
	cfg := testConfig()
	cfg.Desktop.SnapshotDir = t.TempDir()
	m := newTestModel(t, cfg, deps{})
	m.Update(key("1"))
	m.Update(key("ctrl+s"))

	path := filepath.Join(cfg.Desktop.SnapshotDir, snapshotName(fixedNow))
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
}

type solidProvider struct {
	err   error
	calls int
}

func (p *solidProvider) Fetch(ctx context.Context, width, height int) (image.Image, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF})
		}
	}
	return img, nil
}

func TestWallpaperLoad(t *testing.T) {
	cfg := testConfig()
	cfg.Wallpaper.Enabled = true
	provider := &solidProvider{}
	m := newModel(cfg, deps{provider: provider, now: func() time.Time { return fixedNow }})

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if cmd == nil {
		t.Fatal("resize did not request a wallpaper")
	}
	m.Update(cmd())
	cols, rows := m.art.Size()
	if cols != 120 || rows != 39 {
		t.Fatalf("art is %dx%d", cols, rows)
	}
	if c, _ := m.art.At(0, 0); c.Top != "#102030" {
		t.Errorf("cell = %+v", c)
	}
	if !strings.Contains(m.compose().PlainLines()[20], "▀") {
		t.Error("wallpaper not drawn")
	}
}

func TestWallpaperStaleResultDropped(t *testing.T) {
	cfg := testConfig()
	cfg.Wallpaper.Enabled = true
	m := newModel(cfg, deps{provider: &solidProvider{}})

	_, first := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	_, second := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	m.Update(first())
	if m.art != nil {
		t.Fatal("superseded wallpaper accepted")
	}
	m.Update(second())
	if cols, _ := m.art.Size(); cols != 100 {
		t.Fatalf("art cols = %d", cols)
	}
}

func TestWallpaperFailureKeepsSolidBackground(t *testing.T) {
	cfg := testConfig()
	cfg.Wallpaper.Enabled = true
	m := newModel(cfg, deps{provider: &solidProvider{err: wallpaper.ErrBadStatus}})
	_, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(cmd())
	if m.art != nil {
		t.Fatal("art set after failure")
	}
	if m.status != "wallpaper failed" {
		t.Errorf("status = %q", m.status)
	}
}

func TestViewSize(t *testing.T) {
	m := newTestModel(t, testConfig(), deps{})
	m.Update(key("1"))
	view := m.View()
	if got := strings.Count(view, "\n") + 1; got != 40 {
		t.Fatalf("view has %d lines", got)
	}
	plain := strings.Join(m.compose().PlainLines(), "\n")
	for _, want := range []string{"About", "Home", "3:04 PM 3/4/2025", "[x]"} {
		if !strings.Contains(plain, want) {
			t.Errorf("desktop missing %q", want)
		}
	}
}

func TestBootView(t *testing.T) {
	cfg := testConfig()
	cfg.Desktop.SkipBoot = false
	m := newTestModel(t, cfg, deps{})
	plain := strings.Join(m.compose().PlainLines(), "\n")
	if !strings.Contains(plain, "Deskfolio BIOS") || !strings.Contains(plain, "Initializing") {
		t.Errorf("boot screen:\n%s", plain)
	}
}

func TestCtrlCDuringBootQuits(t *testing.T) {
	cfg := testConfig()
	cfg.Desktop.SkipBoot = false
	m := newTestModel(t, cfg, deps{})
	_, cmd := m.Update(key("ctrl+c"))
	if cmd == nil {
		t.Fatal("no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c during boot did not quit")
	}
}

package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"deskfolio/internal/content"
	"deskfolio/internal/drag"
	"deskfolio/internal/layout"
	"deskfolio/internal/logging"
	"deskfolio/internal/sequencer"
	"deskfolio/internal/tracing"
	"deskfolio/internal/wallpaper"
	"deskfolio/internal/wm"
)

type (
	tickMsg        struct{ gen int }
	clockMsg       time.Time
	wallpaperMsg   wallpaper.Result
	statusClearMsg struct{ gen int }
)

// configChangedMsg carries a config re-read from disk, or the error that
// stopped it from loading.
type configChangedMsg struct {
	cfg *Config
	err error
}

// deps are the platform services the shell talks to. Zero fields get
// harmless defaults so tests can build a model with only what they need.
type deps struct {
	ctx      context.Context
	log      *logging.Logger
	tracer   *tracing.Tracer
	provider wallpaper.Provider
	now      func() time.Time
	copyText func(string) error
}

type model struct {
	cfg      *Config
	ctx      context.Context
	log      *logging.Logger
	tracer   *tracing.Tracer
	now      func() time.Time
	copyText func(string) error

	width  int
	height int

	mode          Mode
	gen           int
	runner        *sequencer.Runner
	loggingIn     bool
	authenticated bool

	wm     *wm.Manager
	panels []content.Panel
	icons  *layout.Icons

	drag     drag.Tracker
	dragKind dragKind

	pal        palette
	fullscreen bool

	provider wallpaper.Provider
	walls    wallpaper.Tracker
	art      wallpaper.Art

	scroll map[string]int
	skill  int

	status    string
	statusGen int
	pending   *Config
	clock     time.Time
}

func newModel(cfg *Config, d deps) *model {
	if d.ctx == nil {
		d.ctx = context.Background()
	}
	if d.log == nil {
		d.log = logging.Nop()
	}
	if d.tracer == nil {
		d.tracer = tracing.Nop()
	}
	if d.now == nil {
		d.now = time.Now
	}
	if d.copyText == nil {
		d.copyText = writeClipboardText
	}

	m := &model{
		cfg:        cfg,
		ctx:        d.ctx,
		log:        d.log,
		tracer:     d.tracer,
		now:        d.now,
		copyText:   d.copyText,
		provider:   d.provider,
		pal:        paletteFor(cfg.Desktop.Theme),
		fullscreen: cfg.Desktop.AltScreen,
		skill:      -1,
	}
	if !cfg.Wallpaper.Enabled {
		m.provider = nil
	}
	m.loadPanels(cfg)
	m.clock = m.now()

	if cfg.Desktop.SkipBoot {
		m.mode = ModeDesktop
		m.authenticated = true
	} else {
		m.mode = ModeBooting
		m.runner = sequencer.NewRunner(sequencer.Boot(cfg.Timing.Boot))
	}
	return m
}

// loadPanels rebuilds the catalog, the window manager and the icons from cfg.
func (m *model) loadPanels(cfg *Config) {
	m.panels = cfg.panels()
	reg := registryFor(m.panels)
	if m.wm == nil {
		m.wm = wm.NewManager(reg, wm.WithLogger(m.log))
	} else {
		m.wm.Rebase(reg)
	}
	m.icons = layout.NewIcons(reg.IDs())
	if m.width > 0 {
		m.icons.Sync(m.viewport())
	}
	m.scroll = make(map[string]int)
	m.skill = -1
}

func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.clockTick()}
	if m.runner != nil {
		cmds = append(cmds, m.tick())
	}
	return tea.Batch(cmds...)
}

func (m *model) viewport() layout.Viewport {
	return layout.Viewport{Width: m.width, Height: m.height, Threshold: m.cfg.Desktop.NarrowThreshold}
}

func (m *model) narrow() bool {
	return m.viewport().Narrow()
}

func (m *model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.cfg.Desktop.Tick, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m *model) clockTick() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg { return clockMsg(t) })
}

// enterMode tears down the current screen and starts the next one. Ticks
// from the old screen carry a stale generation and are dropped.
func (m *model) enterMode(to Mode) tea.Cmd {
	from := m.mode
	ctx, span := m.tracer.StartModeSpan(m.ctx, from.String(), to.String())
	defer span.End()
	logging.LogModeChange(logging.WithMode(ctx, to.String()), m.log, from.String(), to.String())

	m.gen++
	m.mode = to
	m.loggingIn = false
	m.drag.Cancel()
	m.dragKind = dragNone

	switch to {
	case ModeBooting:
		m.runner = sequencer.NewRunner(sequencer.Boot(m.cfg.Timing.Boot))
	case ModeShuttingDown:
		m.runner = sequencer.NewRunner(sequencer.Shutdown(m.cfg.Timing.Shutdown))
	case ModeRestarting:
		m.runner = sequencer.NewRunner(sequencer.Restart(m.cfg.Timing.Restart))
	default:
		m.runner = nil
		return nil
	}
	return m.tick()
}

// startLogin runs the login delay. It is a no-op once a login is running.
func (m *model) startLogin() tea.Cmd {
	if m.mode != ModeLogin || m.loggingIn {
		return nil
	}
	m.gen++
	m.loggingIn = true
	m.runner = sequencer.NewRunner(sequencer.Login(m.cfg.Timing.Login))
	return m.tick()
}

// finishSequence moves on once the current timed screen is done.
func (m *model) finishSequence() tea.Cmd {
	switch m.mode {
	case ModeBooting:
		return m.enterMode(ModeLogin)
	case ModeLogin:
		m.authenticated = true
		return m.enterMode(ModeDesktop)
	case ModeShuttingDown:
		m.runner = nil
		return tea.Quit
	case ModeRestarting:
		m.authenticated = false
		if m.pending != nil {
			m.cfg, m.pending = m.pending, nil
			m.pal = paletteFor(m.cfg.Desktop.Theme)
			m.loadPanels(m.cfg)
			m.log.Info("applied reloaded config", "path", m.cfg.Path())
		} else {
			m.dispatch(wm.Command{Kind: wm.Reset})
			m.scroll = make(map[string]int)
			m.skill = -1
		}
		return m.enterMode(ModeBooting)
	}
	return nil
}

// dispatch sends c to the window manager inside a span.
func (m *model) dispatch(c wm.Command) bool {
	_, span := m.tracer.StartCommandSpan(m.ctx, c.Kind.String(), c.ID)
	defer span.End()
	changed := m.wm.Dispatch(c)
	span.SetChanged(changed)
	span.SetActive(m.wm.State().Active())

	if m.dragKind == dragWindow {
		if id, ok := m.drag.Active(); ok {
			if w, _ := m.wm.State().Window(id); !w.Visible() || w.Maximized {
				m.drag.Cancel()
				m.dragKind = dragNone
			}
		}
	}
	return changed
}

func (m *model) openPanel(id string) bool {
	return m.dispatch(wm.Command{Kind: wm.Open, ID: id})
}

// setStatus shows text on the desktop for a few seconds.
func (m *model) setStatus(text string) tea.Cmd {
	m.statusGen++
	m.status = text
	gen := m.statusGen
	return tea.Tick(statusDuration, func(time.Time) tea.Msg { return statusClearMsg{gen: gen} })
}

// fail logs a platform failure and reports it on the status line.
func (m *model) fail(op string, err error) tea.Cmd {
	logging.LogPlatformFailure(m.ctx, m.log, op, err)
	return m.setStatus(op + " failed")
}

// refreshWallpaper starts loading a wallpaper for the current viewport and
// supersedes any load in flight.
func (m *model) refreshWallpaper() tea.Cmd {
	if m.provider == nil || m.width <= 0 || m.height <= 0 {
		return nil
	}
	desk := m.viewport().Desktop()
	w, h := m.viewport().Pixels()
	req, ctx := m.walls.Start(m.ctx, w, h, desk.Width, desk.Height)
	provider, tracer := m.provider, m.tracer
	return func() tea.Msg {
		ctx, span := tracer.StartWallpaperSpan(ctx, req.ID, req.Width, req.Height)
		res := wallpaper.Load(ctx, provider, req)
		if res.Err != nil {
			span.EndWithError(res.Err)
		} else {
			span.End()
		}
		return wallpaperMsg(res)
	}
}

func (m *model) panel(id string) (content.Panel, bool) {
	return content.Find(m.panels, id)
}

// panelLines returns the text of a window body of the given width.
func (m *model) panelLines(id string, width int) []string {
	if id == content.SkillsID {
		return content.SkillLines(width, m.skill)
	}
	p, ok := m.panel(id)
	if !ok {
		return nil
	}
	return p.Lines(width)
}

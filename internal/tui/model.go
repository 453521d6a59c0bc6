package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/san-kum/portfolio/internal/contact"
	"github.com/san-kum/portfolio/internal/content"
	"github.com/san-kum/portfolio/internal/engine"
	"github.com/san-kum/portfolio/internal/export"
	"github.com/san-kum/portfolio/internal/metrics"
	"github.com/san-kum/portfolio/internal/nav"
	"github.com/san-kum/portfolio/internal/render"
	"github.com/san-kum/portfolio/internal/viz"
)

const (
	loadDuration = 3 * time.Second
	loadHold     = 500 * time.Millisecond
	loadInterval = 30 * time.Millisecond

	historySize = 60
	maxPageW    = 96
	navHeight   = 2
	statusLines = 1
	svgWidth    = 800
	svgHeight   = 400
)

type phase int

const (
	phaseLoading phase = iota
	phasePage
	phaseForm
)

// Options configures the interactive program.
type Options struct {
	Profile *content.Profile
	Engine  *engine.Engine
	Theme   string

	// VisualizerOnly skips the loading screen and the page and draws the
	// sort animation across the whole terminal.
	VisualizerOnly bool
	// Compact draws the visualizer on a braille canvas.
	Compact bool
	SVGDir  string

	Logger zerolog.Logger
}

type model struct {
	opts    Options
	profile *content.Profile
	theme   viz.Theme
	phase   phase

	width  int
	height int

	viewport viewport.Model
	blocks   []string
	layout   []nav.Extent
	active   string

	loadStart time.Time
	progress  float64
	spin      int

	ctx     context.Context
	handle  *engine.Handle
	frame   engine.Frame
	hasData bool
	history []float64
	paused  bool

	order     *metrics.Order
	remaining *metrics.Remaining
	perCycle  *metrics.SwapsPerCycle
	stats     metrics.Set

	form     contactForm
	status   string
	showHelp bool
	keys     keyMap
	help     help.Model
}

type loadTickMsg time.Time

// frameMsg and feedClosedMsg carry the handle they were read from so
// deliveries from a stopped driver can be told apart from the live one.
type frameMsg struct {
	handle *engine.Handle
	frame  engine.Frame
}

type feedClosedMsg struct {
	handle *engine.Handle
}

func loadTick() tea.Cmd {
	return tea.Tick(loadInterval, func(t time.Time) tea.Msg { return loadTickMsg(t) })
}

// waitForFrame blocks on the next frame of h. The engine's channel is
// unbuffered, so the driver paces itself on this read.
func waitForFrame(h *engine.Handle) tea.Cmd {
	if h == nil {
		return nil
	}
	return func() tea.Msg {
		f, ok := <-h.Frames()
		if !ok {
			return feedClosedMsg{handle: h}
		}
		return frameMsg{handle: h, frame: f}
	}
}

func newModel(opts Options) model {
	if opts.Profile == nil {
		opts.Profile = content.Default()
	}
	if opts.SVGDir == "" {
		opts.SVGDir = "."
	}
	m := model{
		opts:      opts,
		profile:   opts.Profile,
		theme:     viz.GetTheme(opts.Theme),
		phase:     phaseLoading,
		width:     80,
		height:    24,
		viewport:  viewport.New(80, 24),
		loadStart: time.Now(),
		ctx:       context.Background(),
		history:   make([]float64, 0, historySize),
		form:      newContactForm(),
		keys:      defaultKeys(),
		help:      help.New(),
		active:    nav.Sections[0].ID,
	}
	m.order, m.remaining, m.perCycle = metrics.NewOrder(), metrics.NewRemaining(), metrics.NewSwapsPerCycle()
	m.stats = metrics.Set{m.order, m.remaining, m.perCycle}
	if opts.VisualizerOnly {
		m.phase = phasePage
	}
	m.resize(m.width, m.height)
	return m
}

// Run starts the engine and blocks until the user quits. The engine is
// stopped before Run returns.
func Run(ctx context.Context, opts Options) error {
	m := newModel(opts)
	m.ctx = ctx
	if opts.Engine != nil {
		m.handle = opts.Engine.Start(ctx)
		defer opts.Engine.Stop()
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m model) Init() tea.Cmd {
	if m.phase == phaseLoading {
		return tea.Batch(loadTick(), waitForFrame(m.handle))
	}
	return waitForFrame(m.handle)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case loadTickMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		elapsed := time.Time(msg).Sub(m.loadStart)
		m.progress = min(float64(elapsed)/float64(loadDuration), 1)
		m.spin++
		if elapsed >= loadDuration+loadHold {
			m.enterPage()
			return m, nil
		}
		return m, loadTick()

	case frameMsg:
		if msg.handle != m.handle {
			return m, nil
		}
		m.frame = msg.frame
		m.hasData = true
		m.stats.Observe(msg.frame)
		if msg.frame.State == engine.Paused {
			m.history = append(m.history, float64(msg.frame.Swaps))
			if len(m.history) > historySize {
				m.history = m.history[len(m.history)-historySize:]
			}
		}
		return m, waitForFrame(m.handle)

	case feedClosedMsg:
		if msg.handle == m.handle {
			m.handle = nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.phase != phasePage || m.opts.VisualizerOnly {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.refresh()
		return m, cmd
	}

	if m.phase == phaseForm {
		return m, m.form.updateInput(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseLoading:
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		m.enterPage()
		return m, nil

	case phaseForm:
		res, cmd := m.form.update(msg)
		switch res {
		case formCancelled:
			m.phase = phasePage
			m.status = ""
		case formSubmitted:
			m.phase = phasePage
			m.status = contact.MailtoURL(m.profile.Contact.Email, m.form.form())
			m.opts.Logger.Info().Str("to", m.profile.Contact.Email).Msg("contact message composed")
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.resize(m.width, m.height)

	case key.Matches(msg, m.keys.Theme):
		m.theme = viz.NextTheme(m.theme.Name)
		m.status = "theme: " + m.theme.Name
		m.opts.Logger.Debug().Str("theme", m.theme.Name).Msg("theme changed")
		m.refresh()

	case key.Matches(msg, m.keys.Visualizer):
		return m, m.toggleEngine()

	case key.Matches(msg, m.keys.SaveSVG):
		m.saveSVG()

	case m.opts.VisualizerOnly:
		// the page keys below have nothing to act on

	case key.Matches(msg, m.keys.Contact):
		m.phase = phaseForm
		m.form.reset()
		m.status = ""
		return m, m.form.focusField(0)

	case key.Matches(msg, m.keys.Jump):
		m.jump(int(msg.Runes[0] - '1'))

	case key.Matches(msg, m.keys.NextSect):
		m.jump(nav.IndexOf(m.active) + 1)

	case key.Matches(msg, m.keys.PrevSect):
		m.jump(nav.IndexOf(m.active) - 1)

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.refresh()
		return m, cmd
	}
	return m, nil
}

func (m model) quit() (tea.Model, tea.Cmd) {
	m.handle.Stop()
	m.handle = nil
	return m, tea.Quit
}

// toggleEngine stops the running driver or starts a fresh one.
func (m *model) toggleEngine() tea.Cmd {
	if m.opts.Engine == nil {
		return nil
	}
	if !m.paused {
		m.handle.Stop()
		m.handle = nil
		m.paused = true
		m.status = "visualizer paused"
		return nil
	}
	m.paused = false
	m.status = ""
	m.handle = m.opts.Engine.Start(m.ctx)
	return waitForFrame(m.handle)
}

func (m *model) saveSVG() {
	if !m.hasData {
		m.status = "nothing to save yet"
		return
	}
	path := filepath.Join(m.opts.SVGDir, fmt.Sprintf("sort-cycle-%03d.svg", m.frame.Cycle))
	svg := export.BarsSVG(render.Bars(m.frame.Sequence), svgWidth, svgHeight, m.theme)
	if err := export.WriteFile(path, svg); err != nil {
		m.status = "save failed: " + err.Error()
		m.opts.Logger.Error().Err(err).Str("path", path).Msg("svg export failed")
		return
	}
	m.status = "saved " + path
	m.opts.Logger.Info().Str("path", path).Msg("svg exported")
}

func (m *model) jump(i int) {
	n := len(nav.Sections)
	i = ((i % n) + n) % n
	if off := nav.Offset(m.layout, nav.Sections[i].ID); off >= 0 {
		m.viewport.SetYOffset(off)
	}
	m.refresh()
}

func (m *model) enterPage() {
	m.phase = phasePage
	m.progress = 1
	m.refresh()
}

func (m model) pageWidth() int {
	return max(min(m.width-4, maxPageW), 20)
}

func (m model) bandHeight() int {
	if m.opts.VisualizerOnly {
		return max(m.height-statusLines-m.helpHeight(), 1)
	}
	return max(m.height/4, 4)
}

func (m model) helpHeight() int {
	if m.showHelp {
		return len(m.keys.FullHelp()[0])
	}
	return 1
}

func (m *model) resize(w, h int) {
	m.width, m.height = w, h
	vh := max(h-navHeight-m.bandHeight()-statusLines-m.helpHeight(), 1)
	m.viewport.Width = w
	m.help.Width = w
	m.viewport.Height = vh
	m.refresh()
}

// refresh re-renders the page for the current scroll position, recomputing
// the layout, the active section and the section header fades.
func (m *model) refresh() {
	if m.opts.VisualizerOnly {
		return
	}
	p := page{profile: m.profile, theme: m.theme, width: m.pageWidth()}
	blocks, heights := p.render(m.fades())
	if m.layout == nil {
		m.layout = nav.Layout(sectionIDs(), heights)
		blocks, heights = p.render(m.fades())
	}
	m.blocks = blocks
	m.layout = nav.Layout(sectionIDs(), heights)
	m.viewport.SetContent(joinBlocks(blocks))
	m.active = nav.ActiveSection(m.layout, m.viewport.YOffset, m.probe())
}

// probe is the viewport row used to decide which section is current.
func (m model) probe() int {
	return m.viewport.Height / 3
}

// fadeStops is the opacity curve of the section headers over their
// progress through the viewport.
var fadeStops = []float64{0, 0.3, 0.7, 1}

func (m model) fades() fades {
	f := make(fades, len(m.layout))
	for _, e := range m.layout {
		sp := nav.SectionProgress(e, m.viewport.YOffset, m.viewport.Height)
		f[e.ID] = nav.Transform(sp, fadeStops, []float64{0, 1, 1, 0})
	}
	return f
}

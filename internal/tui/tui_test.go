package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/san-kum/portfolio/internal/content"
	"github.com/san-kum/portfolio/internal/engine"
	"github.com/san-kum/portfolio/internal/nav"
	"github.com/san-kum/portfolio/internal/sequence"
	"github.com/san-kum/portfolio/internal/viz"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func pageModel(t *testing.T) model {
	t.Helper()
	m := newModel(Options{Logger: zerolog.Nop(), SVGDir: t.TempDir()})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = send(t, m, runes("x"))
	if m.phase != phasePage {
		t.Fatalf("phase = %v, want page", m.phase)
	}
	return m
}

func TestLoadingProgress(t *testing.T) {
	m := newModel(Options{Logger: zerolog.Nop()})
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.loadStart = start

	m, cmd := send(t, m, loadTickMsg(start.Add(1500*time.Millisecond)))
	if m.phase != phaseLoading {
		t.Fatalf("phase = %v, want loading", m.phase)
	}
	if m.progress < 0.49 || m.progress > 0.51 {
		t.Errorf("progress = %v, want 0.5", m.progress)
	}
	if cmd == nil {
		t.Error("expected another tick")
	}

	m, _ = send(t, m, loadTickMsg(start.Add(3200*time.Millisecond)))
	if m.phase != phaseLoading || m.progress != 1 {
		t.Errorf("during hold: phase = %v progress = %v", m.phase, m.progress)
	}

	m, cmd = send(t, m, loadTickMsg(start.Add(3600*time.Millisecond)))
	if m.phase != phasePage {
		t.Errorf("phase = %v after hold, want page", m.phase)
	}
	if cmd != nil {
		t.Error("ticks should stop once the page is shown")
	}
}

func TestAnyKeySkipsLoading(t *testing.T) {
	m := newModel(Options{Logger: zerolog.Nop()})
	m, _ = send(t, m, runes("j"))
	if m.phase != phasePage {
		t.Fatalf("phase = %v, want page", m.phase)
	}
}

func TestVisualizerOnlyStartsOnPage(t *testing.T) {
	m := newModel(Options{VisualizerOnly: true})
	if m.phase != phasePage {
		t.Fatalf("phase = %v, want page", m.phase)
	}
	if v := m.View(); v == "" {
		t.Error("empty view")
	}
}

func TestFramesFromStaleHandleAreIgnored(t *testing.T) {
	m := pageModel(t)
	live, stale := &engine.Handle{}, &engine.Handle{}
	m.handle = live

	f := engine.Frame{Cycle: 1, State: engine.Sorting, Sequence: sequence.Sequence{3, 1, 2}, Swapped: -1}
	m, cmd := send(t, m, frameMsg{handle: stale, frame: f})
	if m.hasData || cmd != nil {
		t.Fatal("stale frame was applied")
	}

	m, cmd = send(t, m, frameMsg{handle: live, frame: f})
	if !m.hasData || !m.frame.Sequence.Equal(f.Sequence) {
		t.Fatal("live frame not applied")
	}
	if cmd == nil {
		t.Error("expected to keep listening")
	}

	m, _ = send(t, m, feedClosedMsg{handle: stale})
	if m.handle != live {
		t.Error("closing a stale feed dropped the live handle")
	}
	m, _ = send(t, m, feedClosedMsg{handle: live})
	if m.handle != nil {
		t.Error("closed feed should clear the handle")
	}
}

func TestPausedFramesFeedHistory(t *testing.T) {
	m := pageModel(t)
	h := &engine.Handle{}
	m.handle = h
	for i, swaps := range []int{4, 9} {
		m, _ = send(t, m, frameMsg{handle: h, frame: engine.Frame{Cycle: i + 1, State: engine.Sorting, Swaps: swaps, Swapped: 0}})
		m, _ = send(t, m, frameMsg{handle: h, frame: engine.Frame{Cycle: i + 1, State: engine.Paused, Swaps: swaps, Swapped: -1}})
	}
	if len(m.history) != 2 || m.history[0] != 4 || m.history[1] != 9 {
		t.Errorf("history = %v, want [4 9]", m.history)
	}
	if m.perCycle.Cycles() != 2 || m.perCycle.Peak() != 9 {
		t.Errorf("cycles = %d peak = %d", m.perCycle.Cycles(), m.perCycle.Peak())
	}
}

func TestJumpSetsActiveSection(t *testing.T) {
	m := pageModel(t)
	m, _ = send(t, m, runes("3"))
	if m.active != "skills" {
		t.Errorf("active = %q, want skills", m.active)
	}
	m, _ = send(t, m, runes("1"))
	if m.active != "home" || m.viewport.YOffset != 0 {
		t.Errorf("active = %q offset = %d, want home at 0", m.active, m.viewport.YOffset)
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.active != "about" {
		t.Errorf("active = %q after tab, want about", m.active)
	}
}

func TestSectionFadeCurve(t *testing.T) {
	m := pageModel(t)
	for _, tc := range []struct {
		progress, want float64
	}{
		{0, 0}, {0.15, 0.5}, {0.3, 1}, {0.5, 1}, {0.7, 1}, {0.85, 0.5}, {1, 0},
	} {
		got := nav.Transform(tc.progress, fadeStops, []float64{0, 1, 1, 0})
		if d := got - tc.want; d > 1e-9 || d < -1e-9 {
			t.Errorf("fade(%v) = %v, want %v", tc.progress, got, tc.want)
		}
	}
	for id, f := range m.fades() {
		if f < 0 || f > 1 {
			t.Errorf("fade for %s = %v out of range", id, f)
		}
	}
}

func TestThemeCycles(t *testing.T) {
	m := pageModel(t)
	want := viz.NextTheme(m.theme.Name).Name
	m, _ = send(t, m, runes("t"))
	if m.theme.Name != want {
		t.Errorf("theme = %q, want %q", m.theme.Name, want)
	}
}

func TestContactFormSubmit(t *testing.T) {
	m := pageModel(t)
	m, _ = send(t, m, runes("c"))
	if m.phase != phaseForm {
		t.Fatalf("phase = %v, want form", m.phase)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.phase != phaseForm {
		t.Fatal("empty form was accepted")
	}
	if len(m.form.errors) != 3 {
		t.Errorf("errors = %v, want three", m.form.errors)
	}
	if m.form.focus != 0 {
		t.Errorf("focus = %d, want first invalid field", m.form.focus)
	}

	m, _ = send(t, m, runes("Ada"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = send(t, m, runes("ada@example.com"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = send(t, m, runes("Let's build an engine"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.phase != phasePage {
		t.Fatalf("phase = %v after submit, want page", m.phase)
	}
	wantPrefix := "mailto:" + content.Default().Contact.Email + "?subject=Portfolio Contact from Ada"
	if !strings.HasPrefix(m.status, wantPrefix) {
		t.Errorf("status = %q, want prefix %q", m.status, wantPrefix)
	}
}

func TestContactFormCancel(t *testing.T) {
	m := pageModel(t)
	m, _ = send(t, m, runes("c"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.phase != phasePage || m.status != "" {
		t.Errorf("phase = %v status = %q", m.phase, m.status)
	}
}

func TestSaveSVG(t *testing.T) {
	m := pageModel(t)
	m, _ = send(t, m, runes("s"))
	if m.status != "nothing to save yet" {
		t.Errorf("status = %q", m.status)
	}

	h := &engine.Handle{}
	m.handle = h
	m, _ = send(t, m, frameMsg{handle: h, frame: engine.Frame{Cycle: 7, State: engine.Paused, Sequence: sequence.Sequence{10, 50, 90}, Swapped: -1}})
	m, _ = send(t, m, runes("s"))
	if !strings.HasSuffix(m.status, "sort-cycle-007.svg") {
		t.Errorf("status = %q", m.status)
	}
}

func TestQuit(t *testing.T) {
	m := pageModel(t)
	_, cmd := send(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestEngineFeedAndToggle(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Count = 5
	cfg.Clock = clock.NewMock()
	cfg.Source = sequence.NewSource(3)
	cfg.Logger = zerolog.Nop()
	eng, err := engine.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer eng.Stop()

	m := newModel(Options{Engine: eng, Logger: zerolog.Nop(), VisualizerOnly: true})
	m.ctx = context.Background()
	m.handle = eng.Start(m.ctx)

	msg := waitForFrame(m.handle)()
	m, _ = send(t, m, msg)
	if !m.hasData || m.frame.Cycle != 1 || m.frame.State != engine.Sorting {
		t.Fatalf("first frame = %+v", m.frame)
	}

	h := m.handle
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if !m.paused || m.handle != nil || cmd != nil {
		t.Fatalf("paused = %v handle = %v", m.paused, m.handle)
	}
	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("driver still running after pause")
	}

	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if m.paused || m.handle == nil || cmd == nil {
		t.Fatal("space should restart the engine")
	}
	if _, ok := cmd().(frameMsg); !ok {
		t.Error("restarted engine should deliver a frame")
	}
}

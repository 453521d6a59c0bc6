package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/portfolio/internal/engine"
	"github.com/san-kum/portfolio/internal/nav"
	"github.com/san-kum/portfolio/internal/render"
	"github.com/san-kum/portfolio/internal/viz"
)

const plotWidth = 34

func (m model) View() string {
	switch {
	case m.phase == phaseLoading:
		return m.loadingView()
	case m.opts.VisualizerOnly:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.bandView(m.width, m.bandHeight()),
			m.statusView(),
			m.helpView(),
		)
	}

	body := m.viewport.View()
	if m.phase == phaseForm {
		form := m.form.view(m.profile.Contact.Email, m.pageWidth(), m.theme)
		body = lipgloss.Place(m.width, m.viewport.Height, lipgloss.Center, lipgloss.Center, form)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.navView(),
		body,
		m.bandView(m.width, m.bandHeight()),
		m.statusView(),
		m.helpView(),
	)
}

func (m model) loadingView() string {
	name := viz.GradientText(strings.ToUpper(m.profile.Name), m.theme.Primary, m.theme.Secondary)
	pct := int(m.progress * 100)
	bar := viz.ProgressBar(m.progress, min(40, max(m.width-10, 10)), m.theme)
	line := lipgloss.NewStyle().Foreground(m.theme.Accent).Render(viz.AnimatedSpinner(m.spin)) + " " + bar +
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(fmt.Sprintf(" %3d%%", pct))
	hint := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("press any key to skip")
	block := lipgloss.JoinVertical(lipgloss.Center, name, "", line, "", hint)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
}

func (m model) navView() string {
	brand := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary).Render(initials(m.profile.Name))
	if nav.Scrolled(m.viewport.YOffset) {
		brand = lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent).Render(initials(m.profile.Name))
	}
	items := []string{brand, "  "}
	for i, s := range nav.Sections {
		style := lipgloss.NewStyle().Foreground(m.theme.Muted).PaddingRight(2)
		if s.ID == m.active {
			style = style.Foreground(m.theme.Primary).Bold(true).Underline(true)
		}
		items = append(items, style.Render(fmt.Sprintf("%d %s", i+1, s.Label)))
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top, items...)
	progress := nav.Progress(m.viewport.YOffset, m.viewport.TotalLineCount(), m.viewport.Height)
	return top + "\n" + viz.ProgressBar(progress, max(m.width, 1), m.theme)
}

// bandView draws the sort animation, with the swap history beside it when
// there is room.
func (m model) bandView(width, height int) string {
	var bars []render.Bar
	highlight := -1
	if m.hasData {
		bars = render.Bars(m.frame.Sequence)
		if m.frame.State == engine.Sorting {
			highlight = m.frame.Swapped
		}
	}

	chartW := width
	var plot string
	if len(m.history) >= 2 && width >= 2*plotWidth && height >= 4 {
		chartW = width - plotWidth
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(height-2),
			asciigraph.Width(plotWidth-10),
			asciigraph.Precision(0),
			asciigraph.Caption("swaps per cycle"),
		)
		plot = lipgloss.NewStyle().
			Foreground(m.theme.Secondary).
			Width(plotWidth).
			Height(height).
			MaxHeight(height).
			Render(graph)
	}

	var chart string
	if m.opts.Compact {
		c := viz.NewCanvas(chartW, height)
		c.DrawBars(bars)
		chart = lipgloss.NewStyle().Foreground(m.theme.BarHigh).Render(c.String())
	} else {
		chart = viz.BarChart(bars, chartW, height, m.theme, highlight)
	}
	if plot == "" {
		return chart
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chart, plot)
}

func (m model) statusView() string {
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	var parts []string
	switch {
	case m.paused:
		parts = append(parts, lipgloss.NewStyle().Foreground(m.theme.Accent).Render("❚❚ paused"))
	case m.hasData:
		parts = append(parts, muted.Render(fmt.Sprintf("cycle %d · %s · %d swaps · %d left · %.0f%% ordered",
			m.frame.Cycle, m.frame.State, m.frame.Swaps, int(m.remaining.Value()), m.order.Value()*100)))
		if m.perCycle.Cycles() > 0 {
			parts = append(parts, muted.Render(fmt.Sprintf("avg %.0f / peak %d", m.perCycle.Value(), m.perCycle.Peak())))
		}
	default:
		parts = append(parts, muted.Render("waiting for the first frame"))
	}
	if m.status != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(m.theme.Secondary).Render(m.status))
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(strings.Join(parts, "   "))
}

func (m model) helpView() string {
	if m.phase == phaseForm {
		return m.help.View(m.form.keys)
	}
	return m.help.View(m.keys)
}

func initials(name string) string {
	var b strings.Builder
	for _, f := range strings.Fields(name) {
		b.WriteRune([]rune(f)[0])
	}
	return strings.ToUpper(b.String())
}

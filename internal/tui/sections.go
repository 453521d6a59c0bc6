package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/portfolio/internal/content"
	"github.com/san-kum/portfolio/internal/nav"
	"github.com/san-kum/portfolio/internal/viz"
)

// page renders every section of the portfolio at a fixed width.
type page struct {
	profile *content.Profile
	theme   viz.Theme
	width   int
	year    int
}

// fades holds the header brightness per section id, derived from how far
// each section has travelled through the viewport.
type fades map[string]float64

func (p page) render(f fades) ([]string, []int) {
	blocks := []string{
		p.hero(),
		p.about(f["about"]),
		p.skills(f["skills"]),
		p.work(f["work"]),
		p.contact(f["contact"]) + "\n" + p.footer(),
	}
	heights := make([]int, len(blocks))
	for i, b := range blocks {
		blocks[i] = strings.TrimRight(b, "\n")
		heights[i] = lipgloss.Height(blocks[i]) + 1
	}
	return blocks, heights
}

// joinBlocks stacks rendered sections with one blank row between them,
// matching the heights reported by render.
func joinBlocks(blocks []string) string {
	return strings.Join(blocks, "\n\n")
}

func (p page) text() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.theme.Text).Width(p.width)
}

func (p page) muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.theme.Muted).Width(p.width)
}

func (p page) hero() string {
	var b strings.Builder
	badge := lipgloss.NewStyle().Foreground(p.theme.Success).Render("● ")
	label := lipgloss.NewStyle().Foreground(p.theme.Muted)
	if p.profile.Available {
		b.WriteString(badge + label.Render("AVAILABLE FOR WORK"))
	}
	if p.profile.Location != "" {
		b.WriteString(label.Render("   " + strings.ToUpper(p.profile.Location)))
	}
	b.WriteString("\n\n")

	first, last := splitName(p.profile.Name)
	b.WriteString(viz.GradientText(strings.ToUpper(first), p.theme.Primary, p.theme.Secondary) + "\n")
	if last != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(p.theme.Muted).Render(strings.ToUpper(last)) + "\n")
	}
	b.WriteString("\n" + p.text().Render(p.profile.Tagline) + "\n\n")

	stats := make([]string, 0, len(p.profile.About.Stats))
	for _, s := range p.profile.About.Stats {
		v := lipgloss.NewStyle().Bold(true).Foreground(p.theme.Primary).Render(s.Value)
		l := lipgloss.NewStyle().Foreground(p.theme.Muted).Render(s.Label)
		stats = append(stats, lipgloss.JoinVertical(lipgloss.Left, v, l))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, spaced(stats, 6)...))
	if featured := p.profile.FeaturedProjects(); len(featured) > 0 {
		names := make([]string, len(featured))
		for i, pr := range featured {
			names[i] = pr.Title
		}
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(p.theme.Secondary).Width(p.width).
			Render("★ "+strings.Join(names, " · ")))
	}
	b.WriteString("\n\n" + p.muted().Render("↓ scroll"))
	return b.String()
}

func (p page) about(fade float64) string {
	a := p.profile.About
	var b strings.Builder
	b.WriteString(viz.SectionHeader(1, "about", fade, p.theme) + "\n\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(p.theme.Primary).Width(p.width).Render(a.Intro) + "\n\n")
	b.WriteString(p.text().Render(a.Description) + "\n\n")
	b.WriteString(lipgloss.NewStyle().Italic(true).Foreground(p.theme.Secondary).Render(a.Approach) + "\n\n")

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(p.theme.Text).Render("JOURNEY") + "\n")
	year := lipgloss.NewStyle().Foreground(p.theme.Accent).Width(6)
	title := lipgloss.NewStyle().Bold(true).Foreground(p.theme.Text)
	desc := lipgloss.NewStyle().Foreground(p.theme.Muted).Width(max(p.width-8, 10)).PaddingLeft(8)
	for _, m := range p.profile.Timeline {
		marker := "◆"
		if m.Type == "education" {
			marker = "▲"
		}
		b.WriteString(year.Render(m.Year) + marker + " " + title.Render(m.Title) + "\n")
		b.WriteString(desc.Render(m.Description) + "\n")
	}
	return b.String()
}

func (p page) skills(fade float64) string {
	var b strings.Builder
	b.WriteString(viz.SectionHeader(2, "expertise", fade, p.theme) + "\n\n")

	inner := max(p.width-4, 10)
	for _, s := range p.profile.Skills {
		var card strings.Builder
		card.WriteString(lipgloss.NewStyle().Bold(true).Foreground(p.theme.Primary).Render(s.Icon+" "+s.Category) + "\n")
		card.WriteString(viz.ProgressBar(float64(s.Proficiency)/100, min(30, inner-6), p.theme))
		card.WriteString(fmt.Sprintf(" %3d%%\n", s.Proficiency))
		card.WriteString(lipgloss.NewStyle().Foreground(p.theme.Text).Width(inner).Render(s.Description) + "\n")
		card.WriteString(lipgloss.NewStyle().Foreground(p.theme.Secondary).Width(inner).Render(strings.Join(s.Technologies, " · ")))
		for _, h := range s.Highlights {
			card.WriteString("\n" + lipgloss.NewStyle().Foreground(p.theme.Accent).Render("→ "+h.Text+"  "+h.Link))
		}
		if a := s.Achievement; a != nil {
			card.WriteString("\n" + lipgloss.NewStyle().Foreground(p.theme.Accent).Render(
				fmt.Sprintf("%s %s [%s] %s", a.Icon, a.Title, a.Rank, a.Description)))
		}
		b.WriteString(viz.Panel(card.String(), p.width-2, p.theme) + "\n")
	}
	return b.String()
}

func (p page) work(fade float64) string {
	var b strings.Builder
	b.WriteString(viz.SectionHeader(3, "selected work", fade, p.theme) + "\n\n")

	inner := max(p.width-4, 10)
	for i, pr := range p.profile.Projects {
		var card strings.Builder
		num := lipgloss.NewStyle().Foreground(p.theme.Muted).Render(fmt.Sprintf("%02d ", i+1))
		card.WriteString(num + lipgloss.NewStyle().Bold(true).Foreground(p.theme.Primary).Render(pr.Title))
		card.WriteString(lipgloss.NewStyle().Foreground(p.theme.Muted).Render("  " + pr.Category))
		if pr.Featured {
			card.WriteString(lipgloss.NewStyle().Foreground(p.theme.Accent).Render("  ★"))
		}
		card.WriteString("\n" + lipgloss.NewStyle().Foreground(p.theme.Text).Width(inner).Render(pr.Description) + "\n")

		stats := make([]string, 0, len(pr.Stats))
		for _, k := range pr.StatKeys() {
			stats = append(stats, k+": "+pr.Stats[k])
		}
		if len(stats) > 0 {
			card.WriteString(lipgloss.NewStyle().Foreground(p.theme.Secondary).Render(strings.Join(stats, "  ")) + "\n")
		}
		card.WriteString(lipgloss.NewStyle().Foreground(p.theme.Muted).Width(inner).Render(strings.Join(pr.Technologies, " · ")) + "\n")
		if pr.Link != "" {
			card.WriteString(lipgloss.NewStyle().Foreground(p.theme.Accent).Render("live   "+pr.Link) + "\n")
		}
		if pr.Github != "" {
			card.WriteString(lipgloss.NewStyle().Foreground(p.theme.Accent).Render("source "+pr.Github))
		}
		b.WriteString(viz.Panel(card.String(), p.width-2, p.theme) + "\n")
	}

	for _, cs := range p.profile.CaseStudies {
		var card strings.Builder
		card.WriteString(lipgloss.NewStyle().Bold(true).Foreground(p.theme.Primary).Render("Case study: "+cs.Title) + "\n")
		card.WriteString(lipgloss.NewStyle().Foreground(p.theme.Muted).Render(cs.Client+" · "+cs.Role+" · "+cs.Duration) + "\n")
		card.WriteString(lipgloss.NewStyle().Foreground(p.theme.Text).Width(inner).Render(cs.Overview))
		for _, r := range cs.Results {
			card.WriteString("\n" + lipgloss.NewStyle().Foreground(p.theme.Success).Render(fmt.Sprintf("%-6s", r.Value)) +
				lipgloss.NewStyle().Foreground(p.theme.Text).Render(" "+r.Metric))
		}
		if n := min(len(cs.Technologies), 4); n > 0 {
			tags := make([]string, n)
			for i, tech := range cs.Technologies[:n] {
				tags[i] = viz.Tag(tech, p.theme)
			}
			card.WriteString("\n" + lipgloss.JoinHorizontal(lipgloss.Top, tags...))
		}
		b.WriteString(viz.Panel(card.String(), p.width-2, p.theme) + "\n")
	}
	return b.String()
}

func (p page) contact(fade float64) string {
	c := p.profile.Contact
	var b strings.Builder
	b.WriteString(viz.SectionHeader(4, "contact", fade, p.theme) + "\n\n")
	b.WriteString(viz.GradientText("Let's build something together.", p.theme.Primary, p.theme.Secondary) + "\n\n")

	label := lipgloss.NewStyle().Foreground(p.theme.Muted).Width(14)
	value := lipgloss.NewStyle().Foreground(p.theme.Text)
	b.WriteString(label.Render("Email") + value.Render(c.Email) + "\n")
	b.WriteString(label.Render("Location") + value.Render(c.Location) + "\n")
	b.WriteString(label.Render("Availability") + value.Render(c.Availability) + "\n")
	for _, name := range c.SocialNames() {
		b.WriteString(label.Render(strings.ToUpper(name[:1])+name[1:]) + value.Render(c.Social[name]) + "\n")
	}
	b.WriteString("\n" + lipgloss.NewStyle().Foreground(p.theme.Accent).Render("press c to write a message"))
	return b.String()
}

func (p page) footer() string {
	year := p.year
	if year == 0 {
		year = time.Now().Year()
	}
	return viz.Separator(p.width, p.theme) + "\n" +
		p.muted().Render(fmt.Sprintf("© %d %s. All rights reserved.", year, p.profile.Name))
}

func splitName(name string) (string, string) {
	fields := strings.Fields(name)
	if len(fields) <= 1 {
		return name, ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

func spaced(items []string, gap int) []string {
	out := make([]string, 0, 2*len(items))
	pad := strings.Repeat(" ", gap)
	for i, it := range items {
		if i > 0 {
			out = append(out, pad)
		}
		out = append(out, it)
	}
	return out
}

// sectionIDs lists the page's section ids in render order.
func sectionIDs() []string {
	ids := make([]string, len(nav.Sections))
	for i, s := range nav.Sections {
		ids[i] = s.ID
	}
	return ids
}

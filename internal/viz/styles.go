package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GradientText colors each rune of text along a gradient from start to end.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		style := lipgloss.NewStyle().Bold(true).Foreground(Mix(start, end, t))
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// Mix interpolates between two hex colors; t is clamped to [0, 1].
func Mix(a, b lipgloss.Color, t float64) lipgloss.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	ar, ag, ab := parseHex(string(a))
	br, bg, bb := parseHex(string(b))
	lerp := func(x, y int) int { return x + int(t*float64(y-x)+0.5) }
	return lipgloss.Color(hexColor(lerp(ar, br), lerp(ag, bg), lerp(ab, bb)))
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// AnimatedSpinner returns frame of animated spinner
func AnimatedSpinner(frame int) string {
	if frame < 0 {
		frame = -frame
	}
	return spinnerFrames[frame%len(spinnerFrames)]
}

// ProgressBar renders percent (0..1) as a filled bar in the theme colors.
func ProgressBar(percent float64, width int, theme Theme) string {
	if width <= 0 {
		return ""
	}
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	on := lipgloss.NewStyle().Foreground(theme.Primary)
	off := lipgloss.NewStyle().Foreground(theme.Muted)
	return on.Render(strings.Repeat("█", filled)) + off.Render(strings.Repeat("░", width-filled))
}

// Separator is a muted rule with a diamond in the middle.
func Separator(width int, theme Theme) string {
	if width < 8 {
		return strings.Repeat("─", max(width, 0))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return lipgloss.NewStyle().Foreground(theme.Muted).Render(left + " ◆ " + right)
}

// SectionHeader renders the numbered heading the site puts above each
// section, e.g. "02 / ABOUT". fade (0..1) dims the number as the section
// scrolls out.
func SectionHeader(number int, title string, fade float64, theme Theme) string {
	num := lipgloss.NewStyle().Foreground(Mix(theme.Muted, theme.Primary, fade)).Render(twoDigits(number))
	slash := lipgloss.NewStyle().Foreground(theme.Muted).Render(" / ")
	head := lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(strings.ToUpper(title))
	return num + slash + head
}

// Tag renders a small pill such as a technology name.
func Tag(text string, theme Theme) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Muted).
		Padding(0, 1).
		Render(text)
}

// Panel is a rounded box used for cards.
func Panel(content string, width int, theme Theme) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Muted).
		Width(width).
		Padding(0, 1).
		Render(content)
}

func twoDigits(n int) string {
	s := strconv.Itoa(n)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}

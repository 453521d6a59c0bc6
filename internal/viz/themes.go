package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	BarLow    lipgloss.Color // shade of a bar at opacity 0.5
	BarHigh   lipgloss.Color // shade of a bar at opacity 1.0
}

// Available themes
var (
	ThemeMonochrome = Theme{
		Name:      "monochrome",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#9ca3af"),
		Accent:    lipgloss.Color("#a855f7"),
		Text:      lipgloss.Color("#e5e7eb"),
		Muted:     lipgloss.Color("#6b7280"),
		Success:   lipgloss.Color("#4ade80"),
		Error:     lipgloss.Color("#f87171"),
		BarLow:    lipgloss.Color("#1f2937"),
		BarHigh:   lipgloss.Color("#6b7280"),
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#00ff00"),
		Error:     lipgloss.Color("#ff0000"),
		BarLow:    lipgloss.Color("#2a0033"),
		BarHigh:   lipgloss.Color("#cc00cc"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Error:     lipgloss.Color("#ff0000"),
		BarLow:    lipgloss.Color("#002200"),
		BarHigh:   lipgloss.Color("#00aa00"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Success:   lipgloss.Color("#00ff88"),
		Error:     lipgloss.Color("#ff4444"),
		BarLow:    lipgloss.Color("#001a33"),
		BarHigh:   lipgloss.Color("#0077be"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"),
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Success:   lipgloss.Color("#5fd068"),
		Error:     lipgloss.Color("#ff4757"),
		BarLow:    lipgloss.Color("#2d1b2e"),
		BarHigh:   lipgloss.Color("#ff6b6b"),
	}

	// All available themes, default first
	Themes = []Theme{
		ThemeMonochrome,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to monochrome.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMonochrome
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

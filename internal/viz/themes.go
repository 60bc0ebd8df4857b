package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the color scheme of the terminal host.
type Theme struct {
	Name     string
	Water    lipgloss.Color
	Hull     lipgloss.Color
	Accent   lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Success  lipgloss.Color
	Warning  lipgloss.Color
	Border   lipgloss.Color
	GraphHue lipgloss.Color
}

var (
	ThemeOcean = Theme{
		Name:     "ocean",
		Water:    lipgloss.Color("#00a8cc"),
		Hull:     lipgloss.Color("#ffd700"),
		Accent:   lipgloss.Color("#00ffff"),
		Text:     lipgloss.Color("#e0f0ff"),
		Muted:    lipgloss.Color("#4488aa"),
		Success:  lipgloss.Color("#00ff88"),
		Warning:  lipgloss.Color("#ffcc00"),
		Border:   lipgloss.Color("#224466"),
		GraphHue: lipgloss.Color("#00ccff"),
	}

	ThemeHarbor = Theme{
		Name:     "harbor",
		Water:    lipgloss.Color("#7fb3d5"),
		Hull:     lipgloss.Color("#e74c3c"),
		Accent:   lipgloss.Color("#f5b041"),
		Text:     lipgloss.Color("#fdfefe"),
		Muted:    lipgloss.Color("#808b96"),
		Success:  lipgloss.Color("#58d68d"),
		Warning:  lipgloss.Color("#f4d03f"),
		Border:   lipgloss.Color("#566573"),
		GraphHue: lipgloss.Color("#f5b041"),
	}

	ThemeNight = Theme{
		Name:     "night",
		Water:    lipgloss.Color("#3949ab"),
		Hull:     lipgloss.Color("#ff00ff"),
		Accent:   lipgloss.Color("#b388ff"),
		Text:     lipgloss.Color("#c5cae9"),
		Muted:    lipgloss.Color("#5c6bc0"),
		Success:  lipgloss.Color("#69f0ae"),
		Warning:  lipgloss.Color("#ffab40"),
		Border:   lipgloss.Color("#283593"),
		GraphHue: lipgloss.Color("#b388ff"),
	}

	ThemeMinimal = Theme{
		Name:     "minimal",
		Water:    lipgloss.Color("#ffffff"),
		Hull:     lipgloss.Color("#ffffff"),
		Accent:   lipgloss.Color("#0088ff"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#888888"),
		Success:  lipgloss.Color("#00ff00"),
		Warning:  lipgloss.Color("#ffaa00"),
		Border:   lipgloss.Color("#444444"),
		GraphHue: lipgloss.Color("#cccccc"),
	}

	CurrentTheme = ThemeOcean

	Themes = []Theme{
		ThemeOcean,
		ThemeHarbor,
		ThemeNight,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to ocean.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeOcean
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			return
		}
	}
}

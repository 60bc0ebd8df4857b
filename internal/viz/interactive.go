package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/shipwake/internal/config"
	"github.com/san-kum/shipwake/internal/experiment"
)

var presetInfo = map[string]string{
	"default": "500 particles and a ship",
	"calm":    "open water, no ship",
	"storm":   "random batch velocities",
	"dense":   "800 particles",
	"smooth":  "tapered force cutoff",
}

const (
	stateMenu = iota
	stateConfig
	stateSim
)

// tunable is a config value editable from the config screen.
type tunable struct {
	name string
	get  func(c *config.Config) float64
	set  func(c *config.Config, v float64)
	step float64
}

var tunables = []tunable{
	{"count", func(c *config.Config) float64 { return float64(c.Particles.Count) }, func(c *config.Config, v float64) { c.Particles.Count = max(0, int(v)) }, 50},
	{"repel", func(c *config.Config) float64 { return c.Field.RepelStrength }, func(c *config.Config, v float64) { c.Field.RepelStrength = v }, 100},
	{"damping", func(c *config.Config) float64 { return c.Field.Damping }, func(c *config.Config, v float64) { c.Field.Damping = v }, 0.001},
	{"max_speed", func(c *config.Config) float64 { return c.Field.MaxSpeed }, func(c *config.Config, v float64) { c.Field.MaxSpeed = v }, 10},
	{"hull", func(c *config.Config) float64 { return c.Ship.Strength }, func(c *config.Config, v float64) { c.Ship.Strength = v }, 1e4},
	{"seed", func(c *config.Config) float64 { return float64(c.Seed) }, func(c *config.Config, v float64) { c.Seed = int64(v) }, 1},
}

// App picks a preset, lets a few values be tuned, then hands over to the
// live Model.
type App struct {
	state, cursor int
	presets       []string
	cfg           *config.Config
	paramCursor   int
	editing       bool
	editBuf       string
	err           error
	width, height int
	live          Model
}

func NewApp() *App {
	return &App{
		state:   stateMenu,
		presets: config.ListPresets(),
		width:   width,
		height:  height,
	}
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		a.width, a.height = ws.Width, ws.Height
	}
	if a.state == stateSim {
		next, cmd := a.live.Update(msg)
		a.live = next.(Model)
		return a, cmd
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch a.state {
		case stateMenu:
			return a.menuKey(key)
		case stateConfig:
			return a.configKey(key)
		}
	}
	return a, nil
}

func (a App) menuKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.presets)-1 {
			a.cursor++
		}
	case "enter", " ":
		cfg, err := config.GetPreset(a.presets[a.cursor])
		if err != nil {
			a.err = err
			return a, nil
		}
		a.cfg, a.err = cfg, nil
		a.state, a.paramCursor = stateConfig, 0
	}
	return a, nil
}

func (a App) configKey(msg tea.KeyMsg) (App, tea.Cmd) {
	t := tunables[a.paramCursor]
	if a.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.ParseFloat(a.editBuf, 64); err == nil {
				t.set(a.cfg, v)
			}
			a.editing, a.editBuf = false, ""
		case "esc":
			a.editing, a.editBuf = false, ""
		case "backspace":
			if len(a.editBuf) > 0 {
				a.editBuf = a.editBuf[:len(a.editBuf)-1]
			}
		default:
			if s := msg.String(); len(s) == 1 && strings.ContainsAny(s, "0123456789.-e") {
				a.editBuf += s
			}
		}
		return a, nil
	}
	switch msg.String() {
	case "q", "esc":
		a.state = stateMenu
	case "up", "k":
		if a.paramCursor > 0 {
			a.paramCursor--
		}
	case "down", "j":
		if a.paramCursor < len(tunables)-1 {
			a.paramCursor++
		}
	case "enter", " ":
		a.editing, a.editBuf = true, strconv.FormatFloat(t.get(a.cfg), 'g', -1, 64)
	case "left", "h":
		t.set(a.cfg, t.get(a.cfg)-t.step)
	case "right", "l":
		t.set(a.cfg, t.get(a.cfg)+t.step)
	case "s":
		return a.start()
	}
	return a, nil
}

func (a App) start() (App, tea.Cmd) {
	exp, err := experiment.New(a.cfg)
	if err != nil {
		a.err = err
		return a, nil
	}
	a.err = nil
	a.live = NewModel(exp)
	a.live.resize(a.width, a.height)
	a.state = stateSim
	return a, a.live.Init()
}

func (a App) View() string {
	switch a.state {
	case stateMenu:
		return a.viewMenu()
	case stateConfig:
		return a.viewConfig()
	case stateSim:
		return a.live.View()
	}
	return ""
}

var (
	menuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	menuSub   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	menuArrow = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	menuPick  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	menuDesc  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	menuIdle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	menuKey   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	menuErr   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

func hints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(menuKey.Render(pairs[i]) + menuIdle.Render(" "+pairs[i+1]+"  "))
	}
	return b.String()
}

func (a App) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + menuTitle.Render("SHIPWAKE") + "\n    " + menuSub.Render("particle water and a ship") + "\n    " + menuSub.Render("─────────────────────────") + "\n\n")
	for i, name := range a.presets {
		desc := presetInfo[name]
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", menuArrow.Render("▸"), menuPick.Render(fmt.Sprintf("%-10s", name)), menuDesc.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", menuIdle.Render(fmt.Sprintf("  %-10s", name)), menuIdle.Render(desc)))
		}
	}
	b.WriteString("\n    " + hints("j/k", "navigate", "enter", "select", "q", "quit") + "\n")
	if a.err != nil {
		b.WriteString("\n    " + menuErr.Render(a.err.Error()) + "\n")
	}
	return b.String()
}

func (a App) viewConfig() string {
	var b strings.Builder
	b.WriteString("\n\n    " + menuTitle.Render(strings.ToUpper(a.presets[a.cursor])) + "\n    " + menuSub.Render(presetInfo[a.presets[a.cursor]]) + "\n    " + menuSub.Render("─────────────────────────") + "\n\n")
	for i, t := range tunables {
		valStr := fmt.Sprintf("%10.4g", t.get(a.cfg))
		if a.editing && i == a.paramCursor {
			valStr = fmt.Sprintf("%10s", a.editBuf+"_")
		}
		if i == a.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", menuArrow.Render("▸"), menuPick.Render(fmt.Sprintf("%-10s", t.name)), menuDesc.Render(valStr)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n", menuIdle.Render(fmt.Sprintf("  %-10s", t.name)), menuIdle.Render(valStr)))
		}
	}
	b.WriteString("\n    " + hints("j/k", "select", "h/l", "adjust", "s", "start", "esc", "back") + "\n")
	if a.err != nil {
		b.WriteString("\n    " + menuErr.Render(a.err.Error()) + "\n")
	}
	return b.String()
}

// RunInteractive starts at the preset menu.
func RunInteractive() error {
	_, err := tea.NewProgram(NewApp(), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

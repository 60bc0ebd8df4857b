package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/shipwake/internal/control"
	"github.com/san-kum/shipwake/internal/dynamo"
	"github.com/san-kum/shipwake/internal/experiment"
	"github.com/san-kum/shipwake/internal/metrics"
	"github.com/san-kum/shipwake/internal/physics"
	"github.com/san-kum/shipwake/internal/world"
)

const (
	width           = 80
	height          = 24
	panelWidth      = 40
	historyCapacity = 300

	// canvasLeft and canvasTop are the canvas padding in cells.
	canvasLeft = 2
	canvasTop  = 1

	// DefaultWorldPerDot is the number of world units per braille dot.
	DefaultWorldPerDot = 4.0

	// Terminals report presses and repeats but no releases, so a steering
	// key counts as held until this long after its last event.
	keyHold = 150 * time.Millisecond
)

type TickMsg time.Time

// Model is the terminal host: it turns bubbletea mouse and key messages
// into simulator input and draws the field on a braille canvas.
type Model struct {
	exp         *experiment.Experiment
	input       *control.Manual
	trace       *metrics.Trace
	canvas      *Canvas
	cols, rows  int
	worldPerDot float64
	dt          float64
	running     bool
	showHelp    bool
	aim         bool
	held        map[control.Key]time.Time
	now         func() time.Time
	err         error
}

func NewModel(exp *experiment.Experiment) Model {
	m := Model{
		exp:         exp,
		input:       control.NewManual(),
		trace:       metrics.NewTrace(historyCapacity),
		worldPerDot: DefaultWorldPerDot,
		dt:          exp.Config().Dt,
		running:     true,
		aim:         true,
		held:        make(map[control.Key]time.Time),
		now:         time.Now,
	}
	exp.GetSimulator().AddObserver(m.trace)
	m.resize(width, height)
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// resize fits the canvas to a terminal of w x h cells, leaving room for the
// side panel, and tells the input latch about the new viewport.
func (m *Model) resize(w, h int) {
	m.cols = max(10, w-2*canvasLeft-panelWidth-1)
	m.rows = max(5, h-2*canvasTop)
	m.canvas = NewCanvas(m.cols, m.rows)
	dw, dh := m.canvas.Dots()
	m.input.Resize(float64(dw)*m.worldPerDot, float64(dh)*m.worldPerDot)
	m.input.SetScale(m.worldPerDot)
}

// cellToDot maps a terminal cell to the dot at its center, in canvas
// coordinates.
func cellToDot(x, y int) (float64, float64) {
	return float64((x-canvasLeft)*2) + 1, float64((y-canvasTop)*4) + 2
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "?":
			m.showHelp = !m.showHelp
		case "t":
			NextTheme()
		case "c":
			m.exp.GetSimulator().World().Particles.Clear()
		case "m":
			m.aim = !m.aim
			m.input.SetAim(m.aim)
		case "w", "up":
			m.held[control.KeyForward] = m.now()
		case "s", "down":
			m.held[control.KeyBack] = m.now()
		case "a", "left":
			m.held[control.KeyLeft] = m.now()
		case "d", "right":
			m.held[control.KeyRight] = m.now()
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) mouse(msg tea.MouseMsg) {
	m.input.MoveTo(cellToDot(msg.X, msg.Y))
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.input.Press(control.Primary)
		case tea.MouseButtonRight:
			m.input.Press(control.Secondary)
		}
	case tea.MouseActionRelease:
		// release reports no button on most terminals
		m.input.Release(control.Primary)
		m.input.Release(control.Secondary)
	}
}

// keys expires holds older than keyHold and latches the rest.
func (m *Model) keys() control.Keys {
	now := m.now()
	for _, k := range []control.Key{control.KeyForward, control.KeyBack, control.KeyLeft, control.KeyRight} {
		t, ok := m.held[k]
		m.input.SetKey(k, ok && now.Sub(t) <= keyHold)
	}
	return m.input.Keys()
}

func (m *Model) step() {
	m.keys()
	m.exp.GetSimulator().Tick(m.input.Next(m.dt))
}

func (m *Model) reset() {
	if err := m.exp.Reset(); err != nil {
		m.err = err
		return
	}
	m.trace.Reset()
	m.held = make(map[control.Key]time.Time)
}

// toDot maps a world point to canvas dots.
func (m *Model) toDot(p dynamo.Vec2) (int, int) {
	dw, dh := m.canvas.Dots()
	vp := dynamo.Viewport{Width: float64(dw) * m.worldPerDot, Height: float64(dh) * m.worldPerDot}
	d := control.SimToDevice(p, vp, m.worldPerDot)
	return int(math.Floor(d.X)), int(math.Floor(d.Y))
}

func (m *Model) draw() {
	m.canvas.Clear()
	w := m.exp.GetSimulator().World()
	w.Particles.Each(func(p world.Particle) {
		m.canvas.Set(m.toDot(p.Pos))
	})
	if ship, ok := w.Ship(); ok {
		m.drawShip(*ship, m.exp.GetSimulator().Setup().Ship)
	}
}

// drawShip outlines the hull sample grid.
func (m *Model) drawShip(ship world.Ship, p physics.ShipParams) {
	across0, across1 := -float64(p.Across)*p.Step, float64(p.Across-1)*p.Step
	along0, along1 := -float64(p.Along)*p.Step, float64(p.Along-1)*p.Step
	corners := []dynamo.Vec2{
		ship.Local(across0, along0),
		ship.Local(across1, along0),
		ship.Local(across1, along1),
		ship.Local(across0, along1),
	}
	pts := make([][2]int, len(corners))
	for i, c := range corners {
		x, y := m.toDot(c)
		pts[i] = [2]int{x, y}
	}
	m.canvas.Polygon(pts)

	// bow marker
	bx, by := m.toDot(ship.Local((across0+across1)/2, along1+2*p.Step))
	cx, cy := m.toDot(ship.Local((across0+across1)/2, along1))
	m.canvas.DrawLine(cx, cy, bx, by)
}

// View renders the TUI interface.
func (m Model) View() string {
	st := currentStyles()
	m.draw()
	canvasView := st.canvas.Render(st.water.Render(m.canvas.String()))

	s := m.exp.GetSimulator()
	var b strings.Builder
	b.WriteString(st.header.Render("SHIPWAKE") + "\n")
	if m.running {
		b.WriteString(st.running.Render("RUNNING") + "\n\n")
	} else {
		b.WriteString(st.paused.Render("PAUSED") + "\n\n")
	}

	if ke := m.trace.Values("kinetic_energy"); len(ke) > 1 {
		chart := asciigraph.Plot(ke, asciigraph.Height(4), asciigraph.Width(panelWidth-12), asciigraph.Caption("Kinetic energy"))
		b.WriteString(st.graph.Render(chart) + "\n\n")
	}

	frame := s.Frame()
	row := func(label, value string) {
		b.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.2fs", s.Time()))
	row("Particles", fmt.Sprintf("%d", s.World().Particles.Len()))
	row("Mean speed", fmt.Sprintf("%.2f", metrics.FrameMeanSpeed(frame)))
	row("Energy", fmt.Sprintf("%.1f", metrics.FrameKineticEnergy(frame)))
	for _, mt := range s.Metrics() {
		if mt.Name() == "saturation" {
			b.WriteString(st.label.Render("Saturation") + ProgressBar(mt.Value(), 10) + "\n")
		}
	}
	if ship, ok := s.World().Ship(); ok {
		row("Ship", fmt.Sprintf("(%.0f, %.0f)", ship.Pos.X, ship.Pos.Y))
		row("Heading", fmt.Sprintf("%.0f°", ship.Heading*180/math.Pi))
	}
	row("Theme", CurrentTheme.Name)
	if m.err != nil {
		row("Error", m.err.Error())
	}

	b.WriteString(st.help.Render("─────────────────────\nLMB:Spawn RMB:Clear/Aim\nWASD:Steer M:Aim C:Clear\nSP:Pause R:Reset T:Theme\n?:Help Q:Quit"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.panel.Render(b.String()))
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Left click  - Spawn a particle      ║
║  Right click - Clear nearby water    ║
║  Right drag  - Turn ship to pointer  ║
║  W/A/S/D     - Steer the ship        ║
║  M           - Toggle mouse aim      ║
║  C           - Clear all water       ║
║  Space       - Pause/Resume          ║
║  R           - Reset the field       ║
║  T           - Cycle themes          ║
║  ?           - Toggle this help      ║
║  Q           - Quit                  ║
╚══════════════════════════════════════╝`

// Run starts the terminal host on exp.
func Run(exp *experiment.Experiment) error {
	p := tea.NewProgram(NewModel(exp), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

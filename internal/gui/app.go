package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/san-kum/shipwake/internal/control"
	"github.com/san-kum/shipwake/internal/experiment"
	"github.com/san-kum/shipwake/internal/metrics"
)

// Theme colors
var (
	ColBg     = color.RGBA{10, 14, 22, 255}
	ColWater  = color.RGBA{0, 168, 204, 255}
	ColFast   = color.RGBA{224, 240, 255, 255}
	ColHull   = color.RGBA{255, 215, 0, 255}
	ColBounds = color.RGBA{34, 68, 102, 255}
	ColGraph  = color.RGBA{68, 136, 170, 255}
)

// App is the window host. Layout follows the window size, so the viewport
// is always the visible area and cursor units match it.
type App struct {
	exp    *experiment.Experiment
	input  *control.Manual
	trace  *metrics.Trace
	width  int
	height int
	paused bool
	hud    bool
	quit   bool
	aim    bool
	dt     float64
}

func NewApp(exp *experiment.Experiment) *App {
	a := &App{
		exp:   exp,
		input: control.NewManual(),
		trace: metrics.NewTrace(240),
		hud:   true,
		aim:   true,
		dt:    exp.Config().Dt,
	}
	exp.GetSimulator().AddObserver(a.trace)
	return a
}

// frameInput is one poll of the devices.
type frameInput struct {
	x, y                       int
	primaryDown, primaryUp     bool
	secondaryDown, secondaryUp bool
	keys                       control.Keys
	pause, reset, hud, quit    bool
	clear, aim                 bool
}

func poll() frameInput {
	x, y := ebiten.CursorPosition()
	return frameInput{
		x:             x,
		y:             y,
		primaryDown:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		primaryUp:     inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		secondaryDown: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		secondaryUp:   inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight),
		keys: control.Keys{
			Forward: ebiten.IsKeyPressed(ebiten.KeyW),
			Back:    ebiten.IsKeyPressed(ebiten.KeyS),
			Left:    ebiten.IsKeyPressed(ebiten.KeyA),
			Right:   ebiten.IsKeyPressed(ebiten.KeyD),
		},
		pause: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		reset: inpututil.IsKeyJustPressed(ebiten.KeyR),
		hud:   inpututil.IsKeyJustPressed(ebiten.KeyH),
		clear: inpututil.IsKeyJustPressed(ebiten.KeyC),
		aim:   inpututil.IsKeyJustPressed(ebiten.KeyM),
		quit:  inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}

func (a *App) Update() error {
	a.handle(poll())
	if a.quit {
		return ebiten.Termination
	}
	return nil
}

// handle applies one poll and, unless paused, ticks the simulator.
func (a *App) handle(f frameInput) {
	if f.quit {
		a.quit = true
		return
	}
	if f.pause {
		a.paused = !a.paused
	}
	if f.hud {
		a.hud = !a.hud
	}
	if f.aim {
		a.aim = !a.aim
		a.input.SetAim(a.aim)
	}
	if f.clear {
		a.exp.GetSimulator().World().Particles.Clear()
	}
	if f.reset {
		if err := a.exp.Reset(); err == nil {
			a.trace.Reset()
		}
	}

	a.input.MoveTo(float64(f.x), float64(f.y))
	if f.primaryDown {
		a.input.Press(control.Primary)
	}
	if f.primaryUp {
		a.input.Release(control.Primary)
	}
	if f.secondaryDown {
		a.input.Press(control.Secondary)
	}
	if f.secondaryUp {
		a.input.Release(control.Secondary)
	}
	a.input.SetKeys(f.keys)

	if !a.paused {
		a.exp.GetSimulator().Tick(a.input.Next(a.dt))
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.input.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it closes.
func Run(exp *experiment.Experiment) error {
	vp := exp.Config().Viewport
	ebiten.SetWindowSize(int(vp.Width), int(vp.Height))
	ebiten.SetWindowTitle("shipwake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(1/exp.Config().Dt + 0.5))
	return ebiten.RunGame(NewApp(exp))
}

package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/san-kum/shipwake/internal/control"
	"github.com/san-kum/shipwake/internal/dynamo"
	"github.com/san-kum/shipwake/internal/metrics"
	"github.com/san-kum/shipwake/internal/physics"
)

const particleRadius = 3

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(ColBg)
	vp := dynamo.Viewport{Width: float64(a.width), Height: float64(a.height)}
	s := a.exp.GetSimulator()

	a.drawBounds(screen, vp)

	vel := s.World().Particles.Velocities()
	maxSpeed := s.Setup().Integrator.MaxSpeed
	for i, p := range s.World().Particles.Positions() {
		d := control.SimToDevice(p, vp, 1)
		vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), particleRadius, speedColor(vel[i], maxSpeed), true)
	}

	if ship, ok := s.World().Ship(); ok {
		step := float32(s.Setup().Ship.Step)
		for _, pt := range physics.NewShipField(*ship, s.Setup().Ship).Points() {
			d := control.SimToDevice(pt, vp, 1)
			vector.DrawFilledRect(screen, float32(d.X)-step/2, float32(d.Y)-step/2, step, step, ColHull, false)
		}
	}

	if a.hud {
		a.drawHUD(screen)
	}
}

func (a *App) drawBounds(screen *ebiten.Image, vp dynamo.Viewport) {
	b := vp.Bounds(a.exp.GetSimulator().Setup().Margin)
	if !b.Valid() {
		return
	}
	tl := control.SimToDevice(dynamo.Vec2{X: -b.XMax, Y: b.YMax}, vp, 1)
	vector.StrokeRect(screen, float32(tl.X), float32(tl.Y), float32(2*b.XMax), float32(2*b.YMax), 1, ColBounds, false)
}

func (a *App) drawHUD(screen *ebiten.Image) {
	s := a.exp.GetSimulator()
	status := "running"
	if a.paused {
		status = "paused"
	}
	msg := fmt.Sprintf("shipwake  %s  t=%.1fs  tps=%.0f\nparticles %d  mean speed %.1f  energy %.0f\n",
		status, s.Time(), ebiten.ActualTPS(),
		s.World().Particles.Len(), metrics.FrameMeanSpeed(s.Frame()), metrics.FrameKineticEnergy(s.Frame()))
	if ship, ok := s.World().Ship(); ok {
		msg += fmt.Sprintf("ship (%.0f, %.0f) heading %.0f°\n", ship.Pos.X, ship.Pos.Y, ship.Heading*180/math.Pi)
	}
	msg += "LMB spawn  RMB clear/aim  WASD steer  M aim  C clear  SPACE pause  R reset  H hud  Q quit"
	ebitenutil.DebugPrint(screen, msg)

	a.drawTrace(screen, a.trace.Values("kinetic_energy"), 10, float32(a.height-70), 200, 60)
}

// drawTrace plots a series as a polyline in the box at (x, y).
func (a *App) drawTrace(screen *ebiten.Image, vals []float64, x, y, w, h float32) {
	if len(vals) < 2 {
		return
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	px := func(i int) (float32, float32) {
		return x + w*float32(i)/float32(len(vals)-1), y + h - h*float32((vals[i]-lo)/span)
	}
	x0, y0 := px(0)
	for i := 1; i < len(vals); i++ {
		x1, y1 := px(i)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, ColGraph, true)
		x0, y0 = x1, y1
	}
}

// speedColor blends from water to white as a particle nears the clamp.
func speedColor(v dynamo.Vec2, maxSpeed float64) color.RGBA {
	t := 0.0
	if maxSpeed > 0 {
		t = math.Min(1, v.Len()/(maxSpeed*math.Sqrt2))
	}
	lerp := func(a, b uint8) uint8 { return uint8(float64(a) + t*(float64(b)-float64(a))) }
	return color.RGBA{
		R: lerp(ColWater.R, ColFast.R),
		G: lerp(ColWater.G, ColFast.G),
		B: lerp(ColWater.B, ColFast.B),
		A: 255,
	}
}

package sim_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/shipwake/internal/control"
	"github.com/san-kum/shipwake/internal/dynamo"
	"github.com/san-kum/shipwake/internal/sim"
	"github.com/san-kum/shipwake/internal/world"
)

const dt = 1.0 / 60

var _ = Describe("Tick", func() {
	var (
		w *world.World
		s *sim.Simulator
	)

	BeforeEach(func() {
		w = world.New()
		s = sim.New(w, sim.DefaultSetup())
	})

	Context("without a viewport", func() {
		It("does not confine particles far outside", func() {
			h := w.Particles.Spawn(dynamo.Vec2{X: 5000}, dynamo.Vec2{})
			s.Tick(control.Input{Dt: dt})

			p, ok := w.Particles.Get(h)
			Expect(ok).To(BeTrue())
			Expect(p.Vel).To(Equal(dynamo.Vec2{}))
		})

		It("ignores button presses", func() {
			s.Tick(control.Input{Dt: dt, Primary: control.Button{Pressed: true}})
			Expect(w.Particles.Len()).To(BeZero())
		})
	})

	Context("with a viewport", func() {
		vp := dynamo.Viewport{Width: 800, Height: 600}

		It("pulls an escaped particle back toward the box", func() {
			h := w.Particles.Spawn(dynamo.Vec2{X: 500, Y: -400}, dynamo.Vec2{})
			s.Tick(control.Input{Dt: dt, Viewport: vp})

			p, _ := w.Particles.Get(h)
			Expect(p.Vel.X).To(BeNumerically("<", 0))
			Expect(p.Vel.Y).To(BeNumerically(">", 0))
		})

		It("removes particles near a secondary press", func() {
			w.Particles.Spawn(dynamo.Vec2{X: 0}, dynamo.Vec2{})
			w.Particles.Spawn(dynamo.Vec2{X: 15}, dynamo.Vec2{})
			far := w.Particles.Spawn(dynamo.Vec2{X: 25}, dynamo.Vec2{})

			s.Tick(control.Input{
				Dt:        dt,
				Viewport:  vp,
				Pointer:   dynamo.Vec2{X: 400, Y: 300},
				Secondary: control.Button{Pressed: true, Held: true},
			})

			Expect(w.Particles.Len()).To(Equal(1))
			Expect(w.Particles.Has(far)).To(BeTrue())
			Expect(s.LastReport().Removed).To(HaveLen(2))
		})
	})

	Context("with a ship", func() {
		BeforeEach(func() {
			w.SetShip(world.Ship{Pos: dynamo.Vec2{X: 0, Y: -150}})
		})

		It("pushes a particle inside the hull", func() {
			h := w.Particles.Spawn(dynamo.Vec2{X: 3, Y: -152}, dynamo.Vec2{})
			s.Tick(control.Input{Dt: dt})

			p, _ := w.Particles.Get(h)
			Expect(p.Vel.Len()).To(BeNumerically(">", 0))
			Expect(math.Abs(p.Vel.X)).To(BeNumerically("<=", 100))
			Expect(math.Abs(p.Vel.Y)).To(BeNumerically("<=", 100))
		})

		It("moves the ship with held keys", func() {
			s.Tick(control.Input{Dt: 0.5, Keys: control.Keys{Forward: true}})

			ship, ok := w.Ship()
			Expect(ok).To(BeTrue())
			Expect(ship.Pos.Y).To(BeNumerically("~", -50, 1e-9))
		})

		It("leaves far particles alone once the ship is removed", func() {
			h := w.Particles.Spawn(dynamo.Vec2{X: 0, Y: -155}, dynamo.Vec2{})
			w.RemoveShip()
			s.Tick(control.Input{Dt: dt})

			p, _ := w.Particles.Get(h)
			Expect(p.Vel).To(Equal(dynamo.Vec2{}))
		})
	})

	It("tracks the clock and frame", func() {
		w.Particles.Spawn(dynamo.Vec2{}, dynamo.Vec2{X: 1, Y: 1})
		for i := 0; i < 3; i++ {
			s.Tick(control.Input{Dt: dt})
		}
		Expect(s.Ticks()).To(Equal(3))
		Expect(s.Time()).To(BeNumerically("~", 3*dt, 1e-12))
		Expect(s.Frame().Positions).To(HaveLen(1))

		s.Reset()
		Expect(s.Ticks()).To(BeZero())
	})
})

package control

import (
	"math/rand"

	"github.com/san-kum/shipwake/internal/dynamo"
	"github.com/san-kum/shipwake/internal/world"
)

const DefaultDespawnRadius2 = 400.0 // 20 units

// DefaultVelocity is given to every click-spawned particle.
var DefaultVelocity = dynamo.Vec2{X: 1, Y: 1}

// Report lists what a tick of input changed in the store.
type Report struct {
	Spawned []world.Handle
	Removed []world.Handle
}

// Spawner maps button edges to store mutations.
type Spawner struct {
	Velocity       dynamo.Vec2
	DespawnRadius2 float64
}

func NewSpawner() *Spawner {
	return &Spawner{Velocity: DefaultVelocity, DespawnRadius2: DefaultDespawnRadius2}
}

// Apply handles the tick's press edges. Despawn runs first so a particle
// spawned by the same tick is never caught by it. Without a viewport the
// pointer cannot be mapped and nothing happens.
func (s *Spawner) Apply(st *world.Store, in Input) Report {
	var r Report
	if !in.Viewport.Valid() {
		return r
	}
	at := in.PointerSim()
	if in.Secondary.Pressed {
		r.Removed = s.Despawn(st, at)
	}
	if in.Primary.Pressed {
		r.Spawned = append(r.Spawned, s.Spawn(st, at))
	}
	return r
}

func (s *Spawner) Spawn(st *world.Store, at dynamo.Vec2) world.Handle {
	return st.Spawn(at, s.Velocity)
}

// Despawn removes every particle strictly within the radius of at.
func (s *Spawner) Despawn(st *world.Store, at dynamo.Vec2) []world.Handle {
	var hit []world.Handle
	pos := st.Positions()
	for i, h := range st.Handles() {
		if pos[i].Dist2(at) < s.DespawnRadius2 {
			hit = append(hit, h)
		}
	}
	st.DespawnBatch(hit)
	return hit
}

// VelocityFunc picks the initial velocity of a batch particle.
type VelocityFunc func(rng *rand.Rand) dynamo.Vec2

func FixedVelocity(v dynamo.Vec2) VelocityFunc {
	return func(*rand.Rand) dynamo.Vec2 { return v }
}

// RandomVelocity samples each axis uniformly from [-speed, speed).
func RandomVelocity(speed float64) VelocityFunc {
	return func(rng *rand.Rand) dynamo.Vec2 {
		return dynamo.Vec2{
			X: (rng.Float64()*2 - 1) * speed,
			Y: (rng.Float64()*2 - 1) * speed,
		}
	}
}

// SeedBatch spawns n particles uniformly inside b. Invalid bounds spawn
// nothing.
func SeedBatch(st *world.Store, n int, b dynamo.Bounds, vel VelocityFunc, rng *rand.Rand) []world.Handle {
	if !b.Valid() || n <= 0 {
		return nil
	}
	hs := make([]world.Handle, 0, n)
	for i := 0; i < n; i++ {
		p := dynamo.Vec2{
			X: (rng.Float64()*2 - 1) * b.XMax,
			Y: (rng.Float64()*2 - 1) * b.YMax,
		}
		hs = append(hs, st.Spawn(p, vel(rng)))
	}
	return hs
}

package world

import "github.com/san-kum/shipwake/internal/dynamo"

// Handle identifies a particle for its whole lifetime. Handles are never
// reused within a Store.
type Handle uint64

// Particle is a copy of one particle's state.
type Particle struct {
	Handle Handle
	Pos    dynamo.Vec2
	Vel    dynamo.Vec2
}

// Store is the particle arena. Particles live in dense parallel slices so a
// tick can hand positions and velocities to phase functions without copying;
// the index map resolves handles to slots (sparse set pattern).
type Store struct {
	next    Handle
	index   map[Handle]int
	handles []Handle
	pos     []dynamo.Vec2
	vel     []dynamo.Vec2
}

func NewStore() *Store {
	return &Store{
		next:    1,
		index:   make(map[Handle]int),
		handles: make([]Handle, 0, 512),
		pos:     make([]dynamo.Vec2, 0, 512),
		vel:     make([]dynamo.Vec2, 0, 512),
	}
}

// Spawn creates a particle and returns its handle.
func (s *Store) Spawn(pos, vel dynamo.Vec2) Handle {
	h := s.next
	s.next++

	s.index[h] = len(s.handles)
	s.handles = append(s.handles, h)
	s.pos = append(s.pos, pos)
	s.vel = append(s.vel, vel)
	return h
}

// Despawn removes a particle immediately. The last slot is moved into the
// hole, so slot order changes but stays deterministic.
func (s *Store) Despawn(h Handle) bool {
	i, ok := s.index[h]
	if !ok {
		return false
	}
	last := len(s.handles) - 1
	if i != last {
		moved := s.handles[last]
		s.handles[i] = moved
		s.pos[i] = s.pos[last]
		s.vel[i] = s.vel[last]
		s.index[moved] = i
	}
	s.handles = s.handles[:last]
	s.pos = s.pos[:last]
	s.vel = s.vel[:last]
	delete(s.index, h)
	return true
}

// DespawnBatch removes several particles in one compaction pass and returns
// how many were live. Surviving particles keep their relative order.
func (s *Store) DespawnBatch(hs []Handle) int {
	if len(hs) == 0 || len(s.handles) == 0 {
		return 0
	}

	toRemove := make(map[Handle]struct{}, len(hs))
	for _, h := range hs {
		if _, ok := s.index[h]; ok {
			toRemove[h] = struct{}{}
			delete(s.index, h)
		}
	}
	if len(toRemove) == 0 {
		return 0
	}

	w := 0
	for r, h := range s.handles {
		if _, gone := toRemove[h]; gone {
			continue
		}
		s.handles[w] = h
		s.pos[w] = s.pos[r]
		s.vel[w] = s.vel[r]
		s.index[h] = w
		w++
	}
	s.handles = s.handles[:w]
	s.pos = s.pos[:w]
	s.vel = s.vel[:w]
	return len(toRemove)
}

func (s *Store) Has(h Handle) bool {
	_, ok := s.index[h]
	return ok
}

func (s *Store) Get(h Handle) (Particle, bool) {
	i, ok := s.index[h]
	if !ok {
		return Particle{}, false
	}
	return Particle{Handle: h, Pos: s.pos[i], Vel: s.vel[i]}, true
}

func (s *Store) SetVelocity(h Handle, v dynamo.Vec2) bool {
	i, ok := s.index[h]
	if ok {
		s.vel[i] = v
	}
	return ok
}

func (s *Store) SetPosition(h Handle, p dynamo.Vec2) bool {
	i, ok := s.index[h]
	if ok {
		s.pos[i] = p
	}
	return ok
}

func (s *Store) Len() int { return len(s.handles) }

// Handles, Positions and Velocities expose the dense slices. Slot i of each
// belongs to the same particle. They alias the store and are invalidated by
// Spawn and Despawn.
func (s *Store) Handles() []Handle { return s.handles }

func (s *Store) Positions() []dynamo.Vec2 { return s.pos }

func (s *Store) Velocities() []dynamo.Vec2 { return s.vel }

// Each visits every particle in slot order.
func (s *Store) Each(fn func(Particle)) {
	for i, h := range s.handles {
		fn(Particle{Handle: h, Pos: s.pos[i], Vel: s.vel[i]})
	}
}

// Clear removes all particles. Handle numbering continues.
func (s *Store) Clear() {
	s.index = make(map[Handle]int)
	s.handles = s.handles[:0]
	s.pos = s.pos[:0]
	s.vel = s.vel[:0]
}

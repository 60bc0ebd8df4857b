package world

// World is everything a tick acts on: the particle arena and at most one
// ship.
type World struct {
	Particles *Store
	ship      *Ship
}

func New() *World {
	return &World{Particles: NewStore()}
}

// Ship returns the ship, or false when none exists.
func (w *World) Ship() (*Ship, bool) {
	return w.ship, w.ship != nil
}

// SetShip places a ship, replacing any existing one.
func (w *World) SetShip(s Ship) {
	w.ship = &s
}

func (w *World) RemoveShip() {
	w.ship = nil
}

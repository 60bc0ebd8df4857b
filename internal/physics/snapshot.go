package physics

import "github.com/san-kum/shipwake/internal/dynamo"

// Snapshot is a read-only view of particle positions for one phase of a
// tick. Slot i matches slot i of the delta buffer.
type Snapshot struct {
	pos []dynamo.Vec2
}

func NewSnapshot(pos []dynamo.Vec2) Snapshot {
	return Snapshot{pos: pos}
}

func (s Snapshot) Len() int { return len(s.pos) }

func (s Snapshot) At(i int) dynamo.Vec2 { return s.pos[i] }

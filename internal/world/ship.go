package world

import (
	"math"

	"github.com/san-kum/shipwake/internal/dynamo"
)

// Ship is the steered body that pushes water aside. Heading is in radians,
// 0 faces +y and positive values turn counter-clockwise.
type Ship struct {
	Pos     dynamo.Vec2
	Heading float64
	// Spin is the heading rate carried between ticks by the aim spring.
	Spin float64
}

func (s Ship) Forward() dynamo.Vec2 {
	sin, cos := math.Sincos(s.Heading)
	return dynamo.Vec2{X: -sin, Y: cos}
}

func (s Ship) Right() dynamo.Vec2 {
	sin, cos := math.Sincos(s.Heading)
	return dynamo.Vec2{X: cos, Y: sin}
}

func (s Ship) Left() dynamo.Vec2 { return s.Right().Scale(-1) }

// Local maps ship-frame offsets (across = along right, along = along
// forward) to simulation coordinates.
func (s Ship) Local(across, along float64) dynamo.Vec2 {
	return s.Pos.Add(s.Right().Scale(across)).Add(s.Forward().Scale(along))
}

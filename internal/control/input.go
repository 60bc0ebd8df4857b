package control

import "github.com/san-kum/shipwake/internal/dynamo"

// Button is the state of a pointer button for one tick. Pressed is true only
// on the tick the button went down.
type Button struct {
	Pressed bool
	Held    bool
}

// Keys is the set of held steering keys.
type Keys struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
}

func (k Keys) Any() bool { return k.Forward || k.Back || k.Left || k.Right }

// Input is everything the host supplies for one tick.
type Input struct {
	Dt       float64
	Viewport dynamo.Viewport
	// Scale converts device units to viewport pixels (1 when they agree).
	Scale     float64
	Pointer   dynamo.Vec2
	Primary   Button
	Secondary Button
	Keys      Keys
	// Aim lets a held secondary button turn the ship toward the pointer.
	Aim bool
}

// DeviceToSim maps a device point (top-left origin, y down) to simulation
// coordinates (viewport center origin, y up).
func DeviceToSim(device dynamo.Vec2, vp dynamo.Viewport, scale float64) dynamo.Vec2 {
	if scale == 0 {
		scale = 1
	}
	return dynamo.Vec2{
		X: device.X*scale - vp.Width/2,
		Y: vp.Height/2 - device.Y*scale,
	}
}

// SimToDevice is the inverse of DeviceToSim.
func SimToDevice(sim dynamo.Vec2, vp dynamo.Viewport, scale float64) dynamo.Vec2 {
	if scale == 0 {
		scale = 1
	}
	return dynamo.Vec2{
		X: (sim.X + vp.Width/2) / scale,
		Y: (vp.Height/2 - sim.Y) / scale,
	}
}

// PointerSim is the pointer in simulation coordinates.
func (in Input) PointerSim() dynamo.Vec2 {
	return DeviceToSim(in.Pointer, in.Viewport, in.Scale)
}

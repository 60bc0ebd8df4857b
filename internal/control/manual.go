package control

import "github.com/san-kum/shipwake/internal/dynamo"

type ButtonID int

const (
	Primary ButtonID = iota
	Secondary
)

type Key int

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
)

// Manual latches raw host events between ticks and hands them out as one
// Input per tick. Repeated presses while a button is held do not fire again.
type Manual struct {
	viewport dynamo.Viewport
	scale    float64
	pointer  dynamo.Vec2
	held     [2]bool
	pressed  [2]bool
	keys     Keys
	aim      bool
}

func NewManual() *Manual {
	return &Manual{scale: 1, aim: true}
}

func (m *Manual) Resize(width, height float64) {
	m.viewport = dynamo.Viewport{Width: width, Height: height}
}

func (m *Manual) SetScale(scale float64) { m.scale = scale }

func (m *Manual) SetAim(on bool) { m.aim = on }

// MoveTo records the pointer in device coordinates.
func (m *Manual) MoveTo(x, y float64) {
	m.pointer = dynamo.Vec2{X: x, Y: y}
}

func (m *Manual) Press(b ButtonID) {
	if !m.held[b] {
		m.pressed[b] = true
	}
	m.held[b] = true
}

func (m *Manual) Release(b ButtonID) {
	m.held[b] = false
}

func (m *Manual) SetKey(k Key, held bool) {
	switch k {
	case KeyForward:
		m.keys.Forward = held
	case KeyBack:
		m.keys.Back = held
	case KeyLeft:
		m.keys.Left = held
	case KeyRight:
		m.keys.Right = held
	}
}

// SetKeys replaces the whole held set, for hosts that poll key state.
func (m *Manual) SetKeys(k Keys) { m.keys = k }

func (m *Manual) Keys() Keys { return m.keys }

// Next returns the input for a tick of length dt and clears press edges.
func (m *Manual) Next(dt float64) Input {
	in := Input{
		Dt:        dt,
		Viewport:  m.viewport,
		Scale:     m.scale,
		Pointer:   m.pointer,
		Primary:   Button{Pressed: m.pressed[Primary], Held: m.held[Primary]},
		Secondary: Button{Pressed: m.pressed[Secondary], Held: m.held[Secondary]},
		Keys:      m.keys,
		Aim:       m.aim,
	}
	m.pressed = [2]bool{}
	return in
}

package dynamo

import "math"

// Vec2 is a 2D vector in simulation units (origin at viewport center, y up).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

func (v Vec2) Len2() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Len() float64 { return math.Sqrt(v.Len2()) }

// Dist2 returns the squared distance between v and o.
func (v Vec2) Dist2(o Vec2) float64 { return v.Sub(o).Len2() }

func (v Vec2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Viewport is the host window size in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// Valid reports whether the viewport has a usable area. A zero viewport
// stands for "no window this tick".
func (vp Viewport) Valid() bool {
	return vp.Width > 0 && vp.Height > 0
}

// Bounds returns the confinement half-extents inset by margin.
func (vp Viewport) Bounds(margin float64) Bounds {
	if !vp.Valid() {
		return Bounds{}
	}
	return Bounds{
		XMax: vp.Width/2 - margin,
		YMax: vp.Height/2 - margin,
	}
}

// Bounds holds the half-extents of the box particles are pulled back into.
type Bounds struct {
	XMax float64
	YMax float64
}

func (b Bounds) Valid() bool { return b.XMax > 0 && b.YMax > 0 }

func (b Bounds) Contains(p Vec2) bool {
	return p.X >= -b.XMax && p.X <= b.XMax && p.Y >= -b.YMax && p.Y <= b.YMax
}

// Frame is the state of the field after a tick. Slices alias the live store
// and are only valid until the next mutation.
type Frame struct {
	Tick       int
	Time       float64
	Dt         float64
	Positions  []Vec2
	Velocities []Vec2
	Bounds     Bounds
	MaxSpeed   float64
}

type Metric interface {
	Name() string
	Observe(f *Frame)
	Value() float64
	Reset()
}

type Observer interface {
	OnTick(f *Frame)
}

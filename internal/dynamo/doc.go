// Package dynamo provides core primitives shared by the particle field.
//
// The package defines the small value types and interfaces every stage of a
// tick agrees on:
//
//   - [Vec2]: position, velocity and delta vectors
//   - [Viewport] and [Bounds]: window extents and the confinement box
//   - [Frame]: read-only view of the field handed to metrics and observers
//   - [Metric] and [Observer]: per-tick instrumentation
//
// # Example
//
//	vp := dynamo.Viewport{Width: 800, Height: 600}
//	b := vp.Bounds(20)
//	inside := b.Contains(dynamo.Vec2{X: 10, Y: -40})
//
// # Thread Safety
//
// Nothing here is synchronized. A tick owns the whole field while it runs.
package dynamo

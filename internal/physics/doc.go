// Package physics computes the velocity deltas that act on the water field.
//
// Every kernel reads a [Snapshot] of positions and accumulates into a
// caller-owned delta buffer, so no kernel ever observes a half-updated
// field:
//
//   - [Pairwise]: inverse-distance repulsion between particles
//   - [Confine]: soft walls outside the viewport bounds
//   - [ShipField]: hull repulsion sampled over a ship-local grid
//
// # Tick Order
//
//	deltas := make([]dynamo.Vec2, snap.Len())
//	physics.AccumulatePairwise(snap, dt, params, deltas)
//	physics.AccumulateConfinement(snap, bounds, dt, deltas)
//	// apply, damp, clamp ...
//	field := physics.NewShipField(ship, shipParams)
//	field.Accumulate(snap, dt, deltas)
package physics

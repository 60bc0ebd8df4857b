// Package control turns host input into changes to the world.
//
// Hosts describe one tick of input with [Input]; [Manual] builds it from raw
// press/release events so that button presses are edge triggered:
//
//   - [Spawner]: primary press spawns a particle, secondary press clears a radius
//   - [Pilot]: held keys steer the ship, secondary hold aims it at the pointer
//   - [SeedBatch]: the startup batch of particles
//
// # Usage
//
//	m := control.NewManual()
//	m.Resize(800, 600)
//	m.MoveTo(400, 300)
//	m.Press(control.Primary)
//	in := m.Next(1.0 / 60)
//	spawner.Apply(w.Particles, in)
//
// Device coordinates have their origin at the top-left with y down;
// [DeviceToSim] maps them to the centered, y-up simulation frame.
package control

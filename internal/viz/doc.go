// Package viz is the terminal host for shipwake.
//
// It runs the simulator inside a Bubble Tea program:
//
//   - [App]: preset menu and quick tuning screen
//   - [Model]: live view, mouse and keyboard input, metrics side panel
//   - [Canvas]: braille dot canvas the field is drawn on
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Left click  - Spawn a particle
//	Right click - Clear particles near the pointer
//	Right drag  - Turn the ship toward the pointer
//	W/A/S/D     - Steer the ship
//	Space       - Pause/Resume
//	R           - Reset to the startup batch
//	T           - Cycle color themes
//	?           - Show help overlay
//
// Each braille dot covers [DefaultWorldPerDot] world units, so the world
// viewport follows the terminal size.
package viz

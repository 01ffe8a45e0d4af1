// Package viz hosts the background animation in a terminal.
//
// The animation is drawn on a [surface.Braille] canvas, one Braille cell per
// 2x4 dots, inside a Bubble Tea program. Frames are driven by [TickScheduler],
// which flushes the engine's frame queue on every tea.Tick.
//
// # Key Bindings
//
//	T     - Toggle dark/light theme (persisted)
//	Space - Pause/Resume the animation
//	S     - Show links-per-frame graph
//	?     - Toggle full help
//	Q     - Quit
package viz

// Package field simulates the animated background: a pool of drifting,
// pulsing particles and a pool of falling glyph columns, plus the proximity
// pass that links nearby particles.
//
// All state lives in a [Scene]. Entities receive the Scene on every update
// and draw instead of reading globals, and every random draw comes from the
// Scene's seeded generator, so a seed fully determines a run.
//
//   - [Particle]: glowing dot with drift, triangular opacity pulse and wrap-around
//   - [DataColumn]: vertical run of glyphs that falls and respawns above the view
//   - [Linker]: O(n²) pass drawing faint lines between particles closer than a threshold
package field

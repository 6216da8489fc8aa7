// Package orbit provides the core types for two-body orbit integration.
//
// The package defines the phase-space state of an orbiting body and the
// equations of motion under inverse-square gravity:
//
//   - [State]: immutable (position, velocity) snapshot
//   - [System]: interface for the equations of motion (dS/dt = f(S))
//   - [TwoBody]: point mass orbiting a central mass at the origin
//   - [History]: ordered (time, state) samples from one integration run
//
// Units are chosen so that a unit-radius circular orbit has period 1,
// which fixes the gravitational parameter at GM = 4 pi^2.
//
// # Example
//
//	sys := orbit.NewTwoBody(orbit.GM)
//	s0 := orbit.Circular(sys.GM)
//	dot := sys.Derive(s0)
//
// # Degenerate states
//
// Derive is undefined at zero radius: the acceleration components come out
// NaN or Inf and are carried through subsequent arithmetic rather than
// trapped. Use [State.IsValid] to detect a degenerate sample.
package orbit

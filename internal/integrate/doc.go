// Package integrate provides fixed-step time integrators for orbit states.
//
// Three explicit methods are available, from the pedagogical baseline up:
//
//   - [Euler]: first order, one derivative evaluation per step
//   - [Midpoint]: second-order Runge-Kutta, two evaluations
//   - [RK4]: fourth-order Runge-Kutta, four evaluations
//
// All methods share the loop in [Integrate], which clamps the final step
// so the last sample lands exactly on the requested end time. A method
// contributes only its per-step stage math through the [Stepper]
// interface, so step-size and history-length behavior is identical across
// methods by construction.
package integrate

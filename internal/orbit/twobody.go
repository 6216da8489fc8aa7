package orbit

import "math"

// GM is the default gravitational parameter of the central mass, in units
// where a circular orbit of radius 1 has period 1.
const GM = 4 * math.Pi * math.Pi

// System is the right-hand side of an autonomous ODE over State.
type System interface {
	// Derive returns the time-derivative of s.
	Derive(s State) State
}

// TwoBody is a point mass orbiting a central mass fixed at the origin
// under inverse-square gravity.
type TwoBody struct {
	GM float64
}

// NewTwoBody returns a TwoBody with the given gravitational parameter.
// The parameter is threaded explicitly so tests can use alternate
// central masses without touching global state.
func NewTwoBody(gm float64) *TwoBody {
	return &TwoBody{GM: gm}
}

// Derive evaluates the equations of motion
//
//	xdot = u, ydot = v
//	udot = -GM x / r^3, vdot = -GM y / r^3
//
// At r = 0 the acceleration is non-finite; the NaN/Inf components are
// returned as-is and propagate through subsequent steps.
func (tb *TwoBody) Derive(s State) State {
	r := s.Radius()
	r3 := r * r * r
	return State{
		X: s.U,
		Y: s.V,
		U: -tb.GM * s.X / r3,
		V: -tb.GM * s.Y / r3,
	}
}

// Energy is the specific orbital energy v^2/2 - GM/r. It is conserved by
// the exact dynamics, so its drift over a run measures integration error.
func (tb *TwoBody) Energy(s State) float64 {
	v := s.Speed()
	return 0.5*v*v - tb.GM/s.Radius()
}

// AngularMomentum is the specific angular momentum x*v - y*u, the second
// conserved quantity of the two-body problem.
func (tb *TwoBody) AngularMomentum(s State) float64 {
	return s.X*s.V - s.Y*s.U
}

// SemiMajorAxis derives the osculating semi-major axis from the energy.
// Unbound states (non-negative energy) give a non-positive or infinite
// result.
func (tb *TwoBody) SemiMajorAxis(s State) float64 {
	return -tb.GM / (2 * tb.Energy(s))
}

// Period is the Keplerian orbital period of the osculating ellipse.
func (tb *TwoBody) Period(s State) float64 {
	a := tb.SemiMajorAxis(s)
	return 2 * math.Pi * math.Sqrt(a*a*a/tb.GM)
}

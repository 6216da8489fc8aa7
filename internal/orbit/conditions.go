package orbit

import "math"

// Circular returns the initial state of a counter-rotating circular orbit
// of radius 1: the body starts on the y-axis moving in -x.
func Circular(gm float64) State {
	return State{X: 0, Y: 1, U: -math.Sqrt(gm), V: 0}
}

// Elliptical returns the initial state of an elliptical orbit with
// semi-major axis a and eccentricity e, starting at perihelion on the
// y-axis. e must be in [0, 1) for a bound orbit; the vis-viva speed at
// perihelion is sqrt(GM/a (1+e)/(1-e)).
func Elliptical(gm, a, e float64) State {
	return State{
		X: 0,
		Y: a * (1 - e),
		U: -math.Sqrt(gm / a * (1 + e) / (1 - e)),
		V: 0,
	}
}

// CircularSolution is the exact solution of the unit-radius circular
// orbit started from Circular(gm), evaluated at time t. Used as the
// reference when measuring integration error.
func CircularSolution(gm, t float64) State {
	w := math.Sqrt(gm)
	return State{
		X: -math.Sin(w * t),
		Y: math.Cos(w * t),
		U: -w * math.Cos(w*t),
		V: -w * math.Sin(w*t),
	}
}

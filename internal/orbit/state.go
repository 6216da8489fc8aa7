package orbit

import (
	"fmt"
	"math"
)

// State is the instantaneous phase-space snapshot of the orbiting body:
// position (X, Y) and velocity (U, V).
//
// State is an immutable value. Every operation returns a new State and
// never modifies its operands, so a History can retain every past sample
// without risk of retroactive corruption. Non-finite components are
// carried, not rejected.
type State struct {
	X, Y float64
	U, V float64
}

// Add returns the component-wise sum of s and other.
func (s State) Add(other State) State {
	return State{
		X: s.X + other.X,
		Y: s.Y + other.Y,
		U: s.U + other.U,
		V: s.V + other.V,
	}
}

// Sub returns the component-wise difference s - other.
func (s State) Sub(other State) State {
	return State{
		X: s.X - other.X,
		Y: s.Y - other.Y,
		U: s.U - other.U,
		V: s.V - other.V,
	}
}

// Scale returns s with every component multiplied by k.
func (s State) Scale(k float64) State {
	return State{
		X: k * s.X,
		Y: k * s.Y,
		U: k * s.U,
		V: k * s.V,
	}
}

// Radius is the distance from the central mass at the origin.
func (s State) Radius() float64 {
	return math.Sqrt(s.X*s.X + s.Y*s.Y)
}

// Speed is the magnitude of the velocity.
func (s State) Speed() float64 {
	return math.Sqrt(s.U*s.U + s.V*s.V)
}

// IsValid reports whether every component is finite.
func (s State) IsValid() bool {
	for _, v := range [4]float64{s.X, s.Y, s.U, s.V} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) String() string {
	return fmt.Sprintf("%10.6f %10.6f %10.6f %10.6f", s.X, s.Y, s.U, s.V)
}

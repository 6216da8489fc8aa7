package integrate

import "github.com/san-kum/orbitlab/internal/orbit"

// Euler is the first-order explicit method: one derivative evaluation at
// the current state per step. Kept as the accuracy baseline.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }
func (e *Euler) Order() int   { return 1 }

func (e *Euler) Step(sys orbit.System, s orbit.State, tau float64) orbit.State {
	return s.Add(sys.Derive(s).Scale(tau))
}

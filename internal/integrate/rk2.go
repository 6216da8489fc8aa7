package integrate

import "github.com/san-kum/orbitlab/internal/orbit"

// Midpoint is the second-order Runge-Kutta method: a half step predicts
// the midpoint state, and the derivative there carries the full step.
type Midpoint struct{}

func NewMidpoint() *Midpoint {
	return &Midpoint{}
}

func (m *Midpoint) Name() string { return "rk2" }
func (m *Midpoint) Order() int   { return 2 }

func (m *Midpoint) Step(sys orbit.System, s orbit.State, tau float64) orbit.State {
	mid := s.Add(sys.Derive(s).Scale(0.5 * tau))
	return s.Add(sys.Derive(mid).Scale(tau))
}

package integrate

import "github.com/san-kum/orbitlab/internal/orbit"

// RK4 is the classical fourth-order Runge-Kutta method: four weighted
// stages, each evaluated at a trial state derived from the previous one.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }
func (r *RK4) Order() int   { return 4 }

func (r *RK4) Step(sys orbit.System, s orbit.State, tau float64) orbit.State {
	k1 := sys.Derive(s)
	k2 := sys.Derive(s.Add(k1.Scale(0.5 * tau)))
	k3 := sys.Derive(s.Add(k2.Scale(0.5 * tau)))
	k4 := sys.Derive(s.Add(k3.Scale(tau)))

	incr := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
	return s.Add(incr.Scale(tau / 6.0))
}

package integrate

import (
	"fmt"

	"github.com/san-kum/orbitlab/internal/orbit"
)

// Stepper advances a state by one step of size tau. Implementations hold
// no per-run state, so a single Stepper may serve concurrent runs.
type Stepper interface {
	Name() string
	// Order is the global order of accuracy: halving tau divides the
	// final error by about 2^Order.
	Order() int
	Step(sys orbit.System, s orbit.State, tau float64) orbit.State
}

// New resolves an integrator by name: "euler", "rk2" (or "midpoint"),
// "rk4".
func New(name string) (Stepper, error) {
	switch name {
	case "euler":
		return NewEuler(), nil
	case "rk2", "midpoint":
		return NewMidpoint(), nil
	case "rk4":
		return NewRK4(), nil
	}
	return nil, fmt.Errorf("unknown integrator: %s", name)
}

// Names lists the canonical integrator names.
func Names() []string {
	return []string{"euler", "rk2", "rk4"}
}

// Integrate marches s0 from t=0 to tend in nominal steps of tau and
// returns the full (time, state) history, initial condition included.
//
// The nominal step never changes, but when the next step would overshoot
// tend the effective step for that iteration shrinks to tend-t, so the
// final sample time equals tend exactly. When tau divides tend the
// history holds tend/tau + 1 samples.
//
// tau <= 0 or tend < tau is rejected with orbit.ErrInvalidParameter
// before any stepping occurs. The loop body itself cannot fail: a
// degenerate state (zero radius) propagates NaN through the remaining
// samples instead of raising an error.
func Integrate(sys orbit.System, st Stepper, s0 orbit.State, tau, tend float64) (*orbit.History, error) {
	if tau <= 0 {
		return nil, fmt.Errorf("%w: tau must be positive, got %g", orbit.ErrInvalidParameter, tau)
	}
	if tend < tau {
		return nil, fmt.Errorf("%w: tend %g is smaller than tau %g", orbit.ErrInvalidParameter, tend, tau)
	}

	hist := orbit.NewHistory(int(tend/tau) + 2)

	t := 0.0
	s := s0
	hist.Append(t, s)

	for i := 1; t < tend; i++ {
		// Track time as i*tau rather than accumulating, so a tau that
		// divides tend lands on it without a spurious rounding step.
		h := tau
		tn := float64(i) * tau
		if tn >= tend {
			h = tend - t
			tn = tend
		}

		s = st.Step(sys, s, h)
		t = tn
		hist.Append(t, s)
	}

	return hist, nil
}

package integrate

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/orbitlab/internal/orbit"
)

func steppers() []Stepper {
	return []Stepper{NewEuler(), NewMidpoint(), NewRK4()}
}

func TestIntegrateInvalidParameters(t *testing.T) {
	sys := orbit.NewTwoBody(orbit.GM)
	s0 := orbit.Circular(orbit.GM)

	tests := []struct {
		name      string
		tau, tend float64
	}{
		{"zero tau", 0, 1},
		{"negative tau", -0.1, 1},
		{"tend smaller than tau", 0.5, 0.25},
		{"negative tend", 0.1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hist, err := Integrate(sys, NewRK4(), s0, tt.tau, tt.tend)
			if !errors.Is(err, orbit.ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
			if hist != nil {
				t.Error("expected nil history on invalid parameters")
			}
		})
	}
}

func TestIntegrateFinalTimeExact(t *testing.T) {
	sys := orbit.NewTwoBody(orbit.GM)
	s0 := orbit.Circular(orbit.GM)

	// 0.3 does not divide 1: the last step must shrink to land on tend
	for _, st := range steppers() {
		hist, err := Integrate(sys, st, s0, 0.3, 1.0)
		if err != nil {
			t.Fatalf("%s: %v", st.Name(), err)
		}

		tend, _, err := hist.Final()
		if err != nil {
			t.Fatalf("%s: %v", st.Name(), err)
		}
		if tend != 1.0 {
			t.Errorf("%s: expected final time exactly 1.0, got %v", st.Name(), tend)
		}
		if hist.Len() != 5 { // ceil(1/0.3)+1
			t.Errorf("%s: expected 5 samples, got %d", st.Name(), hist.Len())
		}
	}
}

func TestIntegrateHistoryLength(t *testing.T) {
	sys := orbit.NewTwoBody(orbit.GM)
	s0 := orbit.Circular(orbit.GM)

	// tau divides tend: exactly tend/tau + 1 samples for every method
	for _, st := range steppers() {
		hist, err := Integrate(sys, st, s0, 0.1, 1.0)
		if err != nil {
			t.Fatalf("%s: %v", st.Name(), err)
		}
		if hist.Len() != 11 {
			t.Errorf("%s: expected 11 samples, got %d", st.Name(), hist.Len())
		}

		for i, tm := range hist.Times {
			if math.Abs(tm-float64(i)*0.1) > 1e-12 {
				t.Errorf("%s: sample %d at t=%v, expected %v", st.Name(), i, tm, float64(i)*0.1)
			}
		}
	}
}

func TestIntegrateNominalStepUnchangedAfterClamp(t *testing.T) {
	sys := orbit.NewTwoBody(orbit.GM)
	s0 := orbit.Circular(orbit.GM)

	// The clamp is local to the final step: a second run with the same
	// stepper must see the full nominal tau again.
	st := NewRK4()
	first, err := Integrate(sys, st, s0, 0.3, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Integrate(sys, st, s0, 0.3, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	if first.Len() != second.Len() {
		t.Fatalf("run lengths differ: %d vs %d", first.Len(), second.Len())
	}
	for i := range first.Times {
		if first.Times[i] != second.Times[i] {
			t.Errorf("sample %d: times differ: %v vs %v", i, first.Times[i], second.Times[i])
		}
		if first.States[i] != second.States[i] {
			t.Errorf("sample %d: states differ", i)
		}
	}
}

func TestIntegrateZeroStateDegeneracy(t *testing.T) {
	sys := orbit.NewTwoBody(orbit.GM)
	zero := orbit.State{}

	// Zero radius divides by zero in the force law. All methods share the
	// same loop, so all propagate NaN instead of failing.
	for _, st := range steppers() {
		hist, err := Integrate(sys, st, zero, 0.1, 1.0)
		if err != nil {
			t.Fatalf("%s: %v", st.Name(), err)
		}
		if hist.Len() != 11 {
			t.Fatalf("%s: expected 11 samples, got %d", st.Name(), hist.Len())
		}

		if hist.States[0] != zero {
			t.Errorf("%s: initial sample should be the zero state", st.Name())
		}

		_, s1 := hist.At(1)
		if !math.IsNaN(s1.U) || !math.IsNaN(s1.V) {
			t.Errorf("%s: expected NaN velocity after first step, got %v", st.Name(), s1)
		}

		for i := 2; i < hist.Len(); i++ {
			_, s := hist.At(i)
			if !math.IsNaN(s.X) || !math.IsNaN(s.Y) || !math.IsNaN(s.U) || !math.IsNaN(s.V) {
				t.Errorf("%s: expected all-NaN state at sample %d, got %v", st.Name(), i, s)
			}
		}
	}
}

func TestEulerZeroStateFirstStepPositions(t *testing.T) {
	sys := orbit.NewTwoBody(orbit.GM)

	// Euler's single stage uses only the current velocity for positions,
	// so one step after the zero state positions are still zero while the
	// velocities have already gone NaN.
	hist, err := Integrate(sys, NewEuler(), orbit.State{}, 0.1, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	_, s1 := hist.At(1)
	if s1.X != 0 || s1.Y != 0 {
		t.Errorf("expected zero positions after first step, got %v", s1)
	}
}

func TestRK4CircularOrbitClosure(t *testing.T) {
	sys := orbit.NewTwoBody(orbit.GM)
	s0 := orbit.Circular(orbit.GM)

	// One month per step, one full period: RK4 should come back close to
	// the starting point.
	hist, err := Integrate(sys, NewRK4(), s0, 1.0/12.0, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	tend, final, err := hist.Final()
	if err != nil {
		t.Fatal(err)
	}
	if tend != 1.0 {
		t.Errorf("expected final time 1.0, got %v", tend)
	}

	if d := final.Sub(s0).Radius(); d > 0.05 {
		t.Errorf("orbit did not close: final position off by %f", d)
	}
}

func positionError(t *testing.T, st Stepper, tau float64) float64 {
	t.Helper()

	sys := orbit.NewTwoBody(orbit.GM)
	hist, err := Integrate(sys, st, orbit.Circular(orbit.GM), tau, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	_, final, err := hist.Final()
	if err != nil {
		t.Fatal(err)
	}
	return final.Sub(orbit.CircularSolution(orbit.GM, 1.0)).Radius()
}

func TestConvergenceOrder(t *testing.T) {
	// Each method is probed inside its asymptotic regime. Euler needs very
	// small steps before the first-order rate shows on a full orbit: at
	// tau ~ 0.025 the error is still O(1) and halving barely helps, while
	// below ~0.0025 the measured reduction settles near 2x per halving.
	tests := []struct {
		st       Stepper
		taus     []float64
		minRatio float64
	}{
		{NewEuler(), []float64{0.0025, 0.00125, 0.000625}, 1.5},
		{NewMidpoint(), []float64{0.05, 0.025, 0.0125}, 2.5},
		{NewRK4(), []float64{0.1, 0.05, 0.025}, 6.0},
	}

	for _, tt := range tests {
		t.Run(tt.st.Name(), func(t *testing.T) {
			errs := make([]float64, len(tt.taus))
			for i, tau := range tt.taus {
				errs[i] = positionError(t, tt.st, tau)
			}

			for i := 1; i < len(errs); i++ {
				ratio := errs[i-1] / errs[i]
				if ratio < tt.minRatio {
					t.Errorf("halving tau from %g reduced error only %.2fx (want >= %.1fx): errs=%v",
						tt.taus[i-1], ratio, tt.minRatio, errs)
				}
			}
		})
	}
}

func TestConvergenceOrdering(t *testing.T) {
	// At the same step size higher-order methods must be more accurate.
	tau := 0.025
	euler := positionError(t, NewEuler(), tau)
	rk2 := positionError(t, NewMidpoint(), tau)
	rk4 := positionError(t, NewRK4(), tau)

	if !(rk4 < rk2 && rk2 < euler) {
		t.Errorf("expected rk4 < rk2 < euler, got %g %g %g", rk4, rk2, euler)
	}
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		st, err := New(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if st.Name() != name {
			t.Errorf("expected name %s, got %s", name, st.Name())
		}
	}

	if st, err := New("midpoint"); err != nil || st.Name() != "rk2" {
		t.Errorf("midpoint should alias rk2, got %v, %v", st, err)
	}

	if _, err := New("rk45"); err == nil {
		t.Error("expected error for unknown integrator")
	}
}

func TestSweep(t *testing.T) {
	sys := orbit.NewTwoBody(orbit.GM)
	s0 := orbit.Circular(orbit.GM)
	taus := []float64{0.1, 0.05, 0.025}

	results := Sweep(sys, NewRK4(), s0, taus, 1.0)
	if len(results) != len(taus) {
		t.Fatalf("expected %d results, got %d", len(taus), len(results))
	}

	for i, res := range results {
		if res.Tau != taus[i] {
			t.Errorf("result %d: expected tau %g, got %g", i, taus[i], res.Tau)
		}
		if res.Err != nil {
			t.Fatalf("result %d: %v", i, res.Err)
		}

		want := int(math.Round(1.0/taus[i])) + 1
		if res.History.Len() != want {
			t.Errorf("tau %g: expected %d samples, got %d", res.Tau, want, res.History.Len())
		}
	}
}

func TestSweepReportsInvalidTau(t *testing.T) {
	sys := orbit.NewTwoBody(orbit.GM)
	s0 := orbit.Circular(orbit.GM)

	results := Sweep(sys, NewEuler(), s0, []float64{0.1, -1}, 1.0)

	if results[0].Err != nil {
		t.Errorf("valid tau should succeed, got %v", results[0].Err)
	}
	if !errors.Is(results[1].Err, orbit.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for bad tau, got %v", results[1].Err)
	}
}

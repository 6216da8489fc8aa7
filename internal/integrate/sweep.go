package integrate

import (
	"sync"

	"github.com/san-kum/orbitlab/internal/orbit"
)

// SweepResult holds the outcome of one integration in a step-size sweep.
type SweepResult struct {
	Tau     float64
	History *orbit.History
	Err     error
}

// Sweep integrates the same initial state once per step size, each run in
// its own goroutine. Runs share nothing mutable: states are immutable
// values and every worker owns its output history, so no synchronization
// beyond the final join is needed. Results come back in tau order.
func Sweep(sys orbit.System, st Stepper, s0 orbit.State, taus []float64, tend float64) []SweepResult {
	results := make([]SweepResult, len(taus))

	var wg sync.WaitGroup
	for i, tau := range taus {
		wg.Add(1)
		go func(i int, tau float64) {
			defer wg.Done()
			hist, err := Integrate(sys, st, s0, tau, tend)
			results[i] = SweepResult{Tau: tau, History: hist, Err: err}
		}(i, tau)
	}
	wg.Wait()

	return results
}

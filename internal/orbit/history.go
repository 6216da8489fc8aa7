package orbit

// History is the ordered sequence of (time, state) samples produced by
// one integration run. Times and States are parallel slices; times are
// monotonically non-decreasing, start at 0 and end exactly at the
// requested end time. Consumers treat a History as read-only.
type History struct {
	Times  []float64
	States []State
}

// NewHistory returns an empty history with capacity for n samples.
func NewHistory(n int) *History {
	return &History{
		Times:  make([]float64, 0, n),
		States: make([]State, 0, n),
	}
}

// Append records one sample.
func (h *History) Append(t float64, s State) {
	h.Times = append(h.Times, t)
	h.States = append(h.States, s)
}

// Len is the number of samples.
func (h *History) Len() int {
	return len(h.Times)
}

// At returns the i-th sample.
func (h *History) At(i int) (float64, State) {
	return h.Times[i], h.States[i]
}

// Final returns the last sample, or ErrEmptyHistory if none exists.
func (h *History) Final() (float64, State, error) {
	if len(h.Times) == 0 {
		return 0, State{}, ErrEmptyHistory
	}
	n := len(h.Times) - 1
	return h.Times[n], h.States[n], nil
}

// Positions returns the x and y coordinates of every sample, in order.
// The slices are fresh copies for a renderer to consume.
func (h *History) Positions() (xs, ys []float64) {
	xs = make([]float64, len(h.States))
	ys = make([]float64, len(h.States))
	for i, s := range h.States {
		xs[i] = s.X
		ys[i] = s.Y
	}
	return xs, ys
}

// Component extracts one state component (0=x, 1=y, 2=u, 3=v) across all
// samples, for plotting against time.
func (h *History) Component(idx int) []float64 {
	out := make([]float64, len(h.States))
	for i, s := range h.States {
		switch idx {
		case 0:
			out[i] = s.X
		case 1:
			out[i] = s.Y
		case 2:
			out[i] = s.U
		case 3:
			out[i] = s.V
		}
	}
	return out
}

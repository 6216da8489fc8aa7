package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbitlab/internal/orbit"
)

var componentCaptions = [4]string{"x", "y", "u", "v"}

// ComponentPlot renders one state component against sample index as an
// ascii line graph.
func ComponentPlot(hist *orbit.History, idx int) string {
	if hist.Len() == 0 || idx < 0 || idx > 3 {
		return ""
	}
	return asciigraph.Plot(hist.Component(idx),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s vs time", componentCaptions[idx])),
	)
}

// RadiusPlot renders the radial distance from the central mass over the
// run, the quickest visual check of integration quality: a circular
// orbit should hold a flat line.
func RadiusPlot(hist *orbit.History) string {
	if hist.Len() == 0 {
		return ""
	}

	rs := make([]float64, hist.Len())
	for i, s := range hist.States {
		rs[i] = s.Radius()
	}
	return asciigraph.Plot(rs,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("radius vs time"),
	)
}

// OrbitPlot renders the trajectory in the orbital plane on a braille
// canvas, central mass at the center.
func OrbitPlot(hist *orbit.History, width, height int) string {
	c := NewCanvas(width, height)
	xs, ys := hist.Positions()
	c.DrawTrajectory(xs, ys)
	return c.String()
}

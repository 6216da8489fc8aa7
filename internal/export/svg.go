package export

import (
	"fmt"
	"os"
	"strings"
)

// Series is one trajectory to render: sample positions plus a legend
// label.
type Series struct {
	Label  string
	Xs, Ys []float64
}

// Colors assigned to series in order, repeating if needed.
var strokePalette = []string{
	"#00ff88", "#00bfff", "#ff5f87", "#ffd700", "#c792ea", "#ff8c42",
}

// TrajectoriesToSVG renders one or more orbit trajectories into a single
// SVG with a marker for the central mass at the origin. The viewport
// keeps equal aspect so circular orbits render as circles. Returns ""
// when there is nothing to draw.
func TrajectoriesToSVG(series []Series, width, height int) string {
	var points int
	for _, s := range series {
		points += len(s.Xs)
	}
	if points < 2 {
		return ""
	}

	// Bounds over all series and the origin, the central mass must stay
	// in frame.
	minX, maxX, minY, maxY := 0.0, 0.0, 0.0, 0.0
	for _, s := range series {
		for i := range s.Xs {
			if s.Xs[i] < minX {
				minX = s.Xs[i]
			}
			if s.Xs[i] > maxX {
				maxX = s.Xs[i]
			}
			if s.Ys[i] < minY {
				minY = s.Ys[i]
			}
			if s.Ys[i] > maxY {
				maxY = s.Ys[i]
			}
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1

	// Equal aspect: one scale for both axes, centered in the viewport.
	scale := float64(width) / (maxX - minX)
	if s := float64(height) / (maxY - minY); s < scale {
		scale = s
	}
	offX := (float64(width) - (maxX-minX)*scale) / 2
	offY := (float64(height) - (maxY-minY)*scale) / 2

	toPixel := func(x, y float64) (float64, float64) {
		px := offX + (x-minX)*scale
		py := float64(height) - offY - (y-minY)*scale
		return px, py
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// central mass
	cx, cy := toPixel(0, 0)
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="6" fill="#ffdd44"/>
`, cx, cy))

	for n, s := range series {
		stroke := strokePalette[n%len(strokePalette)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))
		for i := range s.Xs {
			px, py := toPixel(s.Xs[i], s.Ys[i])
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
			}
		}
		sb.WriteString("\"/>\n")

		if s.Label != "" {
			sb.WriteString(fmt.Sprintf(`<text x="12" y="%d" fill="%s" font-family="monospace" font-size="12">%s</text>
`, 20+16*n, stroke, s.Label))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// WriteSVG renders the series and writes the artifact to path.
func WriteSVG(path string, series []Series, width, height int) error {
	svg := TrajectoriesToSVG(series, width, height)
	if svg == "" {
		return fmt.Errorf("export: no trajectory data to render")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}

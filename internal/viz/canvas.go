package viz

import "strings"

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a terminal pixel grid backed by braille characters: each
// character cell holds 2x4 sub-pixels.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y). The canvas size in sub-pixels is
// (Width*2) x (Height*4); out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets every cell to the empty braille character.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

func (c *Canvas) String() string {
	var sb strings.Builder
	for _, row := range c.Grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DrawTrajectory maps the sample positions into the sub-pixel grid and
// lights them. Bounds are symmetric around the origin so the central
// mass sits at the canvas center, with equal scale on both axes.
func (c *Canvas) DrawTrajectory(xs, ys []float64) {
	if len(xs) == 0 {
		return
	}

	extent := 0.0
	for i := range xs {
		if v := abs(xs[i]); v > extent {
			extent = v
		}
		if v := abs(ys[i]); v > extent {
			extent = v
		}
	}
	if extent == 0 {
		extent = 1
	}
	extent *= 1.1

	pw := float64(c.Width * 2)
	ph := float64(c.Height * 4)
	scale := pw / (2 * extent)
	if s := ph / (2 * extent); s < scale {
		scale = s
	}

	for i := range xs {
		px := int(pw/2 + xs[i]*scale)
		py := int(ph/2 - ys[i]*scale)
		c.Set(px, py)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

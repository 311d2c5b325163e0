package chart

import "strings"

const (
	markerRune = '●'
	lineRune   = '·'
)

// RenderText rasterizes the geometry onto a rune grid for terminal
// output. One canvas pixel per cell, so callers should Map with
// terminal-sized width/height. Gaps stay blank columns; the line is
// drawn only inside segments.
func RenderText(g Geometry) string {
	if g.Width <= 0 || g.Height <= 0 {
		return ""
	}
	if g.Empty {
		return "(no data to chart)"
	}

	grid := make([][]rune, g.Height)
	for y := range grid {
		grid[y] = make([]rune, g.Width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	clamp := func(v, max int) int {
		if v < 0 {
			return 0
		}
		if v >= max {
			return max - 1
		}
		return v
	}
	set := func(x, y int, r rune) {
		x = clamp(x, g.Width)
		y = clamp(y, g.Height)
		// Real points win over interpolated line cells.
		if grid[y][x] == markerRune {
			return
		}
		grid[y][x] = r
	}

	for _, seg := range g.Segments {
		for i := 1; i < len(seg); i++ {
			a, b := seg[i-1], seg[i]
			steps := int(b.X) - int(a.X)
			for s := 1; s < steps; s++ {
				t := float64(s) / float64(steps)
				x := a.X + t*(b.X-a.X)
				y := a.Y + t*(b.Y-a.Y)
				set(int(x), int(y), lineRune)
			}
		}
	}
	for _, p := range g.Points {
		grid[clamp(int(p.Y), g.Height)][clamp(int(p.X), g.Width)] = markerRune
	}

	lines := make([]string, 0, g.Height+1)
	for _, row := range grid {
		lines = append(lines, strings.TrimRight(string(row), " "))
	}
	lines = append(lines, labelRow(g))
	return strings.Join(lines, "\n")
}

func labelRow(g Geometry) string {
	row := make([]rune, g.Width)
	for i := range row {
		row[i] = ' '
	}
	for _, s := range g.Slots {
		label := []rune(s.Label)
		start := int(s.X) - len(label)/2
		if start < 0 {
			start = 0
		}
		for i, r := range label {
			x := start + i
			if x >= g.Width {
				break
			}
			row[x] = r
		}
	}
	return strings.TrimRight(string(row), " ")
}

// Package chart maps a labeled, possibly sparse mood series into
// pixel-space geometry. It knows nothing about how the geometry is
// drawn; the CLI and TUI render its output.
package chart

import (
	"fmt"
	"strings"

	"moodline/internal/journal"
)

const (
	// DomainMin/DomainMax fix the value domain. Value 10 maps to the
	// top of the plot, value 1 to the bottom.
	DomainMin = 1.0
	DomainMax = 10.0
)

// Slot is one horizontal position. Every series index gets a slot,
// including gaps, so the time axis stays uniform.
type Slot struct {
	Index int
	Label string
	X     float64
}

// Point is one plotted value. Only indices with real data become
// points.
type Point struct {
	Index int
	X     float64
	Y     float64
	Value float64
	Band  journal.Band
}

// Geometry is the mapped chart. Segments holds runs of consecutive
// valid points; the line path never crosses a gap.
type Geometry struct {
	Width    int
	Height   int
	Padding  int
	Slots    []Slot
	Points   []Point
	Segments [][]Point
	// Band is the color band of the series mean, for single-color
	// renderers.
	Band journal.Band
	// Empty is set when no point has data: no path, no points, no dot.
	Empty bool
}

// Map lays out series on a width×height canvas with a uniform padding
// margin. Gap entries consume a horizontal slot but produce no point.
func Map(series []journal.SeriesPoint, width, height, padding int) Geometry {
	g := Geometry{Width: width, Height: height, Padding: padding}

	plotW := float64(width - 2*padding)
	plotH := float64(height - 2*padding)
	n := len(series)

	for i, sp := range series {
		x := float64(padding)
		if n > 1 {
			x += float64(i) * plotW / float64(n-1)
		} else {
			x += plotW / 2
		}
		g.Slots = append(g.Slots, Slot{Index: i, Label: sp.Label, X: x})
		if !sp.Valid {
			continue
		}
		y := float64(padding) + (DomainMax-sp.Value)/(DomainMax-DomainMin)*plotH
		g.Points = append(g.Points, Point{
			Index: i,
			X:     x,
			Y:     y,
			Value: sp.Value,
			Band:  journal.BandFor(sp.Value),
		})
	}

	if len(g.Points) == 0 {
		g.Empty = true
		return g
	}

	sum := 0.0
	for _, p := range g.Points {
		sum += p.Value
	}
	g.Band = journal.BandFor(sum / float64(len(g.Points)))

	var seg []Point
	for _, p := range g.Points {
		if len(seg) > 0 && p.Index != seg[len(seg)-1].Index+1 {
			g.Segments = append(g.Segments, seg)
			seg = nil
		}
		seg = append(seg, p)
	}
	g.Segments = append(g.Segments, seg)
	return g
}

// LinePath builds SVG-style path data for the connecting line. Each
// segment opens its own subpath, leaving visible gaps at missing
// indices. A single-point segment stays a dot (no L command).
func (g Geometry) LinePath() string {
	if g.Empty {
		return ""
	}
	var b strings.Builder
	for _, seg := range g.Segments {
		for i, p := range seg {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			fmt.Fprintf(&b, "%s%.1f %.1f ", cmd, p.X, p.Y)
		}
	}
	return strings.TrimSpace(b.String())
}

// AreaPath builds the fill path under the line. Single-point segments
// are suppressed rather than drawn as a zero-width sliver.
func (g Geometry) AreaPath() string {
	if g.Empty {
		return ""
	}
	base := float64(g.Height - g.Padding)
	var b strings.Builder
	for _, seg := range g.Segments {
		if len(seg) < 2 {
			continue
		}
		fmt.Fprintf(&b, "M%.1f %.1f ", seg[0].X, base)
		for _, p := range seg {
			fmt.Fprintf(&b, "L%.1f %.1f ", p.X, p.Y)
		}
		fmt.Fprintf(&b, "L%.1f %.1f Z ", seg[len(seg)-1].X, base)
	}
	return strings.TrimSpace(b.String())
}

package chart

import (
	"strings"
	"testing"

	"moodline/internal/journal"
)

func series(values ...float64) []journal.SeriesPoint {
	out := make([]journal.SeriesPoint, 0, len(values))
	for _, v := range values {
		p := journal.SeriesPoint{Label: "d", Value: v, Valid: v > 0}
		out = append(out, p)
	}
	return out
}

func TestGapSplitsSegments(t *testing.T) {
	// Day index 3 missing (marked by 0).
	g := Map(series(5, 6, 7, 0, 6, 5, 4), 80, 40, 4)

	if len(g.Slots) != 7 {
		t.Fatalf("slots=%d, want 7 (gap still consumes a slot)", len(g.Slots))
	}
	if len(g.Points) != 6 {
		t.Fatalf("points=%d, want 6", len(g.Points))
	}
	for _, p := range g.Points {
		if p.Index == 3 {
			t.Fatalf("gap index 3 was plotted")
		}
	}

	if len(g.Segments) != 2 {
		t.Fatalf("segments=%d, want 2 disjoint runs", len(g.Segments))
	}
	if len(g.Segments[0]) != 3 || len(g.Segments[1]) != 3 {
		t.Fatalf("segment sizes=%d,%d, want 3,3", len(g.Segments[0]), len(g.Segments[1]))
	}

	// Two subpaths: the line never crosses the gap.
	if got := strings.Count(g.LinePath(), "M"); got != 2 {
		t.Fatalf("line path has %d subpaths, want 2: %q", got, g.LinePath())
	}
}

func TestVerticalMappingInverted(t *testing.T) {
	g := Map(series(10, 1), 100, 50, 5)
	if len(g.Points) != 2 {
		t.Fatalf("points=%d, want 2", len(g.Points))
	}
	top, bottom := g.Points[0], g.Points[1]
	if top.Y != 5 {
		t.Fatalf("value 10 at y=%v, want top padding 5", top.Y)
	}
	if bottom.Y != 45 {
		t.Fatalf("value 1 at y=%v, want bottom %v", bottom.Y, 45.0)
	}
	if top.X >= bottom.X {
		t.Fatalf("x positions not increasing: %v >= %v", top.X, bottom.X)
	}
}

func TestEmptySeries(t *testing.T) {
	g := Map(series(0, 0, 0), 80, 40, 4)
	if !g.Empty {
		t.Fatalf("all-gap series not marked empty")
	}
	if len(g.Points) != 0 || len(g.Segments) != 0 {
		t.Fatalf("empty chart has points/segments")
	}
	if g.LinePath() != "" || g.AreaPath() != "" {
		t.Fatalf("empty chart emitted path data")
	}
	if len(g.Slots) != 3 {
		t.Fatalf("slots=%d, want 3 (axis stays uniform)", len(g.Slots))
	}
}

func TestSinglePointIsDotNotLine(t *testing.T) {
	g := Map(series(0, 7, 0), 80, 40, 4)
	if g.Empty {
		t.Fatalf("single valid point reported empty")
	}
	if len(g.Points) != 1 {
		t.Fatalf("points=%d, want 1", len(g.Points))
	}
	if strings.Contains(g.LinePath(), "L") {
		t.Fatalf("single point drew a line segment: %q", g.LinePath())
	}
	if g.AreaPath() != "" {
		t.Fatalf("single point drew an area sliver: %q", g.AreaPath())
	}
}

func TestBanding(t *testing.T) {
	cases := []struct {
		value float64
		want  journal.Band
	}{
		{3, journal.BandLow},
		{4, journal.BandLow},
		{5, journal.BandMid},
		{7, journal.BandMid},
		{8, journal.BandHigh},
	}
	for _, tc := range cases {
		g := Map(series(tc.value), 80, 40, 4)
		if g.Points[0].Band != tc.want {
			t.Fatalf("value %v band=%s, want %s", tc.value, g.Points[0].Band, tc.want)
		}
	}

	// Series band follows the mean of plotted values only.
	g := Map(series(8, 0, 9), 80, 40, 4)
	if g.Band != journal.BandHigh {
		t.Fatalf("series band=%s, want high (gap excluded from mean)", g.Band)
	}
}

func TestAreaPathClosesPerSegment(t *testing.T) {
	g := Map(series(5, 6, 0, 7, 8), 80, 40, 4)
	area := g.AreaPath()
	if got := strings.Count(area, "Z"); got != 2 {
		t.Fatalf("area path closes %d subpaths, want 2: %q", got, area)
	}
}

func TestRenderTextShowsGapColumns(t *testing.T) {
	g := Map(series(5, 0, 5), 30, 8, 0)
	text := RenderText(g)
	if text == "" {
		t.Fatalf("no output for valid chart")
	}
	if !strings.Contains(text, "●") {
		t.Fatalf("no markers rendered: %q", text)
	}

	empty := Map(series(0, 0), 30, 8, 0)
	if got := RenderText(empty); !strings.Contains(got, "no data") {
		t.Fatalf("empty chart render=%q, want explicit empty state", got)
	}
}

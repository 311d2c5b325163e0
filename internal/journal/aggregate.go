package journal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"moodline/internal/dateutil"
)

// Mean is an average with an explicit no-data state. Valid=false is
// never rendered as 0.0; callers show a distinct empty state.
type Mean struct {
	Value float64
	Valid bool
}

func meanOf(values []int) Mean {
	if len(values) == 0 {
		return Mean{}
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return Mean{Value: float64(sum) / float64(len(values)), Valid: true}
}

// Round1 rounds to one decimal for display.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func indexByDay(entries []Entry) map[string]Entry {
	byDay := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byDay[e.DayKey] = e
	}
	return byDay
}

// Streak counts consecutive calendar days with an entry, walking back
// from today. No entry today yields 0 regardless of older runs.
// Calendar-day granularity, not 24h elapsed time.
func Streak(entries []Entry, today time.Time) int {
	byDay := indexByDay(entries)
	streak := 0
	day := dateutil.Midnight(today)
	for {
		if _, ok := byDay[dateutil.DayKey(day)]; !ok {
			return streak
		}
		streak++
		day = dateutil.AddDays(day, -1)
	}
}

// WindowAverage is the mean overall mood across entries whose day key
// falls within [today-windowDays, today], inclusive of today.
func WindowAverage(entries []Entry, today time.Time, windowDays int) Mean {
	start := dateutil.AddDays(today, -windowDays)
	end := dateutil.Midnight(today)
	var moods []int
	for _, e := range entries {
		day, err := dateutil.ParseDayKey(e.DayKey)
		if err != nil {
			continue
		}
		if day.Before(start) || day.After(end) {
			continue
		}
		moods = append(moods, e.Mood)
	}
	return meanOf(moods)
}

// AttributeAverage is one attribute's mean across the whole scope.
type AttributeAverage struct {
	Attribute Attribute
	Mean      Mean
	// Percent is mean/10*100, used for bar widths. 0 when Mean is
	// empty.
	Percent float64
}

// AttributeAverages computes per-attribute means across the entire
// entry set (not window-limited), in display order.
func AttributeAverages(entries []Entry) []AttributeAverage {
	out := make([]AttributeAverage, 0, len(Attributes))
	for _, a := range Attributes {
		var values []int
		for _, e := range entries {
			values = append(values, e.Attrs.Value(a))
		}
		m := meanOf(values)
		avg := AttributeAverage{Attribute: a, Mean: m}
		if m.Valid {
			avg.Percent = m.Value / float64(MoodMax) * 100
		}
		out = append(out, avg)
	}
	return out
}

// BandCount is one time-of-day bucket's entry count.
type BandCount struct {
	Band  dateutil.Band
	Count int
}

// TimeOfDayDistribution buckets entries by submission hour. Entries
// without a recorded clock are excluded, not counted as night.
func TimeOfDayDistribution(entries []Entry) []BandCount {
	counts := map[dateutil.Band]int{}
	for _, e := range entries {
		hour, ok := e.ClockHour()
		if !ok {
			continue
		}
		counts[dateutil.BandForHour(hour)]++
	}
	out := make([]BandCount, 0, len(dateutil.Bands))
	for _, b := range dateutil.Bands {
		out = append(out, BandCount{Band: b, Count: counts[b]})
	}
	return out
}

// Granularity selects the period bucketing for a chart series.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

func (g Granularity) IsValid() bool {
	switch g {
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
		return true
	default:
		return false
	}
}

func ParseGranularity(input string) (Granularity, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	g := Granularity(s)
	if !g.IsValid() {
		return "", fmt.Errorf("invalid granularity: %q", input)
	}
	return g, nil
}

// SeriesPoint is one chart bucket. Valid=false marks an empty bucket;
// the gap is preserved all the way into chart geometry, never
// defaulted to a midpoint value.
type SeriesPoint struct {
	Label string
	Value float64
	Valid bool
}

// Series builds the period-bucketed mood series for charting,
// oldest to newest.
func Series(entries []Entry, today time.Time, g Granularity) ([]SeriesPoint, error) {
	switch g {
	case GranularityDaily:
		return dailySeries(entries, today), nil
	case GranularityWeekly:
		return weeklySeries(entries, today), nil
	case GranularityMonthly:
		return monthlySeries(entries, today), nil
	default:
		return nil, fmt.Errorf("invalid granularity: %q", g)
	}
}

// dailySeries covers the last 7 calendar days; a missing day is a gap,
// not a zero.
func dailySeries(entries []Entry, today time.Time) []SeriesPoint {
	byDay := indexByDay(entries)
	out := make([]SeriesPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := dateutil.AddDays(today, -i)
		p := SeriesPoint{Label: day.Format("Mon")}
		if e, ok := byDay[dateutil.DayKey(day)]; ok {
			p.Value = float64(e.Mood)
			p.Valid = true
		}
		out = append(out, p)
	}
	return out
}

// weeklySeries covers 4 trailing 7-day windows ending today.
func weeklySeries(entries []Entry, today time.Time) []SeriesPoint {
	out := make([]SeriesPoint, 0, 4)
	for w := 3; w >= 0; w-- {
		end := dateutil.AddDays(today, -7*w)
		start := dateutil.AddDays(end, -6)
		label := fmt.Sprintf("%dw ago", w)
		if w == 0 {
			label = "This week"
		}
		var moods []int
		for _, e := range entries {
			day, err := dateutil.ParseDayKey(e.DayKey)
			if err != nil {
				continue
			}
			if day.Before(start) || day.After(end) {
				continue
			}
			moods = append(moods, e.Mood)
		}
		m := meanOf(moods)
		out = append(out, SeriesPoint{Label: label, Value: m.Value, Valid: m.Valid})
	}
	return out
}

// monthlySeries covers the last 6 calendar months by month boundary,
// not rolling 30-day windows.
func monthlySeries(entries []Entry, today time.Time) []SeriesPoint {
	type monthKey struct {
		year  int
		month time.Month
	}
	moods := map[monthKey][]int{}
	for _, e := range entries {
		day, err := dateutil.ParseDayKey(e.DayKey)
		if err != nil {
			continue
		}
		k := monthKey{year: day.Year(), month: day.Month()}
		moods[k] = append(moods[k], e.Mood)
	}

	out := make([]SeriesPoint, 0, 6)
	for i := 5; i >= 0; i-- {
		anchor := dateutil.AddMonths(today, -i)
		k := monthKey{year: anchor.Year(), month: anchor.Month()}
		m := meanOf(moods[k])
		out = append(out, SeriesPoint{
			Label: anchor.Format("Jan"),
			Value: m.Value,
			Valid: m.Valid,
		})
	}
	return out
}

// Stats is the bundle consumed by the stats and dashboard views.
type Stats struct {
	Weekly       Mean
	Monthly      Mean
	Streak       int
	Total        int
	Attributes   []AttributeAverage
	Distribution []BandCount
}

// ComputeStats recomputes every aggregate from the full entry set.
// Pull-based; nothing is cached.
func ComputeStats(entries []Entry, today time.Time) Stats {
	return Stats{
		Weekly:       WindowAverage(entries, today, 7),
		Monthly:      WindowAverage(entries, today, 30),
		Streak:       Streak(entries, today),
		Total:        len(entries),
		Attributes:   AttributeAverages(entries),
		Distribution: TimeOfDayDistribution(entries),
	}
}

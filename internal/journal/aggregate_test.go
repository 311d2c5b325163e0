package journal

import (
	"testing"
	"time"

	"moodline/internal/dateutil"
)

var testToday = time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

func daysAgo(n int) string {
	return dateutil.DayKey(dateutil.AddDays(testToday, -n))
}

func TestStreak(t *testing.T) {
	entries := []Entry{
		entryOn(daysAgo(0), 7),
		entryOn(daysAgo(1), 6),
		entryOn(daysAgo(2), 5),
	}
	if got := Streak(entries, testToday); got != 3 {
		t.Fatalf("streak=%d, want 3", got)
	}

	// No entry today: historical run does not count.
	noToday := []Entry{entryOn(daysAgo(1), 6), entryOn(daysAgo(2), 5)}
	if got := Streak(noToday, testToday); got != 0 {
		t.Fatalf("streak without today=%d, want 0", got)
	}

	// Gap at yesterday breaks the walk even with older entries.
	gapped := []Entry{entryOn(daysAgo(0), 7), entryOn(daysAgo(3), 5)}
	if got := Streak(gapped, testToday); got != 1 {
		t.Fatalf("streak with gap=%d, want 1", got)
	}

	if got := Streak(nil, testToday); got != 0 {
		t.Fatalf("empty streak=%d, want 0", got)
	}
}

func TestWindowAverage(t *testing.T) {
	moods := []int{8, 6, 9, 5, 7}
	var entries []Entry
	for i, m := range moods {
		entries = append(entries, entryOn(daysAgo(i), m))
	}
	got := WindowAverage(entries, testToday, 7)
	if !got.Valid {
		t.Fatalf("weekly average marked empty with 5 in-window entries")
	}
	if got.Value != 7.0 {
		t.Fatalf("weekly average=%v, want 7.0", got.Value)
	}

	// Entry outside the window is excluded.
	withOld := append(entries, entryOn(daysAgo(8), 1))
	got = WindowAverage(withOld, testToday, 7)
	if got.Value != 7.0 {
		t.Fatalf("weekly average with out-of-window entry=%v, want 7.0", got.Value)
	}

	empty := WindowAverage(nil, testToday, 7)
	if empty.Valid {
		t.Fatalf("empty window yielded a value, want no-data marker")
	}
	if empty.Value != 0 {
		t.Fatalf("empty marker carries value %v", empty.Value)
	}
}

func TestAttributeAverages(t *testing.T) {
	e1 := entryOn(daysAgo(0), 5)
	e1.Attrs = AttributeSet{Energy: 8, Sleep: 6, Stress: 4, Productivity: 10, Social: 2}
	e2 := entryOn(daysAgo(10), 5) // whole scope, not window-limited
	e2.Attrs = AttributeSet{Energy: 6, Sleep: 8, Stress: 6, Productivity: 4, Social: 4}

	avgs := AttributeAverages([]Entry{e1, e2})
	if len(avgs) != len(Attributes) {
		t.Fatalf("got %d attribute averages, want %d", len(avgs), len(Attributes))
	}
	byName := map[Attribute]AttributeAverage{}
	for _, a := range avgs {
		byName[a.Attribute] = a
	}
	if got := byName[AttributeEnergy].Mean.Value; got != 7.0 {
		t.Fatalf("energy avg=%v, want 7.0", got)
	}
	if got := byName[AttributeProductivity].Percent; got != 70.0 {
		t.Fatalf("productivity percent=%v, want 70.0", got)
	}

	for _, a := range AttributeAverages(nil) {
		if a.Mean.Valid {
			t.Fatalf("%s average valid on empty set", a.Attribute)
		}
	}
}

func TestTimeOfDayDistributionExcludesClockless(t *testing.T) {
	morning := entryOn(daysAgo(0), 5)
	morning.Clock = "08:30:00"
	night := entryOn(daysAgo(1), 5)
	night.Clock = "23:10:00"
	earlyNight := entryOn(daysAgo(2), 5)
	earlyNight.Clock = "03:00:00"
	clockless := entryOn(daysAgo(3), 5)

	dist := TimeOfDayDistribution([]Entry{morning, night, earlyNight, clockless})
	counts := map[dateutil.Band]int{}
	total := 0
	for _, bc := range dist {
		counts[bc.Band] = bc.Count
		total += bc.Count
	}
	if counts[dateutil.BandMorning] != 1 {
		t.Fatalf("morning=%d, want 1", counts[dateutil.BandMorning])
	}
	if counts[dateutil.BandNight] != 2 {
		t.Fatalf("night=%d, want 2", counts[dateutil.BandNight])
	}
	if total != 3 {
		t.Fatalf("total bucketed=%d, want 3 (clockless excluded)", total)
	}
}

func TestDailySeriesPreservesGaps(t *testing.T) {
	entries := []Entry{
		entryOn(daysAgo(6), 4),
		entryOn(daysAgo(5), 5),
		entryOn(daysAgo(4), 6),
		// daysAgo(3) missing
		entryOn(daysAgo(2), 7),
		entryOn(daysAgo(1), 8),
		entryOn(daysAgo(0), 9),
	}
	series, err := Series(entries, testToday, GranularityDaily)
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	if len(series) != 7 {
		t.Fatalf("series length=%d, want 7", len(series))
	}
	if series[3].Valid {
		t.Fatalf("missing day carries a value: %+v", series[3])
	}
	if series[0].Value != 4 || series[6].Value != 9 {
		t.Fatalf("series not oldest-to-newest: first=%v last=%v", series[0].Value, series[6].Value)
	}
}

func TestWeeklySeries(t *testing.T) {
	entries := []Entry{
		entryOn(daysAgo(0), 8),
		entryOn(daysAgo(3), 6),  // this week
		entryOn(daysAgo(10), 4), // 1 week ago
	}
	series, err := Series(entries, testToday, GranularityWeekly)
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	if len(series) != 4 {
		t.Fatalf("series length=%d, want 4", len(series))
	}
	this := series[3]
	if this.Label != "This week" || !this.Valid || this.Value != 7.0 {
		t.Fatalf("this week=%+v, want mean 7.0", this)
	}
	lastWeek := series[2]
	if lastWeek.Label != "1w ago" || !lastWeek.Valid || lastWeek.Value != 4.0 {
		t.Fatalf("1w ago=%+v, want value 4.0", lastWeek)
	}
	for _, p := range series[:2] {
		if p.Valid {
			t.Fatalf("empty window %q marked valid", p.Label)
		}
	}
}

func TestMonthlySeriesUsesCalendarBoundaries(t *testing.T) {
	// testToday is June 15. May 31 belongs to May's bucket even though
	// it is within a rolling 30 days of today.
	entries := []Entry{
		entryOn("2025-06-01", 8),
		entryOn("2025-05-31", 2),
	}
	series, err := Series(entries, testToday, GranularityMonthly)
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	if len(series) != 6 {
		t.Fatalf("series length=%d, want 6", len(series))
	}
	june := series[5]
	if june.Label != "Jun" || june.Value != 8.0 {
		t.Fatalf("june=%+v, want value 8.0", june)
	}
	may := series[4]
	if may.Label != "May" || may.Value != 2.0 {
		t.Fatalf("may=%+v, want value 2.0", may)
	}
	for _, p := range series[:4] {
		if p.Valid {
			t.Fatalf("empty month %q marked valid", p.Label)
		}
	}
}

func TestComputeStatsBundle(t *testing.T) {
	entries := []Entry{entryOn(daysAgo(0), 8), entryOn(daysAgo(1), 6)}
	stats := ComputeStats(entries, testToday)
	if stats.Total != 2 {
		t.Fatalf("total=%d, want 2", stats.Total)
	}
	if stats.Streak != 2 {
		t.Fatalf("streak=%d, want 2", stats.Streak)
	}
	if !stats.Weekly.Valid || stats.Weekly.Value != 7.0 {
		t.Fatalf("weekly=%+v, want 7.0", stats.Weekly)
	}
	if len(stats.Attributes) != len(Attributes) {
		t.Fatalf("attributes=%d, want %d", len(stats.Attributes), len(Attributes))
	}
}

package dateutil

import (
	"fmt"
	"math"
	"time"
)

const (
	// DayKeyLayout is the canonical YYYY-MM-DD key identifying one calendar day.
	DayKeyLayout = "2006-01-02"

	// ClockLayout is the wall-clock time recorded on an entry.
	ClockLayout = "15:04:05"
)

// DayKey formats t as a canonical day key in t's location.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDayKey parses a canonical day key into a midnight local time.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DayKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// ParseClock parses an HH:MM:SS wall-clock string.
func ParseClock(clock string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	return t, nil
}

// Midnight truncates t to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays moves t by n calendar days. Uses AddDate so DST shifts cannot
// skip or double a day the way 24h arithmetic can.
func AddDays(t time.Time, n int) time.Time {
	return Midnight(t).AddDate(0, 0, n)
}

// DaysBetween returns the number of calendar days from a to b
// (positive when b is after a). Rounded, so a DST-shortened day still
// counts as one day.
func DaysBetween(a, b time.Time) int {
	ma := Midnight(a)
	mb := Midnight(b)
	return int(math.Round(mb.Sub(ma).Hours() / 24))
}

// MonthStart returns the first day of t's calendar month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// AddMonths moves the month anchor by n calendar months.
func AddMonths(t time.Time, n int) time.Time {
	return MonthStart(t).AddDate(0, n, 0)
}

// Band is a fixed time-of-day bucket.
type Band string

const (
	BandMorning   Band = "morning"   // 05:00–11:59
	BandAfternoon Band = "afternoon" // 12:00–16:59
	BandEvening   Band = "evening"   // 17:00–20:59
	BandNight     Band = "night"     // 21:00–04:59
)

// Bands lists every band in display order.
var Bands = []Band{BandMorning, BandAfternoon, BandEvening, BandNight}

func (b Band) IsValid() bool {
	switch b {
	case BandMorning, BandAfternoon, BandEvening, BandNight:
		return true
	default:
		return false
	}
}

// BandForHour buckets an hour-of-day (0–23) into its band.
func BandForHour(hour int) Band {
	switch {
	case hour >= 5 && hour < 12:
		return BandMorning
	case hour >= 12 && hour < 17:
		return BandAfternoon
	case hour >= 17 && hour < 21:
		return BandEvening
	default:
		return BandNight
	}
}

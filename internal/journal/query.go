package journal

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"moodline/internal/dateutil"
)

// RangeFilter restricts history to a trailing date window.
type RangeFilter string

const (
	RangeAll   RangeFilter = "all"
	RangeWeek  RangeFilter = "7d"
	RangeMonth RangeFilter = "30d"
)

func (r RangeFilter) IsValid() bool {
	switch r {
	case RangeAll, RangeWeek, RangeMonth:
		return true
	default:
		return false
	}
}

func ParseRangeFilter(input string) (RangeFilter, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	r := RangeFilter(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid range filter: %q", input)
	}
	return r, nil
}

func (r RangeFilter) windowDays() (int, bool) {
	switch r {
	case RangeWeek:
		return 7, true
	case RangeMonth:
		return 30, true
	default:
		return 0, false
	}
}

// MoodFilter restricts history by overall mood band.
type MoodFilter string

const (
	MoodAny   MoodFilter = "any"
	MoodGood  MoodFilter = "good"  // mood >= 7
	MoodTough MoodFilter = "tough" // mood <= 4
)

func (m MoodFilter) IsValid() bool {
	switch m {
	case MoodAny, MoodGood, MoodTough:
		return true
	default:
		return false
	}
}

func ParseMoodFilter(input string) (MoodFilter, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	m := MoodFilter(s)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid mood filter: %q", input)
	}
	return m, nil
}

func (m MoodFilter) matches(mood int) bool {
	switch m {
	case MoodGood:
		return mood >= 7
	case MoodTough:
		return mood <= 4
	default:
		return true
	}
}

// Filter is a composable history predicate; supplied parts combine
// with AND. The zero value matches everything.
type Filter struct {
	Range RangeFilter
	Mood  MoodFilter
	// Search is a case-insensitive substring match over notes; empty
	// matches everything.
	Search string
}

// SortKey orders a history view.
type SortKey string

const (
	SortByDay  SortKey = "day"
	SortByMood SortKey = "mood"
)

func (k SortKey) IsValid() bool {
	switch k {
	case SortByDay, SortByMood:
		return true
	default:
		return false
	}
}

func ParseSortKey(input string) (SortKey, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	k := SortKey(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid sort key: %q", input)
	}
	return k, nil
}

type Sort struct {
	Key        SortKey
	Descending bool
}

// Query filters and sorts entries for a history view. The sort is
// stable: ties keep their input order. An empty result is valid and
// distinct from an error.
func Query(entries []Entry, today time.Time, f Filter, s Sort) []Entry {
	out := make([]Entry, 0, len(entries))
	search := strings.ToLower(strings.TrimSpace(f.Search))
	for _, e := range entries {
		if days, ok := f.Range.windowDays(); ok {
			day, err := dateutil.ParseDayKey(e.DayKey)
			if err != nil {
				continue
			}
			if day.Before(dateutil.AddDays(today, -days)) || day.After(dateutil.Midnight(today)) {
				continue
			}
		}
		if !f.Mood.matches(e.Mood) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Notes), search) {
			continue
		}
		out = append(out, e)
	}

	key := s.Key
	if !key.IsValid() {
		key = SortByDay
	}
	sort.SliceStable(out, func(i, j int) bool {
		var less bool
		switch key {
		case SortByMood:
			if out[i].Mood == out[j].Mood {
				return false
			}
			less = out[i].Mood < out[j].Mood
		default:
			if out[i].DayKey == out[j].DayKey {
				return false
			}
			less = out[i].DayKey < out[j].DayKey
		}
		if s.Descending {
			return !less
		}
		return less
	})
	return out
}

package journal

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"moodline/internal/dateutil"
)

const (
	// MoodMin/MoodMax bound the overall mood and every attribute rating.
	MoodMin = 1
	MoodMax = 10

	// NotesMaxLen is the soft cap on note length, enforced at the
	// boundary; the store itself never re-validates.
	NotesMaxLen = 200
)

type Attribute string

const (
	AttributeEnergy       Attribute = "energy"
	AttributeSleep        Attribute = "sleep"
	AttributeStress       Attribute = "stress"
	AttributeProductivity Attribute = "productivity"
	AttributeSocial       Attribute = "social"
)

// Attributes lists the five rated attributes in display order.
var Attributes = []Attribute{
	AttributeEnergy,
	AttributeSleep,
	AttributeStress,
	AttributeProductivity,
	AttributeSocial,
}

func (a Attribute) IsValid() bool {
	switch a {
	case AttributeEnergy, AttributeSleep, AttributeStress, AttributeProductivity, AttributeSocial:
		return true
	default:
		return false
	}
}

func ParseAttribute(input string) (Attribute, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	a := Attribute(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid attribute: %q", input)
	}
	return a, nil
}

// AttributeSet holds the five per-day ratings. All five are always
// present together; there is no partial set.
type AttributeSet struct {
	Energy       int
	Sleep        int
	Stress       int
	Productivity int
	Social       int
}

// Value returns the rating for the named attribute.
func (s AttributeSet) Value(a Attribute) int {
	switch a {
	case AttributeEnergy:
		return s.Energy
	case AttributeSleep:
		return s.Sleep
	case AttributeStress:
		return s.Stress
	case AttributeProductivity:
		return s.Productivity
	case AttributeSocial:
		return s.Social
	default:
		return 0
	}
}

// Entry is one mood record for one calendar day. At most one entry
// exists per day key within a scope; a later submission for the same
// day replaces the whole record.
type Entry struct {
	DayKey string
	// Clock is the HH:MM:SS submission time; empty when not recorded.
	// Used only for the time-of-day distribution, never for ordering.
	Clock string
	Mood  int
	Attrs AttributeSet
	Notes string
	// Owner tags the entry with its profile scope. Empty means
	// untagged (single-profile data).
	Owner string
}

// Validate checks an entry at the boundary. Stored entries are assumed
// valid.
func (e Entry) Validate() error {
	if _, err := dateutil.ParseDayKey(e.DayKey); err != nil {
		return err
	}
	if e.Clock != "" {
		if _, err := dateutil.ParseClock(e.Clock); err != nil {
			return err
		}
	}
	if e.Mood < MoodMin || e.Mood > MoodMax {
		return fmt.Errorf("mood %d out of range [%d,%d]", e.Mood, MoodMin, MoodMax)
	}
	for _, a := range Attributes {
		v := e.Attrs.Value(a)
		if v < MoodMin || v > MoodMax {
			return fmt.Errorf("%s %d out of range [%d,%d]", a, v, MoodMin, MoodMax)
		}
	}
	if utf8.RuneCountInString(e.Notes) > NotesMaxLen {
		return fmt.Errorf("notes exceed %d characters", NotesMaxLen)
	}
	return nil
}

// ClockHour returns the hour component of the recorded clock.
// ok is false when no clock was recorded.
func (e Entry) ClockHour() (int, bool) {
	if e.Clock == "" {
		return 0, false
	}
	t, err := dateutil.ParseClock(e.Clock)
	if err != nil {
		return 0, false
	}
	return t.Hour(), true
}

// Band is the mood color band shared by the stats and chart views.
type Band string

const (
	BandLow  Band = "low"  // mood <= 4
	BandMid  Band = "mid"  // mood <= 7
	BandHigh Band = "high" // mood > 7
)

// BandFor buckets a mood value (or a series mean) into its band.
func BandFor(value float64) Band {
	switch {
	case value <= 4:
		return BandLow
	case value <= 7:
		return BandMid
	default:
		return BandHigh
	}
}

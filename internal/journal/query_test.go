package journal

import "testing"

func TestFilterComposition(t *testing.T) {
	var entries []Entry
	for i := 0; i < 10; i++ {
		mood := 3
		if i%2 == 0 {
			mood = 8
		}
		entries = append(entries, entryOn(daysAgo(i), mood))
	}

	got := Query(entries, testToday,
		Filter{Range: RangeWeek, Mood: MoodGood},
		Sort{Key: SortByDay},
	)
	for _, e := range got {
		if e.Mood < 7 {
			t.Fatalf("mood filter leaked entry with mood %d", e.Mood)
		}
	}
	// In-window days are 0..7; even offsets among them are good.
	if len(got) != 4 {
		t.Fatalf("got %d entries, want 4", len(got))
	}

	none := Query(entries, testToday,
		Filter{Range: RangeWeek, Mood: MoodGood, Search: "nothing matches this"},
		Sort{Key: SortByDay},
	)
	if len(none) != 0 {
		t.Fatalf("got %d entries, want empty sequence", len(none))
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	e1 := entryOn(daysAgo(0), 5)
	e1.Notes = "Long WALK in the park"
	e2 := entryOn(daysAgo(1), 5)
	e2.Notes = "stayed in"

	got := Query([]Entry{e1, e2}, testToday, Filter{Search: "walk"}, Sort{Key: SortByDay})
	if len(got) != 1 || got[0].DayKey != e1.DayKey {
		t.Fatalf("search returned %d entries, want just the walk note", len(got))
	}

	// Empty search matches everything.
	all := Query([]Entry{e1, e2}, testToday, Filter{Search: "  "}, Sort{Key: SortByDay})
	if len(all) != 2 {
		t.Fatalf("empty search returned %d entries, want 2", len(all))
	}
}

func TestSortStableOnTies(t *testing.T) {
	a := entryOn(daysAgo(3), 7)
	a.Notes = "first"
	b := entryOn(daysAgo(1), 7)
	b.Notes = "second"
	c := entryOn(daysAgo(2), 9)

	got := Query([]Entry{a, b, c}, testToday, Filter{}, Sort{Key: SortByMood, Descending: true})
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	if got[0].Mood != 9 {
		t.Fatalf("first=%d, want 9", got[0].Mood)
	}
	// Equal moods keep input order.
	if got[1].Notes != "first" || got[2].Notes != "second" {
		t.Fatalf("tie order broken: %q then %q", got[1].Notes, got[2].Notes)
	}
}

func TestSortByDay(t *testing.T) {
	entries := []Entry{entryOn(daysAgo(0), 5), entryOn(daysAgo(2), 5), entryOn(daysAgo(1), 5)}

	asc := Query(entries, testToday, Filter{}, Sort{Key: SortByDay})
	for i := 1; i < len(asc); i++ {
		if asc[i-1].DayKey > asc[i].DayKey {
			t.Fatalf("ascending order broken at %d", i)
		}
	}

	desc := Query(entries, testToday, Filter{}, Sort{Key: SortByDay, Descending: true})
	for i := 1; i < len(desc); i++ {
		if desc[i-1].DayKey < desc[i].DayKey {
			t.Fatalf("descending order broken at %d", i)
		}
	}
}

func TestParseFilterInputs(t *testing.T) {
	if _, err := ParseRangeFilter("7D "); err != nil {
		t.Fatalf("ParseRangeFilter: %v", err)
	}
	if _, err := ParseRangeFilter("fortnight"); err == nil {
		t.Fatalf("expected error for unknown range")
	}
	if _, err := ParseMoodFilter("Good"); err != nil {
		t.Fatalf("ParseMoodFilter: %v", err)
	}
	if _, err := ParseSortKey("mood"); err != nil {
		t.Fatalf("ParseSortKey: %v", err)
	}
	if _, err := ParseGranularity("Weekly"); err != nil {
		t.Fatalf("ParseGranularity: %v", err)
	}
}

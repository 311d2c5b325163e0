package journal

import "testing"

func entryOn(day string, mood int) Entry {
	return Entry{
		DayKey: day,
		Mood:   mood,
		Attrs:  AttributeSet{Energy: 5, Sleep: 5, Stress: 5, Productivity: 5, Social: 5},
	}
}

func TestUpsertReplacesByDayKey(t *testing.T) {
	s := NewStore()

	first := entryOn("2025-01-01", 4)
	first.Notes = "rough start"
	s.Upsert(first)
	if s.Len() != 1 {
		t.Fatalf("len=%d, want 1", s.Len())
	}

	second := entryOn("2025-01-01", 8)
	second.Notes = "turned around"
	s.Upsert(second)
	if s.Len() != 1 {
		t.Fatalf("len after replace=%d, want 1", s.Len())
	}

	got, ok := s.Get("2025-01-01")
	if !ok {
		t.Fatalf("entry missing after upsert")
	}
	if got.Mood != 8 || got.Notes != "turned around" {
		t.Fatalf("got mood=%d notes=%q, want second submission", got.Mood, got.Notes)
	}

	s.Upsert(entryOn("2025-01-02", 6))
	if s.Len() != 2 {
		t.Fatalf("len after new day=%d, want 2", s.Len())
	}
}

func TestRemoveAndReset(t *testing.T) {
	s := NewStore()
	s.Upsert(entryOn("2025-01-01", 5))
	s.Upsert(entryOn("2025-01-02", 6))

	s.Remove("2025-01-01")
	if _, ok := s.Get("2025-01-01"); ok {
		t.Fatalf("entry still present after Remove")
	}
	if s.Len() != 1 {
		t.Fatalf("len=%d, want 1", s.Len())
	}

	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("len after reset=%d, want 0", s.Len())
	}
}

func TestAllReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Upsert(entryOn("2025-01-01", 5))

	all := s.All()
	all[0].Mood = 1

	got, _ := s.Get("2025-01-01")
	if got.Mood != 5 {
		t.Fatalf("store mutated through All() copy: mood=%d", got.Mood)
	}
}

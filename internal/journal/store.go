package journal

// Store is the in-memory mapping from day key to entry for one scope.
// Enumeration order is not an invariant; consumers sort before display.
type Store struct {
	entries map[string]Entry
}

func NewStore() *Store {
	return &Store{entries: map[string]Entry{}}
}

// Upsert inserts e under its day key, replacing any prior entry for
// that key. Whole-record replace; there are no partial updates.
func (s *Store) Upsert(e Entry) {
	s.entries[e.DayKey] = e
}

func (s *Store) Get(dayKey string) (Entry, bool) {
	e, ok := s.entries[dayKey]
	return e, ok
}

func (s *Store) Remove(dayKey string) {
	delete(s.entries, dayKey)
}

// All returns a copy of every entry in the scope, in no particular
// order.
func (s *Store) All() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	return out
}

func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) Reset() {
	s.entries = map[string]Entry{}
}

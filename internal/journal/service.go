package journal

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"moodline/internal/dateutil"
	"moodline/internal/storage"
)

// DefaultProfileName is the profile created on first use.
const DefaultProfileName = "You"

// Service wires the in-memory session to its persistence collaborator.
// All derived views recompute from the active scope's full entry set;
// nothing is cached.
type Service struct {
	db       *sql.DB
	profiles *storage.ProfileRepo
	entries  *storage.EntryRepo
	session  *Session
	loaded   bool
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:       db,
		profiles: storage.NewProfileRepo(db),
		entries:  storage.NewEntryRepo(db),
		session:  NewSession(),
	}
}

func (s *Service) Session() *Session { return s.session }

// SetWarnFunc routes session warnings (contamination drops) to the
// caller's output.
func (s *Service) SetWarnFunc(fn func(format string, args ...any)) {
	s.session.SetWarnFunc(fn)
}

// ensureLoaded hydrates the session from the database, creating the
// default profile on first use.
func (s *Service) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	rows, err := s.profiles.List(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		p, err := s.session.CreateProfile(DefaultProfileName, "🙂")
		if err != nil {
			return err
		}
		if err := s.profiles.Insert(ctx, &storage.Profile{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			AvatarGlyph: p.AvatarGlyph,
			CreatedAt:   p.CreatedAt,
			Active:      true,
		}); err != nil {
			return err
		}
		if err := s.session.SelectProfile(p.ID); err != nil {
			return err
		}
		s.loaded = true
		return nil
	}

	activeID := ""
	for _, row := range rows {
		entryRows, err := s.entries.ListByProfile(ctx, row.ID)
		if err != nil {
			return err
		}
		entries := make([]Entry, 0, len(entryRows))
		for _, er := range entryRows {
			entries = append(entries, entryFromRow(er))
		}
		if err := s.session.AddProfile(Profile{
			ID:          row.ID,
			DisplayName: row.DisplayName,
			AvatarGlyph: row.AvatarGlyph,
			CreatedAt:   row.CreatedAt,
		}, entries); err != nil {
			return err
		}
		if row.Active {
			activeID = row.ID
		}
	}
	if activeID == "" {
		activeID = rows[0].ID
	}
	if err := s.session.SelectProfile(activeID); err != nil {
		return err
	}
	s.loaded = true
	return nil
}

// LogResult reports a submitted entry.
type LogResult struct {
	Entry Entry
	// Replaced is set when the day already had an entry.
	Replaced bool
	Streak   int
}

// Log validates and submits an entry into the active scope, then
// persists it. The caller supplies the day key from its own clock.
func (s *Service) Log(ctx context.Context, e Entry) (*LogResult, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	p, ok := s.session.ActiveProfile()
	if !ok {
		return nil, ProfileError{Op: "log"}
	}
	e.Owner = p.ID

	store := s.session.Store()
	_, replaced := store.Get(e.DayKey)
	store.Upsert(e)

	row := entryToRow(e)
	if err := s.entries.Upsert(ctx, &row); err != nil {
		return nil, err
	}

	day, err := dateutil.ParseDayKey(e.DayKey)
	if err != nil {
		return nil, err
	}
	return &LogResult{
		Entry:    e,
		Replaced: replaced,
		Streak:   Streak(store.All(), day),
	}, nil
}

// Today returns the active scope's entry for the given day, for form
// pre-fill on revisit.
func (s *Service) Today(ctx context.Context, today time.Time) (Entry, bool, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return Entry{}, false, err
	}
	e, ok := s.session.Store().Get(dateutil.DayKey(today))
	return e, ok, nil
}

// History returns the filtered, sorted view of the active scope.
func (s *Service) History(ctx context.Context, today time.Time, f Filter, sortSpec Sort) ([]Entry, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return Query(s.session.Store().All(), today, f, sortSpec), nil
}

// Stats recomputes the statistics bundle for the active scope.
func (s *Service) Stats(ctx context.Context, today time.Time) (Stats, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return Stats{}, err
	}
	return ComputeStats(s.session.Store().All(), today), nil
}

// ChartSeries builds the period-bucketed series for the active scope.
func (s *Service) ChartSeries(ctx context.Context, today time.Time, g Granularity) ([]SeriesPoint, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return Series(s.session.Store().All(), today, g)
}

// CreateProfile registers and persists a new profile.
func (s *Service) CreateProfile(ctx context.Context, displayName, avatarGlyph string) (Profile, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return Profile{}, err
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return Profile{}, errors.New("display name is required")
	}
	p, err := s.session.CreateProfile(displayName, avatarGlyph)
	if err != nil {
		return Profile{}, err
	}
	if err := s.profiles.Insert(ctx, &storage.Profile{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		AvatarGlyph: p.AvatarGlyph,
		CreatedAt:   p.CreatedAt,
	}); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Profiles lists profiles in creation order.
func (s *Service) Profiles(ctx context.Context) ([]Profile, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.session.Profiles(), nil
}

// ActiveProfile returns the profile owning the active scope.
func (s *Service) ActiveProfile(ctx context.Context) (Profile, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return Profile{}, err
	}
	p, ok := s.session.ActiveProfile()
	if !ok {
		return Profile{}, ProfileError{Op: "active"}
	}
	return p, nil
}

// SelectProfile switches the active scope by profile ID or display
// name and records the selection.
func (s *Service) SelectProfile(ctx context.Context, ref string) (Profile, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return Profile{}, err
	}
	p, err := s.resolveProfile(ref)
	if err != nil {
		return Profile{}, err
	}
	if err := s.session.SelectProfile(p.ID); err != nil {
		return Profile{}, err
	}
	if err := s.profiles.SetActive(ctx, p.ID); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// DeleteProfile destroys a profile and its entire entry scope. When
// the active profile is deleted, the first remaining profile becomes
// active.
func (s *Service) DeleteProfile(ctx context.Context, ref string) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	p, err := s.resolveProfile(ref)
	if err != nil {
		return err
	}
	wasActive := false
	if active, ok := s.session.ActiveProfile(); ok && active.ID == p.ID {
		wasActive = true
	}
	if err := s.session.DeleteProfile(p.ID); err != nil {
		return err
	}
	if err := s.profiles.Delete(ctx, p.ID); err != nil {
		return err
	}
	if wasActive {
		if remaining := s.session.Profiles(); len(remaining) > 0 {
			if err := s.session.SelectProfile(remaining[0].ID); err != nil {
				return err
			}
			if err := s.profiles.SetActive(ctx, remaining[0].ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Service) resolveProfile(ref string) (Profile, error) {
	ref = strings.TrimSpace(ref)
	for _, p := range s.session.Profiles() {
		if p.ID == ref || strings.EqualFold(p.DisplayName, ref) {
			return p, nil
		}
	}
	return Profile{}, ProfileError{Op: "resolve", ID: ref}
}

func entryFromRow(row storage.Entry) Entry {
	return Entry{
		DayKey: row.DayKey,
		Clock:  row.Clock,
		Mood:   row.Mood,
		Attrs: AttributeSet{
			Energy:       row.Energy,
			Sleep:        row.Sleep,
			Stress:       row.Stress,
			Productivity: row.Productivity,
			Social:       row.Social,
		},
		Notes: row.Notes,
		Owner: row.ProfileID,
	}
}

func entryToRow(e Entry) storage.Entry {
	return storage.Entry{
		ProfileID:    e.Owner,
		DayKey:       e.DayKey,
		Clock:        e.Clock,
		Mood:         e.Mood,
		Energy:       e.Attrs.Energy,
		Sleep:        e.Attrs.Sleep,
		Stress:       e.Attrs.Stress,
		Productivity: e.Attrs.Productivity,
		Social:       e.Attrs.Social,
		Notes:        e.Notes,
	}
}

package journal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxProfiles caps concurrent profiles.
const MaxProfiles = 5

type Profile struct {
	ID          string
	DisplayName string
	AvatarGlyph string
	CreatedAt   time.Time
}

// Session holds the profile registry and the active scope's working
// set. The active store is a detached copy, not a live view into the
// scope table, so switching scopes must save the outgoing set before
// loading the incoming one.
type Session struct {
	profiles []Profile
	scopes   map[string][]Entry
	activeID string
	active   *Store

	// warnf reports recoverable conditions (cross-scope contamination).
	warnf func(format string, args ...any)
}

func NewSession() *Session {
	return &Session{
		scopes: map[string][]Entry{},
		active: NewStore(),
		warnf:  func(string, ...any) {},
	}
}

// SetWarnFunc installs a sink for warning output.
func (s *Session) SetWarnFunc(fn func(format string, args ...any)) {
	if fn != nil {
		s.warnf = fn
	}
}

func (s *Session) CreateProfile(displayName, avatarGlyph string) (Profile, error) {
	if len(s.profiles) >= MaxProfiles {
		return Profile{}, fmt.Errorf("profile limit reached (%d)", MaxProfiles)
	}
	p := Profile{
		ID:          uuid.NewString(),
		DisplayName: displayName,
		AvatarGlyph: avatarGlyph,
		CreatedAt:   time.Now(),
	}
	s.profiles = append(s.profiles, p)
	s.scopes[p.ID] = nil
	return p, nil
}

// AddProfile registers an existing profile (loaded from persistence)
// without minting a new ID.
func (s *Session) AddProfile(p Profile, entries []Entry) error {
	if len(s.profiles) >= MaxProfiles {
		return fmt.Errorf("profile limit reached (%d)", MaxProfiles)
	}
	s.profiles = append(s.profiles, p)
	s.scopes[p.ID] = entries
	return nil
}

// Profiles returns profiles in creation order.
func (s *Session) Profiles() []Profile {
	out := make([]Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

func (s *Session) findProfile(id string) (Profile, bool) {
	for _, p := range s.profiles {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// ActiveProfile returns the profile owning the active scope.
func (s *Session) ActiveProfile() (Profile, bool) {
	return s.findProfile(s.activeID)
}

// Store returns the active scope's working set.
func (s *Session) Store() *Store {
	return s.active
}

// SelectProfile switches the active scope. The outgoing scope's
// working set is saved back into the scope table first; skipping that
// save would silently drop its most recent writes.
func (s *Session) SelectProfile(id string) error {
	p, ok := s.findProfile(id)
	if !ok {
		return ProfileError{Op: "select", ID: id}
	}
	s.saveActive()
	s.activeID = p.ID
	s.loadActive(p.ID)
	return nil
}

// DeleteProfile destroys a profile and its entire entry scope. The
// active scope is untouched when id refers to a different profile.
func (s *Session) DeleteProfile(id string) error {
	if _, ok := s.findProfile(id); !ok {
		return ProfileError{Op: "delete", ID: id}
	}
	kept := s.profiles[:0]
	for _, p := range s.profiles {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.profiles = kept
	delete(s.scopes, id)
	if s.activeID == id {
		s.activeID = ""
		s.active = NewStore()
	}
	return nil
}

func (s *Session) saveActive() {
	if s.activeID == "" {
		return
	}
	s.scopes[s.activeID] = s.active.All()
}

func (s *Session) loadActive(id string) {
	s.active = NewStore()
	dropped := 0
	for _, e := range s.scopes[id] {
		if e.Owner != "" && e.Owner != id {
			dropped++
			continue
		}
		e.Owner = id
		s.active.Upsert(e)
	}
	if dropped > 0 {
		s.warnf("dropped %d entries tagged with a foreign profile while loading scope %s", dropped, id)
	}
}

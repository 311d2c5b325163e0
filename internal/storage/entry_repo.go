package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type EntryRepo struct {
	db *sql.DB
}

func NewEntryRepo(db *sql.DB) *EntryRepo {
	return &EntryRepo{db: db}
}

// Upsert replaces the whole record for (profile, day), matching the
// one-entry-per-day contract.
func (r *EntryRepo) Upsert(ctx context.Context, e *Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO entries (profile_id, day_key, clock, mood, energy, sleep, stress, productivity, social, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (profile_id, day_key) DO UPDATE SET
			clock = excluded.clock,
			mood = excluded.mood,
			energy = excluded.energy,
			sleep = excluded.sleep,
			stress = excluded.stress,
			productivity = excluded.productivity,
			social = excluded.social,
			notes = excluded.notes
	`, e.ProfileID, e.DayKey, e.Clock, e.Mood, e.Energy, e.Sleep, e.Stress, e.Productivity, e.Social, e.Notes)
	if err != nil {
		return fmt.Errorf("entry upsert: %w", err)
	}
	return nil
}

func (r *EntryRepo) Get(ctx context.Context, profileID, dayKey string) (*Entry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT profile_id, day_key, clock, mood, energy, sleep, stress, productivity, social, notes
		FROM entries
		WHERE profile_id = ? AND day_key = ?
	`, profileID, dayKey)
	var e Entry
	if err := row.Scan(&e.ProfileID, &e.DayKey, &e.Clock, &e.Mood, &e.Energy, &e.Sleep, &e.Stress, &e.Productivity, &e.Social, &e.Notes); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("entry get: %w", err)
	}
	return &e, nil
}

func (r *EntryRepo) ListByProfile(ctx context.Context, profileID string) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT profile_id, day_key, clock, mood, energy, sleep, stress, productivity, social, notes
		FROM entries
		WHERE profile_id = ?
	`, profileID)
	if err != nil {
		return nil, fmt.Errorf("entry list: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ProfileID, &e.DayKey, &e.Clock, &e.Mood, &e.Energy, &e.Sleep, &e.Stress, &e.Productivity, &e.Social, &e.Notes); err != nil {
			return nil, fmt.Errorf("entry scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("entry rows: %w", err)
	}
	return out, nil
}

func (r *EntryRepo) Delete(ctx context.Context, profileID, dayKey string) error {
	if _, err := r.db.ExecContext(ctx, `
		DELETE FROM entries WHERE profile_id = ? AND day_key = ?
	`, profileID, dayKey); err != nil {
		return fmt.Errorf("entry delete: %w", err)
	}
	return nil
}

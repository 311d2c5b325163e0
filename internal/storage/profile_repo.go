package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Insert(ctx context.Context, p *Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (id, display_name, avatar_glyph, created_at, active)
		VALUES (?, ?, ?, ?, ?)
	`, p.ID, p.DisplayName, p.AvatarGlyph, p.CreatedAt, boolInt(p.Active))
	if err != nil {
		return fmt.Errorf("profile insert: %w", err)
	}
	return nil
}

func (r *ProfileRepo) Get(ctx context.Context, id string) (*Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, display_name, avatar_glyph, created_at, active
		FROM profiles
		WHERE id = ?
	`, id)
	return scanProfile(row)
}

// GetActive returns the profile flagged active, or nil when none is.
func (r *ProfileRepo) GetActive(ctx context.Context) (*Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, display_name, avatar_glyph, created_at, active
		FROM profiles
		WHERE active = 1
		ORDER BY created_at
		LIMIT 1
	`)
	return scanProfile(row)
}

func (r *ProfileRepo) List(ctx context.Context) ([]Profile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, display_name, avatar_glyph, created_at, active
		FROM profiles
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("profile list: %w", err)
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		var p Profile
		var active int
		if err := rows.Scan(&p.ID, &p.DisplayName, &p.AvatarGlyph, &p.CreatedAt, &active); err != nil {
			return nil, fmt.Errorf("profile scan: %w", err)
		}
		p.Active = active != 0
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("profile rows: %w", err)
	}
	return out, nil
}

// SetActive flips the active flag to the given profile.
func (r *ProfileRepo) SetActive(ctx context.Context, id string) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `UPDATE profiles SET active = 0`); err != nil {
			return fmt.Errorf("profile clear active: %w", err)
		}
		res, err := tx.ExecContext(ctx, `UPDATE profiles SET active = 1 WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("profile set active: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("profile set active rows: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("profile %q not found", id)
		}
		return nil
	})
}

// Delete removes the profile and its entire entry scope.
func (r *ProfileRepo) Delete(ctx context.Context, id string) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE profile_id = ?`, id); err != nil {
			return fmt.Errorf("profile delete entries: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("profile delete: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("profile delete rows: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("profile %q not found", id)
		}
		return nil
	})
}

func (r *ProfileRepo) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("profile count: %w", err)
	}
	return n, nil
}

func scanProfile(row *sql.Row) (*Profile, error) {
	var p Profile
	var active int
	if err := row.Scan(&p.ID, &p.DisplayName, &p.AvatarGlyph, &p.CreatedAt, &active); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("profile get: %w", err)
	}
	p.Active = active != 0
	return &p, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

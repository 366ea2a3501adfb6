package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/fiveserver/fiveweb/internal/models"
)

// AccountSummary is one row of the paginated account browse.
type AccountSummary struct {
	Username string `json:"username"`
	Locked   bool   `json:"locked"`
	Nonce    string `json:"nonce,omitempty"`
}

// ProfileSummary is one row of the paginated profile browse.
type ProfileSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BrowseAccounts returns one page of accounts plus the total count.
func (s *Store) BrowseAccounts(ctx context.Context, offset, limit int) (int, []AccountSummary, error) {
	var total int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return 0, nil, err
	}

	q := `
	SELECT username, nonce
	FROM users
	ORDER BY username
	OFFSET $1 LIMIT $2
	`
	rows, err := s.pool.Query(ctx, q, offset, limit)
	if err != nil {
		return 0, nil, err
	}
	defer rows.Close()

	var out []AccountSummary
	for rows.Next() {
		var a AccountSummary
		var nonce *string
		if err := rows.Scan(&a.Username, &nonce); err != nil {
			return 0, nil, err
		}
		if nonce != nil {
			a.Locked = true
			a.Nonce = *nonce
		}
		out = append(out, a)
	}
	return total, out, rows.Err()
}

// BrowseProfiles returns one page of profiles plus the total count.
func (s *Store) BrowseProfiles(ctx context.Context, offset, limit int) (int, []ProfileSummary, error) {
	var total int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&total); err != nil {
		return 0, nil, err
	}

	q := `
	SELECT id, name
	FROM profiles
	ORDER BY id
	OFFSET $1 LIMIT $2
	`
	rows, err := s.pool.Query(ctx, q, offset, limit)
	if err != nil {
		return 0, nil, err
	}
	defer rows.Close()

	var out []ProfileSummary
	for rows.Next() {
		var p ProfileSummary
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return 0, nil, err
		}
		out = append(out, p)
	}
	return total, out, rows.Err()
}

// GetProfileByID returns one profile row, or (nil, nil) when absent.
func (s *Store) GetProfileByID(ctx context.Context, id int64) (*models.Profile, error) {
	return s.getProfile(ctx,
		`SELECT id, name, rank, points, rating, disconnects, COALESCE(play_time, 0)
		 FROM profiles WHERE id=$1`, id)
}

// GetProfileByName returns one profile row by name, or (nil, nil) when
// absent.
func (s *Store) GetProfileByName(ctx context.Context, name string) (*models.Profile, error) {
	return s.getProfile(ctx,
		`SELECT id, name, rank, points, rating, disconnects, COALESCE(play_time, 0)
		 FROM profiles WHERE name=$1`, name)
}

func (s *Store) getProfile(ctx context.Context, q string, arg any) (*models.Profile, error) {
	var p models.Profile
	err := s.pool.QueryRow(ctx, q, arg).Scan(
		&p.ID, &p.Name, &p.Rank, &p.Points, &p.Rating,
		&p.Disconnects, &p.PlayTimeSeconds,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

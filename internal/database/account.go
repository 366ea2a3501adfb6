package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fiveserver/fiveweb/internal/models"
)

// FindAccountByUsername returns the account with the exact username, or
// (nil, nil) when no such account exists.
func (s *Store) FindAccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	var a models.Account
	q := `
	SELECT id, username, serial, hash, nonce
	FROM users
	WHERE username=$1
	`
	err := s.pool.QueryRow(ctx, q, username).Scan(
		&a.ID, &a.Username, &a.Serial, &a.Hash, &a.LockNonce,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListProfilesByAccountID returns the account's profiles in insertion
// order. The returned order is the contract: the first row is the main
// profile.
func (s *Store) ListProfilesByAccountID(ctx context.Context, accountID int64) ([]models.Profile, error) {
	q := `
	SELECT id, name, rank, points, rating, disconnects, COALESCE(play_time, 0)
	FROM profiles
	WHERE user_id=$1
	ORDER BY id
	`
	rows, err := s.pool.Query(ctx, q, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.Rank, &p.Points, &p.Rating,
			&p.Disconnects, &p.PlayTimeSeconds); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// GetStreakByProfileID returns the profile's win-streak row, or
// (nil, nil) when the profile has none.
func (s *Store) GetStreakByProfileID(ctx context.Context, profileID int64) (*models.StreakRecord, error) {
	var r models.StreakRecord
	q := `SELECT wins, best FROM streaks WHERE profile_id=$1`
	err := s.pool.QueryRow(ctx, q, profileID).Scan(&r.Current, &r.Best)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetMatchAggregateByProfileID derives the profile's career counts in a
// single query. SUM over zero rows is NULL, hence the COALESCEs; a
// profile with no matches aggregates to all zeros.
func (s *Store) GetMatchAggregateByProfileID(ctx context.Context, profileID int64) (models.MatchAggregate, error) {
	var m models.MatchAggregate
	q := `
	SELECT
	    COUNT(*) AS played,
	    COALESCE(SUM(CASE
	        WHEN (mp.home AND m.score_home > m.score_away)
	          OR (NOT mp.home AND m.score_away > m.score_home) THEN 1
	        ELSE 0
	    END), 0) AS won,
	    COALESCE(SUM(CASE
	        WHEN m.score_home = m.score_away THEN 1
	        ELSE 0
	    END), 0) AS drawn,
	    COALESCE(SUM(CASE
	        WHEN (mp.home AND m.score_home < m.score_away)
	          OR (NOT mp.home AND m.score_away < m.score_home) THEN 1
	        ELSE 0
	    END), 0) AS lost,
	    COALESCE(SUM(CASE WHEN mp.home THEN m.score_home ELSE m.score_away END), 0) AS goals_for,
	    COALESCE(SUM(CASE WHEN mp.home THEN m.score_away ELSE m.score_home END), 0) AS goals_against
	FROM matches_played mp
	JOIN matches m ON mp.match_id = m.id
	WHERE mp.profile_id = $1
	`
	err := s.pool.QueryRow(ctx, q, profileID).Scan(
		&m.Played, &m.Won, &m.Drawn, &m.Lost, &m.GoalsFor, &m.GoalsAgainst,
	)
	if err != nil {
		return models.MatchAggregate{}, err
	}
	return m, nil
}

// LockAccount assigns a fresh lock nonce to the account and returns it.
func (s *Store) LockAccount(ctx context.Context, username, nonce string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE users SET nonce=$1 WHERE username=$2`, nonce, username)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no such account: %s", username)
	}
	return nil
}

// DeleteAccount removes the account row. Profile and match rows are
// kept so match history stays intact.
func (s *Store) DeleteAccount(ctx context.Context, username string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM users WHERE username=$1`, username)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no such account: %s", username)
	}
	return nil
}

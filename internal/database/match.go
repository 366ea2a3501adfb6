package database

import (
	"context"

	"github.com/fiveserver/fiveweb/internal/models"
)

// RecentMatches returns the newest matches with both player names
// resolved in one pass. A match missing a side (player deleted mid-way)
// reports "Unknown" for that side.
func (s *Store) RecentMatches(ctx context.Context, limit int) ([]models.MatchRecord, error) {
	q := `
	SELECT m.id, m.score_home, m.score_away, m.team_id_home, m.team_id_away, m.played_on,
	    COALESCE(MAX(CASE WHEN mp.home THEN p.name END), 'Unknown') AS home_player,
	    COALESCE(MAX(CASE WHEN NOT mp.home THEN p.name END), 'Unknown') AS away_player
	FROM matches m
	LEFT JOIN matches_played mp ON mp.match_id = m.id
	LEFT JOIN profiles p ON p.id = mp.profile_id
	GROUP BY m.id, m.score_home, m.score_away, m.team_id_home, m.team_id_away, m.played_on
	ORDER BY m.played_on DESC
	LIMIT $1
	`
	rows, err := s.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.MatchRecord
	for rows.Next() {
		var m models.MatchRecord
		if err := rows.Scan(&m.ID, &m.ScoreHome, &m.ScoreAway,
			&m.HomeTeamID, &m.AwayTeamID, &m.PlayedOn,
			&m.HomePlayer, &m.AwayPlayer); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

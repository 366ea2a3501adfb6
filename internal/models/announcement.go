package models

import "time"

// Announcement is a server-news entry shown on the landing page.
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// MatchRecord is one row of the public match history.
type MatchRecord struct {
	ID         int64      `json:"id"`
	HomePlayer string     `json:"homePlayer"`
	AwayPlayer string     `json:"awayPlayer"`
	ScoreHome  int        `json:"scoreHome"`
	ScoreAway  int        `json:"scoreAway"`
	HomeTeamID int        `json:"homeTeamId"`
	AwayTeamID int        `json:"awayTeamId"`
	PlayedOn   *time.Time `json:"playedOn"`
}

// OnlineUser is one entry of the presence snapshot published by the
// lobby process.
type OnlineUser struct {
	Username string `json:"username"`
	Profile  string `json:"profile,omitempty"`
	Lobby    string `json:"lobby,omitempty"`
	IP       string `json:"-"`
}

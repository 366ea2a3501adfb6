package models

// Account is a registered game account. Username is the unique lookup
// key and is case-preserving: the stored spelling is the one the client
// used at registration and the one token recomputation must use.
type Account struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Serial   string `json:"serial"`
	Hash     string `json:"-"`

	// LockNonce is set when an operator locks the account for a
	// password change; nil otherwise.
	LockNonce *string `json:"lock_nonce,omitempty"`
}

// Profile is one of an account's in-game player profiles.
type Profile struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Rank            int    `json:"rank"`
	Points          int    `json:"points"`
	Rating          int    `json:"rating"`
	Disconnects     int    `json:"disconnects"`
	PlayTimeSeconds int64  `json:"seconds_played"`
}

// StreakRecord holds a profile's consecutive-win counters.
type StreakRecord struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

// MatchAggregate is the summed match outcome counts for one profile.
// Played == Won + Drawn + Lost holds whenever the store computed the
// row; all fields are zero when the profile has no matches.
type MatchAggregate struct {
	Played       int `json:"played"`
	Won          int `json:"won"`
	Drawn        int `json:"drawn"`
	Lost         int `json:"lost"`
	GoalsFor     int `json:"goals_for"`
	GoalsAgainst int `json:"goals_against"`
}

// WinningPct returns the win percentage in [0,100], 0.0 for a profile
// with no matches.
func (m MatchAggregate) WinningPct() float64 {
	if m.Played == 0 {
		return 0.0
	}
	return float64(m.Won) / float64(m.Played) * 100.0
}

// GoalsForAvg returns goals scored per match, 0.0 when none played.
func (m MatchAggregate) GoalsForAvg() float64 {
	if m.Played == 0 {
		return 0.0
	}
	return float64(m.GoalsFor) / float64(m.Played)
}

// GoalsAgainstAvg returns goals conceded per match, 0.0 when none played.
func (m MatchAggregate) GoalsAgainstAvg() float64 {
	if m.Played == 0 {
		return 0.0
	}
	return float64(m.GoalsAgainst) / float64(m.Played)
}

// AccountStatsResponse bundles everything the account endpoint returns
// after a successful login: the echoed identity, every profile in
// storage order, and the detail/streak/aggregate sections for the main
// profile. The pointer sections stay nil when the account has no
// profiles.
type AccountStatsResponse struct {
	Username    string          `json:"username"`
	Serial      string          `json:"serial"`
	Profiles    []Profile       `json:"profiles"`
	MainProfile *Profile        `json:"profile,omitempty"`
	Streaks     *StreakRecord   `json:"streaks,omitempty"`
	Stats       *MatchAggregate `json:"stats,omitempty"`
}

// divisionBands maps rating points to the division shown on profile
// pages. Index 0 is the top division.
var divisionBands = []int{3000, 2200, 1600, 1100, 700}

// Division returns the division number (1 is highest) for a points
// total.
func Division(points int) int {
	for i, min := range divisionBands {
		if points >= min {
			return i + 1
		}
	}
	return len(divisionBands) + 1
}

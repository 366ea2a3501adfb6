// internal/handlers/profiles.go
package handlers

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/fiveserver/fiveweb/internal/database"
	"github.com/fiveserver/fiveweb/internal/models"
)

// ProfileStore is the slice of the database store the profile pages
// use.
type ProfileStore interface {
	BrowseProfiles(ctx context.Context, offset, limit int) (int, []database.ProfileSummary, error)
	GetProfileByID(ctx context.Context, id int64) (*models.Profile, error)
	GetProfileByName(ctx context.Context, name string) (*models.Profile, error)
	GetStreakByProfileID(ctx context.Context, profileID int64) (*models.StreakRecord, error)
	GetMatchAggregateByProfileID(ctx context.Context, profileID int64) (models.MatchAggregate, error)
}

// profileCareer is the stats block of the profile detail page.
type profileCareer struct {
	models.MatchAggregate
	StreakCurrent   int     `json:"winningStreakCurrent"`
	StreakBest      int     `json:"winningStreakBest"`
	WinningPct      float64 `json:"winningPct"`
	GoalsForAvg     float64 `json:"goalsScoredAverage"`
	GoalsAgainstAvg float64 `json:"goalsAllowedAverage"`
}

type profileDetail struct {
	models.Profile
	Division int           `json:"division"`
	Stats    profileCareer `json:"stats"`
}

// ListProfilesHandler serves GET /profiles, the paginated browse.
func ListProfilesHandler(logger *logrus.Logger, store ProfileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit := pageParams(r)
		total, profiles, err := store.BrowseProfiles(r.Context(), offset, limit)
		if err != nil {
			logger.WithError(err).Error("profile browse failed")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if profiles == nil {
			profiles = []database.ProfileSummary{}
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"total":    total,
			"offset":   offset,
			"limit":    limit,
			"profiles": profiles,
			"next":     fmt.Sprintf("/profiles?offset=%d&limit=%d", offset+limit, limit),
		})
	}
}

// ProfileDetailHandler serves GET /profiles/{id-or-name}: the full
// profile card with career stats, streaks, and derived averages. A
// numeric path segment is treated as an id, anything else as a profile
// name.
func ProfileDetailHandler(logger *logrus.Logger, store ProfileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(r.URL.Path, "/profiles/")
		if key == "" {
			http.Error(w, "missing profile", http.StatusBadRequest)
			return
		}

		var (
			profile *models.Profile
			err     error
		)
		if id, convErr := strconv.ParseInt(key, 10, 64); convErr == nil {
			profile, err = store.GetProfileByID(r.Context(), id)
		} else {
			profile, err = store.GetProfileByName(r.Context(), key)
		}
		if err != nil {
			logger.WithError(err).WithField("profile", key).Error("profile lookup failed")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if profile == nil {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}

		streak, err := store.GetStreakByProfileID(r.Context(), profile.ID)
		if err != nil {
			logger.WithError(err).Error("streak fetch failed")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if streak == nil {
			streak = &models.StreakRecord{}
		}

		agg, err := store.GetMatchAggregateByProfileID(r.Context(), profile.ID)
		if err != nil {
			logger.WithError(err).Error("match aggregate failed")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, profileDetail{
			Profile:  *profile,
			Division: models.Division(profile.Points),
			Stats: profileCareer{
				MatchAggregate:  agg,
				StreakCurrent:   streak.Current,
				StreakBest:      streak.Best,
				WinningPct:      round1(agg.WinningPct()),
				GoalsForAvg:     round2(agg.GoalsForAvg()),
				GoalsAgainstAvg: round2(agg.GoalsAgainstAvg()),
			},
		})
	}
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }

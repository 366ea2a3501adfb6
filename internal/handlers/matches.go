// internal/handlers/matches.go
package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/fiveserver/fiveweb/internal/models"
)

// MatchSource yields recent match history.
type MatchSource interface {
	RecentMatches(ctx context.Context, limit int) ([]models.MatchRecord, error)
}

// matchHistoryMaxLimit bounds the history page size.
const matchHistoryMaxLimit = 500

// MatchHistoryHandler serves GET /matches, newest first.
func MatchHistoryHandler(logger *logrus.Logger, src MatchSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 100
		if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= matchHistoryMaxLimit {
			limit = v
		}

		matches, err := src.RecentMatches(r.Context(), limit)
		if err != nil {
			logger.WithError(err).Error("match history query failed")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if matches == nil {
			matches = []models.MatchRecord{}
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"matches": matches,
			"total":   len(matches),
		})
	}
}

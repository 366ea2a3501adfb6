// internal/handlers/presence.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/fiveserver/fiveweb/internal/models"
)

// PresenceRegistry accepts presence reports from game server processes.
type PresenceRegistry interface {
	Heartbeat(ctx context.Context, u models.OnlineUser) error
	SignOff(ctx context.Context, username string) error
}

// heartbeatReport is the ingest shape of a presence report. It carries
// the client IP, which the public OnlineUser model deliberately never
// serializes.
type heartbeatReport struct {
	Username string `json:"username"`
	Profile  string `json:"profile"`
	Lobby    string `json:"lobby"`
	IP       string `json:"ip"`
}

// PresenceHeartbeatHandler ingests POST /presence/heartbeat reports. Game
// servers repost each connected user periodically; entries expire on their
// own if a server dies without signing its users off.
func PresenceHeartbeatHandler(logger *logrus.Logger, reg PresenceRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		if reg == nil {
			http.Error(w, "presence disabled", http.StatusServiceUnavailable)
			return
		}
		var report heartbeatReport
		if err := json.NewDecoder(r.Body).Decode(&report); err != nil || report.Username == "" {
			http.Error(w, "invalid presence report", http.StatusBadRequest)
			return
		}
		u := models.OnlineUser{
			Username: report.Username,
			Profile:  report.Profile,
			Lobby:    report.Lobby,
			IP:       report.IP,
		}
		if err := reg.Heartbeat(r.Context(), u); err != nil {
			logger.WithError(err).Error("presence heartbeat failed")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// PresenceSignOffHandler ingests POST /presence/signoff, removing a user
// from the online snapshot immediately.
func PresenceSignOffHandler(logger *logrus.Logger, reg PresenceRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		if reg == nil {
			http.Error(w, "presence disabled", http.StatusServiceUnavailable)
			return
		}
		var body struct {
			Username string `json:"username"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Username == "" {
			http.Error(w, "invalid presence report", http.StatusBadRequest)
			return
		}
		if err := reg.SignOff(r.Context(), body.Username); err != nil {
			logger.WithError(err).Error("presence signoff failed")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

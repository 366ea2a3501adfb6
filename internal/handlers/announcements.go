// internal/handlers/announcements.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/fiveserver/fiveweb/internal/announce"
	"github.com/fiveserver/fiveweb/internal/models"
)

// AnnouncementsHandler serves the public list: GET /announcements.
func AnnouncementsHandler(logger *logrus.Logger, store *announce.FileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := store.List()
		if err != nil {
			logger.WithError(err).Error("failed to read announcements")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if all == nil {
			all = []models.Announcement{}
		}
		writeJSON(w, http.StatusOK, all)
	}
}

// CreateAnnouncementHandler serves POST /admin/announcements. The
// response echoes the full list, matching what the admin frontend
// re-renders.
func CreateAnnouncementHandler(logger *logrus.Logger, store *announce.FileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var a models.Announcement
		if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
			http.Error(w, "invalid payload", http.StatusBadRequest)
			return
		}
		if a.Title == "" || a.Message == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing title or message"})
			return
		}

		if _, err := store.Add(a); err != nil {
			logger.WithError(err).Error("failed to store announcement")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		all, err := store.List()
		if err != nil {
			logger.WithError(err).Error("failed to re-read announcements")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, all)
	}
}

// DeleteAnnouncementHandler serves DELETE /admin/announcements/{id}.
func DeleteAnnouncementHandler(logger *logrus.Logger, store *announce.FileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		id := strings.TrimPrefix(r.URL.Path, "/admin/announcements/")
		if id == "" {
			http.Error(w, "missing announcement id", http.StatusBadRequest)
			return
		}
		if err := store.Remove(id); err != nil {
			if errors.Is(err, announce.ErrNotFound) {
				http.Error(w, "announcement not found", http.StatusNotFound)
				return
			}
			logger.WithError(err).Error("failed to delete announcement")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// internal/handlers/users.go
package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fiveserver/fiveweb/internal/database"
	"github.com/fiveserver/fiveweb/internal/models"
)

// AccountAdminStore is the slice of the database store the account
// admin endpoints use.
type AccountAdminStore interface {
	BrowseAccounts(ctx context.Context, offset, limit int) (int, []database.AccountSummary, error)
	LockAccount(ctx context.Context, username, nonce string) error
	DeleteAccount(ctx context.Context, username string) error
}

// PresenceSource yields the current online-users snapshot.
type PresenceSource interface {
	Snapshot(ctx context.Context) ([]models.OnlineUser, error)
}

// ListUsersHandler serves the paginated account browse.
func ListUsersHandler(logger *logrus.Logger, store AccountAdminStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit := pageParams(r)
		total, users, err := store.BrowseAccounts(r.Context(), offset, limit)
		if err != nil {
			logger.WithError(err).Error("account browse failed")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if users == nil {
			users = []database.AccountSummary{}
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"total":  total,
			"offset": offset,
			"limit":  limit,
			"users":  users,
			"next":   fmt.Sprintf("/users?offset=%d&limit=%d", offset+limit, limit),
		})
	}
}

// LockUserHandler assigns a lock nonce to an account so the operator
// can hand out a one-time password-change link.
func LockUserHandler(logger *logrus.Logger, store AccountAdminStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.FormValue("username")
		if username == "" {
			http.Error(w, "username parameter missing", http.StatusBadRequest)
			return
		}
		nonce := uuid.NewString()
		if err := store.LockAccount(r.Context(), username, nonce); err != nil {
			logger.WithError(err).WithField("username", username).Warn("account lock failed")
			http.Error(w, "unknown username", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":  true,
			"username": username,
			"nonce":    nonce,
		})
	}
}

// DeleteUserHandler removes an account.
func DeleteUserHandler(logger *logrus.Logger, store AccountAdminStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.FormValue("username")
		if username == "" {
			http.Error(w, "username parameter missing", http.StatusBadRequest)
			return
		}
		if err := store.DeleteAccount(r.Context(), username); err != nil {
			logger.WithError(err).WithField("username", username).Warn("account delete failed")
			http.Error(w, "unknown username", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":  true,
			"username": username,
			"deleted":  true,
		})
	}
}

// OnlineUsersHandler serves the presence snapshot. A nil source means
// presence is disabled and the endpoint reports an empty lobby.
func OnlineUsersHandler(logger *logrus.Logger, src PresenceSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users := []models.OnlineUser{}
		if src != nil {
			snapshot, err := src.Snapshot(r.Context())
			if err != nil {
				logger.WithError(err).Error("presence snapshot failed")
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			if snapshot != nil {
				users = snapshot
			}
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"count": len(users),
			"users": users,
		})
	}
}

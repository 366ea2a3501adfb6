// internal/handlers/account.go
package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/fiveserver/fiveweb/internal/account"
)

// AccountHandler serves GET /account: HTTP basic credentials in,
// profile statistics out. The game launcher and the web frontend both
// call this after login.
//
// The 401 deliberately omits WWW-Authenticate so browsers never pop a
// native auth dialog, and carries no hint about which part of the
// credentials failed.
func AccountHandler(logger *logrus.Logger, svc *account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// Absent credentials flow through the pipeline as empty strings
		// and come back Unauthorized, same as wrong ones.
		username, password, _ := r.BasicAuth()

		res := svc.HandleAccountRequest(r.Context(), username, password)
		switch res.Status {
		case account.StatusAuthenticated:
			writeJSON(w, http.StatusOK, res.Stats)
		case account.StatusUnauthorized:
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		default:
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	}
}

// internal/handlers/admin.go
package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/fiveserver/fiveweb/internal/auth"
	"github.com/fiveserver/fiveweb/internal/banned"
	"github.com/fiveserver/fiveweb/internal/settings"
)

// AdminCredentials is the operator login checked by /admin/login. Password
// may be either a plaintext secret or an Argon2id hash produced by
// auth.HashOperatorPassword.
type AdminCredentials struct {
	User     string
	Password string
}

// check compares submitted credentials in constant time.
func (c AdminCredentials) check(user, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(c.User)) == 1
	if auth.IsOperatorHash(c.Password) {
		passOK, err := auth.VerifyOperatorPassword(password, c.Password)
		return userOK && err == nil && passOK
	}
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	return userOK && passOK
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLoginHandler exchanges operator credentials for a session token,
// set as a cookie and echoed in the body.
func AdminLoginHandler(logger *logrus.Logger, sessions *auth.Sessions, creds AdminCredentials) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adminLoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request payload", http.StatusBadRequest)
			return
		}
		if !creds.check(req.Username, req.Password) {
			logger.WithField("username", req.Username).Warn("admin login rejected")
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		token, err := sessions.Issue(req.Username)
		if err != nil {
			logger.WithError(err).Error("failed to issue admin session")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     adminCookieName,
			Value:    token,
			HttpOnly: true,
			Path:     "/",
			MaxAge:   int(sessions.Expiry().Seconds()),
		})
		writeJSON(w, http.StatusOK, map[string]string{"token": token})
	}
}

// RequireAdmin gates a handler behind a valid admin session cookie.
func RequireAdmin(logger *logrus.Logger, sessions *auth.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractCookieToken(r.Header.Get("Cookie"), adminCookieName)
			if token == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			if _, err := sessions.Verify(token); err != nil {
				logger.WithError(err).Debug("admin session rejected")
				http.Error(w, "Not authorized", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// DebugHandler reads (GET) or toggles (POST) the debug-logging flag.
func DebugHandler(rt *settings.Runtime) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			switch r.FormValue("debug") {
			case "1", "true", "yes":
				rt.SetDebug(true)
			case "0", "false", "no":
				rt.SetDebug(false)
			}
		}
		writeJSON(w, http.StatusOK, map[string]bool{"debug": rt.Debug()})
	}
}

// MaxUsersHandler reads (GET) or updates (POST) the max-users setting.
// Out-of-range or unparseable values leave the setting untouched.
func MaxUsersHandler(rt *settings.Runtime) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if n, err := strconv.Atoi(r.FormValue("maxusers")); err == nil {
				rt.SetMaxUsers(n)
			}
		}
		writeJSON(w, http.StatusOK, map[string]int{"maxUsers": rt.MaxUsers()})
	}
}

// BannedHandler serves the banned-address list: GET lists, POST adds,
// DELETE removes. The entry comes from the "entry" form value (query
// string for DELETE).
func BannedHandler(logger *logrus.Logger, list *banned.List) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			entries := list.Entries()
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"banned": entries,
				"count":  len(entries),
			})
		case http.MethodPost, http.MethodDelete:
			entry := r.FormValue("entry")
			var err error
			if r.Method == http.MethodPost {
				err = list.Add(entry)
			} else {
				err = list.Remove(entry)
			}
			if err != nil {
				logger.WithError(err).Error("failed to update banned list")
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "entry": entry})
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

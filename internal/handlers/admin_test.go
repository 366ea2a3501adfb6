// internal/handlers/admin_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiveserver/fiveweb/internal/auth"
	"github.com/fiveserver/fiveweb/internal/banned"
	"github.com/fiveserver/fiveweb/internal/settings"
)

func newTestSessions(t *testing.T) *auth.Sessions {
	t.Helper()
	s, err := auth.NewSessions(time.Hour)
	require.NoError(t, err)
	return s
}

func TestAdminLoginIssuesCookie(t *testing.T) {
	sessions := newTestSessions(t)
	handler := AdminLoginHandler(quietLogger(), sessions, AdminCredentials{User: "admin", Password: "pw"})

	req := httptest.NewRequest("POST", "/admin/login",
		strings.NewReader(`{"username":"admin","password":"pw"}`))
	w := httptest.NewRecorder()
	handler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, adminCookieName, cookies[0].Name)

	operator, err := sessions.Verify(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "admin", operator)
}

func TestAdminLoginAcceptsHashedPassword(t *testing.T) {
	encoded, err := auth.HashOperatorPassword("pw")
	require.NoError(t, err)
	handler := AdminLoginHandler(quietLogger(), newTestSessions(t), AdminCredentials{User: "admin", Password: encoded})

	req := httptest.NewRequest("POST", "/admin/login",
		strings.NewReader(`{"username":"admin","password":"pw"}`))
	w := httptest.NewRecorder()
	handler(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// The encoded hash itself must not work as a password.
	req = httptest.NewRequest("POST", "/admin/login",
		strings.NewReader(`{"username":"admin","password":"`+encoded+`"}`))
	w = httptest.NewRecorder()
	handler(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	handler := AdminLoginHandler(quietLogger(), newTestSessions(t), AdminCredentials{User: "admin", Password: "pw"})

	req := httptest.NewRequest("POST", "/admin/login",
		strings.NewReader(`{"username":"admin","password":"nope"}`))
	w := httptest.NewRecorder()
	handler(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestRequireAdmin(t *testing.T) {
	sessions := newTestSessions(t)
	var reached bool
	gate := RequireAdmin(quietLogger(), sessions)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) { reached = true }))

	// Without a cookie.
	w := httptest.NewRecorder()
	gate.ServeHTTP(w, httptest.NewRequest("GET", "/users", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)

	// With a garbage cookie.
	req := httptest.NewRequest("GET", "/users", nil)
	req.Header.Set("Cookie", adminCookieName+"=garbage")
	w = httptest.NewRecorder()
	gate.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, reached)

	// With a valid session.
	token, err := sessions.Issue("admin")
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/users", nil)
	req.Header.Set("Cookie", adminCookieName+"="+token)
	w = httptest.NewRecorder()
	gate.ServeHTTP(w, req)
	assert.True(t, reached)
}

func postForm(handler http.HandlerFunc, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestDebugHandlerTogglesLoggerLevel(t *testing.T) {
	logger := quietLogger()
	rt := settings.New(logger, false, 100)
	handler := DebugHandler(rt)

	w := postForm(handler, "/admin/debug", url.Values{"debug": {"true"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, rt.Debug())
	assert.Contains(t, w.Body.String(), `"debug":true`)

	postForm(handler, "/admin/debug", url.Values{"debug": {"no"}})
	assert.False(t, rt.Debug())

	// Unrecognized values leave the flag alone.
	postForm(handler, "/admin/debug", url.Values{"debug": {"maybe"}})
	assert.False(t, rt.Debug())
}

func TestMaxUsersHandlerBounds(t *testing.T) {
	rt := settings.New(quietLogger(), false, 100)
	handler := MaxUsersHandler(rt)

	postForm(handler, "/admin/maxusers", url.Values{"maxusers": {"250"}})
	assert.Equal(t, 250, rt.MaxUsers())

	// Out of range and unparseable values keep the previous setting.
	postForm(handler, "/admin/maxusers", url.Values{"maxusers": {"100000"}})
	assert.Equal(t, 250, rt.MaxUsers())
	postForm(handler, "/admin/maxusers", url.Values{"maxusers": {"many"}})
	assert.Equal(t, 250, rt.MaxUsers())
}

func TestBannedHandler(t *testing.T) {
	list, err := banned.Load(filepath.Join(t.TempDir(), "banned.json"))
	require.NoError(t, err)
	handler := BannedHandler(quietLogger(), list)

	w := postForm(handler, "/admin/banned", url.Values{"entry": {"10.0.0.1"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, list.Match("10.0.0.1"))

	w = httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/admin/banned", nil))
	assert.Contains(t, w.Body.String(), "10.0.0.1")

	req := httptest.NewRequest("DELETE", "/admin/banned?entry=10.0.0.1", nil)
	w = httptest.NewRecorder()
	handler(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, list.Match("10.0.0.1"))
}

// internal/handlers/ws_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiveserver/fiveweb/internal/middleware"
	"github.com/fiveserver/fiveweb/internal/models"
)

type staticPresence struct {
	users []models.OnlineUser
}

func (s staticPresence) Snapshot(context.Context) ([]models.OnlineUser, error) {
	return s.users, nil
}

type onlineMessage struct {
	Type  string              `json:"type"`
	Count int                 `json:"count"`
	Users []models.OnlineUser `json:"users"`
}

// The feed must upgrade through the logging middleware, since that is
// how it is mounted in the server.
func TestOnlineWSUpgradesThroughLogMiddleware(t *testing.T) {
	src := staticPresence{users: []models.OnlineUser{
		{Username: "LinceNuevo", Profile: "Lince", Lobby: "main"},
	}}
	handler := middleware.LogMiddleware(quietLogger())(OnlineWSHandler(quietLogger(), src))
	server := httptest.NewServer(handler)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(server.URL, "http")+"/ws/online", nil)
	require.NoError(t, err)
	defer c.Close(websocket.StatusNormalClosure, "")

	_, data, err := c.Read(ctx)
	require.NoError(t, err)

	var msg onlineMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "online_users", msg.Type)
	assert.Equal(t, 1, msg.Count)
	require.Len(t, msg.Users, 1)
	assert.Equal(t, "LinceNuevo", msg.Users[0].Username)
}

func TestOnlineWSEmptyWithoutSource(t *testing.T) {
	server := httptest.NewServer(OnlineWSHandler(quietLogger(), nil))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	defer c.Close(websocket.StatusNormalClosure, "")

	_, data, err := c.Read(ctx)
	require.NoError(t, err)

	var msg onlineMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, 0, msg.Count)
	assert.NotNil(t, msg.Users)
	assert.Empty(t, msg.Users)
}

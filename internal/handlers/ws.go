// internal/handlers/ws.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"

	"github.com/fiveserver/fiveweb/internal/models"
)

// onlinePushInterval is how often the online-users feed re-sends its
// snapshot.
const onlinePushInterval = 5 * time.Second

// OnlineWSHandler serves GET /ws/online: a websocket that pushes the
// presence snapshot on connect and then every few seconds, so the
// frontend's who-is-online widget stays live without polling.
func OnlineWSHandler(logger *logrus.Logger, src PresenceSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // Adjust in production
		})
		if err != nil {
			logger.Warnf("websocket accept error: %v", err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "handler finished")

		ctx := r.Context()
		ticker := time.NewTicker(onlinePushInterval)
		defer ticker.Stop()

		for {
			if err := pushSnapshot(ctx, c, src); err != nil {
				logger.WithError(err).Debug("online feed closed")
				c.Close(websocket.StatusNormalClosure, "")
				return
			}
			select {
			case <-ctx.Done():
				c.Close(websocket.StatusGoingAway, "server shutting down")
				return
			case <-ticker.C:
			}
		}
	}
}

func pushSnapshot(ctx context.Context, c *websocket.Conn, src PresenceSource) error {
	users := []models.OnlineUser{}
	if src != nil {
		snapshot, err := src.Snapshot(ctx)
		if err != nil {
			return err
		}
		if snapshot != nil {
			users = snapshot
		}
	}

	data, err := json.Marshal(map[string]interface{}{
		"type":  "online_users",
		"count": len(users),
		"users": users,
	})
	if err != nil {
		return err
	}

	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return c.Write(writeCtx, websocket.MessageText, data)
}

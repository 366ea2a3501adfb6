// internal/presence/presence.go
package presence

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fiveserver/fiveweb/internal/models"
)

// keyPrefix namespaces presence hashes in redis.
const keyPrefix = "fiveweb:online:"

// entryTTL is how long an entry survives without a heartbeat. The lobby
// process heartbeats well inside this window; a crashed client simply
// ages out.
const entryTTL = 2 * time.Minute

// Registry is the shared online-users view. The lobby server writes
// heartbeats; this service reads snapshots for the public endpoints.
type Registry struct {
	rdb *redis.Client
}

// Connect opens the redis client and verifies connectivity.
func Connect(ctx context.Context, addr string, db int) (*Registry, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &Registry{rdb: rdb}, nil
}

// Heartbeat records (or refreshes) a user's presence.
func (r *Registry) Heartbeat(ctx context.Context, u models.OnlineUser) error {
	key := keyPrefix + u.Username
	fields := map[string]interface{}{
		"username": u.Username,
		"profile":  u.Profile,
		"lobby":    u.Lobby,
		"ip":       u.IP,
	}
	if err := r.rdb.HSet(ctx, key, fields).Err(); err != nil {
		return fmt.Errorf("failed to record presence for %s: %w", u.Username, err)
	}
	return r.rdb.Expire(ctx, key, entryTTL).Err()
}

// SignOff removes a user's presence immediately.
func (r *Registry) SignOff(ctx context.Context, username string) error {
	return r.rdb.Del(ctx, keyPrefix+username).Err()
}

// Snapshot lists everyone currently online, sorted by username.
func (r *Registry) Snapshot(ctx context.Context) ([]models.OnlineUser, error) {
	var users []models.OnlineUser
	iter := r.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		vals, err := r.rdb.HGetAll(ctx, iter.Val()).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to read presence entry: %w", err)
		}
		if len(vals) == 0 {
			continue // expired between SCAN and HGETALL
		}
		users = append(users, models.OnlineUser{
			Username: vals["username"],
			Profile:  vals["profile"],
			Lobby:    vals["lobby"],
			IP:       vals["ip"],
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("presence scan failed: %w", err)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/fiveserver/fiveweb/internal/account"
	"github.com/fiveserver/fiveweb/internal/announce"
	"github.com/fiveserver/fiveweb/internal/auth"
	"github.com/fiveserver/fiveweb/internal/banned"
	"github.com/fiveserver/fiveweb/internal/config"
	"github.com/fiveserver/fiveweb/internal/database"
	"github.com/fiveserver/fiveweb/internal/handlers"
	"github.com/fiveserver/fiveweb/internal/middleware"
	"github.com/fiveserver/fiveweb/internal/presence"
	"github.com/fiveserver/fiveweb/internal/settings"
)

func main() {
	logger := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("configuration error: %v", err)
	}
	rt := settings.New(logger, cfg.Debug, cfg.MaxUsers)

	// A bad cipher key must stop the process before it serves anything.
	hasher, err := auth.NewHasher(cfg.CipherKeyHex)
	if err != nil {
		logger.Fatalf("cipher key rejected: %v", err)
	}

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("database connect failed: %v", err)
	}
	defer pool.Close()
	store := database.NewStore(pool)

	var registry *presence.Registry
	if cfg.RedisAddr != "" {
		registry, err = presence.Connect(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			logger.Fatalf("redis connect failed: %v", err)
		}
	} else {
		logger.Warn("REDIS_ADDR not set, online-users endpoints serve empty snapshots")
	}

	sessions, err := auth.NewSessions(cfg.AdminTokenExpiry)
	if err != nil {
		logger.Fatalf("session setup failed: %v", err)
	}

	announcements, err := announce.NewFileStore(filepath.Join(cfg.DataDir, "announcements.json"))
	if err != nil {
		logger.Fatalf("announcement store failed: %v", err)
	}
	bannedList, err := banned.Load(filepath.Join(cfg.DataDir, "banned.json"))
	if err != nil {
		logger.Fatalf("banned list failed: %v", err)
	}

	accounts := account.NewService(store, hasher, logger)
	creds := handlers.AdminCredentials{User: cfg.AdminUser, Password: cfg.AdminPassword}
	admin := handlers.RequireAdmin(logger, sessions)

	var onlineSrc handlers.PresenceSource
	var presenceReg handlers.PresenceRegistry
	if registry != nil {
		onlineSrc = registry
		presenceReg = registry
	}

	mux := http.NewServeMux()

	// account + public stats endpoints
	mux.HandleFunc("/account", handlers.AccountHandler(logger, accounts))
	mux.HandleFunc("/profiles", handlers.ListProfilesHandler(logger, store))
	mux.HandleFunc("/profiles/", handlers.ProfileDetailHandler(logger, store))
	mux.HandleFunc("/matches", handlers.MatchHistoryHandler(logger, store))
	mux.HandleFunc("/announcements", handlers.AnnouncementsHandler(logger, announcements))
	mux.HandleFunc("/users/online", handlers.OnlineUsersHandler(logger, onlineSrc))
	mux.HandleFunc("/ws/online", handlers.OnlineWSHandler(logger, onlineSrc))

	// game servers report who is connected; reads above, writes gated
	mux.Handle("/presence/heartbeat", admin(handlers.PresenceHeartbeatHandler(logger, presenceReg)))
	mux.Handle("/presence/signoff", admin(handlers.PresenceSignOffHandler(logger, presenceReg)))

	// admin endpoints
	mux.HandleFunc("/admin/login", handlers.AdminLoginHandler(logger, sessions, creds))
	mux.Handle("/users", admin(handlers.ListUsersHandler(logger, store)))
	mux.Handle("/users/lock", admin(handlers.LockUserHandler(logger, store)))
	mux.Handle("/users/delete", admin(handlers.DeleteUserHandler(logger, store)))
	mux.Handle("/admin/debug", admin(handlers.DebugHandler(rt)))
	mux.Handle("/admin/maxusers", admin(handlers.MaxUsersHandler(rt)))
	mux.Handle("/admin/banned", admin(handlers.BannedHandler(logger, bannedList)))
	mux.Handle("/admin/announcements", admin(handlers.CreateAnnouncementHandler(logger, announcements)))
	mux.Handle("/admin/announcements/", admin(handlers.DeleteAnnouncementHandler(logger, announcements)))

	handler := middleware.LogMiddleware(logger)(middleware.BanFilter(logger, bannedList)(mux))

	logger.Infof("Running on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}

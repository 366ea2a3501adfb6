// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config collects every process-level setting, read once at startup.
// Nothing in here mutates after Load returns; the runtime-tunable flags
// live in internal/settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// DatabaseURL is the Postgres connection string.
	DatabaseURL string

	// RedisAddr is the presence registry address; empty disables the
	// online-users endpoints.
	RedisAddr string
	RedisDB   int

	// CipherKeyHex is the hex-encoded Blowfish key shared with the
	// registration tooling. Validated by constructing the Hasher; a bad
	// key must stop the process before it serves.
	CipherKeyHex string

	// AdminUser/AdminPassword gate the admin endpoints.
	AdminUser     string
	AdminPassword string

	// AdminTokenExpiry bounds admin session lifetime (0 = no expiry).
	AdminTokenExpiry time.Duration

	// DataDir holds the flat-file stores (announcements, banned list).
	DataDir string

	// MaxUsers is the initial max-users setting; tunable at runtime.
	MaxUsers int

	// Debug enables debug-level logging at startup; tunable at runtime.
	Debug bool
}

// Load reads the configuration from the environment. Only settings
// whose absence makes the process unusable are errors here; key
// validity is the Hasher constructor's job.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:          ":" + getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		CipherKeyHex:  os.Getenv("CIPHER_KEY"),
		AdminUser:     getEnv("ADMIN_USER", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		DataDir:       getEnv("DATA_DIR", "data"),
		MaxUsers:      getEnvInt("MAX_USERS", 100),
		Debug:         getEnvBool("DEBUG", false),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.CipherKeyHex == "" {
		return nil, fmt.Errorf("CIPHER_KEY is required")
	}
	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is required")
	}

	expire := getEnv("ADMIN_TOKEN_EXPIRE", "12h")
	if expire == "never" || expire == "0" {
		cfg.AdminTokenExpiry = 0
	} else {
		d, err := time.ParseDuration(expire)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ADMIN_TOKEN_EXPIRE: %w", err)
		}
		cfg.AdminTokenExpiry = d
	}

	return cfg, nil
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt parses an environment variable as integer, else a default.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getEnvBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return def
}

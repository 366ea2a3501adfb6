// internal/settings/settings.go
package settings

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// Runtime holds the admin-tunable flags. Unlike Config these change
// while the server runs, so access is mutex guarded.
type Runtime struct {
	mu       sync.RWMutex
	logger   *log.Logger
	debug    bool
	maxUsers int
}

// maxUsersCeiling bounds the max-users setting, matching the admin
// console's accepted range.
const maxUsersCeiling = 1000

// New builds the runtime settings and applies the initial debug level
// to the logger.
func New(logger *log.Logger, debug bool, maxUsers int) *Runtime {
	r := &Runtime{logger: logger, maxUsers: maxUsers}
	r.SetDebug(debug)
	return r
}

// Debug reports whether debug logging is on.
func (r *Runtime) Debug() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.debug
}

// SetDebug flips debug logging and adjusts the logger level.
func (r *Runtime) SetDebug(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.debug = on
	if on {
		r.logger.SetLevel(log.DebugLevel)
	} else {
		r.logger.SetLevel(log.InfoLevel)
	}
}

// MaxUsers returns the current max-users setting.
func (r *Runtime) MaxUsers() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.maxUsers
}

// SetMaxUsers updates max users; out-of-range values are ignored and
// the previous setting kept.
func (r *Runtime) SetMaxUsers(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n >= 0 && n <= maxUsersCeiling {
		r.maxUsers = n
	}
	return r.maxUsers
}

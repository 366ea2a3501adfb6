// internal/middleware/ban.go
package middleware

import (
	"net"
	"net/http"

	"github.com/sirupsen/logrus"
)

// AddressMatcher reports whether a remote address is banned.
type AddressMatcher interface {
	Match(addr string) bool
}

// BanFilter rejects requests from banned remote addresses before any
// handler sees them.
func BanFilter(logger *logrus.Logger, list AddressMatcher) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}
			if list.Match(host) {
				logger.WithFields(logrus.Fields{
					"remote": host,
					"path":   r.URL.Path,
				}).Warn("rejected banned address")
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

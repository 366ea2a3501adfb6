// internal/account/pipeline.go
package account

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/fiveserver/fiveweb/internal/auth"
	"github.com/fiveserver/fiveweb/internal/models"
)

// Status is the externally observable result of an account request.
// Everything that is not success collapses into two values: callers
// never learn whether credentials were missing, unknown, or wrong
// (anti-enumeration), and server errors carry no internal detail.
type Status int

const (
	StatusAuthenticated Status = iota
	StatusUnauthorized
	StatusServerError
)

// Result is the outcome of one verification+stats request. Stats is
// non-nil only for StatusAuthenticated.
type Result struct {
	Status Status
	Stats  *models.AccountStatsResponse
}

// Service sequences credential verification and stats aggregation for
// the account endpoint. It holds no per-request state; concurrent
// requests need no coordination.
type Service struct {
	verifier   *Verifier
	aggregator *Aggregator
	logger     *log.Logger
}

// NewService wires the pipeline over one store and one hasher.
func NewService(store Store, hasher *auth.Hasher, logger *log.Logger) *Service {
	return &Service{
		verifier:   NewVerifier(store, hasher, logger),
		aggregator: NewAggregator(store),
		logger:     logger,
	}
}

// HandleAccountRequest runs verify → aggregate and maps every internal
// failure mode onto the external three-valued status. The internal
// reason is logged here, at the boundary, and nowhere else.
func (s *Service) HandleAccountRequest(ctx context.Context, username, password string) Result {
	if username == "" || password == "" {
		// Same external signal as bad credentials.
		s.logger.Debug("account request: missing credential")
		return Result{Status: StatusUnauthorized}
	}

	acct, outcome, err := s.verifier.Verify(ctx, username, password)
	if err != nil {
		s.logger.WithError(err).Error("account request: verification store error")
		return Result{Status: StatusServerError}
	}
	if outcome != OutcomeAuthenticated {
		s.logger.WithFields(log.Fields{
			"username": username,
			"reason":   outcome.String(),
		}).Info("account request: unauthorized")
		return Result{Status: StatusUnauthorized}
	}

	stats, err := s.aggregator.Aggregate(ctx, acct)
	if err != nil {
		s.logger.WithError(err).WithField("username", acct.Username).
			Error("account request: aggregation failed")
		return Result{Status: StatusServerError}
	}
	return Result{Status: StatusAuthenticated, Stats: stats}
}

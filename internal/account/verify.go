// internal/account/verify.go
package account

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/fiveserver/fiveweb/internal/auth"
	"github.com/fiveserver/fiveweb/internal/models"
)

// Outcome is the internal result of a credential check. The distinction
// between a missing account and a wrong password exists for logging
// only; callers surfacing results to users must merge everything but
// OutcomeAuthenticated into one unauthorized signal.
type Outcome int

const (
	OutcomeAuthenticated Outcome = iota
	OutcomeAccountNotFound
	OutcomePasswordMismatch
)

// String returns the internal log code for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAuthenticated:
		return "authenticated"
	case OutcomeAccountNotFound:
		return "account_not_found"
	case OutcomePasswordMismatch:
		return "password_mismatch"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Verifier checks submitted credentials against stored accounts.
type Verifier struct {
	store  Store
	hasher *auth.Hasher
	logger *log.Logger
}

// NewVerifier builds a Verifier. The hasher carries the server cipher
// key; constructing two verifiers with two hashers is how key rotation
// is tested.
func NewVerifier(store Store, hasher *auth.Hasher, logger *log.Logger) *Verifier {
	return &Verifier{store: store, hasher: hasher, logger: logger}
}

// Verify looks up the account and recomputes the verification token.
// The token is computed from the account's stored username, not the
// submitted one: the stored spelling is the one the client hashed at
// registration time, and case must match it exactly.
//
// The returned account is non-nil only for OutcomeAuthenticated. A
// non-nil error means the store failed and no outcome was determined.
func (v *Verifier) Verify(ctx context.Context, username, password string) (*models.Account, Outcome, error) {
	acct, err := v.store.FindAccountByUsername(ctx, username)
	if err != nil {
		return nil, 0, fmt.Errorf("account lookup failed: %w", err)
	}
	if acct == nil {
		v.logger.WithField("username", username).Debug("login: unknown account")
		return nil, OutcomeAccountNotFound, nil
	}

	token := v.hasher.ComputeToken(acct.Serial, acct.Username, password)
	if token != acct.Hash {
		v.logger.WithField("username", acct.Username).Debug("login: token mismatch")
		return nil, OutcomePasswordMismatch, nil
	}
	return acct, OutcomeAuthenticated, nil
}

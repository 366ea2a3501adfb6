// internal/account/store.go
package account

import (
	"context"

	"github.com/fiveserver/fiveweb/internal/models"
)

// Store is the read-only view of account data this package needs. The
// production implementation lives in internal/database; tests supply
// fakes.
//
// Absence is a value, not an error: FindAccountByUsername and
// GetStreakByProfileID return (nil, nil) for a missing row. Every
// non-nil error means the store itself failed and the whole request
// must end in a server error.
type Store interface {
	FindAccountByUsername(ctx context.Context, username string) (*models.Account, error)

	// ListProfilesByAccountID returns the account's profiles in storage
	// order. The first element is the main profile; callers must not
	// re-sort.
	ListProfilesByAccountID(ctx context.Context, accountID int64) ([]models.Profile, error)

	GetStreakByProfileID(ctx context.Context, profileID int64) (*models.StreakRecord, error)

	// GetMatchAggregateByProfileID always returns a value, zero-filled
	// when the profile has no matches.
	GetMatchAggregateByProfileID(ctx context.Context, profileID int64) (models.MatchAggregate, error)
}

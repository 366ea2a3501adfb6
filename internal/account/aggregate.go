// internal/account/aggregate.go
package account

import (
	"context"
	"fmt"

	"github.com/fiveserver/fiveweb/internal/models"
)

// Aggregator assembles an authenticated account's profile statistics.
type Aggregator struct {
	store Store
}

// NewAggregator builds an Aggregator over the given store.
func NewAggregator(store Store) *Aggregator {
	return &Aggregator{store: store}
}

// Aggregate runs the three dependent fetches in order: profiles, then
// the main profile's streak, then its match aggregate. Each stage keys
// off the previous one's result, so the stages are never reordered or
// run in parallel.
//
// An account with no profiles yields a response with an empty profile
// list and no detail sections; that is a normal result, not an error.
// Any store failure aborts the whole aggregation: no partial response
// is ever returned.
func (a *Aggregator) Aggregate(ctx context.Context, acct *models.Account) (*models.AccountStatsResponse, error) {
	resp := &models.AccountStatsResponse{
		Username: acct.Username,
		Serial:   acct.Serial,
		Profiles: []models.Profile{},
	}

	profiles, err := a.store.ListProfilesByAccountID(ctx, acct.ID)
	if err != nil {
		return nil, fmt.Errorf("profile list failed: %w", err)
	}
	if len(profiles) == 0 {
		return resp, nil
	}
	resp.Profiles = profiles

	// Detailed stats cover the first profile in storage order only.
	main := profiles[0]
	resp.MainProfile = &main

	streak, err := a.store.GetStreakByProfileID(ctx, main.ID)
	if err != nil {
		return nil, fmt.Errorf("streak fetch failed: %w", err)
	}
	if streak == nil {
		streak = &models.StreakRecord{}
	}
	resp.Streaks = streak

	agg, err := a.store.GetMatchAggregateByProfileID(ctx, main.ID)
	if err != nil {
		return nil, fmt.Errorf("match aggregate failed: %w", err)
	}
	resp.Stats = &agg

	return resp, nil
}

// internal/account/fake_store_test.go
package account

import (
	"context"
	"errors"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/fiveserver/fiveweb/internal/models"
)

var errStoreDown = errors.New("store unavailable")

// fakeStore serves canned data and can be made to fail at any stage.
type fakeStore struct {
	accounts map[string]*models.Account
	profiles map[int64][]models.Profile
	streaks  map[int64]*models.StreakRecord
	matches  map[int64]models.MatchAggregate

	failFind      bool
	failProfiles  bool
	failStreak    bool
	failAggregate bool

	calls []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts: make(map[string]*models.Account),
		profiles: make(map[int64][]models.Profile),
		streaks:  make(map[int64]*models.StreakRecord),
		matches:  make(map[int64]models.MatchAggregate),
	}
}

func (f *fakeStore) FindAccountByUsername(_ context.Context, username string) (*models.Account, error) {
	f.calls = append(f.calls, "find")
	if f.failFind {
		return nil, errStoreDown
	}
	return f.accounts[username], nil
}

func (f *fakeStore) ListProfilesByAccountID(_ context.Context, accountID int64) ([]models.Profile, error) {
	f.calls = append(f.calls, "profiles")
	if f.failProfiles {
		return nil, errStoreDown
	}
	return f.profiles[accountID], nil
}

func (f *fakeStore) GetStreakByProfileID(_ context.Context, profileID int64) (*models.StreakRecord, error) {
	f.calls = append(f.calls, "streak")
	if f.failStreak {
		return nil, errStoreDown
	}
	return f.streaks[profileID], nil
}

func (f *fakeStore) GetMatchAggregateByProfileID(_ context.Context, profileID int64) (models.MatchAggregate, error) {
	f.calls = append(f.calls, "aggregate")
	if f.failAggregate {
		return models.MatchAggregate{}, errStoreDown
	}
	return f.matches[profileID], nil
}

// testLogger returns a logger that swallows output.
func testLogger() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

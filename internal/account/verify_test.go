// internal/account/verify_test.go
package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiveserver/fiveweb/internal/auth"
	"github.com/fiveserver/fiveweb/internal/models"
)

const verifyTestKey = "00112233445566778899aabbccddeeff"

// seedAccount stores an account whose hash matches the given password
// under the given hasher.
func seedAccount(store *fakeStore, h *auth.Hasher, id int64, username, serial, password string) *models.Account {
	acct := &models.Account{
		ID:       id,
		Username: username,
		Serial:   serial,
		Hash:     h.ComputeToken(serial, username, password),
	}
	store.accounts[username] = acct
	return acct
}

func TestVerifyAuthenticated(t *testing.T) {
	h, err := auth.NewHasher(verifyTestKey)
	require.NoError(t, err)
	store := newFakeStore()
	seedAccount(store, h, 7, "player1", "ABCD-1234-EFGH-5678", "secret")

	v := NewVerifier(store, h, testLogger())
	acct, outcome, err := v.Verify(context.Background(), "player1", "secret")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAuthenticated, outcome)
	require.NotNil(t, acct)
	assert.Equal(t, int64(7), acct.ID)
}

func TestVerifyAccountNotFound(t *testing.T) {
	h, err := auth.NewHasher(verifyTestKey)
	require.NoError(t, err)
	v := NewVerifier(newFakeStore(), h, testLogger())

	acct, outcome, err := v.Verify(context.Background(), "nobody", "secret")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAccountNotFound, outcome)
	assert.Nil(t, acct)
}

func TestVerifyPasswordMismatch(t *testing.T) {
	h, err := auth.NewHasher(verifyTestKey)
	require.NoError(t, err)
	store := newFakeStore()
	seedAccount(store, h, 7, "player1", "ABCD-1234", "secret")

	v := NewVerifier(store, h, testLogger())
	acct, outcome, err := v.Verify(context.Background(), "player1", "wrong")
	require.NoError(t, err)
	assert.Equal(t, OutcomePasswordMismatch, outcome)
	assert.Nil(t, acct)
}

// The token is recomputed from the stored username, so a registration
// made as "LinceNuevo" still verifies even if the stored hash was built
// from that exact spelling.
func TestVerifyUsesStoredUsernameForHashing(t *testing.T) {
	h, err := auth.NewHasher(verifyTestKey)
	require.NoError(t, err)
	store := newFakeStore()
	acct := seedAccount(store, h, 3, "LinceNuevo", "QQQQ-WWWW", "pw")
	// The same record is findable under the stored spelling only; what
	// matters is that the recomputed token uses acct.Username.
	require.Equal(t, h.ComputeToken(acct.Serial, "LinceNuevo", "pw"), acct.Hash)

	v := NewVerifier(store, h, testLogger())
	got, outcome, err := v.Verify(context.Background(), "LinceNuevo", "pw")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAuthenticated, outcome)
	assert.Equal(t, acct, got)
}

func TestVerifyStoreError(t *testing.T) {
	h, err := auth.NewHasher(verifyTestKey)
	require.NoError(t, err)
	store := newFakeStore()
	store.failFind = true

	v := NewVerifier(store, h, testLogger())
	_, _, err = v.Verify(context.Background(), "player1", "secret")
	assert.ErrorIs(t, err, errStoreDown)
}

func TestVerifyKeyRotationInvalidatesTokens(t *testing.T) {
	h1, err := auth.NewHasher(verifyTestKey)
	require.NoError(t, err)
	h2, err := auth.NewHasher("ffeeddccbbaa99887766554433221100")
	require.NoError(t, err)

	store := newFakeStore()
	seedAccount(store, h1, 1, "player1", "ABCD", "secret")

	// Same stored data, rotated key: the old password no longer checks.
	_, outcome, err := NewVerifier(store, h2, testLogger()).Verify(context.Background(), "player1", "secret")
	require.NoError(t, err)
	assert.Equal(t, OutcomePasswordMismatch, outcome)
}

// internal/auth/session_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionsIssueVerify(t *testing.T) {
	s, err := NewSessions(time.Hour)
	require.NoError(t, err)

	tok, err := s.Issue("admin")
	require.NoError(t, err)

	operator, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", operator)
}

func TestSessionsRejectForeignToken(t *testing.T) {
	a, err := NewSessions(time.Hour)
	require.NoError(t, err)
	b, err := NewSessions(time.Hour)
	require.NoError(t, err)

	tok, err := a.Issue("admin")
	require.NoError(t, err)

	// Signed by a different process key.
	_, err = b.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = a.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionsExpiredToken(t *testing.T) {
	s, err := NewSessions(-time.Minute)
	require.NoError(t, err)

	tok, err := s.Issue("admin")
	require.NoError(t, err)

	_, err = s.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionsZeroExpiryNeverExpires(t *testing.T) {
	s, err := NewSessions(0)
	require.NoError(t, err)

	tok, err := s.Issue("admin")
	require.NoError(t, err)

	operator, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", operator)
}

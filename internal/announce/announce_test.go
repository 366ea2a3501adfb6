// internal/announce/announce_test.go
package announce

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiveserver/fiveweb/internal/models"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "etc", "announcements.json"))
	require.NoError(t, err)
	return s
}

func TestFileStoreEmpty(t *testing.T) {
	s := newTestStore(t)
	all, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFileStoreAddNewestFirst(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Add(models.Announcement{Title: "maintenance", Message: "sunday"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "info", first.Type)
	assert.True(t, first.Active)

	second, err := s.Add(models.Announcement{Title: "cup", Message: "signups open", Type: "event"})
	require.NoError(t, err)
	assert.Equal(t, "event", second.Type)

	all, err := s.List()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestFileStoreRemove(t *testing.T) {
	s := newTestStore(t)
	a, err := s.Add(models.Announcement{Title: "t", Message: "m"})
	require.NoError(t, err)

	require.NoError(t, s.Remove(a.ID))
	all, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.ErrorIs(t, s.Remove(a.ID), ErrNotFound)
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "announcements.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	added, err := s.Add(models.Announcement{Title: "hello", Message: "world"})
	require.NoError(t, err)

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	all, err := reopened.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, added.ID, all[0].ID)
}

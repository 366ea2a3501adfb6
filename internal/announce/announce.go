// internal/announce/announce.go
package announce

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fiveserver/fiveweb/internal/models"
)

// ErrNotFound indicates no announcement with the given id exists.
var ErrNotFound = errors.New("announcement not found")

// FileStore keeps announcements in a single JSON file so operators can
// inspect and hand-edit them. Newest entries sit at the top of the
// file. All methods are safe for concurrent use.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates the backing file (and its directory) if needed.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create announcements dir: %w", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("failed to seed announcements file: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

// List returns every announcement, newest first.
func (s *FileStore) List() ([]models.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Add prepends a new announcement and returns it with id, timestamp and
// defaults filled in. An empty type defaults to "info".
func (s *FileStore) Add(a models.Announcement) (models.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.read()
	if err != nil {
		return models.Announcement{}, err
	}

	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	a.Active = true
	if a.Type == "" {
		a.Type = "info"
	}

	all = append([]models.Announcement{a}, all...)
	if err := s.write(all); err != nil {
		return models.Announcement{}, err
	}
	return a, nil
}

// Remove deletes the announcement with the given id.
func (s *FileStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.read()
	if err != nil {
		return err
	}
	kept := all[:0]
	for _, a := range all {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(all) {
		return ErrNotFound
	}
	return s.write(kept)
}

func (s *FileStore) read() ([]models.Announcement, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read announcements: %w", err)
	}
	var all []models.Announcement
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("failed to parse announcements: %w", err)
	}
	return all, nil
}

func (s *FileStore) write(all []models.Announcement) error {
	data, err := json.MarshalIndent(all, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

package toml

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/ovsov/healthwise-cli/internal/domain"
	"github.com/ovsov/healthwise-cli/internal/ports"
)

// SessionStore keeps the single active-account pointer in its own file
// so it survives restarts and can be cleared without touching accounts.
type SessionStore struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.SessionStore = (*SessionStore)(nil)

func NewSessionStore(dataDir string) *SessionStore {
	path := filepath.Join(dataDir, sessionFileName)
	return &SessionStore{path: path, mu: lockForPath(path)}
}

func (s *SessionStore) Current(ctx context.Context) (domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return domain.Profile{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.read()
	if err != nil {
		return domain.Profile{}, err
	}

	if file.Session == nil || file.Session.Username == "" {
		return domain.Profile{}, domain.ErrNoSession
	}

	return profileFromSchema(*file.Session), nil
}

func (s *SessionStore) Set(ctx context.Context, profile domain.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	encoded := profileToSchema(profile)
	file := sessionSchema{Version: currentSchemaVersion, Session: &encoded}

	return writeRecordFile(s.path, file)
}

// Clear is idempotent: clearing an absent session succeeds.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return writeRecordFile(s.path, sessionSchema{Version: currentSchemaVersion})
}

func (s *SessionStore) read() (sessionSchema, error) {
	var file sessionSchema
	if err := readRecordFile(s.path, &file); err != nil {
		return sessionSchema{}, err
	}
	if err := file.validateVersion(); err != nil {
		return sessionSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

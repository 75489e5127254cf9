package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/coldpitch/coldpitch/internal/model"
)

// FileStore keeps the whole entitlement mapping in one pretty-printed JSON
// file and rewrites it in full on every mutation. Because every write
// replaces the whole file, a single mutex serializes all access rather
// than a per-key lock; the store assumes one process owns the file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a FileStore backed by the given path. The file is
// created lazily on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get returns the persisted record for email, or the default free record.
// An unreadable or corrupt file is treated as an empty mapping.
func (s *FileStore) Get(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.load()[email]; ok {
		return u, nil
	}
	return model.DefaultUser(email), nil
}

// Update merges the patch over the current record and rewrites the file.
func (s *FileStore) Update(ctx context.Context, email string, patch UserPatch) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.load()
	current, ok := users[email]
	if !ok {
		current = model.DefaultUser(email)
	}

	merged := patch.Apply(current)
	merged.Email = email
	users[email] = merged

	if err := s.save(users); err != nil {
		return nil, fmt.Errorf("failed to persist user %s: %w", email, err)
	}
	return merged, nil
}

// Debit checks and decrements the credit balance inside the store lock.
// An exhausted balance refuses with ErrNoCredits.
func (s *FileStore) Debit(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.load()
	current, ok := users[email]
	if !ok {
		current = model.DefaultUser(email)
	}

	if current.Credits <= 0 {
		return nil, ErrNoCredits
	}

	credits := current.Credits - 1
	merged := UserPatch{Credits: &credits}.Apply(current)
	merged.Email = email
	users[email] = merged

	if err := s.save(users); err != nil {
		return nil, fmt.Errorf("failed to persist user %s: %w", email, err)
	}
	return merged, nil
}

// Ping checks that the backing file is readable and writable.
func (s *FileStore) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(s.load())
}

func (s *FileStore) load() map[string]*model.User {
	users := make(map[string]*model.User)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return users
	}
	if err := json.Unmarshal(data, &users); err != nil {
		return make(map[string]*model.User)
	}
	return users
}

func (s *FileStore) save(users map[string]*model.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/coldpitch/coldpitch/internal/model"
)

// userKeyPrefix namespaces entitlement records in Redis.
const userKeyPrefix = "user:"

// RedisStore persists one JSON-encoded user record per Redis key. Updates
// for the same email are serialized by an in-process per-key mutex; keys
// for different users are independent, so no global lock is needed.
type RedisStore struct {
	client *redis.Client
	locks  *keyedMutex
}

// NewRedisStore creates a RedisStore on an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		locks:  newKeyedMutex(),
	}
}

// Get returns the persisted record for email, or the default free record
// when the key does not exist.
func (s *RedisStore) Get(ctx context.Context, email string) (*model.User, error) {
	data, err := s.client.Get(ctx, userKeyPrefix+email).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.DefaultUser(email), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user %s: %w", email, err)
	}

	var u model.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("failed to decode user %s: %w", email, err)
	}
	return &u, nil
}

// Update merges the patch over the current record and writes it back.
func (s *RedisStore) Update(ctx context.Context, email string, patch UserPatch) (*model.User, error) {
	unlock := s.locks.Lock(email)
	defer unlock()

	current, err := s.Get(ctx, email)
	if err != nil {
		return nil, err
	}

	merged := patch.Apply(current)
	merged.Email = email

	data, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user %s: %w", email, err)
	}
	if err := s.client.Set(ctx, userKeyPrefix+email, data, 0).Err(); err != nil {
		return nil, fmt.Errorf("failed to persist user %s: %w", email, err)
	}
	return merged, nil
}

// Debit checks and decrements the credit balance under the per-key lock.
// An exhausted balance refuses with ErrNoCredits.
func (s *RedisStore) Debit(ctx context.Context, email string) (*model.User, error) {
	unlock := s.locks.Lock(email)
	defer unlock()

	current, err := s.Get(ctx, email)
	if err != nil {
		return nil, err
	}

	if current.Credits <= 0 {
		return nil, ErrNoCredits
	}

	credits := current.Credits - 1
	merged := UserPatch{Credits: &credits}.Apply(current)
	merged.Email = email

	data, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user %s: %w", email, err)
	}
	if err := s.client.Set(ctx, userKeyPrefix+email, data, 0).Err(); err != nil {
		return nil, fmt.Errorf("failed to persist user %s: %w", email, err)
	}
	return merged, nil
}

// Ping checks Redis connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

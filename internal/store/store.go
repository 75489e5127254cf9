// Package store persists entitlement records: one user per email, keyed
// by the only identity concept the product has.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/coldpitch/coldpitch/internal/model"
)

// ErrNoCredits is returned by Debit when the balance is already exhausted.
// The balance can never go below zero.
var ErrNoCredits = errors.New("no credits to debit")

// UserStore provides access to the entitlement mapping.
//
// Get returns the persisted record for the email, or the default free
// record when none exists. It never materializes a record.
//
// Update merges the patch over the current record (persisted or default),
// writes the result back and returns it. Updates for the same email are
// serialized in-process, so concurrent updates cannot lose writes.
//
// Debit decrements the credit balance by one. The check and decrement run
// inside the store's critical section: a zero balance refuses with
// ErrNoCredits, so concurrent debits can never drive a balance below zero.
type UserStore interface {
	Get(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, email string, patch UserPatch) (*model.User, error)
	Debit(ctx context.Context, email string) (*model.User, error)
}

// UserPatch is a partial user record. Nil fields leave the current value
// untouched, mirroring a merge of the two records.
type UserPatch struct {
	Plan        *model.Plan
	Credits     *int
	LastPayment *time.Time
}

// Apply merges the patch into a copy of the given record.
func (p UserPatch) Apply(u *model.User) *model.User {
	merged := *u
	if p.Plan != nil {
		merged.Plan = *p.Plan
	}
	if p.Credits != nil {
		merged.Credits = *p.Credits
	}
	if p.LastPayment != nil {
		merged.LastPayment = p.LastPayment
	}
	return &merged
}

// keyedMutex serializes operations per key.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for the key and returns its unlock function.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}

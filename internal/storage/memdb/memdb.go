// Package memdb holds the session state: the product catalog, the customer
// directory and the sales ledger. All state lives in one process; a single
// lock guards the catalog and ledger together so the stock check and the
// ledger append of one sale can never interleave with another writer.
package memdb

import (
	"context"
	"sync"

	"github.com/haiminhng/retail-console/internal/model"
)

// State is the session snapshot. Sales are ordered newest first.
type State struct {
	Products  []model.Product
	Customers []model.Customer
	Sales     []model.Sale
}

type DB interface {
	// View runs fn with shared read access to the state. fn must not
	// retain references to state internals after it returns.
	View(ctx context.Context, fn func(s *State) error) error

	// Update runs fn with exclusive access to the state.
	Update(ctx context.Context, fn func(s *State) error) error

	// WithTx runs fn holding the write lock for its whole duration.
	// View and Update calls on the tx handle reuse the held lock, so a
	// multi-step write (validate, append, decrement) applies as one unit.
	WithTx(ctx context.Context, fn func(tx DB) error) error
}

var _ DB = (*Store)(nil)

type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) View(ctx context.Context, fn func(st *State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.state)
}

func (s *Store) Update(ctx context.Context, fn func(st *State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state)
}

func (s *Store) WithTx(ctx context.Context, fn func(tx DB) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&txWrapper{state: &s.state})
}

// txWrapper gives lock-free access to the state while the owning Store
// holds its write lock.
type txWrapper struct {
	state *State
}

func (t *txWrapper) View(_ context.Context, fn func(s *State) error) error {
	return fn(t.state)
}

func (t *txWrapper) Update(_ context.Context, fn func(s *State) error) error {
	return fn(t.state)
}

func (t *txWrapper) WithTx(_ context.Context, fn func(tx DB) error) error {
	return fn(t)
}

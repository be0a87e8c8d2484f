// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-account/internal/domain"
)

// RepoMem keeps live accounts in process memory.
type RepoMem struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*domain.Account
}

// NewRepoMem returns an empty account RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		accounts: make(map[uuid.UUID]*domain.Account),
	}
}

// Add registers the account under its id.
func (r *RepoMem) Add(ctx context.Context, acc *domain.Account) error {
	l := zerolog.Ctx(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[acc.ID()]; ok {
		l.Warn().Str("account_id", acc.ID().String()).Msg("account already registered")
		return domain.ErrAccountAlreadyExists
	}

	r.accounts[acc.ID()] = acc

	return nil
}

// Get returns the account registered under id.
func (r *RepoMem) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return acc, nil
}

// Remove forgets the account registered under id.
func (r *RepoMem) Remove(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}

	delete(r.accounts, id)

	return nil
}

package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/SscSPs/wallet_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger_app/internal/core/ports/repositories"
)

// Store keeps transactions in process memory, partitioned by owner.
type Store struct {
	mu      sync.RWMutex
	seen    map[string]struct{}
	order   []string
	byOwner map[string][]domain.Transaction
}

var _ portsrepo.TransactionRepositoryFacade = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		seen:    make(map[string]struct{}),
		byOwner: make(map[string][]domain.Transaction),
	}
}

// ListAll returns a copy of every transaction, grouped by owner in first-seen order.
func (s *Store) ListAll(_ context.Context) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, txns := range s.byOwner {
		total += len(txns)
	}
	out := make([]domain.Transaction, 0, total)
	for _, owner := range s.order {
		out = append(out, s.byOwner[owner]...)
	}
	return out, nil
}

// ListByOwner returns a copy of one owner's transactions.
func (s *Store) ListByOwner(_ context.Context, ownerID string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.byOwner[ownerID]), nil
}

// SaveTransactions validates every record before storing any; existing ids are ignored.
func (s *Store) SaveTransactions(_ context.Context, txns []domain.Transaction) error {
	for _, t := range txns {
		if err := t.Validate(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range txns {
		if _, ok := s.seen[t.ID]; ok {
			continue
		}
		s.seen[t.ID] = struct{}{}
		if _, ok := s.byOwner[t.OwnerID]; !ok {
			s.order = append(s.order, t.OwnerID)
		}
		s.byOwner[t.OwnerID] = append(s.byOwner[t.OwnerID], t)
	}
	return nil
}

func (s *Store) Close() error {
	return nil
}

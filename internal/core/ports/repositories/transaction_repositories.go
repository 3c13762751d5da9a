package repositories

import (
	"context"

	"github.com/SscSPs/wallet_ledger_app/internal/core/domain"
)

// TransactionSource supplies raw transaction records. Implementations may do I/O;
// everything downstream of them is pure.
type TransactionSource interface {
	// ListAll returns every transaction across all owner accounts.
	ListAll(ctx context.Context) ([]domain.Transaction, error)

	// ListByOwner returns the transactions belonging to a single owner account.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error)
}

// TransactionWriter loads records into a source, used for seeding and imports.
type TransactionWriter interface {
	// SaveTransactions inserts the given transactions, ignoring ids that already exist.
	SaveTransactions(ctx context.Context, txns []domain.Transaction) error
}

// TransactionRepositoryFacade combines read and write access to a transaction store.
type TransactionRepositoryFacade interface {
	TransactionSource
	TransactionWriter
	Close() error
}

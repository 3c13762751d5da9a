package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/wallet_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const selectTransactionColumns = `
	SELECT transaction_id, owner_id, owner_phone, kind, status, amount, fee,
		description, counterparty_label, payment_method, reference_code, currency_code, occurred_at
	FROM ledger_transactions`

// PgxTransactionRepository reads and seeds ledger transactions in PostgreSQL.
type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTransactionRepository creates a new repository for transaction data.
func NewPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{pool: pool}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// ListAll retrieves every transaction across all owners.
func (r *PgxTransactionRepository) ListAll(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, selectTransactionColumns+` ORDER BY transaction_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListByOwner retrieves the transactions of a single owner account.
func (r *PgxTransactionRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, selectTransactionColumns+` WHERE owner_id = $1 ORDER BY transaction_id;`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// SaveTransactions inserts txns in one database transaction, skipping ids that already exist.
func (r *PgxTransactionRepository) SaveTransactions(ctx context.Context, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	query := `
		INSERT INTO ledger_transactions (transaction_id, owner_id, owner_phone, kind, status, amount, fee,
			description, counterparty_label, payment_method, reference_code, currency_code, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (transaction_id) DO NOTHING;
	`
	for _, t := range txns {
		var occurredAt *time.Time
		if t.HasTimestamp() {
			at := t.OccurredAt.UTC()
			occurredAt = &at
		}
		batch.Queue(query,
			t.ID,
			t.OwnerID,
			t.OwnerPhone,
			string(t.Kind),
			string(t.Status),
			t.Amount,
			t.Fee,
			t.Description,
			t.CounterpartyLabel,
			t.PaymentMethod,
			t.ReferenceCode,
			t.CurrencyCode,
			occurredAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute transaction batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction batch: %w", err)
	}
	return nil
}

// Close is a no-op; the pool is owned and closed by the caller.
func (r *PgxTransactionRepository) Close() error {
	return nil
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var (
			t          domain.Transaction
			kind       string
			status     string
			amount     decimal.Decimal
			fee        decimal.Decimal
			occurredAt *time.Time
		)
		err := row.Scan(
			&t.ID,
			&t.OwnerID,
			&t.OwnerPhone,
			&kind,
			&status,
			&amount,
			&fee,
			&t.Description,
			&t.CounterpartyLabel,
			&t.PaymentMethod,
			&t.ReferenceCode,
			&t.CurrencyCode,
			&occurredAt,
		)
		t.Kind = domain.TransactionKind(kind)
		t.Status = domain.TransactionStatus(status)
		t.Amount = amount
		t.Fee = fee
		if occurredAt != nil {
			t.OccurredAt = occurredAt.UTC()
		}
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return txns, nil
}

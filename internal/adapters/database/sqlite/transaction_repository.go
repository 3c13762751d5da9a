package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/SscSPs/wallet_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"

	_ "modernc.org/sqlite"
)

const selectTransactionColumns = `
	SELECT transaction_id, owner_id, owner_phone, kind, status, amount, fee,
		description, counterparty_label, payment_method, reference_code, currency_code, occurred_at
	FROM ledger_transactions`

// TransactionRepository is a file-backed transaction source. Timestamps and
// money are stored as text, so reads tolerate values written by other tools.
type TransactionRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// NewTransactionRepository opens (creating if needed) the database at dbPath and migrates it.
func NewTransactionRepository(dbPath string, logger *slog.Logger) (*TransactionRepository, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &TransactionRepository{db: db, logger: logger}, nil
}

func (r *TransactionRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ListAll returns every stored transaction.
func (r *TransactionRepository) ListAll(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, selectTransactionColumns+` ORDER BY transaction_id`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	return r.scanTransactions(ctx, rows)
}

// ListByOwner returns the transactions of one owner account.
func (r *TransactionRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, selectTransactionColumns+` WHERE owner_id = ? ORDER BY transaction_id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query transactions for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	return r.scanTransactions(ctx, rows)
}

// SaveTransactions inserts txns atomically; existing ids are left as they are.
func (r *TransactionRepository) SaveTransactions(ctx context.Context, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO ledger_transactions (transaction_id, owner_id, owner_phone, kind, status, amount, fee,
			description, counterparty_label, payment_method, reference_code, currency_code, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range txns {
		occurredAt := ""
		if t.HasTimestamp() {
			occurredAt = t.OccurredAt.UTC().Format(time.RFC3339Nano)
		}
		if _, err := stmt.ExecContext(ctx,
			t.ID, t.OwnerID, t.OwnerPhone, string(t.Kind), string(t.Status),
			t.Amount.StringFixed(2), t.Fee.StringFixed(2),
			t.Description, t.CounterpartyLabel, t.PaymentMethod, t.ReferenceCode, t.CurrencyCode,
			occurredAt,
		); err != nil {
			return fmt.Errorf("insert transaction %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transactions: %w", err)
	}

	r.logger.InfoContext(ctx, "Transactions saved to SQLite", "count", len(txns))
	return nil
}

// scanTransactions decodes rows. Records with unparseable money or enums are
// skipped; an unparseable timestamp keeps the record but leaves it undated.
func (r *TransactionRepository) scanTransactions(ctx context.Context, rows *sql.Rows) ([]domain.Transaction, error) {
	txns := make([]domain.Transaction, 0)
	for rows.Next() {
		var (
			t                     domain.Transaction
			kind, status          string
			amount, fee, occurred string
		)
		if err := rows.Scan(
			&t.ID, &t.OwnerID, &t.OwnerPhone, &kind, &status, &amount, &fee,
			&t.Description, &t.CounterpartyLabel, &t.PaymentMethod, &t.ReferenceCode, &t.CurrencyCode,
			&occurred,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}

		t.Kind = domain.TransactionKind(kind)
		t.Status = domain.TransactionStatus(status)

		var err error
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			r.logger.WarnContext(ctx, "Skipping transaction with unparseable amount", "id", t.ID, "amount", amount)
			continue
		}
		if t.Fee, err = decimal.NewFromString(fee); err != nil {
			r.logger.WarnContext(ctx, "Skipping transaction with unparseable fee", "id", t.ID, "fee", fee)
			continue
		}

		if occurred != "" {
			if t.OccurredAt, err = domain.ParseTimestamp(occurred); err != nil {
				r.logger.WarnContext(ctx, "Transaction timestamp unparseable, keeping as undated", "id", t.ID, "occurred_at", occurred)
			}
		}

		if err := t.Validate(); err != nil {
			r.logger.WarnContext(ctx, "Skipping invalid transaction", "id", t.ID, "error", err)
			continue
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txns, nil
}

package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/wallet_ledger_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/wallet_ledger_app/internal/adapters/database/sqlite"
	"github.com/SscSPs/wallet_ledger_app/internal/adapters/memory"
	portsrepo "github.com/SscSPs/wallet_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_ledger_app/pkg/config"
	"github.com/SscSPs/wallet_ledger_app/pkg/database"
)

// SourceResult is an opened transaction store and its release hook.
type SourceResult struct {
	Repository portsrepo.TransactionRepositoryFacade
	Cleanup    func() error
}

// OpenSource builds the transaction store selected by cfg.DataSource and,
// when MemorySeedSize > 0, loads a deterministic synthetic ledger into it.
func OpenSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*SourceResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		result *SourceResult
		err    error
	)
	switch cfg.DataSource {
	case config.DataSourcePostgres:
		result, err = openPostgres(ctx, cfg, logger)
	case config.DataSourceSQLite:
		result, err = openSQLite(cfg, logger)
	case config.DataSourceMemory:
		result = &SourceResult{Repository: memory.NewStore(), Cleanup: func() error { return nil }}
		logger.Info("Initialized in-memory transaction source")
	default:
		return nil, fmt.Errorf("unsupported data source: %s", cfg.DataSource)
	}
	if err != nil {
		return nil, err
	}

	if err := seed(ctx, result.Repository, cfg, logger); err != nil {
		_ = result.Cleanup()
		return nil, err
	}
	return result, nil
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*SourceResult, error) {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}

	logger.Info("Running database migrations...")
	if err := pgsql.RunMigrations(cfg.DatabaseURL, logger); err != nil {
		database.ClosePgxPool(pool)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Initialized PostgreSQL transaction source")
	return &SourceResult{
		Repository: pgsql.NewPgxTransactionRepository(pool),
		Cleanup: func() error {
			database.ClosePgxPool(pool)
			return nil
		},
	}, nil
}

func openSQLite(cfg *config.Config, logger *slog.Logger) (*SourceResult, error) {
	repo, err := sqlite.NewTransactionRepository(cfg.SQLitePath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	logger.Info("Initialized SQLite transaction source", slog.String("db_path", cfg.SQLitePath))
	return &SourceResult{Repository: repo, Cleanup: repo.Close}, nil
}

func seed(ctx context.Context, repo portsrepo.TransactionWriter, cfg *config.Config, logger *slog.Logger) error {
	if cfg.MemorySeedSize <= 0 {
		return nil
	}

	// a fixed seed and end date keep ids stable, so reseeding a persistent store is a no-op
	txns := memory.Generate(memory.GeneratorConfig{
		Seed:         1,
		Count:        cfg.MemorySeedSize,
		Owners:       cfg.MemorySeedOwners,
		CurrencyCode: cfg.CurrencyCode,
		End:          time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err := repo.SaveTransactions(ctx, txns); err != nil {
		return fmt.Errorf("failed to seed transactions: %w", err)
	}

	logger.Info("Seeded transaction source",
		slog.Int("count", len(txns)),
		slog.Any("owners", cfg.MemorySeedOwners))
	return nil
}

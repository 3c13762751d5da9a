package adapters_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/SscSPs/wallet_ledger_app/internal/adapters"
	"github.com/SscSPs/wallet_ledger_app/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSource_MemorySeeded(t *testing.T) {
	cfg := &config.Config{
		DataSource:       config.DataSourceMemory,
		MemorySeedSize:   30,
		MemorySeedOwners: []string{"alice", "bob"},
		CurrencyCode:     "NGN",
	}

	src, err := adapters.OpenSource(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer src.Cleanup()

	all, err := src.Repository.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 30)
}

func TestOpenSource_SQLiteReseedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		DataSource:       config.DataSourceSQLite,
		SQLitePath:       filepath.Join(t.TempDir(), "ledger.db"),
		MemorySeedSize:   10,
		MemorySeedOwners: []string{"alice"},
		CurrencyCode:     "NGN",
	}

	first, err := adapters.OpenSource(ctx, cfg, nil)
	require.NoError(t, err)
	require.NoError(t, first.Cleanup())

	second, err := adapters.OpenSource(ctx, cfg, nil)
	require.NoError(t, err)
	defer second.Cleanup()

	txns, err := second.Repository.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, txns, 10)
}

func TestOpenSource_UnknownSource(t *testing.T) {
	_, err := adapters.OpenSource(context.Background(), &config.Config{DataSource: "sheets"}, nil)
	assert.Error(t, err)
}

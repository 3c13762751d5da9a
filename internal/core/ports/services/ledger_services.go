package services

import (
	"context"
	"io"

	"github.com/SscSPs/wallet_ledger_app/internal/core/domain"
)

// WalletReaderSvc derives balances for the caller's scope.
type WalletReaderSvc interface {
	Wallet(ctx context.Context, caller domain.Caller) (*domain.WalletSnapshot, error)
}

// TransactionQuerySvc filters, sorts, pages and summarises the caller's transactions.
type TransactionQuerySvc interface {
	ListTransactions(ctx context.Context, caller domain.Caller, criteria domain.FilterCriteria, page, pageSize int) (*domain.Page, error)
	Analytics(ctx context.Context, caller domain.Caller, criteria domain.FilterCriteria) (*domain.Analytics, error)
	// Dashboard resolves scope once and returns wallet, page and analytics together.
	Dashboard(ctx context.Context, caller domain.Caller, criteria domain.FilterCriteria, page, pageSize int) (*domain.DashboardView, error)
}

// TransactionExportSvc writes the caller's filtered transactions as delimited text.
type TransactionExportSvc interface {
	// Export returns the number of data rows written.
	Export(ctx context.Context, caller domain.Caller, criteria domain.FilterCriteria, w io.Writer) (int, error)
}

// LedgerSvcFacade combines all ledger read operations.
type LedgerSvcFacade interface {
	WalletReaderSvc
	TransactionQuerySvc
	TransactionExportSvc
}

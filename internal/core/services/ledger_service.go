package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/SscSPs/wallet_ledger_app/internal/apperrors"
	"github.com/SscSPs/wallet_ledger_app/internal/core/domain"
	"github.com/SscSPs/wallet_ledger_app/internal/core/ledger"
	portsrepo "github.com/SscSPs/wallet_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger_app/internal/utils/pagination"
)

const (
	defaultCurrencyCode   = "NGN"
	defaultCurrencySymbol = "₦"
	defaultPageSize       = 20
	defaultMaxPageSize    = 100
)

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	source          portsrepo.TransactionSource
	currencyCode    string
	currencySymbol  string
	queryOpts       ledger.QueryOptions
	defaultPageSize int
	maxPageSize     int
	delimiter       rune
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithCurrency sets the currency code stamped on wallets and the symbol used in exports.
func WithCurrency(code, symbol string) LedgerServiceOption {
	return func(s *ledgerService) {
		if code != "" {
			s.currencyCode = code
		}
		if symbol != "" {
			s.currencySymbol = symbol
		}
	}
}

// WithPhoneCountryCode sets the dialling code stripped during phone search.
func WithPhoneCountryCode(code string) LedgerServiceOption {
	return func(s *ledgerService) {
		s.queryOpts.PhoneCountryCode = code
	}
}

// WithPageSizes sets the page size used when none is requested and the upper bound.
func WithPageSizes(defaultSize, maxSize int) LedgerServiceOption {
	return func(s *ledgerService) {
		if defaultSize > 0 {
			s.defaultPageSize = defaultSize
		}
		if maxSize > 0 {
			s.maxPageSize = maxSize
		}
	}
}

// WithExportDelimiter sets the field separator for exports.
func WithExportDelimiter(delimiter rune) LedgerServiceOption {
	return func(s *ledgerService) {
		s.delimiter = delimiter
	}
}

// NewLedgerService creates a new ledger service reading from source.
func NewLedgerService(source portsrepo.TransactionSource, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		source:          source,
		currencyCode:    defaultCurrencyCode,
		currencySymbol:  defaultCurrencySymbol,
		queryOpts:       ledger.QueryOptions{PhoneCountryCode: ledger.DefaultPhoneCountryCode},
		defaultPageSize: defaultPageSize,
		maxPageSize:     defaultMaxPageSize,
		delimiter:       ',',
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// resolve fetches the caller's scoped candidate set. Scope is resolved on every call.
func (s *ledgerService) resolve(ctx context.Context, caller domain.Caller) ([]domain.Transaction, error) {
	txns, scope, err := ledger.ResolveScope(ctx, caller, s.source)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			s.LogInfo(ctx, "Ledger access denied",
				slog.String("caller_id", caller.ID),
				slog.String("role", string(caller.Role)))
		} else {
			s.LogError(ctx, err, "Failed to load transactions",
				slog.String("caller_id", caller.ID))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Resolved access scope",
		slog.String("caller_id", caller.ID),
		slog.String("scope", string(scope.Kind)),
		slog.Int("candidate_count", len(txns)))
	return txns, nil
}

func (s *ledgerService) pageSize(requested int) int {
	return pagination.ClampPageSize(requested, s.defaultPageSize, s.maxPageSize)
}

// Wallet computes the balance snapshot over everything the caller may see.
func (s *ledgerService) Wallet(ctx context.Context, caller domain.Caller) (*domain.WalletSnapshot, error) {
	txns, err := s.resolve(ctx, caller)
	if err != nil {
		return nil, err
	}

	wallet := ledger.ComputeWallet(txns, s.currencyCode)
	s.LogInfo(ctx, "Wallet computed",
		slog.String("caller_id", caller.ID),
		slog.Int("transaction_count", len(txns)))
	return &wallet, nil
}

// ListTransactions returns one page of the caller's filtered and sorted transactions.
func (s *ledgerService) ListTransactions(ctx context.Context, caller domain.Caller, criteria domain.FilterCriteria, page, pageSize int) (*domain.Page, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	txns, err := s.resolve(ctx, caller)
	if err != nil {
		return nil, err
	}

	result, err := ledger.Query(txns, criteria, page, s.pageSize(pageSize), s.queryOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	s.LogInfo(ctx, "Transactions listed",
		slog.String("caller_id", caller.ID),
		slog.Int("matched", result.TotalMatched),
		slog.Int("page", result.Page),
		slog.Int("page_size", result.PageSize))
	return &result, nil
}

// Analytics summarises the caller's filtered set ignoring pagination.
func (s *ledgerService) Analytics(ctx context.Context, caller domain.Caller, criteria domain.FilterCriteria) (*domain.Analytics, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	txns, err := s.resolve(ctx, caller)
	if err != nil {
		return nil, err
	}

	analytics := ledger.Aggregate(ledger.Filter(txns, criteria, s.queryOpts))
	s.LogInfo(ctx, "Analytics computed",
		slog.String("caller_id", caller.ID),
		slog.Int("count", analytics.Count))
	return &analytics, nil
}

// Export writes the caller's filtered set to w and returns the number of rows written.
func (s *ledgerService) Export(ctx context.Context, caller domain.Caller, criteria domain.FilterCriteria, w io.Writer) (int, error) {
	if err := criteria.Validate(); err != nil {
		return 0, err
	}

	txns, err := s.resolve(ctx, caller)
	if err != nil {
		return 0, err
	}

	rows, err := ledger.WriteDelimited(w, ledger.Filter(txns, criteria, s.queryOpts), ledger.ExportOptions{
		Delimiter:      s.delimiter,
		CurrencySymbol: s.currencySymbol,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to write export", slog.String("caller_id", caller.ID))
		return rows, fmt.Errorf("failed to export transactions: %w", err)
	}

	s.LogInfo(ctx, "Transactions exported",
		slog.String("caller_id", caller.ID),
		slog.Int("rows", rows))
	return rows, nil
}

// Dashboard builds the wallet, page and analytics from a single scope resolution.
func (s *ledgerService) Dashboard(ctx context.Context, caller domain.Caller, criteria domain.FilterCriteria, page, pageSize int) (*domain.DashboardView, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	txns, err := s.resolve(ctx, caller)
	if err != nil {
		return nil, err
	}

	filtered := ledger.Filter(txns, criteria, s.queryOpts)
	result, err := ledger.Paginate(filtered, page, s.pageSize(pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	view := &domain.DashboardView{
		Wallet:    ledger.ComputeWallet(txns, s.currencyCode),
		Page:      result,
		Analytics: ledger.Aggregate(filtered),
	}
	s.LogInfo(ctx, "Dashboard built",
		slog.String("caller_id", caller.ID),
		slog.Int("matched", result.TotalMatched))
	return view, nil
}

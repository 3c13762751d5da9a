package services

import (
	portsrepo "github.com/SscSPs/wallet_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, source portsrepo.TransactionSource) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger: NewLedgerService(source,
			WithCurrency(cfg.CurrencyCode, cfg.CurrencySymbol),
			WithPhoneCountryCode(cfg.PhoneCountryCode),
			WithPageSizes(cfg.DefaultPageSize, cfg.MaxPageSize),
			WithExportDelimiter(cfg.ExportDelimiter),
		),
	}
}

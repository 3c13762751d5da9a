package domain

import "github.com/shopspring/decimal"

// WalletSnapshot is a derived, never persisted summary of a transaction set.
type WalletSnapshot struct {
	Balance       decimal.Decimal `json:"balance"`
	TotalCredited decimal.Decimal `json:"totalCredited"`
	TotalDebited  decimal.Decimal `json:"totalDebited"`
	TotalFees     decimal.Decimal `json:"totalFees"`
	Reserved      decimal.Decimal `json:"reserved"` // pending outflows, excluded from Balance
	CurrencyCode  string          `json:"currencyCode"`
}

// Analytics summarises a filtered transaction set for KPI cards.
type Analytics struct {
	Count        int             `json:"count"`
	SuccessCount int             `json:"successCount"`
	TotalCredit  decimal.Decimal `json:"totalCredit"`
	TotalDebit   decimal.Decimal `json:"totalDebit"`
	TotalFees    decimal.Decimal `json:"totalFees"`
	SuccessRate  decimal.Decimal `json:"successRate"` // percentage, one decimal place
}

// Page is one window of a filtered and sorted transaction set.
type Page struct {
	Items        []Transaction `json:"items"`
	TotalMatched int           `json:"totalMatched"`
	Page         int           `json:"page"`
	PageSize     int           `json:"pageSize"`
	TotalPages   int           `json:"totalPages"`
}

// DashboardView bundles everything the dashboard screen shows from one scope resolution.
type DashboardView struct {
	Wallet    WalletSnapshot `json:"wallet"`
	Page      Page           `json:"page"`
	Analytics Analytics      `json:"analytics"`
}

package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/wallet_ledger_app/internal/apperrors"
	"github.com/SscSPs/wallet_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListTransactionsParams holds the query parameters shared by list, analytics, export and dashboard.
type ListTransactionsParams struct {
	Search      string `form:"search" binding:"omitempty,max=200"`
	Kind        string `form:"kind" binding:"omitempty,txnkind"`
	Status      string `form:"status" binding:"omitempty,txnstatus"`
	DateFrom    string `form:"dateFrom"`
	DateTo      string `form:"dateTo"`
	AmountFrom  string `form:"amountFrom" binding:"omitempty,numeric"`
	AmountTo    string `form:"amountTo" binding:"omitempty,numeric"`
	Sort        string `form:"sort" binding:"omitempty,sortkey"`
	StrictDates bool   `form:"strictDates"`
	Page        int    `form:"page,default=1" binding:"min=1"`
	PageSize    int    `form:"pageSize" binding:"omitempty,min=1"`
}

const dateOnlyLayout = "2006-01-02"

// ToFilterCriteria converts raw query parameters into typed criteria.
// A date-only dateTo is inclusive of the whole day.
func (p ListTransactionsParams) ToFilterCriteria() (domain.FilterCriteria, error) {
	criteria := domain.FilterCriteria{
		SearchText:  strings.TrimSpace(p.Search),
		StrictDates: p.StrictDates,
	}

	if p.Kind != "" {
		kind := domain.TransactionKind(strings.ToLower(p.Kind))
		criteria.Kind = &kind
	}
	if p.Status != "" {
		status := domain.TransactionStatus(strings.ToLower(p.Status))
		criteria.Status = &status
	}

	sortKey, err := domain.ParseSortKey(p.Sort)
	if err != nil {
		return domain.FilterCriteria{}, err
	}
	criteria.SortKey = sortKey

	if criteria.DateFrom, err = parseDateParam("dateFrom", p.DateFrom, false); err != nil {
		return domain.FilterCriteria{}, err
	}
	if criteria.DateTo, err = parseDateParam("dateTo", p.DateTo, true); err != nil {
		return domain.FilterCriteria{}, err
	}
	if criteria.AmountFrom, err = parseAmountParam("amountFrom", p.AmountFrom); err != nil {
		return domain.FilterCriteria{}, err
	}
	if criteria.AmountTo, err = parseAmountParam("amountTo", p.AmountTo); err != nil {
		return domain.FilterCriteria{}, err
	}

	return criteria, criteria.Validate()
}

func parseDateParam(name, raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if ts, err := time.Parse(dateOnlyLayout, raw); err == nil {
		if endOfDay {
			ts = ts.Add(24*time.Hour - time.Nanosecond)
		}
		return &ts, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD or RFC3339", apperrors.ErrValidation, name)
	}
	ts = ts.UTC()
	return &ts, nil
}

func parseAmountParam(name, raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a decimal number", apperrors.ErrValidation, name)
	}
	return &amount, nil
}

// TransactionResponse is the API representation of a transaction.
type TransactionResponse struct {
	ID                string                   `json:"id"`
	OwnerID           string                   `json:"ownerId"`
	OwnerPhone        string                   `json:"ownerPhone,omitempty"`
	Kind              domain.TransactionKind   `json:"kind"`
	Status            domain.TransactionStatus `json:"status"`
	Amount            decimal.Decimal          `json:"amount"`
	Fee               decimal.Decimal          `json:"fee"`
	Net               decimal.Decimal          `json:"net"`
	Description       string                   `json:"description"`
	CounterpartyLabel string                   `json:"counterpartyLabel"`
	PaymentMethod     string                   `json:"paymentMethod,omitempty"`
	ReferenceCode     string                   `json:"referenceCode,omitempty"`
	CurrencyCode      string                   `json:"currencyCode"`
	OccurredAt        *time.Time               `json:"occurredAt"` // null when the source timestamp was unparseable
}

// ListTransactionsResponse is one page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalMatched int                   `json:"totalMatched"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"pageSize"`
	TotalPages   int                   `json:"totalPages"`
}

// WalletResponse is the balance summary for the caller's scope.
type WalletResponse struct {
	Balance       decimal.Decimal `json:"balance"`
	TotalCredited decimal.Decimal `json:"totalCredited"`
	TotalDebited  decimal.Decimal `json:"totalDebited"`
	TotalFees     decimal.Decimal `json:"totalFees"`
	Reserved      decimal.Decimal `json:"reserved"`
	CurrencyCode  string          `json:"currencyCode"`
}

// AnalyticsResponse carries the KPI figures of a filtered set.
type AnalyticsResponse struct {
	Count        int             `json:"count"`
	SuccessCount int             `json:"successCount"`
	TotalCredit  decimal.Decimal `json:"totalCredit"`
	TotalDebit   decimal.Decimal `json:"totalDebit"`
	TotalFees    decimal.Decimal `json:"totalFees"`
	SuccessRate  decimal.Decimal `json:"successRate"`
}

// DashboardResponse combines wallet, page and analytics.
type DashboardResponse struct {
	Wallet       WalletResponse           `json:"wallet"`
	Transactions ListTransactionsResponse `json:"transactions"`
	Analytics    AnalyticsResponse        `json:"analytics"`
}

// ToTransactionResponse converts a domain transaction to its API form.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:                t.ID,
		OwnerID:           t.OwnerID,
		OwnerPhone:        t.OwnerPhone,
		Kind:              t.Kind,
		Status:            t.Status,
		Amount:            t.Amount,
		Fee:               t.Fee,
		Net:               t.Net(),
		Description:       t.Description,
		CounterpartyLabel: t.CounterpartyLabel,
		PaymentMethod:     t.PaymentMethod,
		ReferenceCode:     t.ReferenceCode,
		CurrencyCode:      t.CurrencyCode,
	}
	if t.HasTimestamp() {
		at := t.OccurredAt
		resp.OccurredAt = &at
	}
	return resp
}

// ToListTransactionsResponse converts a page of transactions.
func ToListTransactionsResponse(p domain.Page) ListTransactionsResponse {
	items := make([]TransactionResponse, len(p.Items))
	for i, t := range p.Items {
		items[i] = ToTransactionResponse(t)
	}
	return ListTransactionsResponse{
		Transactions: items,
		TotalMatched: p.TotalMatched,
		Page:         p.Page,
		PageSize:     p.PageSize,
		TotalPages:   p.TotalPages,
	}
}

func ToWalletResponse(w domain.WalletSnapshot) WalletResponse {
	return WalletResponse{
		Balance:       w.Balance,
		TotalCredited: w.TotalCredited,
		TotalDebited:  w.TotalDebited,
		TotalFees:     w.TotalFees,
		Reserved:      w.Reserved,
		CurrencyCode:  w.CurrencyCode,
	}
}

func ToAnalyticsResponse(a domain.Analytics) AnalyticsResponse {
	return AnalyticsResponse{
		Count:        a.Count,
		SuccessCount: a.SuccessCount,
		TotalCredit:  a.TotalCredit,
		TotalDebit:   a.TotalDebit,
		TotalFees:    a.TotalFees,
		SuccessRate:  a.SuccessRate,
	}
}

func ToDashboardResponse(v domain.DashboardView) DashboardResponse {
	return DashboardResponse{
		Wallet:       ToWalletResponse(v.Wallet),
		Transactions: ToListTransactionsResponse(v.Page),
		Analytics:    ToAnalyticsResponse(v.Analytics),
	}
}

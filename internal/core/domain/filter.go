package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/wallet_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// SortKey is the ordering applied after filtering.
type SortKey string

const (
	SortRecent     SortKey = "recent"
	SortOldest     SortKey = "oldest"
	SortAmountDesc SortKey = "amount-desc"
	SortAmountAsc  SortKey = "amount-asc"
)

// IsValid reports whether k is a known sort key.
func (k SortKey) IsValid() bool {
	switch k {
	case SortRecent, SortOldest, SortAmountDesc, SortAmountAsc:
		return true
	}
	return false
}

// ParseSortKey maps user input to a SortKey. Empty input selects SortRecent.
func ParseSortKey(raw string) (SortKey, error) {
	if raw == "" {
		return SortRecent, nil
	}
	k := SortKey(raw)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: unknown sort key %q", apperrors.ErrValidation, raw)
	}
	return k, nil
}

// FilterCriteria narrows a scoped transaction set. Nil fields are no-ops.
type FilterCriteria struct {
	SearchText string
	Kind       *TransactionKind
	Status     *TransactionStatus
	DateFrom   *time.Time
	DateTo     *time.Time
	AmountFrom *decimal.Decimal
	AmountTo   *decimal.Decimal
	SortKey    SortKey
	// StrictDates excludes undated records whenever a date bound is set.
	// By default they pass the date filter.
	StrictDates bool
}

// Validate rejects criteria that can never match anything sensible.
func (c FilterCriteria) Validate() error {
	if c.Kind != nil && !c.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %q", apperrors.ErrValidation, *c.Kind)
	}
	if c.Status != nil && !c.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, *c.Status)
	}
	if c.SortKey != "" && !c.SortKey.IsValid() {
		return fmt.Errorf("%w: unknown sort key %q", apperrors.ErrValidation, c.SortKey)
	}
	if c.DateFrom != nil && c.DateTo != nil && c.DateFrom.After(*c.DateTo) {
		return fmt.Errorf("%w: dateFrom must be before or equal to dateTo", apperrors.ErrValidation)
	}
	if c.AmountFrom != nil && c.AmountTo != nil && c.AmountFrom.GreaterThan(*c.AmountTo) {
		return fmt.Errorf("%w: amountFrom must be less than or equal to amountTo", apperrors.ErrValidation)
	}
	return nil
}

// EffectiveSortKey returns the sort key, defaulting to SortRecent.
func (c FilterCriteria) EffectiveSortKey() SortKey {
	if c.SortKey == "" {
		return SortRecent
	}
	return c.SortKey
}

package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/wallet_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionKind describes the direction of money movement.
type TransactionKind string

const (
	KindCredit   TransactionKind = "credit"
	KindDebit    TransactionKind = "debit"
	KindTransfer TransactionKind = "transfer"
	KindRefund   TransactionKind = "refund"
)

// IsValid reports whether k is one of the known kinds.
func (k TransactionKind) IsValid() bool {
	switch k {
	case KindCredit, KindDebit, KindTransfer, KindRefund:
		return true
	}
	return false
}

// IsInflow reports whether the kind brings money into the account.
// Refunds are inflow everywhere in this service (wallet and analytics alike).
func (k TransactionKind) IsInflow() bool {
	return k == KindCredit || k == KindRefund
}

// IsOutflow reports whether the kind takes money out of the account.
func (k TransactionKind) IsOutflow() bool {
	return k == KindDebit || k == KindTransfer
}

// TransactionStatus is the settlement state of a transaction.
type TransactionStatus string

const (
	StatusSuccess  TransactionStatus = "success"
	StatusPending  TransactionStatus = "pending"
	StatusFailed   TransactionStatus = "failed"
	StatusReversed TransactionStatus = "reversed"
)

// IsValid reports whether s is one of the known statuses.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusSuccess, StatusPending, StatusFailed, StatusReversed:
		return true
	}
	return false
}

// Transaction is a single immutable ledger record belonging to one owner account.
type Transaction struct {
	ID                string            `json:"id"`
	OccurredAt        time.Time         `json:"occurredAt"` // zero when the source timestamp could not be parsed
	Kind              TransactionKind   `json:"kind"`
	Status            TransactionStatus `json:"status"`
	Amount            decimal.Decimal   `json:"amount"`
	Fee               decimal.Decimal   `json:"fee"`
	OwnerID           string            `json:"ownerId"`
	OwnerPhone        string            `json:"ownerPhone,omitempty"`
	Description       string            `json:"description"`
	CounterpartyLabel string            `json:"counterpartyLabel"`
	PaymentMethod     string            `json:"paymentMethod"`
	ReferenceCode     string            `json:"referenceCode"`
	CurrencyCode      string            `json:"currencyCode"`
}

// Net is the amount left after the fee. It is always derived, never stored.
func (t Transaction) Net() decimal.Decimal {
	return t.Amount.Sub(t.Fee)
}

// HasTimestamp reports whether OccurredAt holds a parsed timestamp.
func (t Transaction) HasTimestamp() bool {
	return !t.OccurredAt.IsZero()
}

// IsSuccessful reports whether the transaction settled.
func (t Transaction) IsSuccessful() bool {
	return t.Status == StatusSuccess
}

// Validate checks that a record is well formed.
// A fee larger than the amount is tolerated.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: transaction id is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(t.OwnerID) == "" {
		return fmt.Errorf("%w: owner id is required for transaction %s", apperrors.ErrValidation, t.ID)
	}
	if !t.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %q for transaction %s", apperrors.ErrValidation, t.Kind, t.ID)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q for transaction %s", apperrors.ErrValidation, t.Status, t.ID)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative for transaction %s", apperrors.ErrValidation, t.ID)
	}
	if t.Fee.IsNegative() {
		return fmt.Errorf("%w: fee must not be negative for transaction %s", apperrors.ErrValidation, t.ID)
	}
	return nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses a raw record timestamp using the layouts sources are known to emit.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: empty timestamp", apperrors.ErrValidation)
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognised timestamp %q", apperrors.ErrValidation, raw)
}

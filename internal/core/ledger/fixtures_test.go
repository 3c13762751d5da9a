package ledger_test

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/SscSPs/wallet_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var baseTime = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func kindPtr(k domain.TransactionKind) *domain.TransactionKind {
	return &k
}

func statusPtr(s domain.TransactionStatus) *domain.TransactionStatus {
	return &s
}

func newTxn(id string, kind domain.TransactionKind, status domain.TransactionStatus, amount, fee string) domain.Transaction {
	return domain.Transaction{
		ID:           id,
		OccurredAt:   baseTime,
		Kind:         kind,
		Status:       status,
		Amount:       dec(amount),
		Fee:          dec(fee),
		OwnerID:      "user_1",
		CurrencyCode: "NGN",
	}
}

var (
	allKinds    = []domain.TransactionKind{domain.KindCredit, domain.KindDebit, domain.KindTransfer, domain.KindRefund}
	allStatuses = []domain.TransactionStatus{domain.StatusSuccess, domain.StatusPending, domain.StatusFailed, domain.StatusReversed}
)

// randomLedger builds n transactions with a deterministic generator.
func randomLedger(r *rand.Rand, n int) []domain.Transaction {
	txns := make([]domain.Transaction, n)
	for i := range txns {
		amount := decimal.New(r.Int63n(10_000_000), -2)
		fee := decimal.New(r.Int63n(50_000), -2)
		txns[i] = domain.Transaction{
			ID:         fmt.Sprintf("TXN-%04d", i),
			OccurredAt: baseTime.Add(time.Duration(r.Intn(90*24)) * time.Hour),
			Kind:       allKinds[r.Intn(len(allKinds))],
			Status:     allStatuses[r.Intn(len(allStatuses))],
			Amount:     amount,
			Fee:        fee,
			OwnerID:    fmt.Sprintf("user_%d", r.Intn(4)),
		}
	}
	return txns
}

func ids(txns []domain.Transaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.ID
	}
	return out
}

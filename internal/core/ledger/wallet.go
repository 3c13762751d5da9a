package ledger

import (
	"github.com/SscSPs/wallet_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeWallet reduces a transaction set into a balance snapshot.
//
// Only successful transactions count towards the credited, debited and fee
// totals. Inflow is credit plus refund and outflow is debit plus transfer, the
// same split Aggregate uses, so TotalDebited includes transfers.
// Balance = max(0, credited - debited - fees). Reserved holds pending
// outflows (amount plus fee) and never affects the balance. The result does
// not depend on the order of txns.
func ComputeWallet(txns []domain.Transaction, currencyCode string) domain.WalletSnapshot {
	credited := decimal.Zero
	debited := decimal.Zero
	fees := decimal.Zero
	reserved := decimal.Zero

	for _, t := range txns {
		switch t.Status {
		case domain.StatusSuccess:
			fees = fees.Add(t.Fee)
			if t.Kind.IsInflow() {
				credited = credited.Add(t.Amount)
			} else if t.Kind.IsOutflow() {
				debited = debited.Add(t.Amount)
			}
		case domain.StatusPending:
			if t.Kind.IsOutflow() {
				reserved = reserved.Add(t.Amount).Add(t.Fee)
			}
		}
	}

	balance := credited.Sub(debited).Sub(fees)
	if balance.IsNegative() {
		balance = decimal.Zero
	}

	return domain.WalletSnapshot{
		Balance:       balance,
		TotalCredited: credited,
		TotalDebited:  debited,
		TotalFees:     fees,
		Reserved:      reserved,
		CurrencyCode:  currencyCode,
	}
}

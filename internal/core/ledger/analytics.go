package ledger

import (
	"github.com/SscSPs/wallet_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Aggregate computes KPI totals over a filtered, pre-pagination set.
// Inflow kinds feed TotalCredit and outflow kinds feed TotalDebit, both for
// successful transactions only. SuccessRate is 0 for an empty set.
func Aggregate(filtered []domain.Transaction) domain.Analytics {
	a := domain.Analytics{
		Count:       len(filtered),
		TotalCredit: decimal.Zero,
		TotalDebit:  decimal.Zero,
		TotalFees:   decimal.Zero,
		SuccessRate: decimal.Zero,
	}

	for _, t := range filtered {
		if !t.IsSuccessful() {
			continue
		}
		a.SuccessCount++
		a.TotalFees = a.TotalFees.Add(t.Fee)
		if t.Kind.IsInflow() {
			a.TotalCredit = a.TotalCredit.Add(t.Amount)
		} else if t.Kind.IsOutflow() {
			a.TotalDebit = a.TotalDebit.Add(t.Amount)
		}
	}

	if a.Count > 0 {
		a.SuccessRate = decimal.NewFromInt(int64(a.SuccessCount)).
			Mul(hundred).
			DivRound(decimal.NewFromInt(int64(a.Count)), 8).
			Round(1)
	}
	return a
}

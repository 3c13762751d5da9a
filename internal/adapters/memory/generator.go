package memory

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/SscSPs/wallet_ledger_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GeneratorConfig controls synthetic ledger generation for demos and local runs.
type GeneratorConfig struct {
	Seed         int64
	Count        int
	Owners       []string
	CurrencyCode string
	// Transactions are spread over the Window ending at End.
	End    time.Time
	Window time.Duration
}

var (
	counterparties = []string{"GTBank", "Access Bank", "Zenith Bank", "Opay", "Kuda", "Moniepoint", "First Bank", "UBA"}
	paymentMethods = []string{"card", "bank_transfer", "ussd", "wallet"}
	descriptions   = map[domain.TransactionKind][]string{
		domain.KindCredit:   {"Wallet top-up", "Salary", "Incoming transfer", "Merchant settlement"},
		domain.KindDebit:    {"Airtime purchase", "Electricity bill", "POS purchase", "Cable TV subscription"},
		domain.KindTransfer: {"Transfer to savings", "Sent to friend", "Rent payment"},
		domain.KindRefund:   {"Refund for failed order", "Chargeback credit", "Reversal of duplicate debit"},
	}
	kinds    = []domain.TransactionKind{domain.KindCredit, domain.KindCredit, domain.KindDebit, domain.KindDebit, domain.KindTransfer, domain.KindRefund}
	statuses = []domain.TransactionStatus{
		domain.StatusSuccess, domain.StatusSuccess, domain.StatusSuccess, domain.StatusSuccess,
		domain.StatusSuccess, domain.StatusSuccess, domain.StatusPending, domain.StatusFailed, domain.StatusReversed,
	}
)

// Generate builds a deterministic set of transactions; the same config always yields the same ledger.
func Generate(cfg GeneratorConfig) []domain.Transaction {
	if cfg.Count <= 0 {
		return nil
	}
	owners := cfg.Owners
	if len(owners) == 0 {
		owners = []string{"user_1"}
	}
	if cfg.CurrencyCode == "" {
		cfg.CurrencyCode = "NGN"
	}
	if cfg.End.IsZero() {
		cfg.End = time.Now().UTC()
	}
	if cfg.Window <= 0 {
		cfg.Window = 90 * 24 * time.Hour
	}

	r := rand.New(rand.NewSource(cfg.Seed))
	phones := make(map[string]string, len(owners))
	for _, owner := range owners {
		phones[owner] = fmt.Sprintf("+234 80%d %03d %04d", r.Intn(10), r.Intn(1000), r.Intn(10000))
	}

	txns := make([]domain.Transaction, cfg.Count)
	for i := range txns {
		kind := kinds[r.Intn(len(kinds))]
		owner := owners[r.Intn(len(owners))]
		amount := decimal.New(100+r.Int63n(25_000_000), -2)
		fee := decimal.Zero
		if kind.IsOutflow() {
			fee = amount.Mul(decimal.NewFromFloat(0.015)).Round(2)
		}

		id, err := uuid.NewRandomFromReader(r)
		if err != nil {
			id = uuid.New()
		}
		txns[i] = domain.Transaction{
			ID:                id.String(),
			OccurredAt:        cfg.End.Add(-time.Duration(r.Int63n(int64(cfg.Window)))).Truncate(time.Second).UTC(),
			Kind:              kind,
			Status:            statuses[r.Intn(len(statuses))],
			Amount:            amount,
			Fee:               fee,
			OwnerID:           owner,
			OwnerPhone:        phones[owner],
			Description:       pick(r, descriptions[kind]),
			CounterpartyLabel: pick(r, counterparties),
			PaymentMethod:     pick(r, paymentMethods),
			ReferenceCode:     "TXN-" + strings.ToUpper(id.String()[:8]),
			CurrencyCode:      cfg.CurrencyCode,
		}
	}
	return txns
}

func pick(r *rand.Rand, options []string) string {
	return options[r.Intn(len(options))]
}

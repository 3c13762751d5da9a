package ledger

import (
	"fmt"
	"slices"
	"strings"

	"github.com/SscSPs/wallet_ledger_app/internal/core/domain"
	"github.com/SscSPs/wallet_ledger_app/internal/utils/pagination"
)

// DefaultPhoneCountryCode is the dialling prefix stripped before phone comparison.
const DefaultPhoneCountryCode = "234"

// QueryOptions tunes matching behaviour that is deployment specific.
type QueryOptions struct {
	PhoneCountryCode string
}

func (o QueryOptions) countryCode() string {
	if o.PhoneCountryCode == "" {
		return DefaultPhoneCountryCode
	}
	return strings.TrimPrefix(o.PhoneCountryCode, "+")
}

// Filter applies criteria and the sort order to txns and returns a new slice.
// The input is never modified. Ties keep their original relative order.
func Filter(txns []domain.Transaction, criteria domain.FilterCriteria, opts QueryOptions) []domain.Transaction {
	m := newMatcher(criteria, opts)

	out := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if m.match(t) {
			out = append(out, t)
		}
	}

	slices.SortStableFunc(out, comparator(criteria.EffectiveSortKey()))
	return out
}

// Query filters, sorts and returns the requested 1-indexed page.
// Asking for a page past the end yields no items, not an error.
func Query(txns []domain.Transaction, criteria domain.FilterCriteria, page, pageSize int, opts QueryOptions) (domain.Page, error) {
	if err := criteria.Validate(); err != nil {
		return domain.Page{}, err
	}
	matched := Filter(txns, criteria, opts)
	return Paginate(matched, page, pageSize)
}

// Paginate slices an already filtered and sorted set.
func Paginate(matched []domain.Transaction, page, pageSize int) (domain.Page, error) {
	window, err := pagination.Bounds(page, pageSize, len(matched))
	if err != nil {
		return domain.Page{}, fmt.Errorf("invalid page request: %w", err)
	}

	items := make([]domain.Transaction, window.Len())
	copy(items, matched[window.Start:window.End])

	return domain.Page{
		Items:        items,
		TotalMatched: len(matched),
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   pagination.TotalPages(len(matched), pageSize),
	}, nil
}

type matcher struct {
	criteria    domain.FilterCriteria
	needle      string
	phoneNeedle string
	countryCode string
}

func newMatcher(criteria domain.FilterCriteria, opts QueryOptions) matcher {
	cc := opts.countryCode()
	needle := strings.ToLower(strings.TrimSpace(criteria.SearchText))
	return matcher{
		criteria:    criteria,
		needle:      needle,
		phoneNeedle: NormalizePhone(needle, cc),
		countryCode: cc,
	}
}

func (m matcher) match(t domain.Transaction) bool {
	return m.matchText(t) &&
		m.matchKind(t) &&
		m.matchStatus(t) &&
		m.matchDate(t) &&
		m.matchAmount(t)
}

func (m matcher) matchText(t domain.Transaction) bool {
	if m.needle == "" {
		return true
	}
	fields := []string{t.ID, t.Description, t.CounterpartyLabel, t.ReferenceCode, t.OwnerID, t.OwnerPhone}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), m.needle) {
			return true
		}
	}
	if m.phoneNeedle == "" || t.OwnerPhone == "" {
		return false
	}
	return strings.Contains(NormalizePhone(t.OwnerPhone, m.countryCode), m.phoneNeedle)
}

func (m matcher) matchKind(t domain.Transaction) bool {
	return m.criteria.Kind == nil || t.Kind == *m.criteria.Kind
}

func (m matcher) matchStatus(t domain.Transaction) bool {
	return m.criteria.Status == nil || t.Status == *m.criteria.Status
}

// matchDate is lenient for undated records: they pass unless StrictDates is set.
func (m matcher) matchDate(t domain.Transaction) bool {
	from, to := m.criteria.DateFrom, m.criteria.DateTo
	if from == nil && to == nil {
		return true
	}
	if !t.HasTimestamp() {
		return !m.criteria.StrictDates
	}
	if from != nil && t.OccurredAt.Before(*from) {
		return false
	}
	if to != nil && t.OccurredAt.After(*to) {
		return false
	}
	return true
}

func (m matcher) matchAmount(t domain.Transaction) bool {
	if m.criteria.AmountFrom != nil && t.Amount.LessThan(*m.criteria.AmountFrom) {
		return false
	}
	if m.criteria.AmountTo != nil && t.Amount.GreaterThan(*m.criteria.AmountTo) {
		return false
	}
	return true
}

func comparator(key domain.SortKey) func(a, b domain.Transaction) int {
	switch key {
	case domain.SortOldest:
		return func(a, b domain.Transaction) int { return a.OccurredAt.Compare(b.OccurredAt) }
	case domain.SortAmountDesc:
		return func(a, b domain.Transaction) int { return b.Amount.Cmp(a.Amount) }
	case domain.SortAmountAsc:
		return func(a, b domain.Transaction) int { return a.Amount.Cmp(b.Amount) }
	default:
		return func(a, b domain.Transaction) int { return b.OccurredAt.Compare(a.OccurredAt) }
	}
}

// NormalizePhone reduces a phone number (or a search fragment of one) to the
// digits after the country code, so "+234 803 000 1111", "2348030001111" and
// "08030001111" all normalise to "8030001111". Input without digits yields "".
func NormalizePhone(raw, countryCode string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		switch r {
		case ' ', '-', '(', ')', '.', '+':
		default:
			// not a phone-like string
			return ""
		}
	}
	digits := b.String()
	if countryCode != "" && strings.HasPrefix(digits, countryCode) && len(digits) > len(countryCode) {
		digits = strings.TrimPrefix(digits, countryCode)
	}
	return strings.TrimPrefix(digits, "0")
}

package ledger_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/SscSPs/wallet_ledger_app/internal/apperrors"
	"github.com/SscSPs/wallet_ledger_app/internal/core/domain"
	"github.com/SscSPs/wallet_ledger_app/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noOpts = ledger.QueryOptions{}

func TestQuery_StatusFilter(t *testing.T) {
	txns := make([]domain.Transaction, 0, 10)
	for i := 0; i < 10; i++ {
		status := domain.StatusSuccess
		if i%3 == 0 && i > 0 {
			status = domain.StatusFailed
		}
		txns = append(txns, newTxn(fmt.Sprintf("t%02d", i), domain.KindDebit, status, "100", "1"))
	}

	page, err := ledger.Query(txns, domain.FilterCriteria{Status: statusPtr(domain.StatusFailed)}, 1, 15, noOpts)

	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalMatched)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 1, page.TotalPages)
	for _, item := range page.Items {
		assert.Equal(t, domain.StatusFailed, item.Status)
	}
}

func TestQuery_AmountRangeInclusive(t *testing.T) {
	txns := []domain.Transaction{
		newTxn("below", domain.KindCredit, domain.StatusSuccess, "999.99", "0"),
		newTxn("lower-edge", domain.KindCredit, domain.StatusSuccess, "1000", "0"),
		newTxn("upper-edge", domain.KindCredit, domain.StatusSuccess, "5000", "0"),
		newTxn("above", domain.KindCredit, domain.StatusSuccess, "6000", "0"),
	}
	criteria := domain.FilterCriteria{AmountFrom: decPtr("1000"), AmountTo: decPtr("5000"), SortKey: domain.SortAmountAsc}

	got := ledger.Filter(txns, criteria, noOpts)

	assert.Equal(t, []string{"lower-edge", "upper-edge"}, ids(got))
}

func TestFilter_TextSearch(t *testing.T) {
	base := newTxn("TXN-ABC-1", domain.KindCredit, domain.StatusSuccess, "10", "0")
	withDesc := base
	withDesc.ID = "t-desc"
	withDesc.Description = "Salary for MAY"
	withCounterparty := base
	withCounterparty.ID = "t-cp"
	withCounterparty.CounterpartyLabel = "Acme Stores"
	withRef := base
	withRef.ID = "t-ref"
	withRef.ReferenceCode = "REF-77421"
	withOwner := base
	withOwner.ID = "t-owner"
	withOwner.OwnerID = "merchant_kola"
	txns := []domain.Transaction{base, withDesc, withCounterparty, withRef, withOwner}

	tests := []struct {
		search string
		want   []string
	}{
		{"abc-1", []string{"TXN-ABC-1"}},
		{"salary", []string{"t-desc"}},
		{"ACME", []string{"t-cp"}},
		{"77421", []string{"t-ref"}},
		{"kola", []string{"t-owner"}},
		{"  ", []string{"TXN-ABC-1", "t-desc", "t-cp", "t-ref", "t-owner"}},
		{"nothing-matches", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			got := ledger.Filter(txns, domain.FilterCriteria{SearchText: tt.search}, noOpts)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_PhoneSearchIgnoresCountryCode(t *testing.T) {
	intl := newTxn("intl", domain.KindCredit, domain.StatusSuccess, "10", "0")
	intl.OwnerPhone = "+2348030001111"
	local := newTxn("local", domain.KindCredit, domain.StatusSuccess, "10", "0")
	local.OwnerPhone = "08030001111"
	other := newTxn("other", domain.KindCredit, domain.StatusSuccess, "10", "0")
	other.OwnerPhone = "+2347059998888"
	txns := []domain.Transaction{intl, local, other}

	for _, search := range []string{"08030001111", "+234 803 000 1111", "2348030001111", "8030001111", "803-000"} {
		t.Run(search, func(t *testing.T) {
			got := ledger.Filter(txns, domain.FilterCriteria{SearchText: search}, noOpts)
			assert.Equal(t, []string{"intl", "local"}, ids(got))
		})
	}

	us := newTxn("us", domain.KindCredit, domain.StatusSuccess, "10", "0")
	us.OwnerPhone = "04155550100"
	usOnly := []domain.Transaction{us}
	search := domain.FilterCriteria{SearchText: "+1 415 555 0100"}

	assert.Empty(t, ledger.Filter(usOnly, search, noOpts))
	assert.Equal(t, []string{"us"}, ids(ledger.Filter(usOnly, search, ledger.QueryOptions{PhoneCountryCode: "+1"})))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "8030001111", ledger.NormalizePhone("+234 (803) 000-1111", "234"))
	assert.Equal(t, "8030001111", ledger.NormalizePhone("08030001111", "234"))
	assert.Equal(t, "234", ledger.NormalizePhone("234", "234"))
	assert.Equal(t, "", ledger.NormalizePhone("salary", "234"))
	assert.Equal(t, "", ledger.NormalizePhone("", "234"))
}

func TestFilter_KindAndStatus(t *testing.T) {
	txns := []domain.Transaction{
		newTxn("c-ok", domain.KindCredit, domain.StatusSuccess, "10", "0"),
		newTxn("c-fail", domain.KindCredit, domain.StatusFailed, "10", "0"),
		newTxn("d-ok", domain.KindDebit, domain.StatusSuccess, "10", "0"),
	}

	got := ledger.Filter(txns, domain.FilterCriteria{Kind: kindPtr(domain.KindCredit)}, noOpts)
	assert.Equal(t, []string{"c-ok", "c-fail"}, ids(got))

	got = ledger.Filter(txns, domain.FilterCriteria{Kind: kindPtr(domain.KindCredit), Status: statusPtr(domain.StatusSuccess)}, noOpts)
	assert.Equal(t, []string{"c-ok"}, ids(got))
}

func TestFilter_DateRange(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 5, d, 12, 0, 0, 0, time.UTC) }
	mk := func(id string, at time.Time) domain.Transaction {
		tx := newTxn(id, domain.KindCredit, domain.StatusSuccess, "10", "0")
		tx.OccurredAt = at
		return tx
	}
	txns := []domain.Transaction{
		mk("may-1", day(1)),
		mk("may-2", day(2)),
		mk("may-3", day(3)),
		mk("undated", time.Time{}),
	}
	from := timePtr(day(2))
	to := timePtr(day(3))

	lenient := ledger.Filter(txns, domain.FilterCriteria{DateFrom: from, DateTo: to, SortKey: domain.SortOldest}, noOpts)
	assert.Equal(t, []string{"undated", "may-2", "may-3"}, ids(lenient), "bounds are inclusive and undated records pass by default")

	strict := ledger.Filter(txns, domain.FilterCriteria{DateFrom: from, DateTo: to, StrictDates: true, SortKey: domain.SortOldest}, noOpts)
	assert.Equal(t, []string{"may-2", "may-3"}, ids(strict))

	openEnded := ledger.Filter(txns, domain.FilterCriteria{DateTo: timePtr(day(1)), StrictDates: true}, noOpts)
	assert.Equal(t, []string{"may-1"}, ids(openEnded))

	noBounds := ledger.Filter(txns, domain.FilterCriteria{StrictDates: true}, noOpts)
	assert.Len(t, noBounds, 4, "strict dates only matter when a bound is set")
}

func TestFilter_SortOrders(t *testing.T) {
	mk := func(id, amount string, hoursAgo int) domain.Transaction {
		tx := newTxn(id, domain.KindCredit, domain.StatusSuccess, amount, "0")
		tx.OccurredAt = baseTime.Add(-time.Duration(hoursAgo) * time.Hour)
		return tx
	}
	txns := []domain.Transaction{
		mk("a", "300", 3),
		mk("b", "100", 1),
		mk("c", "300", 2),
		mk("d", "200", 4),
	}

	tests := []struct {
		key  domain.SortKey
		want []string
	}{
		{"", []string{"b", "c", "a", "d"}},
		{domain.SortRecent, []string{"b", "c", "a", "d"}},
		{domain.SortOldest, []string{"d", "a", "c", "b"}},
		{domain.SortAmountDesc, []string{"a", "c", "d", "b"}},
		{domain.SortAmountAsc, []string{"b", "d", "a", "c"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got := ledger.Filter(txns, domain.FilterCriteria{SortKey: tt.key}, noOpts)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_StableForTies(t *testing.T) {
	txns := make([]domain.Transaction, 0, 20)
	for i := 0; i < 20; i++ {
		txns = append(txns, newTxn(fmt.Sprintf("t%02d", i), domain.KindCredit, domain.StatusSuccess, "500", "0"))
	}
	want := ids(txns)

	for _, key := range []domain.SortKey{domain.SortRecent, domain.SortOldest, domain.SortAmountDesc, domain.SortAmountAsc} {
		got := ledger.Filter(txns, domain.FilterCriteria{SortKey: key}, noOpts)
		assert.Equal(t, want, ids(got), "sort %s must keep input order for ties", key)
	}
}

func TestFilter_IdempotentAndPure(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	txns := randomLedger(r, 80)
	before := ids(txns)
	criteria := domain.FilterCriteria{
		Status:   statusPtr(domain.StatusSuccess),
		AmountTo: decPtr("60000"),
		SortKey:  domain.SortAmountDesc,
	}

	first := ledger.Filter(txns, criteria, noOpts)
	second := ledger.Filter(txns, criteria, noOpts)

	assert.Equal(t, ids(first), ids(second))
	assert.Equal(t, before, ids(txns), "input order must not change")
}

func TestQuery_PaginationCoverage(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	txns := randomLedger(r, 97)
	criteria := domain.FilterCriteria{Kind: kindPtr(domain.KindDebit), SortKey: domain.SortRecent}
	pageSize := 7

	expected := ids(ledger.Filter(txns, criteria, noOpts))
	first, err := ledger.Query(txns, criteria, 1, pageSize, noOpts)
	require.NoError(t, err)
	require.Equal(t, len(expected), first.TotalMatched)

	var collected []string
	seen := map[string]bool{}
	for p := 1; p <= first.TotalPages; p++ {
		page, err := ledger.Query(txns, criteria, p, pageSize, noOpts)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(page.Items), pageSize)
		for _, item := range page.Items {
			assert.False(t, seen[item.ID], "duplicate %s", item.ID)
			seen[item.ID] = true
			collected = append(collected, item.ID)
		}
	}

	assert.Equal(t, expected, collected)
}

func TestQuery_PageBeyondEnd(t *testing.T) {
	txns := []domain.Transaction{
		newTxn("t1", domain.KindCredit, domain.StatusSuccess, "10", "0"),
		newTxn("t2", domain.KindCredit, domain.StatusSuccess, "10", "0"),
	}

	page, err := ledger.Query(txns, domain.FilterCriteria{}, 5, 10, noOpts)

	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 2, page.TotalMatched)
	assert.Equal(t, 1, page.TotalPages)
}

func TestQuery_InvalidInput(t *testing.T) {
	_, err := ledger.Query(nil, domain.FilterCriteria{}, 0, 10, noOpts)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = ledger.Query(nil, domain.FilterCriteria{}, 1, 0, noOpts)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = ledger.Query(nil, domain.FilterCriteria{SortKey: "largest"}, 1, 10, noOpts)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestQuery_EmptySetIsNotAnError(t *testing.T) {
	page, err := ledger.Query(nil, domain.FilterCriteria{SearchText: "anything"}, 1, 10, noOpts)

	require.NoError(t, err)
	assert.Equal(t, 0, page.TotalMatched)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestQuery_HugePageIsEmptyNotPanic(t *testing.T) {
	txns := []domain.Transaction{
		newTxn("a", domain.KindCredit, domain.StatusSuccess, "10", "0"),
		newTxn("b", domain.KindDebit, domain.StatusSuccess, "5", "0"),
	}

	var page domain.Page
	var err error
	assert.NotPanics(t, func() {
		page, err = ledger.Query(txns, domain.FilterCriteria{}, 1<<62, 20, noOpts)
	})

	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 2, page.TotalMatched)
	assert.Equal(t, 1, page.TotalPages)
}

package ledger_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/wallet_ledger_app/internal/apperrors"
	"github.com/SscSPs/wallet_ledger_app/internal/core/domain"
	"github.com/SscSPs/wallet_ledger_app/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDelimited_ColumnsAndFormatting(t *testing.T) {
	tx := newTxn("TXN-1", domain.KindCredit, domain.StatusSuccess, "50000", "500")
	tx.OwnerPhone = "+2348030001111"
	tx.Description = "Wallet top-up"
	tx.CounterpartyLabel = "GTBank"
	tx.OccurredAt = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	rows, err := ledger.WriteDelimited(&buf, []domain.Transaction{tx}, ledger.ExportOptions{Delimiter: ',', CurrencySymbol: "₦"})

	require.NoError(t, err)
	assert.Equal(t, 1, rows)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,owner_id,phone,kind,status,amount,fee,net,description,counterparty,timestamp", lines[0])
	assert.Equal(t, "TXN-1,user_1,+2348030001111,credit,success,₦50000.00,₦500.00,₦49500.00,Wallet top-up,GTBank,2024-05-01T09:30:00Z", lines[1])
}

func TestWriteDelimited_QuotesDelimiterBearingText(t *testing.T) {
	tx := newTxn("TXN-2", domain.KindDebit, domain.StatusFailed, "10.5", "0.25")
	tx.Description = "Rent, June \"flat 3\""
	tx.CounterpartyLabel = "Line\nbreak"
	tx.OccurredAt = time.Time{}

	var buf bytes.Buffer
	_, err := ledger.WriteDelimited(&buf, []domain.Transaction{tx}, ledger.ExportOptions{CurrencySymbol: "$"})
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	row := records[1]
	require.Len(t, row, len(ledger.ExportColumns), "free text must not shift columns")
	assert.Equal(t, "Rent, June \"flat 3\"", row[8])
	assert.Equal(t, "Line\nbreak", row[9])
	assert.Equal(t, "$10.50", row[5])
	assert.Equal(t, "$0.25", row[6])
	assert.Equal(t, "$10.25", row[7])
	assert.Equal(t, "", row[10], "undated records export an empty timestamp")
}

func TestWriteDelimited_CustomDelimiter(t *testing.T) {
	tx := newTxn("TXN-3", domain.KindRefund, domain.StatusSuccess, "1", "0")
	tx.Description = "a;b"

	var buf bytes.Buffer
	_, err := ledger.WriteDelimited(&buf, []domain.Transaction{tx}, ledger.ExportOptions{Delimiter: ';'})
	require.NoError(t, err)

	r := csv.NewReader(&buf)
	r.Comma = ';'
	records, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "a;b", records[1][8])
}

func TestWriteDelimited_EmptySetWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	rows, err := ledger.WriteDelimited(&buf, nil, ledger.ExportOptions{})

	require.NoError(t, err)
	assert.Equal(t, 0, rows)
	assert.Equal(t, strings.Join(ledger.ExportColumns, ",")+"\n", buf.String())
}

func TestWriteDelimited_RejectsQuoteDelimiter(t *testing.T) {
	var buf bytes.Buffer
	_, err := ledger.WriteDelimited(&buf, nil, ledger.ExportOptions{Delimiter: '"'})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "transactions-2024-05-01.csv", ledger.ExportFilename("", now))
	assert.Equal(t, "wallet-2024-05-01.csv", ledger.ExportFilename("wallet", now))
}

package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/SscSPs/wallet_ledger_app/internal/apperrors"
	"github.com/SscSPs/wallet_ledger_app/internal/core/domain"
	"github.com/SscSPs/wallet_ledger_app/internal/utils"
)

// ExportColumns is the fixed column order of the delimited export.
var ExportColumns = []string{
	"id", "owner_id", "phone", "kind", "status",
	"amount", "fee", "net", "description", "counterparty", "timestamp",
}

// ExportOptions controls the delimited rendering.
type ExportOptions struct {
	Delimiter      rune
	CurrencySymbol string
}

// WriteDelimited renders txns as a header plus one row per transaction.
// Fields containing the delimiter, quotes or line breaks are quoted, so free
// text can never shift columns. It returns the number of data rows written.
func WriteDelimited(w io.Writer, txns []domain.Transaction, opts ExportOptions) (int, error) {
	delim := opts.Delimiter
	if delim == 0 {
		delim = ','
	}
	if delim == '"' || delim == '\r' || delim == '\n' {
		return 0, fmt.Errorf("%w: unusable export delimiter %q", apperrors.ErrValidation, delim)
	}

	cw := csv.NewWriter(w)
	cw.Comma = delim

	if err := cw.Write(ExportColumns); err != nil {
		return 0, fmt.Errorf("failed to write export header: %w", err)
	}

	rows := 0
	for _, t := range txns {
		if err := cw.Write(exportRow(t, opts.CurrencySymbol)); err != nil {
			return rows, fmt.Errorf("failed to write export row for transaction %s: %w", t.ID, err)
		}
		rows++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return rows, fmt.Errorf("failed to flush export: %w", err)
	}
	return rows, nil
}

func exportRow(t domain.Transaction, symbol string) []string {
	ts := ""
	if t.HasTimestamp() {
		ts = t.OccurredAt.UTC().Format(time.RFC3339)
	}
	return []string{
		t.ID,
		t.OwnerID,
		t.OwnerPhone,
		string(t.Kind),
		string(t.Status),
		utils.FormatMoney(t.Amount, symbol),
		utils.FormatMoney(t.Fee, symbol),
		utils.FormatMoney(t.Net(), symbol),
		t.Description,
		t.CounterpartyLabel,
		ts,
	}
}

// ExportFilename builds the download name, e.g. "transactions-2024-05-01.csv".
func ExportFilename(prefix string, now time.Time) string {
	if prefix == "" {
		prefix = "transactions"
	}
	return fmt.Sprintf("%s-%s.csv", prefix, now.Format("2006-01-02"))
}

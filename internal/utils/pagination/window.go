package pagination

import (
	"fmt"

	"github.com/SscSPs/wallet_ledger_app/internal/apperrors"
)

// Window is the half-open index range [Start, End) of one page within a result set.
type Window struct {
	Start int
	End   int
}

// Len returns the number of items covered by the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// Bounds computes the slice window for a 1-indexed page over total items.
// A page past the end yields an empty window rather than an error.
func Bounds(page, pageSize, total int) (Window, error) {
	if page < 1 {
		return Window{}, fmt.Errorf("%w: page must be >= 1, got %d", apperrors.ErrValidation, page)
	}
	if pageSize < 1 {
		return Window{}, fmt.Errorf("%w: page size must be >= 1, got %d", apperrors.ErrValidation, pageSize)
	}
	if total < 0 {
		total = 0
	}

	// compare page counts before multiplying so a huge page cannot overflow the offset
	if page > TotalPages(total, pageSize) {
		return Window{Start: total, End: total}, nil
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	return Window{Start: start, End: end}, nil
}

// TotalPages returns ceil(total/pageSize), or 0 when there is nothing to page.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPageSize applies the default when size is unset and caps it at max.
func ClampPageSize(size, defaultSize, max int) int {
	if size <= 0 {
		size = defaultSize
	}
	if max > 0 && size > max {
		size = max
	}
	return size
}

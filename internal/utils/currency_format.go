package utils

import (
	"github.com/shopspring/decimal"
)

// MinorUnitPrecision is the number of decimal places money is rendered with.
const MinorUnitPrecision = 2

// FormatMoney renders an amount with a currency symbol prefix and a fixed two decimal places.
// Example: 50000 with "₦" returns "₦50000.00"
// Example: -12.345 with "$" returns "-$12.35"
func FormatMoney(amount decimal.Decimal, symbol string) string {
	if amount.IsNegative() {
		return "-" + symbol + amount.Abs().StringFixed(MinorUnitPrecision)
	}
	return symbol + amount.StringFixed(MinorUnitPrecision)
}

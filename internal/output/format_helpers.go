package output

import (
	"fmt"
	"strconv"

	money "github.com/rpgo/projection-engine/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with thousands separators and 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return money.NewMoneyFromDecimal(amount).Format() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatMonths renders a month count as "N months (Y yr M mo)".
func FormatMonths(months int) string {
	if months < 12 {
		return fmt.Sprintf("%d months", months)
	}
	return fmt.Sprintf("%d months (%d yr %d mo)", months, months/12, months%12)
}

// FormatAge renders a fractional age with one decimal.
func FormatAge(age float64) string { return strconv.FormatFloat(age, 'f', 1, 64) }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

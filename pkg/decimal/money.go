package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount. Arithmetic keeps full precision; Round is only for presentation.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds to cents (half away from zero).
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// NonNegative clamps the amount at zero.
func (m Money) NonNegative() Money {
	if m.Decimal.IsNegative() {
		return Zero()
	}
	return m
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// Format renders the amount as currency with thousands separators, e.g. -$1,234.50.
func (m Money) Format() string {
	s := m.Decimal.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if m.Decimal.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

package finances

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the only currency handled by the finances package.
const Currency = money.BRL

// amountFormatter renders amounts the way reports have always printed them:
// comma for thousands, dot for decimals, no grapheme.
var amountFormatter = money.NewFormatter(2, ".", ",", "", "1")

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
}

// M returns the Money for value.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses an amount like "1500", "-12.5" or "56,25".
func ParseMoney(s string) (Money, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w %q: %v", ErrInvalidAmount, s, err)
	}
	return Money{value: v}, nil
}

// maxCents is the largest amount, in cents, amountFormatter can take.
var maxCents = decimal.NewFromInt(math.MaxInt64)

// String returns the amount with 2 decimals and thousands separators, e.g. "5,000.00".
// A negative amount keeps its sign even when it rounds to zero: "-0.00".
func (m Money) String() string {
	rounded := m.value.Round(2)
	var s string
	if cents := rounded.Shift(2); cents.Abs().LessThanOrEqual(maxCents) {
		s = amountFormatter.Format(cents.IntPart())
	} else {
		s = groupThousands(rounded.StringFixed(2))
	}
	if m.value.IsNegative() && rounded.IsZero() {
		s = "-" + s
	}
	return s
}

// groupThousands inserts a comma every three digits of the integer part of a
// fixed point number like "-1234567.89".
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	digits, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	b.WriteString(sign)
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// BRL returns the amount prefixed with the real symbol, e.g. "R$56.25".
func (m Money) BRL() string { return "R$" + m.String() }

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(r Rate) Money                { return Money{value: m.value.Mul(r.value)} }

// Decimal returns the exact amount.
func (m Money) Decimal() decimal.Decimal { return m.value }

// Round returns the amount rounded to the currency cents.
func (m Money) Round() Money { return Money{value: m.value.Round(2)} }

// Deprecated: AsFloat should no longer be used, the purpose is to keep the calculation exact.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

func (m *Money) UnmarshalJSON(b []byte) error { return m.value.UnmarshalJSON(b) }

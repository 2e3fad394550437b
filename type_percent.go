package finances

import "github.com/shopspring/decimal"

// Percent is a rate expressed in percent: 12.36 prints as "12.36%".
type Percent struct {
	value decimal.Decimal
}

// P returns the Percent for value.
func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

func (p Percent) Equal(q Percent) bool     { return p.value.Equal(q.value) }
func (p Percent) Decimal() decimal.Decimal { return p.value }

// String rounds to 2 decimals.
func (p Percent) String() string { return p.value.StringFixed(2) + "%" }

func (p Percent) MarshalJSON() ([]byte, error)  { return p.value.MarshalJSON() }
func (p *Percent) UnmarshalJSON(b []byte) error { return p.value.UnmarshalJSON(b) }

package finances

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Rate is a multiplicative factor applied once per month: 1.03 means +3% a month.
type Rate struct {
	value decimal.Decimal
}

// R returns the Rate for value.
func R[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Rate {
	return Rate{value: newDecimal(value)}
}

// ParseRate parses a monthly factor like "1.03".
func ParseRate(s string) (Rate, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Rate{}, fmt.Errorf("%w %q: %v", ErrInvalidRate, s, err)
	}
	if v.IsNegative() {
		return Rate{}, fmt.Errorf("%w %q: must not be negative", ErrInvalidRate, s)
	}
	return Rate{value: v}, nil
}

// Pow returns the rate compounded n times. n can be negative.
//
// Any rate to the power 0 is 1, and a zero rate stays zero for every other n.
func (r Rate) Pow(n int) Rate {
	if n == 0 {
		return Rate{value: decimal.NewFromInt(1)}
	}
	if r.value.IsZero() {
		return Rate{}
	}
	return Rate{value: r.value.Pow(decimal.NewFromInt(int64(n)))}
}

func (r Rate) Equal(s Rate) bool             { return r.value.Equal(s.value) }
func (r Rate) IsZero() bool                  { return r.value.IsZero() }
func (r Rate) Mul(s Rate) Rate               { return Rate{value: r.value.Mul(s.value)} }
func (r Rate) String() string                { return r.value.String() }
func (r Rate) Decimal() decimal.Decimal      { return r.value }
func (r Rate) MarshalJSON() ([]byte, error)  { return r.value.MarshalJSON() }
func (r *Rate) UnmarshalJSON(b []byte) error { return r.value.UnmarshalJSON(b) }

// Annual returns the rate times twelve, as a percentage-like number.
// 1.03 gives 12.36: this is not a compounded annual return.
func (r Rate) Annual() Percent {
	return Percent{value: r.value.Mul(decimal.NewFromInt(12))}
}

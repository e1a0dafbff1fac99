package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Quantity represents an exact, non-rounded amount of goods or money
type Quantity decimal.Decimal

// ZeroQuantity is the additive identity
var ZeroQuantity = Quantity(decimal.Zero)

// NewQuantity creates a Quantity from an integer value
func NewQuantity(value int64) Quantity {
	return Quantity(decimal.NewFromInt(value))
}

// NewQuantityFromFloat creates a Quantity from a float value
func NewQuantityFromFloat(value float64) Quantity {
	return Quantity(decimal.NewFromFloat(value))
}

// ParseQuantity parses a decimal string such as "150" or "12.5"
func ParseQuantity(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return ZeroQuantity, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	return Quantity(d), nil
}

// Decimal returns the underlying decimal value
func (q Quantity) Decimal() decimal.Decimal {
	return decimal.Decimal(q)
}

func (q Quantity) Add(other Quantity) Quantity {
	return Quantity(q.Decimal().Add(other.Decimal()))
}

func (q Quantity) Sub(other Quantity) Quantity {
	return Quantity(q.Decimal().Sub(other.Decimal()))
}

func (q Quantity) Mul(other Quantity) Quantity {
	return Quantity(q.Decimal().Mul(other.Decimal()))
}

// Min returns the smaller of q and other, preferring q on a tie
func (q Quantity) Min(other Quantity) Quantity {
	if other.Decimal().LessThan(q.Decimal()) {
		return other
	}
	return q
}

// Cmp compares q and other numerically, returning -1, 0 or +1
func (q Quantity) Cmp(other Quantity) int {
	return q.Decimal().Cmp(other.Decimal())
}

// Equal reports numeric equality regardless of scale
func (q Quantity) Equal(other Quantity) bool {
	return q.Decimal().Equal(other.Decimal())
}

func (q Quantity) IsZero() bool {
	return q.Decimal().IsZero()
}

func (q Quantity) IsNegative() bool {
	return q.Decimal().IsNegative()
}

func (q Quantity) IsPositive() bool {
	return q.Decimal().IsPositive()
}

// IsInteger reports whether q has no fractional part
func (q Quantity) IsInteger() bool {
	return q.Decimal().IsInteger()
}

func (q Quantity) String() string {
	return q.Decimal().String()
}

// MarshalJSON encodes the quantity as a decimal string to keep it exact
func (q Quantity) MarshalJSON() ([]byte, error) {
	return q.Decimal().MarshalJSON()
}

// UnmarshalJSON accepts both quoted and bare JSON numbers
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*q = Quantity(d)
	return nil
}

// Sum adds up a sequence of quantities
func Sum(values []Quantity) Quantity {
	total := ZeroQuantity
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

package kernel

import (
	"logistics/internal/pkg/errs"

	"github.com/holiman/uint256"
)

// Decimals is the number of decimal places between the reference unit of account
// and the smallest currency unit in which every Amount is expressed.
// One reference unit equals 10^18 smallest units.
const Decimals = 18

var unitScale = new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(Decimals))

// Amount is a non-negative quantity of value in the smallest currency unit.
// Arithmetic never wraps: overflow surfaces errs.ErrArithmeticOverflow and
// subtraction below zero surfaces errs.ErrInsufficientFunds.
type Amount struct {
	v uint256.Int
}

// ZeroAmount returns an Amount of zero.
func ZeroAmount() Amount {
	return Amount{}
}

// NewAmount returns n smallest units.
func NewAmount(n uint64) Amount {
	var a Amount
	a.v.SetUint64(n)
	return a
}

// NewAmountFromUnits returns n whole reference units (n * 10^18 smallest units).
func NewAmountFromUnits(n uint64) (Amount, error) {
	return NewAmount(n).Mul(Amount{v: *unitScale})
}

// AmountFromDecimal parses a base-10 string of smallest units.
func AmountFromDecimal(s string) (Amount, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return Amount{v: *v}, nil
}

// Add returns a + b.
func (a Amount) Add(b Amount) (Amount, error) {
	var r Amount
	if _, overflow := r.v.AddOverflow(&a.v, &b.v); overflow {
		return Amount{}, errs.NewArithmeticOverflowError("addition")
	}
	return r, nil
}

// Sub returns a - b, or an InsufficientFundsError when b exceeds a.
func (a Amount) Sub(b Amount) (Amount, error) {
	if a.v.Lt(&b.v) {
		return Amount{}, errs.NewInsufficientFundsError(b, a)
	}
	var r Amount
	r.v.Sub(&a.v, &b.v)
	return r, nil
}

// Mul returns a * b.
func (a Amount) Mul(b Amount) (Amount, error) {
	var r Amount
	if _, overflow := r.v.MulOverflow(&a.v, &b.v); overflow {
		return Amount{}, errs.NewArithmeticOverflowError("multiplication")
	}
	return r, nil
}

// MulUint64 returns a * n.
func (a Amount) MulUint64(n uint64) (Amount, error) {
	return a.Mul(NewAmount(n))
}

// DivUint64 returns a / n truncated toward zero. n must not be zero.
func (a Amount) DivUint64(n uint64) (Amount, error) {
	if n == 0 {
		return Amount{}, errs.NewValueIsInvalidError("divisor")
	}
	var r Amount
	r.v.Div(&a.v, uint256.NewInt(n))
	return r, nil
}

// DivModUint64 returns a / n and a % n. n must not be zero.
func (a Amount) DivModUint64(n uint64) (Amount, Amount, error) {
	if n == 0 {
		return Amount{}, Amount{}, errs.NewValueIsInvalidError("divisor")
	}
	var q, m Amount
	q.v.DivMod(&a.v, uint256.NewInt(n), &m.v)
	return q, m, nil
}

// Cmp returns -1, 0 or +1 as a is less than, equal to or greater than b.
func (a Amount) Cmp(b Amount) int {
	return a.v.Cmp(&b.v)
}

// IsEqual reports whether a == b.
func (a Amount) IsEqual(b Amount) bool {
	return a.v.Eq(&b.v)
}

// LessThan reports whether a < b.
func (a Amount) LessThan(b Amount) bool {
	return a.v.Lt(&b.v)
}

// IsZero reports whether a == 0.
func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

// String returns the base-10 representation in smallest units.
func (a Amount) String() string {
	return a.v.Dec()
}

package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math/big"
)

// maxExponent limits exact powers. Any base other than 0, 1 and -1 raised
// to a larger exponent does not fit into 64 bits.
const maxExponent = 63

// TryExactValue computes the value of an expression with exact rational
// arithmetic. It succeeds only if every leaf is an Integer or Rational literal
// and every operator is one of Addition, Multiplication, Division, Negative and
// Power with an integer exponent.
//
// The result (and every intermediate value) must be representable as a
// fraction of two 64-bit integers. Divisions by zero, zero raised to a negative
// power and results out of range make TryExactValue fail.
//
// The result is reduced and has a positive denominator.
func TryExactValue(e Expression) (*big.Rat, bool) {
	r, ok := exact(e)
	if !ok || !Fits(r) {
		return nil, false
	}
	return r, true
}

func exact(e Expression) (*big.Rat, bool) {
	switch x := e.(type) {
	case Integer:
		return new(big.Rat).SetInt64(int64(x)), true
	case Rational:
		if x.Den == 0 {
			return nil, false
		}
		return new(big.Rat).SetFrac64(x.Num, x.Den), true
	case Negative:
		r, ok := TryExactValue(x.X)
		if !ok {
			return nil, false
		}
		return r.Neg(r), true
	case Addition:
		sum := new(big.Rat)
		for _, a := range x {
			r, ok := TryExactValue(a)
			if !ok {
				return nil, false
			}
			if sum.Add(sum, r); !Fits(sum) {
				return nil, false
			}
		}
		return sum, true
	case Multiplication:
		product := new(big.Rat).SetInt64(1)
		for _, f := range x {
			r, ok := TryExactValue(f)
			if !ok {
				return nil, false
			}
			if product.Mul(product, r); !Fits(product) {
				return nil, false
			}
		}
		return product, true
	case Division:
		n, ok := TryExactValue(x.Num)
		if !ok {
			return nil, false
		}
		d, ok := TryExactValue(x.Den)
		if !ok || d.Sign() == 0 {
			return nil, false
		}
		return n.Quo(n, d), true
	case Power:
		b, ok := TryExactValue(x.Base)
		if !ok {
			return nil, false
		}
		p, ok := TryExactValue(x.Exp)
		if !ok || !p.IsInt() {
			return nil, false
		}
		return exactPower(b, p.Num().Int64())
	}
	return nil, false
}

func exactPower(b *big.Rat, n int64) (*big.Rat, bool) {
	switch {
	case n == 0:
		return new(big.Rat).SetInt64(1), true
	case b.Sign() == 0:
		if n < 0 {
			return nil, false
		}
		return b, true
	case b.IsInt() && b.Num().IsInt64() && (b.Num().Int64() == 1 || b.Num().Int64() == -1):
		if b.Num().Int64() == -1 && n%2 == 0 {
			return new(big.Rat).SetInt64(1), true
		}
		return b, true
	case n > maxExponent || n < -maxExponent:
		return nil, false
	}
	k := big.NewInt(n)
	if n < 0 {
		b = new(big.Rat).Inv(b)
		k.Neg(k)
	}
	num := new(big.Int).Exp(b.Num(), k, nil)
	den := new(big.Int).Exp(b.Denom(), k, nil)
	return new(big.Rat).SetFrac(num, den), true
}

// Fits checks if numerator and denominator of r fit into 64 bits.
func Fits(r *big.Rat) bool {
	return r.Num().IsInt64() && r.Denom().IsInt64()
}

// Number creates a literal from an exact value: an Integer if r is
// integral, a reduced Rational otherwise. r must fit into 64 bits.
func Number(r *big.Rat) Expression {
	if r.IsInt() {
		return Integer(r.Num().Int64())
	}
	return Rational{Num: r.Num().Int64(), Den: r.Denom().Int64()}
}

// Value returns the exact value of an Integer or Rational literal.
func Value(e Expression) (*big.Rat, bool) {
	switch x := e.(type) {
	case Integer:
		return new(big.Rat).SetInt64(int64(x)), true
	case Rational:
		if x.Den == 0 {
			return nil, false
		}
		return new(big.Rat).SetFrac64(x.Num, x.Den), true
	}
	return nil, false
}

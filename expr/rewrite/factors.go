package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/fishrambeta"
	"github.com/npillmayer/fishrambeta/expr"
)

// HasFactor checks if candidate structurally divides e:
//
//    e == candidate                  ⇒ true
//    Power(b, _)   has c  ⇔  b == c
//    Multiplication has c  ⇔  any factor has c
//    Addition       has c  ⇔  every addend has c
//    Negative(x)    has c  ⇔  x has c
//
// Any other expression has no factors except itself.
func HasFactor(e, candidate expr.Expression) bool {
	if expr.Equal(e, candidate) {
		return true
	}
	switch x := e.(type) {
	case expr.Power:
		return expr.Equal(x.Base, candidate)
	case expr.Multiplication:
		for _, f := range x {
			if HasFactor(f, candidate) {
				return true
			}
		}
		return false
	case expr.Addition:
		if len(x) == 0 {
			return false
		}
		for _, a := range x {
			if !HasFactor(a, candidate) {
				return false
			}
		}
		return true
	case expr.Negative:
		return HasFactor(x.X, candidate)
	}
	return false
}

// candidates is the first-level candidate set of factors of e: e itself, the
// factors of a product, and the base of a power.
func candidates(e expr.Expression) []expr.Expression {
	c := []expr.Expression{e}
	switch x := e.(type) {
	case expr.Multiplication:
		c = append(c, x...)
	case expr.Power:
		c = append(c, x.Base)
	}
	return c
}

// AllFactors returns the first-level factors of e.
func AllFactors(e expr.Expression) []expr.Expression {
	var factors []expr.Expression
	for _, c := range candidates(e) {
		if HasFactor(e, c) {
			factors = append(factors, c)
		}
	}
	return factors
}

// SharedFactors returns the first-level factors of a which b has as well,
// without duplicates.
func SharedFactors(a, b expr.Expression) []expr.Expression {
	var shared []expr.Expression
	seen := make(map[string]bool)
	for _, c := range AllFactors(a) {
		h := expr.Hash(c)
		if seen[h] {
			continue
		}
		seen[h] = true
		if HasFactor(b, c) {
			shared = append(shared, c)
		}
	}
	return shared
}

// RemoveFactor divides e by one of its factors. It is an error of kind
// PreconditionViolation if candidate is not a factor of e (see HasFactor).
//
// The result is not simplified. Removing a factor from a power decrements the
// exponent, removing it from a sum removes it from every addend. From a product
// it is removed from the first factor which carries it.
func RemoveFactor(e, candidate expr.Expression) (expr.Expression, error) {
	if !HasFactor(e, candidate) {
		return nil, fishrambeta.Errorf(fishrambeta.PreconditionViolation,
			"%v is not a factor of %v", candidate, e)
	}
	return removeFactor(e, candidate), nil
}

// removeFactor requires HasFactor(e, candidate).
func removeFactor(e, candidate expr.Expression) expr.Expression {
	if expr.Equal(e, candidate) {
		return expr.Integer(1)
	}
	switch x := e.(type) {
	case expr.Negative:
		return expr.Negative{X: removeFactor(x.X, candidate)}
	case expr.Multiplication:
		m := make(expr.Multiplication, len(x))
		copy(m, x)
		for i, f := range m {
			if HasFactor(f, candidate) {
				m[i] = removeFactor(f, candidate)
				break
			}
		}
		return m
	case expr.Power:
		return expr.Power{
			Base: x.Base,
			Exp:  expr.Addition{x.Exp, expr.Integer(-1)},
		}
	case expr.Addition:
		a := make(expr.Addition, len(x))
		for i, addend := range x {
			a[i] = removeFactor(addend, candidate)
		}
		return a
	}
	tracer().Errorf("cannot remove factor %v from %v", candidate, e)
	return e
}

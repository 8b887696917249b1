package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/fishrambeta/expr"
)

// MultiplyBy multiplies two terms. If either of them is a sum, the product is
// expanded:
//
//    (a + b) × (c + d)  ➞  ac + ad + bc + bd
//    (a + b) × c        ➞  ac + bc
//
// Otherwise the result is a product of both, flattening products among the
// operands. The result is not simplified.
func MultiplyBy(acc, next expr.Expression) expr.Expression {
	left, lsum := acc.(expr.Addition)
	right, rsum := next.(expr.Addition)
	if !lsum && !rsum {
		return product(acc, next)
	}
	if !lsum {
		left = expr.Addition{acc}
	}
	if !rsum {
		right = expr.Addition{next}
	}
	sum := make(expr.Addition, 0, len(left)*len(right))
	for _, l := range left {
		for _, r := range right {
			sum = append(sum, product(l, r))
		}
	}
	return sum
}

func product(a, b expr.Expression) expr.Multiplication {
	var m expr.Multiplication
	for _, x := range []expr.Expression{a, b} {
		if p, ok := x.(expr.Multiplication); ok {
			m = append(m, p...)
		} else {
			m = append(m, x)
		}
	}
	return m
}

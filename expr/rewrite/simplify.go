package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math/big"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/fishrambeta/expr"
)

// Rewriter is a function
//
//     expression ↦ expression
//
// i.e., a term rewriting function. Rewriters for a kind of node receive nodes
// of that kind only.
type Rewriter func(e expr.Expression) expr.Expression

var rewriters map[expr.Kind]Rewriter
var initOnce sync.Once // monitors one-time initialization

func initRewriters() {
	initOnce.Do(func() {
		rewriters = map[expr.Kind]Rewriter{
			expr.NegativeKind:       simplifyNegative,
			expr.AdditionKind:       simplifyAddition,
			expr.MultiplicationKind: simplifyMultiplication,
			expr.DivisionKind:       simplifyDivision,
			expr.PowerKind:          simplifyPower,
			expr.LnKind:             simplifyFunction,
			expr.SinKind:            simplifyFunction,
			expr.CosKind:            simplifyFunction,
			expr.EqualsKind:         simplifyEquation,
		}
	})
}

// Simplify rewrites an expression into canonical form. It is pure, terminating
// and idempotent.
func Simplify(e expr.Expression) expr.Expression {
	if e == nil {
		return nil
	}
	if r, ok := expr.TryExactValue(e); ok {
		return expr.Number(r)
	}
	initRewriters()
	if rewrite, ok := rewriters[e.Kind()]; ok {
		return rewrite(e)
	}
	return e
}

// --- Negation --------------------------------------------------------------

func simplifyNegative(e expr.Expression) expr.Expression {
	return negate(Simplify(e.(expr.Negative).X))
}

// negate negates a simplified expression: literals change their sign, double
// negation cancels and sums negate every addend.
func negate(e expr.Expression) expr.Expression {
	if r, ok := expr.Value(e); ok {
		if r.Neg(r); expr.Fits(r) {
			return expr.Number(r)
		}
	}
	switch x := e.(type) {
	case expr.Negative:
		return x.X
	case expr.Addition:
		sum := make(expr.Addition, len(x))
		for i, a := range x {
			sum[i] = negate(a)
		}
		return Simplify(sum)
	}
	return expr.Negative{X: e}
}

// --- Sums ------------------------------------------------------------------

// coefficientGroup collects the addends of a sum which share a term.
type coefficientGroup struct {
	coefficient *big.Rat
	addends     []expr.Expression
}

// simplifyAddition groups addends by their term. For every distinct term t with
// coefficients c₁ … cₙ the sum gets one addend (c₁ + … + cₙ)·t. Literals are
// summed up into a constant, which is placed last.
func simplifyAddition(e expr.Expression) expr.Expression {
	var addends []expr.Expression
	for _, a := range e.(expr.Addition) {
		s := Simplify(a)
		if sum, ok := s.(expr.Addition); ok {
			addends = append(addends, sum...)
		} else {
			addends = append(addends, s)
		}
	}
	constant := new(big.Rat)
	var literals []expr.Expression
	terms := treemap.NewWith(expr.Comparator)
	for _, a := range addends {
		c, term := splitCoefficient(a)
		if term == nil {
			constant.Add(constant, c)
			literals = append(literals, a)
			continue
		}
		var g *coefficientGroup
		if v, found := terms.Get(term); found {
			g = v.(*coefficientGroup)
		} else {
			g = &coefficientGroup{coefficient: new(big.Rat)}
			terms.Put(term, g)
		}
		g.coefficient.Add(g.coefficient, c)
		g.addends = append(g.addends, a)
	}
	var sum expr.Addition
	it := terms.Iterator()
	for it.Next() {
		term, g := it.Key().(expr.Expression), it.Value().(*coefficientGroup)
		switch {
		case !expr.Fits(g.coefficient):
			sum = append(sum, g.addends...)
		case g.coefficient.Sign() != 0:
			contribution := expr.Multiplication{term, expr.Number(g.coefficient)}
			sum = append(sum, Simplify(contribution))
		}
	}
	if !expr.Fits(constant) {
		sum = append(sum, literals...)
	} else if constant.Sign() != 0 {
		sum = append(sum, expr.Number(constant))
	}
	switch len(sum) {
	case 0:
		return expr.Integer(0)
	case 1:
		return sum[0]
	}
	tracer().Debugf("sum %v ➞ %v", e, sum)
	return sum
}

// splitCoefficient splits a simplified addend into a numeric coefficient and
// a term. For literals, the term is nil.
//
//    -x      ➞  (-1, x)
//    3·x·y   ➞  (3, x·y)
//    -(3·x)  ➞  (-3, x)
//
func splitCoefficient(a expr.Expression) (*big.Rat, expr.Expression) {
	if r, ok := expr.Value(a); ok {
		return r, nil
	}
	switch x := a.(type) {
	case expr.Negative:
		c, term := splitCoefficient(x.X)
		return c.Neg(c), term
	case expr.Multiplication:
		if len(x) < 2 {
			break
		}
		if r, ok := expr.Value(x[0]); ok {
			if len(x) == 2 {
				return r, x[1]
			}
			rest := make(expr.Multiplication, len(x)-1)
			copy(rest, x[1:])
			return r, rest
		}
	}
	return big.NewRat(1, 1), a
}

// --- Products --------------------------------------------------------------

// simplifyMultiplication flattens a product, folds its literals into a single
// coefficient and its signs into a single negation, and counts repeated
// factors, which become powers. If one of the remaining factors is a sum, the
// product is expanded.
func simplifyMultiplication(e expr.Expression) expr.Expression {
	negative := false
	coefficient := big.NewRat(1, 1)
	var literals, factors []expr.Expression
	var absorb func(expr.Expression) bool
	absorb = func(f expr.Expression) bool {
		switch x := f.(type) {
		case expr.Multiplication:
			for _, g := range x {
				if !absorb(g) {
					return false
				}
			}
			return true
		case expr.Negative:
			negative = !negative
			return absorb(x.X)
		}
		if r, ok := expr.Value(f); ok {
			if r.Sign() == 0 {
				return false
			}
			coefficient.Mul(coefficient, r)
			literals = append(literals, f)
			return true
		}
		factors = append(factors, f)
		return true
	}
	for _, f := range e.(expr.Multiplication) {
		if !absorb(Simplify(f)) {
			return expr.Integer(0)
		}
	}
	var list []expr.Expression
	if expr.Fits(coefficient) {
		if coefficient.Sign() < 0 {
			negative = !negative
			coefficient.Neg(coefficient)
		}
		if !coefficient.IsInt() || coefficient.Num().Int64() != 1 {
			list = append(list, expr.Number(coefficient))
		}
	} else {
		list = append(list, literals...)
	}
	factors = collectPowers(factors)
	list = append(list, factors...)
	var result expr.Expression
	switch len(list) {
	case 0:
		result = expr.Integer(1)
	case 1:
		result = list[0]
	default:
		if hasSum(factors) {
			acc := list[0]
			for _, f := range list[1:] {
				acc = MultiplyBy(acc, f)
			}
			result = Simplify(acc)
		} else {
			result = expr.Multiplication(list)
		}
	}
	if negative {
		return negate(result)
	}
	return result
}

// collectPowers replaces factors occuring n > 1 times by their n-th power.
// The resulting factors are ordered.
//
// Adding up exponents of powers with a common base (x·x² ➞ x³) is not done:
// it is not sound across the mix of integer, rational and symbolic exponents.
func collectPowers(factors []expr.Expression) []expr.Expression {
	for {
		counts := treemap.NewWith(expr.Comparator)
		for _, f := range factors {
			n := 0
			if c, found := counts.Get(f); found {
				n = c.(int)
			}
			counts.Put(f, n+1)
		}
		merged := false
		next := make([]expr.Expression, 0, counts.Size())
		it := counts.Iterator()
		for it.Next() {
			f, n := it.Key().(expr.Expression), it.Value().(int)
			if n == 1 {
				next = append(next, f)
				continue
			}
			merged = true
			next = append(next, Simplify(expr.Power{Base: f, Exp: expr.Integer(n)}))
		}
		if !merged {
			return next
		}
		factors = next
	}
}

func hasSum(factors []expr.Expression) bool {
	for _, f := range factors {
		if f.Kind() == expr.AdditionKind {
			return true
		}
	}
	return false
}

// --- Quotients -------------------------------------------------------------

// simplifyDivision cancels factors shared by numerator and denominator.
//
// A shared factor is cancelled only if this makes the quotient smaller.
// Cancelling x from x^a / x^b would otherwise go on forever, producing
// x^(a-1) / x^(b-1), x^(a-1-1) / x^(b-1-1), and so on.
func simplifyDivision(e expr.Expression) expr.Expression {
	d := e.(expr.Division)
	num, den := Simplify(d.Num), Simplify(d.Den)
	for cancelled := true; cancelled; {
		cancelled = false
		for _, f := range SharedFactors(den, num) {
			if expr.IsInteger(f, 0) || !HasFactor(num, f) || !HasFactor(den, f) {
				continue
			}
			n := Simplify(removeFactor(num, f))
			m := Simplify(removeFactor(den, f))
			if weight(n)+weight(m) < weight(num)+weight(den) {
				tracer().Debugf("cancel %v in %v / %v", f, num, den)
				num, den = n, m
				cancelled = true
				break
			}
		}
	}
	if expr.IsInteger(den, 0) { // undefined, leave it to the evaluator
		return expr.Division{Num: num, Den: den}
	}
	if expr.IsInteger(num, 0) {
		return expr.Integer(0)
	}
	if expr.IsInteger(den, 1) {
		return num
	}
	q := expr.Division{Num: num, Den: den}
	if r, ok := expr.TryExactValue(q); ok {
		return expr.Number(r)
	}
	return q
}

// weight measures the size of a term for cancellation. A literal 1 does not
// count, as it vanishes in a product.
func weight(e expr.Expression) int {
	if expr.IsInteger(e, 1) {
		return 0
	}
	return expr.Size(e)
}

// --- Powers ----------------------------------------------------------------

// simplifyPower distributes exponents over products and merges nested powers
// if both exponents are of the same kind of literal:
//
//    (a·b)^n     ➞  a^n · b^n
//    (x^2)^3     ➞  x^6
//    (x^½)^½     ➞  x^¼
//    (x^2)^½     ➞  (x^2)^½
//
func simplifyPower(e expr.Expression) expr.Expression {
	p := e.(expr.Power)
	base, exp := Simplify(p.Base), Simplify(p.Exp)
	if r, ok := expr.TryExactValue(expr.Power{Base: base, Exp: exp}); ok {
		return expr.Number(r)
	}
	if expr.IsInteger(exp, 1) {
		return base
	}
	switch b := base.(type) {
	case expr.Multiplication:
		m := make(expr.Multiplication, len(b))
		for i, f := range b {
			m[i] = expr.Power{Base: f, Exp: exp}
		}
		return Simplify(m)
	case expr.Power:
		if sameNumberKind(exp, b.Exp) {
			return Simplify(expr.Power{
				Base: b.Base,
				Exp:  expr.Multiplication{exp, b.Exp},
			})
		}
	}
	return expr.Power{Base: base, Exp: exp}
}

func sameNumberKind(a, b expr.Expression) bool {
	return expr.IsNumber(a) && a.Kind() == b.Kind()
}

// --- Functions and equations -----------------------------------------------

func simplifyFunction(e expr.Expression) expr.Expression {
	switch f := e.(type) {
	case expr.Ln:
		return expr.Ln{X: Simplify(f.X)}
	case expr.Sin:
		return expr.Sin{X: Simplify(f.X)}
	case expr.Cos:
		return expr.Cos{X: Simplify(f.X)}
	}
	return e
}

func simplifyEquation(e expr.Expression) expr.Expression {
	eq := e.(expr.Equals)
	return expr.Equals{LHS: Simplify(eq.LHS), RHS: Simplify(eq.RHS)}
}

package latex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/npillmayer/fishrambeta/expr"
)

// Emit creates LaTeX text for an expression. If implicit is set, some
// multiplication signs are omitted, e.g. "2x" or "a(b+c)". Parsing the text
// with the same setting yields an equivalent expression.
func Emit(e expr.Expression, implicit bool) string {
	var b strings.Builder
	FromExpression(e).write(&b, implicit)
	return b.String()
}

// Binding strength of expressions in LaTeX text.
const (
	precEquals = iota
	precSum
	precProduct
	precUnary
	precPower
	precAtom
)

func precedence(e expr.Expression) int {
	switch x := e.(type) {
	case expr.Equals:
		return precEquals
	case expr.Addition:
		if len(x) == 1 {
			return precedence(x[0])
		}
		return precSum
	case expr.Multiplication:
		if len(x) == 1 {
			return precedence(x[0])
		}
		return precProduct
	case expr.Negative:
		return precUnary
	case expr.Integer:
		if x < 0 {
			return precUnary
		}
	case expr.Rational:
		if (x.Num < 0) != (x.Den < 0) && x.Num != 0 {
			return precUnary
		}
	case expr.Power:
		if _, ok := rootDegree(x); !ok {
			return precPower
		}
	}
	return precAtom
}

// FromExpression creates an IR tree for an expression. Brackets are inserted
// where precedence requires them.
func FromExpression(e expr.Expression) *IR {
	switch x := e.(type) {
	case expr.Integer:
		s := strconv.FormatInt(int64(x), 10)
		if s[0] == '-' {
			return node(opSub, leaf(s[1:]))
		}
		return leaf(s)
	case expr.Rational:
		num, den := big.NewInt(x.Num), big.NewInt(x.Den)
		if den.Sign() < 0 {
			num.Neg(num)
			den.Neg(den)
		}
		negative := num.Sign() < 0
		frac := node(cmdFrac, braced(leaf(num.Abs(num).String())), braced(leaf(den.String())))
		if negative {
			return node(opSub, frac)
		}
		return frac
	case expr.Constant:
		if x == expr.PI {
			return leaf(cmdPi)
		}
		return node(cmdRm, braced(leaf("e")))
	case expr.Letter:
		return leaf(string(x))
	case expr.Vector:
		return node(cmdVec, braced(leaf(string(x))))
	case expr.Negative:
		ir := FromExpression(x.X)
		if p := precedence(x.X); p <= precSum || p == precUnary {
			ir = withBrackets(ir, Round)
		}
		return node(opSub, ir)
	case expr.Addition:
		return fromAddition(x)
	case expr.Multiplication:
		switch len(x) {
		case 0:
			return leaf("1")
		case 1:
			return FromExpression(x[0])
		}
		factors := make([]*IR, len(x))
		for i, f := range x {
			factors[i] = operand(f, precUnary)
		}
		return node(opMul, factors...)
	case expr.Division:
		return node(cmdFrac, braced(FromExpression(x.Num)), braced(FromExpression(x.Den)))
	case expr.Power:
		if n, ok := rootDegree(x); ok {
			root := node(cmdSqrt, braced(FromExpression(x.Base)))
			if n != 2 {
				degree := leaf(strconv.FormatInt(n, 10))
				degree.Brackets = Square
				root.Children = append(root.Children, degree)
			}
			return root
		}
		base := FromExpression(x.Base)
		if !isPlainBase(x.Base) {
			base = withBrackets(base, Round)
		}
		return node(opPow, base, braced(FromExpression(x.Exp)))
	case expr.Ln:
		return node(cmdLn, withBrackets(FromExpression(x.X), Round))
	case expr.Sin:
		return node(cmdSin, withBrackets(FromExpression(x.X), Round))
	case expr.Cos:
		return node(cmdCos, withBrackets(FromExpression(x.X), Round))
	case expr.Equals:
		return node(opEquals, operand(x.LHS, precEquals), operand(x.RHS, precEquals))
	}
	tracer().Errorf("cannot emit expression of type %T", e)
	return leaf("?")
}

// fromAddition creates a chain of + and - nodes. Negative terms are emitted
// as subtractions.
func fromAddition(terms expr.Addition) *IR {
	switch len(terms) {
	case 0:
		return leaf("0")
	case 1:
		return FromExpression(terms[0])
	}
	sum := operand(terms[0], precSum)
	chained := false
	for _, t := range terms[1:] {
		op, ir := opAdd, operand(t, precSum)
		if neg := FromExpression(t); neg.Name == opSub && len(neg.Children) == 1 {
			op, ir = opSub, neg.Children[0]
		}
		if chained && sum.Name == op {
			sum.Children = append(sum.Children, ir)
			continue
		}
		sum = node(op, sum, ir)
		chained = true
	}
	return sum
}

// operand creates an IR tree for an operand of an operator, bracketed if it
// binds no stronger than limit.
func operand(e expr.Expression, limit int) *IR {
	ir := FromExpression(e)
	if precedence(e) <= limit {
		return withBrackets(ir, Round)
	}
	return ir
}

func braced(ir *IR) *IR {
	return withBrackets(ir, Curly)
}

// rootDegree returns n for powers with exponent 1/n, n ≥ 2.
func rootDegree(p expr.Power) (int64, bool) {
	if r, ok := p.Exp.(expr.Rational); ok && r.Num == 1 && r.Den >= 2 {
		return r.Den, true
	}
	return 0, false
}

// isPlainBase is true for expressions which may be the base of a power
// without brackets.
func isPlainBase(e expr.Expression) bool {
	switch x := e.(type) {
	case expr.Letter, expr.Vector, expr.Constant:
		return true
	case expr.Integer:
		return x >= 0
	}
	return false
}

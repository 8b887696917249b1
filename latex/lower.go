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

	"github.com/npillmayer/fishrambeta"
	"github.com/npillmayer/fishrambeta/expr"
)

// Expression lowers an IR tree to an expression.
func (ir *IR) Expression() (expr.Expression, error) {
	if ir == nil {
		return nil, fishrambeta.Errorf(fishrambeta.MalformedInput, "missing operand")
	}
	if ir.IsLeaf() {
		return lowerLeaf(ir.Name)
	}
	switch ir.Name {
	case cmdVec, cmdRm:
		if err := ir.arity(1, 1); err != nil {
			return nil, err
		}
		name := ir.Children[0]
		if !name.IsLeaf() {
			return nil, fishrambeta.Errorf(fishrambeta.Unsupported, `%s needs a name, have %s`, ir.Name, name)
		}
		if ir.Name == cmdVec {
			return expr.Vector(name.Name), nil
		}
		if name.Name == "e" {
			return expr.E, nil
		}
		return expr.Letter(`\mathrm{` + name.Name + `}`), nil
	}
	children := make([]expr.Expression, len(ir.Children))
	for i, ch := range ir.Children {
		x, err := ch.Expression()
		if err != nil {
			return nil, err
		}
		children[i] = x
	}
	switch ir.Name {
	case opAdd:
		if len(children) == 1 {
			return children[0], nil
		}
		return expr.Addition(children), nil
	case opSub:
		if len(children) == 1 {
			return expr.Negative{X: children[0]}, nil
		}
		terms := make(expr.Addition, len(children))
		terms[0] = children[0]
		for i, x := range children[1:] {
			terms[i+1] = expr.Negative{X: x}
		}
		return terms, nil
	case opMul:
		if len(children) == 1 {
			return children[0], nil
		}
		return expr.Multiplication(children), nil
	case opDiv, opPow:
		if err := ir.arity(2, -1); err != nil {
			return nil, err
		}
		var pair expr.Expression = expr.Division{Num: children[0], Den: children[1]}
		if ir.Name == opPow {
			pair = expr.Power{Base: children[0], Exp: children[1]}
		}
		if len(children) == 2 {
			return pair, nil
		}
		return append(expr.Multiplication{pair}, children[2:]...), nil
	case opEquals:
		if err := ir.arity(2, 2); err != nil {
			return nil, err
		}
		return expr.Equals{LHS: children[0], RHS: children[1]}, nil
	case cmdFrac:
		if err := ir.arity(2, 2); err != nil {
			return nil, err
		}
		return expr.Division{Num: children[0], Den: children[1]}, nil
	case cmdSqrt:
		if err := ir.arity(1, 2); err != nil {
			return nil, err
		}
		if len(children) == 1 {
			return expr.Power{Base: children[0], Exp: expr.Rational{Num: 1, Den: 2}}, nil
		}
		if n, ok := children[1].(expr.Integer); ok && n > 0 {
			return expr.Power{Base: children[0], Exp: expr.Rational{Num: 1, Den: int64(n)}}, nil
		}
		return expr.Power{Base: children[0], Exp: expr.Division{Num: expr.Integer(1), Den: children[1]}}, nil
	case cmdSin, cmdCos, cmdLn:
		if err := ir.arity(1, 1); err != nil {
			return nil, err
		}
		switch ir.Name {
		case cmdSin:
			return expr.Sin{X: children[0]}, nil
		case cmdCos:
			return expr.Cos{X: children[0]}, nil
		}
		return expr.Ln{X: children[0]}, nil
	case group:
		if err := ir.arity(1, 1); err != nil {
			return nil, err
		}
		return children[0], nil
	}
	return nil, fishrambeta.Errorf(fishrambeta.Unsupported, "unknown construct %s", ir)
}

// arity checks the number of children. max < 0 means unlimited.
func (ir *IR) arity(min, max int) error {
	n := len(ir.Children)
	if n < min || (max >= 0 && n > max) {
		return fishrambeta.Errorf(fishrambeta.MalformedInput, "%s with %d operand(s)", ir.Name, n)
	}
	return nil
}

func lowerLeaf(name string) (expr.Expression, error) {
	switch {
	case name == cmdPi:
		return expr.PI, nil
	case name == "":
		return nil, fishrambeta.Errorf(fishrambeta.MalformedInput, "missing operand")
	case isNumeral(name):
		return lowerNumber(name)
	case strings.HasPrefix(name, `\`) || isLetter([]rune(name)[0]):
		return expr.Letter(name), nil
	}
	return nil, fishrambeta.Errorf(fishrambeta.Unsupported, "cannot interpret %q", name)
}

// lowerNumber converts an integer or decimal numeral to an exact literal.
func lowerNumber(numeral string) (expr.Expression, error) {
	if !strings.Contains(numeral, ".") {
		n, err := strconv.ParseInt(numeral, 10, 64)
		if err != nil {
			return nil, fishrambeta.Errorf(fishrambeta.MalformedInput, "integer literal %s out of range", numeral)
		}
		return expr.Integer(n), nil
	}
	r, ok := new(big.Rat).SetString(numeral)
	if !ok {
		return nil, fishrambeta.Errorf(fishrambeta.MalformedInput, "bad number %q", numeral)
	}
	if !expr.Fits(r) {
		return nil, fishrambeta.Errorf(fishrambeta.MalformedInput, "decimal literal %s out of range", numeral)
	}
	return expr.Number(r), nil
}

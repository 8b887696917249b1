package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is a type tag for expression variants. The order of kinds is the
// first criterion of the total order of expressions.
type Kind int8

// Expression variants, in canonical order.
const (
	IntegerKind Kind = iota
	RationalKind
	ConstantKind
	LetterKind
	VectorKind
	NegativeKind
	AdditionKind
	MultiplicationKind
	DivisionKind
	PowerKind
	LnKind
	EqualsKind
	SinKind
	CosKind
)

var kindNames = [...]string{"Integer", "Rational", "Constant", "Letter", "Vector",
	"Negative", "Addition", "Multiplication", "Division", "Power", "Ln", "Equals",
	"Sin", "Cos"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Expression is the interface of all expression variants.
// Composite variants exclusively own their children.
type Expression interface {
	Kind() Kind
	String() string
}

// --- Leaves ----------------------------------------------------------------

// Integer is an integer literal.
type Integer int64

// Rational is a fraction Num/Den. It is not required to be reduced.
type Rational struct {
	Num, Den int64
}

// Constant is a named mathematical constant.
type Constant int8

// Known constants.
const (
	PI Constant = iota // π
	E                  // Euler's number
)

// Letter is a variable, named by its spelling in the source text, e.g. "x" or `\alpha`.
type Letter string

// Vector is a vector variable.
type Vector string

func (Integer) Kind() Kind  { return IntegerKind }
func (Rational) Kind() Kind { return RationalKind }
func (Constant) Kind() Kind { return ConstantKind }
func (Letter) Kind() Kind   { return LetterKind }
func (Vector) Kind() Kind   { return VectorKind }

func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

func (c Constant) String() string {
	if c == PI {
		return "π"
	}
	return "ℯ"
}

func (l Letter) String() string {
	return string(l)
}

func (v Vector) String() string {
	return "⃗" + string(v)
}

// --- Composites -------------------------------------------------------------

// Negative is the negation of an expression.
type Negative struct {
	X Expression
}

// Addition is a sum of an ordered list of addends.
type Addition []Expression

// Multiplication is a product of an ordered list of factors.
type Multiplication []Expression

// Division is a quotient.
type Division struct {
	Num, Den Expression
}

// Power is Base raised to Exp.
type Power struct {
	Base, Exp Expression
}

// Ln is the natural logarithm.
type Ln struct {
	X Expression
}

// Sin is the sine function.
type Sin struct {
	X Expression
}

// Cos is the cosine function.
type Cos struct {
	X Expression
}

// Equals is an equation. Equations cannot be evaluated to a number.
type Equals struct {
	LHS, RHS Expression
}

func (Negative) Kind() Kind       { return NegativeKind }
func (Addition) Kind() Kind       { return AdditionKind }
func (Multiplication) Kind() Kind { return MultiplicationKind }
func (Division) Kind() Kind       { return DivisionKind }
func (Power) Kind() Kind          { return PowerKind }
func (Ln) Kind() Kind             { return LnKind }
func (Equals) Kind() Kind         { return EqualsKind }
func (Sin) Kind() Kind            { return SinKind }
func (Cos) Kind() Kind            { return CosKind }

func (n Negative) String() string       { return lisp("-", n.X) }
func (a Addition) String() string       { return lisp("+", a...) }
func (m Multiplication) String() string { return lisp("*", m...) }
func (d Division) String() string       { return lisp("/", d.Num, d.Den) }
func (p Power) String() string          { return lisp("^", p.Base, p.Exp) }
func (l Ln) String() string             { return lisp("ln", l.X) }
func (s Sin) String() string            { return lisp("sin", s.X) }
func (c Cos) String() string            { return lisp("cos", c.X) }
func (e Equals) String() string         { return lisp("=", e.LHS, e.RHS) }

// lisp renders a node in a Lisp-like fashion, e.g. "(+ x 1)".
func lisp(op string, children ...Expression) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(op)
	for _, ch := range children {
		b.WriteByte(' ')
		if ch == nil {
			b.WriteString("nil")
			continue
		}
		b.WriteString(ch.String())
	}
	b.WriteByte(')')
	return b.String()
}

// ---------------------------------------------------------------------------

// Children returns the direct sub-expressions of e, in order. Leaves have no
// children. The returned slice must not be modified.
func Children(e Expression) []Expression {
	switch x := e.(type) {
	case Negative:
		return []Expression{x.X}
	case Addition:
		return x
	case Multiplication:
		return x
	case Division:
		return []Expression{x.Num, x.Den}
	case Power:
		return []Expression{x.Base, x.Exp}
	case Ln:
		return []Expression{x.X}
	case Sin:
		return []Expression{x.X}
	case Cos:
		return []Expression{x.X}
	case Equals:
		return []Expression{x.LHS, x.RHS}
	}
	return nil
}

// IsLeaf is true for literals, constants, letters and vectors.
func IsLeaf(e Expression) bool {
	return e != nil && e.Kind() <= VectorKind
}

// IsNumber is true for Integer and Rational literals.
func IsNumber(e Expression) bool {
	return e != nil && (e.Kind() == IntegerKind || e.Kind() == RationalKind)
}

// Size counts the nodes of an expression tree.
func Size(e Expression) int {
	if e == nil {
		return 0
	}
	n := 1
	for _, ch := range Children(e) {
		n += Size(ch)
	}
	return n
}

// Variables collects the names of all letters of an expression, and the
// names of vectors in their LaTeX spelling, in order of first appearance.
func Variables(e Expression) []string {
	var names []string
	seen := map[string]bool{}
	var walk func(Expression)
	walk = func(e Expression) {
		var name string
		switch x := e.(type) {
		case Letter:
			name = string(x)
		case Vector:
			name = VectorName(x)
		default:
			for _, ch := range Children(e) {
				walk(ch)
			}
			return
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	walk(e)
	return names
}

// VectorName is the binding name of a vector variable, i.e. its LaTeX
// spelling `\vec{v}`.
func VectorName(v Vector) string {
	return `\vec{` + string(v) + `}`
}

package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math"

	"github.com/npillmayer/fishrambeta"
)

// Bindings resolves variable names to values during evaluation.
type Bindings interface {
	Lookup(name string) (float64, bool)
}

// Values is a simple map of variable bindings.
type Values map[string]float64

// Lookup is part of interface Bindings.
func (v Values) Lookup(name string) (float64, bool) {
	x, ok := v[name]
	return x, ok
}

// NoBindings resolves no names at all.
var NoBindings Bindings = Values(nil)

// Evaluate evaluates an expression with floating point arithmetic.
//
// Letters are looked up by name, vectors by their LaTeX spelling (see VectorName).
// Domain violations follow IEEE semantics, e.g. a negative base with a
// non-integer exponent yields NaN. Evaluating an equation is an error of kind
// InvalidOperation, a missing binding an error of kind UnboundVariable.
func Evaluate(e Expression, bindings Bindings) (float64, error) {
	if bindings == nil {
		bindings = NoBindings
	}
	switch x := e.(type) {
	case Integer:
		return float64(x), nil
	case Rational:
		return float64(x.Num) / float64(x.Den), nil
	case Constant:
		if x == PI {
			return math.Pi, nil
		}
		return math.E, nil
	case Letter:
		return resolve(string(x), bindings)
	case Vector:
		return resolve(VectorName(x), bindings)
	case Negative:
		v, err := Evaluate(x.X, bindings)
		return -v, err
	case Addition:
		sum := 0.0
		for _, a := range x {
			v, err := Evaluate(a, bindings)
			if err != nil {
				return 0, err
			}
			sum += v
		}
		return sum, nil
	case Multiplication:
		product := 1.0
		for _, f := range x {
			v, err := Evaluate(f, bindings)
			if err != nil {
				return 0, err
			}
			product *= v
		}
		return product, nil
	case Division:
		n, d, err := evaluate2(x.Num, x.Den, bindings)
		return n / d, err
	case Power:
		b, p, err := evaluate2(x.Base, x.Exp, bindings)
		return math.Pow(b, p), err
	case Ln:
		v, err := Evaluate(x.X, bindings)
		return math.Log(v), err
	case Sin:
		v, err := Evaluate(x.X, bindings)
		return math.Sin(v), err
	case Cos:
		v, err := Evaluate(x.X, bindings)
		return math.Cos(v), err
	case Equals:
		return 0, fishrambeta.Errorf(fishrambeta.InvalidOperation,
			"cannot evaluate equation %v to a number", x)
	case nil:
		return 0, fishrambeta.Errorf(fishrambeta.InvalidOperation, "cannot evaluate empty expression")
	}
	return 0, fishrambeta.Errorf(fishrambeta.InvalidOperation, "unknown expression type %T", e)
}

func evaluate2(a, b Expression, bindings Bindings) (float64, float64, error) {
	x, err := Evaluate(a, bindings)
	if err != nil {
		return 0, 0, err
	}
	y, err := Evaluate(b, bindings)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func resolve(name string, bindings Bindings) (float64, error) {
	if v, ok := bindings.Lookup(name); ok {
		return v, nil
	}
	tracer().Debugf("unable to resolve variable %q", name)
	return 0, fishrambeta.Errorf(fishrambeta.UnboundVariable, "no value for %q", name)
}

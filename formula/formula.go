/*
Package formula bundles parsing, simplification and evaluation of LaTeX
formulas into the operations an application calls.

    latex, err := formula.Simplify(`x+x+\frac{1}{2}+\frac{1}{2}`)
    // latex = "2x+1"
    v, err := formula.Calculate(`\frac{1}{2}m*v^2`, map[string]float64{"m": 2, "v": 3})
    // v = 9

Named physical constants (see package physics) are available to Calculate,
unless the caller supplies a value of the same name.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package formula

import (
	"strings"

	"github.com/npillmayer/fishrambeta/expr"
	"github.com/npillmayer/fishrambeta/expr/rewrite"
	"github.com/npillmayer/fishrambeta/latex"
	"github.com/npillmayer/fishrambeta/physics"
	"github.com/npillmayer/fishrambeta/runtime"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fishrambeta.formula'.
func tracer() tracing.Trace {
	return tracing.Select("fishrambeta.formula")
}

// --- Options ---------------------------------------------------------------

// Option configures the formula operations.
type Option func(c *config)

type config struct {
	implicit  bool
	constants physics.Provider
}

func configure(opts []Option) *config {
	c := &config{implicit: true}
	for _, opt := range opts {
		opt(c)
	}
	if c.constants == nil {
		c.constants = physics.Defaults()
	}
	return c
}

// ImplicitMultiplication sets or clears implicit multiplication, i.e.,
// whether adjacent operands denote a product. The default is true.
func ImplicitMultiplication(b bool) Option {
	return func(c *config) {
		c.implicit = b
	}
}

// WithConstants sets the provider of named constants for Calculate.
// The default is physics.Defaults().
func WithConstants(p physics.Provider) Option {
	return func(c *config) {
		c.constants = p
	}
}

// --- Operations ------------------------------------------------------------

// Simplify parses a LaTeX formula, simplifies it and returns the result as
// LaTeX text.
func Simplify(text string, opts ...Option) (string, error) {
	c := configure(opts)
	simplified, err := tree(text, c)
	if err != nil {
		return "", err
	}
	return latex.Emit(simplified, c.implicit), nil
}

// Tree parses and simplifies a LaTeX formula and returns the expression tree.
func Tree(text string, opts ...Option) (expr.Expression, error) {
	return tree(text, configure(opts))
}

func tree(text string, c *config) (expr.Expression, error) {
	e, err := latex.Parse(text, c.implicit)
	if err != nil {
		return nil, err
	}
	once := rewrite.Simplify(e)
	twice := rewrite.Simplify(once)
	if !expr.Equal(once, twice) {
		tracer().Infof("second simplification changed %v to %v", once, twice)
	}
	tracer().Debugf("%q simplifies to %v", text, twice)
	return twice, nil
}

// Calculate parses a LaTeX formula and evaluates it numerically. Values for
// variables are taken from values, then from the constants.
func Calculate(text string, values map[string]float64, opts ...Option) (float64, error) {
	c := configure(opts)
	e, err := latex.Parse(text, c.implicit)
	if err != nil {
		return 0, err
	}
	env := runtime.NewBindings(c.constants.Values(), values)
	v, err := expr.Evaluate(e, env)
	if err != nil {
		return 0, err
	}
	tracer().Debugf("%q = %g", text, v)
	return v, nil
}

// ValueSeparator separates names in a list of names for ZipValues.
const ValueSeparator = `\n\n`

// ZipValues pairs names and values, where names are given as a single string,
// separated by ValueSeparator. Names or values in excess are ignored.
// This is the format in which browser front ends pass user values.
func ZipValues(names string, values []float64) map[string]float64 {
	zipped := make(map[string]float64)
	if names == "" {
		return zipped
	}
	for i, name := range strings.Split(names, ValueSeparator) {
		if i >= len(values) {
			break
		}
		zipped[name] = values[i]
	}
	return zipped
}

/*
Package latex translates between LaTeX text and expressions.

The supported notation is a subset of LaTeX math mode: the infix operators
+, -, *, / and =, powers with ^, \frac, \sqrt (with optional degree), the
functions \sin, \cos and \ln, \vec{v} for vectors, \pi and \mathrm{e} for
constants, and any other control word (e.g., \alpha or \epsilon_0) as the name
of a variable. \cdot and \times denote multiplication, \left and \right are
ignored. Integrals are recognized but not supported; they, as well as any other
construct the parser cannot interpret, result in an error of kind Unsupported.
Unbalanced brackets result in an error of kind MalformedInput.

With implicit multiplication enabled, adjacent operands denote a product,
e.g. "2x" or "2(a+b)". Runs of letters are single variables: "xy" is a
variable named xy, not a product.

Parsing is done in two steps. Text is first split into an intermediate tree
(IR), a homogenous tree of nodes with a name, ordered children and the
brackets which surrounded a node in the input. The IR is then lowered into
an expression. Emitting works the other way round.

    expression, err := latex.Parse(`\frac{1}{2}mv^2`, true)
    …
    text := latex.Emit(expression, true)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package latex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fishrambeta.latex'.
func tracer() tracing.Trace {
	return tracing.Select("fishrambeta.latex")
}

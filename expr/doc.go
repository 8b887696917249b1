/*
Package expr implements the expression tree of the algebra engine.

Expressions are trees of tagged variants. Leaves are numeric literals
(Integer, Rational), mathematical constants (π and Euler's number), letters
and vectors. Inner nodes are sums, products, quotients, powers, negation,
the functions ln, sin and cos, and equations.

Trees are immutable. Every transformation creates new nodes and never
modifies a node in place. Operations never append to the child list of an
input node.

Equality is deep structural equality (see Equal). A total order over all
expressions (see Compare) makes term grouping deterministic; it has no
mathematical meaning. Hash creates a digest which is consistent with Equal.

Expressions may be evaluated numerically (Evaluate) against a set of
variable bindings, or exactly (TryExactValue) if they consist of rational
literals only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fishrambeta.expr'.
func tracer() tracing.Trace {
	return tracing.Select("fishrambeta.expr")
}
